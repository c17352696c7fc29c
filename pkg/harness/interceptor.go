package harness

import (
	"context"
	"strings"

	"github.com/golang/glog"
)

// Invocation is one repetition of a case about to run.
type Invocation struct {
	Info       Info
	Conditions []Condition

	run   Func
	scope *scope
}

// Invoker runs an invocation and returns its result.
type Invoker func(ctx context.Context, inv *Invocation) Result

// Interceptor wraps an Invoker. It may short-circuit by returning its own
// Result without calling next.
type Interceptor func(ctx context.Context, inv *Invocation, next Invoker) Result

// chain composes interceptors so that the first one is outermost.
func chain(interceptors []Interceptor, final Invoker) Invoker {
	next := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, inner := interceptors[i], next
		next = func(ctx context.Context, inv *Invocation) Result {
			return ic(ctx, inv, inner)
		}
	}
	return next
}

// ConditionInterceptor evaluates the case's conditions before running it.
func ConditionInterceptor() Interceptor {
	return func(ctx context.Context, inv *Invocation, next Invoker) Result {
		for _, cond := range inv.Conditions {
			err := cond.Evaluate(ctx, inv.Info)
			if err == nil {
				continue
			}
			if IsSkip(err) {
				glog.V(1).Infof("Condition skipped %s: %v", inv.Info.ID, err)
				return Result{Info: inv.Info, Status: StatusSkipped, Err: err}
			}
			glog.V(1).Infof("Condition failed for %s: %v", inv.Info.ID, err)
			return Result{Info: inv.Info, Status: StatusFailed, Err: err}
		}
		return next(ctx, inv)
	}
}

// TagFilter skips cases whose effective tags do not match. A case runs when
// include is empty or it carries one of the include tags, and it carries none
// of the exclude tags. Matching ignores case.
func TagFilter(include, exclude []string) Interceptor {
	return func(ctx context.Context, inv *Invocation, next Invoker) Result {
		run, reason := matchTags(inv.Info.Tags, include, exclude)
		if !run {
			glog.V(2).Infof("Tag filter skipped %s %s: %s", inv.Info.ID, formatTags(inv.Info.Tags), reason)
			return Result{Info: inv.Info, Status: StatusSkipped, Err: &SkipError{Reason: reason}}
		}

		glog.V(3).Infof("Tag filter selected %s %s", inv.Info.ID, formatTags(inv.Info.Tags))
		return next(ctx, inv)
	}
}

// matchTags decides whether tags pass the include/exclude lists.
func matchTags(tags, include, exclude []string) (bool, string) {
	for _, ex := range exclude {
		if containsFold(tags, ex) {
			return false, "excluded by tag " + ex
		}
	}

	if len(include) == 0 {
		return true, ""
	}

	for _, in := range include {
		if containsFold(tags, in) {
			return true, ""
		}
	}
	return false, "no tag in " + formatTags(include)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}
