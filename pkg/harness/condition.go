package harness

import (
	"context"
	"runtime"
	"strings"

	"github.com/golang/glog"
)

// Condition decides whether a case may run. Returning a *SkipError skips the
// case; any other error fails it.
type Condition interface {
	Evaluate(ctx context.Context, info Info) error
}

// ConditionFunc adapts a function to Condition.
type ConditionFunc func(ctx context.Context, info Info) error

// Evaluate implements Condition.
func (f ConditionFunc) Evaluate(ctx context.Context, info Info) error {
	return f(ctx, info)
}

// OSCondition enables or disables a case by operating system.
type OSCondition struct {
	goos    string
	oses    []string
	enabled bool
}

// EnabledOnOS runs the case only on the listed GOOS values.
func EnabledOnOS(oses ...string) *OSCondition {
	return &OSCondition{goos: runtime.GOOS, oses: oses, enabled: true}
}

// DisabledOnOS skips the case on the listed GOOS values.
func DisabledOnOS(oses ...string) *OSCondition {
	return &OSCondition{goos: runtime.GOOS, oses: oses, enabled: false}
}

// Evaluate implements Condition.
func (c *OSCondition) Evaluate(ctx context.Context, info Info) error {
	matched := c.matches()

	if matched == c.enabled {
		glog.V(3).Infof("OS condition allows %s on %s", info.ID, c.goos)
		return nil
	}

	if c.enabled {
		glog.V(2).Infof("Skipping %s: only enabled on %s, running on %s", info.ID, strings.Join(c.oses, ","), c.goos)
		return &SkipError{Reason: "not enabled on " + c.goos}
	}
	glog.V(2).Infof("Skipping %s: disabled on %s", info.ID, c.goos)
	return &SkipError{Reason: "disabled on " + c.goos}
}

// matches checks the current GOOS against the list.
func (c *OSCondition) matches() bool {
	for _, os := range c.oses {
		glog.V(3).Infof("Checking OS %s against %s", os, c.goos)
		if strings.EqualFold(os, c.goos) {
			return true
		}
	}
	return false
}

// Assumption skips the case when check returns false. Unlike T.Assume it is
// evaluated before BeforeEach hooks run.
func Assumption(name string, check func() bool) Condition {
	return ConditionFunc(func(ctx context.Context, info Info) error {
		if check() {
			glog.V(3).Infof("Assumption %q holds for %s", name, info.ID)
			return nil
		}
		glog.V(2).Infof("Assumption %q does not hold for %s", name, info.ID)
		return &SkipError{Reason: "assumption failed: " + name}
	})
}
