package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// Runner executes groups of cases.
type Runner struct {
	reporter     Reporter
	interceptors []Interceptor
	config       Config
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter sets the report sink. The default is a new LogReporter.
func WithReporter(r Reporter) Option {
	return func(rn *Runner) { rn.reporter = r }
}

// WithInterceptors appends interceptors. They run inside the tag filter and
// outside condition evaluation.
func WithInterceptors(ics ...Interceptor) Option {
	return func(rn *Runner) { rn.interceptors = append(rn.interceptors, ics...) }
}

// WithTagFilter sets the include and exclude tag lists.
func WithTagFilter(include, exclude []string) Option {
	return func(rn *Runner) {
		rn.config.IncludeTags = include
		rn.config.ExcludeTags = exclude
	}
}

// WithConfig replaces the whole run configuration.
func WithConfig(cfg Config) Option {
	return func(rn *Runner) { rn.config = cfg }
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	glog.V(1).Info("Creating harness runner")

	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}

	if r.reporter == nil {
		r.reporter = NewLogReporter()
		glog.V(1).Info("No reporter given - using log reporter")
	}
	if len(r.config.IncludeTags) > 0 || len(r.config.ExcludeTags) > 0 {
		glog.V(1).Infof("Tag filter: include=%s exclude=%s",
			formatTags(r.config.IncludeTags), formatTags(r.config.ExcludeTags))
	}
	if n := len(r.config.Overrides); n > 0 {
		glog.V(1).Infof("Loaded %d case overrides", n)
	}

	return r
}

// Reporter returns the report sink in use.
func (r *Runner) Reporter() Reporter { return r.reporter }

// Run executes every case under root, depth first, cases before nested
// groups. Once ctx is done the remaining repetitions are reported as skipped.
func (r *Runner) Run(ctx context.Context, root *Group) *Report {
	report := &Report{}
	if root == nil {
		return report
	}

	ics := make([]Interceptor, 0, len(r.interceptors)+2)
	if len(r.config.IncludeTags) > 0 || len(r.config.ExcludeTags) > 0 {
		ics = append(ics, TagFilter(r.config.IncludeTags, r.config.ExcludeTags))
	}
	ics = append(ics, r.interceptors...)
	ics = append(ics, ConditionInterceptor())
	invoke := chain(ics, r.invoke)

	r.runGroup(ctx, newScope(root, nil), invoke, report)

	glog.V(1).Infof("Run finished: %s", report.Summary())
	return report
}

func (r *Runner) runGroup(ctx context.Context, s *scope, invoke Invoker, report *Report) {
	glog.V(2).Infof("Entering group %s", s.info.ID)

	for _, c := range s.group.Cases {
		r.runCase(ctx, s, c, invoke, report)
	}
	for _, g := range s.group.Groups {
		if g == nil {
			continue
		}
		r.runGroup(ctx, newScope(g, s), invoke, report)
	}

	if !s.started {
		return
	}
	if h := s.group.Hooks.AfterAll; h != nil {
		glog.V(1).Infof("Running AfterAll for %s", s.info.ID)
		if err := h(ctx, s.info, r.reporter); err != nil {
			glog.Warningf("AfterAll for %s failed: %v", s.info.ID, err)
			report.HookErrors = append(report.HookErrors, fmt.Errorf("AfterAll %s: %w", s.info.ID, err))
		}
	}
}

func (r *Runner) runCase(ctx context.Context, s *scope, c Case, invoke Invoker, report *Report) {
	info := s.caseInfo(c)
	c = r.config.apply(c, info)

	if c.Disabled {
		reason := c.DisabledReason
		if reason == "" {
			reason = "disabled"
		}
		glog.V(1).Infof("Case %s is disabled: %s", info.ID, reason)
		info.TotalRepetitions = 1
		info.Repetition = 1
		report.Results = append(report.Results, Result{
			Info:   info,
			Status: StatusDisabled,
			Err:    &SkipError{Reason: reason},
		})
		return
	}

	n := c.repetitions()
	for i := 1; i <= n; i++ {
		rep := info
		rep.Repetition = i
		rep.TotalRepetitions = n

		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{
				Info:   rep,
				Status: StatusSkipped,
				Err:    &SkipError{Reason: "run cancelled: " + err.Error()},
			})
			continue
		}

		res := invoke(ctx, &Invocation{
			Info:       rep,
			Conditions: c.Conditions,
			run:        c.Run,
			scope:      s,
		})
		logResult(res)
		report.Results = append(report.Results, res)
	}
}

// invoke is the innermost Invoker: group setup, hooks and the case body.
func (r *Runner) invoke(ctx context.Context, inv *Invocation) Result {
	start := now()
	res := r.execute(ctx, inv)
	res.Duration = now().Sub(start)
	return res
}

func (r *Runner) execute(ctx context.Context, inv *Invocation) Result {
	if err := inv.scope.start(ctx, r.reporter); err != nil {
		return Result{Info: inv.Info, Status: StatusFailed, Err: err}
	}

	scopes := inv.scope.lineage()
	var hookErrs []error

	for _, s := range scopes {
		if h := s.group.Hooks.BeforeEach; h != nil {
			if err := h(ctx, inv.Info, r.reporter); err != nil {
				hookErrs = append(hookErrs, fmt.Errorf("BeforeEach %s: %w", s.info.ID, err))
				break
			}
		}
	}

	t := newT(inv.Info, r.reporter)
	skipped := false
	if len(hookErrs) == 0 && inv.run != nil {
		skipped = t.run(func(t *T) { inv.run(ctx, t) })
	}

	for i := len(scopes) - 1; i >= 0; i-- {
		if h := scopes[i].group.Hooks.AfterEach; h != nil {
			if err := h(ctx, inv.Info, r.reporter); err != nil {
				hookErrs = append(hookErrs, fmt.Errorf("AfterEach %s: %w", scopes[i].info.ID, err))
			}
		}
	}

	if err := errors.Join(append([]error{t.Err()}, hookErrs...)...); err != nil {
		return Result{Info: inv.Info, Status: StatusFailed, Err: err}
	}
	if skipped {
		return Result{Info: inv.Info, Status: StatusSkipped, Err: t.skip}
	}
	return Result{Info: inv.Info, Status: StatusPassed}
}

func logResult(res Result) {
	name := res.Info.FullDisplayName()
	switch res.Status {
	case StatusFailed:
		glog.Warningf("%s %s (repetition %d/%d): %v", res.Status, name,
			res.Info.Repetition, res.Info.TotalRepetitions, res.Err)
	case StatusSkipped:
		glog.V(1).Infof("%s %s: %v", res.Status, name, res.Err)
	default:
		glog.V(1).Infof("%s %s (repetition %d/%d) in %v", res.Status, name,
			res.Info.Repetition, res.Info.TotalRepetitions, res.Duration)
	}
}

// scope tracks a group while it is being run.
type scope struct {
	group  *Group
	parent *scope
	info   Info

	started bool
	err     error
}

func newScope(g *Group, parent *scope) *scope {
	s := &scope{group: g, parent: parent}
	display := displayNameOf(g.Name, g.DisplayName)

	if parent == nil {
		s.info = Info{
			ID:          g.Name,
			Name:        g.Name,
			DisplayName: display,
			Path:        []string{display},
			Tags:        mergeTags(nil, g.Tags),
		}
		return s
	}

	s.info = Info{
		ID:          joinPath([]string{parent.info.ID, g.Name}, idSeparator),
		Name:        g.Name,
		DisplayName: display,
		Path:        appendPath(parent.info.Path, display),
		Tags:        mergeTags(parent.info.Tags, g.Tags),
	}
	return s
}

func (s *scope) caseInfo(c Case) Info {
	display := displayNameOf(c.Name, c.DisplayName)
	return Info{
		ID:          joinPath([]string{s.info.ID, c.Name}, idSeparator),
		Name:        c.Name,
		DisplayName: display,
		Path:        appendPath(s.info.Path, display),
		Tags:        mergeTags(s.info.Tags, c.Tags),
	}
}

// start runs BeforeAll of this group and its ancestors, once each.
func (s *scope) start(ctx context.Context, r Reporter) error {
	if s == nil {
		return nil
	}
	if s.parent != nil {
		if err := s.parent.start(ctx, r); err != nil {
			return err
		}
	}
	if s.started {
		return s.err
	}
	s.started = true

	if h := s.group.Hooks.BeforeAll; h != nil {
		glog.V(1).Infof("Running BeforeAll for %s", s.info.ID)
		if err := h(ctx, s.info, r); err != nil {
			glog.Warningf("BeforeAll for %s failed: %v", s.info.ID, err)
			s.err = fmt.Errorf("BeforeAll %s: %w", s.info.ID, err)
		}
	}
	return s.err
}

// lineage returns the scopes from the root down to s.
func (s *scope) lineage() []*scope {
	var out []*scope
	for cur := s; cur != nil; cur = cur.parent {
		out = append([]*scope{cur}, out...)
	}
	return out
}

func appendPath(path []string, name string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, name)
}
