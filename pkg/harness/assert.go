package harness

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"
)

// failNow and skipNow unwind a case body; the runner recovers them.
type (
	failNow struct{}
	skipNow struct{}
)

// T collects the outcome of one case repetition. It satisfies
// assert.TestingT, so testify assertions can be used against it directly.
type T struct {
	info     Info
	reporter Reporter
	failures []error
	skip     *SkipError
}

func newT(info Info, r Reporter) *T {
	return &T{info: info, reporter: r}
}

// Info describes the running case.
func (t *T) Info() Info { return t.info }

// Reporter is where report entries go.
func (t *T) Reporter() Reporter { return t.reporter }

// Publish sends a report entry stamped with the current time.
func (t *T) Publish(key, value string) {
	publish(t.reporter, t.info.ID, key, value)
}

// Errorf records a failure and keeps going.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failures = append(t.failures, fmt.Errorf(format, args...))
}

// Helper exists for testify's tHelper interface.
func (t *T) Helper() {}

// Fail records msg as a failure and stops the case.
func (t *T) Fail(msg string) {
	t.failures = append(t.failures, errors.New(msg))
	t.FailNow()
}

// FailNow stops the case; it must be called from the case goroutine.
func (t *T) FailNow() {
	panic(failNow{})
}

// Failed reports whether any failure has been recorded.
func (t *T) Failed() bool { return len(t.failures) > 0 }

// Err joins every recorded failure, or returns nil.
func (t *T) Err() error { return errors.Join(t.failures...) }

// Assume stops the case as skipped when cond is false.
func (t *T) Assume(cond bool, reason string) {
	if cond {
		return
	}
	t.skip = &SkipError{Reason: "assumption failed: " + reason}
	panic(skipNow{})
}

// Equal checks expected == actual; msgAndArgs is formatted eagerly.
func (t *T) Equal(expected, actual interface{}, msgAndArgs ...interface{}) bool {
	return assert.Equal(t, expected, actual, msgAndArgs...)
}

// EqualLazy checks expected == actual and only builds the message on failure.
func (t *T) EqualLazy(expected, actual interface{}, msg func() string) bool {
	if assert.ObjectsAreEqual(expected, actual) {
		return true
	}
	t.Errorf("%s: expected %#v, actual %#v", msg(), expected, actual)
	return false
}

// ErrorIs calls fn and checks that the error it returns matches target.
func (t *T) ErrorIs(fn func() error, target error, msgAndArgs ...interface{}) bool {
	return assert.ErrorIs(t, fn(), target, msgAndArgs...)
}

// All runs every check, even after earlier ones fail, and records a single
// failure listing all of them.
func (t *T) All(checks ...func(t *T)) bool {
	var errs []error
	for _, check := range checks {
		sub := newT(t.info, t.reporter)
		if skipped := sub.run(check); skipped {
			t.skip = sub.skip
			panic(skipNow{})
		}
		if err := sub.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return true
	}
	t.failures = append(t.failures,
		fmt.Errorf("%d of %d grouped assertions failed: %w", len(errs), len(checks), errors.Join(errs...)))
	return false
}

// run calls fn with t, turning FailNow, Assume and panics into recorded state.
// It reports whether the case was skipped.
func (t *T) run(fn func(t *T)) (skipped bool) {
	defer func() {
		switch r := recover().(type) {
		case nil, failNow:
		case skipNow:
			skipped = true
		default:
			t.failures = append(t.failures, fmt.Errorf("panic: %v", r))
		}
	}()
	fn(t)
	return false
}
