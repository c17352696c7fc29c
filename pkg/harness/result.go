package harness

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Status is the outcome of one case repetition.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
	StatusDisabled
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASS"
	case StatusFailed:
		return "FAIL"
	case StatusSkipped:
		return "SKIP"
	case StatusDisabled:
		return "DISABLED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result records one case repetition.
type Result struct {
	Info     Info
	Status   Status
	Err      error
	Duration time.Duration
}

// SkipError carries the reason a case was skipped or disabled.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return "skipped: " + e.Reason
}

// IsSkip reports whether err is, or wraps, a *SkipError.
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}

// Summary counts results by status.
type Summary struct {
	Passed   int
	Failed   int
	Skipped  int
	Disabled int
}

// Total is the number of results counted.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped + s.Disabled
}

func (s Summary) String() string {
	return fmt.Sprintf("%d results: %d passed, %d failed, %d skipped, %d disabled",
		s.Total(), s.Passed, s.Failed, s.Skipped, s.Disabled)
}

// Report is the ordered outcome of a run.
type Report struct {
	Results []Result
	// HookErrors holds AfterAll failures, which belong to no single case.
	HookErrors []error
}

// Summary counts the results by status.
func (r *Report) Summary() Summary {
	var s Summary
	for _, res := range r.Results {
		switch res.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		case StatusDisabled:
			s.Disabled++
		}
	}
	return s
}

// Failed reports whether any case or group hook failed.
func (r *Report) Failed() bool {
	return len(r.HookErrors) > 0 || r.Summary().Failed > 0
}

// Lookup returns the results recorded for the case with the given ID.
func (r *Report) Lookup(id string) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Info.ID == id {
			out = append(out, res)
		}
	}
	return out
}

// WriteText writes one line per result followed by the summary.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		line := fmt.Sprintf("%s%-8s %s", indent(len(res.Info.Path)-1), res.Status, res.Info.DisplayName)
		if res.Info.TotalRepetitions > 1 {
			line += fmt.Sprintf(" (repetition %d of %d)", res.Info.Repetition, res.Info.TotalRepetitions)
		}
		if len(res.Info.Tags) > 0 {
			line += " " + formatTags(res.Info.Tags)
		}
		if res.Err != nil && res.Status != StatusPassed {
			line += ": " + res.Err.Error()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, err := range r.HookErrors {
		if _, werr := fmt.Fprintf(w, "HOOK     %v\n", err); werr != nil {
			return werr
		}
	}
	_, err := fmt.Fprintln(w, r.Summary())
	return err
}
