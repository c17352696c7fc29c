// Package harness runs named, tagged and nested test cases against plain Go
// functions. It covers what a JUnit-style runner offers: lifecycle hooks,
// display names, tags, disabled cases, repetition, conditional execution,
// report entries and several assertion styles.
//
// There is no ambient test context. Hooks and case bodies receive the
// describing Info and the Reporter explicitly, through their arguments or
// the *T they are handed.
package harness

import (
	"context"
	"strings"
)

// Func is the body of a case. Failures are recorded on t.
type Func func(ctx context.Context, t *T)

// Hook is a lifecycle callback. For BeforeAll/AfterAll the Info describes the
// group; for BeforeEach/AfterEach it describes the case repetition.
type Hook func(ctx context.Context, info Info, r Reporter) error

// Case is a single named check.
type Case struct {
	Name        string
	DisplayName string
	Tags        []string

	// Disabled cases are reported but never run.
	Disabled       bool
	DisabledReason string

	// Repeat is the number of repetitions; values below 1 mean once.
	Repeat int

	Conditions []Condition
	Run        Func
}

// Hooks groups the lifecycle callbacks of a Group.
type Hooks struct {
	BeforeAll  Hook
	AfterAll   Hook
	BeforeEach Hook
	AfterEach  Hook
}

// Group is a nested collection of cases sharing tags and hooks.
type Group struct {
	Name        string
	DisplayName string
	Tags        []string
	Hooks       Hooks
	Cases       []Case
	Groups      []*Group
}

// Info describes the case (or group) being executed.
type Info struct {
	// ID is the slash separated path of Names, e.g. "MathUtils/AddTest/testAddPositive".
	ID          string
	Name        string
	DisplayName string
	// Path holds the display names from the outermost group down.
	Path []string
	// Tags includes the tags inherited from enclosing groups.
	Tags []string

	Repetition       int
	TotalRepetitions int
}

// FullDisplayName joins Path with " > ".
func (i Info) FullDisplayName() string {
	return joinPath(i.Path, pathSeparator)
}

// HasTag reports whether tag is among the effective tags.
func (i Info) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func displayNameOf(name, display string) string {
	if display != "" {
		return display
	}
	return name
}

func (c *Case) repetitions() int {
	if c.Repeat < 1 {
		return 1
	}
	return c.Repeat
}

// mergeTags returns parent followed by the tags of own not already present.
func mergeTags(parent, own []string) []string {
	out := make([]string, 0, len(parent)+len(own))
	out = append(out, parent...)
	for _, t := range own {
		dup := false
		for _, p := range out {
			if p == t {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}
