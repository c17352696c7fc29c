// Package mathsuite holds the MathUtils test plan as harness data.
package mathsuite

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/mathutils-demo/mathutils/pkg/harness"
	"github.com/mathutils-demo/mathutils/pkg/mathutils"
)

// Tags used by the plan.
const (
	TagMath   = "Math"
	TagCircle = "Circle"
)

// ServerUp is consulted by the divide case's assumption.
type ServerUp func() bool

// Options tune the plan.
type Options struct {
	// ServerUp defaults to always true.
	ServerUp ServerUp
	// CircleRepetitions is the repeat count of the repeated circle case; 0 means 3.
	CircleRepetitions int
}

// New returns the plan with default options.
func New() *harness.Group {
	return NewWithOptions(Options{})
}

// NewWithOptions returns the "When running MathUtils" plan.
func NewWithOptions(opts Options) *harness.Group {
	serverUp := opts.ServerUp
	if serverUp == nil {
		serverUp = func() bool { return true }
	}
	reps := opts.CircleRepetitions
	if reps < 1 {
		reps = 3
	}

	return &harness.Group{
		Name:        "MathUtilsTest",
		DisplayName: "When running MathUtils",
		Hooks: harness.Hooks{
			BeforeAll: func(ctx context.Context, info harness.Info, r harness.Reporter) error {
				glog.Info("This needs to run before all")
				return nil
			},
			BeforeEach: announce,
			AfterEach: func(ctx context.Context, info harness.Info, r harness.Reporter) error {
				glog.V(2).Info("Cleaning up...")
				return nil
			},
		},
		Cases: []harness.Case{
			{
				Name:        "testAdd",
				DisplayName: "Testing add method",
				Run: func(ctx context.Context, t *harness.T) {
					t.Equal(2, mathutils.Add(1, 1), "The add method should add two numbers")
					t.Equal(5, mathutils.Add(1, 4))
				},
			},
			{
				Name:        "testMultiply",
				DisplayName: "multiply method",
				Tags:        []string{TagMath},
				Run: func(ctx context.Context, t *harness.T) {
					t.Publish("value", "Running TestReporter"+t.Info().DisplayName+" with tags "+tagList(t.Info().Tags))
					t.All(
						func(t *harness.T) { t.Equal(4, mathutils.Multiply(2, 2)) },
						func(t *harness.T) { t.Equal(0, mathutils.Multiply(2, 0)) },
						func(t *harness.T) { t.Equal(-2, mathutils.Multiply(2, -1)) },
						func(t *harness.T) { t.Equal(1, mathutils.Multiply(-1, -1)) },
					)
				},
			},
			{
				Name: "testDivide",
				Tags: []string{TagMath},
				Run: func(ctx context.Context, t *harness.T) {
					t.Assume(serverUp(), "server is up")
					t.ErrorIs(func() error {
						_, err := mathutils.Divide(1, 0)
						return err
					}, mathutils.ErrDivisionByZero, "Divide by zero should throw")
				},
			},
			{
				Name: "testComputeCircleRadius",
				Tags: []string{TagCircle},
				Run: func(ctx context.Context, t *harness.T) {
					t.Equal(314.1592653589793, mathutils.ComputeCircleArea(10), "Should return right circle area")
				},
			},
			{
				Name:   "testComputeCircleRadiusRepeated",
				Tags:   []string{TagCircle},
				Repeat: reps,
				Run: func(ctx context.Context, t *harness.T) {
					info := t.Info()
					t.EqualLazy(314.1592653589793, mathutils.ComputeCircleArea(10), func() string {
						return fmt.Sprintf("Should return right circle area on repetition %d of %d",
							info.Repetition, info.TotalRepetitions)
					})
				},
			},
			{
				Name:           "testDisabled",
				DisplayName:    "TDD method. Should not run",
				Disabled:       true,
				DisabledReason: "TDD placeholder",
				Run: func(ctx context.Context, t *harness.T) {
					t.Fail("This test should be disabled")
				},
			},
		},
		Groups: []*harness.Group{addGroup()},
	}
}

// addGroup groups the add cases under "add method".
func addGroup() *harness.Group {
	return &harness.Group{
		Name:        "AddTest",
		DisplayName: "add method",
		Tags:        []string{TagMath},
		Cases: []harness.Case{
			{
				Name:        "testAddPositive",
				DisplayName: "when adding two positive numbers",
				Run: func(ctx context.Context, t *harness.T) {
					t.Equal(5, mathutils.Add(1, 4), "should return the right sum")
				},
			},
			{
				Name:        "testAddNegative",
				DisplayName: "when adding two negative numbers",
				Run: func(ctx context.Context, t *harness.T) {
					expected := -5
					actual := mathutils.Add(-1, -4)
					t.EqualLazy(expected, actual, func() string {
						return fmt.Sprintf("should return sum %d but returned %d", expected, actual)
					})
				},
			},
			{
				Name:        "testAddPositiveAndNegative",
				DisplayName: "when adding positive & negative numbers",
				Run: func(ctx context.Context, t *harness.T) {
					t.Equal(2, mathutils.Add(-1, 3), "should return the right sum")
				},
			},
		},
	}
}

// announce publishes which case is about to run.
func announce(ctx context.Context, info harness.Info, r harness.Reporter) error {
	harness.PublishValue(r, info, "Running "+info.DisplayName+" with tags "+tagList(info.Tags))
	return nil
}

func tagList(tags []string) string {
	return "[" + strings.Join(tags, ", ") + "]"
}
