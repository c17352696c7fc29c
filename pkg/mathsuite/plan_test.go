package mathsuite_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mathutils-demo/mathutils/pkg/harness"
	"github.com/mathutils-demo/mathutils/pkg/mathsuite"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

var _ = Describe("MathUtils harness plan", func() {
	var reporter *harness.LogReporter

	BeforeEach(func() {
		reporter = harness.NewLogReporter()
	})

	run := func(plan *harness.Group, opts ...harness.Option) *harness.Report {
		opts = append([]harness.Option{harness.WithReporter(reporter)}, opts...)
		return harness.NewRunner(opts...).Run(context.Background(), plan)
	}

	It("passes every enabled case and reports the disabled one", func() {
		report := run(mathsuite.New())

		Expect(report.Failed()).To(BeFalse())
		Expect(report.Summary()).To(Equal(harness.Summary{Passed: 10, Disabled: 1}))

		disabled := report.Lookup("MathUtilsTest/testDisabled")
		Expect(disabled).To(HaveLen(1))
		Expect(disabled[0].Status).To(Equal(harness.StatusDisabled))
		Expect(disabled[0].Info.DisplayName).To(Equal("TDD method. Should not run"))
	})

	It("repeats the repeated circle case", func() {
		report := run(mathsuite.New())

		results := report.Lookup("MathUtilsTest/testComputeCircleRadiusRepeated")
		Expect(results).To(HaveLen(3))
		for i, res := range results {
			Expect(res.Info.Repetition).To(Equal(i + 1))
			Expect(res.Info.TotalRepetitions).To(Equal(3))
		}
	})

	It("publishes a report entry before every case", func() {
		run(mathsuite.New())

		var values []string
		for _, e := range reporter.Entries() {
			values = append(values, e.Value)
		}
		Expect(values).To(ContainElements(
			"Running Testing add method with tags []",
			"Running multiply method with tags [Math]",
			"Running TestReportermultiply method with tags [Math]",
			"Running when adding two positive numbers with tags [Math]",
		))
	})

	It("runs only Math cases when filtered by tag", func() {
		report := run(mathsuite.New(), harness.WithTagFilter([]string{mathsuite.TagMath}, nil))

		Expect(report.Summary()).To(Equal(harness.Summary{Passed: 5, Skipped: 5, Disabled: 1}))
		Expect(report.Lookup("MathUtilsTest/AddTest/testAddNegative")[0].Status).To(Equal(harness.StatusPassed))
		Expect(report.Lookup("MathUtilsTest/testComputeCircleRadius")[0].Status).To(Equal(harness.StatusSkipped))
	})

	It("skips divide when the server is down", func() {
		plan := mathsuite.NewWithOptions(mathsuite.Options{ServerUp: func() bool { return false }})
		report := run(plan)

		divide := report.Lookup("MathUtilsTest/testDivide")
		Expect(divide).To(HaveLen(1))
		Expect(divide[0].Status).To(Equal(harness.StatusSkipped))
		Expect(divide[0].Err).To(MatchError(ContainSubstring("server is up")))
		Expect(report.Failed()).To(BeFalse())
	})

	It("applies configuration overrides", func() {
		cfg, err := harness.LoadConfig(envLookup(map[string]string{
			harness.EnvEnabled: "testDisabled",
			harness.EnvRepeat:  "testComputeCircleRadius=2",
		}))
		Expect(err).NotTo(HaveOccurred())

		report := run(mathsuite.New(), harness.WithConfig(cfg))

		Expect(report.Lookup("MathUtilsTest/testComputeCircleRadius")).To(HaveLen(2))
		tdd := report.Lookup("MathUtilsTest/testDisabled")
		Expect(tdd).To(HaveLen(1))
		Expect(tdd[0].Status).To(Equal(harness.StatusFailed))
		Expect(tdd[0].Err).To(MatchError(ContainSubstring("This test should be disabled")))
		Expect(report.Failed()).To(BeTrue())
	})
})
