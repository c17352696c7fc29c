package mathsuite_test

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mathutils-demo/mathutils/pkg/mathutils"
)

var _ = BeforeSuite(func() {
	GinkgoWriter.Println("This needs to run before all")
})

var _ = Describe("When running MathUtils", func() {
	BeforeEach(func() {
		current := CurrentSpecReport()
		AddReportEntry("value", fmt.Sprintf("Running %s with tags %v", current.LeafNodeText, current.Labels()))
	})

	AfterEach(func() {
		GinkgoWriter.Println("Cleaning up...")
	})

	It("Testing add method", func() {
		Expect(mathutils.Add(1, 1)).To(Equal(2), "The add method should add two numbers")
		Expect(mathutils.Add(1, 4)).To(Equal(5))
	})

	It("multiply method", Label("Math"), func() {
		failures := InterceptGomegaFailures(func() {
			Expect(mathutils.Multiply(2, 2)).To(Equal(4))
			Expect(mathutils.Multiply(2, 0)).To(Equal(0))
			Expect(mathutils.Multiply(2, -1)).To(Equal(-2))
			Expect(mathutils.Multiply(-1, -1)).To(Equal(1))
		})
		Expect(failures).To(BeEmpty())
	})

	It("testDivide", Label("Math"), func() {
		isServerUp := true
		if !isServerUp {
			Skip("server is down")
		}

		_, err := mathutils.Divide(1, 0)
		Expect(err).To(MatchError(mathutils.ErrDivisionByZero), "Divide by zero should throw")

		var dbz *mathutils.DivisionByZeroError
		Expect(err).To(BeAssignableToTypeOf(dbz))
	})

	It("testComputeCircleRadius", Label("Circle"), func() {
		Expect(mathutils.ComputeCircleArea(10)).To(Equal(314.1592653589793), "Should return right circle area")
	})

	It("testComputeCircleRadius repeated", Label("Circle"), MustPassRepeatedly(3), func() {
		Expect(mathutils.ComputeCircleArea(10)).To(Equal(314.1592653589793), "Should return right circle area")
	})

	PIt("TDD method. Should not run", func() {
		Fail("This test should be disabled")
	})

	Describe("add method", Label("Math"), func() {
		It("when adding two positive numbers", func() {
			Expect(mathutils.Add(1, 4)).To(Equal(5), "should return the right sum")
		})

		It("when adding two negative numbers", func() {
			expected := -5
			actual := mathutils.Add(-1, -4)
			Expect(actual).To(Equal(expected), func() string {
				return fmt.Sprintf("should return sum %d but returned %d", expected, actual)
			})
		})

		It("when adding positive & negative numbers", func() {
			Expect(mathutils.Add(-1, 3)).To(Equal(2), "should return the right sum")
		})
	})

	Describe("divide method", Label("Math"), func() {
		DescribeTable("truncates toward zero",
			func(a, b, want int) {
				Expect(mathutils.Divide(a, b)).To(Equal(want))
			},
			Entry("7 / 2", 7, 2, 3),
			Entry("-7 / 2", -7, 2, -3),
			Entry("7 / -2", 7, -2, -3),
			Entry("MinInt / -1 wraps", math.MinInt, -1, math.MinInt),
		)

		DescribeTable("fails on a zero divisor",
			func(a int) {
				_, err := mathutils.Divide(a, 0)
				Expect(err).To(MatchError(mathutils.ErrDivisionByZero))
			},
			Entry("positive", 1),
			Entry("zero", 0),
			Entry("negative", -1),
		)
	})

	Describe("circle area", Label("Circle"), func() {
		It("is zero for a zero radius", func() {
			Expect(mathutils.ComputeCircleArea(0)).To(BeZero())
		})

		It("ignores the sign of the radius", func() {
			Expect(mathutils.ComputeCircleArea(-10)).To(Equal(mathutils.ComputeCircleArea(10)))
		})
	})
})
