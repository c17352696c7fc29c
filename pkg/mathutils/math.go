// Package mathutils provides the pure integer and circle arithmetic used by
// the MathUtils suite.
//
// Integers are Go's int (64-bit on every supported target). Add, Multiply and
// the single overflowing Divide case (math.MinInt / -1) wrap silently, which
// is the behaviour the language defines for signed integers. Divide by zero is
// the only failure and is reported as a *DivisionByZeroError.
//
// Nothing here holds state, blocks or logs, so every function is safe to call
// from any number of goroutines.
package mathutils

import "math"

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of two integers.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns the quotient of a and b truncated toward zero.
// It fails with a *DivisionByZeroError when b is zero; the returned
// quotient is 0 in that case and must be ignored.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{Dividend: a}
	}
	return a / b, nil
}

// ComputeCircleArea returns π·r². A negative radius is not rejected.
func ComputeCircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}
