package mathutils

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero matches any *DivisionByZeroError under errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// DivisionByZeroError is returned by Divide when the divisor is zero.
type DivisionByZeroError struct {
	Dividend int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot divide %d: %v", e.Dividend, ErrDivisionByZero)
}

// Is reports whether target is ErrDivisionByZero.
func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}
