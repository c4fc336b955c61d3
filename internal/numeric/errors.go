package numeric

import "fmt"

// DivisionByZeroError reports an attempt to invert or divide by a zero value.
type DivisionByZeroError struct {
	Operation string // The operation that failed (invert, divide)
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %s", e.Operation)
}

// NewDivisionByZeroError creates a new DivisionByZeroError.
func NewDivisionByZeroError(operation string) *DivisionByZeroError {
	return &DivisionByZeroError{Operation: operation}
}

// IsDivisionByZeroError checks if an error is a DivisionByZeroError.
func IsDivisionByZeroError(err error) bool {
	_, ok := err.(*DivisionByZeroError)
	return ok
}
