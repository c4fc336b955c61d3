package unit

import "fmt"

// InvalidUnitSymbolError reports unit-term text that matched no known
// prefix/unit combination.
type InvalidUnitSymbolError struct {
	Symbol string
}

// Error implements the error interface.
func (e *InvalidUnitSymbolError) Error() string {
	return fmt.Sprintf("invalid unit symbol: %q", e.Symbol)
}

// NewInvalidUnitSymbolError creates a new InvalidUnitSymbolError.
func NewInvalidUnitSymbolError(symbol string) *InvalidUnitSymbolError {
	return &InvalidUnitSymbolError{Symbol: symbol}
}

// InvalidPrefixError reports a prefix not accepted by the target unit.
type InvalidPrefixError struct {
	Prefix string
	Unit   string
}

// Error implements the error interface.
func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("prefix %q is not accepted by unit %q", e.Prefix, e.Unit)
}

// NewInvalidPrefixError creates a new InvalidPrefixError.
func NewInvalidPrefixError(prefix, unit string) *InvalidPrefixError {
	return &InvalidPrefixError{Prefix: prefix, Unit: unit}
}

// InvalidExponentError reports a term exponent that is zero or outside the
// supported range.
type InvalidExponentError struct {
	Exponent int
}

// Error implements the error interface.
func (e *InvalidExponentError) Error() string {
	return fmt.Sprintf("invalid unit exponent: %d", e.Exponent)
}

// NewInvalidExponentError creates a new InvalidExponentError.
func NewInvalidExponentError(exponent int) *InvalidExponentError {
	return &InvalidExponentError{Exponent: exponent}
}

// DuplicateUnitError reports a second registration under an existing name.
type DuplicateUnitError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit already registered: %q", e.Name)
}

// NewDuplicateUnitError creates a new DuplicateUnitError.
func NewDuplicateUnitError(name string) *DuplicateUnitError {
	return &DuplicateUnitError{Name: name}
}

// IsInvalidUnitSymbolError checks if an error is an InvalidUnitSymbolError.
func IsInvalidUnitSymbolError(err error) bool {
	_, ok := err.(*InvalidUnitSymbolError)
	return ok
}

// IsInvalidPrefixError checks if an error is an InvalidPrefixError.
func IsInvalidPrefixError(err error) bool {
	_, ok := err.(*InvalidPrefixError)
	return ok
}

// IsInvalidExponentError checks if an error is an InvalidExponentError.
func IsInvalidExponentError(err error) bool {
	_, ok := err.(*InvalidExponentError)
	return ok
}

// IsDuplicateUnitError checks if an error is a DuplicateUnitError.
func IsDuplicateUnitError(err error) bool {
	_, ok := err.(*DuplicateUnitError)
	return ok
}
