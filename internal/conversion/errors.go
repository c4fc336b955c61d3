package conversion

import "fmt"

// MismatchedDimensionsError reports an attempted conversion between units of
// different physical dimensions.
type MismatchedDimensionsError struct {
	SrcUnit       string
	SrcDimension  string
	DestUnit      string
	DestDimension string
}

// Error implements the error interface.
func (e *MismatchedDimensionsError) Error() string {
	return fmt.Sprintf("mismatched dimensions: %s (%s) vs %s (%s)",
		e.SrcUnit, e.SrcDimension, e.DestUnit, e.DestDimension)
}

// NewMismatchedDimensionsError creates a new MismatchedDimensionsError.
func NewMismatchedDimensionsError(srcUnit, srcDim, destUnit, destDim string) *MismatchedDimensionsError {
	return &MismatchedDimensionsError{
		SrcUnit:       srcUnit,
		SrcDimension:  srcDim,
		DestUnit:      destUnit,
		DestDimension: destDim,
	}
}

// NonPositiveFactorError reports a conversion constructed with a factor that
// is zero or negative. A conversion can only scale, never flip sign or
// vanish.
type NonPositiveFactorError struct {
	Factor float64
}

// Error implements the error interface.
func (e *NonPositiveFactorError) Error() string {
	return fmt.Sprintf("conversion factor must be positive, got %g", e.Factor)
}

// NewNonPositiveFactorError creates a new NonPositiveFactorError.
func NewNonPositiveFactorError(factor float64) *NonPositiveFactorError {
	return &NonPositiveFactorError{Factor: factor}
}

// NoConversionPathError reports that two units share a dimension but no
// chain of known conversions connects them.
type NoConversionPathError struct {
	SrcUnit   string
	DestUnit  string
	Dimension string
}

// Error implements the error interface.
func (e *NoConversionPathError) Error() string {
	return fmt.Sprintf("no conversion path from %s to %s in dimension %s",
		e.SrcUnit, e.DestUnit, e.Dimension)
}

// NewNoConversionPathError creates a new NoConversionPathError.
func NewNoConversionPathError(srcUnit, destUnit, dimension string) *NoConversionPathError {
	return &NoConversionPathError{SrcUnit: srcUnit, DestUnit: destUnit, Dimension: dimension}
}

// InvalidDimensionError reports a dimension code that is not built from the
// known base dimension letters.
type InvalidDimensionError struct {
	Dimension string
}

// Error implements the error interface.
func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension code: %q", e.Dimension)
}

// NewInvalidDimensionError creates a new InvalidDimensionError.
func NewInvalidDimensionError(dimension string) *InvalidDimensionError {
	return &InvalidDimensionError{Dimension: dimension}
}

// InvalidUnitForDimensionError reports a unit handed to a converter of a
// different dimension.
type InvalidUnitForDimensionError struct {
	Unit      string
	Dimension string
}

// Error implements the error interface.
func (e *InvalidUnitForDimensionError) Error() string {
	return fmt.Sprintf("unit %s does not belong to dimension %s", e.Unit, e.Dimension)
}

// NewInvalidUnitForDimensionError creates a new InvalidUnitForDimensionError.
func NewInvalidUnitForDimensionError(unit, dimension string) *InvalidUnitForDimensionError {
	return &InvalidUnitForDimensionError{Unit: unit, Dimension: dimension}
}

// IncompatibleConversionsError reports a combinator applied to two
// conversions that do not share the endpoint the combinator requires.
type IncompatibleConversionsError struct {
	Combinator string
	First      string
	Second     string
}

// Error implements the error interface.
func (e *IncompatibleConversionsError) Error() string {
	return fmt.Sprintf("cannot combine %s and %s as %s", e.First, e.Second, e.Combinator)
}

// NewIncompatibleConversionsError creates a new IncompatibleConversionsError.
func NewIncompatibleConversionsError(combinator, first, second string) *IncompatibleConversionsError {
	return &IncompatibleConversionsError{Combinator: combinator, First: first, Second: second}
}

// IsMismatchedDimensionsError checks if an error is a MismatchedDimensionsError.
func IsMismatchedDimensionsError(err error) bool {
	_, ok := err.(*MismatchedDimensionsError)
	return ok
}

// IsNonPositiveFactorError checks if an error is a NonPositiveFactorError.
func IsNonPositiveFactorError(err error) bool {
	_, ok := err.(*NonPositiveFactorError)
	return ok
}

// IsIncompatibleConversionsError checks if an error is an IncompatibleConversionsError.
func IsIncompatibleConversionsError(err error) bool {
	_, ok := err.(*IncompatibleConversionsError)
	return ok
}

// IsNoConversionPathError checks if an error is a NoConversionPathError.
func IsNoConversionPathError(err error) bool {
	_, ok := err.(*NoConversionPathError)
	return ok
}

// IsInvalidDimensionError checks if an error is an InvalidDimensionError.
func IsInvalidDimensionError(err error) bool {
	_, ok := err.(*InvalidDimensionError)
	return ok
}

// IsInvalidUnitForDimensionError checks if an error is an InvalidUnitForDimensionError.
func IsInvalidUnitForDimensionError(err error) bool {
	_, ok := err.(*InvalidUnitForDimensionError)
	return ok
}
