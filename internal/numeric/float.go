// Package numeric provides scalar values paired with propagated absolute error bounds.
package numeric

import (
	"fmt"
	"math"
)

// FloatWithError is a float64 paired with an absolute error bound. The bound
// is a worst case, not a tight estimate: every arithmetic operation adds the
// operands' contributions plus a rounding term when the result is not exactly
// representable. Values are immutable; operations return new instances.
type FloatWithError struct {
	value    float64
	absError float64
}

// New creates a FloatWithError from a plain float64. Integral values are
// assumed exact; any other value is assumed to be a rounded decimal literal
// and gets half its ULP as the initial error bound.
func New(value float64) FloatWithError {
	if isExactIntegral(value) {
		return FloatWithError{value: value}
	}
	return FloatWithError{value: value, absError: halfULP(value)}
}

// NewWithError creates a FloatWithError with an explicit absolute error bound.
// Negative bounds are normalized to their magnitude.
func NewWithError(value, absError float64) FloatWithError {
	return FloatWithError{value: value, absError: math.Abs(absError)}
}

// Exact creates a FloatWithError with a zero error bound regardless of value.
func Exact(value float64) FloatWithError {
	return FloatWithError{value: value}
}

// Value returns the scalar value.
func (f FloatWithError) Value() float64 { return f.value }

// AbsoluteError returns the absolute error bound.
func (f FloatWithError) AbsoluteError() float64 { return f.absError }

// RelativeError returns |absoluteError/value|. A zero value with a non-zero
// bound yields +Inf; zero value with zero bound yields 0.
func (f FloatWithError) RelativeError() float64 {
	if f.value == 0 {
		if f.absError == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(f.absError / f.value)
}

// Add returns f+o with the error bounds summed. A rounding term is added
// only when the sum is not exactly representable, so chains of exact
// operations stay exact.
func (f FloatWithError) Add(o FloatWithError) FloatWithError {
	v := f.value + o.value
	err := f.absError + o.absError
	if !sumIsExact(f.value, o.value, v) {
		err += halfULP(v)
	}
	return FloatWithError{value: v, absError: err}
}

// Sub returns f-o with the error bounds summed.
func (f FloatWithError) Sub(o FloatWithError) FloatWithError {
	return f.Add(FloatWithError{value: -o.value, absError: o.absError})
}

// Mul returns f*o. The result's relative error is the sum of the operands'
// relative errors, converted back to an absolute bound, plus a rounding term
// when the product is inexact.
func (f FloatWithError) Mul(o FloatWithError) FloatWithError {
	v := f.value * o.value
	err := math.Abs(f.value)*o.absError + math.Abs(o.value)*f.absError
	if math.FMA(f.value, o.value, -v) != 0 {
		err += halfULP(v)
	}
	return FloatWithError{value: v, absError: err}
}

// Div returns f/o. Fails when the divisor's value is zero.
func (f FloatWithError) Div(o FloatWithError) (FloatWithError, error) {
	inv, err := o.Inv()
	if err != nil {
		return FloatWithError{}, err
	}
	return f.Mul(inv), nil
}

// Inv returns 1/f with the relative error preserved.
func (f FloatWithError) Inv() (FloatWithError, error) {
	if f.value == 0 {
		return FloatWithError{}, NewDivisionByZeroError("invert")
	}
	v := 1 / f.value
	err := f.RelativeError() * math.Abs(v)
	if math.FMA(v, f.value, -1) != 0 {
		err += halfULP(v)
	}
	return FloatWithError{value: v, absError: err}, nil
}

// Pow returns f raised to the integer power n. Negative powers invert first
// and fail on a zero value.
func (f FloatWithError) Pow(n int) (FloatWithError, error) {
	base := f
	if n < 0 {
		inv, err := f.Inv()
		if err != nil {
			return FloatWithError{}, err
		}
		base = inv
		n = -n
	}
	out := Exact(1)
	for i := 0; i < n; i++ {
		out = out.Mul(base)
	}
	return out, nil
}

// String renders the value with its bound, e.g. "3.28084±5e-7".
func (f FloatWithError) String() string {
	if f.absError == 0 {
		return fmt.Sprintf("%g", f.value)
	}
	return fmt.Sprintf("%g±%g", f.value, f.absError)
}

// halfULP is the standard bound on the rounding error of a correctly rounded
// operation whose true result lands near v.
func halfULP(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	av := math.Abs(v)
	return (math.Nextafter(av, math.Inf(1)) - av) / 2
}

func isExactIntegral(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v)
}

// sumIsExact reports whether a+b produced no rounding, using the classic
// two-sum residue check.
func sumIsExact(a, b, sum float64) bool {
	bp := sum - a
	ap := sum - bp
	return (a-ap) == 0 && (b-bp) == 0
}
