// Package quantity pairs a scalar value with a derived unit and layers
// arithmetic and affine temperature handling on top of the conversion
// engine.
package quantity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unitgraph/unitgraph/internal/conversion"
	"github.com/unitgraph/unitgraph/internal/numeric"
	"github.com/unitgraph/unitgraph/internal/unit"
)

// Quantity is an immutable value with a unit, e.g. 5 km.
type Quantity struct {
	value float64
	unit  *unit.Derived
}

// New creates a quantity. The unit argument may be a string expression, a
// unit.Term, a *unit.Unit or a *unit.Derived.
func New(value float64, u any) (*Quantity, error) {
	d, err := conversion.Resolve(u)
	if err != nil {
		return nil, err
	}
	return &Quantity{value: value, unit: d}, nil
}

// Parse reads a quantity from text: a leading number followed by an
// optional unit expression, e.g. "5 km" or "9.81 m/s2". A bare number is
// dimensionless.
func Parse(s string) (*Quantity, error) {
	trimmed := strings.TrimSpace(s)
	numEnd := len(trimmed)
	for i, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E' {
			continue
		}
		numEnd = i
		break
	}
	value, err := strconv.ParseFloat(trimmed[:numEnd], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing quantity %q: %w", s, err)
	}
	unitText := strings.TrimSpace(trimmed[numEnd:])
	d, err := unit.ParseDerived(unitText)
	if err != nil {
		return nil, err
	}
	return &Quantity{value: value, unit: d}, nil
}

// Value returns the scalar value.
func (q *Quantity) Value() float64 { return q.value }

// Unit returns the unit.
func (q *Quantity) Unit() *unit.Derived { return q.unit }

// Convert returns the quantity expressed in the destination unit.
// Temperature conversions between absolute scales are affine and handled
// here; everything else delegates to the dimension converter.
func (q *Quantity) Convert(to any) (*Quantity, error) {
	dest, err := conversion.Resolve(to)
	if err != nil {
		return nil, err
	}
	srcDim, destDim := q.unit.Dimension(), dest.Dimension()
	if srcDim != destDim {
		return nil, conversion.NewMismatchedDimensionsError(
			q.unit.String(), srcDim, dest.String(), destDim)
	}
	if q.unit.Equal(dest) {
		return &Quantity{value: q.value, unit: dest}, nil
	}
	if srcDim == "" {
		return &Quantity{value: q.value, unit: dest}, nil
	}

	if v, ok, err := convertAffine(q.value, q.unit, dest); err != nil {
		return nil, err
	} else if ok {
		return &Quantity{value: v, unit: dest}, nil
	}

	cv, err := conversion.GetByDimension(srcDim)
	if err != nil {
		return nil, err
	}
	v, err := cv.Convert(q.value, q.unit, dest)
	if err != nil {
		return nil, err
	}
	return &Quantity{value: v, unit: dest}, nil
}

// ConvertToSI returns the quantity expressed in SI units.
func (q *Quantity) ConvertToSI() (*Quantity, error) {
	si, err := q.unit.ToSI(unit.DefaultRegistry())
	if err != nil {
		return nil, err
	}
	return q.Convert(si)
}

// Add returns q+o after converting o to q's unit.
func (q *Quantity) Add(o *Quantity) (*Quantity, error) {
	converted, err := o.Convert(q.unit)
	if err != nil {
		return nil, err
	}
	return &Quantity{value: q.value + converted.value, unit: q.unit}, nil
}

// Sub returns q-o after converting o to q's unit.
func (q *Quantity) Sub(o *Quantity) (*Quantity, error) {
	converted, err := o.Convert(q.unit)
	if err != nil {
		return nil, err
	}
	return &Quantity{value: q.value - converted.value, unit: q.unit}, nil
}

// Mul returns the product; the units merge term by term.
func (q *Quantity) Mul(o *Quantity) (*Quantity, error) {
	merged := q.unit.Copy()
	for _, t := range o.unit.Terms() {
		if err := merged.AddTerm(t); err != nil {
			return nil, err
		}
	}
	return &Quantity{value: q.value * o.value, unit: merged}, nil
}

// Div returns the quotient; the divisor's unit terms are inverted into the
// result. Fails on a zero divisor.
func (q *Quantity) Div(o *Quantity) (*Quantity, error) {
	if o.value == 0 {
		return nil, numeric.NewDivisionByZeroError("divide")
	}
	merged := q.unit.Copy()
	for _, t := range o.unit.Terms() {
		if err := merged.AddTerm(t.Inv()); err != nil {
			return nil, err
		}
	}
	return &Quantity{value: q.value / o.value, unit: merged}, nil
}

// Format renders the value and unit, e.g. "5 km".
func (q *Quantity) Format(ascii bool) string {
	if q.unit.IsDimensionless() {
		return strconv.FormatFloat(q.value, 'g', -1, 64)
	}
	return strconv.FormatFloat(q.value, 'g', -1, 64) + " " + q.unit.Format(ascii)
}

// String returns the ASCII form.
func (q *Quantity) String() string { return q.Format(true) }
