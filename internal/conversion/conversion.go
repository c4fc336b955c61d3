// Package conversion implements the conversion engine: directed weighted
// edges between same-dimension derived units, the four edge-composition
// operators, and per-dimension converters that search the implicit
// conversion graph with a path cache.
package conversion

import (
	"fmt"

	"github.com/unitgraph/unitgraph/internal/numeric"
	"github.com/unitgraph/unitgraph/internal/unit"
)

// Conversion is a directed multiplicative relationship between two derived
// units of the same dimension: a value in SrcUnit times Factor is the same
// physical quantity in DestUnit. Immutable.
type Conversion struct {
	srcUnit  *unit.Derived
	destUnit *unit.Derived
	factor   numeric.FloatWithError
}

// New creates a conversion between two unit arguments. Each argument may be
// a string expression, a unit.Term, a *unit.Unit or a *unit.Derived; both
// are normalized to derived units once, at this boundary. The units must
// share a dimension and the factor must be strictly positive.
func New(src, dest any, factor numeric.FloatWithError) (*Conversion, error) {
	srcUnit, err := Resolve(src)
	if err != nil {
		return nil, err
	}
	destUnit, err := Resolve(dest)
	if err != nil {
		return nil, err
	}
	if srcUnit.Dimension() != destUnit.Dimension() {
		return nil, NewMismatchedDimensionsError(
			srcUnit.String(), srcUnit.Dimension(),
			destUnit.String(), destUnit.Dimension())
	}
	if factor.Value() <= 0 {
		return nil, NewNonPositiveFactorError(factor.Value())
	}
	return &Conversion{srcUnit: srcUnit, destUnit: destUnit, factor: factor}, nil
}

// NewFromFactor is New with a plain float64 factor.
func NewFromFactor(src, dest any, factor float64) (*Conversion, error) {
	return New(src, dest, numeric.New(factor))
}

// Identity returns the factor-1, error-0 conversion from u to itself.
func Identity(u *unit.Derived) *Conversion {
	return &Conversion{srcUnit: u, destUnit: u, factor: numeric.Exact(1)}
}

// Resolve normalizes a unit argument to a derived unit. Accepted kinds:
// string expression, unit.Term, *unit.Unit, *unit.Derived.
func Resolve(v any) (*unit.Derived, error) {
	switch x := v.(type) {
	case *unit.Derived:
		return x, nil
	case unit.Term:
		return unit.NewDerived(x)
	case *unit.Unit:
		t, err := unit.NewTerm(x, nil, 1)
		if err != nil {
			return nil, err
		}
		return unit.NewDerived(t)
	case string:
		return unit.ParseDerived(x)
	}
	return nil, unit.NewInvalidUnitSymbolError(fmt.Sprintf("%T", v))
}

// SrcUnit returns the source unit.
func (c *Conversion) SrcUnit() *unit.Derived { return c.srcUnit }

// DestUnit returns the destination unit.
func (c *Conversion) DestUnit() *unit.Derived { return c.destUnit }

// Factor returns the conversion factor with its error bound.
func (c *Conversion) Factor() numeric.FloatWithError { return c.factor }

// Inv returns the reverse conversion with the inverted factor.
func (c *Conversion) Inv() (*Conversion, error) {
	f, err := c.factor.Inv()
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: c.destUnit, destUnit: c.srcUnit, factor: f}, nil
}

// CombineSequential chains A->B with B->C into A->C. The factors multiply.
func (c *Conversion) CombineSequential(o *Conversion) (*Conversion, error) {
	if !c.destUnit.Equal(o.srcUnit) {
		return nil, NewIncompatibleConversionsError("sequential", c.String(), o.String())
	}
	return &Conversion{
		srcUnit:  c.srcUnit,
		destUnit: o.destUnit,
		factor:   c.factor.Mul(o.factor),
	}, nil
}

// CombineConvergent derives A->B from A->C and B->C, two edges ending at a
// common unit. The factors divide.
func (c *Conversion) CombineConvergent(o *Conversion) (*Conversion, error) {
	if !c.destUnit.Equal(o.destUnit) {
		return nil, NewIncompatibleConversionsError("convergent", c.String(), o.String())
	}
	f, err := c.factor.Div(o.factor)
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: c.srcUnit, destUnit: o.srcUnit, factor: f}, nil
}

// CombineDivergent derives B->C from A->B and A->C, two edges starting at a
// common unit.
func (c *Conversion) CombineDivergent(o *Conversion) (*Conversion, error) {
	if !c.srcUnit.Equal(o.srcUnit) {
		return nil, NewIncompatibleConversionsError("divergent", c.String(), o.String())
	}
	f, err := o.factor.Div(c.factor)
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: c.destUnit, destUnit: o.destUnit, factor: f}, nil
}

// CombineOpposite derives B->C from A->B and C->A, two edges pointing into
// the shared unit A from opposite ends: the chain C->A->B has factor
// o.factor*c.factor, so B->C is its reciprocal.
func (c *Conversion) CombineOpposite(o *Conversion) (*Conversion, error) {
	if !c.srcUnit.Equal(o.destUnit) {
		return nil, NewIncompatibleConversionsError("opposite", c.String(), o.String())
	}
	f, err := c.factor.Mul(o.factor).Inv()
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: c.destUnit, destUnit: o.srcUnit, factor: f}, nil
}

// RemovePrefixes returns an equivalent conversion between the prefix-free
// forms of both units, rescaling the factor by the ratio of the stripped
// prefix multipliers. One registered edge (m<->ft) then serves every
// prefixed variant (km<->ft, mm<->ft) without storing each separately.
func (c *Conversion) RemovePrefixes() (*Conversion, error) {
	src, srcMult, err := c.srcUnit.RemovePrefixes()
	if err != nil {
		return nil, err
	}
	dest, destMult, err := c.destUnit.RemovePrefixes()
	if err != nil {
		return nil, err
	}
	ratio, err := numeric.Exact(srcMult).Div(numeric.Exact(destMult))
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: src, destUnit: dest, factor: c.factor.Mul(ratio)}, nil
}

// ApplyExponent raises the conversion to the n-th power on both the units
// and the factor: from m->ft it builds m2->ft2 with the squared factor.
func (c *Conversion) ApplyExponent(n int) (*Conversion, error) {
	src := unit.MustDerived()
	for _, t := range c.srcUnit.Terms() {
		applied, err := t.ApplyExponent(n)
		if err != nil {
			return nil, err
		}
		if err := src.AddTerm(applied); err != nil {
			return nil, err
		}
	}
	dest := unit.MustDerived()
	for _, t := range c.destUnit.Terms() {
		applied, err := t.ApplyExponent(n)
		if err != nil {
			return nil, err
		}
		if err := dest.AddTerm(applied); err != nil {
			return nil, err
		}
	}
	f, err := c.factor.Pow(n)
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: src, destUnit: dest, factor: f}, nil
}

// String renders the conversion as "src -> dest (factor)".
func (c *Conversion) String() string {
	return c.srcUnit.String() + " -> " + c.destUnit.String() + " (" + c.factor.String() + ")"
}
