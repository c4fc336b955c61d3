package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitgraph/unitgraph/internal/numeric"
	"github.com/unitgraph/unitgraph/internal/unit"
)

// Local units kept out of the default registry so these tests stay
// independent of the catalog tables.
var (
	alphaUnit = &unit.Unit{Name: "alpha", Symbol: "al", Dimension: "L"}
	betaUnit  = &unit.Unit{Name: "beta", Symbol: "be", Dimension: "L"}
	gammaUnit = &unit.Unit{Name: "gamma", Symbol: "ga", Dimension: "L"}
	thetaUnit = &unit.Unit{Name: "theta", Symbol: "th", Dimension: "T"}
)

func derived(t *testing.T, u *unit.Unit) *unit.Derived {
	t.Helper()
	d, err := Resolve(u)
	require.NoError(t, err)
	return d
}

func mustConversion(t *testing.T, src, dest *unit.Unit, factor float64) *Conversion {
	t.Helper()
	c, err := NewFromFactor(derived(t, src), derived(t, dest), factor)
	require.NoError(t, err)
	return c
}

func TestNewRejectsMismatchedDimensions(t *testing.T) {
	_, err := NewFromFactor(derived(t, alphaUnit), derived(t, thetaUnit), 2)
	require.Error(t, err)
	assert.True(t, IsMismatchedDimensionsError(err))
}

func TestNewRejectsNonPositiveFactor(t *testing.T) {
	for _, f := range []float64{0, -1.5} {
		_, err := NewFromFactor(derived(t, alphaUnit), derived(t, betaUnit), f)
		require.Error(t, err)
		assert.True(t, IsNonPositiveFactorError(err))
	}
}

func TestIdentity(t *testing.T) {
	d := derived(t, alphaUnit)
	id := Identity(d)
	assert.Equal(t, 1.0, id.Factor().Value())
	assert.Zero(t, id.Factor().AbsoluteError())
	assert.True(t, id.SrcUnit().Equal(id.DestUnit()))
}

func TestInv(t *testing.T) {
	c := mustConversion(t, alphaUnit, betaUnit, 4)
	inv, err := c.Inv()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, inv.Factor().Value(), 1e-15)
	assert.True(t, inv.SrcUnit().Equal(c.DestUnit()))
	assert.True(t, inv.DestUnit().Equal(c.SrcUnit()))
}

func TestCombineSequential(t *testing.T) {
	ab := mustConversion(t, alphaUnit, betaUnit, 3)
	bc := mustConversion(t, betaUnit, gammaUnit, 5)

	ac, err := ab.CombineSequential(bc)
	require.NoError(t, err)
	assert.InDelta(t, 15, ac.Factor().Value(), 1e-12)
	assert.True(t, ac.SrcUnit().Equal(derived(t, alphaUnit)))
	assert.True(t, ac.DestUnit().Equal(derived(t, gammaUnit)))

	_, err = bc.CombineSequential(ab)
	require.Error(t, err)
	assert.True(t, IsIncompatibleConversionsError(err))
}

func TestCombineConvergent(t *testing.T) {
	// alpha->gamma (6) and beta->gamma (2) give alpha->beta (3)
	ag := mustConversion(t, alphaUnit, gammaUnit, 6)
	bg := mustConversion(t, betaUnit, gammaUnit, 2)

	ab, err := ag.CombineConvergent(bg)
	require.NoError(t, err)
	assert.InDelta(t, 3, ab.Factor().Value(), 1e-12)
	assert.True(t, ab.SrcUnit().Equal(derived(t, alphaUnit)))
	assert.True(t, ab.DestUnit().Equal(derived(t, betaUnit)))

	_, err = ag.CombineConvergent(mustConversion(t, gammaUnit, betaUnit, 2))
	assert.True(t, IsIncompatibleConversionsError(err))
}

func TestCombineDivergent(t *testing.T) {
	// gamma->alpha (2) and gamma->beta (6) give alpha->beta (3)
	ga := mustConversion(t, gammaUnit, alphaUnit, 2)
	gb := mustConversion(t, gammaUnit, betaUnit, 6)

	ab, err := ga.CombineDivergent(gb)
	require.NoError(t, err)
	assert.InDelta(t, 3, ab.Factor().Value(), 1e-12)
	assert.True(t, ab.SrcUnit().Equal(derived(t, alphaUnit)))
	assert.True(t, ab.DestUnit().Equal(derived(t, betaUnit)))
}

func TestCombineOpposite(t *testing.T) {
	// gamma->alpha (2) and beta->gamma (3): beta->gamma->alpha has factor 6,
	// so the derived alpha->beta factor is 1/6.
	ga := mustConversion(t, gammaUnit, alphaUnit, 2)
	bg := mustConversion(t, betaUnit, gammaUnit, 3)

	ab, err := ga.CombineOpposite(bg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6, ab.Factor().Value(), 1e-12)
	assert.True(t, ab.SrcUnit().Equal(derived(t, alphaUnit)))
	assert.True(t, ab.DestUnit().Equal(derived(t, betaUnit)))
}

func TestCombinatorsAgree(t *testing.T) {
	// The same alpha->gamma relationship derived two ways must agree.
	ab := mustConversion(t, alphaUnit, betaUnit, 3)
	bc := mustConversion(t, betaUnit, gammaUnit, 5)
	gc := Identity(derived(t, gammaUnit))

	sequential, err := ab.CombineSequential(bc)
	require.NoError(t, err)

	viaConvergent, err := sequential.CombineConvergent(gc)
	require.NoError(t, err)
	assert.InDelta(t, sequential.Factor().Value(), viaConvergent.Factor().Value(), 1e-12)
}

func TestApplyExponent(t *testing.T) {
	c := mustConversion(t, alphaUnit, betaUnit, 2)
	sq, err := c.ApplyExponent(2)
	require.NoError(t, err)
	assert.InDelta(t, 4, sq.Factor().Value(), 1e-12)
	assert.Equal(t, "al2", sq.SrcUnit().Format(true))
	assert.Equal(t, "be2", sq.DestUnit().Format(true))
}

func TestResolveKinds(t *testing.T) {
	term := unit.MustTerm(alphaUnit, nil, 2)

	d, err := Resolve(term)
	require.NoError(t, err)
	assert.Equal(t, "al2", d.Format(true))

	d, err = Resolve(alphaUnit)
	require.NoError(t, err)
	assert.Equal(t, "al", d.Format(true))

	same, err := Resolve(d)
	require.NoError(t, err)
	assert.Same(t, d, same)

	_, err = Resolve(42)
	require.Error(t, err)
	assert.True(t, unit.IsInvalidUnitSymbolError(err))
}

func TestFactorErrorPropagatesThroughCombination(t *testing.T) {
	ab, err := New(derived(t, alphaUnit), derived(t, betaUnit), numeric.NewWithError(3, 0.01))
	require.NoError(t, err)
	bc, err := New(derived(t, betaUnit), derived(t, gammaUnit), numeric.NewWithError(5, 0.02))
	require.NoError(t, err)

	ac, err := ab.CombineSequential(bc)
	require.NoError(t, err)
	// 3*0.02 + 5*0.01 = 0.11
	assert.GreaterOrEqual(t, ac.Factor().AbsoluteError(), 0.11)
}
