package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExactValues(t *testing.T) {
	assert.Zero(t, New(42).AbsoluteError())
	assert.Zero(t, New(-7).AbsoluteError())
	assert.Zero(t, Exact(0.1).AbsoluteError())
}

func TestNewInexactValues(t *testing.T) {
	f := New(0.1)
	assert.Equal(t, 0.1, f.Value())
	assert.Greater(t, f.AbsoluteError(), 0.0)
	assert.Less(t, f.AbsoluteError(), 1e-16)
}

func TestRelativeError(t *testing.T) {
	f := NewWithError(200, 4)
	assert.InDelta(t, 0.02, f.RelativeError(), 1e-12)

	assert.Zero(t, Exact(5).RelativeError())
	assert.True(t, math.IsInf(NewWithError(0, 1).RelativeError(), 1))
}

func TestAddExactSum(t *testing.T) {
	sum := Exact(1).Add(Exact(2))
	assert.Equal(t, 3.0, sum.Value())
	assert.Zero(t, sum.AbsoluteError())
}

func TestAddAccumulatesError(t *testing.T) {
	sum := NewWithError(10, 0.1).Add(NewWithError(20, 0.2))
	assert.Equal(t, 30.0, sum.Value())
	assert.GreaterOrEqual(t, sum.AbsoluteError(), 0.3)
}

func TestSub(t *testing.T) {
	d := NewWithError(10, 0.1).Sub(NewWithError(4, 0.2))
	assert.Equal(t, 6.0, d.Value())
	assert.GreaterOrEqual(t, d.AbsoluteError(), 0.3)
}

func TestMulErrorPropagation(t *testing.T) {
	p := NewWithError(10, 0.1).Mul(NewWithError(20, 0.2))
	assert.Equal(t, 200.0, p.Value())
	// |10|*0.2 + |20|*0.1 = 4, plus the rounding term
	assert.GreaterOrEqual(t, p.AbsoluteError(), 4.0)
	assert.Less(t, p.AbsoluteError(), 4.1)
}

func TestMulExact(t *testing.T) {
	p := Exact(3).Mul(Exact(4))
	assert.Equal(t, 12.0, p.Value())
	assert.Zero(t, p.AbsoluteError())
}

func TestDiv(t *testing.T) {
	q, err := NewWithError(10, 0.1).Div(Exact(4))
	require.NoError(t, err)
	assert.Equal(t, 2.5, q.Value())
	assert.Greater(t, q.AbsoluteError(), 0.0)
}

func TestDivByZero(t *testing.T) {
	_, err := Exact(1).Div(Exact(0))
	require.Error(t, err)
	assert.True(t, IsDivisionByZeroError(err))
}

func TestInvPreservesRelativeError(t *testing.T) {
	f := NewWithError(100, 1)
	inv, err := f.Inv()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, inv.Value(), 1e-12)
	assert.InDelta(t, f.RelativeError(), inv.RelativeError(), 1e-3)
}

func TestInvZero(t *testing.T) {
	_, err := Exact(0).Inv()
	assert.True(t, IsDivisionByZeroError(err))
}

func TestPow(t *testing.T) {
	sq, err := Exact(3).Pow(2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, sq.Value())

	cube, err := NewWithError(2, 0.01).Pow(3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cube.Value())
	// d(x^3) = 3x^2 dx = 0.12
	assert.InDelta(t, 0.12, cube.AbsoluteError(), 0.01)
}

func TestPowNegative(t *testing.T) {
	inv, err := Exact(2).Pow(-2)
	require.NoError(t, err)
	assert.Equal(t, 0.25, inv.Value())
}

func TestPowZeroExponent(t *testing.T) {
	one, err := NewWithError(7, 0.5).Pow(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, one.Value())
	assert.Zero(t, one.AbsoluteError())
}

func TestString(t *testing.T) {
	assert.Contains(t, NewWithError(2.5, 0.1).String(), "2.5")
}
