package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	m := &Unit{Name: "metre", Symbol: "m", Dimension: DimLength}
	require.NoError(t, reg.Register(m))

	assert.Same(t, m, reg.ByName("metre"))
	assert.Equal(t, []*Unit{m}, reg.BySymbol("m"))
	assert.Nil(t, reg.ByName("foot"))
}

func TestRegistryDuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Unit{Name: "metre", Symbol: "m", Dimension: DimLength}))

	err := reg.Register(&Unit{Name: "metre", Symbol: "m", Dimension: DimLength})
	require.Error(t, err)
	assert.True(t, IsDuplicateUnitError(err))
}

func TestRegistrySymbolCollision(t *testing.T) {
	reg := NewRegistry()
	minute := &Unit{Name: "minute", Symbol: "min", Dimension: DimTime}
	arcmin := &Unit{Name: "arcminute", Symbol: "arcmin", AltSymbol: "min", Dimension: DimAngle}
	require.NoError(t, reg.Register(minute))
	require.NoError(t, reg.Register(arcmin))

	units := reg.BySymbol("min")
	assert.Len(t, units, 2)
}

func TestRegistryUnicodeSymbol(t *testing.T) {
	reg := NewRegistry()
	deg := &Unit{Name: "degree", Symbol: "deg", UnicodeSymbol: "°", Dimension: DimAngle}
	require.NoError(t, reg.Register(deg))

	assert.Equal(t, []*Unit{deg}, reg.BySymbol("°"))
	assert.Equal(t, []*Unit{deg}, reg.BySymbol("deg"))
}

func TestSIUnitForDimension(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Unit{Name: "gram", Symbol: "g", Dimension: DimMass,
		PrefixGroups: []PrefixGroup{PrefixGroupMetricSmall, PrefixGroupMetricLarge}}))

	u, p := reg.SIUnitForDimension(DimMass)
	require.NotNil(t, u)
	require.NotNil(t, p)
	assert.Equal(t, "gram", u.Name)
	assert.Equal(t, "kilo", p.Name)

	u, p = reg.SIUnitForDimension(DimLength)
	assert.Nil(t, u)
	assert.Nil(t, p)
}
