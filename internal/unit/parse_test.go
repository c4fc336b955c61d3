package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitgraph/unitgraph/internal/catalog"
	"github.com/unitgraph/unitgraph/internal/unit"
)

func loadCatalog(t *testing.T) {
	t.Helper()
	require.NoError(t, catalog.Load())
}

func TestParseTermPlainSymbol(t *testing.T) {
	loadCatalog(t)

	term, err := unit.ParseTerm("m")
	require.NoError(t, err)
	assert.Equal(t, "metre", term.Unit().Name)
	assert.Nil(t, term.Prefix())
	assert.Equal(t, 1, term.Exponent())
}

func TestParseTermPrefixed(t *testing.T) {
	loadCatalog(t)

	term, err := unit.ParseTerm("km")
	require.NoError(t, err)
	assert.Equal(t, "metre", term.Unit().Name)
	require.NotNil(t, term.Prefix())
	assert.Equal(t, "kilo", term.Prefix().Name)
	assert.Equal(t, 1e3, term.Multiplier())
}

// Whole-symbol matches always beat prefix splits.
func TestParseTermAmbiguousSymbols(t *testing.T) {
	loadCatalog(t)

	tests := []struct {
		symbol   string
		unitName string
		prefix   string
	}{
		{"min", "minute", ""},
		{"cd", "candela", ""},
		{"ft", "foot", ""},
		{"Pa", "pascal", ""},
		{"ha", "hectare", ""},
		{"atm", "standard atmosphere", ""},
		{"mol", "mole", ""},
		{"h", "hour", ""},
		{"mmol", "mole", "milli"},
		{"kN", "newton", "kilo"},
		{"GiB", "byte", "gibi"},
		{"Mt", "tonne", "mega"},
	}
	for _, tt := range tests {
		term, err := unit.ParseTerm(tt.symbol)
		require.NoError(t, err, tt.symbol)
		assert.Equal(t, tt.unitName, term.Unit().Name, tt.symbol)
		if tt.prefix == "" {
			assert.Nil(t, term.Prefix(), tt.symbol)
		} else {
			require.NotNil(t, term.Prefix(), tt.symbol)
			assert.Equal(t, tt.prefix, term.Prefix().Name, tt.symbol)
		}
	}
}

func TestParseTermExponents(t *testing.T) {
	loadCatalog(t)

	tests := []struct {
		symbol string
		exp    int
	}{
		{"m2", 2},
		{"m²", 2},
		{"s-2", -2},
		{"s⁻²", -2},
		{"m9", 9},
	}
	for _, tt := range tests {
		term, err := unit.ParseTerm(tt.symbol)
		require.NoError(t, err, tt.symbol)
		assert.Equal(t, tt.exp, term.Exponent(), tt.symbol)
	}
}

func TestParseTermExponentOutOfRange(t *testing.T) {
	loadCatalog(t)

	for _, s := range []string{"m10", "m0", "s-10"} {
		_, err := unit.ParseTerm(s)
		require.Error(t, err, s)
		assert.True(t, unit.IsInvalidExponentError(err), s)
	}
}

func TestParseTermUnknownSymbol(t *testing.T) {
	loadCatalog(t)

	_, err := unit.ParseTerm("blorp")
	require.Error(t, err)
	assert.True(t, unit.IsInvalidUnitSymbolError(err))
}

func TestParseDerivedCompound(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("kg*m/s2")
	require.NoError(t, err)
	assert.Equal(t, "MLT-2", d.Dimension())
	assert.Equal(t, "kg*m*s-2", d.Format(true))
	assert.Equal(t, "kg⋅m⋅s⁻²", d.Format(false))
}

func TestParseDerivedRepeatedDivision(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("m/s/s")
	require.NoError(t, err)
	assert.Equal(t, "m*s-2", d.Format(true))
	assert.Equal(t, "LT-2", d.Dimension())
}

func TestParseDerivedParenForm(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("J/(kg*K)")
	require.NoError(t, err)
	assert.Equal(t, "L2T-2H-1", d.Dimension())
}

func TestParseDerivedLeadingOne(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("1/s")
	require.NoError(t, err)
	assert.Equal(t, "s-1", d.Format(true))
	assert.Equal(t, "T-1", d.Dimension())
}

func TestParseDerivedOperatorVariants(t *testing.T) {
	loadCatalog(t)

	for _, s := range []string{"kW*h", "kW.h", "kW·h", "kW⋅h"} {
		d, err := unit.ParseDerived(s)
		require.NoError(t, err, s)
		assert.Equal(t, "ML2T-2", d.Dimension(), s)
	}
}

func TestParseDerivedMergesEqualTerms(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("m*m")
	require.NoError(t, err)
	assert.Equal(t, "m2", d.Format(true))

	// Inverse terms cancel to dimensionless
	d, err = unit.ParseDerived("m/m")
	require.NoError(t, err)
	assert.True(t, d.IsDimensionless())
}

func TestDerivedRemovePrefixes(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("km/h")
	require.NoError(t, err)
	stripped, mult, err := d.RemovePrefixes()
	require.NoError(t, err)
	assert.Equal(t, "m*h-1", stripped.Format(true))
	assert.InDelta(t, 1000, mult, 1e-9)
}

func TestDerivedRemovePrefixesMergesTerms(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("km*m")
	require.NoError(t, err)
	stripped, mult, err := d.RemovePrefixes()
	require.NoError(t, err)
	assert.Equal(t, "m2", stripped.Format(true))
	assert.InDelta(t, 1000, mult, 1e-9)
}

func TestDerivedExpand(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("N")
	require.NoError(t, err)
	assert.True(t, d.HasExpansions())

	expanded, mult, err := d.Expand()
	require.NoError(t, err)
	assert.Equal(t, "kg*m*s-2", expanded.Format(true))
	assert.InDelta(t, 1, mult, 1e-12)
}

func TestDerivedToSI(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("ft")
	require.NoError(t, err)
	si, err := d.ToSI(unit.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, "m", si.Format(true))

	d, err = unit.ParseDerived("lbf")
	require.NoError(t, err)
	si, err = d.ToSI(unit.DefaultRegistry())
	require.NoError(t, err)
	assert.Equal(t, "kg*m*s-2", si.Format(true))
}

func TestDerivedInv(t *testing.T) {
	loadCatalog(t)

	d, err := unit.ParseDerived("m/s")
	require.NoError(t, err)
	assert.Equal(t, "m-1*s", d.Inv().Format(true))
}
