package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitgraph/unitgraph/internal/conversion"
	"github.com/unitgraph/unitgraph/internal/unit"
)

func TestLoadIsIdempotent(t *testing.T) {
	require.NoError(t, Load())
	require.NoError(t, Load())

	assert.NotNil(t, unit.DefaultRegistry().ByName("metre"))
}

func TestEveryQuantityTypeHasValidDefinitions(t *testing.T) {
	require.NoError(t, Load())
	reg := unit.DefaultRegistry()

	for _, qt := range QuantityTypes() {
		assert.NotEmpty(t, qt.Name())
		assert.NotEmpty(t, qt.Dimension())
		for name, def := range qt.UnitDefinitions() {
			u := reg.ByName(name)
			require.NotNil(t, u, "%s/%s not registered", qt.Name(), name)
			assert.Equal(t, def.ASCIISymbol, u.Symbol, name)
			assert.Equal(t, qt.Dimension(), u.Dimension, name)
			if def.ExpansionSymbol != "" {
				require.NotNil(t, u.Expansion, name)
				assert.Equal(t, qt.Dimension(), u.Expansion.Unit.Dimension(), name)
			}
		}
	}
}

func TestSeedEdgesAreRegistered(t *testing.T) {
	require.NoError(t, Load())

	tests := []struct {
		dim    string
		src    string
		dest   string
		factor float64
	}{
		{"L", "ft", "m", 0.3048},
		{"M", "lb", "g", 453.59237},
		{"T", "min", "s", 60},
		{"D", "B", "bit", 8},
		{"H", "degR", "K", 5.0 / 9},
		{"L2", "ha", "a", 100},
	}
	for _, tt := range tests {
		cv, err := conversion.GetByDimension(tt.dim)
		require.NoError(t, err, tt.dim)
		got, err := cv.GetConversionFactor(tt.src, tt.dest)
		require.NoError(t, err, tt.src)
		assert.InDelta(t, tt.factor, got, tt.factor*1e-9, tt.src)
	}
}

func TestBinaryPrefixesOnData(t *testing.T) {
	require.NoError(t, Load())

	cv, err := conversion.GetByDimension("D")
	require.NoError(t, err)

	got, err := cv.GetConversionFactor("KiB", "B")
	require.NoError(t, err)
	assert.InDelta(t, 1024, got, 1e-9)

	got, err = cv.GetConversionFactor("MiB", "kB")
	require.NoError(t, err)
	assert.InDelta(t, 1048.576, got, 1e-6)
}

func TestLoadCustomConversions(t *testing.T) {
	require.NoError(t, Load())

	path := filepath.Join(t.TempDir(), "conversions.ini")
	content := "[L]\nnmi->mi = 1.1507794480235425\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadCustomConversions(path))

	cv, err := conversion.GetByDimension("L")
	require.NoError(t, err)
	got, err := cv.GetConversionFactor("nmi", "mi")
	require.NoError(t, err)
	assert.InDelta(t, 1.1507794480235425, got, 1e-9)
}

func TestLoadCustomConversionsRejectsBadInput(t *testing.T) {
	require.NoError(t, Load())

	dir := t.TempDir()

	badKey := filepath.Join(dir, "badkey.ini")
	require.NoError(t, os.WriteFile(badKey, []byte("[L]\nnmi = 2\n"), 0o600))
	assert.Error(t, LoadCustomConversions(badKey))

	badUnit := filepath.Join(dir, "badunit.ini")
	require.NoError(t, os.WriteFile(badUnit, []byte("[L]\nblorp->m = 2\n"), 0o600))
	assert.Error(t, LoadCustomConversions(badUnit))

	assert.Error(t, LoadCustomConversions(filepath.Join(dir, "missing.ini")))
}
