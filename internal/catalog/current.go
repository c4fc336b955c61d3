package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Current is the I quantity type.
type Current struct{}

// Name returns the quantity type name.
func (Current) Name() string { return "electric current" }

// Dimension returns the base dimension code.
func (Current) Dimension() string { return unit.DimCurrent }

// UnitDefinitions returns the current unit table.
func (Current) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"ampere": {
			ASCIISymbol:  "A",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:      []unit.System{unit.SystemSI},
		},
	}
}

// ConversionDefinitions returns no edges; the ampere stands alone.
func (Current) ConversionDefinitions() []ConversionDefinition { return nil }
