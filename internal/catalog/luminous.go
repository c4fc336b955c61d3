package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// LuminousIntensity is the J quantity type.
type LuminousIntensity struct{}

// Name returns the quantity type name.
func (LuminousIntensity) Name() string { return "luminous intensity" }

// Dimension returns the base dimension code.
func (LuminousIntensity) Dimension() string { return unit.DimLuminous }

// UnitDefinitions returns the luminous intensity unit table.
func (LuminousIntensity) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"candela": {
			ASCIISymbol:  "cd",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:      []unit.System{unit.SystemSI},
		},
	}
}

// ConversionDefinitions returns no edges; the candela stands alone.
func (LuminousIntensity) ConversionDefinitions() []ConversionDefinition { return nil }
