package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Amount is the N quantity type.
type Amount struct{}

// Name returns the quantity type name.
func (Amount) Name() string { return "amount of substance" }

// Dimension returns the base dimension code.
func (Amount) Dimension() string { return unit.DimAmount }

// UnitDefinitions returns the amount unit table.
func (Amount) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"mole": {
			ASCIISymbol:  "mol",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:      []unit.System{unit.SystemSI},
		},
	}
}

// ConversionDefinitions returns no edges; the mole stands alone.
func (Amount) ConversionDefinitions() []ConversionDefinition { return nil }
