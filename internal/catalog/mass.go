package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Mass is the M quantity type.
type Mass struct{}

// Name returns the quantity type name.
func (Mass) Name() string { return "mass" }

// Dimension returns the base dimension code.
func (Mass) Dimension() string { return unit.DimMass }

// UnitDefinitions returns the mass unit table.
func (Mass) UnitDefinitions() map[string]UnitDefinition {
	metric := []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge}
	return map[string]UnitDefinition{
		"gram": {
			ASCIISymbol:  "g",
			PrefixGroups: metric,
			Systems:      []unit.System{unit.SystemSI},
		},
		"tonne": {
			ASCIISymbol:  "t",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricLarge},
			Systems:      []unit.System{unit.SystemSI},
		},
		"pound": {
			ASCIISymbol: "lb",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"ounce": {
			ASCIISymbol: "oz",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"stone": {
			ASCIISymbol: "st",
			Systems:     []unit.System{unit.SystemImperial},
		},
	}
}

// ConversionDefinitions returns the seed conversion edges for mass.
func (Mass) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "lb", DestSymbol: "g", Factor: 453.59237},
		{SrcSymbol: "oz", DestSymbol: "lb", Factor: 1.0 / 16},
		{SrcSymbol: "st", DestSymbol: "lb", Factor: 14},
		{SrcSymbol: "t", DestSymbol: "g", Factor: 1e6},
	}
}
