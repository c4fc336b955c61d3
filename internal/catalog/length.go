package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Length is the L quantity type.
type Length struct{}

// Name returns the quantity type name.
func (Length) Name() string { return "length" }

// Dimension returns the base dimension code.
func (Length) Dimension() string { return unit.DimLength }

// UnitDefinitions returns the length unit table.
func (Length) UnitDefinitions() map[string]UnitDefinition {
	metric := []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge}
	return map[string]UnitDefinition{
		"metre": {
			ASCIISymbol:  "m",
			PrefixGroups: metric,
			Systems:      []unit.System{unit.SystemSI},
		},
		"foot": {
			ASCIISymbol: "ft",
			AltSymbol:   "'",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"inch": {
			ASCIISymbol: "in",
			AltSymbol:   "\"",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"yard": {
			ASCIISymbol: "yd",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"mile": {
			ASCIISymbol: "mi",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"nautical mile": {
			ASCIISymbol: "nmi",
			Systems:     []unit.System{unit.SystemSI},
		},
	}
}

// ConversionDefinitions returns the seed conversion edges for length. The
// graph is deliberately a chain; everything else is derived by path search.
func (Length) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "ft", DestSymbol: "m", Factor: 0.3048},
		{SrcSymbol: "in", DestSymbol: "ft", Factor: 1.0 / 12},
		{SrcSymbol: "yd", DestSymbol: "ft", Factor: 3},
		{SrcSymbol: "mi", DestSymbol: "yd", Factor: 1760},
		{SrcSymbol: "nmi", DestSymbol: "m", Factor: 1852},
	}
}
