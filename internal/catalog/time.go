package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Time is the T quantity type.
type Time struct{}

// Name returns the quantity type name.
func (Time) Name() string { return "time" }

// Dimension returns the base dimension code.
func (Time) Dimension() string { return unit.DimTime }

// UnitDefinitions returns the time unit table. Only the second takes
// prefixes; nobody writes kilominutes.
func (Time) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"second": {
			ASCIISymbol:  "s",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricSmall},
			Systems:      []unit.System{unit.SystemSI},
		},
		"minute": {
			ASCIISymbol: "min",
			Systems:     []unit.System{unit.SystemSI},
		},
		"hour": {
			ASCIISymbol: "h",
			Systems:     []unit.System{unit.SystemSI},
		},
		"day": {
			ASCIISymbol: "d",
			Systems:     []unit.System{unit.SystemSI},
		},
		"week": {
			ASCIISymbol: "wk",
			Systems:     []unit.System{unit.SystemSI},
		},
		"year": {
			ASCIISymbol: "yr",
			Systems:     []unit.System{unit.SystemSI},
		},
	}
}

// ConversionDefinitions returns the seed conversion edges for time.
func (Time) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "min", DestSymbol: "s", Factor: 60},
		{SrcSymbol: "h", DestSymbol: "min", Factor: 60},
		{SrcSymbol: "d", DestSymbol: "h", Factor: 24},
		{SrcSymbol: "wk", DestSymbol: "d", Factor: 7},
		{SrcSymbol: "yr", DestSymbol: "d", Factor: 365.25},
	}
}
