package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Area is the L2 quantity type: the named area units that are not just a
// squared length. Conversions between squared lengths themselves (m2 to
// ft2) are derived from the L converter, not listed here.
type Area struct{}

// Name returns the quantity type name.
func (Area) Name() string { return "area" }

// Dimension returns the dimension code.
func (Area) Dimension() string { return "L2" }

// UnitDefinitions returns the area unit table.
func (Area) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"are": {
			ASCIISymbol: "a",
			Systems:     []unit.System{unit.SystemSI},
		},
		"hectare": {
			ASCIISymbol: "ha",
			Systems:     []unit.System{unit.SystemSI},
		},
		"acre": {
			ASCIISymbol: "ac",
			Systems:     []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
	}
}

// ConversionDefinitions bridges the named units to the squared metre so the
// L2 graph connects to every derived squared length.
func (Area) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "a", DestSymbol: "m2", Factor: 100},
		{SrcSymbol: "ha", DestSymbol: "a", Factor: 100},
		{SrcSymbol: "ac", DestSymbol: "m2", Factor: 4046.8564224},
	}
}
