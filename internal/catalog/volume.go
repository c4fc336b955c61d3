package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Volume is the L3 quantity type. The litre expands to the cubic decimetre,
// which anchors the whole table to the length units.
type Volume struct{}

// Name returns the quantity type name.
func (Volume) Name() string { return "volume" }

// Dimension returns the dimension code.
func (Volume) Dimension() string { return "L3" }

// UnitDefinitions returns the volume unit table.
func (Volume) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"litre": {
			ASCIISymbol:     "L",
			AltSymbol:       "l",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "dm3",
			ExpansionValue:  1,
		},
		"gallon": {
			ASCIISymbol: "gal",
			Systems:     []unit.System{unit.SystemUSCustomary},
		},
		"quart": {
			ASCIISymbol: "qt",
			Systems:     []unit.System{unit.SystemUSCustomary},
		},
		"pint": {
			ASCIISymbol: "pt",
			Systems:     []unit.System{unit.SystemUSCustomary},
		},
		"fluid ounce": {
			ASCIISymbol: "fl oz",
			Systems:     []unit.System{unit.SystemUSCustomary},
		},
	}
}

// ConversionDefinitions returns the seed conversion edges for volume.
func (Volume) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "gal", DestSymbol: "L", Factor: 3.785411784},
		{SrcSymbol: "qt", DestSymbol: "gal", Factor: 0.25},
		{SrcSymbol: "pt", DestSymbol: "qt", Factor: 0.5},
		{SrcSymbol: "fl oz", DestSymbol: "pt", Factor: 1.0 / 16},
	}
}
