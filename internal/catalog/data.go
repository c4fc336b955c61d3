package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Data is the D quantity type.
type Data struct{}

// Name returns the quantity type name.
func (Data) Name() string { return "data" }

// Dimension returns the base dimension code.
func (Data) Dimension() string { return unit.DimData }

// UnitDefinitions returns the data unit table. Bits and bytes accept both
// the decimal large prefixes (kB, MB) and the binary ones (KiB, MiB).
func (Data) UnitDefinitions() map[string]UnitDefinition {
	groups := []unit.PrefixGroup{unit.PrefixGroupMetricLarge, unit.PrefixGroupBinary}
	return map[string]UnitDefinition{
		"bit": {
			ASCIISymbol:  "bit",
			AltSymbol:    "b",
			PrefixGroups: groups,
			Systems:      []unit.System{unit.SystemIEC},
		},
		"byte": {
			ASCIISymbol:  "B",
			PrefixGroups: groups,
			Systems:      []unit.System{unit.SystemIEC},
		},
	}
}

// ConversionDefinitions returns the seed conversion edges for data.
func (Data) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "B", DestSymbol: "bit", Factor: 8},
	}
}
