package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// Temperature is the H quantity type. The conversion edges here carry the
// multiplicative part only (degree sizes); the affine offsets between
// temperature scales live in the quantity layer.
type Temperature struct{}

// Name returns the quantity type name.
func (Temperature) Name() string { return "temperature" }

// Dimension returns the base dimension code.
func (Temperature) Dimension() string { return unit.DimTemperature }

// UnitDefinitions returns the temperature unit table.
func (Temperature) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"kelvin": {
			ASCIISymbol:  "K",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricSmall},
			Systems:      []unit.System{unit.SystemSI},
		},
		"celsius": {
			ASCIISymbol:   "degC",
			UnicodeSymbol: "°C",
			Systems:       []unit.System{unit.SystemSI},
		},
		"fahrenheit": {
			ASCIISymbol:   "degF",
			UnicodeSymbol: "°F",
			Systems:       []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
		},
		"rankine": {
			ASCIISymbol:   "degR",
			UnicodeSymbol: "°R",
			Systems:       []unit.System{unit.SystemImperial},
		},
	}
}

// ConversionDefinitions returns the degree-size edges: one kelvin is one
// Celsius degree, one Rankine degree is one Fahrenheit degree, and nine
// Fahrenheit degrees span five Celsius degrees.
func (Temperature) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "degC", DestSymbol: "K", Factor: 1},
		{SrcSymbol: "degF", DestSymbol: "degR", Factor: 1},
		{SrcSymbol: "degR", DestSymbol: "K", Factor: 5.0 / 9},
	}
}
