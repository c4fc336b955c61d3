package catalog

import "github.com/unitgraph/unitgraph/internal/unit"

// The mechanical quantity types are built entirely from expansions: every
// unit is defined in terms of base units, and the conversion engine derives
// factors by expanding both sides. No seed edges are needed.

// Force is the MLT-2 quantity type.
type Force struct{}

// Name returns the quantity type name.
func (Force) Name() string { return "force" }

// Dimension returns the dimension code.
func (Force) Dimension() string { return "MLT-2" }

// UnitDefinitions returns the force unit table.
func (Force) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"newton": {
			ASCIISymbol:     "N",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m*s-2",
			ExpansionValue:  1,
		},
		"dyne": {
			ASCIISymbol:     "dyn",
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "g*cm*s-2",
			ExpansionValue:  1,
		},
		"pound-force": {
			ASCIISymbol:     "lbf",
			Systems:         []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
			ExpansionSymbol: "lb*ft*s-2",
			// Standard gravity expressed in ft/s2, so that
			// 1 lbf = 0.45359237 kg * 9.80665 m/s2 exactly.
			ExpansionValue: 9.80665 / 0.3048,
		},
		"kilogram-force": {
			ASCIISymbol:     "kgf",
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m*s-2",
			ExpansionValue:  9.80665,
		},
	}
}

// ConversionDefinitions returns no edges; force factors come from
// expansions.
func (Force) ConversionDefinitions() []ConversionDefinition { return nil }

// Energy is the ML2T-2 quantity type.
type Energy struct{}

// Name returns the quantity type name.
func (Energy) Name() string { return "energy" }

// Dimension returns the dimension code.
func (Energy) Dimension() string { return "ML2T-2" }

// UnitDefinitions returns the energy unit table.
func (Energy) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"joule": {
			ASCIISymbol:     "J",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m2*s-2",
			ExpansionValue:  1,
		},
		"calorie": {
			ASCIISymbol:     "cal",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m2*s-2",
			ExpansionValue:  4.184,
		},
		"watt-hour": {
			ASCIISymbol:     "Wh",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m2*s-2",
			ExpansionValue:  3600,
		},
	}
}

// ConversionDefinitions returns no edges; energy factors come from
// expansions.
func (Energy) ConversionDefinitions() []ConversionDefinition { return nil }

// Power is the ML2T-3 quantity type.
type Power struct{}

// Name returns the quantity type name.
func (Power) Name() string { return "power" }

// Dimension returns the dimension code.
func (Power) Dimension() string { return "ML2T-3" }

// UnitDefinitions returns the power unit table.
func (Power) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"watt": {
			ASCIISymbol:     "W",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m2*s-3",
			ExpansionValue:  1,
		},
		"horsepower": {
			ASCIISymbol:     "hp",
			Systems:         []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
			ExpansionSymbol: "kg*m2*s-3",
			ExpansionValue:  745.69987158227022,
		},
	}
}

// ConversionDefinitions returns no edges; power factors come from
// expansions.
func (Power) ConversionDefinitions() []ConversionDefinition { return nil }

// Pressure is the ML-1T-2 quantity type.
type Pressure struct{}

// Name returns the quantity type name.
func (Pressure) Name() string { return "pressure" }

// Dimension returns the dimension code.
func (Pressure) Dimension() string { return "ML-1T-2" }

// UnitDefinitions returns the pressure unit table.
func (Pressure) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"pascal": {
			ASCIISymbol:     "Pa",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricSmall, unit.PrefixGroupMetricLarge},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m-1*s-2",
			ExpansionValue:  1,
		},
		"bar": {
			ASCIISymbol:     "bar",
			PrefixGroups:    []unit.PrefixGroup{unit.PrefixGroupMetricSmall},
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m-1*s-2",
			ExpansionValue:  1e5,
		},
		"pounds per square inch": {
			ASCIISymbol:     "psi",
			Systems:         []unit.System{unit.SystemImperial, unit.SystemUSCustomary},
			ExpansionSymbol: "kg*m-1*s-2",
			ExpansionValue:  6894.757293168361,
		},
		"standard atmosphere": {
			ASCIISymbol:     "atm",
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "kg*m-1*s-2",
			ExpansionValue:  101325,
		},
	}
}

// ConversionDefinitions returns no edges; pressure factors come from
// expansions.
func (Pressure) ConversionDefinitions() []ConversionDefinition { return nil }

// Speed is the LT-1 quantity type.
type Speed struct{}

// Name returns the quantity type name.
func (Speed) Name() string { return "speed" }

// Dimension returns the dimension code.
func (Speed) Dimension() string { return "LT-1" }

// UnitDefinitions returns the named speed units; plain ratios like m/s or
// mi/h are derived units, not catalog entries.
func (Speed) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"knot": {
			ASCIISymbol:     "kn",
			Systems:         []unit.System{unit.SystemSI},
			ExpansionSymbol: "nmi/h",
			ExpansionValue:  1,
		},
	}
}

// ConversionDefinitions returns no edges; speed factors come from
// expansions.
func (Speed) ConversionDefinitions() []ConversionDefinition { return nil }
