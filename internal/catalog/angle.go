package catalog

import (
	"math"

	"github.com/unitgraph/unitgraph/internal/unit"
)

// Angle is the A quantity type.
type Angle struct{}

// Name returns the quantity type name.
func (Angle) Name() string { return "angle" }

// Dimension returns the base dimension code.
func (Angle) Dimension() string { return unit.DimAngle }

// UnitDefinitions returns the angle unit table.
func (Angle) UnitDefinitions() map[string]UnitDefinition {
	return map[string]UnitDefinition{
		"radian": {
			ASCIISymbol:  "rad",
			PrefixGroups: []unit.PrefixGroup{unit.PrefixGroupMetricSmall},
			Systems:      []unit.System{unit.SystemSI},
		},
		"degree": {
			ASCIISymbol:   "deg",
			UnicodeSymbol: "°",
			Systems:       []unit.System{unit.SystemSI},
		},
		"gradian": {
			ASCIISymbol: "gon",
			Systems:     []unit.System{unit.SystemSI},
		},
		"revolution": {
			ASCIISymbol: "rev",
			Systems:     []unit.System{unit.SystemSI},
		},
		"arcminute": {
			ASCIISymbol:   "arcmin",
			UnicodeSymbol: "′",
			Systems:       []unit.System{unit.SystemSI},
		},
		"arcsecond": {
			ASCIISymbol:   "arcsec",
			UnicodeSymbol: "″",
			Systems:       []unit.System{unit.SystemSI},
		},
	}
}

// ConversionDefinitions returns the seed conversion edges for angle.
func (Angle) ConversionDefinitions() []ConversionDefinition {
	return []ConversionDefinition{
		{SrcSymbol: "deg", DestSymbol: "rad", Factor: math.Pi / 180},
		{SrcSymbol: "gon", DestSymbol: "rad", Factor: math.Pi / 200},
		{SrcSymbol: "rev", DestSymbol: "rad", Factor: 2 * math.Pi},
		{SrcSymbol: "arcmin", DestSymbol: "deg", Factor: 1.0 / 60},
		{SrcSymbol: "arcsec", DestSymbol: "arcmin", Factor: 1.0 / 60},
	}
}
