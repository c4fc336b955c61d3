package quantity

import "github.com/unitgraph/unitgraph/internal/unit"

// affineScale maps a temperature value onto kelvin: K = scale*v + offset.
type affineScale struct {
	scale  float64
	offset float64
}

// Keyed by unit name. Prefixed forms (mK, µK) are interval measures and go
// through the multiplicative engine instead.
var affineScales = map[string]affineScale{
	"kelvin":     {scale: 1, offset: 0},
	"celsius":    {scale: 1, offset: 273.15},
	"fahrenheit": {scale: 5.0 / 9, offset: 459.67 * 5.0 / 9},
	"rankine":    {scale: 5.0 / 9, offset: 0},
}

// affineFor returns the kelvin mapping for a plain absolute temperature
// unit: a single unprefixed term with exponent 1 whose unit is in the
// table.
func affineFor(d *unit.Derived) (affineScale, bool) {
	terms := d.Terms()
	if len(terms) != 1 {
		return affineScale{}, false
	}
	t := terms[0]
	if t.Exponent() != 1 || t.Prefix() != nil {
		return affineScale{}, false
	}
	sc, ok := affineScales[t.Unit().Name]
	return sc, ok
}

// convertAffine converts between absolute temperature scales. The second
// return is false when either side is not a plain absolute scale, in which
// case the caller falls back to the multiplicative engine.
func convertAffine(value float64, src, dest *unit.Derived) (float64, bool, error) {
	from, ok := affineFor(src)
	if !ok {
		return 0, false, nil
	}
	to, ok := affineFor(dest)
	if !ok {
		return 0, false, nil
	}
	kelvin := from.scale*value + from.offset
	return (kelvin - to.offset) / to.scale, true, nil
}
