// Package unit implements the symbolic unit algebra: base units and
// prefixes, prefixed exponentiated unit terms, and derived units built as
// products of terms with canonical dimension strings.
package unit

// System identifies a measurement system a unit belongs to.
type System string

// Measurement systems known to the registry.
const (
	SystemSI          System = "si"
	SystemImperial    System = "imperial"
	SystemUSCustomary System = "us-customary"
	SystemIEC         System = "iec"
)

// Expansion expresses a unit in terms of more fundamental units, e.g.
// newton expands to kg*m*s-2 with value 1.
type Expansion struct {
	Unit  *Derived
	Value float64
}

// Unit is an immutable base unit record loaded from the catalog tables.
type Unit struct {
	Name          string
	Symbol        string // ASCII symbol
	UnicodeSymbol string // optional Unicode symbol
	AltSymbol     string // optional single-character alternate
	Dimension     string // dimension code when unprefixed and unexponentiated
	PrefixGroups  []PrefixGroup
	Systems       []System
	Expansion     *Expansion
}

// AcceptsPrefix reports whether p belongs to one of the unit's prefix groups.
// A nil prefix is always accepted.
func (u *Unit) AcceptsPrefix(p *Prefix) bool {
	if p == nil {
		return true
	}
	for _, g := range u.PrefixGroups {
		if g == p.Group {
			return true
		}
	}
	return false
}

// DisplaySymbol returns the Unicode symbol when one exists and ascii is
// false, the ASCII symbol otherwise.
func (u *Unit) DisplaySymbol(ascii bool) string {
	if !ascii && u.UnicodeSymbol != "" {
		return u.UnicodeSymbol
	}
	return u.Symbol
}
