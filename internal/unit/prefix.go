package unit

import (
	"sort"
	"strings"
)

// PrefixGroup identifies a family of prefixes a unit may opt into.
type PrefixGroup string

// Prefix groups known to the registry. Metric prefixes are split by
// direction so units like the tonne can accept only the enlarging ones.
const (
	PrefixGroupMetricSmall PrefixGroup = "metric-small"
	PrefixGroupMetricLarge PrefixGroup = "metric-large"
	PrefixGroupBinary      PrefixGroup = "binary"
)

// Prefix is an immutable scaling prefix record.
type Prefix struct {
	Name          string
	Symbol        string // ASCII symbol
	UnicodeSymbol string // optional Unicode symbol
	Multiplier    float64
	Group         PrefixGroup
}

var prefixes = []*Prefix{
	{Name: "deci", Symbol: "d", Multiplier: 1e-1, Group: PrefixGroupMetricSmall},
	{Name: "centi", Symbol: "c", Multiplier: 1e-2, Group: PrefixGroupMetricSmall},
	{Name: "milli", Symbol: "m", Multiplier: 1e-3, Group: PrefixGroupMetricSmall},
	{Name: "micro", Symbol: "u", UnicodeSymbol: "µ", Multiplier: 1e-6, Group: PrefixGroupMetricSmall},
	{Name: "nano", Symbol: "n", Multiplier: 1e-9, Group: PrefixGroupMetricSmall},
	{Name: "pico", Symbol: "p", Multiplier: 1e-12, Group: PrefixGroupMetricSmall},
	{Name: "femto", Symbol: "f", Multiplier: 1e-15, Group: PrefixGroupMetricSmall},
	{Name: "atto", Symbol: "a", Multiplier: 1e-18, Group: PrefixGroupMetricSmall},
	{Name: "zepto", Symbol: "z", Multiplier: 1e-21, Group: PrefixGroupMetricSmall},
	{Name: "yocto", Symbol: "y", Multiplier: 1e-24, Group: PrefixGroupMetricSmall},

	{Name: "deca", Symbol: "da", Multiplier: 1e1, Group: PrefixGroupMetricLarge},
	{Name: "hecto", Symbol: "h", Multiplier: 1e2, Group: PrefixGroupMetricLarge},
	{Name: "kilo", Symbol: "k", Multiplier: 1e3, Group: PrefixGroupMetricLarge},
	{Name: "mega", Symbol: "M", Multiplier: 1e6, Group: PrefixGroupMetricLarge},
	{Name: "giga", Symbol: "G", Multiplier: 1e9, Group: PrefixGroupMetricLarge},
	{Name: "tera", Symbol: "T", Multiplier: 1e12, Group: PrefixGroupMetricLarge},
	{Name: "peta", Symbol: "P", Multiplier: 1e15, Group: PrefixGroupMetricLarge},
	{Name: "exa", Symbol: "E", Multiplier: 1e18, Group: PrefixGroupMetricLarge},
	{Name: "zetta", Symbol: "Z", Multiplier: 1e21, Group: PrefixGroupMetricLarge},
	{Name: "yotta", Symbol: "Y", Multiplier: 1e24, Group: PrefixGroupMetricLarge},

	{Name: "kibi", Symbol: "Ki", Multiplier: 1 << 10, Group: PrefixGroupBinary},
	{Name: "mebi", Symbol: "Mi", Multiplier: 1 << 20, Group: PrefixGroupBinary},
	{Name: "gibi", Symbol: "Gi", Multiplier: 1 << 30, Group: PrefixGroupBinary},
	{Name: "tebi", Symbol: "Ti", Multiplier: 1 << 40, Group: PrefixGroupBinary},
	{Name: "pebi", Symbol: "Pi", Multiplier: 1 << 50, Group: PrefixGroupBinary},
	{Name: "exbi", Symbol: "Ei", Multiplier: 1 << 60, Group: PrefixGroupBinary},
}

// Prefixes returns every known prefix.
func Prefixes() []*Prefix {
	out := make([]*Prefix, len(prefixes))
	copy(out, prefixes)
	return out
}

// PrefixByName looks a prefix up by canonical name, nil when unknown.
func PrefixByName(name string) *Prefix {
	for _, p := range prefixes {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PrefixesBySymbol returns every prefix whose ASCII or Unicode symbol
// equals s.
func PrefixesBySymbol(s string) []*Prefix {
	var out []*Prefix
	for _, p := range prefixes {
		if p.Symbol == s || (p.UnicodeSymbol != "" && p.UnicodeSymbol == s) {
			out = append(out, p)
		}
	}
	return out
}

// prefixMatch is a prefix candidate for a leading slice of a symbol, with
// the byte count its spelling consumed.
type prefixMatch struct {
	prefix   *Prefix
	consumed int
}

// candidatePrefixes returns every prefix whose spelling starts s, leaving
// at least one byte of unit symbol. Shorter spellings sort first, so the
// longest remaining unit symbol is tried first.
func candidatePrefixes(s string) []prefixMatch {
	var out []prefixMatch
	for _, p := range prefixes {
		if n, ok := matchesLeading(s, p.Symbol); ok {
			out = append(out, prefixMatch{prefix: p, consumed: n})
		}
		if p.UnicodeSymbol != "" {
			if n, ok := matchesLeading(s, p.UnicodeSymbol); ok {
				out = append(out, prefixMatch{prefix: p, consumed: n})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].consumed < out[j].consumed })
	return out
}

// matchesLeading reports whether spelling is a proper leading slice of s.
func matchesLeading(s, spelling string) (int, bool) {
	if len(spelling) >= len(s) || !strings.HasPrefix(s, spelling) {
		return 0, false
	}
	return len(spelling), true
}
