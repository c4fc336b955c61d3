package unit

import (
	"math"
	"sort"
	"strings"
)

// Derived is a product of unit terms, e.g. kg*m*s-2. Terms are keyed by
// their unexponentiated prefix+unit symbol, so two terms merge only when
// they share both unit and prefix; merging sums exponents and a zero sum
// removes the term. The empty Derived is the dimensionless unit.
//
// AddTerm and RemoveTerm mutate in place; Parse, Inv, ToSI and Expand
// return new instances.
type Derived struct {
	terms map[string]Term
}

// NewDerived creates a derived unit from the given terms.
func NewDerived(terms ...Term) (*Derived, error) {
	d := &Derived{terms: make(map[string]Term)}
	for _, t := range terms {
		if err := d.AddTerm(t); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MustDerived is NewDerived for statically known-good inputs.
func MustDerived(terms ...Term) *Derived {
	d, err := NewDerived(terms...)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDerived parses a compound unit expression against the default
// registry.
func ParseDerived(s string) (*Derived, error) {
	return ParseDerivedIn(DefaultRegistry(), s)
}

// ParseDerivedIn parses a compound unit expression: terms separated by one
// of the multiplication operators (*, ., · U+00B7, ⋅ U+22C5) or the
// division operator /. Every term after the first / is a denominator, so
// m/s/s and m/s*s both mean m*s-2. The two-part form num/(den) is also
// accepted. A leading segment of "1" stands for an empty numerator (1/s).
func ParseDerivedIn(reg *Registry, s string) (*Derived, error) {
	d := &Derived{terms: make(map[string]Term)}
	s = strings.TrimSpace(s)
	if s == "" || s == "1" {
		return d, nil
	}

	if num, den, ok := splitParenForm(s); ok {
		if err := parseInto(reg, d, num, false); err != nil {
			return nil, err
		}
		if err := parseInto(reg, d, den, true); err != nil {
			return nil, err
		}
		return d, nil
	}

	if err := parseInto(reg, d, s, false); err != nil {
		return nil, err
	}
	return d, nil
}

// splitParenForm recognizes "num/(den)".
func splitParenForm(s string) (string, string, bool) {
	i := strings.Index(s, "/(")
	if i < 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return s[:i], s[i+2 : len(s)-1], true
}

func parseInto(reg *Registry, d *Derived, s string, inverted bool) error {
	for i, seg := range splitTerms(s) {
		text := strings.TrimSpace(seg.text)
		if text == "" {
			return NewInvalidUnitSymbolError(s)
		}
		if text == "1" && i == 0 {
			continue
		}
		t, err := ParseTermIn(reg, text)
		if err != nil {
			return err
		}
		if seg.denominator != inverted {
			t = t.Inv()
		}
		if err := d.AddTerm(t); err != nil {
			return err
		}
	}
	return nil
}

type termSegment struct {
	text        string
	denominator bool
}

// splitTerms cuts the expression at operators. Once a / has been seen every
// following segment is a denominator, regardless of the operator in front
// of it.
func splitTerms(s string) []termSegment {
	var segs []termSegment
	denominator := false
	var b strings.Builder
	flush := func() {
		segs = append(segs, termSegment{text: b.String(), denominator: denominator})
		b.Reset()
	}
	for _, r := range s {
		switch r {
		case '*', '.', '·', '⋅':
			flush()
		case '/':
			flush()
			denominator = true
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return segs
}

// AddTerm folds a term into the map, summing exponents on a key collision
// and deleting the entry when the sum reaches zero.
func (d *Derived) AddTerm(t Term) error {
	key := t.SymbolKey()
	existing, ok := d.terms[key]
	if !ok {
		d.terms[key] = t
		return nil
	}
	sum := existing.exponent + t.exponent
	if sum == 0 {
		delete(d.terms, key)
		return nil
	}
	merged, err := NewTerm(existing.unit, existing.prefix, sum)
	if err != nil {
		return err
	}
	d.terms[key] = merged
	return nil
}

// RemoveTerm removes one power of t, i.e. adds its inverse.
func (d *Derived) RemoveTerm(t Term) error {
	return d.AddTerm(t.Inv())
}

// Terms returns the terms in canonical order: base dimension order first,
// then symbol for ties.
func (d *Derived) Terms() []Term {
	out := make([]Term, 0, len(d.terms))
	for _, t := range d.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		ri := termRank(out[i])
		rj := termRank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i].SymbolKey() < out[j].SymbolKey()
	})
	return out
}

func termRank(t Term) int {
	parts := SplitDimension(t.unit.Dimension)
	if len(parts) == 0 {
		return len(baseDimensionOrder)
	}
	return dimensionRank(parts[0].Letter)
}

// Len returns the number of terms.
func (d *Derived) Len() int { return len(d.terms) }

// IsDimensionless reports whether the derived unit has no terms.
func (d *Derived) IsDimensionless() bool { return len(d.terms) == 0 }

// Dimension returns the canonical dimension string: the summed power of
// each base dimension across all terms, emitted in the fixed base order.
// Empty for the dimensionless unit.
func (d *Derived) Dimension() string {
	powers := make(map[string]int)
	for _, t := range d.terms {
		for _, part := range SplitDimension(t.unit.Dimension) {
			powers[part.Letter] += part.Exponent * t.exponent
		}
	}
	var b strings.Builder
	for _, letter := range baseDimensionOrder {
		writeDimensionPart(&b, letter, powers[letter])
	}
	return b.String()
}

// Equal reports structural equality: the same term map regardless of
// construction order.
func (d *Derived) Equal(o *Derived) bool {
	if o == nil || len(d.terms) != len(o.terms) {
		return false
	}
	for key, t := range d.terms {
		ot, ok := o.terms[key]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

// Copy returns an independent copy.
func (d *Derived) Copy() *Derived {
	out := &Derived{terms: make(map[string]Term, len(d.terms))}
	for k, t := range d.terms {
		out.terms[k] = t
	}
	return out
}

// Inv returns a new derived unit with every exponent negated.
func (d *Derived) Inv() *Derived {
	out := &Derived{terms: make(map[string]Term, len(d.terms))}
	for k, t := range d.terms {
		out.terms[k] = t.Inv()
	}
	return out
}

// RemovePrefixes returns a copy with all prefixes stripped and the combined
// multiplier that converts a value in the prefixed unit to the unprefixed
// one. Stripping can merge terms that previously differed only by prefix
// (km*m becomes m2).
func (d *Derived) RemovePrefixes() (*Derived, float64, error) {
	out := &Derived{terms: make(map[string]Term, len(d.terms))}
	multiplier := 1.0
	for _, t := range d.terms {
		multiplier *= t.Multiplier()
		if err := out.AddTerm(t.RemovePrefix()); err != nil {
			return nil, 0, err
		}
	}
	return out, multiplier, nil
}

// Expand replaces every expansion-bearing term (newton, pound-force, litre)
// by its expansion, and returns the multiplier that converts a value in d
// to a value in the expanded unit. Terms without an expansion are copied
// unchanged.
func (d *Derived) Expand() (*Derived, float64, error) {
	out := &Derived{terms: make(map[string]Term)}
	multiplier := 1.0
	for _, t := range d.terms {
		exp := t.unit.Expansion
		if exp == nil {
			if err := out.AddTerm(t); err != nil {
				return nil, 0, err
			}
			continue
		}
		multiplier *= math.Pow(exp.Value, float64(t.exponent)) * t.Multiplier()
		for _, et := range exp.Unit.Terms() {
			applied, err := et.ApplyExponent(t.exponent)
			if err != nil {
				return nil, 0, err
			}
			if err := out.AddTerm(applied); err != nil {
				return nil, 0, err
			}
		}
	}
	return out, multiplier, nil
}

// HasExpansions reports whether any term's unit defines an expansion.
func (d *Derived) HasExpansions() bool {
	for _, t := range d.terms {
		if t.unit.Expansion != nil {
			return true
		}
	}
	return false
}

// ToSI returns a new derived unit with every term rewritten to the SI unit
// of its dimension, preserving exponents. The scalar adjustment needed to
// preserve the value is the conversion engine's job, not this method's.
func (d *Derived) ToSI(reg *Registry) (*Derived, error) {
	expanded, _, err := d.Expand()
	if err != nil {
		return nil, err
	}
	out := &Derived{terms: make(map[string]Term)}
	for _, t := range expanded.terms {
		parts := SplitDimension(t.unit.Dimension)
		for _, part := range parts {
			si, prefix := reg.SIUnitForDimension(part.Letter)
			if si == nil {
				return nil, NewInvalidUnitSymbolError(t.Symbol())
			}
			term, err := NewTerm(si, prefix, part.Exponent*t.exponent)
			if err != nil {
				return nil, err
			}
			if err := out.AddTerm(term); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Format renders the terms in canonical order, joined by "*" in ASCII mode
// and "⋅" in Unicode mode.
func (d *Derived) Format(ascii bool) string {
	terms := d.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Format(ascii)
	}
	sep := "*"
	if !ascii {
		sep = "⋅"
	}
	return strings.Join(parts, sep)
}

// String returns the ASCII form.
func (d *Derived) String() string { return d.Format(true) }
