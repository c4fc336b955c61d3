package unit

import (
	"math"
	"strconv"
	"strings"
)

// MaxExponent bounds the magnitude of a term exponent.
const MaxExponent = 9

var superscriptDigits = map[rune]int{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4,
	'⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

var superscriptForDigit = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// Term is one prefixed, exponentiated unit symbol, e.g. km2. Terms are
// immutable; every derived form is a new value.
type Term struct {
	unit     *Unit
	prefix   *Prefix
	exponent int
}

// NewTerm builds a term from its parts, validating prefix acceptance and the
// exponent range. A zero exponent is never valid: such a term is equivalent
// to no term at all.
func NewTerm(u *Unit, p *Prefix, exponent int) (Term, error) {
	if exponent == 0 || exponent < -MaxExponent || exponent > MaxExponent {
		return Term{}, NewInvalidExponentError(exponent)
	}
	if p != nil && !u.AcceptsPrefix(p) {
		return Term{}, NewInvalidPrefixError(p.Symbol, u.Name)
	}
	return Term{unit: u, prefix: p, exponent: exponent}, nil
}

// MustTerm is NewTerm for statically known-good inputs; it panics on error.
func MustTerm(u *Unit, p *Prefix, exponent int) Term {
	t, err := NewTerm(u, p, exponent)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTerm parses a single unit-term string such as "km", "s-2" or "m³"
// against the default registry.
func ParseTerm(s string) (Term, error) {
	return ParseTermIn(DefaultRegistry(), s)
}

// ParseTermIn parses a single unit-term string against reg. The matcher
// tries the whole symbol as a unit first and only then prefix splits,
// preferring the longest valid unit match so "mmol" resolves to milli+mol
// rather than metre plus leftover text.
func ParseTermIn(reg *Registry, s string) (Term, error) {
	base, exp, err := splitExponent(s)
	if err != nil {
		return Term{}, err
	}
	if base == "" {
		return Term{}, NewInvalidUnitSymbolError(s)
	}

	if units := reg.BySymbol(base); len(units) > 0 {
		return Term{unit: units[0], exponent: exp}, nil
	}

	for _, pm := range candidatePrefixes(base) {
		rest := base[pm.consumed:]
		for _, u := range reg.BySymbol(rest) {
			if u.AcceptsPrefix(pm.prefix) {
				return Term{unit: u, prefix: pm.prefix, exponent: exp}, nil
			}
		}
	}
	return Term{}, NewInvalidUnitSymbolError(s)
}

// TermsBySymbol returns every (prefix, unit) combination whose combined
// symbol equals s, across the ASCII and Unicode symbol tables. The
// unprefixed interpretation, when it exists, comes first.
func TermsBySymbol(reg *Registry, s string) []Term {
	var out []Term
	for _, u := range reg.BySymbol(s) {
		out = append(out, Term{unit: u, exponent: 1})
	}
	for _, pm := range candidatePrefixes(s) {
		for _, u := range reg.BySymbol(s[pm.consumed:]) {
			if u.AcceptsPrefix(pm.prefix) {
				out = append(out, Term{unit: u, prefix: pm.prefix, exponent: 1})
			}
		}
	}
	return out
}

// splitExponent separates a trailing ASCII or superscript exponent from the
// symbol text. No exponent yields 1.
func splitExponent(s string) (string, int, error) {
	runes := []rune(s)
	end := len(runes)

	// Unicode superscript run, optionally led by a superscript minus.
	i := end
	for i > 0 {
		if _, ok := superscriptDigits[runes[i-1]]; ok {
			i--
			continue
		}
		break
	}
	if i < end {
		neg := false
		if i > 0 && runes[i-1] == '⁻' {
			neg = true
			i--
		}
		n := 0
		start := i
		if neg {
			start++
		}
		for _, r := range runes[start:end] {
			n = n*10 + superscriptDigits[r]
		}
		if neg {
			n = -n
		}
		if err := checkExponent(n); err != nil {
			return "", 0, err
		}
		return string(runes[:i]), n, nil
	}

	// ASCII digit run, optionally led by a minus.
	i = end
	for i > 0 && runes[i-1] >= '0' && runes[i-1] <= '9' {
		i--
	}
	if i < end {
		j := i
		if j > 0 && runes[j-1] == '-' {
			j--
		}
		n, err := strconv.Atoi(string(runes[j:end]))
		if err != nil {
			return "", 0, NewInvalidUnitSymbolError(s)
		}
		if cerr := checkExponent(n); cerr != nil {
			return "", 0, cerr
		}
		return string(runes[:j]), n, nil
	}

	return s, 1, nil
}

func checkExponent(n int) error {
	if n == 0 || n < -MaxExponent || n > MaxExponent {
		return NewInvalidExponentError(n)
	}
	return nil
}

// Unit returns the term's base unit.
func (t Term) Unit() *Unit { return t.unit }

// Prefix returns the term's prefix, nil when unprefixed.
func (t Term) Prefix() *Prefix { return t.prefix }

// Exponent returns the term's exponent.
func (t Term) Exponent() int { return t.exponent }

// Symbol returns the ASCII form: prefix symbol, unit symbol, exponent suffix.
func (t Term) Symbol() string {
	return t.Format(true)
}

// SymbolKey returns the unexponentiated prefix+unit ASCII symbol. Two terms
// merge in a derived unit only when their keys are equal, i.e. they share
// both unit and prefix.
func (t Term) SymbolKey() string {
	var b strings.Builder
	if t.prefix != nil {
		b.WriteString(t.prefix.Symbol)
	}
	b.WriteString(t.unit.Symbol)
	return b.String()
}

// Format renders the term. ASCII mode writes the exponent as plain digits
// ("s-2"), Unicode mode as superscripts ("s⁻²"); an exponent of 1 is
// omitted in both.
func (t Term) Format(ascii bool) string {
	var b strings.Builder
	if t.prefix != nil {
		if !ascii && t.prefix.UnicodeSymbol != "" {
			b.WriteString(t.prefix.UnicodeSymbol)
		} else {
			b.WriteString(t.prefix.Symbol)
		}
	}
	b.WriteString(t.unit.DisplaySymbol(ascii))
	if t.exponent != 1 {
		if ascii {
			b.WriteString(strconv.Itoa(t.exponent))
		} else {
			b.WriteString(superscript(t.exponent))
		}
	}
	return b.String()
}

// String returns the ASCII form.
func (t Term) String() string { return t.Format(true) }

func superscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteString("⁻")
		n = -n
	}
	if n == 0 {
		return b.String() + superscriptForDigit[0]
	}
	var digits []int
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(superscriptForDigit[digits[i]])
	}
	return b.String()
}

// Dimension returns the term's dimension string: each base letter of the
// unit's dimension with its power multiplied by the term exponent, e.g.
// "L-2" for m-2.
func (t Term) Dimension() string {
	var b strings.Builder
	for _, part := range SplitDimension(t.unit.Dimension) {
		writeDimensionPart(&b, part.Letter, part.Exponent*t.exponent)
	}
	return b.String()
}

func writeDimensionPart(b *strings.Builder, letter string, exp int) {
	if exp == 0 {
		return
	}
	b.WriteString(letter)
	if exp != 1 {
		b.WriteString(strconv.Itoa(exp))
	}
}

// Multiplier returns the prefix multiplier raised to the term exponent, 1
// for unprefixed terms.
func (t Term) Multiplier() float64 {
	if t.prefix == nil {
		return 1
	}
	return math.Pow(t.prefix.Multiplier, float64(t.exponent))
}

// Inv returns a copy with the exponent negated.
func (t Term) Inv() Term {
	return Term{unit: t.unit, prefix: t.prefix, exponent: -t.exponent}
}

// ApplyExponent multiplies the term exponent by n.
func (t Term) ApplyExponent(n int) (Term, error) {
	return NewTerm(t.unit, t.prefix, t.exponent*n)
}

// RemoveExponent resets the exponent to 1.
func (t Term) RemoveExponent() Term {
	return Term{unit: t.unit, prefix: t.prefix, exponent: 1}
}

// WithPrefix replaces the prefix, re-validating acceptance.
func (t Term) WithPrefix(p *Prefix) (Term, error) {
	return NewTerm(t.unit, p, t.exponent)
}

// RemovePrefix clears the prefix.
func (t Term) RemovePrefix() Term {
	return Term{unit: t.unit, exponent: t.exponent}
}

// Equal reports structural equality: same unit, prefix and exponent.
func (t Term) Equal(o Term) bool {
	return t.unit == o.unit && t.prefix == o.prefix && t.exponent == o.exponent
}

// IsZero reports whether the term is the zero value (no unit).
func (t Term) IsZero() bool { return t.unit == nil }
