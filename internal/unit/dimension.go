package unit

import "strings"

// Base dimension codes. Every compound dimension string is a concatenation
// of these letters with optional signed integer exponents, in the order
// listed by BaseDimensions.
const (
	DimMass        = "M"
	DimLength      = "L"
	DimTime        = "T"
	DimCurrent     = "I"
	DimTemperature = "H"
	DimAmount      = "N"
	DimLuminous    = "J"
	DimAngle       = "A"
	DimData        = "D"
)

var baseDimensionOrder = []string{
	DimMass, DimLength, DimTime, DimCurrent, DimTemperature,
	DimAmount, DimLuminous, DimAngle, DimData,
}

// BaseDimensions returns the base dimension letters in canonical order.
func BaseDimensions() []string {
	out := make([]string, len(baseDimensionOrder))
	copy(out, baseDimensionOrder)
	return out
}

// IsBaseDimension reports whether s is one of the base dimension letters.
func IsBaseDimension(s string) bool {
	for _, letter := range baseDimensionOrder {
		if s == letter {
			return true
		}
	}
	return false
}

// dimensionRank returns the canonical position of a base dimension letter;
// unknown letters sort last.
func dimensionRank(letter string) int {
	for i, l := range baseDimensionOrder {
		if l == letter {
			return i
		}
	}
	return len(baseDimensionOrder)
}

// DimensionPart is one letter of a dimension string with its exponent.
type DimensionPart struct {
	Letter   string
	Exponent int
}

// SplitDimension decomposes a dimension code into its letter-exponent
// parts, e.g. "MLT-2" into M1, L1, T-2. A letter with no trailing number
// has exponent 1. Unknown letters pass through so callers can reject them.
func SplitDimension(code string) []DimensionPart {
	var parts []DimensionPart
	i := 0
	for i < len(code) {
		letter := string(code[i])
		i++
		j := i
		if j < len(code) && code[j] == '-' {
			j++
		}
		for j < len(code) && code[j] >= '0' && code[j] <= '9' {
			j++
		}
		exp := 1
		if j > i && strings.TrimPrefix(code[i:j], "-") != "" {
			exp = atoiFast(code[i:j])
		}
		parts = append(parts, DimensionPart{Letter: letter, Exponent: exp})
		i = j
	}
	return parts
}

// atoiFast parses a small signed decimal integer; the caller guarantees the
// input shape.
func atoiFast(s string) int {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
