package conversion

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/dominikbraun/graph"

	"github.com/unitgraph/unitgraph/internal/numeric"
	"github.com/unitgraph/unitgraph/internal/unit"
)

// Converter answers conversion queries within one dimension code. It owns
// the registered prefix-free conversion edges as a directed graph, searches
// them for paths on demand, and caches every discovered conversion. The
// edge set is fixed after catalog load; the cache only grows.
type Converter struct {
	dimension string

	mu    sync.RWMutex
	units []*unit.Derived
	edges map[string]map[string]*Conversion
	g     graph.Graph[string, string]

	cacheMu sync.RWMutex
	cache   map[string]*Conversion
}

var (
	convertersMu sync.Mutex
	converters   = make(map[string]*Converter)
)

// GetByDimension returns the process-wide converter for the given dimension
// code, creating it on first use. The code must be built from the known
// base dimension letters, optionally exponentiated ("L", "L3", "MLT-2").
func GetByDimension(dim string) (*Converter, error) {
	canonical, err := canonicalDimension(dim)
	if err != nil {
		return nil, err
	}
	convertersMu.Lock()
	defer convertersMu.Unlock()
	if c, ok := converters[canonical]; ok {
		return c, nil
	}
	c := &Converter{
		dimension: canonical,
		edges:     make(map[string]map[string]*Conversion),
		g:         graph.New(graph.StringHash, graph.Directed()),
		cache:     make(map[string]*Conversion),
	}
	converters[canonical] = c
	return c, nil
}

// ResetForTest drops all converter singletons. Test use only.
func ResetForTest() {
	convertersMu.Lock()
	defer convertersMu.Unlock()
	converters = make(map[string]*Converter)
}

// canonicalDimension validates a dimension code and rewrites it into the
// fixed base order with merged exponents.
func canonicalDimension(dim string) (string, error) {
	if dim == "" {
		return "", NewInvalidDimensionError(dim)
	}
	powers := make(map[string]int)
	for _, part := range unit.SplitDimension(dim) {
		if !unit.IsBaseDimension(part.Letter) {
			return "", NewInvalidDimensionError(dim)
		}
		powers[part.Letter] += part.Exponent
	}
	var b strings.Builder
	for _, letter := range unit.BaseDimensions() {
		if p := powers[letter]; p != 0 {
			b.WriteString(letter)
			if p != 1 {
				b.WriteString(strconv.Itoa(p))
			}
		}
	}
	out := b.String()
	if out == "" {
		return "", NewInvalidDimensionError(dim)
	}
	return out, nil
}

// Dimension returns the converter's canonical dimension code.
func (cv *Converter) Dimension() string { return cv.dimension }

// Units returns the registered prefix-free units of this dimension.
func (cv *Converter) Units() []*unit.Derived {
	cv.mu.RLock()
	defer cv.mu.RUnlock()
	out := make([]*unit.Derived, len(cv.units))
	copy(out, cv.units)
	return out
}

// Register adds a conversion edge. The edge is normalized to its
// prefix-free form before storage, so one m<->ft edge serves every prefixed
// variant. Both endpoints become graph nodes; re-registering an existing
// pair keeps the first edge.
func (cv *Converter) Register(c *Conversion) error {
	stripped, err := c.RemovePrefixes()
	if err != nil {
		return err
	}
	dim, err := canonicalDimension(stripped.srcUnit.Dimension())
	if err != nil {
		return err
	}
	if dim != cv.dimension {
		return NewInvalidUnitForDimensionError(stripped.srcUnit.String(), cv.dimension)
	}

	cv.mu.Lock()
	defer cv.mu.Unlock()

	srcKey := cv.addNode(stripped.srcUnit)
	destKey := cv.addNode(stripped.destUnit)
	if srcKey == destKey {
		return nil
	}
	if _, ok := cv.edges[srcKey][destKey]; ok {
		return nil
	}
	if cv.edges[srcKey] == nil {
		cv.edges[srcKey] = make(map[string]*Conversion)
	}
	cv.edges[srcKey][destKey] = stripped

	// Both directions are walkable; orientation is resolved during
	// composition.
	_ = cv.g.AddEdge(srcKey, destKey)
	_ = cv.g.AddEdge(destKey, srcKey)
	return nil
}

// addNode records the unit as a graph vertex, returning its key. Caller
// holds cv.mu.
func (cv *Converter) addNode(u *unit.Derived) string {
	key := u.String()
	if err := cv.g.AddVertex(key); err == nil {
		cv.units = append(cv.units, u)
	}
	return key
}

// validateUnit normalizes a unit argument and checks it belongs to this
// converter's dimension. Used as the guard at the start of every query.
func (cv *Converter) validateUnit(v any) (*unit.Derived, error) {
	d, err := Resolve(v)
	if err != nil {
		return nil, err
	}
	dim, err := canonicalDimension(d.Dimension())
	if err != nil {
		return nil, NewInvalidUnitForDimensionError(d.String(), cv.dimension)
	}
	if dim != cv.dimension {
		return nil, NewInvalidUnitForDimensionError(d.String(), cv.dimension)
	}
	return d, nil
}

// GetConversion returns the conversion from src to dest, discovering and
// composing a path through the registered edges when no direct edge exists.
// Results are cached under the original, prefixed units.
func (cv *Converter) GetConversion(src, dest any) (*Conversion, error) {
	srcUnit, err := cv.validateUnit(src)
	if err != nil {
		return nil, err
	}
	destUnit, err := cv.validateUnit(dest)
	if err != nil {
		return nil, err
	}
	if srcUnit.Equal(destUnit) {
		return Identity(srcUnit), nil
	}

	key := srcUnit.String() + "->" + destUnit.String()
	cv.cacheMu.RLock()
	cached, ok := cv.cache[key]
	cv.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	strippedSrc, srcMult, err := srcUnit.RemovePrefixes()
	if err != nil {
		return nil, err
	}
	strippedDest, destMult, err := destUnit.RemovePrefixes()
	if err != nil {
		return nil, err
	}

	var found *Conversion
	if strippedSrc.Equal(strippedDest) {
		found = Identity(strippedSrc)
	} else {
		found, err = cv.findPath(strippedSrc, strippedDest)
		if err != nil {
			var noPath *NoConversionPathError
			if !errors.As(err, &noPath) {
				return nil, err
			}
			found, err = cv.deriveComposite(strippedSrc, strippedDest)
			if err != nil {
				if !errors.As(err, &noPath) {
					return nil, err
				}
				found, err = cv.deriveViaBridge(strippedSrc, strippedDest)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	ratio, err := numeric.Exact(srcMult).Div(numeric.Exact(destMult))
	if err != nil {
		return nil, err
	}
	result := &Conversion{
		srcUnit:  srcUnit,
		destUnit: destUnit,
		factor:   found.factor.Mul(ratio),
	}

	cv.cacheMu.Lock()
	if prior, ok := cv.cache[key]; ok {
		result = prior
	} else {
		cv.cache[key] = result
	}
	cv.cacheMu.Unlock()
	return result, nil
}

// findPath searches the prefix-free edge set for a conversion from a to b:
// a direct edge in either orientation first, then a two-hop derivation
// through a shared anchor, then a full shortest-path walk.
func (cv *Converter) findPath(a, b *unit.Derived) (*Conversion, error) {
	cv.mu.RLock()
	defer cv.mu.RUnlock()

	aKey, bKey := a.String(), b.String()

	if c, err := cv.direct(a, aKey, bKey); c != nil || err != nil {
		return c, err
	}
	if c, err := cv.twoHop(aKey, bKey); c != nil || err != nil {
		return c, err
	}

	path, err := graph.ShortestPath(cv.g, aKey, bKey)
	if err != nil {
		return nil, NewNoConversionPathError(aKey, bKey, cv.dimension)
	}
	return cv.composePath(a, path)
}

// direct returns the registered edge a->b, or derives it from the reverse
// edge by converging the identity on it.
func (cv *Converter) direct(a *unit.Derived, aKey, bKey string) (*Conversion, error) {
	if c, ok := cv.edges[aKey][bKey]; ok {
		return c, nil
	}
	if rev, ok := cv.edges[bKey][aKey]; ok {
		return Identity(a).CombineConvergent(rev)
	}
	return nil, nil
}

// twoHop derives a->b through any anchor unit X adjacent to both sides,
// picking the combinator that matches the orientation of the two edges:
//
//	a->X, X->b   sequential
//	a->X, b->X   convergent
//	X->a, X->b   divergent
//	X->a, b->X   opposite
func (cv *Converter) twoHop(aKey, bKey string) (*Conversion, error) {
	for x, out := range cv.edges {
		switch x {
		case aKey:
			for dest, e1 := range out {
				if e2, ok := cv.edges[dest][bKey]; ok {
					return e1.CombineSequential(e2)
				}
				if e2, ok := cv.edges[bKey][dest]; ok {
					return e1.CombineConvergent(e2)
				}
			}
		default:
			e1, toA := out[aKey]
			if !toA {
				continue
			}
			if e2, ok := cv.edges[x][bKey]; ok {
				return e1.CombineDivergent(e2)
			}
			if e2, ok := cv.edges[bKey][x]; ok {
				return e1.CombineOpposite(e2)
			}
		}
	}
	return nil, nil
}

// composePath folds a shortest-path node sequence into one conversion,
// chaining forward edges sequentially and absorbing reversed edges with the
// convergent combinator.
func (cv *Converter) composePath(src *unit.Derived, path []string) (*Conversion, error) {
	acc := Identity(src)
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if fwd, ok := cv.edges[u][v]; ok {
			next, err := acc.CombineSequential(fwd)
			if err != nil {
				return nil, err
			}
			acc = next
			continue
		}
		rev, ok := cv.edges[v][u]
		if !ok {
			return nil, NewNoConversionPathError(u, v, cv.dimension)
		}
		next, err := acc.CombineConvergent(rev)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// deriveComposite handles queries no registered edge set answers directly:
// compound dimensions delegate to the base dimension converter and raise
// the factor to the exponent (area = linear squared), and expansion-bearing
// units are expanded before retrying.
func (cv *Converter) deriveComposite(a, b *unit.Derived) (*Conversion, error) {
	if a.HasExpansions() || b.HasExpansions() {
		return cv.deriveViaExpansion(a, b)
	}

	aTerms, bTerms := a.Terms(), b.Terms()
	if len(aTerms) != len(bTerms) {
		return nil, NewNoConversionPathError(a.String(), b.String(), cv.dimension)
	}

	// Pair the terms per base dimension and multiply the per-dimension
	// factors, each raised to its shared exponent.
	factor := numeric.Exact(1)
	for i := range aTerms {
		at, bt := aTerms[i], bTerms[i]
		if at.Exponent() != bt.Exponent() {
			return nil, NewNoConversionPathError(a.String(), b.String(), cv.dimension)
		}
		exp := at.Exponent()
		baseSrc, err := unit.NewTerm(at.Unit(), nil, 1)
		if err != nil {
			return nil, err
		}
		baseDest, err := unit.NewTerm(bt.Unit(), nil, 1)
		if err != nil {
			return nil, err
		}
		baseDim, err := canonicalDimension(baseSrc.Dimension())
		if err != nil {
			return nil, NewNoConversionPathError(a.String(), b.String(), cv.dimension)
		}
		if baseDim == cv.dimension {
			// Delegating to ourselves would recurse forever.
			return nil, NewNoConversionPathError(a.String(), b.String(), cv.dimension)
		}
		base, err := GetByDimension(baseDim)
		if err != nil {
			return nil, err
		}
		baseConv, err := base.GetConversion(baseSrc, baseDest)
		if err != nil {
			return nil, err
		}
		raised, err := baseConv.Factor().Pow(exp)
		if err != nil {
			return nil, err
		}
		factor = factor.Mul(raised)
	}
	if factor.Value() <= 0 {
		return nil, NewNonPositiveFactorError(factor.Value())
	}
	return &Conversion{srcUnit: a, destUnit: b, factor: factor}, nil
}

// deriveViaBridge connects a query that neither graph search nor composite
// derivation can answer alone by pivoting through a registered unit: the
// named area unit bridges hectare -> m2 by edge, then m2 -> ft2 by
// delegation.
func (cv *Converter) deriveViaBridge(a, b *unit.Derived) (*Conversion, error) {
	for _, n := range cv.Units() {
		if n.Equal(a) || n.Equal(b) {
			continue
		}
		if left, err := cv.findPath(a, n); err == nil {
			if right, err := cv.deriveComposite(n, b); err == nil {
				return left.CombineSequential(right)
			}
		}
		if right, err := cv.findPath(n, b); err == nil {
			if left, err := cv.deriveComposite(a, n); err == nil {
				return left.CombineSequential(right)
			}
		}
	}
	return nil, NewNoConversionPathError(a.String(), b.String(), cv.dimension)
}

// deriveViaExpansion expands both sides into fundamental units and converts
// between the expanded forms.
func (cv *Converter) deriveViaExpansion(a, b *unit.Derived) (*Conversion, error) {
	ea, aMult, err := a.Expand()
	if err != nil {
		return nil, err
	}
	eb, bMult, err := b.Expand()
	if err != nil {
		return nil, err
	}
	var inner *Conversion
	if ea.Equal(eb) {
		inner = Identity(ea)
	} else {
		sa, saMult, err := ea.RemovePrefixes()
		if err != nil {
			return nil, err
		}
		sb, sbMult, err := eb.RemovePrefixes()
		if err != nil {
			return nil, err
		}
		aMult *= saMult
		bMult *= sbMult
		if sa.Equal(sb) {
			inner = Identity(sa)
		} else {
			inner, err = cv.deriveComposite(sa, sb)
			if err != nil {
				var noPath *NoConversionPathError
				if !errors.As(err, &noPath) {
					return nil, err
				}
				inner, err = cv.normalizeAndMatch(sa, sb)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	ratio, err := numeric.Exact(aMult).Div(numeric.Exact(bMult))
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: a, destUnit: b, factor: inner.factor.Mul(ratio)}, nil
}

// normalizeAndMatch rewrites both sides onto SI base units and compares the
// normal forms. It catches expanded units whose term structures differ, like
// kg*m2*s-3*h against kg*m2*s-2, where the hour must first fold into the
// seconds term.
func (cv *Converter) normalizeAndMatch(a, b *unit.Derived) (*Conversion, error) {
	na, fa, err := cv.normalizeToSI(a)
	if err != nil {
		return nil, err
	}
	nb, fb, err := cv.normalizeToSI(b)
	if err != nil {
		return nil, err
	}
	if !na.Equal(nb) {
		return nil, NewNoConversionPathError(a.String(), b.String(), cv.dimension)
	}
	f, err := fa.Div(fb)
	if err != nil {
		return nil, err
	}
	return &Conversion{srcUnit: a, destUnit: b, factor: f}, nil
}

// normalizeToSI converts every term of a prefix-free derived unit to the SI
// unit of its base dimension, merging terms that land on the same unit. The
// returned factor carries the accumulated per-term conversion factors.
func (cv *Converter) normalizeToSI(d *unit.Derived) (*unit.Derived, numeric.FloatWithError, error) {
	reg := unit.DefaultRegistry()
	out := unit.MustDerived()
	factor := numeric.Exact(1)
	noPath := func() error {
		return NewNoConversionPathError(d.String(), d.String(), cv.dimension)
	}
	for _, t := range d.Terms() {
		parts := unit.SplitDimension(t.Unit().Dimension)
		if len(parts) != 1 || parts[0].Exponent != 1 {
			return nil, factor, noPath()
		}
		letter := parts[0].Letter
		if letter == cv.dimension {
			return nil, factor, noPath()
		}
		si, _ := reg.SIUnitForDimension(letter)
		if si == nil {
			return nil, factor, noPath()
		}
		if si != t.Unit() {
			base, err := GetByDimension(letter)
			if err != nil {
				return nil, factor, err
			}
			conv, err := base.GetConversion(t.Unit(), si)
			if err != nil {
				return nil, factor, err
			}
			raised, err := conv.Factor().Pow(t.Exponent())
			if err != nil {
				return nil, factor, err
			}
			factor = factor.Mul(raised)
		}
		nt, err := unit.NewTerm(si, nil, t.Exponent())
		if err != nil {
			return nil, factor, err
		}
		if err := out.AddTerm(nt); err != nil {
			return nil, factor, err
		}
	}
	return out, factor, nil
}

// GetConversionFactor returns the scalar factor from src to dest.
func (cv *Converter) GetConversionFactor(src, dest any) (float64, error) {
	c, err := cv.GetConversion(src, dest)
	if err != nil {
		return 0, err
	}
	return c.Factor().Value(), nil
}

// Convert converts a value from src to dest. Converting zero never touches
// the factor machinery: the result is zero whether or not a path exists.
func (cv *Converter) Convert(value float64, src, dest any) (float64, error) {
	if value == 0 {
		if _, err := cv.validateUnit(src); err != nil {
			return 0, err
		}
		if _, err := cv.validateUnit(dest); err != nil {
			return 0, err
		}
		return 0, nil
	}
	factor, err := cv.GetConversionFactor(src, dest)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// CacheEntry is one discovered conversion, in a form suitable for
// persistence.
type CacheEntry struct {
	SrcUnit  string
	DestUnit string
	Factor   numeric.FloatWithError
}

// CacheSnapshot returns every conversion discovered so far.
func (cv *Converter) CacheSnapshot() []CacheEntry {
	cv.cacheMu.RLock()
	defer cv.cacheMu.RUnlock()
	entries := make([]CacheEntry, 0, len(cv.cache))
	for _, c := range cv.cache {
		entries = append(entries, CacheEntry{
			SrcUnit:  c.srcUnit.String(),
			DestUnit: c.destUnit.String(),
			Factor:   c.factor,
		})
	}
	return entries
}

// WarmCache seeds the cache with a previously discovered conversion. Both
// units must parse and carry this converter's dimension. An entry already
// present for the pair wins over the seed.
func (cv *Converter) WarmCache(e CacheEntry) error {
	srcUnit, err := cv.validateUnit(e.SrcUnit)
	if err != nil {
		return err
	}
	destUnit, err := cv.validateUnit(e.DestUnit)
	if err != nil {
		return err
	}
	c, err := New(srcUnit, destUnit, e.Factor)
	if err != nil {
		return err
	}
	key := srcUnit.String() + "->" + destUnit.String()
	cv.cacheMu.Lock()
	if _, ok := cv.cache[key]; !ok {
		cv.cache[key] = c
	}
	cv.cacheMu.Unlock()
	return nil
}
