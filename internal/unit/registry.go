package unit

import "sync"

// Registry holds the process-wide unit tables. It is populated once from the
// catalog definitions at startup and is read-only afterwards; the lock only
// guards the load phase against concurrent first use.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Unit
	bySymbol map[string][]*Unit
}

// NewRegistry creates an empty unit registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]*Unit),
		bySymbol: make(map[string][]*Unit),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the parsers.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a unit under its name and all of its symbols. Registering a
// name twice replaces nothing and reports an error.
func (r *Registry) Register(u *Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[u.Name]; ok {
		return NewDuplicateUnitError(u.Name)
	}
	r.byName[u.Name] = u

	r.addSymbol(u.Symbol, u)
	if u.UnicodeSymbol != "" && u.UnicodeSymbol != u.Symbol {
		r.addSymbol(u.UnicodeSymbol, u)
	}
	if u.AltSymbol != "" && u.AltSymbol != u.Symbol {
		r.addSymbol(u.AltSymbol, u)
	}
	return nil
}

func (r *Registry) addSymbol(sym string, u *Unit) {
	for _, existing := range r.bySymbol[sym] {
		if existing == u {
			return
		}
	}
	r.bySymbol[sym] = append(r.bySymbol[sym], u)
}

// ByName returns the unit with the given canonical name, or nil.
func (r *Registry) ByName(name string) *Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// BySymbol returns every unit registered under the given ASCII, Unicode or
// alternate symbol.
func (r *Registry) BySymbol(sym string) []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	units := r.bySymbol[sym]
	out := make([]*Unit, len(units))
	copy(out, units)
	return out
}

// All returns every registered unit, unordered.
func (r *Registry) All() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Unit, 0, len(r.byName))
	for _, u := range r.byName {
		out = append(out, u)
	}
	return out
}

// SIUnitForDimension returns the SI unit (and prefix, for the kilogram) used
// when rewriting a term to its SI equivalent. Nil when the dimension has no
// registered SI unit.
func (r *Registry) SIUnitForDimension(dim string) (*Unit, *Prefix) {
	switch dim {
	case DimLength:
		return r.ByName("metre"), nil
	case DimMass:
		return r.ByName("gram"), PrefixByName("kilo")
	case DimTime:
		return r.ByName("second"), nil
	case DimCurrent:
		return r.ByName("ampere"), nil
	case DimTemperature:
		return r.ByName("kelvin"), nil
	case DimAmount:
		return r.ByName("mole"), nil
	case DimLuminous:
		return r.ByName("candela"), nil
	case DimAngle:
		return r.ByName("radian"), nil
	case DimData:
		return r.ByName("byte"), nil
	}
	return nil, nil
}
