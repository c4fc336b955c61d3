// Package catalog holds the static unit and conversion tables. Each
// quantity type supplies its unit definitions and seed conversions; Load
// registers everything into the unit registry and the per-dimension
// converters exactly once.
package catalog

import (
	"sync"

	"github.com/unitgraph/unitgraph/internal/conversion"
	"github.com/unitgraph/unitgraph/internal/unit"
)

// UnitDefinition describes one unit of a quantity type, keyed by canonical
// name in UnitDefinitions.
type UnitDefinition struct {
	ASCIISymbol     string
	UnicodeSymbol   string
	AltSymbol       string
	PrefixGroups    []unit.PrefixGroup
	Systems         []unit.System
	ExpansionSymbol string
	ExpansionValue  float64
}

// ConversionDefinition is one seed edge of the conversion graph.
type ConversionDefinition struct {
	SrcSymbol  string
	DestSymbol string
	Factor     float64
}

// QuantityType supplies the static tables for one physical quantity.
type QuantityType interface {
	Name() string
	Dimension() string
	UnitDefinitions() map[string]UnitDefinition
	ConversionDefinitions() []ConversionDefinition
}

// QuantityTypes returns all built-in quantity types in registration order.
func QuantityTypes() []QuantityType {
	return []QuantityType{
		Length{}, Mass{}, Time{}, Current{}, Temperature{},
		Amount{}, LuminousIntensity{}, Angle{}, Data{},
		Area{}, Volume{}, Force{}, Energy{}, Power{}, Pressure{}, Speed{},
	}
}

var (
	loadOnce sync.Once
	loadErr  error
)

// Load populates the default unit registry and the dimension converters
// from the built-in tables. Safe to call from multiple goroutines; only the
// first call does work.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load(unit.DefaultRegistry())
	})
	return loadErr
}

func load(reg *unit.Registry) error {
	types := QuantityTypes()

	// Units first, expansions second: an expansion may reference units of
	// any quantity type, so the whole symbol table must exist before any
	// expansion text is parsed.
	type pendingExpansion struct {
		u      *unit.Unit
		symbol string
		value  float64
	}
	var pending []pendingExpansion

	for _, qt := range types {
		for name, def := range qt.UnitDefinitions() {
			u := &unit.Unit{
				Name:          name,
				Symbol:        def.ASCIISymbol,
				UnicodeSymbol: def.UnicodeSymbol,
				AltSymbol:     def.AltSymbol,
				Dimension:     qt.Dimension(),
				PrefixGroups:  def.PrefixGroups,
				Systems:       def.Systems,
			}
			if err := reg.Register(u); err != nil {
				return err
			}
			if def.ExpansionSymbol != "" {
				pending = append(pending, pendingExpansion{u: u, symbol: def.ExpansionSymbol, value: def.ExpansionValue})
			}
		}
	}

	for _, p := range pending {
		expanded, err := unit.ParseDerivedIn(reg, p.symbol)
		if err != nil {
			return err
		}
		value := p.value
		if value == 0 {
			value = 1
		}
		p.u.Expansion = &unit.Expansion{Unit: expanded, Value: value}
	}

	for _, qt := range types {
		for _, def := range qt.ConversionDefinitions() {
			if err := registerConversion(reg, def); err != nil {
				return err
			}
		}
	}
	return nil
}

func registerConversion(reg *unit.Registry, def ConversionDefinition) error {
	src, err := unit.ParseDerivedIn(reg, def.SrcSymbol)
	if err != nil {
		return err
	}
	dest, err := unit.ParseDerivedIn(reg, def.DestSymbol)
	if err != nil {
		return err
	}
	c, err := conversion.NewFromFactor(src, dest, def.Factor)
	if err != nil {
		return err
	}
	cv, err := conversion.GetByDimension(src.Dimension())
	if err != nil {
		return err
	}
	return cv.Register(c)
}
