package catalog

import (
	"fmt"
	"strings"

	ini "gopkg.in/ini.v1"

	"github.com/unitgraph/unitgraph/internal/conversion"
	"github.com/unitgraph/unitgraph/internal/unit"
)

// LoadCustomConversions merges user-defined conversion edges from an INI
// file into the dimension converters. Sections name dimension codes and
// each key is a "src->dest" pair with the factor as its value:
//
//	[L]
//	nmi->mi = 1.1507794480235425
//
// Units referenced must already exist in the registry. Call after Load.
func LoadCustomConversions(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("loading custom conversions %s: %w", path, err)
	}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		cv, err := conversion.GetByDimension(sec.Name())
		if err != nil {
			return err
		}
		for _, key := range sec.Keys() {
			srcSym, destSym, ok := strings.Cut(key.Name(), "->")
			if !ok {
				return fmt.Errorf("custom conversion %q: want src->dest", key.Name())
			}
			factor, err := key.Float64()
			if err != nil {
				return fmt.Errorf("custom conversion %q: %w", key.Name(), err)
			}
			src, err := unit.ParseDerived(strings.TrimSpace(srcSym))
			if err != nil {
				return err
			}
			dest, err := unit.ParseDerived(strings.TrimSpace(destSym))
			if err != nil {
				return err
			}
			c, err := conversion.NewFromFactor(src, dest, factor)
			if err != nil {
				return err
			}
			if err := cv.Register(c); err != nil {
				return err
			}
		}
	}
	return nil
}
