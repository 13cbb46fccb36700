// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dox4free/pkg/types"
)

// UnitSpec is the serialisable form of a unit. Exactly one of the linear
// fields (Factor, Divisor) or Affine is set.
type UnitSpec struct {
	Name    string        `json:"name" yaml:"name" msgpack:"name"`
	Display string        `json:"display,omitempty" yaml:"display,omitempty" msgpack:"display,omitempty"`
	Plural  string        `json:"plural,omitempty" yaml:"plural,omitempty" msgpack:"plural,omitempty"`
	Symbol  string        `json:"symbol,omitempty" yaml:"symbol,omitempty" msgpack:"symbol,omitempty"`
	Factor  float64       `json:"factor,omitempty" yaml:"factor,omitempty" msgpack:"factor,omitempty"`
	Divisor float64       `json:"divisor,omitempty" yaml:"divisor,omitempty" msgpack:"divisor,omitempty"`
	Affine  *types.Affine `json:"affine,omitempty" yaml:"affine,omitempty" msgpack:"affine,omitempty"`
}

// QuantitySpec is the serialisable form of one quantity's units.
type QuantitySpec struct {
	Quantity types.Quantity `json:"quantity" yaml:"quantity" msgpack:"quantity"`
	Base     string         `json:"base,omitempty" yaml:"base,omitempty" msgpack:"base,omitempty"`
	Units    []UnitSpec     `json:"units" yaml:"units" msgpack:"units"`
}

// CatalogSpec is the serialisable form of a catalog, used both for YAML
// overlays and for exports.
type CatalogSpec struct {
	Quantities []QuantitySpec `json:"quantities" yaml:"quantities" msgpack:"quantities"`
}

// Unit converts the spec into a Unit.
func (s UnitSpec) Unit() (types.Unit, error) {
	u := types.Unit{
		Name:    s.Name,
		Display: s.Display,
		Plural:  s.Plural,
		Symbol:  s.Symbol,
	}
	switch {
	case s.Affine != nil && (s.Factor != 0 || s.Divisor != 0):
		return types.Unit{}, fmt.Errorf("unit %q: set either factor/divisor or affine, not both", s.Name)
	case s.Affine != nil:
		u.Rule = *s.Affine
	case s.Factor != 0:
		u.Rule = types.Linear{Factor: s.Factor, Divisor: s.Divisor}
	default:
		return types.Unit{}, fmt.Errorf("unit %q: no conversion factor", s.Name)
	}
	return u, nil
}

// SpecOf returns the serialisable form of u.
func SpecOf(u types.Unit) UnitSpec {
	s := UnitSpec{
		Name:    u.Name,
		Display: u.Display,
		Plural:  u.Plural,
		Symbol:  u.Symbol,
	}
	switch r := u.Rule.(type) {
	case types.Linear:
		s.Factor, s.Divisor = r.Factor, r.Divisor
	case types.Affine:
		a := r
		s.Affine = &a
	}
	return s
}

// Spec returns the serialisable form of the catalog in display order.
func (c *Catalog) Spec() CatalogSpec {
	var out CatalogSpec
	for _, q := range c.Quantities() {
		t := c.tables[q]
		qs := QuantitySpec{Quantity: q, Base: t.base, Units: make([]UnitSpec, len(t.units))}
		for i, u := range t.units {
			qs.Units[i] = SpecOf(u)
		}
		out.Quantities = append(out.Quantities, qs)
	}
	return out
}

// LoadOverlay reads a YAML catalog overlay from path.
func LoadOverlay(path string) (CatalogSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatalogSpec{}, fmt.Errorf("reading catalog overlay %s: %w", path, err)
	}
	var spec CatalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return CatalogSpec{}, fmt.Errorf("parsing catalog overlay %s: %w", path, err)
	}
	return spec, nil
}

// Extend returns a new catalog with the overlay's units appended to the
// existing tables. Overlays may only add units to known quantities and
// may not redefine an existing unit or change a base unit. Every extended
// table is re-validated. c is left unchanged.
func (c *Catalog) Extend(overlay CatalogSpec) (*Catalog, error) {
	specs := make(map[types.Quantity]TableSpec, len(c.tables))
	for q, t := range c.tables {
		specs[q] = t.spec()
	}

	for _, qs := range overlay.Quantities {
		q, err := types.ParseQuantity(string(qs.Quantity))
		if err != nil {
			return nil, err
		}
		ts, ok := specs[q]
		if !ok {
			return nil, fmt.Errorf("catalog has no %s table to extend", q)
		}
		if qs.Base != "" && qs.Base != ts.Base {
			return nil, fmt.Errorf("%s: overlay cannot change base unit %q to %q", q, ts.Base, qs.Base)
		}
		for _, us := range qs.Units {
			u, err := us.Unit()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", q, err)
			}
			ts.Units = append(ts.Units, u)
		}
		specs[q] = ts
	}

	tables := make([]*Table, 0, len(specs))
	for _, q := range c.Quantities() {
		t, err := NewTable(specs[q])
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return NewCatalog(tables, WithFoldCase(c.foldCase))
}

// Load builds the catalog used by the CLI: the built-in tables extended
// with each overlay file in order.
func Load(files []string, opts ...Option) (*Catalog, error) {
	c := Builtin()
	for _, f := range files {
		overlay, err := LoadOverlay(f)
		if err != nil {
			return nil, err
		}
		if c, err = c.Extend(overlay); err != nil {
			return nil, fmt.Errorf("applying %s: %w", f, err)
		}
	}
	return c.With(opts...), nil
}
