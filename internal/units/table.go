// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units holds the per-quantity unit tables the conversion engine
// routes through: the built-in tables, lookup, invariant validation, and
// YAML overlays that add units at startup.
package units

import (
	"fmt"
	"strings"

	"github.com/pdiddy/dox4free/pkg/types"
)

// TableSpec describes a unit table before validation.
type TableSpec struct {
	Quantity types.Quantity
	Base     string
	Units    []types.Unit

	// Format overrides the engine's default display rule for this quantity.
	Format *types.FormatRule

	// AbsoluteZero is the physical floor in base units, if the quantity has one.
	AbsoluteZero *float64
}

// Table is an immutable, validated set of units for one quantity.
type Table struct {
	quantity     types.Quantity
	base         string
	units        []types.Unit
	index        map[string]int
	format       *types.FormatRule
	absoluteZero *float64
}

// NewTable validates spec and builds a Table from it.
func NewTable(spec TableSpec) (*Table, error) {
	t := &Table{
		quantity:     spec.Quantity,
		base:         spec.Base,
		units:        append([]types.Unit(nil), spec.Units...),
		index:        make(map[string]int, len(spec.Units)),
		format:       spec.Format,
		absoluteZero: spec.AbsoluteZero,
	}
	for i, u := range t.units {
		if _, dup := t.index[u.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate unit %q", spec.Quantity, u.Name)
		}
		t.index[u.Name] = i
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Quantity returns the table's quantity.
func (t *Table) Quantity() types.Quantity { return t.quantity }

// Base returns the base unit.
func (t *Table) Base() types.Unit { return t.units[t.index[t.base]] }

// Units returns a copy of the units in table order.
func (t *Table) Units() []types.Unit {
	return append([]types.Unit(nil), t.units...)
}

// Len returns the number of units in the table.
func (t *Table) Len() int { return len(t.units) }

// Lookup finds a unit by exact, case-sensitive name.
func (t *Table) Lookup(name string) (types.Unit, bool) {
	i, ok := t.index[name]
	if !ok {
		return types.Unit{}, false
	}
	return t.units[i], true
}

// LookupFold finds a unit by name ignoring case. An exact match wins over
// a case-folded one.
func (t *Table) LookupFold(name string) (types.Unit, bool) {
	if u, ok := t.Lookup(name); ok {
		return u, true
	}
	for _, u := range t.units {
		if strings.EqualFold(u.Name, name) {
			return u, true
		}
	}
	return types.Unit{}, false
}

// Format returns the table's display rule override, if any.
func (t *Table) Format() (types.FormatRule, bool) {
	if t.format == nil {
		return types.FormatRule{}, false
	}
	return *t.format, true
}

// AbsoluteZero returns the quantity's physical floor in base units.
func (t *Table) AbsoluteZero() (float64, bool) {
	if t.absoluteZero == nil {
		return 0, false
	}
	return *t.absoluteZero, true
}

// spec returns a TableSpec that rebuilds t.
func (t *Table) spec() TableSpec {
	return TableSpec{
		Quantity:     t.quantity,
		Base:         t.base,
		Units:        t.Units(),
		Format:       t.format,
		AbsoluteZero: t.absoluteZero,
	}
}
