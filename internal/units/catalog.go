// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"fmt"

	"github.com/pdiddy/dox4free/pkg/types"
)

// Catalog maps each quantity to its unit table.
type Catalog struct {
	tables   map[types.Quantity]*Table
	foldCase bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithFoldCase makes Lookup ignore case when no exact match exists.
func WithFoldCase(fold bool) Option {
	return func(c *Catalog) { c.foldCase = fold }
}

// NewCatalog builds a catalog from tables. Each quantity may appear once.
func NewCatalog(tables []*Table, opts ...Option) (*Catalog, error) {
	c := &Catalog{tables: make(map[types.Quantity]*Table, len(tables))}
	for _, t := range tables {
		if _, dup := c.tables[t.Quantity()]; dup {
			return nil, fmt.Errorf("duplicate table for quantity %q", t.Quantity())
		}
		c.tables[t.Quantity()] = t
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// With returns a copy of c with opts applied. The tables are shared.
func (c *Catalog) With(opts ...Option) *Catalog {
	cp := &Catalog{tables: c.tables, foldCase: c.foldCase}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// FoldCase reports whether lookups ignore case.
func (c *Catalog) FoldCase() bool { return c.foldCase }

// Table returns the table for q.
func (c *Catalog) Table(q types.Quantity) (*Table, bool) {
	t, ok := c.tables[q]
	return t, ok
}

// Quantities returns the catalog's quantities in display order.
func (c *Catalog) Quantities() []types.Quantity {
	var qs []types.Quantity
	for _, q := range types.Quantities() {
		if _, ok := c.tables[q]; ok {
			qs = append(qs, q)
		}
	}
	return qs
}

// Lookup resolves a unit name within q, honouring the catalog's case policy.
func (c *Catalog) Lookup(q types.Quantity, name string) (types.Unit, bool) {
	t, ok := c.tables[q]
	if !ok {
		return types.Unit{}, false
	}
	if c.foldCase {
		return t.LookupFold(name)
	}
	return t.Lookup(name)
}

// QuantitiesOf returns every quantity whose table contains name.
func (c *Catalog) QuantitiesOf(name string) []types.Quantity {
	var qs []types.Quantity
	for _, q := range c.Quantities() {
		if _, ok := c.Lookup(q, name); ok {
			qs = append(qs, q)
		}
	}
	return qs
}
