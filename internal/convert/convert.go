// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the unit-conversion engine: parse the raw
// input, resolve both units in the quantity's table, enforce the domain
// floor, route the magnitude through the base unit and format the result.
//
// The engine is synchronous and holds no mutable state; one Engine may be
// shared by any number of goroutines.
package convert

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/pdiddy/dox4free/internal/format"
	"github.com/pdiddy/dox4free/internal/units"
	"github.com/pdiddy/dox4free/pkg/types"
)

// Engine converts magnitudes between units of one quantity.
type Engine struct {
	catalog        *units.Catalog
	format         types.FormatRule
	rejectNegative bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithFormat sets the display rule used by quantities without their own.
func WithFormat(rule types.FormatRule) Option {
	return func(e *Engine) { e.format = rule }
}

// WithRejectNegative rejects negative input for every quantity except
// temperature, whose floor is always absolute zero.
func WithRejectNegative(reject bool) Option {
	return func(e *Engine) { e.rejectNegative = reject }
}

// New creates an engine over catalog. Without options it uses the default
// display thresholds and accepts negative magnitudes.
func New(catalog *units.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		format:  types.DefaultConfig().Format.Rule(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig creates an engine with the format and validation settings
// from cfg.
func NewFromConfig(cfg types.Config, catalog *units.Catalog) *Engine {
	return New(catalog,
		WithFormat(cfg.Format.Rule()),
		WithRejectNegative(cfg.Validation.RejectNegative),
	)
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return New(units.Builtin())
})

// Convert converts input between two units of q using the built-in tables
// and default settings.
func Convert(q types.Quantity, input, from, to string) (types.Conversion, error) {
	return defaultEngine().Convert(q, input, from, to)
}

// Catalog returns the engine's unit catalog.
func (e *Engine) Catalog() *units.Catalog { return e.catalog }

// FormatRule returns the display rule applied to results of q.
func (e *Engine) FormatRule(q types.Quantity) types.FormatRule {
	if t, ok := e.catalog.Table(q); ok {
		if rule, ok := t.Format(); ok {
			return rule
		}
	}
	return e.format
}

// Convert parses input, converts it from one unit of q to another and
// formats the result. Every failure is returned as an *Error.
func (e *Engine) Convert(q types.Quantity, input, from, to string) (types.Conversion, error) {
	req := types.Request{Quantity: q, Value: input, From: from, To: to}

	table, ok := e.catalog.Table(q)
	if !ok {
		err := newError(KindUnknownQuantity, q, input)
		err.Detail = fmt.Sprintf("%q", q)
		return types.Conversion{}, err
	}

	x, perr := ParseValue(input)
	if perr != nil {
		return types.Conversion{}, newError(KindInvalidInput, q, input)
	}

	fromUnit, ok := e.catalog.Lookup(q, from)
	if !ok {
		return types.Conversion{}, unknownUnit(q, input, from)
	}
	toUnit, ok := e.catalog.Lookup(q, to)
	if !ok {
		return types.Conversion{}, unknownUnit(q, input, to)
	}

	if e.rejectNegative && q != types.Temperature && x < 0 {
		err := newError(KindNegativeValue, q, input)
		err.Unit = fromUnit.Name
		err.Detail = fmt.Sprintf("%s values must be zero or greater", q)
		return types.Conversion{}, err
	}

	base := fromUnit.ToBase(x)
	if floor, ok := table.AbsoluteZero(); ok && base < floor {
		err := newError(KindBelowAbsoluteZero, q, input)
		err.Unit = fromUnit.Name
		err.Threshold = format.Symbol(fromUnit, format.Number(fromUnit.FromBase(floor), e.FormatRule(q)))
		return types.Conversion{}, err
	}

	var result float64
	if fromUnit.Name == toUnit.Name {
		result = x
	} else {
		result = toUnit.FromBase(base)
	}
	if !finite(result) {
		err := newError(KindOutOfRange, q, input)
		err.Unit = toUnit.Name
		err.Detail = fmt.Sprintf("%s %s does not fit in %s", strings.TrimSpace(input), fromUnit.Name, format.PluralName(toUnit))
		return types.Conversion{}, err
	}

	// Report canonical names when lookups fold case.
	req.From, req.To = fromUnit.Name, toUnit.Name

	return types.Conversion{
		Request:   req,
		Input:     x,
		Value:     result,
		Formatted: format.Number(result, e.FormatRule(q)),
	}, nil
}

// ConvertRequest converts r. When r.Quantity is empty the quantity is
// inferred from the unit names.
func (e *Engine) ConvertRequest(r types.Request) (types.Conversion, error) {
	if r.Quantity == "" {
		return e.Infer(r.Value, r.From, r.To)
	}
	q, err := types.ParseQuantity(string(r.Quantity))
	if err != nil {
		cerr := newError(KindUnknownQuantity, r.Quantity, r.Value)
		cerr.Detail = fmt.Sprintf("%q", r.Quantity)
		return types.Conversion{}, cerr
	}
	return e.Convert(q, r.Value, r.From, r.To)
}

// Infer converts input between two units without naming the quantity. The
// quantity is the single one whose table contains both units.
func (e *Engine) Infer(input, from, to string) (types.Conversion, error) {
	fromQs := e.catalog.QuantitiesOf(from)
	if len(fromQs) == 0 {
		return types.Conversion{}, unknownUnit("", input, from)
	}
	toQs := e.catalog.QuantitiesOf(to)
	if len(toQs) == 0 {
		return types.Conversion{}, unknownUnit("", input, to)
	}

	var shared []types.Quantity
	for _, fq := range fromQs {
		for _, tq := range toQs {
			if fq == tq {
				shared = append(shared, fq)
			}
		}
	}

	switch len(shared) {
	case 0:
		err := newError(KindUnknownUnit, "", input)
		err.Unit = to
		err.Detail = fmt.Sprintf("%q (%s) and %q (%s) measure different quantities",
			from, joinQuantities(fromQs), to, joinQuantities(toQs))
		return types.Conversion{}, err
	case 1:
		return e.Convert(shared[0], input, from, to)
	default:
		err := newError(KindAmbiguousUnit, "", input)
		err.Unit = from
		err.Detail = fmt.Sprintf("%q and %q exist in %s; specify a quantity",
			from, to, joinQuantities(shared))
		return types.Conversion{}, err
	}
}

func unknownUnit(q types.Quantity, input, name string) *Error {
	err := newError(KindUnknownUnit, q, input)
	err.Unit = name
	if q == "" {
		err.Detail = fmt.Sprintf("%q is not a known unit", name)
	} else {
		err.Detail = fmt.Sprintf("%q is not a %s unit", name, q)
	}
	return err
}

func joinQuantities(qs []types.Quantity) string {
	names := make([]string, len(qs))
	for i, q := range qs {
		names[i] = string(q)
	}
	return strings.Join(names, ", ")
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
