// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/pdiddy/dox4free/pkg/types"
)

// roundTripSamples are the magnitudes each rule is checked against.
var roundTripSamples = []float64{-1e6, -273.15, -1, 0, 1e-9, 0.5, 1, 42, 1234.5678, 1e9}

const (
	roundTripAbsTol = 1e-9
	roundTripRelTol = 1e-12
)

// Validate checks the table invariants: a known quantity, unit names that
// are non-empty, a base unit present in the table whose rule is the
// identity and which is the only identity unit, strictly positive scales,
// and rules whose FromBase inverts ToBase.
func Validate(t *Table) error {
	if !t.quantity.Valid() {
		return fmt.Errorf("unknown quantity %q", t.quantity)
	}
	if len(t.units) == 0 {
		return fmt.Errorf("%s: table has no units", t.quantity)
	}

	var errs []error
	base, ok := t.index[t.base]
	if !ok {
		errs = append(errs, fmt.Errorf("%s: base unit %q not in table", t.quantity, t.base))
	}

	for i, u := range t.units {
		if u.Name == "" {
			errs = append(errs, fmt.Errorf("%s: unit %d has no name", t.quantity, i))
			continue
		}
		if u.Rule == nil {
			errs = append(errs, fmt.Errorf("%s: unit %q has no conversion rule", t.quantity, u.Name))
			continue
		}
		if err := checkScale(u.Rule); err != nil {
			errs = append(errs, fmt.Errorf("%s: unit %q: %w", t.quantity, u.Name, err))
			continue
		}
		if ok && i == base && !u.Rule.IsIdentity() {
			errs = append(errs, fmt.Errorf("%s: base unit %q must convert with the identity rule", t.quantity, u.Name))
		}
		if ok && i != base && u.Rule.IsIdentity() {
			errs = append(errs, fmt.Errorf("%s: unit %q duplicates the base unit %q", t.quantity, u.Name, t.base))
		}
		if err := checkRoundTrip(u.Rule); err != nil {
			errs = append(errs, fmt.Errorf("%s: unit %q: %w", t.quantity, u.Name, err))
		}
	}
	return errors.Join(errs...)
}

func checkScale(r types.Rule) error {
	switch rule := r.(type) {
	case types.Linear:
		if rule.Factor <= 0 || rule.Divisor < 0 {
			return fmt.Errorf("scale factor must be positive (factor %g, divisor %g)", rule.Factor, rule.Divisor)
		}
	case types.Affine:
		if rule.Den == 0 || rule.Num == 0 || rule.Scale() <= 0 {
			return fmt.Errorf("scale must be positive (num %g, den %g)", rule.Num, rule.Den)
		}
	}
	return nil
}

func checkRoundTrip(r types.Rule) error {
	for _, x := range roundTripSamples {
		got := r.FromBase(r.ToBase(x))
		if !scalar.EqualWithinAbsOrRel(x, got, roundTripAbsTol, roundTripRelTol) {
			return fmt.Errorf("round trip of %g returned %g", x, got)
		}
	}
	return nil
}
