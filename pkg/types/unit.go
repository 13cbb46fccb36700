// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Rule converts magnitudes between a unit and its quantity's base unit.
// Implementations must be exact inverses of each other up to floating-point
// rounding.
type Rule interface {
	// ToBase converts a magnitude expressed in the unit into the base unit.
	ToBase(x float64) float64

	// FromBase converts a magnitude expressed in the base unit into the unit.
	FromBase(x float64) float64

	// IsIdentity reports whether the rule leaves magnitudes unchanged.
	IsIdentity() bool
}

// Linear is a pure scaling rule: ToBase(x) = x * Factor / Divisor.
// A zero Divisor is treated as 1. Sub-base units are written with a
// Divisor (gram = Linear{Factor: 1, Divisor: 1000}) so that converting
// back out of the base multiplies by an exact integer.
type Linear struct {
	Factor  float64 `json:"factor" yaml:"factor" msgpack:"factor"`
	Divisor float64 `json:"divisor,omitempty" yaml:"divisor,omitempty" msgpack:"divisor,omitempty"`
}

func (l Linear) divisor() float64 {
	if l.Divisor == 0 {
		return 1
	}
	return l.Divisor
}

func (l Linear) ToBase(x float64) float64 {
	return x * l.Factor / l.divisor()
}

func (l Linear) FromBase(x float64) float64 {
	return x * l.divisor() / l.Factor
}

func (l Linear) IsIdentity() bool {
	return l.Factor == l.divisor()
}

// Scale returns the effective multiplier into the base unit.
func (l Linear) Scale() float64 {
	return l.Factor / l.divisor()
}

// Affine is a scale-and-shift rule used by temperature scales whose zero
// point differs from the base unit's:
//
//	ToBase(x)   = (x - Offset) * Num / Den + BaseOffset
//	FromBase(k) = (k - BaseOffset) * Den / Num + Offset
//
// Fahrenheit to Kelvin is Affine{Offset: 32, Num: 5, Den: 9, BaseOffset: 273.15}.
type Affine struct {
	Offset     float64 `json:"offset" yaml:"offset" msgpack:"offset"`
	Num        float64 `json:"num" yaml:"num" msgpack:"num"`
	Den        float64 `json:"den" yaml:"den" msgpack:"den"`
	BaseOffset float64 `json:"base_offset" yaml:"base_offset" msgpack:"base_offset"`
}

func (a Affine) ToBase(x float64) float64 {
	return (x-a.Offset)*a.Num/a.Den + a.BaseOffset
}

func (a Affine) FromBase(k float64) float64 {
	return (k-a.BaseOffset)*a.Den/a.Num + a.Offset
}

func (a Affine) IsIdentity() bool {
	return a.Offset == 0 && a.BaseOffset == 0 && a.Num == a.Den
}

// Scale returns the slope of the rule (base units per unit).
func (a Affine) Scale() float64 {
	return a.Num / a.Den
}

// Unit is a named scale within a quantity.
type Unit struct {
	// Name is the identifier used for lookups (e.g. "nautical_mile").
	Name string `json:"name" yaml:"name"`

	// Display is the human-readable singular name (e.g. "nautical mile").
	// Empty means the name with underscores replaced by spaces.
	Display string `json:"display,omitempty" yaml:"display,omitempty"`

	// Plural is the irregular plural of Display (e.g. "feet"). Empty means
	// Display + "s".
	Plural string `json:"plural,omitempty" yaml:"plural,omitempty"`

	// Symbol is the abbreviation shown next to values (e.g. "ft").
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`

	// Rule converts to and from the quantity's base unit.
	Rule Rule `json:"-" yaml:"-"`
}

// ToBase converts x from this unit into the base unit.
func (u Unit) ToBase(x float64) float64 { return u.Rule.ToBase(x) }

// FromBase converts x from the base unit into this unit.
func (u Unit) FromBase(x float64) float64 { return u.Rule.FromBase(x) }
