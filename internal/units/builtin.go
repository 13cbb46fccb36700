// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"sync"

	"github.com/pdiddy/dox4free/pkg/types"
)

// times returns a rule for a unit worth f base units.
func times(f float64) types.Linear { return types.Linear{Factor: f} }

// per returns a rule for a unit worth 1/d base units.
func per(d float64) types.Linear { return types.Linear{Factor: 1, Divisor: d} }

var identity = types.Linear{Factor: 1}

var temperatureFormat = types.FormatRule{FixedDecimals: 2}

var absoluteZeroKelvin = 0.0

func builtinSpecs() []TableSpec {
	return []TableSpec{
		{
			Quantity: types.Length,
			Base:     "meter",
			Units: []types.Unit{
				{Name: "millimeter", Symbol: "mm", Rule: per(1000)},
				{Name: "centimeter", Symbol: "cm", Rule: per(100)},
				{Name: "meter", Symbol: "m", Rule: identity},
				{Name: "kilometer", Symbol: "km", Rule: times(1000)},
				{Name: "inch", Plural: "inches", Symbol: "in", Rule: times(0.0254)},
				{Name: "foot", Plural: "feet", Symbol: "ft", Rule: times(0.3048)},
				{Name: "yard", Symbol: "yd", Rule: times(0.9144)},
				{Name: "mile", Symbol: "mi", Rule: times(1609.344)},
				{Name: "nautical_mile", Symbol: "nmi", Rule: times(1852)},
			},
		},
		{
			Quantity: types.Mass,
			Base:     "kilogram",
			Units: []types.Unit{
				{Name: "kilogram", Symbol: "kg", Rule: identity},
				{Name: "gram", Symbol: "g", Rule: per(1e3)},
				{Name: "milligram", Symbol: "mg", Rule: per(1e6)},
				{Name: "microgram", Symbol: "μg", Rule: per(1e9)},
				{Name: "metric_ton", Symbol: "t", Rule: times(1000)},
				{Name: "pound", Symbol: "lb", Rule: times(0.45359237)},
				{Name: "ounce", Symbol: "oz", Rule: times(0.0283495231)},
				{Name: "stone", Symbol: "st", Rule: times(6.35029318)},
				{Name: "us_ton", Display: "US ton", Symbol: "ton (US)", Rule: times(907.18474)},
				{Name: "imperial_ton", Symbol: "ton (UK)", Rule: times(1016.0469088)},
				{Name: "carat", Symbol: "ct", Rule: times(0.0002)},
				{Name: "grain", Symbol: "gr", Rule: times(0.00006479891)},
			},
		},
		{
			Quantity: types.Area,
			Base:     "square_meter",
			Units: []types.Unit{
				{Name: "square_millimeter", Symbol: "mm²", Rule: per(1e6)},
				{Name: "square_centimeter", Symbol: "cm²", Rule: per(1e4)},
				{Name: "square_meter", Symbol: "m²", Rule: identity},
				{Name: "square_kilometer", Symbol: "km²", Rule: times(1e6)},
				{Name: "square_inch", Plural: "square inches", Symbol: "in²", Rule: times(0.00064516)},
				{Name: "square_foot", Plural: "square feet", Symbol: "ft²", Rule: times(0.09290304)},
				{Name: "square_yard", Symbol: "yd²", Rule: times(0.83612736)},
				{Name: "square_mile", Symbol: "mi²", Rule: times(2589988.11)},
				{Name: "acre", Symbol: "ac", Rule: times(4046.86)},
				{Name: "hectare", Symbol: "ha", Rule: times(10000)},
			},
		},
		{
			Quantity: types.Volume,
			Base:     "cubic_meter",
			Units: []types.Unit{
				{Name: "cubic_meter", Symbol: "m³", Rule: identity},
				{Name: "cubic_kilometer", Symbol: "km³", Rule: times(1e9)},
				{Name: "cubic_centimeter", Symbol: "cm³", Rule: per(1e6)},
				{Name: "cubic_millimeter", Symbol: "mm³", Rule: per(1e9)},
				{Name: "cubic_foot", Plural: "cubic feet", Symbol: "ft³", Rule: times(0.028316846592)},
				{Name: "cubic_inch", Plural: "cubic inches", Symbol: "in³", Rule: times(0.000016387064)},
				{Name: "cubic_yard", Symbol: "yd³", Rule: times(0.764554857984)},
				{Name: "liter", Symbol: "L", Rule: per(1e3)},
				{Name: "milliliter", Symbol: "mL", Rule: per(1e6)},
				{Name: "gallon_us", Display: "US gallon", Symbol: "gal (US)", Rule: times(0.00378541)},
				{Name: "gallon_uk", Display: "imperial gallon", Symbol: "gal (UK)", Rule: times(0.00454609)},
				{Name: "fluid_ounce_us", Display: "US fluid ounce", Symbol: "fl oz (US)", Rule: times(0.0000295735)},
				{Name: "fluid_ounce_uk", Display: "imperial fluid ounce", Symbol: "fl oz (UK)", Rule: times(0.0000284131)},
				{Name: "pint_us", Display: "US pint", Symbol: "pt (US)", Rule: times(0.000473176)},
				{Name: "pint_uk", Display: "imperial pint", Symbol: "pt (UK)", Rule: times(0.000568261)},
			},
		},
		{
			Quantity: types.Time,
			Base:     "second",
			Units: []types.Unit{
				{Name: "second", Symbol: "s", Rule: identity},
				{Name: "minute", Symbol: "min", Rule: times(60)},
				{Name: "hour", Symbol: "h", Rule: times(3600)},
				{Name: "day", Symbol: "d", Rule: times(86400)},
				{Name: "week", Symbol: "wk", Rule: times(604800)},
				// 30-day month and 365-day year.
				{Name: "month", Symbol: "mo", Rule: times(2592000)},
				{Name: "year", Symbol: "yr", Rule: times(31536000)},
				{Name: "millisecond", Symbol: "ms", Rule: per(1e3)},
				{Name: "microsecond", Symbol: "μs", Rule: per(1e6)},
				{Name: "nanosecond", Symbol: "ns", Rule: per(1e9)},
			},
		},
		{
			Quantity: types.Energy,
			Base:     "joule",
			Units: []types.Unit{
				{Name: "joule", Symbol: "J", Rule: identity},
				{Name: "kilojoule", Symbol: "kJ", Rule: times(1000)},
				{Name: "calorie", Symbol: "cal", Rule: times(4.184)},
				{Name: "kilocalorie", Symbol: "kcal", Rule: times(4184)},
				{Name: "watt_hour", Symbol: "Wh", Rule: times(3600)},
				{Name: "kilowatt_hour", Symbol: "kWh", Rule: times(3600000)},
				{Name: "btu", Display: "BTU", Symbol: "BTU", Rule: times(1055.06)},
				{Name: "foot_pound", Display: "foot-pound", Symbol: "ft·lbf", Rule: times(1.35582)},
				{Name: "electronvolt", Symbol: "eV", Rule: times(1.602e-19)},
				{Name: "therm", Symbol: "thm", Rule: times(105500000)},
				{Name: "ton_of_tnt", Display: "ton of TNT", Plural: "tons of TNT", Symbol: "tTNT", Rule: times(4.184e9)},
			},
		},
		{
			Quantity: types.Temperature,
			Base:     "kelvin",
			Units: []types.Unit{
				{Name: "celsius", Display: "degree Celsius", Plural: "degrees Celsius", Symbol: "°C",
					Rule: types.Affine{Num: 1, Den: 1, BaseOffset: 273.15}},
				{Name: "fahrenheit", Display: "degree Fahrenheit", Plural: "degrees Fahrenheit", Symbol: "°F",
					Rule: types.Affine{Offset: 32, Num: 5, Den: 9, BaseOffset: 273.15}},
				{Name: "kelvin", Symbol: "K", Rule: identity},
				{Name: "rankine", Display: "degree Rankine", Plural: "degrees Rankine", Symbol: "°R",
					Rule: types.Affine{Num: 5, Den: 9}},
			},
			Format:       &temperatureFormat,
			AbsoluteZero: &absoluteZeroKelvin,
		},
	}
}

var builtin = sync.OnceValue(func() *Catalog {
	tables := make([]*Table, 0, len(types.Quantities()))
	for _, spec := range builtinSpecs() {
		t, err := NewTable(spec)
		if err != nil {
			panic("units: invalid built-in table: " + err.Error())
		}
		tables = append(tables, t)
	}
	c, err := NewCatalog(tables)
	if err != nil {
		panic("units: invalid built-in catalog: " + err.Error())
	}
	return c
})

// Builtin returns the catalog of built-in unit tables. The catalog is built
// once and shared; it is never mutated.
func Builtin() *Catalog {
	return builtin()
}
