// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Request is a single conversion as a caller supplies it: the raw input
// text and the selected unit identifiers.
type Request struct {
	Quantity Quantity `json:"quantity" yaml:"quantity" msgpack:"quantity"`
	Value    string   `json:"value" yaml:"value" msgpack:"value"`
	From     string   `json:"from" yaml:"from" msgpack:"from"`
	To       string   `json:"to" yaml:"to" msgpack:"to"`
}

// Swapped returns the request with From and To exchanged. No validation
// is performed.
func (r Request) Swapped() Request {
	r.From, r.To = r.To, r.From
	return r
}

// Conversion is the outcome of a successful conversion.
type Conversion struct {
	Request `yaml:",inline"`

	// Input is the parsed input magnitude.
	Input float64 `json:"input" yaml:"input" msgpack:"input"`

	// Value is the converted magnitude before any display rounding.
	Value float64 `json:"result" yaml:"result" msgpack:"result"`

	// Formatted is Value rendered with the quantity's display rule.
	Formatted string `json:"formatted" yaml:"formatted" msgpack:"formatted"`
}

// FormatRule controls how converted magnitudes are rendered.
type FormatRule struct {
	// Scientific enables exponential notation outside the thresholds.
	Scientific bool `json:"scientific" yaml:"scientific"`

	// SmallThreshold: non-zero magnitudes below it use exponential notation.
	SmallThreshold float64 `json:"small_threshold" yaml:"small_threshold"`

	// LargeThreshold: magnitudes above it use exponential notation.
	LargeThreshold float64 `json:"large_threshold" yaml:"large_threshold"`

	// ExponentDigits is the number of mantissa fraction digits in
	// exponential notation.
	ExponentDigits int `json:"exponent_digits" yaml:"exponent_digits"`

	// SignificantDigits bounds the precision of fractional values.
	SignificantDigits int `json:"significant_digits" yaml:"significant_digits"`

	// FixedDecimals, when positive, replaces SignificantDigits with a fixed
	// number of decimal places. Magnitudes of 1e21 and above are written
	// in the shortest exponential form.
	FixedDecimals int `json:"fixed_decimals,omitempty" yaml:"fixed_decimals,omitempty"`
}
