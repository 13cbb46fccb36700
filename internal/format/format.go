// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders converted magnitudes and unit labels for display.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/dox4free/pkg/types"
)

// fixedLimit is the magnitude from which fixed-decimal rules fall back to
// the shortest exponential form instead of printing every integer digit.
const fixedLimit = 1e21

// Number renders v according to rule. Zero is always "0". Outside the
// rule's thresholds (when Scientific is set) the value is written in
// exponential notation; whole numbers are written without a fraction;
// anything else is rounded to the rule's precision with trailing zeros
// removed.
func Number(v float64, rule types.FormatRule) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if rule.Scientific && (abs < rule.SmallThreshold || abs > rule.LargeThreshold) {
		return Exponential(v, rule.ExponentDigits)
	}
	if rule.FixedDecimals > 0 && abs >= fixedLimit {
		return Exponential(v, -1)
	}

	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if rule.FixedDecimals > 0 {
		return trimZeros(strconv.FormatFloat(v, 'f', rule.FixedDecimals, 64))
	}
	return trimZeros(strconv.FormatFloat(v, 'f', decimalsFor(abs, rule.SignificantDigits), 64))
}

// Exponential writes v with digits fraction digits in the mantissa and an
// exponent without zero padding, e.g. 1.000000e+9. A negative digits
// count uses the fewest digits that represent v exactly.
func Exponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// decimalsFor returns the number of fraction digits that keeps sig
// significant digits for a magnitude of abs.
func decimalsFor(abs float64, sig int) int {
	if sig < 1 {
		sig = 1
	}
	d := sig - 1 - int(math.Floor(math.Log10(abs)))
	if d < 0 {
		return 0
	}
	return d
}

// trimZeros removes trailing fractional zeros and a dangling decimal point.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
