// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue parses raw user input as a finite decimal number. Surrounding
// whitespace is ignored. Empty input, thousands separators, hexadecimal
// literals, underscores, NaN, infinities and out-of-range values are
// rejected with ErrInvalidInput.
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xX_,") {
		return 0, ErrInvalidInput
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidInput
	}
	return v, nil
}
