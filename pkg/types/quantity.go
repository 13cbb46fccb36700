// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the dox4free converters:
// quantities, units and their conversion rules, conversion requests and
// results, and the tool configuration.
package types

import (
	"fmt"
	"strings"
)

// Quantity is a physical dimension of measurement. Units are only ever
// converted within a single quantity.
type Quantity string

const (
	Length      Quantity = "length"
	Mass        Quantity = "mass"
	Area        Quantity = "area"
	Volume      Quantity = "volume"
	Time        Quantity = "time"
	Energy      Quantity = "energy"
	Temperature Quantity = "temperature"
)

// quantityAliases maps alternative spellings accepted on the command line.
var quantityAliases = map[string]Quantity{
	"weight": Mass,
	"temp":   Temperature,
}

// Quantities returns every supported quantity in display order.
func Quantities() []Quantity {
	return []Quantity{Length, Mass, Area, Volume, Time, Energy, Temperature}
}

// ParseQuantity resolves a quantity name. Matching ignores case and
// surrounding whitespace, and accepts the aliases "weight" and "temp".
func ParseQuantity(s string) (Quantity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, q := range Quantities() {
		if string(q) == name {
			return q, nil
		}
	}
	if q, ok := quantityAliases[name]; ok {
		return q, nil
	}
	return "", fmt.Errorf("unknown quantity %q", s)
}

// Valid reports whether q is one of the supported quantities.
func (q Quantity) Valid() bool {
	for _, known := range Quantities() {
		if q == known {
			return true
		}
	}
	return false
}
