// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/dox4free/pkg/types"
)

// DisplayName returns the unit's human-readable singular name.
func DisplayName(u types.Unit) string {
	if u.Display != "" {
		return u.Display
	}
	return strings.ReplaceAll(u.Name, "_", " ")
}

// PluralName returns the unit's human-readable plural name.
func PluralName(u types.Unit) string {
	if u.Plural != "" {
		return u.Plural
	}
	return DisplayName(u) + "s"
}

// Label joins a formatted magnitude with the singular or plural unit name:
// "1 foot", "3.2808399 feet".
func Label(u types.Unit, formatted string) string {
	name := PluralName(u)
	if formatted == "1" || formatted == "-1" {
		name = DisplayName(u)
	}
	return formatted + " " + name
}

// Symbol joins a formatted magnitude with the unit symbol, falling back to
// Label when the unit has none.
func Symbol(u types.Unit, formatted string) string {
	if u.Symbol == "" {
		return Label(u, formatted)
	}
	return formatted + " " + u.Symbol
}

// Title turns an identifier such as "nautical_mile" into "Nautical Mile".
func Title(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
