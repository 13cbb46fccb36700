// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"

	"github.com/pdiddy/dox4free/pkg/types"
)

// Sentinel errors for broad classification. Every error returned by the
// engine wraps exactly one of them.
var (
	ErrInvalidInput      = errors.New("please enter a valid number")
	ErrUnknownUnit       = errors.New("invalid unit selection")
	ErrUnknownQuantity   = errors.New("unknown quantity")
	ErrAmbiguousUnit     = errors.New("ambiguous unit selection")
	ErrBelowAbsoluteZero = errors.New("temperature cannot be below absolute zero")
	ErrNegativeValue     = errors.New("value cannot be negative")
	ErrOutOfRange        = errors.New("result out of range")
)

// Kind is a coarse-grained error category, stable for programmatic callers
// and JSON output.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindUnknownUnit       Kind = "unknown_unit"
	KindUnknownQuantity   Kind = "unknown_quantity"
	KindAmbiguousUnit     Kind = "ambiguous_unit"
	KindBelowAbsoluteZero Kind = "below_absolute_zero"
	KindNegativeValue     Kind = "negative_value"
	KindOutOfRange        Kind = "out_of_range"
)

var kindErrors = map[Kind]error{
	KindInvalidInput:      ErrInvalidInput,
	KindUnknownUnit:       ErrUnknownUnit,
	KindUnknownQuantity:   ErrUnknownQuantity,
	KindAmbiguousUnit:     ErrAmbiguousUnit,
	KindBelowAbsoluteZero: ErrBelowAbsoluteZero,
	KindNegativeValue:     ErrNegativeValue,
	KindOutOfRange:        ErrOutOfRange,
}

// Error describes a failed conversion.
type Error struct {
	Kind     Kind
	Quantity types.Quantity
	Input    string

	// Unit is the offending unit identifier, if any.
	Unit string

	// Threshold is the violated floor rendered in the input unit
	// (e.g. "-273.15 °C").
	Threshold string

	// Detail adds a human-readable explanation to the sentinel message.
	Detail string

	Err error
}

func newError(kind Kind, q types.Quantity, input string) *Error {
	return &Error{Kind: kind, Quantity: q, Input: input, Err: kindErrors[kind]}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Err.Error()
	if e.Threshold != "" {
		msg += " (" + e.Threshold + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a conversion Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// KindOf returns the kind of a conversion error, or "" for other errors.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
