// Package spec holds the in-memory model of a parsed bounded-integer
// declaration and its generation-time validation. A Specification is built
// once per generation request and read-only afterwards; every emitted
// fragment is a pure function of it.
package spec

import (
	"errors"
	"fmt"
	"math/big"

	"bounded-integer-generator/interval"
	"bounded-integer-generator/primitive"
)

var (
	ErrEmptyIdentifier       = errors.New("declaration has no identifier")
	ErrUnknownPrimitive      = errors.New("unknown primitive kind")
	ErrUnknownRepresentation = errors.New("unknown representation kind")
	ErrInvertedBounds        = errors.New("range minimum exceeds range maximum")
	ErrBoundOutOfDomain      = errors.New("bound is outside the primitive's domain")
	ErrBadLiteral            = errors.New("unparsable integer literal")
)

type RepresentationEnum int

const (
	_ RepresentationEnum = iota // skip zero value, use it as a default (invalid) value

	// RepresentationEnumerated lays the type out as one named constant per
	// integer in the range, memory-identical to the primitive.
	RepresentationEnumerated
	// RepresentationWrapped lays the type out as an opaque single-field
	// container holding the primitive directly.
	RepresentationWrapped

	RepresentationTotal = int(iota)
)

func (r RepresentationEnum) String() string {
	switch r {
	case RepresentationEnumerated:
		return "enum"
	case RepresentationWrapped:
		return "struct"
	default:
		return "RepresentationEnum(" + fmt.Sprint(int(r)) + ")"
	}
}

// Specification is the parsed bounded-integer declaration the generator
// consumes. The textual front-end that produces it is external; see the decl
// file loader for the YAML form used by the CLI.
type Specification struct {
	// Identifier is the name of the type to produce.
	Identifier string
	// Visibility is a pass-through visibility annotation, e.g. "pub".
	Visibility string
	// Attributes are pass-through attribute lines placed above the type.
	Attributes []string
	// Primitive is the underlying fixed-width integer kind.
	Primitive primitive.KindEnum
	// Bounds is the inclusive range the type may hold.
	Bounds interval.Range
	// Representation selects the enumerated or wrapped layout. It is supplied
	// by the declaration, never inferred from the range size.
	Representation RepresentationEnum
	// SerdePath is the path the emitted code uses to reach the serialization
	// capability. Empty means the default "serde".
	SerdePath string
}

// Serde returns the serialization capability path.
func (s *Specification) Serde() string {
	if s.SerdePath == "" {
		return "serde"
	}

	return s.SerdePath
}

// Validate checks the specification invariants. A failure here is fatal to
// the generation call; nothing is emitted for an invalid declaration.
func (s *Specification) Validate() error {
	if s.Identifier == "" {
		return ErrEmptyIdentifier
	}

	if !s.Primitive.IsValid() {
		return fmt.Errorf("%w: declaration %s", ErrUnknownPrimitive, s.Identifier)
	}

	if s.Representation <= 0 || int(s.Representation) >= RepresentationTotal {
		return fmt.Errorf("%w: declaration %s", ErrUnknownRepresentation, s.Identifier)
	}

	if s.Bounds.Min == nil || s.Bounds.Max == nil {
		return fmt.Errorf("%w: declaration %s is missing a bound", ErrBadLiteral, s.Identifier)
	}

	if s.Bounds.IsInverted() {
		return fmt.Errorf("%w: %s..%s on %s",
			ErrInvertedBounds, s.Bounds.Min, s.Bounds.Max, s.Identifier)
	}

	for _, bound := range []*big.Int{s.Bounds.Min, s.Bounds.Max} {
		if !s.Primitive.Representable(bound) {
			return fmt.Errorf("%w: %s does not fit %s on %s",
				ErrBoundOutOfDomain, bound, s.Primitive.Name(), s.Identifier)
		}
	}

	return nil
}
