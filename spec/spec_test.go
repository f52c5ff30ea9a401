package spec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bounded-integer-generator/interval"
	"bounded-integer-generator/primitive"
	"bounded-integer-generator/spec"
)

func ExampleRepresentationEnum_String() {
	fmt.Println(spec.RepresentationEnumerated)
	fmt.Println(spec.RepresentationWrapped)
	fmt.Println(spec.RepresentationEnum(0))
	// Output:
	// enum
	// struct
	// RepresentationEnum(0)
}

func valid() spec.Specification {
	return spec.Specification{
		Identifier:     "Nibble",
		Primitive:      primitive.KindI8,
		Bounds:         interval.NewInt64(-8, 7),
		Representation: spec.RepresentationEnumerated,
	}
}

func TestSpecification_Validate(t *testing.T) {
	sp := valid()
	assert.NoError(t, sp.Validate())

	tests := []struct {
		name    string
		mutate  func(*spec.Specification)
		wantErr error
	}{
		{
			name:    "empty identifier",
			mutate:  func(s *spec.Specification) { s.Identifier = "" },
			wantErr: spec.ErrEmptyIdentifier,
		},
		{
			name:    "unknown primitive",
			mutate:  func(s *spec.Specification) { s.Primitive = 0 },
			wantErr: spec.ErrUnknownPrimitive,
		},
		{
			name:    "unknown representation",
			mutate:  func(s *spec.Specification) { s.Representation = 0 },
			wantErr: spec.ErrUnknownRepresentation,
		},
		{
			name:    "missing bound",
			mutate:  func(s *spec.Specification) { s.Bounds.Max = nil },
			wantErr: spec.ErrBadLiteral,
		},
		{
			name:    "inverted bounds",
			mutate:  func(s *spec.Specification) { s.Bounds = interval.NewInt64(7, -8) },
			wantErr: spec.ErrInvertedBounds,
		},
		{
			name:    "min below domain",
			mutate:  func(s *spec.Specification) { s.Bounds = interval.NewInt64(-129, 7) },
			wantErr: spec.ErrBoundOutOfDomain,
		},
		{
			name:    "max above domain",
			mutate:  func(s *spec.Specification) { s.Bounds = interval.NewInt64(0, 128) },
			wantErr: spec.ErrBoundOutOfDomain,
		},
		{
			name: "negative bound on unsigned primitive",
			mutate: func(s *spec.Specification) {
				s.Primitive = primitive.KindU8
				s.Bounds = interval.NewInt64(-1, 7)
			},
			wantErr: spec.ErrBoundOutOfDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := valid()
			tt.mutate(&sp)

			assert.ErrorIs(t, sp.Validate(), tt.wantErr)
		})
	}
}

func TestSpecification_Serde(t *testing.T) {
	sp := valid()
	assert.Equal(t, "serde", sp.Serde())

	sp.SerdePath = "my_reexports::serde"
	assert.Equal(t, "my_reexports::serde", sp.Serde())
}
