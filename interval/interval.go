// Package interval provides the generation-time range math for bounded
// integer declarations. All values are arbitrary-precision so that ranges
// spanning the full width of any supported primitive stay representable,
// independent of the width being emitted.
package interval

import (
	"errors"
	"fmt"
	"math/big"

	"bounded-integer-generator/primitive"
)

// ErrNotRepresentable reports a value outside a primitive's domain.
var ErrNotRepresentable = errors.New("value is not representable in the primitive")

// Range is an inclusive [Min, Max] pair.
type Range struct {
	Min, Max *big.Int
}

// New builds a range from two arbitrary-precision bounds.
// The bounds are not validated here; see spec.Specification.Validate.
func New(min, max *big.Int) Range {
	return Range{Min: min, Max: max}
}

// NewInt64 builds a range from native integers, for declarations whose
// bounds fit 64 bits.
func NewInt64(min, max int64) Range {
	return New(big.NewInt(min), big.NewInt(max))
}

// Successor returns v + 1 as a fresh value.
func Successor(v *big.Int) *big.Int {
	return new(big.Int).Add(v, big.NewInt(1))
}

// Contains is the inclusive membership test.
func (r Range) Contains(v *big.Int) bool {
	return r.Min.Cmp(v) <= 0 && v.Cmp(r.Max) <= 0
}

// IsInverted reports whether Min exceeds Max.
func (r Range) IsInverted() bool {
	return r.Min.Cmp(r.Max) > 0
}

// Each walks the range in ascending order, starting at Min. Termination is
// decided by comparing against Max before stepping, never by wraparound
// equality, so exhaustive ranges of a primitive's full domain terminate too.
func (r Range) Each(fn func(v *big.Int)) {
	for v := new(big.Int).Set(r.Min); v.Cmp(r.Max) <= 0; v = Successor(v) {
		fn(v)
	}
}

// Render maps v to a suffixed literal in the primitive's native width,
// e.g. "-8i8". Failing the domain check is a generation-time error.
func Render(kind primitive.KindEnum, v *big.Int) (string, error) {
	lit, ok := TryRender(kind, v)
	if !ok {
		return "", fmt.Errorf("%w: %s does not fit %s", ErrNotRepresentable, v, kind.Name())
	}

	return lit, nil
}

// TryRender is Render with an absence marker instead of an error, for probing
// one-past-the-bound values that may fall off the primitive's own domain.
func TryRender(kind primitive.KindEnum, v *big.Int) (string, bool) {
	if !kind.Representable(v) {
		return "", false
	}

	return v.String() + kind.Name(), true
}
