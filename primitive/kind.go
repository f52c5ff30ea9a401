// Package primitive models the fixed-width integer kinds a bounded integer
// can be represented with, from 8 up to 128 bits. Domain edges are exposed as
// arbitrary-precision integers so that generation-time math never depends on
// the width of the type being generated.
package primitive

import (
	"math/big"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Name returns the kind's spelling in emitted code, e.g. "i8".
func (k KindEnum) Name() string {
	switch k {
	default:
		return ""
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindI128:
		return "i128"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindU128:
		return "u128"
	}
}

// FromName resolves a kind from its emitted-code spelling.
// Returns the zero (invalid) kind for anything unrecognized.
func FromName(name string) KindEnum {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.Name() == name {
			return k
		}
	}

	return 0
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindU8, KindU16, KindU32, KindU64, KindU128:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only valid kinds have a meaningful bit width, but requested for: " + k.String())
	case KindI8, KindU8:
		return 8
	case KindI16, KindU16:
		return 16
	case KindI32, KindU32:
		return 32
	case KindI64, KindU64:
		return 64
	case KindI128, KindU128:
		return 128
	}
}

// Min returns the smallest representable value of the kind.
func (k KindEnum) Min() *big.Int {
	if k.IsSigned() {
		min := new(big.Int).Lsh(big.NewInt(1), uint(k.Bits()-1))
		return min.Neg(min)
	}

	return big.NewInt(0)
}

// Max returns the largest representable value of the kind.
func (k KindEnum) Max() *big.Int {
	bits := uint(k.Bits())
	if k.IsSigned() {
		bits--
	}

	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return max.Sub(max, big.NewInt(1))
}

// Representable reports whether v fits into the kind's domain.
func (k KindEnum) Representable(v *big.Int) bool {
	return k.Min().Cmp(v) <= 0 && v.Cmp(k.Max()) <= 0
}

// Wider returns every kind that can losslessly hold all values of k and is
// strictly wider, in a fixed emission order. Signed kinds widen only to
// signed kinds; unsigned kinds widen to wider signed and unsigned kinds.
func (k KindEnum) Wider() []KindEnum {
	var res []KindEnum

	for to := KindEnum(1); int(to) < KindTotal; to++ {
		if to.Bits() <= k.Bits() {
			continue
		}

		if k.IsSigned() && !to.IsSigned() {
			continue
		}

		res = append(res, to)
	}

	return res
}
