package rustgen

import (
	"math/big"

	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

// The two representations differ in layout and in how instances are built,
// reinterpreted and read back. Those differences are confined to this file;
// every other emitter goes through these operations and stays
// representation-agnostic.

// ctorExpr is the constructor from a value already known to be in range:
// a direct wrap for the wrapped layout, the matching named constant for the
// enumerated one.
func ctorExpr(sp *spec.Specification, v *big.Int) string {
	if sp.Representation == spec.RepresentationWrapped {
		return "Self(" + lit(sp, v) + ")"
	}

	return "Self::" + variantName(v)
}

// rawWrapBody is the unchecked bit-pattern-to-type conversion. The enumerated
// layout relies on its discriminants being emitted explicitly in ascending
// order, which keeps it bit-identical to the primitive and makes the
// transmute sound whenever the value is in range.
func rawWrapBody(sp *spec.Specification) (body string, isConst bool) {
	repr := sp.Primitive.Name()

	if sp.Representation == spec.RepresentationWrapped {
		return "Self(n)", true
	}

	return "core::mem::transmute::<" + repr + ", Self>(n)", false
}

// rawExtractBody is the matching inverse: read the value back out without a
// validated path.
func rawExtractBody(sp *spec.Specification) string {
	if sp.Representation == spec.RepresentationWrapped {
		return "self.0"
	}

	return "self as _"
}

func getRefBody(sp *spec.Specification) (body string, isConst bool) {
	repr := sp.Primitive.Name()

	if sp.Representation == spec.RepresentationWrapped {
		return "&self.0", true
	}

	return "unsafe { &*(self as *const Self as *const " + repr + ") }", false
}

// writeNewBody emits the body of the checked constructor.
func writeNewBody(w *emit.Writer, sp *spec.Specification) {
	if sp.Representation == spec.RepresentationWrapped {
		w.Block("if Self::in_range(n) {", "} else {", func() {
			w.WriteLine("Some(Self(n))")
		})
		w.Indent()
		w.WriteLine("None")
		w.Dedent()
		w.WriteLine("}")

		return
	}

	w.Block("match n {", "}", func() {
		sp.Bounds.Each(func(v *big.Int) {
			w.WriteLinef("%s => Some(Self::%s),", lit(sp, v), variantName(v))
		})
		w.WriteLine("_ => None,")
	})
}

// writeNewSaturatingBody emits the body of the clamping constructor.
func writeNewSaturatingBody(w *emit.Writer, sp *spec.Specification) {
	repr := sp.Primitive.Name()

	if sp.Representation == spec.RepresentationWrapped {
		w.Block("if n < Self::MIN_VALUE {", "} else if n > Self::MAX_VALUE {", func() {
			w.WriteLine("Self::MIN")
		})
		w.Indent()
		w.WriteLine("Self::MAX")
		w.Dedent()
		w.WriteLine("} else {")
		w.Indent()
		w.WriteLine("Self(n)")
		w.Dedent()
		w.WriteLine("}")

		return
	}

	w.Block("match n {", "}", func() {
		w.WriteLinef("%s::MIN..=Self::MIN_VALUE => Self::MIN,", repr)
		w.WriteLinef("Self::MAX_VALUE..=%s::MAX => Self::MAX,", repr)
		sp.Bounds.Each(func(v *big.Int) {
			w.WriteLinef("%s => Self::%s,", lit(sp, v), variantName(v))
		})
	})
}
