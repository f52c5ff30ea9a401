package rustgen

import (
	"math/big"

	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

// emitItem writes the type definition itself: pass-through attributes, the
// derive set, the layout attribute, and either the variant list or the
// transparent wrapper.
func emitItem(w *emit.Writer, sp *spec.Specification) {
	w.BlankLine()

	for _, attr := range sp.Attributes {
		w.WriteLine(attr)
	}

	w.WriteLine("#[derive(Debug, Hash, Clone, Copy, PartialEq, Eq, PartialOrd, Ord)]")

	if sp.Representation == spec.RepresentationWrapped {
		w.WriteLine("#[repr(transparent)]")
		w.WriteLinef("%sstruct %s(%s);", vis(sp), sp.Identifier, sp.Primitive.Name())

		return
	}

	// Ascending emission with an explicit discriminant on the first variant:
	// every following discriminant is the successor of the previous one, so
	// the layout stays bit-identical to the primitive.
	w.WriteLinef("#[repr(%s)]", sp.Primitive.Name())
	w.Block(vis(sp)+"enum "+sp.Identifier+" {", "}", func() {
		first := true
		sp.Bounds.Each(func(v *big.Int) {
			if first {
				w.WriteLinef("%s = %s,", variantName(v), lit(sp, v))
				first = false
			} else {
				w.WriteLinef("%s,", variantName(v))
			}
		})
	})
}
