package rustgen

import (
	"math/big"

	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

// emitCmpTraits emits equality and ordering against the primitive in both
// directions. Everything delegates to get().
func emitCmpTraits(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()

	w.BlankLine()
	w.Block("impl core::cmp::PartialEq<"+repr+"> for "+ident+" {", "}", func() {
		w.Block("fn eq(&self, other: &"+repr+") -> bool {", "}", func() {
			w.WriteLine("self.get() == *other")
		})
	})

	w.BlankLine()
	w.Block("impl core::cmp::PartialEq<"+ident+"> for "+repr+" {", "}", func() {
		w.Block("fn eq(&self, other: &"+ident+") -> bool {", "}", func() {
			w.WriteLine("*self == other.get()")
		})
	})

	w.BlankLine()
	w.Block("impl core::cmp::PartialOrd<"+repr+"> for "+ident+" {", "}", func() {
		w.Block("fn partial_cmp(&self, other: &"+repr+") -> Option<core::cmp::Ordering> {", "}", func() {
			w.WriteLine("self.get().partial_cmp(other)")
		})
	})

	w.BlankLine()
	w.Block("impl core::cmp::PartialOrd<"+ident+"> for "+repr+" {", "}", func() {
		w.Block("fn partial_cmp(&self, other: &"+ident+") -> Option<core::cmp::Ordering> {", "}", func() {
			w.WriteLine("self.partial_cmp(&other.get())")
		})
	})
}

// emitIterTraits emits the aggregate folds. Each fold is gated on its
// identity element being inside the range, since the seed must itself be a
// valid instance.
func emitIterTraits(w *emit.Writer, sp *spec.Specification) {
	if sp.Bounds.Contains(big.NewInt(0)) {
		emitFold(w, sp, "Sum", "sum", "0", "core::ops::Add::add")
	}

	if sp.Bounds.Contains(big.NewInt(1)) {
		emitFold(w, sp, "Product", "product", "1", "core::ops::Mul::mul")
	}
}

func emitFold(w *emit.Writer, sp *spec.Specification, trait, method, seed, foldOp string) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()

	w.BlankLine()
	w.Block("impl core::iter::"+trait+" for "+ident+" {", "}", func() {
		w.Block("fn "+method+"<I: Iterator<Item = Self>>(iter: I) -> Self {", "}", func() {
			// SAFETY of the seed: the identity element was checked to be in
			// range before this impl was emitted at all.
			w.WriteLinef("iter.fold(unsafe { Self::new_unchecked(%s) }, %s)", seed, foldOp)
		})
	})

	w.BlankLine()
	w.Block("impl<'a> core::iter::"+trait+"<&'a Self> for "+ident+" {", "}", func() {
		w.Block("fn "+method+"<I: Iterator<Item = &'a Self>>(iter: I) -> Self {", "}", func() {
			w.WriteLinef("iter.copied().%s()", method)
		})
	})

	w.BlankLine()
	w.Block("impl core::iter::"+trait+"<"+ident+"> for "+repr+" {", "}", func() {
		w.Block("fn "+method+"<I: Iterator<Item = "+ident+">>(iter: I) -> Self {", "}", func() {
			w.WriteLinef("iter.map(%s::get).%s()", ident, method)
		})
	})

	w.BlankLine()
	w.Block("impl<'a> core::iter::"+trait+"<&'a "+ident+"> for "+repr+" {", "}", func() {
		w.Block("fn "+method+"<I: Iterator<Item = &'a "+ident+">>(iter: I) -> Self {", "}", func() {
			w.WriteLinef("iter.copied().%s()", method)
		})
	})
}

var fmtTraits = []string{
	"Binary", "Display", "LowerExp", "LowerHex", "Octal", "UpperExp", "UpperHex",
}

// emitFmtTraits delegates every standard numeric rendering to the primitive.
func emitFmtTraits(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier

	for _, trait := range fmtTraits {
		w.BlankLine()
		w.Block("impl core::fmt::"+trait+" for "+ident+" {", "}", func() {
			w.Block("fn fmt(&self, f: &mut core::fmt::Formatter) -> core::fmt::Result {", "}", func() {
				w.WriteLinef("core::fmt::%s::fmt(&self.get(), f)", trait)
			})
		})
	}
}

// emitToPrimitiveTraits emits the lossless widening conversions, one per
// primitive strictly wider than the underlying one.
func emitToPrimitiveTraits(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier

	for _, wider := range sp.Primitive.Wider() {
		w.BlankLine()
		w.Block("impl From<"+ident+"> for "+wider.Name()+" {", "}", func() {
			w.Block("fn from(bounded: "+ident+") -> Self {", "}", func() {
				w.WriteLine("Self::from(bounded.get())")
			})
		})
	}
}
