package rustgen

import (
	"math/big"

	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/interval"
	"bounded-integer-generator/spec"
)

var bigOne = big.NewInt(1)

// emitTests appends a #[cfg(test)] module exercising the generated type
// against its own declared range. The probes one step outside the range only
// exist when that value is representable in the primitive; at a domain edge
// the probe degenerates into asserting the bound equals the primitive's own
// limit.
func emitTests(w *emit.Writer, sp *spec.Specification) {
	w.BlankLine()
	w.WriteLine("#[cfg(test)]")
	w.Block("mod tests {", "}", func() {
		w.WriteLine("use super::*;")

		emitRangeTest(w, sp)
		emitSaturatingTest(w, sp)
		emitArithmeticTest(w, sp)
	})
}

func emitRangeTest(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()
	belowMin := new(big.Int).Sub(sp.Bounds.Min, bigOne)
	aboveMax := new(big.Int).Add(sp.Bounds.Max, bigOne)
	degenerate := sp.Bounds.Min.Cmp(sp.Bounds.Max) == 0

	w.BlankLine()
	w.WriteLine("#[test]")
	w.Block("fn range() {", "}", func() {
		w.WriteLinef("assert_eq!(%s::MIN_VALUE, %s);", ident, lit(sp, sp.Bounds.Min))
		w.WriteLinef("assert_eq!(%s::MAX_VALUE, %s);", ident, lit(sp, sp.Bounds.Max))
		w.WriteLinef("assert_eq!(%s::MIN.get(), %s::MIN_VALUE);", ident, ident)
		w.WriteLinef("assert_eq!(%s::MAX.get(), %s::MAX_VALUE);", ident, ident)
		w.BlankLine()

		if probe, ok := interval.TryRender(sp.Primitive, belowMin); ok {
			w.WriteLinef("assert!(!%s::in_range(%s));", ident, probe)
		} else {
			w.WriteLinef("assert_eq!(%s::MIN_VALUE, %s::MIN);", ident, repr)
		}
		w.WriteLinef("assert!(%s::in_range(%s));", ident, lit(sp, sp.Bounds.Min))
		if !degenerate {
			justInside := new(big.Int).Add(sp.Bounds.Min, bigOne)
			w.WriteLinef("assert!(%s::in_range(%s));", ident, lit(sp, justInside))
		}
		w.BlankLine()

		if probe, ok := interval.TryRender(sp.Primitive, aboveMax); ok {
			w.WriteLinef("assert!(!%s::in_range(%s));", ident, probe)
		} else {
			w.WriteLinef("assert_eq!(%s::MAX_VALUE, %s::MAX);", ident, repr)
		}
		w.WriteLinef("assert!(%s::in_range(%s));", ident, lit(sp, sp.Bounds.Max))
		if !degenerate {
			justInside := new(big.Int).Sub(sp.Bounds.Max, bigOne)
			w.WriteLinef("assert!(%s::in_range(%s));", ident, lit(sp, justInside))
		}
	})
}

func emitSaturatingTest(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()
	belowMin := new(big.Int).Sub(sp.Bounds.Min, bigOne)
	aboveMax := new(big.Int).Add(sp.Bounds.Max, bigOne)
	degenerate := sp.Bounds.Min.Cmp(sp.Bounds.Max) == 0

	w.BlankLine()
	w.WriteLine("#[test]")
	w.Block("fn saturating() {", "}", func() {
		w.WriteLinef("assert_eq!(%s::new_saturating(%s::MIN), %s::MIN);", ident, repr, ident)
		if probe, ok := interval.TryRender(sp.Primitive, belowMin); ok {
			w.WriteLinef("assert_eq!(%s::new_saturating(%s), %s::MIN);", ident, probe, ident)
		}
		w.WriteLinef("assert_eq!(%s::new_saturating(%s), %s::MIN);", ident, lit(sp, sp.Bounds.Min), ident)
		if !degenerate {
			insideMin := lit(sp, new(big.Int).Add(sp.Bounds.Min, bigOne))
			insideMax := lit(sp, new(big.Int).Sub(sp.Bounds.Max, bigOne))
			w.WriteLinef("assert_eq!(%s::new_saturating(%s).get(), %s);", ident, insideMin, insideMin)
			w.WriteLinef("assert_eq!(%s::new_saturating(%s).get(), %s);", ident, insideMax, insideMax)
		}
		w.WriteLinef("assert_eq!(%s::new_saturating(%s), %s::MAX);", ident, lit(sp, sp.Bounds.Max), ident)
		if probe, ok := interval.TryRender(sp.Primitive, aboveMax); ok {
			w.WriteLinef("assert_eq!(%s::new_saturating(%s), %s::MAX);", ident, probe, ident)
		}
		w.WriteLinef("assert_eq!(%s::new_saturating(%s::MAX), %s::MAX);", ident, repr, ident)
	})
}

// emitArithmeticTest emits existence checks for the full operator surface.
// The body is guarded by `if false` so nothing runs; it only has to resolve.
func emitArithmeticTest(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()

	w.BlankLine()
	w.WriteLine("#[test]")
	w.WriteLine("#[allow(unused_must_use)]")
	w.Block("fn arithmetic() {", "}", func() {
		w.Block("if false {", "}", func() {
			for _, symbol := range []string{"+", "-", "*", "/", "%"} {
				w.WriteLinef("let _: %s = %s::MIN %s 0;", ident, ident, symbol)
				w.WriteLinef("let _: %s = %s::MIN %s &0;", ident, ident, symbol)
				w.WriteLinef("let _: %s = &%s::MIN %s 0;", ident, ident, symbol)
				w.WriteLinef("let _: %s = &%s::MIN %s &0;", ident, ident, symbol)
				w.WriteLinef("let _: %s = 0 %s %s::MIN;", repr, symbol, ident)
				w.WriteLinef("let _: %s = 0 %s &%s::MIN;", repr, symbol, ident)
				w.WriteLinef("let _: %s = &0 %s %s::MIN;", repr, symbol, ident)
				w.WriteLinef("let _: %s = &0 %s &%s::MIN;", repr, symbol, ident)
				w.WriteLinef("let _: %s = %s::MIN %s %s::MIN;", ident, ident, symbol, ident)
				w.WriteLinef("let _: %s = %s::MIN %s &%s::MIN;", ident, ident, symbol, ident)
				w.WriteLinef("let _: %s = &%s::MIN %s %s::MIN;", ident, ident, symbol, ident)
				w.WriteLinef("let _: %s = &%s::MIN %s &%s::MIN;", ident, ident, symbol, ident)
				w.WriteLinef("*&mut %s::MIN %s= 0;", ident, symbol)
				w.WriteLinef("*&mut %s::MIN %s= &0;", ident, symbol)
				w.WriteLinef("*&mut %s::MIN %s= %s::MIN;", ident, symbol, ident)
				w.WriteLinef("*&mut %s::MIN %s= &%s::MIN;", ident, symbol, ident)
				w.WriteLinef("*&mut 0 %s= %s::MIN;", symbol, ident)
				w.WriteLinef("*&mut 0 %s= &%s::MIN;", symbol, ident)
				w.BlankLine()
			}

			if sp.Primitive.IsSigned() {
				w.WriteLinef("let _: %s = -%s::MIN;", ident, ident)
				w.WriteLinef("let _: %s = -&%s::MIN;", ident, ident)
				w.WriteLinef("let _: Option<%s> = %s::MIN.checked_neg();", ident, ident)
				w.WriteLinef("let _: %s = %s::MIN.saturating_neg();", ident, ident)
				w.WriteLinef("let _: %s = %s::MIN.abs();", ident, ident)
				w.WriteLinef("let _: Option<%s> = %s::MIN.checked_abs();", ident, ident)
				w.BlankLine()
			}

			for _, method := range []string{
				"pow", "div_euclid", "rem_euclid",
				"saturating_add", "saturating_sub", "saturating_mul", "saturating_pow",
			} {
				w.WriteLinef("let _: %s = %s::MIN.%s(0);", ident, ident, method)
			}
			w.BlankLine()
			for _, method := range []string{
				"add", "sub", "mul", "div", "div_euclid", "rem", "rem_euclid", "pow",
			} {
				w.WriteLinef("let _: Option<%s> = %s::MIN.checked_%s(0);", ident, ident, method)
			}
		})
	})
}
