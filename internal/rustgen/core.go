package rustgen

import (
	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

const safetyDocRange = "/// The value must not be less than `MIN_VALUE` or greater than `MAX_VALUE`."

// emitImpl writes the inherent impl block: bound constants, the constructor
// families, the accessors, and the arithmetic methods.
func emitImpl(w *emit.Writer, sp *spec.Specification) {
	w.BlankLine()
	w.Block("impl "+sp.Identifier+" {", "}", func() {
		emitMinMaxValues(w, sp)
		emitMinMax(w, sp)
		emitUncheckedConstructors(w, sp)
		emitCheckedConstructors(w, sp)
		emitGetters(w, sp)
		emitInherentOperators(w, sp)
		emitCheckedOperators(w, sp)
	})
}

func emitMinMaxValues(w *emit.Writer, sp *spec.Specification) {
	repr := sp.Primitive.Name()
	v := vis(sp)

	w.WriteLinef("/// The smallest value that this bounded integer can contain; %s.", sp.Bounds.Min)
	w.WriteLinef("%sconst MIN_VALUE: %s = %s;", v, repr, lit(sp, sp.Bounds.Min))
	w.BlankLine()
	w.WriteLinef("/// The largest value that this bounded integer can contain; %s.", sp.Bounds.Max)
	w.WriteLinef("%sconst MAX_VALUE: %s = %s;", v, repr, lit(sp, sp.Bounds.Max))
}

func emitMinMax(w *emit.Writer, sp *spec.Specification) {
	v := vis(sp)

	min := "Self(Self::MIN_VALUE)"
	max := "Self(Self::MAX_VALUE)"
	if sp.Representation == spec.RepresentationEnumerated {
		min = ctorExpr(sp, sp.Bounds.Min)
		max = ctorExpr(sp, sp.Bounds.Max)
	}

	w.BlankLine()
	w.WriteLinef("/// The smallest value of the bounded integer; %s.", sp.Bounds.Min)
	w.WriteLinef("%sconst MIN: Self = %s;", v, min)
	w.BlankLine()
	w.WriteLinef("/// The largest value of the bounded integer; %s.", sp.Bounds.Max)
	w.WriteLinef("%sconst MAX: Self = %s;", v, max)
}

func emitUncheckedConstructors(w *emit.Writer, sp *spec.Specification) {
	repr := sp.Primitive.Name()
	v := vis(sp)

	wrapBody, wrapConst := rawWrapBody(sp)
	constKw := ""
	if wrapConst {
		constKw = "const "
	}

	w.BlankLine()
	w.WriteLines(
		"/// Creates a bounded integer without checking the value.",
		"///",
		"/// # Safety",
		"///",
		safetyDocRange,
		"#[must_use]",
	)
	w.Block(v+constKw+"unsafe fn new_unchecked(n: "+repr+") -> Self {", "}", func() {
		w.WriteLine(wrapBody)
	})

	w.BlankLine()
	w.WriteLines(
		"/// Creates a shared reference to a bounded integer from a shared",
		"/// reference to a primitive.",
		"///",
		"/// # Safety",
		"///",
		safetyDocRange,
		"#[must_use]",
	)
	w.Block(v+"unsafe fn new_ref_unchecked(n: &"+repr+") -> &Self {", "}", func() {
		w.WriteLine("debug_assert!(Self::in_range(*n));")
		w.WriteLinef("&*(n as *const %s as *const Self)", repr)
	})

	w.BlankLine()
	w.WriteLines(
		"/// Creates a mutable reference to a bounded integer from a mutable",
		"/// reference to a primitive.",
		"///",
		"/// # Safety",
		"///",
		safetyDocRange,
		"#[must_use]",
	)
	w.Block(v+"unsafe fn new_mut_unchecked(n: &mut "+repr+") -> &mut Self {", "}", func() {
		w.WriteLine("debug_assert!(Self::in_range(*n));")
		w.WriteLinef("&mut *(n as *mut %s as *mut Self)", repr)
	})
}

func emitCheckedConstructors(w *emit.Writer, sp *spec.Specification) {
	repr := sp.Primitive.Name()
	v := vis(sp)

	w.BlankLine()
	w.WriteLines(
		"/// Checks whether the given value is in the range of the bounded integer.",
		"#[must_use]",
	)
	w.Block(v+"const fn in_range(n: "+repr+") -> bool {", "}", func() {
		w.WriteLine("n >= Self::MIN_VALUE && n <= Self::MAX_VALUE")
	})

	w.BlankLine()
	w.WriteLines(
		"/// Creates a bounded integer if the given value is within [`MIN`, `MAX`].",
		"#[must_use]",
	)
	w.Block(v+"const fn new(n: "+repr+") -> Option<Self> {", "}", func() {
		writeNewBody(w, sp)
	})

	w.BlankLine()
	w.WriteLines(
		"/// Creates a reference to a bounded integer from a reference to a",
		"/// primitive if the given value is within [`MIN`, `MAX`].",
		"#[must_use]",
	)
	w.Block(v+"fn new_ref(n: &"+repr+") -> Option<&Self> {", "}", func() {
		w.Block("if Self::in_range(*n) {", "} else {", func() {
			w.WriteLine("// SAFETY: the value was just checked to be in range.")
			w.WriteLine("Some(unsafe { Self::new_ref_unchecked(n) })")
		})
		w.Indent()
		w.WriteLine("None")
		w.Dedent()
		w.WriteLine("}")
	})

	w.BlankLine()
	w.WriteLines(
		"/// Creates a mutable reference to a bounded integer from a mutable",
		"/// reference to a primitive if the given value is within [`MIN`, `MAX`].",
		"#[must_use]",
	)
	w.Block(v+"fn new_mut(n: &mut "+repr+") -> Option<&mut Self> {", "}", func() {
		w.Block("if Self::in_range(*n) {", "} else {", func() {
			w.WriteLine("// SAFETY: the value was just checked to be in range.")
			w.WriteLine("Some(unsafe { Self::new_mut_unchecked(n) })")
		})
		w.Indent()
		w.WriteLine("None")
		w.Dedent()
		w.WriteLine("}")
	})

	w.BlankLine()
	w.WriteLines(
		"/// Creates a bounded integer by clamping the value to [`MIN`] or",
		"/// [`MAX`] if it is too low or too high respectively.",
		"#[must_use]",
	)
	w.Block(v+"const fn new_saturating(n: "+repr+") -> Self {", "}", func() {
		writeNewSaturatingBody(w, sp)
	})
}

func emitGetters(w *emit.Writer, sp *spec.Specification) {
	repr := sp.Primitive.Name()
	v := vis(sp)

	w.BlankLine()
	w.WriteLines(
		"/// Returns the value of the bounded integer as a primitive type.",
		"#[must_use]",
	)
	w.Block(v+"const fn get(self) -> "+repr+" {", "}", func() {
		w.WriteLine(rawExtractBody(sp))
	})

	refBody, refConst := getRefBody(sp)
	constKw := ""
	if refConst {
		constKw = "const "
	}

	w.BlankLine()
	w.WriteLines(
		"/// Returns a shared reference to the value of the bounded integer.",
		"#[must_use]",
	)
	w.Block(v+constKw+"fn get_ref(&self) -> &"+repr+" {", "}", func() {
		w.WriteLine(refBody)
	})

	w.BlankLine()
	w.WriteLines(
		"/// Returns a mutable reference to the value of the bounded integer.",
		"///",
		"/// # Safety",
		"///",
		"/// The value must never be set outside [`MIN_VALUE`, `MAX_VALUE`].",
		"#[must_use]",
	)
	w.Block(v+"unsafe fn get_mut(&mut self) -> &mut "+repr+" {", "}", func() {
		w.WriteLinef("&mut *(self as *mut Self as *mut %s)", repr)
	})
}

func emitInherentOperators(w *emit.Writer, sp *spec.Specification) {
	repr := sp.Primitive.Name()
	v := vis(sp)

	if sp.Primitive.IsSigned() {
		w.BlankLine()
		w.WriteLines(
			"/// Computes the absolute value of `self`, panicking if it is out of range.",
			"#[must_use]",
		)
		w.Block(v+"fn abs(self) -> Self {", "}", func() {
			w.WriteLine(`Self::new(self.get().abs()).expect("Absolute value out of range")`)
		})
	}

	w.BlankLine()
	w.WriteLines(
		"/// Raises `self` to the power of `exp`, using exponentiation by",
		"/// squaring. Panics if the result is out of range.",
		"#[must_use]",
	)
	w.Block(v+"fn pow(self, exp: u32) -> Self {", "}", func() {
		w.WriteLine(`Self::new(self.get().pow(exp)).expect("Value raised to power out of range")`)
	})

	w.BlankLine()
	w.WriteLines(
		"/// Calculates the quotient of Euclidean division of `self` by `rhs`.",
		"/// Panics if `rhs` is 0 or the result is out of range.",
		"#[must_use]",
	)
	w.Block(v+"fn div_euclid(self, rhs: "+repr+") -> Self {", "}", func() {
		w.WriteLine(`Self::new(self.get().div_euclid(rhs)).expect("Attempted to divide out of range")`)
	})

	w.BlankLine()
	w.WriteLines(
		"/// Calculates the least nonnegative remainder of `self (mod rhs)`.",
		"/// Panics if `rhs` is 0 or the result is out of range.",
		"#[must_use]",
	)
	w.Block(v+"fn rem_euclid(self, rhs: "+repr+") -> Self {", "}", func() {
		w.WriteLine(`Self::new(self.get().rem_euclid(rhs)).expect("Attempted to divide with remainder out of range")`)
	})
}
