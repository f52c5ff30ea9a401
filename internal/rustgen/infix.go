package rustgen

import (
	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

// infixOperator describes one operator trait. Infix arithmetic models
// "expected to stay in range": the canonical impl panics on an out-of-range
// result, and every other variation delegates to it so the families can
// never diverge.
type infixOperator struct {
	traitName   string
	method      string
	symbol      string
	description string
	binary      bool
	onUnsigned  bool
}

var infixOperators = []infixOperator{
	{"Add", "add", "+", "add", true, true},
	{"Sub", "sub", "-", "subtract", true, true},
	{"Mul", "mul", "*", "multiply", true, true},
	{"Div", "div", "/", "divide", true, true},
	{"Rem", "rem", "%", "take remainder", true, true},
	{"Neg", "neg", "-", "negate", false, false},
}

// emitOpsTraits emits the infix operator impls for every operator applicable
// to the primitive's signedness, across the three relational families.
func emitOpsTraits(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()

	for _, op := range infixOperators {
		if !sp.Primitive.IsSigned() && !op.onUnsigned {
			continue
		}

		if !op.binary {
			emitUnopVariations(w, sp, op)
			continue
		}

		// bounded <op> primitive: the canonical, range-checked impl.
		emitBinopVariations(w, op, ident, repr, ident,
			"Self::new(self.get() "+op.symbol+" rhs).expect(\"Attempted to "+op.description+" out of range\")")

		// primitive <op> bounded: plain primitive arithmetic on the
		// unwrapped value; the result is a primitive, not a bounded value.
		emitBinopVariations(w, op, repr, ident, repr,
			"self "+op.symbol+" rhs.get()")

		// bounded <op> bounded: delegates to bounded <op> primitive by
		// unwrapping its right operand.
		emitBinopVariations(w, op, ident, ident, ident,
			"self "+op.symbol+" rhs.get()")
	}
}

// emitBinopVariations expands one (lhs, rhs) family: the four value/reference
// operand combinations plus the two assignment forms. Only the value-value
// impl carries the real body; the rest delegate through the operator itself.
func emitBinopVariations(w *emit.Writer, op infixOperator, lhs, rhs, output, body string) {
	trait := "core::ops::" + op.traitName
	traitAssign := "core::ops::" + op.traitName + "Assign"

	w.BlankLine()
	w.Block("impl "+trait+"<"+rhs+"> for "+lhs+" {", "}", func() {
		w.WriteLinef("type Output = %s;", output)
		w.Block("fn "+op.method+"(self, rhs: "+rhs+") -> Self::Output {", "}", func() {
			w.WriteLine(body)
		})
	})

	w.BlankLine()
	w.Block("impl "+trait+"<"+rhs+"> for &"+lhs+" {", "}", func() {
		w.WriteLinef("type Output = %s;", output)
		w.Block("fn "+op.method+"(self, rhs: "+rhs+") -> Self::Output {", "}", func() {
			w.WriteLinef("*self %s rhs", op.symbol)
		})
	})

	w.BlankLine()
	w.Block("impl "+trait+"<&"+rhs+"> for "+lhs+" {", "}", func() {
		w.WriteLinef("type Output = %s;", output)
		w.Block("fn "+op.method+"(self, rhs: &"+rhs+") -> Self::Output {", "}", func() {
			w.WriteLinef("self %s *rhs", op.symbol)
		})
	})

	w.BlankLine()
	w.Block("impl "+trait+"<&"+rhs+"> for &"+lhs+" {", "}", func() {
		w.WriteLinef("type Output = %s;", output)
		w.Block("fn "+op.method+"(self, rhs: &"+rhs+") -> Self::Output {", "}", func() {
			w.WriteLinef("*self %s *rhs", op.symbol)
		})
	})

	w.BlankLine()
	w.Block("impl "+traitAssign+"<"+rhs+"> for "+lhs+" {", "}", func() {
		w.Block("fn "+op.method+"_assign(&mut self, rhs: "+rhs+") {", "}", func() {
			w.WriteLinef("*self = *self %s rhs;", op.symbol)
		})
	})

	w.BlankLine()
	w.Block("impl "+traitAssign+"<&"+rhs+"> for "+lhs+" {", "}", func() {
		w.Block("fn "+op.method+"_assign(&mut self, rhs: &"+rhs+") {", "}", func() {
			w.WriteLinef("*self = *self %s *rhs;", op.symbol)
		})
	})
}

// emitUnopVariations expands a unary operator: the value impl carries the
// range-checked body, the reference impl delegates.
func emitUnopVariations(w *emit.Writer, sp *spec.Specification, op infixOperator) {
	ident := sp.Identifier
	trait := "core::ops::" + op.traitName

	w.BlankLine()
	w.Block("impl "+trait+" for "+ident+" {", "}", func() {
		w.WriteLinef("type Output = %s;", ident)
		w.Block("fn "+op.method+"(self) -> Self::Output {", "}", func() {
			w.WriteLinef("Self::new(%sself.get()).expect(\"Attempted to %s out of range\")",
				op.symbol, op.description)
		})
	})

	w.BlankLine()
	w.Block("impl "+trait+" for &"+ident+" {", "}", func() {
		w.WriteLinef("type Output = %s;", ident)
		w.Block("fn "+op.method+"(self) -> Self::Output {", "}", func() {
			w.WriteLinef("%s*self", op.symbol)
		})
	})
}
