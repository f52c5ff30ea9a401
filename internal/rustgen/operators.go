package rustgen

import (
	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

// opsVariants is the applicability of one operator for one signedness.
type opsVariants int

const (
	opsNone opsVariants = iota
	opsChecked
	opsCheckedAndSaturating
)

// checkedOperator describes one arithmetic method family. The table below is
// the single point of truth for which methods exist per signedness; emission
// never special-cases an operator outside it.
type checkedOperator struct {
	name        string
	description string
	// rhs is the right-hand operand kind: "" for none, "Self" for the
	// underlying primitive, or a concrete primitive name.
	rhs      string
	signed   opsVariants
	unsigned opsVariants
}

var checkedOperators = []checkedOperator{
	{"add", "integer addition", "Self", opsCheckedAndSaturating, opsCheckedAndSaturating},
	{"sub", "integer subtraction", "Self", opsCheckedAndSaturating, opsCheckedAndSaturating},
	{"mul", "integer multiplication", "Self", opsCheckedAndSaturating, opsCheckedAndSaturating},
	{"div", "integer division", "Self", opsChecked, opsChecked},
	{"div_euclid", "Euclidean division", "Self", opsChecked, opsChecked},
	{"rem", "integer remainder", "Self", opsChecked, opsChecked},
	{"rem_euclid", "Euclidean remainder", "Self", opsChecked, opsChecked},
	{"neg", "negation", "", opsCheckedAndSaturating, opsNone},
	{"abs", "absolute value", "", opsChecked, opsNone},
	{"pow", "exponentiation", "u32", opsCheckedAndSaturating, opsCheckedAndSaturating},
}

// variants resolves the applicability for the specification's signedness.
func (op checkedOperator) variants(sp *spec.Specification) opsVariants {
	if sp.Primitive.IsSigned() {
		return op.signed
	}

	return op.unsigned
}

// rhsType resolves the right-hand operand type, or "" for unary operators.
func (op checkedOperator) rhsType(sp *spec.Specification) string {
	if op.rhs == "Self" {
		return sp.Primitive.Name()
	}

	return op.rhs
}

// emitCheckedOperators walks the operator table and emits the checked_
// family, plus the saturating_ family where applicable. Every method routes
// through the primitive's own operation and re-validates via new or
// new_saturating.
func emitCheckedOperators(w *emit.Writer, sp *spec.Specification) {
	v := vis(sp)

	for _, op := range checkedOperators {
		variants := op.variants(sp)
		if variants == opsNone {
			continue
		}

		rhsParam, rhsArg := "", ""
		if rhs := op.rhsType(sp); rhs != "" {
			rhsParam = ", rhs: " + rhs
			rhsArg = "rhs"
		}

		w.BlankLine()
		w.WriteLinef("/// Checked %s.", op.description)
		w.WriteLine("#[must_use]")
		w.Block(v+"fn checked_"+op.name+"(self"+rhsParam+") -> Option<Self> {", "}", func() {
			w.WriteLinef("self.get().checked_%s(%s).and_then(Self::new)", op.name, rhsArg)
		})

		if variants != opsCheckedAndSaturating {
			continue
		}

		w.BlankLine()
		w.WriteLinef("/// Saturating %s.", op.description)
		w.WriteLine("#[must_use]")
		w.Block(v+"fn saturating_"+op.name+"(self"+rhsParam+") -> Self {", "}", func() {
			w.WriteLinef("Self::new_saturating(self.get().saturating_%s(%s))", op.name, rhsArg)
		})
	}
}
