package rustgen

import (
	"bounded-integer-generator/internal/emit"
	"bounded-integer-generator/spec"
)

// emitSerde emits the serialization impls against the configured crate path.
// Serialization delegates to the primitive; deserialization decodes the
// primitive and re-validates, reporting the valid range on failure.
func emitSerde(w *emit.Writer, sp *spec.Specification) {
	ident := sp.Identifier
	repr := sp.Primitive.Name()
	serde := sp.Serde()

	w.BlankLine()
	w.Block("impl "+serde+"::Serialize for "+ident+" {", "}", func() {
		w.WriteLine("fn serialize<S>(&self, serializer: S) -> Result<S::Ok, S::Error>")
		w.WriteLine("where")
		w.Indent()
		w.WriteLinef("S: %s::Serializer,", serde)
		w.Dedent()
		w.Block("{", "}", func() {
			w.WriteLinef("%s::Serialize::serialize(&self.get(), serializer)", serde)
		})
	})

	w.BlankLine()
	w.Block("impl<'de> "+serde+"::Deserialize<'de> for "+ident+" {", "}", func() {
		w.WriteLine("fn deserialize<D>(deserializer: D) -> Result<Self, D::Error>")
		w.WriteLine("where")
		w.Indent()
		w.WriteLinef("D: %s::Deserializer<'de>,", serde)
		w.Dedent()
		w.Block("{", "}", func() {
			w.WriteLinef("let value = <%s as %s::Deserialize<'de>>::deserialize(deserializer)?;", repr, serde)
			w.WriteLine("Self::new(value).ok_or_else(|| {")
			w.Indent()
			w.WriteLinef("<D::Error as %s::de::Error>::custom(format_args!(", serde)
			w.Indent()
			w.WriteLine(`"integer out of range, expected it to be between {} and {}",`)
			w.WriteLine("Self::MIN_VALUE,")
			w.WriteLine("Self::MAX_VALUE,")
			w.Dedent()
			w.WriteLine("))")
			w.Dedent()
			w.WriteLine("})")
		})
	})
}
