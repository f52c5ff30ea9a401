package rustgen

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"bounded-integer-generator/internal/emit"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestEmitItem_Golden(t *testing.T) {
	w := emit.NewWriter(rustIndent)
	emitItem(w, nibbleSpec())
	golden(t).Assert(t, "item_nibble", w.Bytes())

	w = emit.NewWriter(rustIndent)
	emitItem(w, percentSpec())
	golden(t).Assert(t, "item_percent", w.Bytes())
}

func TestEmitSerde_Golden(t *testing.T) {
	w := emit.NewWriter(rustIndent)
	emitSerde(w, percentSpec())
	golden(t).Assert(t, "serde_percent", w.Bytes())
}

func TestEmitMinMaxValues_Golden(t *testing.T) {
	w := emit.NewWriter(rustIndent)
	emitMinMaxValues(w, percentSpec())
	golden(t).Assert(t, "consts_percent", w.Bytes())
}
