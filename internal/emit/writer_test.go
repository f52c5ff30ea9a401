package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bounded-integer-generator/internal/emit"
)

func TestWriter_Block(t *testing.T) {
	w := emit.NewWriter("    ")

	w.Block("impl Nibble {", "}", func() {
		w.WriteLine("const MIN_VALUE: i8 = -8i8;")
		w.Block("fn get(self) -> i8 {", "}", func() {
			w.WriteLine("self as _")
		})
	})

	assert.Equal(t, `impl Nibble {
    const MIN_VALUE: i8 = -8i8;
    fn get(self) -> i8 {
        self as _
    }
}
`, w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	w := emit.NewWriter("\t")

	// A leading blank line is suppressed entirely.
	w.BlankLine()
	w.WriteLine("a")
	w.BlankLine()
	w.BlankLine()
	w.WriteLine("b")

	assert.Equal(t, "a\n\nb\n", w.String())
}

func TestWriter_DedentClampsAtZero(t *testing.T) {
	w := emit.NewWriter("  ")

	w.Dedent()
	w.WriteLine("top")

	assert.Equal(t, "top\n", w.String())
}

func TestWriter_WriteLinesAndBytes(t *testing.T) {
	w := emit.NewWriter("  ")

	w.WriteLines("a", "b")
	w.WriteLinef("c%d", 3)

	assert.Equal(t, []byte("a\nb\nc3\n"), w.Bytes())
}
