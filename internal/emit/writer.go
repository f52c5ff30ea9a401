// Package emit provides an indentation-aware writer for generated source
// text. Emission goes through it exclusively so that identical specifications
// always produce byte-identical artifacts.
package emit

import (
	"fmt"
	"strings"
)

// Writer accumulates generated code with proper indentation.
type Writer struct {
	sb          strings.Builder
	indentLevel int
	indentUnit  string
	linePrefix  string
	needsIndent bool
}

// NewWriter creates a writer using the given indentation unit.
func NewWriter(indentUnit string) *Writer {
	return &Writer{
		indentUnit:  indentUnit,
		needsIndent: true,
	}
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indentLevel++
	w.linePrefix = strings.Repeat(w.indentUnit, w.indentLevel)
}

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.linePrefix = strings.Repeat(w.indentUnit, w.indentLevel)
	}
}

// WriteLine writes s as one indented line. An empty s produces a bare newline.
func (w *Writer) WriteLine(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
	}

	w.sb.WriteString(s)
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// WriteLinef writes a formatted indented line.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// WriteLines writes each entry as its own line.
func (w *Writer) WriteLines(lines ...string) {
	for _, line := range lines {
		w.WriteLine(line)
	}
}

// BlankLine writes an empty separator line unless one is already pending.
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.WriteLine("")
	}
}

// Block writes opener, runs content one level deeper, then writes closer.
func (w *Writer) Block(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// String returns the accumulated code.
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the accumulated code as a byte slice.
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}
