package templates

import "strings"

// CodeWriter accumulates generated source text with indentation tracking.
// Indentation is four spaces per level and is applied lazily at the start
// of each line, so blank lines never carry trailing whitespace.
type CodeWriter struct {
	builder     strings.Builder
	indent      int
	atLineStart bool
}

// NewCodeWriter creates an empty writer at indent level zero
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{atLineStart: true}
}

// Write appends a fragment to the current line
func (w *CodeWriter) Write(s string) *CodeWriter {
	if s == "" {
		return w
	}
	if w.atLineStart {
		for i := 0; i < w.indent; i++ {
			w.builder.WriteString("    ")
		}
		w.atLineStart = false
	}
	w.builder.WriteString(s)
	return w
}

// Writeln appends a fragment and terminates the line
func (w *CodeWriter) Writeln(s string) *CodeWriter {
	w.Write(s)
	w.builder.WriteByte('\n')
	w.atLineStart = true
	return w
}

// Blank emits an empty line
func (w *CodeWriter) Blank() *CodeWriter {
	w.builder.WriteByte('\n')
	w.atLineStart = true
	return w
}

// Indent increases the indentation level for subsequent lines
func (w *CodeWriter) Indent() *CodeWriter {
	w.indent++
	return w
}

// Dedent decreases the indentation level
func (w *CodeWriter) Dedent() *CodeWriter {
	if w.indent > 0 {
		w.indent--
	}
	return w
}

// String returns everything written so far
func (w *CodeWriter) String() string {
	return w.builder.String()
}
