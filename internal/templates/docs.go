package templates

import "github.com/toyz/vtgen/internal/models"

// OptionalContractNote is appended to the documentation of every optional
// method. It is owned by the generator, not hand-authored per interface,
// so the documented contract can never drift from the emitted null check.
var OptionalContractNote = []string{
	"This method is optional: a NULL function pointer is a legal state",
	"meaning the method is never present, and the wrapper returns the",
	"absence value instead of calling through.",
}

// MethodDocLines returns the documentation to emit for a method: the
// authored text verbatim, plus the fixed optionality note for optional
// methods
func MethodDocLines(method *models.MethodMetadata) []string {
	var lines []string
	if !method.Doc.IsEmpty() {
		lines = append(lines, method.Doc.Lines...)
	}
	if method.Optional {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, OptionalContractNote...)
	}
	return lines
}

// DocLines returns a doc comment's lines, or nil for absent docs
func DocLines(doc *models.DocComment) []string {
	if doc.IsEmpty() {
		return nil
	}
	return doc.Lines
}

// WriteDocComment emits a Java-style /** ... */ block at the writer's
// current indent. Nothing is emitted for empty documentation.
func WriteDocComment(w *CodeWriter, lines []string) {
	if len(lines) == 0 {
		return
	}
	w.Writeln("/**")
	for _, line := range lines {
		if line == "" {
			w.Writeln(" *")
		} else {
			w.Writeln(" * " + line)
		}
	}
	w.Writeln(" */")
}
