package templates

import "strings"

// GuardName derives the include-guard macro from a unit's logical name:
// "ivan.basic" becomes "IVAN_BASIC_H". The derivation is fixed so the
// same unit always guards with the same macro.
func GuardName(unitName string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(unitName) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteString("_H")
	return b.String()
}

// GenerateGuardOpen emits the opening include-guard lines
func GenerateGuardOpen(guard string) string {
	return "#ifndef " + guard + "\n#define " + guard
}

// GenerateGuardClose emits the closing include-guard line
func GenerateGuardClose(guard string) string {
	return "#endif /* " + guard + " */"
}

// GenerateIncludes emits the standard includes every generated header
// needs. assert.h is pulled in only when a mandatory-method wrapper will
// assert on its function pointer.
func GenerateIncludes(needAssert bool) string {
	includes := []string{
		"#include <stdint.h>",
		"#include <stdbool.h>",
		"#include <stdlib.h>",
	}
	if needAssert {
		includes = append(includes, "#include <assert.h>")
	}
	return strings.Join(includes, "\n")
}

// GenerateForwardDecl emits the forward declaration for an opaque type,
// with its documentation when the type was declared explicitly
func GenerateForwardDecl(name string, docLines []string) string {
	w := NewCodeWriter()
	WriteDocComment(w, docLines)
	w.Write("typedef struct " + name + " " + name + ";")
	return w.String()
}
