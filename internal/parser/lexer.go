package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// vtLexer tokenizes interface description source. Doc comments are real
// tokens (they attach to declarations); line comments and whitespace are
// elided by the grammar.
var vtLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "DocComment", Pattern: `/\*\*(?s:.*?)\*/`},
	{Name: "LineComment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[@{}():;,&=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// CleanDocComment strips the comment markers from a raw /** ... */ block
// and returns the documentation one line per entry. Interior lines must
// start with `* ` (or be a bare `*` for an empty line), matching the
// Java-style convention the emitter reproduces.
func CleanDocComment(raw string) ([]string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")

	rawLines := strings.Split(text, "\n")
	if len(rawLines) == 1 {
		trimmed := strings.TrimSpace(rawLines[0])
		if trimmed == "" {
			return nil, nil
		}
		return []string{trimmed}, nil
	}

	var lines []string
	for _, line := range rawLines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			// blank source line, carries nothing
		case trimmed == "*":
			lines = append(lines, "")
		case strings.HasPrefix(trimmed, "* "):
			lines = append(lines, trimmed[len("* "):])
		default:
			return nil, fmt.Errorf("doc line must start with '* ', got %q", trimmed)
		}
	}
	return lines, nil
}
