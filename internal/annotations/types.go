package annotations

import "fmt"

// AnnotationType represents the type of annotation directive
type AnnotationType int

const (
	// WrappersAnnotation configures wrapper generation for an interface:
	// the naming prefix and the vtable passing convention
	WrappersAnnotation AnnotationType = iota

	// OptionalAnnotation marks a method as optional: a null function
	// pointer becomes a legal, checked state instead of a contract
	// violation
	OptionalAnnotation
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case WrappersAnnotation:
		return "wrappers"
	case OptionalAnnotation:
		return "optional"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts a directive name to an AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "wrappers":
		return WrappersAnnotation, nil
	case "optional":
		return OptionalAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation '@%s'", s)
	}
}

// SourceLocation represents the location of an annotation in source code
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

// String returns a formatted representation of the location
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	if s.Column == 0 {
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// RawArg is one argument of an annotation directive as parsed from source.
// A nil Value means the argument is a bare flag like byValue.
type RawArg struct {
	Name  string
	Value *string
}

// ParsedAnnotation represents a fully validated annotation with its
// parameters resolved against the registered schema, defaults applied
type ParsedAnnotation struct {
	Type       AnnotationType
	Parameters map[string]interface{}
	Location   SourceLocation
	Raw        string // the directive as written, for error messages
}

// StringParam returns a string parameter, or the empty string if unset
func (p *ParsedAnnotation) StringParam(name string) string {
	if v, ok := p.Parameters[name].(string); ok {
		return v
	}
	return ""
}

// BoolParam returns a flag parameter, false if unset
func (p *ParsedAnnotation) BoolParam(name string) bool {
	if v, ok := p.Parameters[name].(bool); ok {
		return v
	}
	return false
}
