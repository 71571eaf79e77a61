package annotations

import (
	"fmt"
	"sort"
	"strings"
)

// ResolveError describes an annotation that failed schema validation
type ResolveError struct {
	Message    string
	Location   SourceLocation
	Suggestion string
}

// Error implements the error interface
func (e *ResolveError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("%s: %s", e.Location, e.Message)
	}
	return fmt.Sprintf("%s: %s. %s", e.Location, e.Message, e.Suggestion)
}

// Resolve validates a raw annotation directive against the registered
// schema and produces a ParsedAnnotation with defaults applied. Unknown
// directive names, unknown parameters, type mismatches and validator
// failures are all reported as ResolveErrors.
func Resolve(registry AnnotationRegistry, name string, args []RawArg, loc SourceLocation) (*ParsedAnnotation, error) {
	annotationType, err := ParseAnnotationType(name)
	if err != nil {
		return nil, &ResolveError{
			Message:    err.Error(),
			Location:   loc,
			Suggestion: fmt.Sprintf("known annotations: %s", knownNames(registry)),
		}
	}

	schema, err := registry.GetSchema(annotationType)
	if err != nil {
		return nil, &ResolveError{Message: err.Error(), Location: loc}
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Parameters: make(map[string]interface{}),
		Location:   loc,
		Raw:        formatRaw(name, args),
	}

	for _, arg := range args {
		spec, exists := schema.Parameters[arg.Name]
		if !exists {
			return nil, &ResolveError{
				Message:    fmt.Sprintf("@%s does not accept parameter '%s'", name, arg.Name),
				Location:   loc,
				Suggestion: exampleSuggestion(schema),
			}
		}
		if _, seen := parsed.Parameters[arg.Name]; seen {
			return nil, &ResolveError{
				Message:  fmt.Sprintf("duplicate parameter '%s' on @%s", arg.Name, name),
				Location: loc,
			}
		}

		var value interface{}
		switch spec.Type {
		case StringType:
			if arg.Value == nil {
				return nil, &ResolveError{
					Message:    fmt.Sprintf("parameter '%s' of @%s requires a value", arg.Name, name),
					Location:   loc,
					Suggestion: exampleSuggestion(schema),
				}
			}
			value = *arg.Value
		case BoolType:
			if arg.Value != nil {
				return nil, &ResolveError{
					Message:  fmt.Sprintf("flag '%s' of @%s does not take a value", arg.Name, name),
					Location: loc,
				}
			}
			value = true
		}

		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return nil, &ResolveError{
					Message:  fmt.Sprintf("invalid value for '%s' of @%s: %v", arg.Name, name, err),
					Location: loc,
				}
			}
		}
		parsed.Parameters[arg.Name] = value
	}

	for paramName, spec := range schema.Parameters {
		if _, set := parsed.Parameters[paramName]; !set && spec.Required {
			return nil, &ResolveError{
				Message:    fmt.Sprintf("@%s requires parameter '%s'", name, paramName),
				Location:   loc,
				Suggestion: exampleSuggestion(schema),
			}
		}
	}

	return parsed, nil
}

func formatRaw(name string, args []RawArg) string {
	if len(args) == 0 {
		return "@" + name
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.Value != nil {
			parts = append(parts, fmt.Sprintf("%s=%q", arg.Name, *arg.Value))
		} else {
			parts = append(parts, arg.Name)
		}
	}
	return fmt.Sprintf("@%s(%s)", name, strings.Join(parts, ", "))
}

func exampleSuggestion(schema AnnotationSchema) string {
	if len(schema.Examples) == 0 {
		return ""
	}
	return "for example: " + strings.Join(schema.Examples, ", ")
}

func knownNames(registry AnnotationRegistry) string {
	types := registry.ListTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, "@"+t.String())
	}
	if len(names) == 0 {
		return "none"
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
