package annotations

import (
	"fmt"
	"regexp"
)

// ParameterType represents the value type of a schema parameter
type ParameterType int

const (
	StringType ParameterType = iota
	BoolType
)

// ParameterSpec describes one parameter accepted by an annotation
type ParameterSpec struct {
	Type        ParameterType
	Required    bool
	Description string
	Validator   func(interface{}) error // optional value validation
}

// AnnotationSchema defines the parameters an annotation type accepts
type AnnotationSchema struct {
	Type        AnnotationType
	Description string
	Parameters  map[string]ParameterSpec
	Examples    []string
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// WrappersAnnotationSchema defines the schema for @wrappers directives
// on interface declarations
var WrappersAnnotationSchema = AnnotationSchema{
	Type:        WrappersAnnotation,
	Description: "Configures wrapper generation for an interface",
	Parameters: map[string]ParameterSpec{
		"prefix": {
			Type:        StringType,
			Required:    false,
			Description: "Overrides the default lowercase-interface-name wrapper prefix",
			Validator: func(v interface{}) error {
				prefix := v.(string)
				if !identifierPattern.MatchString(prefix) {
					return fmt.Errorf("prefix must be a valid C identifier, got '%s'", prefix)
				}
				return nil
			},
		},
		"byValue": {
			Type:        BoolType,
			Required:    false,
			Description: "Pass the vtable by value instead of by const pointer",
		},
	},
	Examples: []string{
		`@wrappers(prefix="object")`,
		`@wrappers(byValue)`,
		`@wrappers(prefix="other", byValue)`,
	},
}

// OptionalAnnotationSchema defines the schema for @optional directives
// on method declarations
var OptionalAnnotationSchema = AnnotationSchema{
	Type:        OptionalAnnotation,
	Description: "Marks a method as optional: a NULL function pointer is a legal state",
	Parameters:  map[string]ParameterSpec{},
	Examples: []string{
		`@optional`,
	},
}

// RegisterBuiltinSchemas registers all built-in annotation schemas
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	schemas := []AnnotationSchema{
		WrappersAnnotationSchema,
		OptionalAnnotationSchema,
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type, err)
		}
	}
	return nil
}
