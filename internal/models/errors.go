package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of generator errors
type ErrorType int

const (
	// ErrorTypeSyntax is a tokenization or grammar failure in an input file
	ErrorTypeSyntax ErrorType = iota

	// ErrorTypeMalformedInput is a structurally invalid interface
	// description: missing types, duplicate names, bad annotations
	ErrorTypeMalformedInput

	// ErrorTypeUnrepresentableOptionalDefault means an optional method's
	// return type has no defined absence value
	ErrorTypeUnrepresentableOptionalDefault

	// ErrorTypeUnresolvedOpaqueType means a referenced type could not be
	// resolved against the unit's type table
	ErrorTypeUnresolvedOpaqueType

	// ErrorTypeConfiguration is an invalid manifest or CLI configuration
	ErrorTypeConfiguration

	// ErrorTypeFileSystem is a failure reading inputs or writing output
	ErrorTypeFileSystem
)

// String returns the string representation of the error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeSyntax:
		return "SyntaxError"
	case ErrorTypeMalformedInput:
		return "MalformedInput"
	case ErrorTypeUnrepresentableOptionalDefault:
		return "UnrepresentableOptionalDefault"
	case ErrorTypeUnresolvedOpaqueType:
		return "UnresolvedOpaqueType"
	case ErrorTypeConfiguration:
		return "ConfigurationError"
	case ErrorTypeFileSystem:
		return "FileSystemError"
	default:
		return "UnknownError"
	}
}

// GeneratorError represents an error that occurred during generation.
// All generator errors are structural and non-retryable: input
// malformation is not transient.
type GeneratorError struct {
	Type        ErrorType              // type of error
	File        string                 // input file where error occurred
	Line        int                    // line number where error occurred
	Message     string                 // error message
	Suggestions []string               // hints for fixing the input
	Context     map[string]interface{} // additional context information
	Cause       error                  // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Type, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// NewMalformedInputError creates an error for a structurally invalid
// interface description
func NewMalformedInputError(file string, line int, format string, args ...interface{}) *GeneratorError {
	return &GeneratorError{
		Type:    ErrorTypeMalformedInput,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewSyntaxError creates an error for input that failed to parse
func NewSyntaxError(file string, line int, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    ErrorTypeSyntax,
		File:    file,
		Line:    line,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// NewUnrepresentableDefaultError creates an error for an optional method
// whose return type has no absence value to synthesize
func NewUnrepresentableDefaultError(file string, line int, wrapperName string, returnType TypeRef) *GeneratorError {
	return &GeneratorError{
		Type:    ErrorTypeUnrepresentableOptionalDefault,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf("optional method %s returns %s, which has no absence value", wrapperName, returnType.SourceName()),
		Suggestions: []string{
			"return a reference, boolean or numeric type from optional methods",
			"or drop the optional annotation and require the method",
		},
		Context: map[string]interface{}{
			"wrapper":     wrapperName,
			"return_type": returnType.SourceName(),
		},
	}
}

// IsErrorType reports whether err is a GeneratorError of the given type
func IsErrorType(err error, errorType ErrorType) bool {
	var genErr *GeneratorError
	if errors.As(err, &genErr) {
		return genErr.Type == errorType
	}
	return false
}
