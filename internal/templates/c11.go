package templates

import (
	"fmt"
	"strings"

	"github.com/toyz/vtgen/internal/models"
)

// C11Type prints a resolved type reference as C11 source text. Opaque
// types print as their bare name; the forward declaration emitted at the
// top of the header makes that name valid.
func C11Type(t models.TypeRef) string {
	switch t.Kind {
	case models.TypeBuiltin:
		return builtinC11Name(t.Builtin)
	case models.TypeFixedInt:
		if t.Signed {
			return fmt.Sprintf("int%d_t", t.Bits)
		}
		return fmt.Sprintf("uint%d_t", t.Bits)
	case models.TypeReference:
		// Every reference is a pointer in C. Optionality does not
		// change the printed type, only the generated checks.
		if t.RefKind == models.RefBorrowed {
			return "const " + C11Type(*t.Target) + "*"
		}
		return C11Type(*t.Target) + "*"
	case models.TypeNamed:
		return t.TypeName
	default:
		return "/* invalid type */"
	}
}

func builtinC11Name(kind models.BuiltinKind) string {
	switch kind {
	case models.BuiltinUnit:
		return "void"
	case models.BuiltinInt:
		return "int"
	case models.BuiltinByte:
		return "char"
	case models.BuiltinDouble:
		return "double"
	case models.BuiltinBool:
		return "bool"
	case models.BuiltinUsize:
		return "size_t"
	case models.BuiltinIsize:
		return "intptr_t"
	default:
		return "/* unknown builtin */"
	}
}

// ParamList prints `type name` pairs joined by commas
func ParamList(params []models.ParamMetadata) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, C11Type(param.Type)+" "+param.Name)
	}
	return strings.Join(parts, ", ")
}

// ArgList prints the bare parameter names for a forwarding call
func ArgList(params []models.ParamMetadata) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.Name)
	}
	return strings.Join(parts, ", ")
}

// FunctionSignature prints `ret name(params)` without a trailing semicolon
func FunctionSignature(name string, returnType models.TypeRef, params []models.ParamMetadata) string {
	return fmt.Sprintf("%s %s(%s)", C11Type(returnType), name, ParamList(params))
}

// FunctionPointer prints a function-pointer declarator `ret (*name)(params)`,
// the shape shared by vtable fields and wrapper-local bindings
func FunctionPointer(name string, returnType models.TypeRef, params []models.ParamMetadata) string {
	return fmt.Sprintf("%s (*%s)(%s)", C11Type(returnType), name, ParamList(params))
}
