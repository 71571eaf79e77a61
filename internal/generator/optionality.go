package generator

import "github.com/toyz/vtgen/internal/models"

// Optionality is the resolved calling contract for one method. The
// decision is pure and total: every method is exactly mandatory or
// optional, fixed at generation time and never re-evaluated per call.
type Optionality int

const (
	// Mandatory means a null function pointer is a contract violation,
	// trapped by a fatal assertion in the wrapper
	Mandatory Optionality = iota
	// Optional means a null function pointer is a legal, checked state
	Optional
)

// ResolveOptionality decides a method's calling contract. A method is
// optional if and only if it carries the explicit optional annotation;
// nothing is ever inferred from type shape.
func ResolveOptionality(method *models.MethodMetadata) Optionality {
	if method.Optional {
		return Optional
	}
	return Mandatory
}

// CallPlan is the synthesized trampoline strategy for one method,
// decided before any C text is printed. Modeling the outcome as a
// variant (called vs. skipped-absent with a default) keeps the null
// policy independent of the target dialect's null idiom.
type CallPlan struct {
	Optionality Optionality

	// Absence is the C expression returned when an optional method is
	// absent. Empty for unit returns, where the wrapper just returns.
	Absence string
}

// Checked reports whether the wrapper needs a null-check branch
func (p CallPlan) Checked() bool {
	return p.Optionality == Optional
}

// PlanCall resolves the method's optionality and synthesizes its absence
// default. Fails with UnrepresentableOptionalDefault when an optional
// method's return type has no defined absence value.
func PlanCall(iface *models.InterfaceMetadata, method *models.MethodMetadata) (CallPlan, error) {
	if ResolveOptionality(method) == Mandatory {
		return CallPlan{Optionality: Mandatory}, nil
	}

	absence, ok := absenceValue(method.ReturnType)
	if !ok {
		return CallPlan{}, models.NewUnrepresentableDefaultError(
			method.FileName, method.Line, iface.WrapperName(method), method.ReturnType)
	}
	return CallPlan{Optionality: Optional, Absence: absence}, nil
}

// absenceValue synthesizes the deterministic default an absent optional
// method produces: NULL for pointers, false for booleans, zero for
// numerics, nothing for unit. Opaque types passed by value have no
// representable default.
func absenceValue(t models.TypeRef) (string, bool) {
	switch t.Kind {
	case models.TypeReference:
		return "NULL", true
	case models.TypeFixedInt:
		return "0", true
	case models.TypeBuiltin:
		switch t.Builtin {
		case models.BuiltinUnit:
			return "", true
		case models.BuiltinBool:
			return "false", true
		default:
			return "0", true
		}
	default:
		return "", false
	}
}
