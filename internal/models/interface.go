package models

import "strings"

// DocComment holds the documentation attached to a declaration, one entry
// per line with comment markers already stripped. Text is propagated
// verbatim onto the generated declarations.
type DocComment struct {
	Lines []string
}

// IsEmpty reports whether the comment carries no text at all
func (d *DocComment) IsEmpty() bool {
	return d == nil || len(d.Lines) == 0
}

// InterfaceMetadata represents one parsed interface declaration: a named,
// ordered collection of methods that becomes a vtable struct in the output
type InterfaceMetadata struct {
	Name    string           // declared interface name
	Doc     *DocComment      // documentation, nil if absent
	Methods []MethodMetadata // methods in declared order

	// Prefix overrides the wrapper naming prefix when set via the
	// wrappers annotation. Empty means the default lowercase name.
	Prefix string

	// ByValue selects by-value vtable passing for this interface's
	// wrappers instead of the default const pointer
	ByValue bool

	// Source location for error reporting
	FileName string
	Line     int
}

// WrapperPrefix returns the prefix used for this interface's wrapper
// function names: the explicit override if present, otherwise the
// lowercased interface name. This naming scheme is a stable contract
// for consumers of generated headers.
func (i *InterfaceMetadata) WrapperPrefix() string {
	if i.Prefix != "" {
		return i.Prefix
	}
	return strings.ToLower(i.Name)
}

// WrapperName returns the emitted wrapper function name for a method
func (i *InterfaceMetadata) WrapperName(method *MethodMetadata) string {
	return i.WrapperPrefix() + "_" + method.Name
}

// MethodMetadata represents one method of an interface, emitted as a
// function-pointer field plus one wrapper function
type MethodMetadata struct {
	Name       string
	Doc        *DocComment
	ReturnType TypeRef
	Params     []ParamMetadata // parameters in declared order

	// Optional means a null function-pointer value is a legal runtime
	// state rather than a contract violation. Set only by an explicit
	// optional annotation, never inferred.
	Optional bool

	// Source location for error reporting
	FileName string
	Line     int
}

// ParamMetadata represents one declared method or function parameter
type ParamMetadata struct {
	Name string
	Type TypeRef
}

// OpaqueTypeMetadata represents an opaque type declaration: a type known
// only by name whose layout is owned by an external component. It is
// forward-declared exactly once per header and never defined.
type OpaqueTypeMetadata struct {
	Name string
	Doc  *DocComment

	// Source location for error reporting
	FileName string
	Line     int
}

// FunctionMetadata represents a top-level function declaration, emitted
// as a plain prototype
type FunctionMetadata struct {
	Name       string
	Doc        *DocComment
	ReturnType TypeRef
	Params     []ParamMetadata

	// Source location for error reporting
	FileName string
	Line     int
}

// UnitMetadata is the Interface Model for one generation unit: everything
// parsed from the unit's input files, in declaration order. It is built
// once per run and treated as read-only by every downstream stage.
type UnitMetadata struct {
	Interfaces []InterfaceMetadata
	Opaques    []OpaqueTypeMetadata
	Functions  []FunctionMetadata
}

// Append merges another parsed fragment into this unit, preserving
// declaration order. Used when a generation unit spans multiple input
// files: files contribute in manifest order.
func (u *UnitMetadata) Append(other *UnitMetadata) {
	u.Interfaces = append(u.Interfaces, other.Interfaces...)
	u.Opaques = append(u.Opaques, other.Opaques...)
	u.Functions = append(u.Functions, other.Functions...)
}
