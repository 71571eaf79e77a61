package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// BuiltinKind identifies one of the built-in primitive types of the
// interface description language
type BuiltinKind int

const (
	BuiltinUnit BuiltinKind = iota
	BuiltinInt
	BuiltinByte
	BuiltinDouble
	BuiltinBool
	BuiltinUsize
	BuiltinIsize
)

// String returns the type's name as written in interface description source
func (b BuiltinKind) String() string {
	switch b {
	case BuiltinUnit:
		return "unit"
	case BuiltinInt:
		return "int"
	case BuiltinByte:
		return "byte"
	case BuiltinDouble:
		return "double"
	case BuiltinBool:
		return "bool"
	case BuiltinUsize:
		return "usize"
	case BuiltinIsize:
		return "isize"
	default:
		return "unknown"
	}
}

// ParseBuiltin converts a source-level type name to a BuiltinKind
func ParseBuiltin(s string) (BuiltinKind, bool) {
	switch s {
	case "unit":
		return BuiltinUnit, true
	case "int":
		return BuiltinInt, true
	case "byte":
		return BuiltinByte, true
	case "double":
		return BuiltinDouble, true
	case "bool":
		return BuiltinBool, true
	case "usize":
		return BuiltinUsize, true
	case "isize":
		return BuiltinIsize, true
	default:
		return 0, false
	}
}

// ReferenceKind represents the ownership contract of a reference type.
// Ownership is documentation-only metadata: no generated check enforces it,
// but it is surfaced in emitted comments and consumed by downstream users.
type ReferenceKind int

const (
	// RefBorrowed is an immutable borrow, valid for the duration of the call
	RefBorrowed ReferenceKind = iota
	// RefMutable is an exclusive mutable borrow with no aliasing
	RefMutable
	// RefOwned transfers ownership to the callee (or caller, for returns)
	RefOwned
	// RefRaw carries no ownership contract at all
	RefRaw
)

// String returns the reference sigil as written in source
func (r ReferenceKind) String() string {
	switch r {
	case RefBorrowed:
		return "&"
	case RefMutable:
		return "&mut"
	case RefOwned:
		return "&own"
	case RefRaw:
		return "&raw"
	default:
		return "&?"
	}
}

// TypeKind discriminates the variants of a TypeRef
type TypeKind int

const (
	// TypeBuiltin is one of the built-in primitive types
	TypeBuiltin TypeKind = iota
	// TypeFixedInt is a fixed-width integer like i32 or u8
	TypeFixedInt
	// TypeReference is a pointer with an ownership contract
	TypeReference
	// TypeNamed refers to a user-declared type by name (opaque or interface)
	TypeNamed
)

// TypeHandle indexes a declared type in the generation unit's type table.
// Opaque types are only ever known by identity, never by layout, so a handle
// into the table is all downstream stages need.
type TypeHandle int

// HandleUnresolved marks a named type that has not been entered into the
// type table yet
const HandleUnresolved TypeHandle = -1

// TypeRef is a reference to a type as it appears in a method signature.
// Exactly one variant is populated, selected by Kind.
type TypeRef struct {
	Kind TypeKind

	// Builtin is set for TypeBuiltin
	Builtin BuiltinKind

	// Bits and Signed are set for TypeFixedInt (8, 16, 32 or 64 bits)
	Bits   int
	Signed bool

	// RefKind, Optional and Target are set for TypeReference.
	// Optional means a null value is a legal state for this reference.
	RefKind  ReferenceKind
	Optional bool
	Target   *TypeRef

	// TypeName is set for TypeNamed
	TypeName string
}

// BuiltinType constructs a TypeRef for a built-in primitive
func BuiltinType(kind BuiltinKind) TypeRef {
	return TypeRef{Kind: TypeBuiltin, Builtin: kind}
}

// FixedIntType constructs a TypeRef for a fixed-width integer
func FixedIntType(bits int, signed bool) (TypeRef, error) {
	switch bits {
	case 8, 16, 32, 64:
	default:
		return TypeRef{}, fmt.Errorf("invalid integer width: %d", bits)
	}
	return TypeRef{Kind: TypeFixedInt, Bits: bits, Signed: signed}, nil
}

// ReferenceType constructs a TypeRef for a reference to target
func ReferenceType(target TypeRef, kind ReferenceKind, optional bool) TypeRef {
	return TypeRef{Kind: TypeReference, RefKind: kind, Optional: optional, Target: &target}
}

// NamedType constructs a TypeRef for a user-declared type
func NamedType(name string) TypeRef {
	return TypeRef{Kind: TypeNamed, TypeName: name}
}

var fixedIntPattern = regexp.MustCompile(`^([iu])(8|16|32|64)$`)

// ParseFixedInt recognizes fixed-width integer type names like i64 or u8
func ParseFixedInt(s string) (TypeRef, bool) {
	match := fixedIntPattern.FindStringSubmatch(s)
	if match == nil {
		return TypeRef{}, false
	}
	bits, err := strconv.Atoi(match[2])
	if err != nil {
		return TypeRef{}, false
	}
	t, err := FixedIntType(bits, match[1] == "i")
	if err != nil {
		return TypeRef{}, false
	}
	return t, true
}

// SourceName returns the type as written in interface description source,
// used for error messages
func (t TypeRef) SourceName() string {
	switch t.Kind {
	case TypeBuiltin:
		return t.Builtin.String()
	case TypeFixedInt:
		if t.Signed {
			return fmt.Sprintf("i%d", t.Bits)
		}
		return fmt.Sprintf("u%d", t.Bits)
	case TypeReference:
		name := t.RefKind.String() + " " + t.Target.SourceName()
		if t.RefKind == RefBorrowed {
			name = "&" + t.Target.SourceName()
		}
		if t.Optional {
			return "opt " + name
		}
		return name
	case TypeNamed:
		return t.TypeName
	default:
		return "<invalid>"
	}
}

// IsUnit reports whether this is the unit type (void in C)
func (t TypeRef) IsUnit() bool {
	return t.Kind == TypeBuiltin && t.Builtin == BuiltinUnit
}

// NamedTypes appends every named type referenced by t, outermost first,
// and returns the extended slice
func (t TypeRef) NamedTypes(names []string) []string {
	switch t.Kind {
	case TypeNamed:
		return append(names, t.TypeName)
	case TypeReference:
		return t.Target.NamedTypes(names)
	default:
		return names
	}
}
