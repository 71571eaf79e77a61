package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuiltin(t *testing.T) {
	tests := []struct {
		source string
		kind   BuiltinKind
	}{
		{"unit", BuiltinUnit},
		{"int", BuiltinInt},
		{"byte", BuiltinByte},
		{"double", BuiltinDouble},
		{"bool", BuiltinBool},
		{"usize", BuiltinUsize},
		{"isize", BuiltinIsize},
	}
	for _, tt := range tests {
		kind, ok := ParseBuiltin(tt.source)
		require.True(t, ok, tt.source)
		assert.Equal(t, tt.kind, kind)
		assert.Equal(t, tt.source, kind.String())
	}

	_, ok := ParseBuiltin("Example")
	assert.False(t, ok)
}

func TestParseFixedInt(t *testing.T) {
	i32, ok := ParseFixedInt("i32")
	require.True(t, ok)
	assert.Equal(t, TypeFixedInt, i32.Kind)
	assert.Equal(t, 32, i32.Bits)
	assert.True(t, i32.Signed)

	u8, ok := ParseFixedInt("u8")
	require.True(t, ok)
	assert.Equal(t, 8, u8.Bits)
	assert.False(t, u8.Signed)

	for _, bad := range []string{"i12", "u128", "int", "i", "x32"} {
		_, ok := ParseFixedInt(bad)
		assert.False(t, ok, bad)
	}
}

func TestFixedIntType_RejectsBadWidths(t *testing.T) {
	_, err := FixedIntType(24, true)
	assert.Error(t, err)
}

func TestTypeRefSourceName(t *testing.T) {
	u8, _ := ParseFixedInt("u8")

	tests := []struct {
		name string
		t    TypeRef
		want string
	}{
		{"builtin", BuiltinType(BuiltinUsize), "usize"},
		{"fixed int", u8, "u8"},
		{"named", NamedType("Example"), "Example"},
		{"borrowed", ReferenceType(NamedType("Example"), RefBorrowed, false), "&Example"},
		{"mutable", ReferenceType(NamedType("Example"), RefMutable, false), "&mut Example"},
		{"owned", ReferenceType(NamedType("Example"), RefOwned, false), "&own Example"},
		{"optional raw", ReferenceType(NamedType("PyObject"), RefRaw, true), "opt &raw PyObject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.SourceName())
		})
	}
}

func TestTypeRefIsUnit(t *testing.T) {
	assert.True(t, BuiltinType(BuiltinUnit).IsUnit())
	assert.False(t, BuiltinType(BuiltinInt).IsUnit())
	assert.False(t, NamedType("unit").IsUnit())
}

func TestTypeRefNamedTypes(t *testing.T) {
	assert.Equal(t, []string{"Example"}, NamedType("Example").NamedTypes(nil))
	assert.Equal(t, []string{"Example"},
		ReferenceType(NamedType("Example"), RefOwned, false).NamedTypes(nil))
	assert.Nil(t, BuiltinType(BuiltinInt).NamedTypes(nil))
}
