package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/vtgen/internal/models"
)

func parseSource(t *testing.T, src string) *models.UnitMetadata {
	t.Helper()
	unit, err := NewParser().ParseSource("test.vt", src)
	require.NoError(t, err)
	return unit
}

func TestParseSource_Interface(t *testing.T) {
	unit := parseSource(t, `
interface Basic {
    fun noArgs();
    fun findInBytes(buffer: &Example, value: byte, size: usize): isize;
}
`)

	require.Len(t, unit.Interfaces, 1)
	iface := unit.Interfaces[0]
	assert.Equal(t, "Basic", iface.Name)
	assert.Equal(t, "basic", iface.WrapperPrefix())
	require.Len(t, iface.Methods, 2)

	noArgs := iface.Methods[0]
	assert.Equal(t, "noArgs", noArgs.Name)
	assert.Empty(t, noArgs.Params)
	assert.True(t, noArgs.ReturnType.IsUnit(), "missing return clause means unit")
	assert.False(t, noArgs.Optional)

	find := iface.Methods[1]
	assert.Equal(t, "findInBytes", find.Name)
	require.Len(t, find.Params, 3)
	assert.Equal(t, "buffer", find.Params[0].Name)
	assert.Equal(t, models.TypeReference, find.Params[0].Type.Kind)
	assert.Equal(t, models.RefBorrowed, find.Params[0].Type.RefKind)
	assert.Equal(t, "Example", find.Params[0].Type.Target.TypeName)
	assert.Equal(t, models.BuiltinByte, find.Params[1].Type.Builtin)
	assert.Equal(t, models.BuiltinUsize, find.Params[2].Type.Builtin)
	assert.Equal(t, models.BuiltinIsize, find.ReturnType.Builtin)
}

func TestParseSource_OpaqueAndFunction(t *testing.T) {
	unit := parseSource(t, `
opaque type Example;

fun topLevel(code: int): int;
`)

	require.Len(t, unit.Opaques, 1)
	assert.Equal(t, "Example", unit.Opaques[0].Name)

	require.Len(t, unit.Functions, 1)
	fn := unit.Functions[0]
	assert.Equal(t, "topLevel", fn.Name)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, models.BuiltinInt, fn.ReturnType.Builtin)
}

func TestParseSource_DocComments(t *testing.T) {
	unit := parseSource(t, `
/**
 * Core engine callbacks.
 *
 * Second paragraph.
 */
interface Basic {
    /**
     * Runs a callback.
     */
    fun noArgs();
}
`)

	iface := unit.Interfaces[0]
	require.NotNil(t, iface.Doc)
	assert.Equal(t, []string{"Core engine callbacks.", "", "Second paragraph."}, iface.Doc.Lines)

	require.NotNil(t, iface.Methods[0].Doc)
	assert.Equal(t, []string{"Runs a callback."}, iface.Methods[0].Doc.Lines)
}

func TestParseSource_LineCommentsElided(t *testing.T) {
	unit := parseSource(t, `
// not documentation
interface Basic {
    // neither is this
    fun noArgs();
}
`)

	iface := unit.Interfaces[0]
	assert.Nil(t, iface.Doc)
	assert.Nil(t, iface.Methods[0].Doc)
}

func TestParseSource_WrappersAnnotation(t *testing.T) {
	unit := parseSource(t, `
@wrappers(prefix="object")
interface PyShape {
    fun area(obj: &DuckObject): double;
}
`)

	iface := unit.Interfaces[0]
	assert.Equal(t, "object", iface.Prefix)
	assert.Equal(t, "object", iface.WrapperPrefix())
	assert.False(t, iface.ByValue)
}

func TestParseSource_WrappersByValueFlag(t *testing.T) {
	unit := parseSource(t, `
@wrappers(byValue)
interface Other {
    fun ping(token: u32): bool;
}
`)

	iface := unit.Interfaces[0]
	assert.True(t, iface.ByValue)
	assert.Equal(t, "other", iface.WrapperPrefix())
}

func TestParseSource_OptionalMethod(t *testing.T) {
	unit := parseSource(t, `
interface PyShape {
    @optional
    fun view_legacy_repr(obj: &DuckObject): opt &raw PyObject;
}
`)

	method := unit.Interfaces[0].Methods[0]
	assert.True(t, method.Optional)

	ret := method.ReturnType
	assert.Equal(t, models.TypeReference, ret.Kind)
	assert.Equal(t, models.RefRaw, ret.RefKind)
	assert.True(t, ret.Optional)
	assert.Equal(t, "PyObject", ret.Target.TypeName)
}

func TestParseSource_ReferenceKinds(t *testing.T) {
	unit := parseSource(t, `
interface Refs {
    fun borrowed(a: &Example);
    fun mutable(a: &mut Example);
    fun owned(): &own Example;
    fun raw(a: &raw Example);
}
`)

	methods := unit.Interfaces[0].Methods
	assert.Equal(t, models.RefBorrowed, methods[0].Params[0].Type.RefKind)
	assert.Equal(t, models.RefMutable, methods[1].Params[0].Type.RefKind)
	assert.Equal(t, models.RefOwned, methods[2].ReturnType.RefKind)
	assert.Equal(t, models.RefRaw, methods[3].Params[0].Type.RefKind)
}

func TestParseSource_FixedIntTypes(t *testing.T) {
	unit := parseSource(t, `
interface Ints {
    fun narrow(a: i8, b: u16): u64;
}
`)

	method := unit.Interfaces[0].Methods[0]
	assert.Equal(t, models.TypeFixedInt, method.Params[0].Type.Kind)
	assert.Equal(t, 8, method.Params[0].Type.Bits)
	assert.True(t, method.Params[0].Type.Signed)
	assert.Equal(t, 16, method.Params[1].Type.Bits)
	assert.False(t, method.Params[1].Type.Signed)
	assert.Equal(t, 64, method.ReturnType.Bits)
}

func TestParseSource_SyntaxError(t *testing.T) {
	_, err := NewParser().ParseSource("broken.vt", `interface {`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeSyntax))
	assert.Contains(t, err.Error(), "broken.vt")
}

func TestParseSource_OptOnNonReference(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
interface Bad {
    fun probe(): opt int;
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
	assert.Contains(t, err.Error(), "opt qualifier requires a reference type")
}

func TestParseSource_DuplicateMethod(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
interface Bad {
    fun probe();
    fun probe();
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
	assert.Contains(t, err.Error(), "duplicate method 'probe'")
}

func TestParseSource_DuplicateParameter(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
interface Bad {
    fun probe(a: int, a: int);
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
	assert.Contains(t, err.Error(), "duplicate parameter name 'a'")
}

func TestParseSource_OptionalOnInterface(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
@optional
interface Bad {
    fun probe();
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
	assert.Contains(t, err.Error(), "only valid on methods")
}

func TestParseSource_WrappersOnMethod(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
interface Bad {
    @wrappers(prefix="x")
    fun probe();
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
	assert.Contains(t, err.Error(), "only valid on interfaces")
}

func TestParseSource_UnknownAnnotation(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
@deprecated
interface Bad {
    fun probe();
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
}

func TestParseSource_DuplicateOptional(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
interface Bad {
    @optional
    @optional
    fun probe();
}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate @optional")
}

func TestParseSource_AnnotationOnOpaque(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
@wrappers(prefix="x")
opaque type Example;
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid on opaque type declarations")
}

func TestParseSource_BadDocLine(t *testing.T) {
	_, err := NewParser().ParseSource("test.vt", `
/**
 * fine
 not fine
 */
interface Bad {
}
`)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeMalformedInput))
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := NewParser().ParseFile("does/not/exist.vt")
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeFileSystem))
}
