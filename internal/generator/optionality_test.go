package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/vtgen/internal/models"
)

func TestResolveOptionality(t *testing.T) {
	mandatory := &models.MethodMetadata{Name: "required"}
	optional := &models.MethodMetadata{Name: "maybe", Optional: true}

	assert.Equal(t, Mandatory, ResolveOptionality(mandatory))
	assert.Equal(t, Optional, ResolveOptionality(optional))
}

func TestResolveOptionality_NeverInferredFromTypeShape(t *testing.T) {
	// A nullable-looking return type alone does not make a method optional
	method := &models.MethodMetadata{
		Name:       "lookup",
		ReturnType: models.ReferenceType(models.NamedType("Node"), models.RefRaw, true),
	}
	assert.Equal(t, Mandatory, ResolveOptionality(method))
}

func TestPlanCall_Mandatory(t *testing.T) {
	iface := &models.InterfaceMetadata{Name: "Engine"}
	method := &models.MethodMetadata{
		Name:       "start",
		ReturnType: models.BuiltinType(models.BuiltinUnit),
	}

	plan, err := PlanCall(iface, method)
	require.NoError(t, err)
	assert.Equal(t, Mandatory, plan.Optionality)
	assert.False(t, plan.Checked())
}

func TestPlanCall_AbsenceValues(t *testing.T) {
	i32 := must(models.FixedIntType(32, true))

	tests := []struct {
		name       string
		returnType models.TypeRef
		absence    string
	}{
		{"reference returns NULL", models.ReferenceType(models.NamedType("Obj"), models.RefRaw, true), "NULL"},
		{"borrowed reference returns NULL", models.ReferenceType(models.NamedType("Obj"), models.RefBorrowed, false), "NULL"},
		{"bool returns false", models.BuiltinType(models.BuiltinBool), "false"},
		{"fixed int returns zero", i32, "0"},
		{"int returns zero", models.BuiltinType(models.BuiltinInt), "0"},
		{"double returns zero", models.BuiltinType(models.BuiltinDouble), "0"},
		{"usize returns zero", models.BuiltinType(models.BuiltinUsize), "0"},
		{"unit returns nothing", models.BuiltinType(models.BuiltinUnit), ""},
	}

	iface := &models.InterfaceMetadata{Name: "Hooks"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := &models.MethodMetadata{
				Name:       "probe",
				ReturnType: tt.returnType,
				Optional:   true,
			}
			plan, err := PlanCall(iface, method)
			require.NoError(t, err)
			assert.True(t, plan.Checked())
			assert.Equal(t, tt.absence, plan.Absence)
		})
	}
}

func TestPlanCall_OpaqueByValueHasNoDefault(t *testing.T) {
	iface := &models.InterfaceMetadata{Name: "Store", Prefix: "store"}
	method := &models.MethodMetadata{
		Name:       "snapshot",
		FileName:   "store.vt",
		Line:       12,
		ReturnType: models.NamedType("Blob"),
		Optional:   true,
	}

	_, err := PlanCall(iface, method)
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeUnrepresentableOptionalDefault))
	assert.Contains(t, err.Error(), "store.vt:12")
}

func must(t models.TypeRef, err error) models.TypeRef {
	if err != nil {
		panic(err)
	}
	return t
}
