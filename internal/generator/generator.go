package generator

import (
	"strings"

	"github.com/toyz/vtgen/internal/models"
	"github.com/toyz/vtgen/internal/registry"
	"github.com/toyz/vtgen/internal/templates"
)

// Generator turns a resolved Interface Model into header text. It is a
// single-pass batch transformation: the model goes in read-only, a
// complete in-memory artifact (or a structured error) comes out, and
// nothing is ever emitted partially.
type Generator struct{}

// NewGenerator creates a new header generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateHeader generates the C11 header for one generation unit.
// Identical models produce byte-identical output; golden-fixture
// regression testing depends on that.
func (g *Generator) GenerateHeader(unitName string, unit *models.UnitMetadata) (*models.GeneratedHeader, error) {
	types, err := buildTypeTable(unit)
	if err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	// Plan every trampoline up front so a failure surfaces before any
	// text exists
	plans := make(map[*models.MethodMetadata]CallPlan)
	needAssert := false
	wrapperCount := 0
	for i := range unit.Interfaces {
		iface := &unit.Interfaces[i]
		for j := range iface.Methods {
			method := &iface.Methods[j]
			plan, err := PlanCall(iface, method)
			if err != nil {
				return nil, err
			}
			plans[method] = plan
			if plan.Optionality == Mandatory {
				needAssert = true
			}
			wrapperCount++
		}
	}

	guard := templates.GuardName(unitName)
	blocks := []string{
		templates.GenerateGuardOpen(guard),
		templates.GenerateIncludes(needAssert),
	}

	for _, decl := range forwardDeclarations(unit, types) {
		blocks = append(blocks, decl)
	}
	for i := range unit.Interfaces {
		blocks = append(blocks, templates.GenerateVtableStruct(&unit.Interfaces[i]))
	}
	for i := range unit.Functions {
		blocks = append(blocks, templates.GeneratePrototype(&unit.Functions[i]))
	}

	if wrapperCount > 0 {
		blocks = append(blocks, "// wrappers")
		for i := range unit.Interfaces {
			iface := &unit.Interfaces[i]
			for j := range iface.Methods {
				method := &iface.Methods[j]
				plan := plans[method]
				blocks = append(blocks, templates.GenerateWrapper(iface, method, plan.Checked(), plan.Absence))
			}
		}
	}

	blocks = append(blocks, templates.GenerateGuardClose(guard))

	return &models.GeneratedHeader{
		UnitName:     unitName,
		Content:      strings.Join(blocks, "\n\n") + "\n",
		WrapperCount: wrapperCount,
	}, nil
}

// buildTypeTable registers every declared type, rejecting duplicates
func buildTypeTable(unit *models.UnitMetadata) (*registry.TypeRegistry, error) {
	types := registry.NewTypeRegistry()
	for i := range unit.Opaques {
		if err := types.RegisterOpaque(&unit.Opaques[i]); err != nil {
			return nil, err
		}
	}
	for i := range unit.Interfaces {
		if err := types.RegisterInterface(&unit.Interfaces[i]); err != nil {
			return nil, err
		}
	}
	return types, nil
}

// validateUnit enforces the structural constraints the parser cannot see
// on its own
func validateUnit(unit *models.UnitMetadata) error {
	for i := range unit.Interfaces {
		iface := &unit.Interfaces[i]
		for j := range iface.Methods {
			method := &iface.Methods[j]
			for _, param := range method.Params {
				if param.Name == "vtable" {
					return models.NewMalformedInputError(method.FileName, method.Line,
						"parameter name 'vtable' on method '%s' collides with the wrapper's vtable argument",
						method.Name)
				}
			}
		}
	}
	return nil
}

// forwardDeclarations emits every opaque type exactly once, referenced
// types first in first-reference order, then declared-but-unreferenced
// opaques in declaration order. Referenced names with no declaration are
// auto forward-declared rather than rejected: opaque types are
// intentionally undefined by this system, so identity is all we need.
func forwardDeclarations(unit *models.UnitMetadata, types *registry.TypeRegistry) []string {
	var order []string
	seen := make(map[string]bool)

	addType := func(t models.TypeRef) {
		for _, name := range t.NamedTypes(nil) {
			if seen[name] {
				continue
			}
			if entry, ok := types.Lookup(name); ok && entry.Kind == registry.InterfaceEntry {
				// Interfaces get full vtable typedefs, not forward
				// declarations
				continue
			}
			types.EnsureOpaque(name)
			seen[name] = true
			order = append(order, name)
		}
	}
	addSignature := func(params []models.ParamMetadata, returnType models.TypeRef) {
		for _, param := range params {
			addType(param.Type)
		}
		addType(returnType)
	}

	for i := range unit.Interfaces {
		for j := range unit.Interfaces[i].Methods {
			method := &unit.Interfaces[i].Methods[j]
			addSignature(method.Params, method.ReturnType)
		}
	}
	for i := range unit.Functions {
		addSignature(unit.Functions[i].Params, unit.Functions[i].ReturnType)
	}
	for i := range unit.Opaques {
		if !seen[unit.Opaques[i].Name] {
			seen[unit.Opaques[i].Name] = true
			order = append(order, unit.Opaques[i].Name)
		}
	}

	decls := make([]string, 0, len(order))
	for _, name := range order {
		var docLines []string
		if entry, ok := types.Lookup(name); ok && entry.Opaque != nil {
			docLines = templates.DocLines(entry.Opaque.Doc)
		}
		decls = append(decls, templates.GenerateForwardDecl(name, docLines))
	}
	return decls
}
