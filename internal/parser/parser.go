package parser

import (
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"

	"github.com/toyz/vtgen/internal/annotations"
	"github.com/toyz/vtgen/internal/models"
)

// Parser parses interface description source into the Interface Model.
// The same Parser can be reused across files and generation units.
type Parser struct {
	grammar  *participle.Parser[FileAST]
	registry annotations.AnnotationRegistry
}

// NewParser creates a parser using the default annotation registry
func NewParser() *Parser {
	return NewParserWithRegistry(annotations.DefaultRegistry())
}

// NewParserWithRegistry creates a parser with a custom annotation registry
func NewParserWithRegistry(registry annotations.AnnotationRegistry) *Parser {
	grammar := participle.MustBuild[FileAST](
		participle.Lexer(vtLexer),
		participle.Elide("LineComment", "Whitespace"),
		participle.UseLookahead(2),
	)
	return &Parser{
		grammar:  grammar,
		registry: registry,
	}
}

// ParseFile parses one interface description file
func (p *Parser) ParseFile(path string) (*models.UnitMetadata, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "failed to read input file",
			Cause:   err,
		}
	}
	return p.ParseSource(path, string(src))
}

// ParseSource parses interface description text. The filename is used only
// for error reporting.
func (p *Parser) ParseSource(filename, src string) (*models.UnitMetadata, error) {
	ast, err := p.grammar.ParseString(filename, src)
	if err != nil {
		line := 0
		if perr, ok := err.(participle.Error); ok {
			line = perr.Position().Line
		}
		return nil, models.NewSyntaxError(filename, line, err)
	}
	return p.lowerFile(filename, ast)
}

// lowerFile converts the parse tree into Interface Model metadata,
// validating structure and annotations along the way
func (p *Parser) lowerFile(filename string, ast *FileAST) (*models.UnitMetadata, error) {
	unit := &models.UnitMetadata{}

	for _, item := range ast.Items {
		doc, err := p.lowerDoc(filename, item.Pos.Line, item.Doc)
		if err != nil {
			return nil, err
		}

		switch {
		case item.Opaque != nil:
			if len(item.Annotations) > 0 {
				return nil, models.NewMalformedInputError(filename, item.Annotations[0].Pos.Line,
					"annotations are not valid on opaque type declarations")
			}
			unit.Opaques = append(unit.Opaques, models.OpaqueTypeMetadata{
				Name:     item.Opaque.Name,
				Doc:      doc,
				FileName: filename,
				Line:     item.Opaque.Pos.Line,
			})

		case item.Interface != nil:
			iface, err := p.lowerInterface(filename, item.Interface, doc, item.Annotations)
			if err != nil {
				return nil, err
			}
			unit.Interfaces = append(unit.Interfaces, *iface)

		case item.Function != nil:
			if len(item.Annotations) > 0 {
				return nil, models.NewMalformedInputError(filename, item.Annotations[0].Pos.Line,
					"annotations are not valid on top-level function declarations")
			}
			fn, err := p.lowerFunction(filename, item.Function, doc)
			if err != nil {
				return nil, err
			}
			unit.Functions = append(unit.Functions, *fn)
		}
	}

	return unit, nil
}

func (p *Parser) lowerInterface(filename string, decl *InterfaceAST, doc *models.DocComment, annos []*AnnotationAST) (*models.InterfaceMetadata, error) {
	iface := &models.InterfaceMetadata{
		Name:     decl.Name,
		Doc:      doc,
		FileName: filename,
		Line:     decl.Pos.Line,
	}

	for _, parsed := range resolveAll(p.registry, filename, annos) {
		if parsed.err != nil {
			return nil, parsed.err
		}
		switch parsed.annotation.Type {
		case annotations.WrappersAnnotation:
			iface.Prefix = parsed.annotation.StringParam("prefix")
			iface.ByValue = parsed.annotation.BoolParam("byValue")
		case annotations.OptionalAnnotation:
			return nil, models.NewMalformedInputError(filename, parsed.line,
				"@optional is only valid on methods, not on interface '%s'", decl.Name)
		}
	}

	seen := make(map[string]int)
	for _, methodDecl := range decl.Methods {
		method, err := p.lowerMethod(filename, methodDecl)
		if err != nil {
			return nil, err
		}
		if firstLine, dup := seen[method.Name]; dup {
			err := models.NewMalformedInputError(filename, method.Line,
				"duplicate method '%s' in interface '%s'", method.Name, decl.Name)
			err.Context = map[string]interface{}{"first_declared_line": firstLine}
			return nil, err
		}
		seen[method.Name] = method.Line
		iface.Methods = append(iface.Methods, *method)
	}

	return iface, nil
}

func (p *Parser) lowerMethod(filename string, decl *MethodAST) (*models.MethodMetadata, error) {
	doc, err := p.lowerDoc(filename, decl.Pos.Line, decl.Doc)
	if err != nil {
		return nil, err
	}

	method := &models.MethodMetadata{
		Name:     decl.Name,
		Doc:      doc,
		FileName: filename,
		Line:     decl.Pos.Line,
	}

	seenOptional := false
	for _, parsed := range resolveAll(p.registry, filename, decl.Annotations) {
		if parsed.err != nil {
			return nil, parsed.err
		}
		switch parsed.annotation.Type {
		case annotations.OptionalAnnotation:
			if seenOptional {
				return nil, models.NewMalformedInputError(filename, parsed.line,
					"duplicate @optional on method '%s'", decl.Name)
			}
			seenOptional = true
			method.Optional = true
		case annotations.WrappersAnnotation:
			return nil, models.NewMalformedInputError(filename, parsed.line,
				"@wrappers is only valid on interfaces, not on method '%s'", decl.Name)
		}
	}

	method.Params, err = p.lowerParams(filename, decl.Params)
	if err != nil {
		return nil, err
	}
	method.ReturnType, err = p.lowerReturn(filename, decl.Pos.Line, decl.Return)
	if err != nil {
		return nil, err
	}
	return method, nil
}

func (p *Parser) lowerFunction(filename string, decl *FuncAST, doc *models.DocComment) (*models.FunctionMetadata, error) {
	fn := &models.FunctionMetadata{
		Name:     decl.Name,
		Doc:      doc,
		FileName: filename,
		Line:     decl.Pos.Line,
	}

	var err error
	fn.Params, err = p.lowerParams(filename, decl.Params)
	if err != nil {
		return nil, err
	}
	fn.ReturnType, err = p.lowerReturn(filename, decl.Pos.Line, decl.Return)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *Parser) lowerParams(filename string, decls []*ParamAST) ([]models.ParamMetadata, error) {
	var params []models.ParamMetadata
	seen := make(map[string]bool)
	for _, decl := range decls {
		if seen[decl.Name] {
			return nil, models.NewMalformedInputError(filename, decl.Pos.Line,
				"duplicate parameter name '%s'", decl.Name)
		}
		seen[decl.Name] = true

		paramType, err := p.lowerType(filename, decl.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, models.ParamMetadata{Name: decl.Name, Type: paramType})
	}
	return params, nil
}

func (p *Parser) lowerReturn(filename string, line int, decl *TypeAST) (models.TypeRef, error) {
	// A missing return clause means the unit type
	if decl == nil {
		return models.BuiltinType(models.BuiltinUnit), nil
	}
	return p.lowerType(filename, decl)
}

func (p *Parser) lowerType(filename string, decl *TypeAST) (models.TypeRef, error) {
	if decl.Ref != nil {
		kind := models.RefBorrowed
		switch decl.Ref.Kind {
		case "mut":
			kind = models.RefMutable
		case "own":
			kind = models.RefOwned
		case "raw":
			kind = models.RefRaw
		}
		target, err := p.lowerType(filename, decl.Ref.Target)
		if err != nil {
			return models.TypeRef{}, err
		}
		return models.ReferenceType(target, kind, decl.Opt), nil
	}

	// The opt qualifier only makes sense on references, which carry the
	// ownership contract the optionality is defined against
	if decl.Opt {
		return models.TypeRef{}, models.NewMalformedInputError(filename, decl.Pos.Line,
			"'opt %s' is invalid: the opt qualifier requires a reference type", decl.Name)
	}

	if builtin, ok := models.ParseBuiltin(decl.Name); ok {
		return models.BuiltinType(builtin), nil
	}
	if fixed, ok := models.ParseFixedInt(decl.Name); ok {
		return fixed, nil
	}
	return models.NamedType(decl.Name), nil
}

func (p *Parser) lowerDoc(filename string, line int, raw *string) (*models.DocComment, error) {
	if raw == nil {
		return nil, nil
	}
	lines, err := CleanDocComment(*raw)
	if err != nil {
		return nil, models.NewMalformedInputError(filename, line, "%v", err)
	}
	if lines == nil {
		return nil, nil
	}
	return &models.DocComment{Lines: lines}, nil
}

// resolvedAnnotation pairs a schema-validated annotation with the line it
// was written on, or the error that invalidated it
type resolvedAnnotation struct {
	annotation *annotations.ParsedAnnotation
	line       int
	err        error
}

func resolveAll(registry annotations.AnnotationRegistry, filename string, annos []*AnnotationAST) []resolvedAnnotation {
	resolved := make([]resolvedAnnotation, 0, len(annos))
	for _, anno := range annos {
		loc := annotations.SourceLocation{
			File:   filename,
			Line:   anno.Pos.Line,
			Column: anno.Pos.Column,
		}

		args := make([]annotations.RawArg, 0, len(anno.Args))
		unquoteFailed := false
		for _, arg := range anno.Args {
			raw := annotations.RawArg{Name: arg.Name}
			if arg.Value != nil {
				value, err := strconv.Unquote(*arg.Value)
				if err != nil {
					resolved = append(resolved, resolvedAnnotation{
						line: anno.Pos.Line,
						err: models.NewMalformedInputError(filename, arg.Pos.Line,
							"invalid string literal in @%s", anno.Name),
					})
					unquoteFailed = true
					break
				}
				raw.Value = &value
			}
			args = append(args, raw)
		}
		if unquoteFailed {
			continue
		}

		parsed, err := annotations.Resolve(registry, anno.Name, args, loc)
		if err != nil {
			genErr := models.NewMalformedInputError(filename, anno.Pos.Line, "%v", err)
			genErr.Cause = err
			resolved = append(resolved, resolvedAnnotation{line: anno.Pos.Line, err: genErr})
			continue
		}
		resolved = append(resolved, resolvedAnnotation{annotation: parsed, line: anno.Pos.Line})
	}
	return resolved
}
