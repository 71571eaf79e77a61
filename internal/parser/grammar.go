package parser

import "github.com/alecthomas/participle/v2/lexer"

// The grammar below mirrors the interface description language:
// doc comments and @annotations prefix a declaration, declarations are
// opaque types, interfaces or top-level functions, and types are either
// plain names or &-references with an ownership keyword.

// FileAST is the root of one parsed source file
type FileAST struct {
	Pos   lexer.Position
	Items []*ItemAST `parser:"@@*"`
}

// ItemAST is one top-level declaration with its attached documentation
// and annotations
type ItemAST struct {
	Pos         lexer.Position
	Doc         *string          `parser:"@DocComment?"`
	Annotations []*AnnotationAST `parser:"@@*"`
	Opaque      *OpaqueAST       `parser:"( @@"`
	Interface   *InterfaceAST    `parser:"| @@"`
	Function    *FuncAST         `parser:"| @@ )"`
}

// AnnotationAST is an @name(arg, key="value") directive
type AnnotationAST struct {
	Pos  lexer.Position
	Name string    `parser:"'@' @Ident"`
	Args []*ArgAST `parser:"( '(' @@ ( ',' @@ )* ')' )?"`
}

// ArgAST is one annotation argument: a bare flag or a key="value" pair
type ArgAST struct {
	Pos   lexer.Position
	Name  string  `parser:"@Ident"`
	Value *string `parser:"( '=' @String )?"`
}

// OpaqueAST is an `opaque type Name;` declaration
type OpaqueAST struct {
	Pos  lexer.Position
	Name string `parser:"'opaque' 'type' @Ident ';'"`
}

// InterfaceAST is an `interface Name { ... }` declaration
type InterfaceAST struct {
	Pos     lexer.Position
	Name    string       `parser:"'interface' @Ident '{'"`
	Methods []*MethodAST `parser:"@@* '}'"`
}

// MethodAST is a `fun name(params): type;` declaration inside an
// interface body
type MethodAST struct {
	Pos         lexer.Position
	Doc         *string          `parser:"@DocComment?"`
	Annotations []*AnnotationAST `parser:"@@*"`
	Name        string           `parser:"'fun' @Ident '('"`
	Params      []*ParamAST      `parser:"( @@ ( ',' @@ )* )? ')'"`
	Return      *TypeAST         `parser:"( ':' @@ )? ';'"`
}

// FuncAST is a top-level `fun name(params): type;` declaration, emitted
// as a plain prototype
type FuncAST struct {
	Pos    lexer.Position
	Name   string      `parser:"'fun' @Ident '('"`
	Params []*ParamAST `parser:"( @@ ( ',' @@ )* )? ')'"`
	Return *TypeAST    `parser:"( ':' @@ )? ';'"`
}

// ParamAST is a `name: type` parameter declaration
type ParamAST struct {
	Pos  lexer.Position
	Name string   `parser:"@Ident ':'"`
	Type *TypeAST `parser:"@@"`
}

// TypeAST is a type expression: an optional `opt` qualifier followed by
// either a reference or a plain type name
type TypeAST struct {
	Pos  lexer.Position
	Opt  bool    `parser:"@'opt'?"`
	Ref  *RefAST `parser:"( @@"`
	Name string  `parser:"| @Ident )"`
}

// RefAST is a &-reference with an optional ownership keyword
type RefAST struct {
	Pos    lexer.Position
	Kind   string   `parser:"'&' @( 'mut' | 'own' | 'raw' )?"`
	Target *TypeAST `parser:"@@"`
}
