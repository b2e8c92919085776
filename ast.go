// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"fmt"
	"strings"
)

var (
	_ = []Node{
		(*BinExpr)(nil),
		(*Function)(nil),
		(*Import)(nil),
		(*ParenExpr)(nil),
		(*Pkg)(nil),
		(*Unary)(nil),
		FloatLit{},
		Ident{},
		ImaginaryLit{},
		ImportDeclaration{},
		IntLit{},
		ParameterDecl{},
		Parameters{},
		QualifiedIdent{},
		RuneLit{},
		StringLit{},
	}

	_ = []Literal{FloatLit{}, ImaginaryLit{}, IntLit{}, RuneLit{}, StringLit{}}
	_ = []OperandName{Ident{}, QualifiedIdent{}}
	_ = []Operand{(*ParenExpr)(nil)}
	_ = []UnaryExpr{(*Unary)(nil)}
	_ = []Expression{(*BinExpr)(nil)}
	_ = []TopLevel{(*Function)(nil), (*Import)(nil), (*Pkg)(nil)}
)

// Node is an item of the AST. String returns n in Go syntax with every
// binary expression parenthesized.
type Node interface {
	String() string
}

// Expression is a Node representing
//
//	Expression = UnaryExpr | Expression binary_op Expression .
type Expression interface {
	Node
	isExpression()
}

// UnaryExpr is an Expression representing
//
//	UnaryExpr = PrimaryExpr | unary_op UnaryExpr .
type UnaryExpr interface {
	Expression
	isUnaryExpr()
}

// PrimaryExpr is a UnaryExpr representing
//
//	PrimaryExpr = Operand .
type PrimaryExpr interface {
	UnaryExpr
	isPrimaryExpr()
}

// Operand is a PrimaryExpr representing
//
//	Operand = Literal | OperandName | "(" Expression ")" .
type Operand interface {
	PrimaryExpr
	isOperand()
}

// Literal is an Operand representing one of IntLit, FloatLit, ImaginaryLit,
// RuneLit or StringLit.
type Literal interface {
	Operand
	isLiteral()
}

// OperandName is an Operand representing
//
//	OperandName = identifier | QualifiedIdent .
type OperandName interface {
	Operand
	isOperandName()
}

// TopLevel is a Node representing a package clause, an import declaration or
// a function declaration.
type TopLevel interface {
	Node
	isTopLevel()
}

type exprNode struct{}

func (exprNode) isExpression() {}

type unaryExprNode struct{ exprNode }

func (unaryExprNode) isUnaryExpr() {}

type primaryExprNode struct{ unaryExprNode }

func (primaryExprNode) isPrimaryExpr() {}

type operandNode struct{ primaryExprNode }

func (operandNode) isOperand() {}

type literalNode struct{ operandNode }

func (literalNode) isLiteral() {}

type operandNameNode struct{ operandNode }

func (operandNameNode) isOperandName() {}

type topLevelNode struct{}

func (topLevelNode) isTopLevel() {}

// IntKind is the base of an integer literal.
type IntKind int

// Values of type IntKind.
const (
	DecimalLit IntKind = iota // decimal
	BinaryLit                 // binary
	OctalLit                  // octal
	HexLit                    // hexadecimal
)

// IntLit is an integer literal. Src is the literal as it appears in the
// source, including any prefix and underscores.
type IntLit struct {
	literalNode
	Kind IntKind
	Src  string
}

// String implements Node.
func (n IntLit) String() string { return n.Src }

// FloatLit is a floating-point literal. Such literals are not yet supported
// and parsing one fails with NotSupported.
type FloatLit struct {
	literalNode
	Src string
}

// String implements Node.
func (n FloatLit) String() string { return n.Src }

// ImaginaryLit is an imaginary literal. Such literals are not yet supported
// and parsing one fails with NotSupported.
type ImaginaryLit struct {
	literalNode
	Src string
}

// String implements Node.
func (n ImaginaryLit) String() string { return n.Src }

// RuneLit is a rune literal.
type RuneLit struct {
	literalNode
	Char rune
}

// String implements Node.
func (n RuneLit) String() string { return fmt.Sprintf("%q", n.Char) }

// StringLit is an interpreted or raw string literal. Src includes the
// delimiters.
type StringLit struct {
	literalNode
	Src string
}

// String implements Node.
func (n StringLit) String() string { return n.Src }

// Raw reports whether n is a raw string literal.
func (n StringLit) Raw() bool { return strings.HasPrefix(n.Src, "`") }

// Text returns the text between the delimiters of n.
func (n StringLit) Text() string {
	if len(n.Src) < 2 {
		return ""
	}

	return n.Src[1 : len(n.Src)-1]
}

// Ident is an identifier used as an operand.
type Ident struct {
	operandNameNode
	Name string
}

// String implements Node.
func (n Ident) String() string { return n.Name }

// QualifiedIdent is an identifier qualified with a package name.
//
//	QualifiedIdent = PackageName "." identifier .
type QualifiedIdent struct {
	operandNameNode
	PackageName string
	Identifier  string
}

// String implements Node.
func (n QualifiedIdent) String() string { return n.PackageName + "." + n.Identifier }

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	operandNode
	X Expression
}

// String implements Node.
func (n *ParenExpr) String() string { return "(" + n.X.String() + ")" }

// Unary is a unary operator applied to its operand.
type Unary struct {
	unaryExprNode
	Op   string
	Expr UnaryExpr
}

// String implements Node.
func (n *Unary) String() string { return n.Op + n.Expr.String() }

// BinExpr is a binary expression.
type BinExpr struct {
	exprNode
	Left  Expression
	Op    string
	Right Expression
}

// String implements Node.
func (n *BinExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

// Pkg is a package clause.
//
//	PackageClause = "package" PackageName .
type Pkg struct {
	topLevelNode
	Name string
}

// String implements Node.
func (n *Pkg) String() string { return "package " + n.Name }

// ImportDeclaration is an import specification. Alias is empty if not
// present, Path is the text of the import path literal.
//
//	ImportSpec = [ "." | PackageName ] ImportPath .
type ImportDeclaration struct {
	Alias string
	Path  string
}

// String implements Node.
func (n ImportDeclaration) String() string {
	if n.Alias != "" {
		return fmt.Sprintf("%s %q", n.Alias, n.Path)
	}

	return fmt.Sprintf("%q", n.Path)
}

// Import is an import declaration.
//
//	ImportDecl = "import" ( ImportSpec | "(" { ImportSpec ";" } ")" ) .
type Import struct {
	topLevelNode
	Specs   []ImportDeclaration
	Grouped bool
}

// String implements Node.
func (n *Import) String() string {
	if !n.Grouped && len(n.Specs) == 1 {
		return "import " + n.Specs[0].String()
	}

	var a []string
	for _, v := range n.Specs {
		a = append(a, v.String())
	}
	return "import (" + strings.Join(a, "; ") + ")"
}

// ParameterDecl declares one or more parameters of the same type.
//
//	ParameterDecl = [ IdentifierList ] [ "..." ] Type .
type ParameterDecl struct {
	Identifiers []string
	IsVariadic  bool
	Type        GoType
}

// String implements Node.
func (n ParameterDecl) String() string {
	var b strings.Builder
	if len(n.Identifiers) != 0 {
		b.WriteString(strings.Join(n.Identifiers, ", "))
		b.WriteByte(' ')
	}
	if n.IsVariadic {
		b.WriteString("...")
	}
	b.WriteString(n.Type.String())
	return b.String()
}

// ParameterList is a list of parameter declarations in source order.
type ParameterList []ParameterDecl

// Parameters are the parameters of a function. List is nil for "()".
//
//	Parameters = "(" [ ParameterList [ "," ] ] ")" .
type Parameters struct {
	List ParameterList
}

// String implements Node.
func (n Parameters) String() string {
	var a []string
	for _, v := range n.List {
		a = append(a, v.String())
	}
	return "(" + strings.Join(a, ", ") + ")"
}

// Function is a function declaration without a body.
//
//	FunctionDecl = "func" FunctionName Parameters Result .
type Function struct {
	topLevelNode
	Name   string
	Params Parameters
	Ret    GoType
}

// String implements Node.
func (n *Function) String() string {
	return fmt.Sprintf("func %s%s %s", n.Name, n.Params, n.Ret)
}
