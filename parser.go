// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"strings"
)

var (
	comma        = Symbol(",")
	dot          = Symbol(".")
	ellipsis     = Symbol("...")
	lparen       = Symbol("(")
	rparen       = Symbol(")")
	kwFunc       = Reserved("func")
	kwImport     = Reserved("import")
	kwPackage    = Reserved("package")
	semicolon    = Symbol(";")
	importAlias  = alt(identifier, dot)
	commaIdent   = preceded(comma, identifier)
	optionalDots = opt(ellipsis)
)

// ParseQualifiedIdent parses
//
//	QualifiedIdent = PackageName "." identifier .
//
// No white space may appear between the package name and the dot.
func ParseQualifiedIdent(s string) (rest string, n QualifiedIdent, err error) {
	var pkg, nm string
	if rest, pkg, err = identRaw(s); err != nil {
		return s, n, err
	}

	if rest, _, err = dot(rest); err != nil {
		return s, n, err
	}

	if rest, nm, err = identifier(rest); err != nil {
		return s, n, err
	}

	return rest, QualifiedIdent{PackageName: pkg, Identifier: nm}, nil
}

// ParseOperandName parses a qualified identifier or, if that fails, an
// identifier.
func ParseOperandName(s string) (rest string, n OperandName, err error) {
	var q QualifiedIdent
	rest, q, err = ParseQualifiedIdent(s)
	if err == nil {
		return rest, q, nil
	}

	e := err.(*Error)
	var nm string
	if rest, nm, err = identifier(s); err != nil {
		return s, nil, further(e, err.(*Error))
	}

	return rest, Ident{Name: nm}, nil
}

// ParseOperand parses
//
//	Operand = Literal | OperandName | "(" Expression ")" .
func ParseOperand(s string) (rest string, n Operand, err error) {
	return alt(
		mapP(Parser[Literal](ParseLiteral), func(n Literal) Operand { return n }),
		mapP(Parser[OperandName](ParseOperandName), func(n OperandName) Operand { return n }),
		mapP(Parser[*ParenExpr](parseParenExpr), func(n *ParenExpr) Operand { return n }),
	)(s)
}

func parseParenExpr(s string) (rest string, n *ParenExpr, err error) {
	if rest, _, err = lparen(s); err != nil {
		return s, nil, err
	}

	var x Expression
	if rest, x, err = ParseExpression(rest); err != nil {
		return s, nil, err
	}

	if rest, _, err = rparen(rest); err != nil {
		return s, nil, err
	}

	return rest, &ParenExpr{X: x}, nil
}

// ParsePrimaryExpr parses
//
//	PrimaryExpr = Operand .
func ParsePrimaryExpr(s string) (rest string, n PrimaryExpr, err error) {
	var op Operand
	if rest, op, err = ParseOperand(s); err != nil {
		return s, nil, err
	}

	return rest, op, nil
}

// ParseUnaryExpr parses
//
//	UnaryExpr = PrimaryExpr | unary_op UnaryExpr .
//
// The operator form is tried first.
func ParseUnaryExpr(s string) (rest string, n UnaryExpr, err error) {
	return alt(
		mapP(Parser[*Unary](ParseUnary), func(n *Unary) UnaryExpr { return n }),
		mapP(Parser[PrimaryExpr](ParsePrimaryExpr), func(n PrimaryExpr) UnaryExpr { return n }),
	)(s)
}

// ParseUnary parses a unary operator followed by a UnaryExpr.
func ParseUnary(s string) (rest string, n *Unary, err error) {
	var op string
	if rest, op, err = unaryOp(s); err != nil {
		return s, nil, err
	}

	var x UnaryExpr
	if rest, x, err = ParseUnaryExpr(rest); err != nil {
		return s, nil, err
	}

	return rest, &Unary{Op: op, Expr: x}, nil
}

// ParseExpression parses
//
//	Expression = UnaryExpr | Expression binary_op Expression .
//
// Binary operators associate to the left and bind according to Precedence.
func ParseExpression(s string) (rest string, n Expression, err error) {
	return binaryExpr(s, 1)
}

func binaryExpr(s string, prec int) (rest string, n Expression, err error) {
	var x UnaryExpr
	if rest, x, err = ParseUnaryExpr(s); err != nil {
		return s, nil, err
	}

	n = x
	for {
		r, op, err := binaryOp(rest)
		if err != nil {
			return rest, n, nil
		}

		p := Precedence(op)
		if p < prec {
			return rest, n, nil
		}

		r, y, err := binaryExpr(r, p+1)
		if err != nil {
			return s, nil, err
		}

		rest, n = r, &BinExpr{Left: n, Op: op, Right: y}
	}
}

// ParsePackageClause parses
//
//	PackageClause = "package" PackageName .
func ParsePackageClause(s string) (rest string, n *Pkg, err error) {
	if rest, _, err = kwPackage(s); err != nil {
		return s, nil, err
	}

	var nm string
	if rest, nm, err = identifier(rest); err != nil {
		return s, nil, err
	}

	return rest, &Pkg{Name: nm}, nil
}

// ParseImportDecl parses
//
//	ImportDecl = "import" ( ImportSpec | "(" { ImportSpec ";" } ")" ) .
//
// Within the parentheses the specifications may be separated by semicolons
// or newlines and may be interleaved with comments.
func ParseImportDecl(s string) (rest string, n *Import, err error) {
	if rest, _, err = kwImport(s); err != nil {
		return s, nil, err
	}

	if r, _, err := lparen(rest); err == nil {
		if rest, n, err = importGroup(r); err != nil {
			return s, nil, err
		}

		return rest, n, nil
	}

	var spec ImportDeclaration
	if rest, spec, err = parseImportSpec(rest); err != nil {
		return s, nil, err
	}

	return rest, &Import{Specs: []ImportDeclaration{spec}}, nil
}

func importGroup(s string) (rest string, n *Import, err error) {
	n = &Import{Grouped: true}
	rest = s
	for {
		if rest, _, err = spacing(rest); err != nil {
			return s, nil, err
		}

		if r, _, err := rparen(rest); err == nil {
			return r, n, nil
		}

		var spec ImportDeclaration
		if rest, spec, err = parseImportSpec(rest); err != nil {
			return s, nil, err
		}

		n.Specs = append(n.Specs, spec)
		r, sp, err := spacing(rest)
		if err != nil {
			return s, nil, err
		}

		switch {
		case r == "":
			return s, nil, newError(r, Eof, "expected %q", ")")
		case r[0] == ')' || strings.Contains(sp, "\n"):
			rest = r
		default:
			if rest, _, err = semicolon(r); err != nil {
				return s, nil, newError(r, NoMatch, "expected ';', newline or ')' after import specification")
			}
		}
	}
}

// skipLineComment skips blanks and a line comment, if any, up to but
// excluding the terminating newline.
func skipLineComment(s string) string {
	s, _, _ = blanks(s)
	if len(s) > 1 && s[0] == '/' && s[1] == '/' {
		for i := 2; i < len(s); i++ {
			if s[i] == '\n' {
				return s[i:]
			}
		}
		return ""
	}

	return s
}

func parseImportSpec(s string) (rest string, n ImportDeclaration, err error) {
	rest, n.Alias, _ = opt(importAlias)(s)
	var path StringLit
	if rest, path, err = stringLit(rest); err != nil {
		return s, n, err
	}

	rest, _, _ = blanks(rest)
	n.Path = path.Text()
	return rest, n, nil
}

// ParseFunctionDecl parses
//
//	FunctionDecl = "func" FunctionName Parameters Result .
//
// Result is a single predeclared type. Function bodies are not supported.
func ParseFunctionDecl(s string) (rest string, n *Function, err error) {
	if rest, _, err = kwFunc(s); err != nil {
		return s, nil, err
	}

	n = &Function{}
	if rest, n.Name, err = identifier(rest); err != nil {
		return s, nil, err
	}

	if rest, n.Params, err = ParseParameters(rest); err != nil {
		return s, nil, err
	}

	if rest, n.Ret, err = ParseGoType(rest); err != nil {
		return s, nil, err
	}

	return rest, n, nil
}

// ParseParameters parses
//
//	Parameters = "(" [ ParameterList [ "," ] ] ")" .
func ParseParameters(s string) (rest string, n Parameters, err error) {
	if rest, _, err = lparen(s); err != nil {
		return s, n, err
	}

	if r, _, err := rparen(rest); err == nil {
		return r, n, nil
	}

	if rest, n.List, err = ParseParameterList(rest); err != nil {
		return s, n, err
	}

	rest, _, _ = opt(comma)(rest)
	var r string
	if r, _, err = rparen(rest); err != nil {
		// Report a malformed declaration after a comma rather than the
		// missing parenthesis.
		if _, _, e := ParseParameterDecl(rest); e != nil {
			err = further(err.(*Error), e.(*Error))
		}
		return s, Parameters{}, err
	}

	return r, n, nil
}

// ParseParameterList parses
//
//	ParameterList = ParameterDecl { "," ParameterDecl } .
//
// A comma not followed by a parameter declaration is left in rest.
func ParseParameterList(s string) (rest string, n ParameterList, err error) {
	var p ParameterDecl
	if rest, p, err = ParseParameterDecl(s); err != nil {
		return s, nil, err
	}

	n = append(n, p)
	for {
		r, _, err := comma(rest)
		if err != nil {
			return rest, n, nil
		}

		if r, p, err = ParseParameterDecl(r); err != nil {
			return rest, n, nil
		}

		rest = r
		n = append(n, p)
	}
}

// ParseParameterDecl parses
//
//	ParameterDecl = [ IdentifierList ] [ "..." ] Type .
//
// When the identifier list is not followed by a type, the declaration is
// parsed again as a lone type, so "(int, string)" declares two unnamed
// parameters.
func ParseParameterDecl(s string) (rest string, n ParameterDecl, err error) {
	var named *Error
	if r, ids, e := ParseIdentifierList(s); e == nil {
		r, dots, _ := optionalDots(r)
		var t GoType
		if r, t, e = ParseGoType(r); e == nil {
			return r, ParameterDecl{Identifiers: ids, IsVariadic: dots != "", Type: t}, nil
		}

		named = e.(*Error)
	}

	var dots string
	rest, dots, _ = optionalDots(s)
	if rest, n.Type, err = ParseGoType(rest); err != nil {
		return s, ParameterDecl{}, further(named, err.(*Error))
	}

	n.IsVariadic = dots != ""
	return rest, n, nil
}

// ParseIdentifierList parses
//
//	IdentifierList = identifier { "," identifier } .
func ParseIdentifierList(s string) (rest string, n []string, err error) {
	var nm string
	if rest, nm, err = identifier(s); err != nil {
		return s, nil, err
	}

	var a []string
	rest, a, err = many0(commaIdent)(rest)
	if err != nil {
		return s, nil, err
	}

	return rest, append([]string{nm}, a...), nil
}
