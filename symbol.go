// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Keywords lists the reserved words of Go.
var Keywords = map[string]bool{
	"break":       true,
	"case":        true,
	"chan":        true,
	"const":       true,
	"continue":    true,
	"default":     true,
	"defer":       true,
	"else":        true,
	"fallthrough": true,
	"for":         true,
	"func":        true,
	"go":          true,
	"goto":        true,
	"if":          true,
	"import":      true,
	"interface":   true,
	"map":         true,
	"package":     true,
	"range":       true,
	"return":      true,
	"select":      true,
	"struct":      true,
	"switch":      true,
	"type":        true,
	"var":         true,
}

// Operators and punctuation, longest first within every common prefix.
var operators = []string{
	"&^=", "...", "<<=", ">>=",
	"!=", "%=", "&&", "&=", "&^", "*=", "++", "+=", "--", "-=", "/=", ":=", "<-", "<<", "<=",
	"==", ">=", ">>", "^=", "|=", "||",
	"!", "%", "&", "*", "+", ",", "-", ".", "/", ":", ";", "<", "=", ">", "^", "|", "~",
}

// longestOperator returns the longest operator or punctuation s starts with,
// if any.
func longestOperator(s string) string {
	for _, v := range operators {
		if strings.HasPrefix(s, v) {
			return v
		}
	}
	return ""
}

func isIDFirst(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIDNext(r rune) bool  { return isIDFirst(r) || unicode.IsDigit(r) }

// identChars recognizes letters, digits and underscores starting with a letter
// or underscore, keywords included.
func identChars(s string) (string, string, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s, "", newError(s, Eof, "expected identifier")
	}

	if !isIDFirst(r) {
		return s, "", newError(s, NoMatch, "expected identifier")
	}

	i := n
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !isIDNext(r) {
			break
		}

		i += n
	}
	return s[i:], s[:i], nil
}

// identRaw is identChars rejecting keywords.
func identRaw(s string) (string, string, error) {
	rest, nm, err := identChars(s)
	if err != nil {
		return s, "", err
	}

	if Keywords[nm] {
		return s, "", newError(s, Keyword, "unexpected keyword %s", nm)
	}

	return rest, nm, nil
}

var (
	identifier     = terminated(Parser[string](identRaw), blanks)
	identContinues = satisfy(NoMatch, "identifier character", isIDNext)

	orOp    = opTable("||")
	andOp   = opTable("&&")
	relOp   = opTable("==", "!=", "<=", ">=", "<", ">")
	addOp   = opTable("+", "-", "|", "^")
	mulOp   = opTable("<<", ">>", "&^", "*", "/", "%", "&")
	unaryOp = opTable("<-", "+", "-", "!", "^", "*", "&")

	binaryOp = alt(orOp, andOp, relOp, addOp, mulOp)
)

// Reserved returns a parser of the keyword kw. The keyword must not be
// followed by an identifier character. Trailing blanks are consumed.
func Reserved(kw string) Parser[string] {
	return terminated(terminated(tag(kw), not(Not, identContinues)), Parser[string](blanks))
}

// Symbol returns a parser of text followed by optional blanks.
func Symbol(text string) Parser[string] {
	return terminated(tag(text), Parser[string](blanks))
}

// Identifier parses a Go identifier that is not a keyword and any blanks
// following it.
func Identifier(s string) (rest, name string, err error) { return identifier(s) }

// operator matches op only if op is the longest operator at the start of the
// input, so "<" never matches the prefix of "<=" or "<-".
func operator(op string) Parser[string] {
	return func(s string) (string, string, error) {
		if longestOperator(s) != op {
			return s, "", newError(s, Tag, "expected %q", op)
		}

		rest, _, _ := blanks(s[len(op):])
		return rest, s[:len(op)], nil
	}
}

func opTable(ops ...string) Parser[string] {
	var a []Parser[string]
	for _, v := range ops {
		a = append(a, operator(v))
	}
	if len(a) == 1 {
		return a[0]
	}

	return alt(a...)
}

// OrOp parses "||".
func OrOp(s string) (rest, op string, err error) { return orOp(s) }

// AndOp parses "&&".
func AndOp(s string) (rest, op string, err error) { return andOp(s) }

// RelOp parses one of == != <= >= < >.
func RelOp(s string) (rest, op string, err error) { return relOp(s) }

// AddOp parses one of + - | ^.
func AddOp(s string) (rest, op string, err error) { return addOp(s) }

// MulOp parses one of << >> &^ * / % &.
func MulOp(s string) (rest, op string, err error) { return mulOp(s) }

// UnaryOp parses one of <- + - ! ^ * &.
func UnaryOp(s string) (rest, op string, err error) { return unaryOp(s) }

// Precedence returns the binding strength of the binary operator op, from 5
// for multiplicative operators down to 1 for "||", or 0 if op is not a binary
// operator.
func Precedence(op string) int {
	switch op {
	case "*", "/", "%", "<<", ">>", "&", "&^":
		return 5
	case "+", "-", "|", "^":
		return 4
	case "==", "!=", "<", "<=", ">", ">=":
		return 3
	case "&&":
		return 2
	case "||":
		return 1
	}
	return 0
}
