// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"strings"
	"unicode/utf8"
)

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool    { return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' }
func isOctalDigit(c byte) bool  { return c >= '0' && c <= '7' }

func digit(name string, f func(byte) bool) Parser[rune] {
	return func(s string) (string, rune, error) {
		if s == "" || !f(s[0]) {
			return s, 0, newError(s, Digit, "expected %s digit", name)
		}

		return s[1:], rune(s[0]), nil
	}
}

// digits recognizes one or more digits, allowing a single underscore between
// any two of them.
func digits(d Parser[rune]) Parser[string] {
	return terminated(
		recognize(preceded(d, many0(preceded(opt(tag("_")), d)))),
		not(Underscore, tag("_")),
	)
}

var (
	binaryDigit  = digit("binary", isBinaryDigit)
	decimalDigit = digit("decimal", isDigit)
	hexDigit     = digit("hexadecimal", isHexDigit)
	octalDigit   = digit("octal", isOctalDigit)

	binaryDigits  = digits(binaryDigit)
	decimalDigits = digits(decimalDigit)
	hexDigits     = digits(hexDigit)
	octalDigits   = digits(octalDigit)

	binaryLit = seq(tag("0"), recognize(oneOf("bB")), opt(tag("_")), binaryDigits)
	hexLit    = seq(tag("0"), recognize(oneOf("xX")), opt(tag("_")), hexDigits)
	octalLit  = seq(tag("0"), opt(recognize(oneOf("oO"))), opt(tag("_")), octalDigits)

	prefixedIntLit = alt(
		mapP(hexLit, func(s string) IntLit { return IntLit{Kind: HexLit, Src: s} }),
		mapP(binaryLit, func(s string) IntLit { return IntLit{Kind: BinaryLit, Src: s} }),
		mapP(octalLit, func(s string) IntLit { return IntLit{Kind: OctalLit, Src: s} }),
	)

	runeLit = mapP(delimited(tag("'"), Parser[rune](runeChar), tag("'")), func(r rune) RuneLit { return RuneLit{Char: r} })

	stringLit = alt(Parser[StringLit](interpretedStringLit), rawStringLit)

	literal = terminated(alt(
		Parser[Literal](intLiteral),
		mapP(runeLit, func(r RuneLit) Literal { return r }),
		mapP(stringLit, func(s StringLit) Literal { return s }),
	), blanks)
)

// DecimalDigit parses one of 0-9.
func DecimalDigit(s string) (rest string, r rune, err error) { return decimalDigit(s) }

// BinaryDigit parses one of 0-1.
func BinaryDigit(s string) (rest string, r rune, err error) { return binaryDigit(s) }

// OctalDigit parses one of 0-7.
func OctalDigit(s string) (rest string, r rune, err error) { return octalDigit(s) }

// HexDigit parses one of 0-9, a-f, A-F.
func HexDigit(s string) (rest string, r rune, err error) { return hexDigit(s) }

// DecimalDigits parses a run of decimal digits with optional single
// underscores between the digits.
func DecimalDigits(s string) (rest, src string, err error) { return decimalDigits(s) }

// BinaryDigits is like DecimalDigits for binary digits.
func BinaryDigits(s string) (rest, src string, err error) { return binaryDigits(s) }

// OctalDigits is like DecimalDigits for octal digits.
func OctalDigits(s string) (rest, src string, err error) { return octalDigits(s) }

// HexDigits is like DecimalDigits for hexadecimal digits.
func HexDigits(s string) (rest, src string, err error) { return hexDigits(s) }

// DecimalLitSrc parses
//
//	decimal_lit = "0" | ( "1" … "9" ) [ [ "_" ] decimal_digits ] .
//
// A literal "0" followed by a digit or an underscore is rejected with
// LeadingZero, such literals are octal.
func DecimalLitSrc(s string) (rest, src string, err error) { return decimalLit(s) }

func decimalLit(s string) (rest, src string, err error) {
	switch {
	case s == "" || !isDigit(s[0]):
		return s, "", newError(s, Digit, "expected decimal digit")
	case s[0] == '0':
		rest = s[1:]
		if rest != "" && (isDigit(rest[0]) || rest[0] == '_') {
			return s, "", newError(rest, LeadingZero, "decimal literal with a leading zero")
		}

		return rest, s[:1], nil
	}

	rest = s[1:]
	switch r, _, err := preceded(opt(tag("_")), decimalDigits)(rest); {
	case err == nil:
		rest = r
	case err.(*Error).Kind == Underscore:
		return s, "", err
	}
	if strings.HasPrefix(rest, "_") {
		return s, "", newError(rest, Underscore, "'_' must separate successive digits")
	}

	return rest, s[:len(s)-len(rest)], nil
}

// BinaryLitSrc parses
//
//	binary_lit = "0" ( "b" | "B" ) [ "_" ] binary_digits .
func BinaryLitSrc(s string) (rest, src string, err error) { return binaryLit(s) }

// OctalLitSrc parses
//
//	octal_lit = "0" [ "o" | "O" ] [ "_" ] octal_digits .
func OctalLitSrc(s string) (rest, src string, err error) { return octalLit(s) }

// HexLitSrc parses
//
//	hex_lit = "0" ( "x" | "X" ) [ "_" ] hex_digits .
func HexLitSrc(s string) (rest, src string, err error) { return hexLit(s) }

// ParseIntLit parses an integer literal. Hexadecimal, binary and octal forms
// are tried before the decimal one as they all share the "0" prefix.
func ParseIntLit(s string) (rest string, n IntLit, err error) { return intLit(s) }

// intLit falls back to a decimal literal only if no prefixed form got past
// the leading "0", so "0x" or "0b_1" fail instead of producing "0".
func intLit(s string) (rest string, n IntLit, err error) {
	if rest, n, err = prefixedIntLit(s); err == nil {
		return rest, n, nil
	}

	e := err.(*Error)
	if e.Offset(s) > 1 {
		return s, IntLit{}, e
	}

	var src string
	if rest, src, err = decimalLit(s); err != nil {
		return s, IntLit{}, further(err.(*Error), e)
	}

	return rest, IntLit{Kind: DecimalLit, Src: src}, nil
}

// intLiteral is ParseIntLit rejecting the floating-point and imaginary forms
// it would otherwise leave as trailing input.
func intLiteral(s string) (rest string, n Literal, err error) {
	rest, lit, err := intLit(s)
	if err != nil {
		return s, nil, err
	}

	if rest != "" {
		switch c := rest[0]; {
		case c == '.':
			return s, nil, newError(rest, NotSupported, "floating-point literals")
		case c == 'i':
			return s, nil, newError(rest, NotSupported, "imaginary literals")
		case lit.Kind == HexLit && (c == 'p' || c == 'P'):
			return s, nil, newError(rest, NotSupported, "hexadecimal floating-point literals")
		case (lit.Kind == DecimalLit || lit.Kind == OctalLit) && (c == 'e' || c == 'E'):
			return s, nil, newError(rest, NotSupported, "floating-point literals")
		}
	}
	return rest, lit, nil
}

func runeChar(s string) (string, rune, error) {
	if s == "" {
		return s, 0, newError(s, Eof, "rune literal not terminated")
	}

	switch s[0] {
	case '\\':
		return s, 0, newError(s, NotSupported, "escape sequences")
	case '\n':
		return s, 0, newError(s, NoMatch, "rune literal not terminated")
	case '\'':
		return s, 0, newError(s, NoMatch, "empty rune literal")
	}

	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return s, 0, newError(s, NoMatch, "invalid UTF-8 encoding")
	}

	return s[n:], r, nil
}

// ParseRune parses a rune literal consisting of exactly one character between
// single quotes.
func ParseRune(s string) (rest string, r RuneLit, err error) { return runeLit(s) }

func interpretedStringLit(s string) (string, StringLit, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, StringLit{}, newError(s, Tag, "expected %q", `"`)
	}

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '"':
			return s[i+1:], StringLit{Src: s[:i+1]}, nil
		case '\\':
			return s, StringLit{}, newError(s[i:], NotSupported, "escape sequences")
		case '\n':
			return s, StringLit{}, newError(s[i:], NoMatch, "string literal not terminated")
		}
	}
	return s, StringLit{}, newError(s[len(s):], Eof, "string literal not terminated")
}

func rawStringLit(s string) (string, StringLit, error) {
	if !strings.HasPrefix(s, "`") {
		return s, StringLit{}, newError(s, Tag, "expected %q", "`")
	}

	x := strings.IndexByte(s[1:], '`')
	if x < 0 {
		return s, StringLit{}, newError(s[len(s):], Eof, "raw string literal not terminated")
	}

	return s[x+2:], StringLit{Src: s[:x+2]}, nil
}

// ParseStringLit parses an interpreted or a raw string literal.
func ParseStringLit(s string) (rest string, lit StringLit, err error) { return stringLit(s) }

// ParseLiteral parses an integer, rune or string literal and any blanks
// following it.
func ParseLiteral(s string) (rest string, lit Literal, err error) { return literal(s) }
