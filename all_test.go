// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

var (
	oRE  = flag.String("re", "", "")
	oTrc = flag.Bool("trc", false, "")

	re *regexp.Regexp
)

func TestMain(m *testing.M) {
	flag.BoolVar(&extendedErrors, "exterr", false, "")
	flag.Parse()
	if s := *oRE; s != "" {
		re = regexp.MustCompile(s)
	}

	os.Exit(m.Run())
}

// diff returns a unified diff of got and expected or "" if they are equal.
func diff(got, expected string) string {
	if got == expected {
		return ""
	}

	s, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(got),
		FromFile: "expected",
		ToFile:   "got",
		Context:  1,
	})
	if err != nil {
		return err.Error()
	}

	return s
}

// errKind returns the kind of err, which must be an *Error.
func errKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, expected *Error", err)
	}

	return e.Kind
}

const ok = -1

func TestDigit(t *testing.T) {
	for i, v := range []struct {
		f    func(string) (string, rune, error)
		in   string
		rest string
		r    rune
		err  ErrorKind
	}{
		{DecimalDigit, "7x", "x", '7', ok},
		{DecimalDigit, "0", "", '0', ok},
		{DecimalDigit, "a", "", 0, Digit},
		{DecimalDigit, "", "", 0, Digit},
		{BinaryDigit, "10", "0", '1', ok},
		{BinaryDigit, "2", "", 0, Digit},
		{OctalDigit, "7", "", '7', ok},
		{OctalDigit, "8", "", 0, Digit},
		{HexDigit, "f", "", 'f', ok},
		{HexDigit, "F0", "0", 'F', ok},
		{HexDigit, "g", "", 0, Digit},
	} {
		rest, r, err := v.f(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success", i, v.in)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v", i, v.in, g, e)
			}
			if rest != v.in {
				t.Errorf("#%d: %q: consumed input on failure", i, v.in)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
		if g, e := r, v.r; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
	}
}

func TestDigits(t *testing.T) {
	for i, v := range []struct {
		f    func(string) (string, string, error)
		in   string
		rest string
		src  string
		err  ErrorKind
	}{
		{DecimalDigits, "123", "", "123", ok},
		{DecimalDigits, "1_000", "", "1_000", ok},
		{DecimalDigits, "1_0_0", "", "1_0_0", ok},
		{DecimalDigits, "12a", "a", "12", ok},
		{DecimalDigits, "12 ", " ", "12", ok},
		{DecimalDigits, "", "", "", Digit},
		{DecimalDigits, "_1", "", "", Digit},
		{DecimalDigits, "1_", "", "", Underscore},
		{DecimalDigits, "12_", "", "", Underscore},
		{DecimalDigits, "1__0", "", "", Underscore},
		{BinaryDigits, "1012", "2", "101", ok},
		{BinaryDigits, "1_0", "", "1_0", ok},
		{BinaryDigits, "2", "", "", Digit},
		{OctalDigits, "778", "8", "77", ok},
		{OctalDigits, "7_", "", "", Underscore},
		{HexDigits, "dead_BEEFg", "g", "dead_BEEF", ok},
		{HexDigits, "x", "", "", Digit},
	} {
		rest, src, err := v.f(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success", i, v.in)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v", i, v.in, g, e)
			}
			if rest != v.in {
				t.Errorf("#%d: %q: consumed input on failure", i, v.in)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := src, v.src; g != e {
			t.Errorf("#%d: got src %q, expected %q", i, g, e)
		}
	}
}

func TestLitSrc(t *testing.T) {
	for i, v := range []struct {
		f    func(string) (string, string, error)
		in   string
		rest string
		src  string
		err  ErrorKind
	}{
		{DecimalLitSrc, "0", "", "0", ok},
		{DecimalLitSrc, "0x", "x", "0", ok},
		{DecimalLitSrc, "42", "", "42", ok},
		{DecimalLitSrc, "1_000", "", "1_000", ok},
		{DecimalLitSrc, "9_9 + 1", " + 1", "9_9", ok},
		{DecimalLitSrc, "0123", "", "", LeadingZero},
		{DecimalLitSrc, "00", "", "", LeadingZero},
		{DecimalLitSrc, "0_1", "", "", LeadingZero},
		{DecimalLitSrc, "1_", "", "", Underscore},
		{DecimalLitSrc, "1__2", "", "", Underscore},
		{DecimalLitSrc, "10_", "", "", Underscore},
		{DecimalLitSrc, "x", "", "", Digit},

		{BinaryLitSrc, "0b1010", "", "0b1010", ok},
		{BinaryLitSrc, "0B_1", "", "0B_1", ok},
		{BinaryLitSrc, "0b", "", "", Digit},
		{BinaryLitSrc, "0b__1", "", "", Digit},
		{BinaryLitSrc, "01", "", "", OneOf},

		{OctalLitSrc, "0o17", "", "0o17", ok},
		{OctalLitSrc, "017", "", "017", ok},
		{OctalLitSrc, "0O_7", "", "0O_7", ok},
		{OctalLitSrc, "0_7", "", "0_7", ok},
		{OctalLitSrc, "0o8", "", "", Digit},

		{HexLitSrc, "0xBadFace", "", "0xBadFace", ok},
		{HexLitSrc, "0X_ff)", ")", "0X_ff", ok},
		{HexLitSrc, "0x", "", "", Digit},
		{HexLitSrc, "0xf_", "", "", Underscore},
		{HexLitSrc, "1x", "", "", Tag},
	} {
		rest, src, err := v.f(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %q", i, v.in, src)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v", i, v.in, g, e)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := src, v.src; g != e {
			t.Errorf("#%d: got src %q, expected %q", i, g, e)
		}
	}
}

func TestIntLit(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
		src  string
		kind IntKind
		err  ErrorKind
	}{
		{"0", "", "0", DecimalLit, ok},
		{"42", "", "42", DecimalLit, ok},
		{"1_000_000", "", "1_000_000", DecimalLit, ok},
		{"123abc", "abc", "123", DecimalLit, ok},
		{"0b1010", "", "0b1010", BinaryLit, ok},
		{"0B_1", "", "0B_1", BinaryLit, ok},
		{"0o17", "", "0o17", OctalLit, ok},
		{"017", "", "017", OctalLit, ok},
		{"0_1", "", "0_1", OctalLit, ok},
		{"0xBadFace", "", "0xBadFace", HexLit, ok},
		{"0X_ff", "", "0X_ff", HexLit, ok},
		{"0.5", ".5", "0", DecimalLit, ok},

		{"", "", "", 0, Digit},
		{"x", "", "", 0, Digit},
		{"0x", "", "", 0, Digit},
		{"0xg", "", "", 0, Digit},
		{"0b2", "", "", 0, Digit},
		{"0o", "", "", 0, Digit},
		{"0_", "", "", 0, Digit},
		{"08", "", "", 0, LeadingZero},
		{"1_", "", "", 0, Underscore},
		{"10_", "", "", 0, Underscore},
		{"1__0", "", "", 0, Underscore},
		{"0x_", "", "", 0, Digit},
		{"0xf__f", "", "", 0, Underscore},
	} {
		rest, n, err := ParseIntLit(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %v", i, v.in, n)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v (%v)", i, v.in, g, e, err)
			}
			if rest != v.in {
				t.Errorf("#%d: %q: consumed input on failure", i, v.in)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := n.Src, v.src; g != e {
			t.Errorf("#%d: got src %q, expected %q", i, g, e)
		}
		if g, e := n.Kind, v.kind; g != e {
			t.Errorf("#%d: got kind %v, expected %v", i, g, e)
		}
	}
}

func TestIntLitRest(t *testing.T) {
	for _, lit := range []string{"0", "7", "42", "1_0", "0b1", "0B_1_0", "0o7", "017", "0x1F", "0X_a_b"} {
		for _, tail := range []string{"", " ", ")", "+1", ";", "\n", " // c"} {
			in := lit + tail
			rest, n, err := ParseIntLit(in)
			if err != nil {
				t.Errorf("%q: %v", in, err)
				continue
			}

			if rest != tail || n.Src != lit {
				t.Errorf("%q: got (%q, %q), expected (%q, %q)", in, rest, n.Src, tail, lit)
			}
		}
	}
}

func TestRune(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
		r    rune
		err  ErrorKind
	}{
		{"'a'", "", 'a', ok},
		{"'ä'x", "x", 'ä', ok},
		{"'世' + 1", " + 1", '世', ok},
		{"'\"'", "", '"', ok},

		{"a", "", 0, Tag},
		{"''", "", 0, NoMatch},
		{"'\\n'", "", 0, NotSupported},
		{"'ab'", "", 0, Tag},
		{"'a", "", 0, Tag},
		{"'", "", 0, Eof},
		{"'\n'", "", 0, NoMatch},
	} {
		rest, n, err := ParseRune(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %v", i, v.in, n)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v (%v)", i, v.in, g, e, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := n.Char, v.r; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
	}
}

func TestStringLit(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
		src  string
		raw  bool
		err  ErrorKind
	}{
		{`"abc" x`, " x", `"abc"`, false, ok},
		{`""`, "", `""`, false, ok},
		{"`a\nb`)", ")", "`a\nb`", true, ok},
		{"``", "", "``", true, ok},
		{"`\"`", "", "`\"`", true, ok},

		{`abc`, "", "", false, Tag},
		{`"a\"`, "", "", false, NotSupported},
		{`"abc`, "", "", false, Eof},
		{"\"a\nb\"", "", "", false, NoMatch},
		{"`abc", "", "", false, Eof},
	} {
		rest, n, err := ParseStringLit(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %v", i, v.in, n)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v (%v)", i, v.in, g, e, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := n.Src, v.src; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
		if g, e := n.Raw(), v.raw; g != e {
			t.Errorf("#%d: got raw %v, expected %v", i, g, e)
		}
	}
}

func TestLiteral(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
		str  string
		err  ErrorKind
	}{
		{"42  +", "+", "42", ok},
		{"0x1F\t)", ")", "0x1F", ok},
		{"'a' ", "", "'a'", ok},
		{"\"s\"\n", "\n", "\"s\"", ok},
		{"`r`", "", "`r`", ok},

		{"1.5", "", "", NotSupported},
		{".5", "", "", Digit},
		{"1i", "", "", NotSupported},
		{"0x1p3", "", "", NotSupported},
		{"1e3", "", "", NotSupported},
		{"017e1", "", "", NotSupported},
		{"x", "", "", Digit},
	} {
		rest, n, err := ParseLiteral(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %v", i, v.in, n)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v (%v)", i, v.in, g, e, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := n.String(), v.str; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
	}
}

func TestIdentifier(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
		name string
		err  ErrorKind
	}{
		{"foo bar", "bar", "foo", ok},
		{"_x1\t", "", "_x1", ok},
		{"_", "", "_", ok},
		{"héllo+", "+", "héllo", ok},
		{"funcs", "", "funcs", ok},
		{"a\nb", "\nb", "a", ok},
		{"x.y", ".y", "x", ok},

		{"", "", "", Eof},
		{"1x", "", "", NoMatch},
		{"+", "", "", NoMatch},
		{"func", "", "", Keyword},
		{"package p", "", "", Keyword},
	} {
		rest, nm, err := Identifier(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %q", i, v.in, nm)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v (%v)", i, v.in, g, e, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got rest %q, expected %q", i, g, e)
		}
		if g, e := nm, v.name; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
	}
}

func TestReservedSymbol(t *testing.T) {
	rest, kw, err := Reserved("func")("func  f")
	if err != nil {
		t.Fatal(err)
	}

	if rest != "f" || kw != "func" {
		t.Errorf("got (%q, %q), expected (%q, %q)", rest, kw, "f", "func")
	}

	if _, _, err := Reserved("func")("funcs"); err == nil || errKind(t, err) != Not {
		t.Errorf("got %v, expected %v", err, Not)
	}

	if _, _, err := Reserved("func")("fun"); err == nil || errKind(t, err) != Tag {
		t.Errorf("got %v, expected %v", err, Tag)
	}

	if rest, _, err = Symbol("(")("(\t x"); err != nil || rest != "x" {
		t.Errorf("got (%q, %v), expected (%q, nil)", rest, err, "x")
	}

	if rest, _, err = Symbol(")")(")\nx"); err != nil || rest != "\nx" {
		t.Errorf("got (%q, %v), expected (%q, nil)", rest, err, "\nx")
	}
}

func TestOperators(t *testing.T) {
	for i, v := range []struct {
		f    func(string) (string, string, error)
		in   string
		rest string
		op   string
	}{
		{OrOp, "||x", "x", "||"},
		{OrOp, "|x", "", ""},
		{AndOp, "&& x", "x", "&&"},
		{AndOp, "&x", "", ""},
		{RelOp, "<= b", "b", "<="},
		{RelOp, "< b", "b", "<"},
		{RelOp, "<- b", "", ""},
		{RelOp, "<<", "", ""},
		{RelOp, "==", "", "=="},
		{RelOp, "=", "", ""},
		{AddOp, "+ 1", "1", "+"},
		{AddOp, "+= 1", "", ""},
		{AddOp, "++", "", ""},
		{AddOp, "||", "", ""},
		{AddOp, "^x", "x", "^"},
		{MulOp, "&^x", "x", "&^"},
		{MulOp, "&&", "", ""},
		{MulOp, "<<2", "2", "<<"},
		{MulOp, "%", "", "%"},
		{UnaryOp, "<-ch", "ch", "<-"},
		{UnaryOp, "!x", "x", "!"},
		{UnaryOp, "!=", "", ""},
		{UnaryOp, "&x", "x", "&"},
	} {
		rest, op, err := v.f(v.in)
		if v.op == "" {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %q", i, v.in, op)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if rest != v.rest || op != v.op {
			t.Errorf("#%d: got (%q, %q), expected (%q, %q)", i, rest, op, v.rest, v.op)
		}
	}
}

func TestPrecedence(t *testing.T) {
	for _, v := range []struct {
		ops  string
		prec int
	}{
		{"* / % << >> & &^", 5},
		{"+ - | ^", 4},
		{"== != < <= > >=", 3},
		{"&&", 2},
		{"||", 1},
		{"! <- = ++ .", 0},
	} {
		for _, op := range strings.Fields(v.ops) {
			if g, e := Precedence(op), v.prec; g != e {
				t.Errorf("%s: got %v, expected %v", op, g, e)
			}
		}
	}
}

func TestGoType(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
		t    GoType
		err  ErrorKind
	}{
		{"int rest", "rest", Int, ok},
		{"uint8)", ")", Uint8, ok},
		{"byte", "", Byte, ok},
		{"rune\n", "\n", Rune, ok},
		{"bool", "", Bool, ok},
		{"complex128", "", Complex128, ok},

		{"foo", "", InvalidType, UnknownType},
		{"integer", "", InvalidType, UnknownType},
		{"var", "", InvalidType, Keyword},
		{"", "", InvalidType, Eof},
		{"fmt.", "", InvalidType, UnknownType},
		{"func", "", InvalidType, NotSupported},
		{"func() int", "", InvalidType, NotSupported},
		{"*int", "", InvalidType, NotSupported},
		{"[]int", "", InvalidType, NotSupported},
		{"[4]byte", "", InvalidType, NotSupported},
		{"(int)", "", InvalidType, NotSupported},
		{"map[string]int", "", InvalidType, NotSupported},
		{"chan int", "", InvalidType, NotSupported},
		{"struct{}", "", InvalidType, NotSupported},
		{"interface{}", "", InvalidType, NotSupported},
		{"fmt.Stringer", "", InvalidType, NotSupported},
	} {
		rest, typ, err := ParseGoType(v.in)
		if v.err != ok {
			if err == nil {
				t.Errorf("#%d: %q: unexpected success %v", i, v.in, typ)
				continue
			}

			if g, e := errKind(t, err), v.err; g != e {
				t.Errorf("#%d: %q: got %v, expected %v (%v)", i, v.in, g, e, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("#%d: %q: %v", i, v.in, err)
			continue
		}

		if rest != v.rest || typ != v.t {
			t.Errorf("#%d: got (%q, %v), expected (%q, %v)", i, rest, typ, v.rest, v.t)
		}
	}

	if g, e := fmt.Sprint(Uintptr), "uintptr"; g != e {
		t.Errorf("got %q, expected %q", g, e)
	}

	if typ, ok := LookupGoType("byte"); !ok || typ.Underlying() != Uint8 || !typ.IsInteger() {
		t.Errorf("byte: got %v %v", typ, ok)
	}

	if typ, ok := LookupGoType("rune"); !ok || typ.Underlying() != Int32 {
		t.Errorf("rune: got %v %v", typ, ok)
	}

	if String.IsInteger() || Float64.IsInteger() {
		t.Error("unexpected integer type")
	}

	if _, ok := LookupGoType("error"); ok {
		t.Error("unexpected error type")
	}
}

func TestErrorString(t *testing.T) {
	for i, v := range []struct {
		err *Error
		s   string
	}{
		{newError("func f() int", Tag, "expected %q", "package"), `tag: expected "package" near "func f() int"`},
		{newError("", Eof, ""), `unexpected end of input near ""`},
		{newError("0123456789abcdefghij", Digit, "x"), `digit: x near "0123456789abcdef"`},
		{newError("ab\ncd", NoMatch, "y"), `no match: y near "ab"`},
	} {
		if g, e := v.err.Error(), v.s; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
	}
}

func TestParse(t *testing.T) {
	p := Parser[IntLit](ParseIntLit)
	n, err := p.Parse("0x1f")
	if err != nil {
		t.Fatal(err)
	}

	if g, e := n.Src, "0x1f"; g != e {
		t.Errorf("got %q, expected %q", g, e)
	}

	if _, err = p.Parse("0x1f "); err == nil {
		t.Fatal("unexpected success")
	}

	if g, e := err.(*Error).Offset("0x1f "), 4; g != e {
		t.Errorf("got %v, expected %v", g, e)
	}
}

func TestMany0(t *testing.T) {
	p := many0(opt(tag("x")))
	if _, _, err := p("y"); err == nil || errKind(t, err) != Repetition {
		t.Errorf("got %v, expected %v", err, Repetition)
	}

	rest, _, err := many0(opt(tag("a")))("aab")
	if err == nil || errKind(t, err) != Repetition {
		t.Errorf("got %v, expected %v", err, Repetition)
	}

	if g, e := rest, "aab"; g != e {
		t.Errorf("got %q, expected %q", g, e)
	}

	rest, a, err := many0(tag("ab"))("ababa")
	if err != nil {
		t.Fatal(err)
	}

	if rest != "a" || len(a) != 2 {
		t.Errorf("got (%q, %v)", rest, a)
	}
}

func TestAltFurthest(t *testing.T) {
	p := alt(seq(tag("a"), tag("b"), tag("c")), seq(tag("a"), tag("x")))
	_, _, err := p("abd")
	if err == nil {
		t.Fatal("unexpected success")
	}

	if g, e := err.(*Error).Input, "d"; g != e {
		t.Errorf("got %q, expected %q", g, e)
	}
}

func TestSpacing(t *testing.T) {
	for i, v := range []struct {
		in   string
		rest string
	}{
		{"", ""},
		{"x", "x"},
		{" \t\n\r x", "x"},
		{"// c\n x", "x"},
		{"// c", ""},
		{"/* a\n b */x", "x"},
		{"/**/ /* */\n// c\n\tx", "x"},
	} {
		rest, _, err := spacing(v.in)
		if err != nil {
			t.Errorf("#%d: %v", i, err)
			continue
		}

		if g, e := rest, v.rest; g != e {
			t.Errorf("#%d: got %q, expected %q", i, g, e)
		}
	}

	if _, _, err := spacing(" /* x"); err == nil || errKind(t, err) != Eof {
		t.Errorf("got %v, expected %v", err, Eof)
	}
}
