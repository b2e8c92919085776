// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grammar holds the EBNF grammar of the Go subset accepted by package
// combinator and a token based recognizer interpreting it as a PEG.
//
// The recognizer is independent of the combinator parsers and serves as an
// oracle in their tests.
package grammar // import "modernc.org/gc/combinator/internal/grammar"

import (
	"bytes"
	"embed"
	"fmt"
	"go/scanner"
	"go/token"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
	"modernc.org/mathutil"
)

// Start productions of the grammars.
const (
	Expression = "Expression"
	SourceFile = "SourceFile"
)

//go:embed *.ebnf
var files embed.FS

// parts lists the files making up the grammar of a start production.
var parts = map[string][]string{
	Expression: {"expression.ebnf", "identifier.ebnf", "literal.ebnf", "string.ebnf"},
	SourceFile: {"sourcefile.ebnf", "identifier.ebnf", "string.ebnf"},
}

// toks maps terminal names and literal tokens of the grammars to go/token
// tokens.
var toks = map[string]token.Token{
	"!":          token.NOT,
	"!=":         token.NEQ,
	"%":          token.REM,
	"&":          token.AND,
	"&&":         token.LAND,
	"&^":         token.AND_NOT,
	"(":          token.LPAREN,
	")":          token.RPAREN,
	"*":          token.MUL,
	"+":          token.ADD,
	",":          token.COMMA,
	"-":          token.SUB,
	".":          token.PERIOD,
	"...":        token.ELLIPSIS,
	"/":          token.QUO,
	";":          token.SEMICOLON,
	"<":          token.LSS,
	"<-":         token.ARROW,
	"<<":         token.SHL,
	"<=":         token.LEQ,
	"==":         token.EQL,
	">":          token.GTR,
	">=":         token.GEQ,
	">>":         token.SHR,
	"^":          token.XOR,
	"func":       token.FUNC,
	"identifier": token.IDENT,
	"import":     token.IMPORT,
	"int_lit":    token.INT,
	"package":    token.PACKAGE,
	"rune_lit":   token.CHAR,
	"string_lit": token.STRING,
	"|":          token.OR,
	"||":         token.LOR,
}

// Grammar is a verified EBNF grammar.
type Grammar struct {
	g     ebnf.Grammar
	start string
}

// New returns the verified grammar of start, one of Expression and
// SourceFile.
func New(start string) (*Grammar, error) {
	names, ok := parts[start]
	if !ok {
		return nil, fmt.Errorf("unknown start production %q", start)
	}

	var b bytes.Buffer
	for _, v := range names {
		buf, err := files.ReadFile(v)
		if err != nil {
			return nil, err
		}

		b.Write(buf)
		b.WriteByte('\n')
	}
	g, err := ebnf.Parse(start+".ebnf", &b)
	if err != nil {
		return nil, err
	}

	if err = ebnf.Verify(g, start); err != nil {
		return nil, err
	}

	return &Grammar{g: g, start: start}, nil
}

// Start returns the name of the start production of g.
func (g *Grammar) Start() string { return g.start }

// Productions returns the names of all productions of g, sorted.
func (g *Grammar) Productions() (r []string) {
	for k := range g.g {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// String returns the productions of g, one per line, sorted by name.
func (g *Grammar) String() string {
	var b strings.Builder
	g.print(&b)
	return b.String()
}

func (g *Grammar) print(w io.Writer) {
	for _, k := range g.Productions() {
		p := g.g[k]
		fmt.Fprintf(w, "%s = ", p.Name.String)
		if p.Expr != nil {
			printExpression(w, p.Expr)
		}
		fmt.Fprintf(w, " .\n")
	}
}

func exprString(e ebnf.Expression) string {
	var b strings.Builder
	printExpression(&b, e)
	return b.String()
}

func printExpression(w io.Writer, e ebnf.Expression) {
	switch x := e.(type) {
	case ebnf.Sequence:
		for i, v := range x {
			if i != 0 {
				fmt.Fprintf(w, " ")
			}
			printExpression(w, v)
		}
	case *ebnf.Name:
		fmt.Fprintf(w, "%s", x.String)
	case *ebnf.Token:
		fmt.Fprintf(w, "%q", x.String)
	case *ebnf.Range:
		fmt.Fprintf(w, "%q … %q", x.Begin.String, x.End.String)
	case *ebnf.Option:
		fmt.Fprintf(w, "[ ")
		printExpression(w, x.Body)
		fmt.Fprintf(w, " ]")
	case *ebnf.Group:
		fmt.Fprintf(w, "( ")
		printExpression(w, x.Body)
		fmt.Fprintf(w, " )")
	case ebnf.Alternative:
		for i, v := range x {
			if i != 0 {
				fmt.Fprintf(w, " | ")
			}
			printExpression(w, v)
		}
	case *ebnf.Repetition:
		fmt.Fprintf(w, "{ ")
		printExpression(w, x.Body)
		fmt.Fprintf(w, " }")
	default:
		panic(fmt.Sprintf("unexpected %T", x))
	}
}

// LeftRecursive returns the cycles of left recursive productions reachable
// from the start production of g. Lexical productions are treated as
// terminals.
func (g *Grammar) LeftRecursive() (r [][]string) {
	p := g.g[g.start]
	m := map[*ebnf.Production]int{p: 1}
	n := map[*ebnf.Production]int{p: 1}
	detected := map[*ebnf.Production]struct{}{}

	var f func(ebnf.Expression, int, []*ebnf.Production) int
	f = func(e ebnf.Expression, pos int, stack []*ebnf.Production) int {
		switch x := e.(type) {
		case ebnf.Sequence:
			for _, v := range x {
				pos = f(v, pos, stack)
			}
			return pos
		case *ebnf.Name:
			nm := x.String
			if !token.IsExported(nm) {
				return pos + 1
			}

			p := g.g[nm]
			if _, ok := detected[p]; ok {
				return pos
			}

			sv := m[p]
			defer func() { m[p] = sv; n[p] = 1 }()

			if sv == pos {
				detected[p] = struct{}{}
				for sp := len(stack) - 1; sp >= 0; sp-- {
					if stack[sp] == p {
						var cycle []string
						for _, v := range stack[sp:] {
							cycle = append(cycle, v.Name.String)
						}
						r = append(r, cycle)
						break
					}
				}
				return pos
			}

			if sv != 0 {
				return pos
			}

			if n[p] != 0 {
				return pos + 1
			}

			m[p] = pos
			return f(p.Expr, pos, append(stack, p))
		case *ebnf.Token, *ebnf.Range, nil:
			return pos + 1
		case ebnf.Alternative:
			moved := true
			for _, v := range x {
				if f(v, pos, stack) == pos {
					moved = false
				}
			}
			if moved {
				pos++
			}
			return pos
		case *ebnf.Repetition:
			f(x.Body, pos, stack)
			return pos
		case *ebnf.Group:
			return f(x.Body, pos, stack)
		case *ebnf.Option:
			f(x.Body, pos, stack)
			return pos
		default:
			panic(fmt.Sprintf("unexpected %T", x))
		}
	}

	f(p.Expr, 1, []*ebnf.Production{p})
	return r
}

type tok struct {
	pos token.Pos
	tok token.Token
	lit string
}

func (t tok) String() string {
	lit := t.lit
	if lit == "" {
		lit = t.tok.String()
	}
	return fmt.Sprintf("%d: %v %q", t.pos, t.tok, lit)
}

// Recognize reports whether src, tokenized by go/scanner, is a sentence of g.
// Positions are reported as if src is coming from a file named name.
//
// Alternatives are ordered and repetitions are greedy, so the grammar is
// interpreted as a PEG.
func (g *Grammar) Recognize(name string, src []byte) error {
	p, err := newRecognizer(g, name, src)
	if err != nil {
		return err
	}

	return p.recognize()
}

type recognizer struct {
	f    *token.File
	g    *Grammar
	name string
	toks []tok

	budget   int
	maxIndex int
}

func newRecognizer(g *Grammar, name string, src []byte) (r *recognizer, err error) {
	r = &recognizer{
		budget: 1e6,
		g:      g,
		name:   name,
	}
	var s scanner.Scanner
	fs := token.NewFileSet()
	r.f = fs.AddFile(name, -1, len(src))
	s.Init(r.f, src, func(pos token.Position, msg string) {
		if err == nil {
			err = fmt.Errorf("%v: %s", pos, msg)
		}
	}, 0)
	for {
		pos, t, lit := s.Scan()
		r.toks = append(r.toks, tok{pos, t, lit})
		if err != nil {
			return nil, err
		}

		if t == token.EOF {
			return r, nil
		}
	}
}

func (p *recognizer) c(ix int) tok {
	if p.budget == 0 {
		return p.toks[len(p.toks)-1]
	}

	p.budget--
	return p.toks[ix]
}

func (p *recognizer) recognize() error {
	ix, ok := p.expression(0, p.g.g[p.g.start].Expr)
	if p.budget == 0 {
		return fmt.Errorf("%s: resources exhausted", p.name)
	}

	// A semicolon inserted before EOF is not part of an Expression.
	if ok && ix == len(p.toks)-2 && p.toks[ix].tok == token.SEMICOLON && p.toks[ix].lit == "\n" {
		ix++
	}
	if !ok || ix < len(p.toks)-1 {
		return fmt.Errorf("%s: syntax error", p.f.PositionFor(p.toks[p.maxIndex].pos, true))
	}

	return nil
}

func (p *recognizer) terminal(s string) token.Token {
	if r, ok := toks[s]; ok {
		return r
	}

	panic(fmt.Sprintf("unknown terminal %q", s))
}

func (p *recognizer) expression(ix int, e ebnf.Expression) (r int, ok bool) {
	r = ix

	defer func() {
		p.maxIndex = mathutil.Max(p.maxIndex, ix)
	}()

	switch x := e.(type) {
	case ebnf.Sequence:
		for _, v := range x {
			if ix, ok = p.expression(ix, v); !ok {
				return r, false
			}
		}
		return ix, true
	case *ebnf.Name:
		nm := x.String
		if _, ok := toks[nm]; ok {
			if p.c(ix).tok == p.terminal(nm) {
				ix++
			}
			return ix, ix != r
		}

		return p.expression(ix, p.g.g[nm].Expr)
	case *ebnf.Token:
		switch {
		case token.IsKeyword(x.String):
			if p.c(ix).lit == x.String {
				ix++
			}
		default:
			if p.c(ix).tok == p.terminal(x.String) {
				ix++
			}
		}
		return ix, ix != r
	case *ebnf.Repetition:
		for {
			n := ix
			if ix, ok = p.expression(ix, x.Body); !ok || ix == n {
				return ix, true
			}
		}
	case *ebnf.Group:
		return p.expression(ix, x.Body)
	case ebnf.Alternative:
		for _, v := range x {
			if ix, ok := p.expression(ix, v); ok {
				return ix, true
			}
		}
		return r, false
	case *ebnf.Option:
		ix, _ = p.expression(ix, x.Body)
		return ix, true
	default:
		panic(fmt.Sprintf("unexpected %T: %s", x, exprString(e)))
	}
}
