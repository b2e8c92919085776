// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"fmt"
	"go/token"
	"strings"
	"unicode/utf8"
)

// TokenKind is the lexical class of a Token.
type TokenKind int

// Values of type TokenKind.
const (
	INVALID TokenKind = iota // <invalid>
	EOF                      // EOF
	INT                      // integer literal
	CHAR                     // rune literal
	STRING                   // string literal
	IDENT                    // identifier
	KEYWORD                  // keyword
	LDEL                     // left delimiter
	RDEL                     // right delimiter
	SYMBOL                   // symbol
)

// Delimiter is the kind of a LDEL or RDEL token.
type Delimiter int

// Values of type Delimiter.
const (
	NoDelimiter Delimiter = iota // <none>
	Paren                        // ()
	Bracket                      // []
	Brace                        // {}
)

// Operator is the value of a SYMBOL token.
type Operator int

// Values of type Operator.
const (
	NoOperator     Operator = iota // <none>
	ADD                            // +
	ADD_ASSIGN                     // +=
	AND                            // &
	AND_ASSIGN                     // &=
	AND_NOT                        // &^
	AND_NOT_ASSIGN                 // &^=
	ARROW                          // <-
	ASSIGN                         // =
	COLON                          // :
	COMMA                          // ,
	DEC                            // --
	DEFINE                         // :=
	ELLIPSIS                       // ...
	EQL                            // ==
	GEQ                            // >=
	GTR                            // >
	INC                            // ++
	LAND                           // &&
	LEQ                            // <=
	LOR                            // ||
	LSS                            // <
	MUL                            // *
	MUL_ASSIGN                     // *=
	NEQ                            // !=
	NOT                            // !
	OR                             // |
	OR_ASSIGN                      // |=
	PERIOD                         // .
	QUO                            // /
	QUO_ASSIGN                     // /=
	REM                            // %
	REM_ASSIGN                     // %=
	SEMICOLON                      // ;
	SHL                            // <<
	SHL_ASSIGN                     // <<=
	SHR                            // >>
	SHR_ASSIGN                     // >>=
	SUB                            // -
	SUB_ASSIGN                     // -=
	TILDE                          // ~
	XOR                            // ^
	XOR_ASSIGN                     // ^=

	operatorsEnd
)

var xlat = func() map[string]Operator {
	m := map[string]Operator{}
	for op := NoOperator + 1; op < operatorsEnd; op++ {
		m[op.String()] = op
	}
	return m
}()

var (
	_ Node = Token{}
)

// Token is the product of Scanner.Scan.
type Token struct {
	source *Source
	// Src is the source form of the token. For INVALID tokens it is the text
	// skipped while recovering from a lexical error.
	Src string
	// Lit is the value of an INT token.
	Lit IntLit
	// Char is the value of a CHAR token.
	Char rune

	Kind  TokenKind
	Delim Delimiter
	Op    Operator
	off   int32
}

// Position returns the position of t.
func (t Token) Position() (r token.Position) {
	if t.source != nil {
		return t.source.Position(int(t.off))
	}

	return r
}

// Offset reports the starting offset of t, in bytes, within the source text.
func (t Token) Offset() int { return int(t.off) }

// Len reports the length of t's source form in bytes.
func (t Token) Len() int { return len(t.Src) }

// IsValid reports whether t was produced by a Scanner.
func (t Token) IsValid() bool { return t.source != nil }

// String pretty formats t.
func (t Token) String() string {
	switch t.Kind {
	case LDEL, RDEL:
		return fmt.Sprintf("%v: %s %q", t.Position(), t.Kind, t.Src)
	case SYMBOL:
		return fmt.Sprintf("%v: %s %s", t.Position(), t.Kind, t.Op)
	default:
		return fmt.Sprintf("%v: %s %q", t.Position(), t.Kind, t.Src)
	}
}

// Scanner provides lexical analysis of its source. It is an alternative to
// parsing with the Parse* functions and reuses their literal parsers.
type Scanner struct {
	src *Source
	// Tok is the current token. It is valid after first call to Scan. The
	// value is read only.
	Tok  Token
	errs errList

	off int // Index into src.text.

	allErrors bool
	isClosed  bool
}

// NewScanner returns a newly created scanner that will tokenize buf. Positions
// are reported as if buf is coming from a file named name.
//
// The scanner normally stops scanning after 10 errors. Passing allErrors ==
// true overides that.
func NewScanner(buf []byte, name string, allErrors bool) *Scanner {
	return &Scanner{
		src:       NewSource(name, string(buf)),
		allErrors: allErrors,
	}
}

// Source returns the source s is scanning.
func (s *Scanner) Source() *Source { return s.src }

// Err reports any errors the scanner encountered during .Scan() invocations.
func (s *Scanner) Err() error { return s.errs.Err(s.src) }

func (s *Scanner) err(off int, msg string, args ...interface{}) {
	if len(s.errs) == maxErrors && !s.allErrors {
		s.close()
		return
	}

	s.errs.err(off, msg, args...)
}

func (s *Scanner) errAt(err error) {
	off := s.off
	if e, ok := err.(*Error); ok {
		off = len(s.src.text) - len(e.Input)
		switch {
		case e.Msg == "":
			err = fmt.Errorf("%s", e.Kind)
		default:
			err = fmt.Errorf("%s: %s", e.Kind, e.Msg)
		}
	}
	if len(s.errs) == maxErrors && !s.allErrors {
		s.close()
		return
	}

	s.errs.add(off, err)
}

func (s *Scanner) close() {
	if s.isClosed {
		return
	}

	s.Tok = Token{source: s.src, Kind: EOF, off: int32(len(s.src.text))}
	s.isClosed = true
}

// Scan moves to the next token and returns true if not at end of file. Usage
// example:
//
//	s := NewScanner(buf, name, false)
//	for s.Scan() {
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
func (s *Scanner) Scan() bool {
	if s.isClosed {
		return false
	}

	text := s.src.text
	rest, _, err := spacing(text[s.off:])
	if err != nil {
		s.errAt(err)
		s.off = len(text)
		s.close()
		return false
	}

	s.off = len(text) - len(rest)
	if rest == "" {
		s.close()
		return false
	}

	s.Tok = Token{source: s.src, off: int32(s.off)}
	n := s.scan(rest)
	if s.isClosed {
		return false
	}

	s.Tok.Src = rest[:n]
	s.off += n
	return true
}

// scan sets the kind and value of s.Tok and returns the length of its source
// form.
func (s *Scanner) scan(rest string) int {
	switch c := rest[0]; {
	case c == '(' || c == '[' || c == '{':
		s.Tok.Kind = LDEL
		s.Tok.Delim = delimiter(c)
		return 1
	case c == ')' || c == ']' || c == '}':
		s.Tok.Kind = RDEL
		s.Tok.Delim = delimiter(c)
		return 1
	case c == '.' && len(rest) > 1 && isDigit(rest[1]):
		s.errAt(newError(rest, NotSupported, "floating-point literals"))
		s.Tok.Kind = INVALID
		return badLen(rest)
	case isDigit(c):
		r, lit, err := intLiteral(rest)
		if err != nil {
			s.errAt(err)
			s.Tok.Kind = INVALID
			return badLen(rest)
		}

		s.Tok.Kind = INT
		s.Tok.Lit = lit.(IntLit)
		return len(rest) - len(r)
	case c == '\'':
		r, lit, err := runeLit(rest)
		if err != nil {
			s.errAt(err)
			s.Tok.Kind = INVALID
			return lineLen(rest)
		}

		s.Tok.Kind = CHAR
		s.Tok.Char = lit.Char
		return len(rest) - len(r)
	case c == '"' || c == '`':
		r, _, err := stringLit(rest)
		if err != nil {
			s.errAt(err)
			s.Tok.Kind = INVALID
			return lineLen(rest)
		}

		s.Tok.Kind = STRING
		return len(rest) - len(r)
	}

	if r, nm, err := identChars(rest); err == nil {
		s.Tok.Kind = IDENT
		if Keywords[nm] {
			s.Tok.Kind = KEYWORD
		}
		return len(rest) - len(r)
	}

	if op := longestOperator(rest); op != "" {
		s.Tok.Kind = SYMBOL
		s.Tok.Op = xlat[op]
		return len(op)
	}

	r, n := utf8.DecodeRuneInString(rest)
	s.err(s.off, "invalid character %#U", r)
	s.Tok.Kind = INVALID
	return n
}

func delimiter(c byte) Delimiter {
	switch c {
	case '(', ')':
		return Paren
	case '[', ']':
		return Bracket
	default:
		return Brace
	}
}

// badLen returns the length of the run of identifier characters and dots
// starting s.
func badLen(s string) int {
	i := 0
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !isIDNext(r) && r != '.' {
			break
		}

		i += n
	}
	if i == 0 {
		return 1
	}

	return i
}

// lineLen returns the length of s up to but excluding the first newline.
func lineLen(s string) int {
	if x := strings.IndexByte(s, '\n'); x >= 0 {
		return x
	}

	return len(s)
}

// Tokens is a FIFO queue of tokens.
type Tokens struct {
	a []Token
}

// Push appends t to the end of q.
func (q *Tokens) Push(t Token) { q.a = append(q.a, t) }

// Pop removes and returns the token at the front of q, if any.
func (q *Tokens) Pop() (t Token, ok bool) {
	if len(q.a) == 0 {
		return t, false
	}

	t = q.a[0]
	q.a[0] = Token{}
	q.a = q.a[1:]
	return t, true
}

// Peek returns the token at the front of q, if any, without removing it.
func (q *Tokens) Peek() (t Token, ok bool) {
	if len(q.a) == 0 {
		return t, false
	}

	return q.a[0], true
}

// Len returns the number of tokens in q.
func (q *Tokens) Len() int { return len(q.a) }

// Tokenize returns the tokens of buf. Positions are reported as if buf is
// coming from a file named name. Invalid tokens are queued as well and the
// error, if any, lists all lexical errors.
func Tokenize(name string, buf []byte) (*Tokens, error) {
	s := NewScanner(buf, name, true)
	q := &Tokens{}
	for s.Scan() {
		q.Push(s.Tok)
	}
	return q, s.Err()
}
