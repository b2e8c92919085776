// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"fmt"
	"go/token"
	"strings"

	"modernc.org/mathutil"
)

//go:generate stringer -output stringer.go -linecomment -type=ErrorKind,GoType,IntKind,TokenKind,Delimiter,Operator

// ErrorKind classifies parser failures.
type ErrorKind int

// Values of type ErrorKind.
const (
	NoMatch      ErrorKind = iota // no match
	Tag                           // tag
	OneOf                         // one of
	Not                           // not
	Eof                           // unexpected end of input
	Digit                         // digit
	Underscore                    // misplaced underscore
	LeadingZero                   // leading zero
	UnknownType                   // unknown type
	Keyword                       // keyword
	NotSupported                  // not supported
	Repetition                    // repetition without progress
)

// Error is the failure of a parser. Input is the suffix of the parsed text at
// which the failure was detected, so the offset of the failure is
// len(text)-len(Input).
type Error struct {
	Input string
	Kind  ErrorKind
	Msg   string
}

func newError(input string, kind ErrorKind, msg string, args ...interface{}) *Error {
	return &Error{Input: input, Kind: kind, Msg: errorf(msg, args...)}
}

// Error implements error.
func (e *Error) Error() string {
	near := e.Input
	if x := strings.IndexByte(near, '\n'); x >= 0 {
		near = near[:x]
	}
	near = near[:mathutil.Min(len(near), 16)]
	switch {
	case e.Msg == "":
		return fmt.Sprintf("%s near %q", e.Kind, near)
	default:
		return fmt.Sprintf("%s: %s near %q", e.Kind, e.Msg, near)
	}
}

// Offset returns the byte offset of e within text, provided e was produced by
// parsing text.
func (e *Error) Offset(text string) int { return len(text) - len(e.Input) }

// Position returns the position of e within src.
func (e *Error) Position(src *Source) token.Position {
	return src.Position(e.Offset(src.Text()))
}

// further returns the error that got further into the input.
func further(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case len(b.Input) < len(a.Input):
		return b
	default:
		return a
	}
}

type errItem struct {
	off int
	err error
}

type errList []errItem

func (e errList) Err(s *Source) error {
	if len(e) == 0 {
		return nil
	}

	w := 0
	prev := errItem{off: -1}
	for _, v := range e {
		if v.off != prev.off || v.err.Error() != prev.err.Error() {
			e[w] = v
			w++
			prev = v
		}
	}

	var a []string
	for _, v := range e[:w] {
		a = append(a, fmt.Sprintf("%v: %v", s.Position(v.off), v.err))
	}
	return fmt.Errorf("%s", strings.Join(a, "\n"))
}

func (e *errList) err(off int, msg string, args ...interface{}) {
	*e = append(*e, errItem{off, fmt.Errorf("%s", errorf(msg, args...))})
}

func (e *errList) add(off int, err error) {
	*e = append(*e, errItem{off, err})
}
