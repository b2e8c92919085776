// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package combinator implements a combinator based, recursive descent parser
// of a subset of the Go programming language.
//
// Every parser consumes a prefix of its input and returns the remaining
// suffix and the recognized value. On failure the returned error is an
// *Error and no input is consumed. Strings in the produced AST are slices of
// the input.
//
// The accepted subset covers integer, rune and string literals, identifiers,
// qualified identifiers, unary and binary expressions, and a source file
// consisting of a package clause, import declarations and bodiless function
// declarations with parameters and results of predeclared types.
package combinator // import "modernc.org/gc/combinator"

import (
	"strings"
	"unicode/utf8"
)

// Parser consumes a prefix of s and returns the remaining suffix and the
// recognized value or an error, in which case rest is s.
type Parser[T any] func(s string) (rest string, v T, err error)

// Parse applies p to s and requires all of s to be consumed.
func (p Parser[T]) Parse(s string) (v T, err error) {
	rest, v, err := p(s)
	if err != nil {
		return v, err
	}

	if rest != "" {
		var zero T
		return zero, newError(rest, NoMatch, "unexpected trailing input")
	}

	return v, nil
}

func tag(t string) Parser[string] {
	return func(s string) (string, string, error) {
		if strings.HasPrefix(s, t) {
			return s[len(t):], s[:len(t)], nil
		}

		return s, "", newError(s, Tag, "expected %q", t)
	}
}

func satisfy(kind ErrorKind, what string, f func(rune) bool) Parser[rune] {
	return func(s string) (string, rune, error) {
		if s == "" {
			return s, 0, newError(s, Eof, "expected %s", what)
		}

		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n == 1 {
			return s, 0, newError(s, kind, "invalid UTF-8 encoding")
		}

		if !f(r) {
			return s, 0, newError(s, kind, "expected %s", what)
		}

		return s[n:], r, nil
	}
}

func oneOf(chars string) Parser[rune] {
	return satisfy(OneOf, "one of "+chars, func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// not succeeds, consuming nothing, iff p fails.
func not[T any](kind ErrorKind, p Parser[T]) Parser[struct{}] {
	return func(s string) (string, struct{}, error) {
		if rest, _, err := p(s); err == nil {
			return s, struct{}{}, newError(s, kind, "unexpected %q", s[:len(s)-len(rest)])
		}

		return s, struct{}{}, nil
	}
}

// opt returns the zero value of T when p fails.
func opt[T any](p Parser[T]) Parser[T] {
	return func(s string) (string, T, error) {
		rest, v, err := p(s)
		if err != nil {
			var zero T
			return s, zero, nil
		}

		return rest, v, nil
	}
}

func many0[T any](p Parser[T]) Parser[[]T] {
	return func(in string) (string, []T, error) {
		var a []T
		s := in
		for {
			rest, v, err := p(s)
			if err != nil {
				return s, a, nil
			}

			if len(rest) == len(s) {
				return in, nil, newError(s, Repetition, "")
			}

			a = append(a, v)
			s = rest
		}
	}
}

// recognize returns the input consumed by p.
func recognize[T any](p Parser[T]) Parser[string] {
	return func(s string) (string, string, error) {
		rest, _, err := p(s)
		if err != nil {
			return s, "", err
		}

		return rest, s[:len(s)-len(rest)], nil
	}
}

// seq applies ps in order and returns the input consumed by all of them.
func seq(ps ...Parser[string]) Parser[string] {
	return func(s string) (string, string, error) {
		rest := s
		for _, p := range ps {
			var err error
			if rest, _, err = p(rest); err != nil {
				return s, "", err
			}
		}
		return rest, s[:len(s)-len(rest)], nil
	}
}

// alt returns the result of the first of ps that succeeds. If all of them
// fail, the failure that got furthest into the input is reported.
func alt[T any](ps ...Parser[T]) Parser[T] {
	return func(s string) (string, T, error) {
		var best *Error
		for _, p := range ps {
			rest, v, err := p(s)
			if err == nil {
				return rest, v, nil
			}

			e, ok := err.(*Error)
			if !ok {
				var zero T
				return s, zero, err
			}

			best = further(best, e)
		}
		var zero T
		return s, zero, best
	}
}

func preceded[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(s string) (string, B, error) {
		var zero B
		rest, _, err := a(s)
		if err != nil {
			return s, zero, err
		}

		rest, v, err := b(rest)
		if err != nil {
			return s, zero, err
		}

		return rest, v, nil
	}
}

func terminated[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(s string) (string, A, error) {
		var zero A
		rest, v, err := a(s)
		if err != nil {
			return s, zero, err
		}

		if rest, _, err = b(rest); err != nil {
			return s, zero, err
		}

		return rest, v, nil
	}
}

func delimited[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[B] {
	return preceded(a, terminated(b, c))
}

func mapP[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s string) (string, B, error) {
		rest, v, err := p(s)
		if err != nil {
			var zero B
			return s, zero, err
		}

		return rest, f(v), nil
	}
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// blanks consumes spaces and horizontal tabs. It never fails.
func blanks(s string) (string, string, error) {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return s[i:], s[:i], nil
}

// spacing consumes white space, including newlines, and comments. It fails
// only on an unterminated general comment.
func spacing(s string) (string, string, error) {
	rest := s
	for {
		switch {
		case rest == "":
			return rest, s, nil
		case isBlank(rest[0]) || rest[0] == '\n' || rest[0] == '\r':
			rest = rest[1:]
		case strings.HasPrefix(rest, "//"):
			x := strings.IndexByte(rest, '\n')
			if x < 0 {
				return "", s, nil
			}

			rest = rest[x:]
		case strings.HasPrefix(rest, "/*"):
			x := strings.Index(rest[2:], "*/")
			if x < 0 {
				return s, "", newError(rest, Eof, "comment not terminated")
			}

			rest = rest[x+4:]
		default:
			return rest, s[:len(s)-len(rest)], nil
		}
	}
}
