// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"go/token"
	"unsafe"

	mtoken "modernc.org/token"
)

// Source is a named text together with its line table. All strings in an AST
// produced from a Source are slices of its text.
type Source struct {
	file *mtoken.File
	name string
	text string
}

// NewSource returns a newly created Source. Positions are reported as if text
// is coming from a file named name.
func NewSource(name, text string) *Source {
	r := &Source{
		file: mtoken.NewFile(name, len(text)),
		name: name,
		text: text,
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			r.file.AddLine(i + 1)
		}
	}
	return r
}

// Name returns the name of s.
func (s *Source) Name() string { return s.name }

// Text returns the text of s.
func (s *Source) Text() string { return s.text }

// Position returns the position of the byte offset off.
func (s *Source) Position(off int) (r token.Position) {
	if s == nil {
		return r
	}

	if off < 0 || off > len(s.text) {
		r.Filename = s.name
		return r
	}

	return token.Position(s.file.PositionFor(mtoken.Pos(off+1), true))
}

// Rest returns the position where rest, a suffix of s's text, starts.
func (s *Source) Rest(rest string) token.Position { return s.Position(len(s.text) - len(rest)) }

// offsetOf returns the offset of sub within s.text, provided sub is a slice
// of it.
func (s *Source) offsetOf(sub string) (int, bool) {
	if len(sub) == 0 || len(s.text) == 0 {
		return 0, false
	}

	base := uintptr(unsafe.Pointer(unsafe.StringData(s.text)))
	p := uintptr(unsafe.Pointer(unsafe.StringData(sub)))
	if p < base || p+uintptr(len(sub)) > base+uintptr(len(s.text)) {
		return 0, false
	}

	return int(p - base), true
}

// PositionOf returns the position of sub, a slice of s's text. The result is
// a zero value, except for the file name, when sub is not such a slice.
func (s *Source) PositionOf(sub string) token.Position {
	if off, ok := s.offsetOf(sub); ok {
		return s.Position(off)
	}

	return token.Position{Filename: s.name}
}
