// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"strings"
)

// GoType is a predeclared Go type.
type GoType int

// Values of type GoType.
const (
	InvalidType GoType = iota // <invalid type>
	Bool                      // bool
	Byte                      // byte
	Complex128                // complex128
	Complex64                 // complex64
	Float32                   // float32
	Float64                   // float64
	Int                       // int
	Int16                     // int16
	Int32                     // int32
	Int64                     // int64
	Int8                      // int8
	Rune                      // rune
	String                    // string
	Uint                      // uint
	Uint16                    // uint16
	Uint32                    // uint32
	Uint64                    // uint64
	Uint8                     // uint8
	Uintptr                   // uintptr
)

var universe = map[string]GoType{
	"bool":       Bool,
	"byte":       Byte,
	"complex128": Complex128,
	"complex64":  Complex64,
	"float32":    Float32,
	"float64":    Float64,
	"int":        Int,
	"int16":      Int16,
	"int32":      Int32,
	"int64":      Int64,
	"int8":       Int8,
	"rune":       Rune,
	"string":     String,
	"uint":       Uint,
	"uint16":     Uint16,
	"uint32":     Uint32,
	"uint64":     Uint64,
	"uint8":      Uint8,
	"uintptr":    Uintptr,
}

// typeLitKeywords start type literals.
var typeLitKeywords = map[string]bool{
	"chan":      true,
	"func":      true,
	"interface": true,
	"map":       true,
	"struct":    true,
}

// LookupGoType returns the predeclared type named nm, if any.
func LookupGoType(nm string) (t GoType, ok bool) {
	t, ok = universe[nm]
	return t, ok
}

// Underlying returns the type t is an alias of, or t.
func (t GoType) Underlying() GoType {
	switch t {
	case Byte:
		return Uint8
	case Rune:
		return Int32
	default:
		return t
	}
}

// IsInteger reports whether t is an integer type.
func (t GoType) IsInteger() bool {
	switch t.Underlying() {
	case Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64, Uintptr:
		return true
	}
	return false
}

// ParseGoType parses the name of a predeclared type and any blanks following
// it. Other names fail with UnknownType. Type literals and qualified type
// names fail with NotSupported.
func ParseGoType(s string) (rest string, t GoType, err error) {
	if s != "" && (s[0] == '[' || s[0] == '*' || s[0] == '(') {
		return s, InvalidType, newError(s, NotSupported, "type literals")
	}

	rest, nm, err := identChars(s)
	if err != nil {
		return s, InvalidType, err
	}

	switch {
	case typeLitKeywords[nm]:
		return s, InvalidType, newError(s, NotSupported, "type literals")
	case Keywords[nm]:
		return s, InvalidType, newError(s, Keyword, "unexpected keyword %s", nm)
	case strings.HasPrefix(rest, "."):
		if _, _, err := identRaw(rest[1:]); err == nil {
			return s, InvalidType, newError(s, NotSupported, "qualified type names")
		}
	}

	var ok bool
	if t, ok = universe[nm]; !ok {
		return s, InvalidType, newError(s, UnknownType, "undefined: %s", nm)
	}

	rest, _, _ = blanks(rest)
	return rest, t, nil
}
