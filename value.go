// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"go/constant"
	"go/token"
	"strings"
)

var unknown = constant.MakeUnknown()

// Value returns the value of n. Underscores and prefixes are handled as in
// Go source code.
func (n IntLit) Value() constant.Value { return constant.MakeFromLiteral(n.Src, token.INT, 0) }

// Value returns the value of n.
func (n RuneLit) Value() constant.Value { return constant.MakeInt64(int64(n.Char)) }

// Value returns the value of n. Carriage returns are discarded from raw
// string literals.
func (n StringLit) Value() constant.Value {
	if n.Raw() {
		return constant.MakeString(strings.ReplaceAll(n.Text(), "\r", ""))
	}

	return constant.MakeString(n.Text())
}

// Value returns the value of n. FloatLit is not produced by the parser and
// its value is always unknown.
func (n FloatLit) Value() constant.Value { return unknown }

// Value returns the value of n. ImaginaryLit is not produced by the parser
// and its value is always unknown.
func (n ImaginaryLit) Value() constant.Value { return unknown }

// Representable reports whether the value of n fits in t.
func (n IntLit) Representable(t GoType) bool {
	v := n.Value()
	if v.Kind() != constant.Int {
		return false
	}

	switch t.Underlying() {
	case Int, Int64:
		_, ok := constant.Int64Val(v)
		return ok
	case Int8:
		return fitsSigned(v, 8)
	case Int16:
		return fitsSigned(v, 16)
	case Int32:
		return fitsSigned(v, 32)
	case Uint, Uint64, Uintptr:
		_, ok := constant.Uint64Val(v)
		return ok
	case Uint8:
		return fitsUnsigned(v, 8)
	case Uint16:
		return fitsUnsigned(v, 16)
	case Uint32:
		return fitsUnsigned(v, 32)
	case Float32, Float64, Complex64, Complex128:
		return true
	default:
		return false
	}
}

func fitsSigned(v constant.Value, bits uint) bool {
	i, ok := constant.Int64Val(v)
	return ok && i >= -1<<(bits-1) && i < 1<<(bits-1)
}

func fitsUnsigned(v constant.Value, bits uint) bool {
	u, ok := constant.Uint64Val(v)
	return ok && u < 1<<bits
}
