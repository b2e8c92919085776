// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"go/token"
	"path"
)

// Scope binds names to the positions of their declarations.
type Scope struct {
	Nodes  map[string]token.Position
	Parent *Scope
}

func newScope(parent *Scope) *Scope { return &Scope{Parent: parent} }

// Lookup returns the position of the declaration of nm in s or its parents.
func (s *Scope) Lookup(nm string) (pos token.Position, ok bool) {
	for ; s != nil; s = s.Parent {
		if pos, ok = s.Nodes[nm]; ok {
			return pos, true
		}
	}
	return pos, false
}

func (s *Scope) add(c *ctx, nm string) {
	if nm == "_" {
		return
	}

	pos := c.src.PositionOf(nm)
	if x, ok := s.Lookup(nm); ok {
		c.err(nm, "%s redeclared, previous declaration at %v:", nm, x)
		return
	}

	if s.Nodes == nil {
		s.Nodes = map[string]token.Position{}
	}
	s.Nodes[nm] = pos
}

type ctx struct {
	errs errList
	src  *Source
}

func newCtx(src *Source) *ctx { return &ctx{src: src} }

// err reports an error at the position of at, a slice of the source text.
func (c *ctx) err(at string, msg string, args ...interface{}) {
	off, ok := c.src.offsetOf(at)
	if !ok {
		off = -1
	}
	c.errs.err(off, msg, args...)
}

// Check reports semantic errors of n: invalid package name, names declared
// more than once and misplaced variadic parameters.
func (n *SourceFile) Check() error {
	c := newCtx(n.Source)
	if n.PackageClause != nil && n.PackageClause.Name == "_" {
		c.err(n.PackageClause.Name, "invalid package name _")
	}

	file := newScope(nil)
	for _, v := range n.ImportDecls {
		v.check(c, file)
	}
	pkg := newScope(file)
	for _, v := range n.TopLevelDecls {
		v.check(c, pkg)
	}
	return c.errs.Err(n.Source)
}

func (n *Import) check(c *ctx, s *Scope) {
	for _, v := range n.Specs {
		switch nm := v.Name(); nm {
		case ".", "_":
			// nop
		default:
			if v.Alias == "" {
				// The declared name comes from the path.
				if x, ok := s.Lookup(nm); ok {
					c.err(v.Path, "%s redeclared, previous declaration at %v:", nm, x)
					break
				}

				if s.Nodes == nil {
					s.Nodes = map[string]token.Position{}
				}
				s.Nodes[nm] = c.src.PositionOf(v.Path)
				break
			}

			s.add(c, v.Alias)
		}
	}
}

// Name returns the name n declares in the file scope: the alias, if any,
// otherwise the last element of the import path.
func (n ImportDeclaration) Name() string {
	if n.Alias != "" {
		return n.Alias
	}

	return path.Base(n.Path)
}

func (n *Function) check(c *ctx, s *Scope) {
	if n.Name != "init" {
		s.add(c, n.Name)
	}
	fn := newScope(nil)
	for i, v := range n.Params.List {
		for _, nm := range v.Identifiers {
			fn.add(c, nm)
		}
		if !v.IsVariadic {
			continue
		}

		if i != len(n.Params.List)-1 || len(v.Identifiers) > 1 {
			at := n.Name
			if len(v.Identifiers) != 0 {
				at = v.Identifiers[0]
			}
			c.err(at, "can only use ... with final parameter in list")
		}
	}
}
