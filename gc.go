// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"
	"modernc.org/mathutil"
)

// maxErrors is the number of errors after which ParseSourceFile gives up
// unless configured with ConfigAllErrors(true).
const maxErrors = 10

type cacheKey struct {
	name string
	sum  [sha256.Size]byte
}

// ConfigOption is a configuration option of NewConfig.
type ConfigOption func(*Config) error

// Config configures ParseSourceFile and ParseSources.
//
// Config instances can be shared, the instance is never mutated once created
// and configured.
type Config struct {
	cache    *lru.Cache[cacheKey, *SourceFile]
	parallel int
	trace    io.Writer

	allErrors  bool
	configured bool
}

// NewConfig returns a newly created config or an error, if any.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	r := &Config{}

	defer func() { r.configured = true }()

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ConfigTrace configures w to receive a line for every top level declaration
// ParseSourceFile attempts.
func ConfigTrace(w io.Writer) ConfigOption {
	return func(cfg *Config) error {
		if cfg.configured {
			return fmt.Errorf("ConfigTrace: Config instance already configured")
		}

		cfg.trace = w
		return nil
	}
}

// ConfigCache configures a cache of up to size parsed source files. Entries
// are keyed by the file name and a digest of its content.
func ConfigCache(size int) ConfigOption {
	return func(cfg *Config) error {
		if cfg.configured {
			return fmt.Errorf("ConfigCache: Config instance already configured")
		}

		c, err := lru.New[cacheKey, *SourceFile](size)
		if err != nil {
			return fmt.Errorf("ConfigCache: %v", err)
		}

		cfg.cache = c
		return nil
	}
}

// ConfigAllErrors configures reporting of all errors. By default parsing of a
// source file stops after 10 errors.
func ConfigAllErrors(v bool) ConfigOption {
	return func(cfg *Config) error {
		if cfg.configured {
			return fmt.Errorf("ConfigAllErrors: Config instance already configured")
		}

		cfg.allErrors = v
		return nil
	}
}

// ConfigParallel configures the maximum number of source files ParseSources
// parses concurrently. Values < 1 select runtime.GOMAXPROCS(0).
func ConfigParallel(n int) ConfigOption {
	return func(cfg *Config) error {
		if cfg.configured {
			return fmt.Errorf("ConfigParallel: Config instance already configured")
		}

		cfg.parallel = n
		return nil
	}
}

var defaultConfig, _ = NewConfig()

// SourceFile is a parsed source file.
//
//	SourceFile = PackageClause ";" { ImportDecl ";" } { FunctionDecl ";" } .
type SourceFile struct {
	PackageClause *Pkg
	ImportDecls   []*Import
	TopLevelDecls []*Function
	Source        *Source
}

// TopLevel returns all declarations of n in source order.
func (n *SourceFile) TopLevel() (r []TopLevel) {
	if n.PackageClause != nil {
		r = append(r, n.PackageClause)
	}
	for _, v := range n.ImportDecls {
		r = append(r, v)
	}
	for _, v := range n.TopLevelDecls {
		r = append(r, v)
	}
	return r
}

// ParseSourceFile parses buf using a default configuration. Positions are
// reported as if buf is coming from a file named name.
func ParseSourceFile(name string, buf []byte) (*SourceFile, error) {
	return defaultConfig.ParseSourceFile(name, buf)
}

// ParseSourceFile parses buf. Positions are reported as if buf is coming from
// a file named name.
//
// Declarations may be separated by semicolons, newlines and comments. Every
// declaration must be followed by a semicolon, a newline, a comment or the
// end of input.
func (c *Config) ParseSourceFile(name string, buf []byte) (*SourceFile, error) {
	var key cacheKey
	if c.cache != nil {
		key = cacheKey{name, sha256.Sum256(buf)}
		if r, ok := c.cache.Get(key); ok {
			return r, nil
		}
	}

	p := newFileParser(c, NewSource(name, string(buf)))
	r, err := p.parse()
	if err == nil && c.cache != nil {
		c.cache.Add(key, r)
	}
	return r, err
}

type fileParser struct {
	cfg  *Config
	errs errList
	src  *Source

	maxOff int
}

func newFileParser(cfg *Config, src *Source) *fileParser {
	return &fileParser{cfg: cfg, src: src}
}

func (p *fileParser) off(rest string) int { return len(p.src.text) - len(rest) }

func (p *fileParser) trace(rest, what string) {
	if p.cfg.trace == nil {
		return
	}

	line := rest
	if x := strings.IndexByte(line, '\n'); x >= 0 {
		line = line[:x]
	}
	fmt.Fprintf(p.cfg.trace, "%v: TRC %s %q\n", p.src.Rest(rest), what, line)
}

// err records err and reports whether parsing should go on.
func (p *fileParser) err(err error) bool {
	off := len(p.src.text)
	if e, ok := err.(*Error); ok {
		off = p.off(e.Input)
	}
	p.maxOff = mathutil.Max(p.maxOff, off)
	p.errs.add(off, err)
	return p.cfg.allErrors || len(p.errs) < maxErrors
}

// recover skips the line of the furthest error so far and any following
// lines that cannot start a declaration, like indented lines or closing
// braces of function bodies.
func (p *fileParser) recover(rest string) string {
	off := mathutil.Max(p.maxOff, p.off(rest))
	rest = p.src.text[off:]
	for {
		x := strings.IndexByte(rest, '\n')
		if x < 0 {
			return ""
		}

		rest = rest[x+1:]
		if rest == "" || rest[0] == '/' {
			return rest
		}

		if _, _, err := identChars(rest); err == nil {
			return rest
		}
	}
}

// terminator consumes the blanks, comment and semicolon or newline following
// a declaration.
func (p *fileParser) terminator(rest string) (string, error) {
	s := rest
	rest, _, _ = blanks(rest)
	switch {
	case rest == "":
		return rest, nil
	case rest[0] == ';' || rest[0] == '\n':
		return rest[1:], nil
	case strings.HasPrefix(rest, "//"):
		return skipLineComment(rest), nil
	case strings.HasPrefix(rest, "/*"):
		r, sp, err := spacing(rest)
		if err != nil {
			return s, err
		}

		if r == "" || strings.Contains(sp, "\n") {
			return r, nil
		}

		return p.terminator(r)
	case rest[0] == '{':
		return s, newError(rest, NotSupported, "function bodies")
	default:
		return s, newError(rest, NoMatch, "unexpected %q after declaration", leadingToken(rest))
	}
}

func leadingToken(s string) string {
	if op := longestOperator(s); op != "" {
		return op
	}

	if _, nm, err := identChars(s); err == nil {
		return nm
	}

	if _, lit, err := intLit(s); err == nil {
		return lit.Src
	}

	return s[:1]
}

func (p *fileParser) parse() (*SourceFile, error) {
	r := &SourceFile{Source: p.src}
	rest, _, err := spacing(p.src.text)
	if err != nil {
		p.err(err)
		return nil, p.errs.Err(p.src)
	}

	p.trace(rest, "package")
	if rest, r.PackageClause, err = ParsePackageClause(rest); err != nil {
		p.err(err)
		return nil, p.errs.Err(p.src)
	}

	if rest, err = p.terminator(rest); err != nil {
		if !p.err(err) {
			return nil, p.errs.Err(p.src)
		}

		rest = p.recover(rest)
	}

	imports := true
	for {
		if rest, _, err = spacing(rest); err != nil {
			p.err(err)
			break
		}

		if rest == "" {
			break
		}

		switch {
		case hasKeyword(rest, "import"):
			p.trace(rest, "import")
			start := rest
			var n *Import
			if rest, n, err = ParseImportDecl(rest); err != nil {
				break
			}

			if !imports && !p.err(newError(start, NoMatch, "imports must appear before other declarations")) {
				return nil, p.errs.Err(p.src)
			}

			r.ImportDecls = append(r.ImportDecls, n)
		case hasKeyword(rest, "func"):
			p.trace(rest, "func")
			imports = false
			var n *Function
			if rest, n, err = ParseFunctionDecl(rest); err != nil {
				break
			}

			r.TopLevelDecls = append(r.TopLevelDecls, n)
		case hasKeyword(rest, "const"), hasKeyword(rest, "type"), hasKeyword(rest, "var"):
			imports = false
			_, kw, _ := identChars(rest)
			err = newError(rest, NotSupported, "%s declarations", kw)
		default:
			err = newError(rest, NoMatch, "non-declaration statement outside function body")
		}
		if err == nil {
			rest, err = p.terminator(rest)
		}
		if err != nil {
			if !p.err(err) {
				break
			}

			rest = p.recover(rest)
		}
	}
	if err := p.errs.Err(p.src); err != nil {
		return nil, err
	}

	return r, nil
}

func hasKeyword(s, kw string) bool {
	_, nm, err := identChars(s)
	return err == nil && nm == kw
}

// NamedSource is the input of ParseSources.
type NamedSource struct {
	Name string
	Buf  []byte
}

// BatchStats summarizes a ParseSources invocation.
type BatchStats struct {
	Bytes int64
	Fails int
	Files int
	OKs   int
}

// String implements fmt.Stringer.
func (s BatchStats) String() string {
	return fmt.Sprintf("files %s, ok %s, fail %s, %s", h(s.Files), h(s.OKs), h(s.Fails), humanize.Bytes(uint64(s.Bytes)))
}

// ParseSources parses srcs concurrently. The i-th item of the resulting slice
// is the result of parsing srcs[i] or nil if that failed. The error, if any,
// combines the errors of all failed sources.
func (c *Config) ParseSources(srcs []NamedSource) ([]*SourceFile, BatchStats, error) {
	r := make([]*SourceFile, len(srcs))
	p := newParallel(c.parallel)
	for i, v := range srcs {
		i, v := i, v
		p.exec(func() error {
			p.file(len(v.Buf))
			f, err := c.ParseSourceFile(v.Name, v.Buf)
			if err != nil {
				p.fail()
				return err
			}

			p.ok()
			r[i] = f
			return nil
		})
	}
	err := p.wait()
	return r, p.stats(), err
}
