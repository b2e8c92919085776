// Copyright 2021 The Gc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package combinator // import "modernc.org/gc/combinator"

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"modernc.org/strutil"
)

var extendedErrors bool

func origin(skip int) string {
	pc, fn, fl, _ := runtime.Caller(skip)
	fn = filepath.Base(fn)
	f := runtime.FuncForPC(pc)
	var fns string
	if f != nil {
		fns = f.Name()
		if x := strings.LastIndex(fns, "."); x > 0 {
			fns = fns[x+1:]
		}
	}
	return fmt.Sprintf("%s:%d:%s", fn, fl, fns)
}

// trc prints a trace line prefixed with the position of its caller.
func trc(s string, args ...interface{}) string {
	switch {
	case s == "":
		s = fmt.Sprintf(strings.Repeat("%v ", len(args)), args...)
	default:
		s = fmt.Sprintf(s, args...)
	}
	_, fn, fl, _ := runtime.Caller(1)
	r := fmt.Sprintf("%s:%d: TRC %s", fn, fl, s)
	fmt.Fprintf(os.Stdout, "%s\n", r)
	os.Stdout.Sync()
	return r
}

// errorf constructs an error message. If extendedErrors is true, the message
// will contain a mini stack trace.
func errorf(s string, args ...interface{}) string {
	switch {
	case s == "":
		s = fmt.Sprintf(strings.Repeat("%v ", len(args)), args...)
	default:
		s = fmt.Sprintf(s, args...)
	}
	switch {
	case extendedErrors:
		return fmt.Sprintf("%s (%v: %v)", s, origin(3), origin(2))
	default:
		return s
	}
}

func h(v interface{}) string {
	switch x := v.(type) {
	case int:
		return humanize.Comma(int64(x))
	case int32:
		return humanize.Comma(int64(x))
	case int64:
		return humanize.Comma(x)
	case uint32:
		return humanize.Comma(int64(x))
	case uint64:
		if x <= math.MaxInt64 {
			return humanize.Comma(int64(x))
		}
	}
	return fmt.Sprint(v)
}

// Dump returns a human readable, indented rendering of an AST value.
func Dump(v interface{}) string {
	return strings.TrimSpace(strutil.PrettyString(v, "", "", nil))
}

type parallel struct {
	errors []error
	limit  chan struct{}
	sync.Mutex
	wg sync.WaitGroup

	bytes int64
	fails int32
	files int32
	oks   int32
}

func newParallel(n int) *parallel {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &parallel{
		limit: make(chan struct{}, n),
	}
}

func (p *parallel) fail()         { atomic.AddInt32(&p.fails, 1) }
func (p *parallel) ok()           { atomic.AddInt32(&p.oks, 1) }
func (p *parallel) file(size int) { atomic.AddInt32(&p.files, 1); atomic.AddInt64(&p.bytes, int64(size)) }

func (p *parallel) stats() BatchStats {
	return BatchStats{
		Bytes: atomic.LoadInt64(&p.bytes),
		Fails: int(atomic.LoadInt32(&p.fails)),
		Files: int(atomic.LoadInt32(&p.files)),
		OKs:   int(atomic.LoadInt32(&p.oks)),
	}
}

func (p *parallel) err(err error) {
	if err == nil {
		return
	}

	p.Lock()
	p.errors = append(p.errors, err)
	p.Unlock()
}

func (p *parallel) exec(run func() error) {
	p.limit <- struct{}{}
	p.wg.Add(1)

	go func() {
		defer func() {
			p.wg.Done()
			<-p.limit
		}()

		p.err(run())
	}()
}

func (p *parallel) wait() error {
	p.wg.Wait()
	if len(p.errors) == 0 {
		return nil
	}

	var a []string
	for _, v := range p.errors {
		a = append(a, v.Error())
	}
	return fmt.Errorf("%s", strings.Join(a, "\n"))
}
