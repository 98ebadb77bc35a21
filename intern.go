// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// log is the package logger. Only debug-level diagnostics are emitted.
var log = logrus.StandardLogger()

// global is the process-wide symbol table. It is created when the package is
// initialized and never torn down; interned strings live until process exit.
var global = newTable()

// Intern returns the Symbol for s, creating a canonical entry if s has not
// been interned before. Handles obtained for equal content are always equal;
// the input is copied at most once, on first intern.
//
// Intern never fails. It is safe for concurrent use: when several goroutines
// race to intern the same new string, exactly one entry is created and all of
// them receive handles to it.
func Intern(s string) Symbol {
	t := global
	t.mu.RLock()
	idx, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		atomic.AddUint64(&t.hits, 1)
		return Symbol{idx}
	}

	t.mu.Lock()
	// Double-check after acquiring the write lock: another goroutine may
	// have interned s while we were waiting.
	if idx, ok := t.index[s]; ok {
		t.mu.Unlock()
		atomic.AddUint64(&t.hits, 1)
		return Symbol{idx}
	}
	idx = t.insertLocked(s)
	t.mu.Unlock()
	atomic.AddUint64(&t.misses, 1)
	return Symbol{idx}
}

// InternBytes is Intern for a byte slice. On the hit path the string
// conversion inside the map lookup does not allocate.
func InternBytes(b []byte) Symbol {
	t := global
	t.mu.RLock()
	idx, ok := t.index[string(b)]
	t.mu.RUnlock()
	if ok {
		atomic.AddUint64(&t.hits, 1)
		return Symbol{idx}
	}
	return Intern(string(b))
}

// Lookup returns the Symbol for s if s has already been interned. Unlike
// Intern it never creates an entry.
func Lookup(s string) (Symbol, bool) {
	t := global
	t.mu.RLock()
	idx, ok := t.index[s]
	t.mu.RUnlock()
	if !ok {
		return Symbol{}, false
	}
	return Symbol{idx}, true
}

// Len returns the number of distinct strings interned so far. The empty
// string is always present, so Len is at least 1.
func Len() int {
	t := global
	t.mu.RLock()
	n := int(t.count)
	t.mu.RUnlock()
	return n
}

// DumpSymbols logs the table totals and every interned symbol at debug
// level. Diagnostic aid; holds the read lock for the duration.
func DumpSymbols(logger logrus.FieldLogger) {
	t := global
	t.mu.RLock()
	defer t.mu.RUnlock()
	logger.WithFields(logrus.Fields{
		"symbols": t.count,
		"bytes":   atomic.LoadInt64(&t.bytes),
	}).Debug("atom: symbol table")
	for i := int32(0); i < t.count; i++ {
		logger.Debugf("atom: symbol %d: %q", i, t.entryAt(i).str)
	}
}
