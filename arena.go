// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

const (
	// segmentSize defines how many entries fit in one segment.
	segmentSize = 512

	// maxSegments caps the table at ~2M distinct strings (4096 * 512).
	maxSegments = 4096
)

// entry is one canonical string. Entries are written exactly once, under the
// table write lock, and never mutated, relocated, or freed afterwards, so a
// *entry stays valid for the lifetime of the process.
type entry struct {
	str  string
	hash uint64
}

// table owns the canonical entry storage and the content index. Entries live
// in fixed-size segments referenced from a fixed pointer array: growth adds a
// segment, it never reallocates one, which is what keeps slot indexes stable.
type table struct {
	segments [maxSegments]*[segmentSize]entry
	segCount int32 // atomic

	// mu guards index and count. Entry resolution (entryAt) is lock-free:
	// a Symbol only exists after the insert that wrote its entry returned.
	mu    sync.RWMutex
	index map[string]int32
	count int32

	hits   uint64 // atomic
	misses uint64 // atomic
	bytes  int64  // atomic
}

func newTable() *table {
	t := &table{
		index: make(map[string]int32),
	}
	// Slot 0 is the empty string, so the zero Symbol is usable without
	// ever calling Intern.
	t.insertLocked("")
	return t
}

// entryAt resolves a slot index to its entry.
func (t *table) entryAt(idx int32) *entry {
	return &t.segments[idx/segmentSize][idx%segmentSize]
}

// extend allocates the next segment. Callers must hold t.mu.
func (t *table) extend() {
	n := atomic.LoadInt32(&t.segCount)
	if n >= maxSegments {
		panic("atom: symbol table capacity exceeded")
	}
	t.segments[n] = new([segmentSize]entry)
	atomic.AddInt32(&t.segCount, 1)
	log.WithFields(logrus.Fields{
		"segments": n + 1,
		"symbols":  t.count,
	}).Debug("atom: allocated symbol segment")
}

// insertLocked copies s into the next free slot and indexes it, returning the
// slot. Callers must hold t.mu.
func (t *table) insertLocked(s string) int32 {
	idx := t.count
	if idx/segmentSize >= atomic.LoadInt32(&t.segCount) {
		t.extend()
	}
	e := t.entryAt(idx)
	// Clone detaches the entry from any larger backing array s was sliced
	// out of; the table must not pin caller memory.
	e.str = strings.Clone(s)
	e.hash = xxhash.Sum64String(s)
	t.index[e.str] = idx
	t.count = idx + 1
	atomic.AddInt64(&t.bytes, int64(len(s)))
	return idx
}
