// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package atom implements process-wide string interning.
//
// Interning stores at most one canonical copy of any distinct string and
// hands out Symbol handles that compare, hash, and order without re-reading
// string content on the hot path:
//
//   - Equality is a single index comparison, constant time for any length
//   - Hashes are computed once, when the string is interned
//   - Ordering is lexicographic by content, so sorted output is deterministic
//   - Handles are one word, freely copyable, and shareable across goroutines
//
// Canonical entries are allocated from an arena of fixed-size segments that
// grows by adding segments, never by reallocating existing ones, so every
// entry keeps a stable location for the lifetime of the process. There is no
// eviction: an interned string lives until the process exits.
//
// The table is process-wide state. Intern, InternBytes, and Lookup are safe
// for concurrent use without external synchronization.
package atom
