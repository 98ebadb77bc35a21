// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import (
	"encoding/json"
	"strings"
)

// Symbol is a handle to one canonical interned string. The zero value is the
// handle for the empty string and is ready to use.
//
// Symbol is a single word and freely copyable. Two Symbols are == exactly
// when they were interned from equal content, so Symbol works directly as a
// native map key; Equal, Compare, and Hash never allocate.
type Symbol struct {
	idx int32
}

// EmptySymbol returns the handle for the empty string. It is equivalent to
// the zero value and to Intern("").
func EmptySymbol() Symbol {
	return Symbol{}
}

// Equal reports whether s and other reference the same canonical entry. This
// is an index comparison; string content is never inspected.
func (s Symbol) Equal(other Symbol) bool {
	return s.idx == other.idx
}

// Compare orders symbols lexicographically by content, returning -1, 0, or
// +1. Handles for the same entry compare equal without touching content;
// equal content always resolves to the same entry, so the content order and
// identity equality can never disagree. The order is total.
func (s Symbol) Compare(other Symbol) int {
	if s.idx == other.idx {
		return 0
	}
	return strings.Compare(s.Value(), other.Value())
}

// Hash returns the 64-bit content hash of the symbol, computed once when the
// string was interned. Equal symbols hash identically; the call is constant
// time regardless of string length.
func (s Symbol) Hash() uint64 {
	return global.entryAt(s.idx).hash
}

// Value returns the interned string without copying. Entries are never freed
// or relocated, so the returned string is valid for the life of the process.
func (s Symbol) Value() string {
	return global.entryAt(s.idx).str
}

// String implements fmt.Stringer, rendering the interned content.
func (s Symbol) String() string {
	return s.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by interning the text.
func (s *Symbol) UnmarshalText(b []byte) error {
	*s = InternBytes(b)
	return nil
}

// MarshalJSON encodes the symbol as a plain JSON string.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}

// UnmarshalJSON decodes a JSON string and interns it.
func (s *Symbol) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = Intern(str)
	return nil
}
