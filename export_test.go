// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

// resetTable replaces the process-wide table so tests can observe entry
// counts without interference from earlier tests. Handles obtained before a
// reset must not be used afterwards. Test builds only.
func resetTable() {
	global = newTable()
}
