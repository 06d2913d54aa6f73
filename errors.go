// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "github.com/cockroachdb/errors"

// Argument errors
var (
	// ErrOutOfRange indicates that a key lies outside the bounds of a view.
	ErrOutOfRange = errors.New("key out of range")
)

// Access errors
var (
	// ErrNoSuchElement indicates that a map or view has no first or last key
	// because it is empty.
	ErrNoSuchElement = errors.New("no such element")

	// ErrDetachedEntry indicates a write through an entry that no longer
	// refers to a node of its map, such as one returned by PollFirstEntry.
	ErrDetachedEntry = errors.New("entry is detached from its map")
)

// Cursor errors
var (
	// ErrConcurrentModification indicates that the map was structurally
	// modified other than through the cursor since the cursor last looked.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrNoCurrent indicates that the cursor is not positioned on an entry.
	ErrNoCurrent = errors.New("cursor has no current entry")
)
