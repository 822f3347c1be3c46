// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the error taxonomy from spec §7. Callers should test
// against these with errors.Is, e.g. errors.Is(err, claymore.ErrBounds).
var (
	// ErrBounds indicates a row or column index outside its valid range.
	ErrBounds = errors.New("index out of range")

	// ErrInvalidRequest indicates an argument contract violation: a null/empty name,
	// a duplicate name, a type mismatch, a row-length mismatch, a wrong column
	// flavour, or an unknown name.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedOperation indicates a semantically undefined operation, such as
	// statistics on a non-numeric column or an average over an empty or all-null
	// selection.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrFormat indicates a malformed binary stream: bad magic, grammar violation,
	// or a DEFLATE failure.
	ErrFormat = errors.New("malformed binary stream")

	// ErrUnsupportedEncoding indicates the decoder encountered a version byte it
	// does not understand.
	ErrUnsupportedEncoding = errors.New("unsupported encoding version")

	// ErrInvalidState indicates a one-shot operation was invoked more than once.
	ErrInvalidState = errors.New("invalid state")
)

// wrapf wraps one of the sentinels above with operation-specific context, in the
// style of the teacher's "column: <message>" errors (collection.go, columns.go).
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("claymore: %s: %w", fmt.Sprintf(format, args...), sentinel)
}
