// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"io"
	"os"
	"strings"

	"github.com/kelindar/iostream"
)

// fileExtension is the literal suffix every frame file must carry.
const fileExtension = ".df"

// withExtension appends fileExtension to path if it is not already present.
func withExtension(path string) string {
	if strings.HasSuffix(path, fileExtension) {
		return path
	}
	return path + fileExtension
}

// SaveFrame writes f to path, appending the .df extension if missing. The write is
// buffered end-to-end through iostream.Writer, grounded on the teacher's
// commit.Log.OpenFile/Append (commit/log.go), which wraps a plain *os.File the same
// way for a single whole-blob write. The blob is written raw (via Writer.Write, not
// the length-prefixed WriteBytes helper) so the file's leading bytes are the format
// magic itself, per spec.md §6.2.
func SaveFrame(path string, f *Frame) error {
	blob, err := EncodeToFile(f)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(withExtension(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	w := iostream.NewWriter(file)
	if _, err := w.Write(blob); err != nil {
		return err
	}
	return w.Flush()
}

// LoadFrame reads path in full and decodes it back into a frame, failing
// FormatError if the leading bytes do not match the file magic.
func LoadFrame(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := iostream.NewReader(file)
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapf(ErrFormat, "failed to read frame file: %v", err)
	}
	return DecodeFromFile(blob)
}
