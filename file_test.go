// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoadFrameRoundTrip(t *testing.T) {
	col := newNumericColumn[int32](I32)
	col.MatchLength(3)
	for i := 0; i < 3; i++ {
		assert.NoError(t, col.Set(i, int32(i*10)))
	}
	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out")
	assert.NoError(t, SaveFrame(path, f))

	loaded, err := LoadFrame(path + fileExtension)
	assert.NoError(t, err)
	assert.Equal(t, f.RowCount(), loaded.RowCount())

	v, err := loaded.GetInt32("n", 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(20), v)
}

func TestSaveFrameWritesFileMagic(t *testing.T) {
	col := newNumericColumn[int32](I32)
	col.MatchLength(1)
	assert.NoError(t, col.Set(0, int32(1)))
	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "magic.df")
	assert.NoError(t, SaveFrame(path, f))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, len(raw) >= 2)
	assert.Equal(t, byte(0x64), raw[0])
	assert.Equal(t, byte(0x66), raw[1])
}

func TestLoadFrameRejectsCorruptedMagic(t *testing.T) {
	col := newNumericColumn[int32](I32)
	col.MatchLength(1)
	assert.NoError(t, col.Set(0, int32(1)))
	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corrupt.df")
	assert.NoError(t, SaveFrame(path, f))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	raw[0] = 0x00
	raw[1] = 0x00
	assert.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = LoadFrame(path)
	assert.Error(t, err)
}
