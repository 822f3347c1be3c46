// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyOfIsIndependent(t *testing.T) {
	col := newNumericColumn[int32](I32)
	col.MatchLength(2)
	assert.NoError(t, col.Set(0, int32(1)))
	assert.NoError(t, col.Set(1, int32(2)))

	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	clone := CopyOf(f)
	assert.NoError(t, clone.SetInt32("n", 0, 99))

	v, err := f.GetInt32("n", 0)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), v)
}

func TestMergeConcatenatesColumns(t *testing.T) {
	a := newNumericColumn[int32](I32)
	a.MatchLength(2)
	fa, err := NewFrameNamed([]string{"a"}, []Column{a})
	assert.NoError(t, err)

	b := newStringColumn()
	b.MatchLength(2)
	fb, err := NewFrameNamed([]string{"b"}, []Column{b})
	assert.NoError(t, err)

	merged, err := Merge(fa, fb)
	assert.NoError(t, err)
	assert.Equal(t, 2, merged.ColumnCount())
	assert.Equal(t, 2, merged.RowCount())
	assert.Equal(t, []string{"a", "b"}, merged.ColumnNames())
}

func TestMergeRejectsDuplicateNames(t *testing.T) {
	a := newNumericColumn[int32](I32)
	a.MatchLength(1)
	fa, err := NewFrameNamed([]string{"x"}, []Column{a})
	assert.NoError(t, err)

	b := newNumericColumn[int32](I32)
	b.MatchLength(1)
	fb, err := NewFrameNamed([]string{"x"}, []Column{b})
	assert.NoError(t, err)

	_, err = Merge(fa, fb)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestConvertRoundTripIsIdentity(t *testing.T) {
	col := newNumericColumn[int32](I32)
	col.MatchLength(3)
	for i := 0; i < 3; i++ {
		assert.NoError(t, col.Set(i, int32(i+1)))
	}
	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	nullable, err := Convert(f, Nullable)
	assert.NoError(t, err)
	assert.Equal(t, Nullable, nullable.Flavour())

	back, err := Convert(nullable, Default)
	assert.NoError(t, err)
	assert.Equal(t, Default, back.Flavour())
	assert.Equal(t, f.RowCount(), back.RowCount())

	for i := 0; i < 3; i++ {
		v, err := back.GetInt32("n", i)
		assert.NoError(t, err)
		assert.Equal(t, int32(i+1), v)
	}
}

func TestConvertNullableToDefaultMaterialisesSentinel(t *testing.T) {
	col := newNullableNumericColumn[int32](I32)
	col.MatchLength(2)
	assert.NoError(t, col.Set(0, int32(5)))
	assert.NoError(t, col.Set(1, nil))

	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	out, err := Convert(f, Default)
	assert.NoError(t, err)

	v, err := out.GetInt32("n", 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), v)
}
