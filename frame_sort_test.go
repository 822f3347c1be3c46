// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByNullableTrailingNulls(t *testing.T) {
	col := newNullableNumericColumn[int32](I32)
	col.MatchLength(5)
	values := []interface{}{int32(3), nil, int32(1), nil, int32(2)}
	for i, v := range values {
		assert.NoError(t, col.Set(i, v))
	}

	label := newNullableStringColumn()
	label.MatchLength(5)
	labels := []string{"three", "na1", "one", "na2", "two"}
	for i, v := range labels {
		assert.NoError(t, label.Set(i, v))
	}

	f, err := NewFrameNamed([]string{"n", "label"}, []Column{col, label})
	assert.NoError(t, err)

	assert.NoError(t, f.SortBy("n"))

	var got []interface{}
	for i := 0; i < 5; i++ {
		v, err := f.columns[0].Get(i)
		assert.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []interface{}{int32(1), int32(2), int32(3), nil, nil}, got)
}

func TestSortByPermutesLockstep(t *testing.T) {
	ids := newNumericColumn[int32](I32)
	ids.MatchLength(3)
	names := newStringColumn()
	names.MatchLength(3)

	idVals := []int32{3, 1, 2}
	nameVals := []string{"c", "a", "b"}
	for i := range idVals {
		assert.NoError(t, ids.Set(i, idVals[i]))
		assert.NoError(t, names.Set(i, nameVals[i]))
	}

	f, err := NewFrameNamed([]string{"id", "name"}, []Column{ids, names})
	assert.NoError(t, err)

	assert.NoError(t, f.SortBy("id"))

	row, err := f.GetRow(0)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), row[0])
	assert.Equal(t, "a", row[1])

	row, err = f.GetRow(2)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), row[0])
	assert.Equal(t, "c", row[1])
}
