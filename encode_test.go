// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildGrammarFrame(t *testing.T) *Frame {
	t.Helper()
	ids := newNumericColumn[int32](I32)
	ids.MatchLength(2)
	names := newStringColumn()
	names.MatchLength(2)

	assert.NoError(t, ids.Set(0, int32(1)))
	assert.NoError(t, ids.Set(1, int32(2)))
	assert.NoError(t, names.Set(0, "a, <b>"))
	assert.NoError(t, names.Set(1, "plain"))

	f, err := NewFrameNamed([]string{"id", "name"}, []Column{ids, names})
	assert.NoError(t, err)
	return f
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := buildGrammarFrame(t)

	tokens, err := Encode(f)
	assert.NoError(t, err)

	back, err := Decode(tokens)
	assert.NoError(t, err)
	assert.Equal(t, f.RowCount(), back.RowCount())
	assert.Equal(t, f.ColumnCount(), back.ColumnCount())

	v, err := back.GetStr("name", 0)
	assert.NoError(t, err)
	assert.Equal(t, "a, <b>", v)

	id, err := back.GetInt32("id", 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), id)
}

func TestEncodeDecodeNullableRoundTrip(t *testing.T) {
	col := newNullableNumericColumn[int32](I32)
	col.MatchLength(3)
	assert.NoError(t, col.Set(0, int32(1)))
	assert.NoError(t, col.Set(1, nil))
	assert.NoError(t, col.Set(2, int32(3)))

	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	tokens, err := Encode(f)
	assert.NoError(t, err)

	back, err := Decode(tokens)
	assert.NoError(t, err)

	isNull, err := back.IsNull("n", 1)
	assert.NoError(t, err)
	assert.True(t, isNull)

	v, err := back.GetInt32("n", 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), v)
}
