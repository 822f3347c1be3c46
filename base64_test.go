// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBase64RoundTrip checks from_base64(to_base64(f)) == f (spec.md §8's "Base64
// round-trip" scenario). The source's truthBase64 golden fixture is not available in
// this retrieval pack, so this asserts the round-trip property rather than a byte-for-
// byte match against a golden string.
func TestBase64RoundTrip(t *testing.T) {
	col := newNullableNumericColumn[int32](I32)
	col.MatchLength(3)
	assert.NoError(t, col.Set(0, int32(1)))
	assert.NoError(t, col.Set(1, nil))
	assert.NoError(t, col.Set(2, int32(3)))

	f, err := NewFrameNamed([]string{"n"}, []Column{col})
	assert.NoError(t, err)

	s, err := EncodeToBase64(f)
	assert.NoError(t, err)

	back, err := DecodeFromBase64(s)
	assert.NoError(t, err)
	assert.Equal(t, f.RowCount(), back.RowCount())

	v, err := back.GetInt32("n", 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), v)

	isNull, err := back.IsNull("n", 1)
	assert.NoError(t, err)
	assert.True(t, isNull)
}
