// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericColumnGrowAndMatchLength(t *testing.T) {
	c := newNumericColumn[int32](I32)
	assert.Equal(t, 0, c.Capacity())
	c.Grow()
	assert.Equal(t, 2, c.Capacity())
	c.Grow()
	assert.Equal(t, 4, c.Capacity())

	c.MatchLength(10)
	assert.Equal(t, 10, c.Capacity())
	c.MatchLength(3)
	assert.Equal(t, 3, c.Capacity())
}

func TestNumericColumnSetGetBounds(t *testing.T) {
	c := newNumericColumn[int32](I32)
	c.MatchLength(2)

	assert.NoError(t, c.Set(0, int32(42)))
	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), v)

	_, err = c.Get(5)
	assert.True(t, errors.Is(err, ErrBounds))

	err = c.Set(0, nil)
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	err = c.Set(0, "nope")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestNumericColumnInsertRemove(t *testing.T) {
	c := newNumericColumn[int32](I32)
	c.MatchLength(4)
	for i := 0; i < 3; i++ {
		assert.NoError(t, c.Set(i, int32(i)))
	}

	assert.NoError(t, c.Insert(1, 3, int32(99)))
	v0, _ := c.Get(0)
	v1, _ := c.Get(1)
	v2, _ := c.Get(2)
	v3, _ := c.Get(3)
	assert.Equal(t, []int32{0, 99, 1, 2}, []int32{v0.(int32), v1.(int32), v2.(int32), v3.(int32)})

	c.Remove(1, 2, 4)
	v0, _ = c.Get(0)
	v1, _ = c.Get(1)
	v2, _ = c.Get(2)
	v3, _ = c.Get(3)
	assert.Equal(t, int32(0), v0)
	assert.Equal(t, int32(1), v1)
	assert.Equal(t, int32(2), v2)
	assert.Equal(t, int32(0), v3)
}

func TestNullableNumericColumnNullHandling(t *testing.T) {
	c := newNullableNumericColumn[float64](F64)
	c.MatchLength(3)

	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)

	assert.NoError(t, c.Set(0, 3.5))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v)

	assert.NoError(t, c.Set(0, nil))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestNumericColumnClone(t *testing.T) {
	c := newNumericColumn[int64](I64)
	c.MatchLength(2)
	assert.NoError(t, c.Set(0, int64(7)))

	clone := c.Clone().(*numericColumn[int64])
	assert.NoError(t, clone.Set(0, int64(99)))

	v, _ := c.Get(0)
	assert.Equal(t, int64(7), v)
}
