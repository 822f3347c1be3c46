// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringColumnEmptyAndNullCoerceToNA(t *testing.T) {
	c := newStringColumn()
	c.MatchLength(3)

	assert.NoError(t, c.Set(0, nil))
	v, _ := c.Get(0)
	assert.Equal(t, naCell, v)

	assert.NoError(t, c.Set(1, ""))
	v, _ = c.Get(1)
	assert.Equal(t, naCell, v)

	assert.NoError(t, c.Set(2, "hello"))
	v, _ = c.Get(2)
	assert.Equal(t, "hello", v)
}

func TestNullableStringColumnEmptyIsNull(t *testing.T) {
	c := newNullableStringColumn()
	c.MatchLength(2)

	assert.NoError(t, c.Set(0, "text"))
	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, "text", v)

	assert.NoError(t, c.Set(0, ""))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)

	assert.NoError(t, c.Set(1, nil))
	v, err = c.Get(1)
	assert.NoError(t, err)
	assert.Nil(t, v)
}
