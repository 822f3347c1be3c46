// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolColumn(t *testing.T) {
	c := newBoolColumn()
	c.MatchLength(4)
	assert.NoError(t, c.Set(0, true))
	assert.NoError(t, c.Set(1, false))

	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = c.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, false, v)

	assert.NoError(t, c.Insert(1, 3, true))
	v0, _ := c.Get(0)
	v1, _ := c.Get(1)
	v2, _ := c.Get(2)
	assert.Equal(t, []bool{true, true, false}, []bool{v0.(bool), v1.(bool), v2.(bool)})
}

func TestNullableBoolColumn(t *testing.T) {
	c := newNullableBoolColumn()
	c.MatchLength(2)

	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)

	assert.NoError(t, c.Set(0, true))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, true, v)

	assert.NoError(t, c.Set(0, nil))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)
}
