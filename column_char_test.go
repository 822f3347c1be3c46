// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharColumn(t *testing.T) {
	c := newCharColumn()
	c.MatchLength(2)

	assert.NoError(t, c.Set(0, 'a'))
	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, 'a', v)

	err = c.Set(1, nil)
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	err = c.Set(1, rune(0x10FFFF))
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestNullableCharColumn(t *testing.T) {
	c := newNullableCharColumn()
	c.MatchLength(1)

	v, err := c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)

	assert.NoError(t, c.Set(0, 'z'))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, 'z', v)

	assert.NoError(t, c.Set(0, nil))
	v, err = c.Get(0)
	assert.NoError(t, err)
	assert.Nil(t, v)
}
