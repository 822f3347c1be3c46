// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTokenStopsAtPlainComma(t *testing.T) {
	tok, next, ok := ReadToken([]byte("hello,world"), 0)
	assert.True(t, ok)
	assert.Equal(t, "hello", tok)
	assert.Equal(t, 6, next)
}

func TestReadTokenSkipsEscapedComma(t *testing.T) {
	data := []byte("a<,>b,rest")
	tok, next, ok := ReadToken(data, 0)
	assert.True(t, ok)
	assert.Equal(t, "a<,>b", tok)
	assert.Equal(t, 6, next)
	assert.Equal(t, "rest", string(data[next:]))
}

func TestReadTokenNoTerminatorFails(t *testing.T) {
	_, _, ok := ReadToken([]byte("noterminator"), 0)
	assert.False(t, ok)
}
