// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferWritesTokens(t *testing.T) {
	b := NewBuffer()
	b.WriteString("abc")
	b.WriteInt(42)
	b.WriteByte(';')
	assert.Equal(t, "abc42;", string(b.Bytes()))
}

func TestBufferWriteEscapedRoundTrips(t *testing.T) {
	b := NewBuffer()
	b.WriteEscaped("a,b<c")
	escaped := string(b.Bytes())
	assert.Equal(t, "a<,>b<<>c", escaped)
	assert.Equal(t, "a,b<c", Unescape(escaped))
}

func TestBufferGrowBeyondInitialCapacity(t *testing.T) {
	b := NewBuffer()
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	b.WriteString(string(long))
	assert.Equal(t, 1000, b.Len())
}
