// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressWritesMagic(t *testing.T) {
	blob, err := Compress([]byte("hello frame"))
	assert.NoError(t, err)
	assert.Equal(t, Magic[0], blob[0])
	assert.Equal(t, Magic[1], blob[1])
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	original := []byte("{v:1;i:default;r:0;c:0;n:;t:;}")
	blob, err := Compress(original)
	assert.NoError(t, err)

	token, ok, err := Decompress(blob)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, original, token)
}

func TestDecompressRejectsMissingMagic(t *testing.T) {
	_, ok, err := Decompress([]byte{0x00, 0x00, 0x01})
	assert.False(t, ok)
	assert.NoError(t, err)
}
