// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase64RoundTrip(t *testing.T) {
	blob, err := Compress([]byte("round trip me"))
	assert.NoError(t, err)

	s := ToBase64(blob)
	back, err := FromBase64(s)
	assert.NoError(t, err)
	assert.Equal(t, blob, back)
}

func TestFromBase64RejectsInvalidInput(t *testing.T) {
	_, err := FromBase64("not valid base64 !!")
	assert.Error(t, err)
}
