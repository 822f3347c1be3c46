// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Magic is the two leading bytes ("df") identifying a compressed frame blob,
// overwriting the zlib magic that would otherwise appear there.
var Magic = [2]byte{0x64, 0x66}

// zlibMagic is the header zlib's DEFLATE wrapper writes, restored before inflation.
var zlibMagic = [2]byte{0x78, 0x9C}

// Compress DEFLATEs token in a zlib wrapper, then overwrites the first two bytes of
// the result with Magic. Grounded on the teacher's s2-based snapshot codec
// (snapshot.go), with the codec itself swapped to klauspost/compress/zlib since the
// wire format is specified as a zlib stream, which s2 does not produce.
func Compress(token []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(token); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	if len(out) >= 2 {
		out[0], out[1] = Magic[0], Magic[1]
	}
	return out, nil
}

// Decompress restores the zlib magic over the leading two bytes of blob and
// inflates it. It returns ok=false if blob does not start with Magic.
func Decompress(blob []byte) (token []byte, ok bool, err error) {
	if len(blob) < 2 || blob[0] != Magic[0] || blob[1] != Magic[1] {
		return nil, false, nil
	}
	restored := make([]byte, len(blob))
	copy(restored, blob)
	restored[0], restored[1] = zlibMagic[0], zlibMagic[1]

	r, err := zlib.NewReader(bytes.NewReader(restored))
	if err != nil {
		return nil, true, err
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, true, err
	}
	return out, true, nil
}
