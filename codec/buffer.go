// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Package codec implements the frame-unaware primitives of the binary format: a
// growable ASCII token buffer with escaping, DEFLATE compression with the file
// magic rewrite, and the Base64 envelope. The frame-aware grammar that drives these
// primitives lives in the root package's encode.go/decode.go.
package codec

import "strconv"

// maxLen caps buffer growth near 2^30, per the format's documented saturation
// point. Grounded on the teacher's commit.Buffer (commit/buffer.go), which grows a
// destination []byte by doubling; this buffer adds the saturating ceiling the
// teacher's buffer does not need, since its chunked format never approaches it.
const maxLen = 1 << 30

// Buffer is a growable byte buffer for writing the ASCII token stream. It is owned
// by its writer for the duration of one encode call; callers must not retain
// references to the slice returned by Bytes after further writes.
type Buffer struct {
	data []byte
}

// NewBuffer creates an empty buffer with a small initial capacity.
func NewBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, 64)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's contents trimmed to the exact written length. The
// returned slice aliases the buffer; callers that intend to keep it should copy it.
func (b *Buffer) Bytes() []byte { return b.data }

// grow ensures at least n additional bytes of spare capacity, doubling as needed and
// saturating the growth step once the required capacity crosses maxLen.
func (b *Buffer) grow(n int) {
	need := len(b.data) + n
	if cap(b.data) >= need {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < need {
		if newCap >= maxLen {
			newCap = need
			break
		}
		newCap *= 2
	}
	clone := make([]byte, len(b.data), newCap)
	copy(clone, b.data)
	b.data = clone
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

// WriteString appends s verbatim, with no escaping.
func (b *Buffer) WriteString(s string) {
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// WriteInt appends the decimal ASCII rendering of v.
func (b *Buffer) WriteInt(v int) {
	b.WriteString(strconv.Itoa(v))
}

// WriteEscaped appends s with the grammar's two escapes applied: "," becomes "<,>"
// and "<" becomes "<<>". Used for Str/Char cells and column names.
func (b *Buffer) WriteEscaped(s string) {
	for _, r := range s {
		switch r {
		case ',':
			b.WriteString("<,>")
		case '<':
			b.WriteString("<<>")
		default:
			b.grow(4)
			b.data = append(b.data, string(r)...)
		}
	}
}

// Unescape reverses WriteEscaped's transform on a token already isolated from its
// surrounding terminators.
func Unescape(token string) string {
	out := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		if token[i] == '<' && i+2 < len(token) && token[i+2] == '>' {
			switch token[i+1] {
			case ',':
				out = append(out, ',')
				i += 2
				continue
			case '<':
				out = append(out, '<')
				i += 2
				continue
			}
		}
		out = append(out, token[i])
	}
	return string(out)
}
