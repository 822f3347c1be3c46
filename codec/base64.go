// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package codec

import "encoding/base64"

// ToBase64 encodes a compressed blob (including its "df" magic) as standard,
// non-URL-safe Base64 with no line wrapping. Stdlib encoding/base64: no third-party
// Base64 implementation appears anywhere in the retrieved pack, and the format's
// own spec pins this to RFC 4648 standard encoding.
func ToBase64(blob []byte) string {
	return base64.StdEncoding.EncodeToString(blob)
}

// FromBase64 decodes a standard Base64 string back to the compressed blob.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
