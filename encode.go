// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"strconv"

	"github.com/kilo52/claymore/codec"
)

// Encode renders f as the ASCII token stream described by the grammar in
// spec.md §4.4.1: a header followed by COLS×ROWS cells in column-major order.
// Grounded on the teacher's collection-level WriteTo (snapshot.go), replaced with
// the grammar encoder the codec package's Buffer backs.
func Encode(f *Frame) ([]byte, error) {
	rows := max0(f.next)
	b := codec.NewBuffer()

	b.WriteString("{v:1;i:")
	b.WriteString(f.flavour.String())
	b.WriteString(";r:")
	b.WriteInt(rows)
	b.WriteString(";c:")
	b.WriteInt(len(f.columns))
	b.WriteString(";n:")
	if f.named > 0 {
		for i := range f.columns {
			name, _ := f.ColumnName(i)
			b.WriteEscaped(name)
			b.WriteString(",")
		}
	}
	b.WriteString(";t:")
	for _, c := range f.columns {
		b.WriteString(tokenName(c.Kind(), c.IsNullable()))
		b.WriteString(",")
	}
	b.WriteString(";}")

	for _, c := range f.columns {
		for row := 0; row < rows; row++ {
			v, err := c.Get(row)
			if err != nil {
				return nil, err
			}
			if err := encodeCell(b, c.Kind(), v); err != nil {
				return nil, err
			}
			b.WriteString(",")
		}
	}

	return b.Bytes(), nil
}

func encodeCell(b *codec.Buffer, kind Kind, v interface{}) error {
	if v == nil {
		b.WriteString("null")
		return nil
	}
	switch kind {
	case I8:
		b.WriteInt(int(v.(int8)))
	case I16:
		b.WriteInt(int(v.(int16)))
	case I32:
		b.WriteInt(int(v.(int32)))
	case I64:
		b.WriteString(strconv.FormatInt(v.(int64), 10))
	case F32:
		b.WriteString(strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32))
	case F64:
		b.WriteString(strconv.FormatFloat(v.(float64), 'g', -1, 64))
	case Bool:
		if v.(bool) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Char:
		b.WriteEscaped(string(v.(rune)))
	case Str:
		b.WriteEscaped(v.(string))
	default:
		return wrapf(ErrUnsupportedOperation, "unsupported column kind %v", kind)
	}
	return nil
}

// EncodeToFile produces the full persistence pipeline output for f: grammar tokens,
// DEFLATE-compressed with the file magic, ready to be written to disk or wrapped in
// Base64.
func EncodeToFile(f *Frame) ([]byte, error) {
	tokens, err := Encode(f)
	if err != nil {
		return nil, err
	}
	return codec.Compress(tokens)
}

// EncodeToBase64 produces the Base64 envelope of f's compressed token stream.
func EncodeToBase64(f *Frame) (string, error) {
	blob, err := EncodeToFile(f)
	if err != nil {
		return "", err
	}
	return codec.ToBase64(blob), nil
}
