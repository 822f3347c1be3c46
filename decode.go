// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"strconv"
	"strings"

	"github.com/kilo52/claymore/codec"
)

// Decode parses the ASCII token stream produced by Encode, rebuilding the frame it
// describes. It is a single-pass, left-to-right state machine matching spec.md
// §4.4.4; any grammar deviation fails with FormatError.
func Decode(data []byte) (*Frame, error) {
	if len(data) < 4 || data[3] != '1' {
		return nil, wrapf(ErrUnsupportedEncoding, "unsupported or missing version byte")
	}

	pos, err := expectLiteral(data, 0, "{v:1;i:")
	if err != nil {
		return nil, err
	}

	flavourStr, pos, err := readUntil(data, pos, ';')
	if err != nil {
		return nil, err
	}
	var flavour Flavour
	switch flavourStr {
	case "default":
		flavour = Default
	case "nullable":
		flavour = Nullable
	default:
		return nil, wrapf(ErrFormat, "unknown frame flavour %q", flavourStr)
	}

	pos, err = expectLiteral(data, pos, ";r:")
	if err != nil {
		return nil, err
	}
	rowsStr, pos, err := readUntil(data, pos, ';')
	if err != nil {
		return nil, err
	}
	rows, err := strconv.Atoi(rowsStr)
	if err != nil || rows < 0 {
		return nil, wrapf(ErrFormat, "invalid row count %q", rowsStr)
	}

	pos, err = expectLiteral(data, pos, ";c:")
	if err != nil {
		return nil, err
	}
	colsStr, pos, err := readUntil(data, pos, ';')
	if err != nil {
		return nil, err
	}
	cols, err := strconv.Atoi(colsStr)
	if err != nil || cols < 0 {
		return nil, wrapf(ErrFormat, "invalid column count %q", colsStr)
	}

	pos, err = expectLiteral(data, pos, ";n:")
	if err != nil {
		return nil, err
	}
	var names []string
	if pos < len(data) && data[pos] != ';' {
		names = make([]string, cols)
		for i := 0; i < cols; i++ {
			tok, next, ok := codec.ReadToken(data, pos)
			if !ok {
				return nil, wrapf(ErrFormat, "truncated name section")
			}
			names[i] = codec.Unescape(tok)
			pos = next
		}
	}

	pos, err = expectLiteral(data, pos, ";t:")
	if err != nil {
		return nil, err
	}
	kinds := make([]Kind, cols)
	nullables := make([]bool, cols)
	for i := 0; i < cols; i++ {
		tok, next, ok := codec.ReadToken(data, pos)
		if !ok {
			return nil, wrapf(ErrFormat, "truncated kind section")
		}
		k, nullable, ok := kindFromToken(tok)
		if !ok {
			return nil, wrapf(ErrFormat, "unknown column kind token %q", tok)
		}
		if nullable != (flavour == Nullable) {
			return nil, wrapf(ErrFormat, "column kind token %q does not match frame flavour %s", tok, flavour)
		}
		kinds[i] = k
		nullables[i] = nullable
		pos = next
	}

	pos, err = expectLiteral(data, pos, ";}")
	if err != nil {
		return nil, err
	}

	columns := make([]Column, cols)
	for i := 0; i < cols; i++ {
		col := newColumnForKind(kinds[i], nullables[i])
		col.MatchLength(rows)
		for row := 0; row < rows; row++ {
			tok, next, ok := codec.ReadToken(data, pos)
			if !ok {
				return nil, wrapf(ErrFormat, "truncated cell at column %d row %d", i, row)
			}
			v, err := decodeCell(kinds[i], nullables[i], tok)
			if err != nil {
				return nil, err
			}
			if err := col.Set(row, v); err != nil {
				return nil, wrapf(ErrFormat, "invalid cell at column %d row %d: %v", i, row, err)
			}
			pos = next
		}
		columns[i] = col
	}

	f := NewFrame(flavour)
	f.next = rows
	for i, c := range columns {
		f.appendColumnRaw(c, "")
		if names != nil {
			f.names[i] = names[i]
			if names[i] != "" {
				f.named++
			}
		}
	}
	return f, nil
}

func decodeCell(kind Kind, nullable bool, tok string) (interface{}, error) {
	if nullable && tok == "null" {
		return nil, nil
	}
	switch kind {
	case I8:
		n, err := strconv.ParseInt(tok, 10, 8)
		if err != nil {
			return nil, wrapf(ErrFormat, "invalid I8 cell %q", tok)
		}
		return int8(n), nil
	case I16:
		n, err := strconv.ParseInt(tok, 10, 16)
		if err != nil {
			return nil, wrapf(ErrFormat, "invalid I16 cell %q", tok)
		}
		return int16(n), nil
	case I32:
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, wrapf(ErrFormat, "invalid I32 cell %q", tok)
		}
		return int32(n), nil
	case I64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, wrapf(ErrFormat, "invalid I64 cell %q", tok)
		}
		return n, nil
	case F32:
		n, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return nil, wrapf(ErrFormat, "invalid F32 cell %q", tok)
		}
		return float32(n), nil
	case F64:
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, wrapf(ErrFormat, "invalid F64 cell %q", tok)
		}
		return n, nil
	case Bool:
		switch tok {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, wrapf(ErrFormat, "invalid Bool cell %q", tok)
		}
	case Char:
		s := codec.Unescape(tok)
		r := []rune(s)
		if len(r) != 1 {
			return nil, wrapf(ErrFormat, "invalid Char cell %q", tok)
		}
		return r[0], nil
	case Str:
		return codec.Unescape(tok), nil
	default:
		return nil, wrapf(ErrUnsupportedOperation, "unsupported column kind %v", kind)
	}
}

func expectLiteral(data []byte, pos int, lit string) (int, error) {
	if pos+len(lit) > len(data) || string(data[pos:pos+len(lit)]) != lit {
		return 0, wrapf(ErrFormat, "expected %q at offset %d", lit, pos)
	}
	return pos + len(lit), nil
}

func readUntil(data []byte, pos int, sep byte) (string, int, error) {
	idx := strings.IndexByte(string(data[pos:]), sep)
	if idx < 0 {
		return "", 0, wrapf(ErrFormat, "expected %q after offset %d", string(sep), pos)
	}
	return string(data[pos : pos+idx]), pos + idx, nil
}

// DecodeFromFile inflates a compressed blob (with file magic) and decodes the
// resulting token stream into a frame.
func DecodeFromFile(blob []byte) (*Frame, error) {
	tokens, ok, err := codec.Decompress(blob)
	if !ok {
		return nil, wrapf(ErrFormat, "missing or invalid file magic")
	}
	if err != nil {
		return nil, wrapf(ErrFormat, "invalid data format")
	}
	return Decode(tokens)
}

// DecodeFromBase64 decodes a Base64 envelope and then the compressed blob it wraps.
func DecodeFromBase64(s string) (*Frame, error) {
	blob, err := codec.FromBase64(s)
	if err != nil {
		return nil, wrapf(ErrFormat, "invalid base64 payload: %v", err)
	}
	return DecodeFromFile(blob)
}
