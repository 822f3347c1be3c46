// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

// CopyOf returns a structurally independent clone of f, preserving flavour, column
// order, names and values.
func CopyOf(f *Frame) *Frame {
	clone := &Frame{
		flavour: f.flavour,
		next:    f.next,
		named:   f.named,
	}
	clone.columns = make([]Column, len(f.columns))
	for i, c := range f.columns {
		clone.columns[i] = c.Clone()
	}
	clone.names = make([]string, len(f.names))
	copy(clone.names, f.names)
	return clone
}

// Merge concatenates the columns of frames horizontally, in order. All frames must
// share the same flavour and row count; a name collision across frames fails
// InvalidRequest.
func Merge(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, wrapf(ErrInvalidRequest, "at least one frame is required")
	}
	flavour := frames[0].flavour
	rows := max0(frames[0].next)
	for _, fr := range frames[1:] {
		if fr.flavour != flavour {
			return nil, wrapf(ErrInvalidRequest, "cannot merge frames of different flavours")
		}
		if max0(fr.next) != rows {
			return nil, wrapf(ErrInvalidRequest, "cannot merge frames with different row counts (%d != %d)", fr.next, rows)
		}
	}

	out := NewFrame(flavour)
	out.next = rows
	seen := make(map[string]bool)
	for _, fr := range frames {
		for i, c := range fr.columns {
			name := fr.names[i]
			if name != "" {
				if seen[name] {
					return nil, wrapf(ErrInvalidRequest, "duplicate column name %q across merged frames", name)
				}
				seen[name] = true
			}
			clone := c.Clone()
			clone.MatchLength(rows)
			out.appendColumnRaw(clone, name)
		}
	}
	return out, nil
}

// Convert returns a new frame with every column switched to target, preserving
// values. Default→Nullable copies values verbatim into nullable twins. Nullable→
// Default materialises null cells as the kind-appropriate default: 0 for numerics
// and Char, false for Bool, "n/a" for Str.
func Convert(f *Frame, target Flavour) (*Frame, error) {
	if f.flavour == target {
		return CopyOf(f), nil
	}

	out := NewFrame(target)
	out.next = f.next
	capacity := f.Capacity()
	for i, c := range f.columns {
		converted := newColumnForKind(c.Kind(), target == Nullable)
		converted.MatchLength(capacity)
		for row := 0; row < max0(f.next); row++ {
			v, err := c.Get(row)
			if err != nil {
				return nil, err
			}
			if v == nil && target == Default {
				v = defaultValueFor(c.Kind())
			}
			if err := converted.Set(row, v); err != nil {
				return nil, err
			}
		}
		out.appendColumnRaw(converted, f.names[i])
	}
	return out, nil
}

// max0 treats the frame.next uninitialised sentinel (-1) as zero rows.
func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// defaultValueFor is the non-null sentinel materialised for a null cell when
// converting Nullable→Default, per spec.md §4.3.
func defaultValueFor(kind Kind) interface{} {
	switch kind {
	case I8:
		return int8(0)
	case I16:
		return int16(0)
	case I32:
		return int32(0)
	case I64:
		return int64(0)
	case F32:
		return float32(0)
	case F64:
		return float64(0)
	case Bool:
		return false
	case Char:
		return rune(0)
	case Str:
		return naCell
	default:
		return nil
	}
}
