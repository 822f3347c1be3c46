// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import "github.com/kelindar/bitmap"

// charColumn is the non-null Char column: a single Unicode code unit (a 16-bit BMP
// scalar, spec §3.1) per row, exposed to callers as a rune. Modelled after the
// teacher's columnString (column_strings.go) shape (fill bitmap + flat slice),
// narrowed from []string to []uint16 since the teacher has no single-character kind.
type charColumn struct {
	data []uint16
}

func newCharColumn() *charColumn {
	return &charColumn{data: make([]uint16, 0, 4)}
}

func (c *charColumn) Kind() Kind       { return Char }
func (c *charColumn) IsNullable() bool { return false }
func (c *charColumn) Capacity() int    { return len(c.data) }

func (c *charColumn) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(c.data) {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	return rune(c.data[i]), nil
}

func charCoerce(v interface{}) (uint16, error) {
	if v == nil {
		return 0, wrapf(ErrInvalidRequest, "column of kind Char does not accept null")
	}
	r, ok := v.(rune)
	if !ok {
		return 0, wrapf(ErrInvalidRequest, "value %v does not match column kind Char", v)
	}
	if r < 0 || r > 0xFFFF {
		return 0, wrapf(ErrInvalidRequest, "value %q is not a BMP scalar", r)
	}
	return uint16(r), nil
}

func (c *charColumn) Set(i int, v interface{}) error {
	if i < 0 || i >= len(c.data) {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	u, err := charCoerce(v)
	if err != nil {
		return err
	}
	c.data[i] = u
	return nil
}

func (c *charColumn) Insert(i, next int, v interface{}) error {
	u, err := charCoerce(v)
	if err != nil {
		return err
	}
	if next+1 > len(c.data) {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, len(c.data))
	}
	copy(c.data[i+1:next+1], c.data[i:next])
	c.data[i] = u
	return nil
}

func (c *charColumn) Remove(from, to, next int) {
	width := to - from
	copy(c.data[from:], c.data[to:next])
	for i := next - width; i < next; i++ {
		c.data[i] = 0
	}
}

func (c *charColumn) Grow() {
	clone := make([]uint16, capacityFor(len(c.data)))
	copy(clone, c.data)
	c.data = clone
}

func (c *charColumn) MatchLength(n int) {
	if n <= len(c.data) {
		c.data = c.data[:n]
		return
	}
	clone := make([]uint16, n)
	copy(clone, c.data)
	c.data = clone
}

func (c *charColumn) Clone() Column {
	clone := make([]uint16, len(c.data))
	copy(clone, c.data)
	return &charColumn{data: clone}
}

// --------------------------- nullable ----------------------------

// nullableCharColumn is the nullable twin of charColumn.
type nullableCharColumn struct {
	data  []uint16
	valid bitmap.Bitmap
}

func newNullableCharColumn() *nullableCharColumn {
	return &nullableCharColumn{
		data:  make([]uint16, 0, 4),
		valid: make(bitmap.Bitmap, 0, 1),
	}
}

func (c *nullableCharColumn) Kind() Kind       { return Char }
func (c *nullableCharColumn) IsNullable() bool { return true }
func (c *nullableCharColumn) Capacity() int    { return len(c.data) }

func (c *nullableCharColumn) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(c.data) {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	if !c.valid.Contains(uint32(i)) {
		return nil, nil
	}
	return rune(c.data[i]), nil
}

func (c *nullableCharColumn) Set(i int, v interface{}) error {
	if i < 0 || i >= len(c.data) {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	if v == nil {
		c.valid.Remove(uint32(i))
		c.data[i] = 0
		return nil
	}
	r, ok := v.(rune)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Char", v)
	}
	if r < 0 || r > 0xFFFF {
		return wrapf(ErrInvalidRequest, "value %q is not a BMP scalar", r)
	}
	c.data[i] = uint16(r)
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableCharColumn) Insert(i, next int, v interface{}) error {
	if next+1 > len(c.data) {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, len(c.data))
	}
	copy(c.data[i+1:next+1], c.data[i:next])
	shiftValidRight(&c.valid, i, next)

	if v == nil {
		c.data[i] = 0
		return nil
	}
	r, ok := v.(rune)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Char", v)
	}
	if r < 0 || r > 0xFFFF {
		return wrapf(ErrInvalidRequest, "value %q is not a BMP scalar", r)
	}
	c.data[i] = uint16(r)
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableCharColumn) Remove(from, to, next int) {
	width := to - from
	copy(c.data[from:], c.data[to:next])
	shiftValidLeft(&c.valid, from, to, next)
	for i := next - width; i < next; i++ {
		c.data[i] = 0
		c.valid.Remove(uint32(i))
	}
}

func (c *nullableCharColumn) Grow() {
	n := capacityFor(len(c.data))
	clone := make([]uint16, n)
	copy(clone, c.data)
	c.data = clone
	if n > 0 {
		c.valid.Grow(uint32(n) - 1)
	}
}

func (c *nullableCharColumn) MatchLength(n int) {
	if n <= len(c.data) {
		for i := n; i < len(c.data); i++ {
			c.valid.Remove(uint32(i))
		}
		c.data = c.data[:n]
		return
	}
	clone := make([]uint16, n)
	copy(clone, c.data)
	c.data = clone
	if n > 0 {
		c.valid.Grow(uint32(n) - 1)
	}
}

func (c *nullableCharColumn) Clone() Column {
	data := make([]uint16, len(c.data))
	copy(data, c.data)
	valid := make(bitmap.Bitmap, len(c.valid))
	copy(valid, c.valid)
	return &nullableCharColumn{data: data, valid: valid}
}
