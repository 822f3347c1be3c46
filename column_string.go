// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import "github.com/kelindar/bitmap"

// naCell is the sentinel a non-null Str column stores in place of null or empty
// input, per spec §3.1/§4.1. It is the only source of this sentinel; nothing else
// in the package invents it.
const naCell = "n/a"

// --------------------------- non-null ----------------------------

// stringColumn is the non-null Str column. Grounded on the teacher's columnString
// (column_strings.go): a fill bitmap is unnecessary here since every slot always
// holds a value, so this is a flat []string, as the teacher's is when ignoring its
// (unneeded, for us) presence tracking.
type stringColumn struct {
	data []string
}

func newStringColumn() *stringColumn {
	return &stringColumn{data: make([]string, 0, 4)}
}

func (c *stringColumn) Kind() Kind       { return Str }
func (c *stringColumn) IsNullable() bool { return false }
func (c *stringColumn) Capacity() int    { return len(c.data) }

func (c *stringColumn) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(c.data) {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	return c.data[i], nil
}

// nonNullStringCoerce implements the naCell policy from spec §4.1: null or empty
// input coerces to "n/a"; anything else must be a string.
func nonNullStringCoerce(v interface{}) (string, error) {
	if v == nil {
		return naCell, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", wrapf(ErrInvalidRequest, "value %v does not match column kind Str", v)
	}
	if s == "" {
		return naCell, nil
	}
	return s, nil
}

func (c *stringColumn) Set(i int, v interface{}) error {
	if i < 0 || i >= len(c.data) {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	s, err := nonNullStringCoerce(v)
	if err != nil {
		return err
	}
	c.data[i] = s
	return nil
}

func (c *stringColumn) Insert(i, next int, v interface{}) error {
	s, err := nonNullStringCoerce(v)
	if err != nil {
		return err
	}
	if next+1 > len(c.data) {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, len(c.data))
	}
	copy(c.data[i+1:next+1], c.data[i:next])
	c.data[i] = s
	return nil
}

func (c *stringColumn) Remove(from, to, next int) {
	width := to - from
	copy(c.data[from:], c.data[to:next])
	fillNA(c.data[next-width : next])
}

func (c *stringColumn) Grow() {
	old := len(c.data)
	clone := make([]string, capacityFor(old))
	copy(clone, c.data)
	fillNA(clone[old:])
	c.data = clone
}

// MatchLength extends the column, filling any new tail slots with naCell rather than
// Go's zero value so a non-null Str column never exposes a raw "" cell, even one
// created by alignment padding rather than an explicit Set/Insert.
func (c *stringColumn) MatchLength(n int) {
	if n <= len(c.data) {
		c.data = c.data[:n]
		return
	}
	old := len(c.data)
	clone := make([]string, n)
	copy(clone, c.data)
	fillNA(clone[old:])
	c.data = clone
}

// fillNA sets every element of s to naCell.
func fillNA(s []string) {
	for i := range s {
		s[i] = naCell
	}
}

func (c *stringColumn) Clone() Column {
	clone := make([]string, len(c.data))
	copy(clone, c.data)
	return &stringColumn{data: clone}
}

// --------------------------- nullable ----------------------------

// nullableStringColumn is the nullable Str column. A present value is always
// non-empty (spec §3.1); setting the empty string is treated the same way the
// non-null flavour treats it: as the missing marker, not as stored text.
type nullableStringColumn struct {
	data  []string
	valid bitmap.Bitmap
}

func newNullableStringColumn() *nullableStringColumn {
	return &nullableStringColumn{
		data:  make([]string, 0, 4),
		valid: make(bitmap.Bitmap, 0, 1),
	}
}

func (c *nullableStringColumn) Kind() Kind       { return Str }
func (c *nullableStringColumn) IsNullable() bool { return true }
func (c *nullableStringColumn) Capacity() int    { return len(c.data) }

func (c *nullableStringColumn) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(c.data) {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	if !c.valid.Contains(uint32(i)) {
		return nil, nil
	}
	return c.data[i], nil
}

func (c *nullableStringColumn) Set(i int, v interface{}) error {
	if i < 0 || i >= len(c.data) {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	if v == nil {
		c.valid.Remove(uint32(i))
		c.data[i] = ""
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Str", v)
	}
	if s == "" {
		c.valid.Remove(uint32(i))
		c.data[i] = ""
		return nil
	}
	c.data[i] = s
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableStringColumn) Insert(i, next int, v interface{}) error {
	if next+1 > len(c.data) {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, len(c.data))
	}
	copy(c.data[i+1:next+1], c.data[i:next])
	shiftValidRight(&c.valid, i, next)
	c.data[i] = ""

	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Str", v)
	}
	if s == "" {
		return nil
	}
	c.data[i] = s
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableStringColumn) Remove(from, to, next int) {
	width := to - from
	copy(c.data[from:], c.data[to:next])
	shiftValidLeft(&c.valid, from, to, next)
	for i := next - width; i < next; i++ {
		c.data[i] = ""
		c.valid.Remove(uint32(i))
	}
}

func (c *nullableStringColumn) Grow() {
	n := capacityFor(len(c.data))
	clone := make([]string, n)
	copy(clone, c.data)
	c.data = clone
	if n > 0 {
		c.valid.Grow(uint32(n) - 1)
	}
}

func (c *nullableStringColumn) MatchLength(n int) {
	if n <= len(c.data) {
		for i := n; i < len(c.data); i++ {
			c.valid.Remove(uint32(i))
		}
		c.data = c.data[:n]
		return
	}
	clone := make([]string, n)
	copy(clone, c.data)
	c.data = clone
	if n > 0 {
		c.valid.Grow(uint32(n) - 1)
	}
}

func (c *nullableStringColumn) Clone() Column {
	data := make([]string, len(c.data))
	copy(data, c.data)
	valid := make(bitmap.Bitmap, len(c.valid))
	copy(valid, c.valid)
	return &nullableStringColumn{data: data, valid: valid}
}
