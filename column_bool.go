// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import "github.com/kelindar/bitmap"

// --------------------------- non-null ----------------------------

// boolColumn is the non-null Bool column. Grounded on the teacher's columnBool
// (column_bool.go), which also backs boolean data directly with a bitmap.Bitmap
// instead of a []bool.
type boolColumn struct {
	data bitmap.Bitmap
	n    int
}

func newBoolColumn() *boolColumn {
	return &boolColumn{data: make(bitmap.Bitmap, 0, 1)}
}

func (c *boolColumn) Kind() Kind       { return Bool }
func (c *boolColumn) IsNullable() bool { return false }
func (c *boolColumn) Capacity() int    { return c.n }

func (c *boolColumn) Get(i int) (interface{}, error) {
	if i < 0 || i >= c.n {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, c.n)
	}
	return c.data.Contains(uint32(i)), nil
}

func (c *boolColumn) Set(i int, v interface{}) error {
	if i < 0 || i >= c.n {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, c.n)
	}
	b, ok := v.(bool)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Bool", v)
	}
	if b {
		c.data.Set(uint32(i))
	} else {
		c.data.Remove(uint32(i))
	}
	return nil
}

func (c *boolColumn) Insert(i, next int, v interface{}) error {
	b, ok := v.(bool)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Bool", v)
	}
	if next+1 > c.n {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, c.n)
	}
	shiftValidRight(&c.data, i, next)
	if b {
		c.data.Set(uint32(i))
	}
	return nil
}

func (c *boolColumn) Remove(from, to, next int) {
	shiftValidLeft(&c.data, from, to, next)
	width := to - from
	for i := next - width; i < next; i++ {
		c.data.Remove(uint32(i))
	}
}

func (c *boolColumn) Grow() {
	c.n = capacityFor(c.n)
	if c.n > 0 {
		c.data.Grow(uint32(c.n) - 1)
	}
}

func (c *boolColumn) MatchLength(n int) {
	if n > c.n && n > 0 {
		c.data.Grow(uint32(n) - 1)
	} else if n < c.n {
		for i := n; i < c.n; i++ {
			c.data.Remove(uint32(i))
		}
	}
	c.n = n
}

func (c *boolColumn) Clone() Column {
	data := make(bitmap.Bitmap, len(c.data))
	copy(data, c.data)
	return &boolColumn{data: data, n: c.n}
}

// --------------------------- nullable ----------------------------

// nullableBoolColumn is the nullable Bool column: one bitmap for the value, one for
// presence, in the same fill-list idiom the teacher uses throughout column_*.go.
type nullableBoolColumn struct {
	data  bitmap.Bitmap
	valid bitmap.Bitmap
	n     int
}

func newNullableBoolColumn() *nullableBoolColumn {
	return &nullableBoolColumn{
		data:  make(bitmap.Bitmap, 0, 1),
		valid: make(bitmap.Bitmap, 0, 1),
	}
}

func (c *nullableBoolColumn) Kind() Kind       { return Bool }
func (c *nullableBoolColumn) IsNullable() bool { return true }
func (c *nullableBoolColumn) Capacity() int    { return c.n }

func (c *nullableBoolColumn) Get(i int) (interface{}, error) {
	if i < 0 || i >= c.n {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, c.n)
	}
	if !c.valid.Contains(uint32(i)) {
		return nil, nil
	}
	return c.data.Contains(uint32(i)), nil
}

func (c *nullableBoolColumn) Set(i int, v interface{}) error {
	if i < 0 || i >= c.n {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, c.n)
	}
	if v == nil {
		c.valid.Remove(uint32(i))
		c.data.Remove(uint32(i))
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Bool", v)
	}
	if b {
		c.data.Set(uint32(i))
	} else {
		c.data.Remove(uint32(i))
	}
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableBoolColumn) Insert(i, next int, v interface{}) error {
	if next+1 > c.n {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, c.n)
	}
	shiftValidRight(&c.data, i, next)
	shiftValidRight(&c.valid, i, next)

	if v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind Bool", v)
	}
	if b {
		c.data.Set(uint32(i))
	}
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableBoolColumn) Remove(from, to, next int) {
	shiftValidLeft(&c.data, from, to, next)
	shiftValidLeft(&c.valid, from, to, next)
	width := to - from
	for i := next - width; i < next; i++ {
		c.data.Remove(uint32(i))
		c.valid.Remove(uint32(i))
	}
}

func (c *nullableBoolColumn) Grow() {
	c.n = capacityFor(c.n)
	if c.n > 0 {
		c.data.Grow(uint32(c.n) - 1)
		c.valid.Grow(uint32(c.n) - 1)
	}
}

func (c *nullableBoolColumn) MatchLength(n int) {
	if n > c.n && n > 0 {
		c.data.Grow(uint32(n) - 1)
		c.valid.Grow(uint32(n) - 1)
	} else if n < c.n {
		for i := n; i < c.n; i++ {
			c.data.Remove(uint32(i))
			c.valid.Remove(uint32(i))
		}
	}
	c.n = n
}

func (c *nullableBoolColumn) Clone() Column {
	data := make(bitmap.Bitmap, len(c.data))
	copy(data, c.data)
	valid := make(bitmap.Bitmap, len(c.valid))
	copy(valid, c.valid)
	return &nullableBoolColumn{data: data, valid: valid, n: c.n}
}
