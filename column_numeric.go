// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"github.com/kelindar/bitmap"
)

// Number is the set of Go types backing the six numeric kinds (I8, I16, I32, I64,
// F32, F64). Unlike the teacher's simd.Number (see DESIGN.md), this constraint
// includes int8, and carries no SIMD kernel obligations since this core is scalar.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// --------------------------- non-null ----------------------------

// numericColumn is the non-null backing store shared by I8, I16, I32, I64, F32 and
// F64. Grounded on the teacher's columnNumber (column_generate.go): a flat slice
// grown by doubling.
type numericColumn[T Number] struct {
	kind Kind
	data []T
}

func newNumericColumn[T Number](kind Kind) *numericColumn[T] {
	return &numericColumn[T]{kind: kind, data: make([]T, 0, 4)}
}

func (c *numericColumn[T]) Kind() Kind       { return c.kind }
func (c *numericColumn[T]) IsNullable() bool { return false }
func (c *numericColumn[T]) Capacity() int    { return len(c.data) }

func (c *numericColumn[T]) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(c.data) {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	return c.data[i], nil
}

func (c *numericColumn[T]) coerce(v interface{}) (T, error) {
	var zero T
	if v == nil {
		return zero, wrapf(ErrInvalidRequest, "column of kind %s does not accept null", c.kind)
	}
	t, ok := v.(T)
	if !ok {
		return zero, wrapf(ErrInvalidRequest, "value %v does not match column kind %s", v, c.kind)
	}
	return t, nil
}

func (c *numericColumn[T]) Set(i int, v interface{}) error {
	if i < 0 || i >= len(c.data) {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	t, err := c.coerce(v)
	if err != nil {
		return err
	}
	c.data[i] = t
	return nil
}

func (c *numericColumn[T]) Insert(i, next int, v interface{}) error {
	t, err := c.coerce(v)
	if err != nil {
		return err
	}
	if next+1 > len(c.data) {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, len(c.data))
	}
	copy(c.data[i+1:next+1], c.data[i:next])
	c.data[i] = t
	return nil
}

func (c *numericColumn[T]) Remove(from, to, next int) {
	width := to - from
	copy(c.data[from:], c.data[to:next])
	var zero T
	for i := next - width; i < next; i++ {
		c.data[i] = zero
	}
}

func (c *numericColumn[T]) Grow() {
	clone := make([]T, capacityFor(len(c.data)))
	copy(clone, c.data)
	c.data = clone
}

func (c *numericColumn[T]) MatchLength(n int) {
	if n <= len(c.data) {
		c.data = c.data[:n]
		return
	}
	clone := make([]T, n)
	copy(clone, c.data)
	c.data = clone
}

func (c *numericColumn[T]) Clone() Column {
	clone := make([]T, len(c.data))
	copy(clone, c.data)
	return &numericColumn[T]{kind: c.kind, data: clone}
}

// loadFloat64 is used by frame_stats.go for average/minimum/maximum; it never
// fails since every Number is representable as a float64 for statistics purposes.
func (c *numericColumn[T]) loadFloat64(i int) float64 {
	return float64(c.data[i])
}

// --------------------------- nullable ----------------------------

// nullableNumericColumn is the nullable twin of numericColumn, tracking presence
// with a bitmap the same way the teacher's fill-list tracks which slots are
// populated (column_generate.go).
type nullableNumericColumn[T Number] struct {
	kind  Kind
	data  []T
	valid bitmap.Bitmap
}

func newNullableNumericColumn[T Number](kind Kind) *nullableNumericColumn[T] {
	return &nullableNumericColumn[T]{
		kind:  kind,
		data:  make([]T, 0, 4),
		valid: make(bitmap.Bitmap, 0, 1),
	}
}

func (c *nullableNumericColumn[T]) Kind() Kind       { return c.kind }
func (c *nullableNumericColumn[T]) IsNullable() bool { return true }
func (c *nullableNumericColumn[T]) Capacity() int    { return len(c.data) }

func (c *nullableNumericColumn[T]) Get(i int) (interface{}, error) {
	if i < 0 || i >= len(c.data) {
		return nil, wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	if !c.valid.Contains(uint32(i)) {
		return nil, nil
	}
	return c.data[i], nil
}

func (c *nullableNumericColumn[T]) Set(i int, v interface{}) error {
	if i < 0 || i >= len(c.data) {
		return wrapf(ErrBounds, "index %d out of range [0,%d)", i, len(c.data))
	}
	if v == nil {
		c.valid.Remove(uint32(i))
		var zero T
		c.data[i] = zero
		return nil
	}
	t, ok := v.(T)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind %s", v, c.kind)
	}
	c.data[i] = t
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableNumericColumn[T]) Insert(i, next int, v interface{}) error {
	if next+1 > len(c.data) {
		return wrapf(ErrInvalidRequest, "insert requires capacity >= %d, have %d", next+1, len(c.data))
	}
	copy(c.data[i+1:next+1], c.data[i:next])
	shiftValidRight(&c.valid, i, next)

	if v == nil {
		var zero T
		c.data[i] = zero
		c.valid.Remove(uint32(i))
		return nil
	}
	t, ok := v.(T)
	if !ok {
		return wrapf(ErrInvalidRequest, "value %v does not match column kind %s", v, c.kind)
	}
	c.data[i] = t
	c.valid.Set(uint32(i))
	return nil
}

func (c *nullableNumericColumn[T]) Remove(from, to, next int) {
	width := to - from
	copy(c.data[from:], c.data[to:next])
	shiftValidLeft(&c.valid, from, to, next)
	var zero T
	for i := next - width; i < next; i++ {
		c.data[i] = zero
		c.valid.Remove(uint32(i))
	}
}

func (c *nullableNumericColumn[T]) Grow() {
	n := capacityFor(len(c.data))
	clone := make([]T, n)
	copy(clone, c.data)
	c.data = clone
	c.valid.Grow(uint32(n) - 1)
}

func (c *nullableNumericColumn[T]) MatchLength(n int) {
	if n <= len(c.data) {
		for i := n; i < len(c.data); i++ {
			c.valid.Remove(uint32(i))
		}
		c.data = c.data[:n]
		return
	}
	clone := make([]T, n)
	copy(clone, c.data)
	c.data = clone
	if n > 0 {
		c.valid.Grow(uint32(n) - 1)
	}
}

func (c *nullableNumericColumn[T]) Clone() Column {
	data := make([]T, len(c.data))
	copy(data, c.data)
	valid := make(bitmap.Bitmap, len(c.valid))
	copy(valid, c.valid)
	return &nullableNumericColumn[T]{kind: c.kind, data: data, valid: valid}
}

func (c *nullableNumericColumn[T]) loadFloat64(i int) (float64, bool) {
	if !c.valid.Contains(uint32(i)) {
		return 0, false
	}
	return float64(c.data[i]), true
}

// --------------------------- presence-bitmap shift helpers ----------------------------

// shiftValidRight shifts the [i, next) range of a presence bitmap right by one slot,
// to make room for an inserted element at i, and clears bit i. Shared by every
// nullable column kind that tracks presence with a bitmap.
func shiftValidRight(valid *bitmap.Bitmap, i, next int) {
	for idx := next; idx > i; idx-- {
		if valid.Contains(uint32(idx - 1)) {
			valid.Set(uint32(idx))
		} else {
			valid.Remove(uint32(idx))
		}
	}
	valid.Remove(uint32(i))
}

// shiftValidLeft shifts the [to, next) range of a presence bitmap left by to-from
// slots after removing [from, to).
func shiftValidLeft(valid *bitmap.Bitmap, from, to, next int) {
	width := to - from
	for idx := to; idx < next; idx++ {
		if valid.Contains(uint32(idx)) {
			valid.Set(uint32(idx - width))
		} else {
			valid.Remove(uint32(idx - width))
		}
	}
}

// --------------------------- constructors ----------------------------

func newColumnForKind(kind Kind, nullable bool) Column {
	switch kind {
	case I8:
		if nullable {
			return newNullableNumericColumn[int8](kind)
		}
		return newNumericColumn[int8](kind)
	case I16:
		if nullable {
			return newNullableNumericColumn[int16](kind)
		}
		return newNumericColumn[int16](kind)
	case I32:
		if nullable {
			return newNullableNumericColumn[int32](kind)
		}
		return newNumericColumn[int32](kind)
	case I64:
		if nullable {
			return newNullableNumericColumn[int64](kind)
		}
		return newNumericColumn[int64](kind)
	case F32:
		if nullable {
			return newNullableNumericColumn[float32](kind)
		}
		return newNumericColumn[float32](kind)
	case F64:
		if nullable {
			return newNullableNumericColumn[float64](kind)
		}
		return newNumericColumn[float64](kind)
	case Bool:
		if nullable {
			return newNullableBoolColumn()
		}
		return newBoolColumn()
	case Char:
		if nullable {
			return newNullableCharColumn()
		}
		return newCharColumn()
	case Str:
		if nullable {
			return newNullableStringColumn()
		}
		return newStringColumn()
	default:
		panic(wrapf(ErrUnsupportedOperation, "unsupported column kind %v", kind))
	}
}
