// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

// checkRowValues enforces spec.md §4.2.2's row-value contract: the value count must
// equal the column count, and each value must either be nil (only on a Nullable
// frame) or match its column's kind.
func (f *Frame) checkRowValues(values []interface{}) error {
	if len(values) != len(f.columns) {
		return wrapf(ErrInvalidRequest, "expected %d values, got %d", len(f.columns), len(values))
	}
	for i, v := range values {
		if v == nil {
			if f.flavour != Nullable {
				return wrapf(ErrInvalidRequest, "column %d does not accept null on a Default frame", i)
			}
			continue
		}
		if !valueMatchesKind(v, f.columns[i].Kind()) {
			return wrapf(ErrInvalidRequest, "value %v does not match column %d kind %s", v, i, f.columns[i].Kind())
		}
	}
	return nil
}

func valueMatchesKind(v interface{}, kind Kind) bool {
	switch kind {
	case I8:
		_, ok := v.(int8)
		return ok
	case I16:
		_, ok := v.(int16)
		return ok
	case I32:
		_, ok := v.(int32)
		return ok
	case I64:
		_, ok := v.(int64)
		return ok
	case F32:
		_, ok := v.(float32)
		return ok
	case F64:
		_, ok := v.(float64)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	case Char:
		_, ok := v.(rune)
		return ok
	case Str:
		_, ok := v.(string)
		return ok
	default:
		return false
	}
}

// GetRow returns row i as a slice of values in column order.
func (f *Frame) GetRow(i int) ([]interface{}, error) {
	if err := f.checkRow(i); err != nil {
		return nil, err
	}
	row := make([]interface{}, len(f.columns))
	for k, c := range f.columns {
		v, err := c.Get(i)
		if err != nil {
			return nil, err
		}
		row[k] = v
	}
	return row, nil
}

// SetRow overwrites row i with values, enforcing the row-value contract first.
func (f *Frame) SetRow(i int, values []interface{}) error {
	if err := f.checkRow(i); err != nil {
		return err
	}
	if err := f.checkRowValues(values); err != nil {
		return err
	}
	for k, v := range values {
		if err := f.columns[k].Set(i, v); err != nil {
			return err
		}
	}
	return nil
}

// growAll doubles the physical capacity of every column in lockstep, per spec.md
// §4.2.2's "all columns grow together (same doubled length)".
func (f *Frame) growAll() {
	for _, c := range f.columns {
		c.Grow()
	}
}

// AddRow appends values as a new last row, growing every column together if the
// frame is at capacity.
func (f *Frame) AddRow(values []interface{}) error {
	if len(f.columns) == 0 {
		return wrapf(ErrInvalidRequest, "frame has no columns")
	}
	if err := f.checkRowValues(values); err != nil {
		return err
	}
	if f.next == f.Capacity() {
		f.growAll()
	}
	for k, v := range values {
		if err := f.columns[k].Set(f.next, v); err != nil {
			return err
		}
	}
	f.next++
	return nil
}

// InsertRow inserts values at row index i. i == RowCount() behaves like AddRow.
func (f *Frame) InsertRow(i int, values []interface{}) error {
	if len(f.columns) == 0 {
		return wrapf(ErrInvalidRequest, "frame has no columns")
	}
	if i == f.next {
		return f.AddRow(values)
	}
	if i < 0 || i > f.next {
		return wrapf(ErrBounds, "row index %d out of range [0,%d]", i, f.next)
	}
	if err := f.checkRowValues(values); err != nil {
		return err
	}
	if f.next == f.Capacity() {
		f.growAll()
	}
	for k, v := range values {
		if err := f.columns[k].Insert(i, f.next, v); err != nil {
			return err
		}
	}
	f.next++
	return nil
}

// compact shrinks every column's physical capacity once the live row count leaves
// too much headroom, per spec.md §4.2.2's compaction trigger.
func (f *Frame) compact() {
	if f.next*3 < f.Capacity() {
		n := f.next + 4
		for _, c := range f.columns {
			c.MatchLength(n)
		}
	}
}

// RemoveRow deletes row i.
func (f *Frame) RemoveRow(i int) error {
	return f.RemoveRows(i, i+1)
}

// RemoveRows deletes rows [from, to).
func (f *Frame) RemoveRows(from, to int) error {
	if from < 0 || to > f.next || from > to {
		return wrapf(ErrBounds, "row range [%d,%d) out of range [0,%d]", from, to, f.next)
	}
	if from == to {
		return nil
	}
	for _, c := range f.columns {
		c.Remove(from, to, f.next)
	}
	f.next -= to - from
	f.compact()
	return nil
}
