// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is a container of columns of equal physical capacity, sharing a single
// logical row count. Grounded on the teacher's Collection (collection.go), stripped
// of its transaction manager, commit log and background vacuum: a Frame is a plain,
// single-owner value, mutated synchronously by its caller.
type Frame struct {
	flavour Flavour
	columns []Column
	names   []string // names[i] is the column-i name, or "" if unnamed
	named   int      // count of non-empty entries in names; 0 means no name index
	next    int      // live row count, -1 before the first column is ever added
}

// NewFrame creates an empty frame of the given flavour. No columns have been added
// yet, so RowCount reports the spec.md §3.3 "uninitialised" sentinel until the first
// column arrives.
func NewFrame(flavour Flavour) *Frame {
	return &Frame{flavour: flavour, next: -1}
}

// flavourOf reports the flavour implied by a column's nullability.
func flavourOf(col Column) Flavour {
	if col.IsNullable() {
		return Nullable
	}
	return Default
}

// NewFrameWithColumns builds a frame from an ordered list of columns, inferring the
// flavour from the first column. All columns must share that flavour.
func NewFrameWithColumns(columns ...Column) (*Frame, error) {
	if len(columns) == 0 {
		return nil, wrapf(ErrInvalidRequest, "at least one column is required")
	}
	f := NewFrame(flavourOf(columns[0]))
	for _, col := range columns {
		if err := f.AddColumn(col, ""); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewFrameNamed builds a frame from parallel name/column lists.
func NewFrameNamed(names []string, columns []Column) (*Frame, error) {
	if len(names) != len(columns) {
		return nil, wrapf(ErrInvalidRequest, "names and columns must have the same length, got %d and %d", len(names), len(columns))
	}
	if len(columns) == 0 {
		return nil, wrapf(ErrInvalidRequest, "at least one column is required")
	}
	f := NewFrame(flavourOf(columns[0]))
	for i, col := range columns {
		if err := f.AddColumn(col, names[i]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Flavour reports whether the frame is Default or Nullable.
func (f *Frame) Flavour() Flavour { return f.flavour }

// ColumnCount returns the number of columns currently in the frame.
func (f *Frame) ColumnCount() int { return len(f.columns) }

// RowCount returns the live row count next, or -1 for an uninitialised frame.
func (f *Frame) RowCount() int { return f.next }

// Capacity returns the physical backing length shared by every column, or 0 if the
// frame has no columns yet.
func (f *Frame) Capacity() int {
	if len(f.columns) == 0 {
		return 0
	}
	return f.columns[0].Capacity()
}

// String renders a short diagnostic summary. It never panics, including on an
// uninitialised frame.
func (f *Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frame(%s, columns=%d, rows=%d, capacity=%d)", f.flavour, len(f.columns), f.next, f.Capacity())
	return b.String()
}

// resolveIndex accepts either an int column index or a string column name and
// returns the resolved column index. This backs every typed/structural operation
// that spec.md §4.2.1 describes as addressable "by either column index or column
// name".
func (f *Frame) resolveIndex(col interface{}) (int, error) {
	switch c := col.(type) {
	case int:
		if c < 0 || c >= len(f.columns) {
			return 0, wrapf(ErrBounds, "column index %d out of range [0,%d)", c, len(f.columns))
		}
		return c, nil
	case string:
		return f.ColumnIndex(c)
	default:
		return 0, wrapf(ErrInvalidRequest, "column selector must be an int index or a string name, got %T", col)
	}
}

// columnFor resolves col and checks it matches kind, failing InvalidRequest on a
// mismatch per spec.md §4.2.1(c).
func (f *Frame) columnFor(col interface{}, kind Kind) (int, Column, error) {
	if len(f.columns) == 0 {
		return 0, nil, wrapf(ErrInvalidRequest, "frame has no columns")
	}
	idx, err := f.resolveIndex(col)
	if err != nil {
		return 0, nil, err
	}
	c := f.columns[idx]
	if c.Kind() != kind {
		return 0, nil, wrapf(ErrInvalidRequest, "column %v is of kind %s, not %s", col, c.Kind(), kind)
	}
	return idx, c, nil
}

func (f *Frame) checkRow(i int) error {
	if i < 0 || i >= f.next {
		return wrapf(ErrBounds, "row index %d out of range [0,%d)", i, f.next)
	}
	return nil
}

// --------------------------- typed element access ----------------------------

func (f *Frame) getTyped(col interface{}, row int, kind Kind) (interface{}, error) {
	_, c, err := f.columnFor(col, kind)
	if err != nil {
		return nil, err
	}
	if err := f.checkRow(row); err != nil {
		return nil, err
	}
	return c.Get(row)
}

func (f *Frame) setTyped(col interface{}, row int, kind Kind, v interface{}) error {
	_, c, err := f.columnFor(col, kind)
	if err != nil {
		return err
	}
	if err := f.checkRow(row); err != nil {
		return err
	}
	return c.Set(row, v)
}

// GetInt8/SetInt8 and their siblings below are the typed accessors required by
// spec.md §4.2.1 for every element kind, addressed by column index or name.

func (f *Frame) GetInt8(col interface{}, row int) (int8, error) {
	v, err := f.getTyped(col, row, I8)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(int8), nil
}
func (f *Frame) SetInt8(col interface{}, row int, v int8) error { return f.setTyped(col, row, I8, v) }

func (f *Frame) GetInt16(col interface{}, row int) (int16, error) {
	v, err := f.getTyped(col, row, I16)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(int16), nil
}
func (f *Frame) SetInt16(col interface{}, row int, v int16) error {
	return f.setTyped(col, row, I16, v)
}

func (f *Frame) GetInt32(col interface{}, row int) (int32, error) {
	v, err := f.getTyped(col, row, I32)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(int32), nil
}
func (f *Frame) SetInt32(col interface{}, row int, v int32) error {
	return f.setTyped(col, row, I32, v)
}

func (f *Frame) GetInt64(col interface{}, row int) (int64, error) {
	v, err := f.getTyped(col, row, I64)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(int64), nil
}
func (f *Frame) SetInt64(col interface{}, row int, v int64) error {
	return f.setTyped(col, row, I64, v)
}

func (f *Frame) GetFloat32(col interface{}, row int) (float32, error) {
	v, err := f.getTyped(col, row, F32)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(float32), nil
}
func (f *Frame) SetFloat32(col interface{}, row int, v float32) error {
	return f.setTyped(col, row, F32, v)
}

func (f *Frame) GetFloat64(col interface{}, row int) (float64, error) {
	v, err := f.getTyped(col, row, F64)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(float64), nil
}
func (f *Frame) SetFloat64(col interface{}, row int, v float64) error {
	return f.setTyped(col, row, F64, v)
}

func (f *Frame) GetBool(col interface{}, row int) (bool, error) {
	v, err := f.getTyped(col, row, Bool)
	if err != nil || v == nil {
		return false, err
	}
	return v.(bool), nil
}
func (f *Frame) SetBool(col interface{}, row int, v bool) error {
	return f.setTyped(col, row, Bool, v)
}

func (f *Frame) GetChar(col interface{}, row int) (rune, error) {
	v, err := f.getTyped(col, row, Char)
	if err != nil || v == nil {
		return 0, err
	}
	return v.(rune), nil
}
func (f *Frame) SetChar(col interface{}, row int, v rune) error {
	return f.setTyped(col, row, Char, v)
}

func (f *Frame) GetStr(col interface{}, row int) (string, error) {
	v, err := f.getTyped(col, row, Str)
	if err != nil || v == nil {
		return "", err
	}
	return v.(string), nil
}
func (f *Frame) SetStr(col interface{}, row int, v string) error {
	return f.setTyped(col, row, Str, v)
}

// IsNull reports whether the nullable cell at (col, row) is missing. It fails
// InvalidRequest on a Default frame, where no cell is ever null.
func (f *Frame) IsNull(col interface{}, row int) (bool, error) {
	if f.flavour != Nullable {
		return false, wrapf(ErrInvalidRequest, "IsNull is only meaningful on a Nullable frame")
	}
	if len(f.columns) == 0 {
		return false, wrapf(ErrInvalidRequest, "frame has no columns")
	}
	idx, err := f.resolveIndex(col)
	if err != nil {
		return false, err
	}
	if err := f.checkRow(row); err != nil {
		return false, err
	}
	v, err := f.columns[idx].Get(row)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

// SetNull clears a nullable cell. It fails InvalidRequest on a Default frame.
func (f *Frame) SetNull(col interface{}, row int) error {
	if f.flavour != Nullable {
		return wrapf(ErrInvalidRequest, "SetNull is only meaningful on a Nullable frame")
	}
	if len(f.columns) == 0 {
		return wrapf(ErrInvalidRequest, "frame has no columns")
	}
	idx, err := f.resolveIndex(col)
	if err != nil {
		return err
	}
	if err := f.checkRow(row); err != nil {
		return err
	}
	return f.columns[idx].Set(row, nil)
}

// columnNameAt renders the decimal fallback for an unnamed column, matching
// GetColumnNames' substitution rule in spec.md §4.2.4.
func columnNameAt(i int) string {
	return strconv.Itoa(i)
}
