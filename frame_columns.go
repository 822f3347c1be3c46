// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

// appendColumnRaw appends col and name without touching next or aligning capacity.
// Used by bulk reconstructors (Merge and Convert in convert.go, Decode in decode.go)
// that already know the target row count and have sized every column themselves;
// AddColumn's first-column
// "seed next from capacity" inference does not apply once next is already decided.
func (f *Frame) appendColumnRaw(col Column, name string) {
	f.columns = append(f.columns, col)
	f.names = append(f.names, name)
	if name != "" {
		f.named++
	}
}

// --------------------------- structural column operations ----------------------------

// AddColumn appends col to the end of the frame, optionally under name. Grounded on
// the teacher's Collection.CreateColumn (collection.go), replacing its commit-log
// column creation with the alignment discipline of spec.md §4.2.3.
func (f *Frame) AddColumn(col Column, name string) error {
	if len(f.columns) > 0 && flavourOf(col) != f.flavour {
		return wrapf(ErrInvalidRequest, "cannot mix column flavours in a %s frame", f.flavour)
	}
	if name != "" {
		if _, err := f.ColumnIndex(name); err == nil {
			return wrapf(ErrInvalidRequest, "column name %q already exists", name)
		}
	}

	if len(f.columns) == 0 {
		f.next = col.Capacity()
	} else if col.Capacity() > f.next {
		if f.flavour == Default {
			return wrapf(ErrInvalidRequest, "cannot add a column longer than the current row count to a Default frame")
		}
		newNext := col.Capacity()
		for _, existing := range f.columns {
			existing.MatchLength(newNext)
		}
		f.next = newNext
	}

	capacity := f.next
	if len(f.columns) > 0 {
		capacity = f.columns[0].Capacity()
	}
	// col may be shorter than capacity (e.g. it matches f.next exactly while an
	// existing column carries doubling headroom); MatchLength pads the gap with each
	// kind's own fill (null in a nullable column, naCell in a non-null Str column,
	// zero or false otherwise), so the new tail stays consistent with direct
	// Set/Insert.
	col.MatchLength(capacity)

	f.columns = append(f.columns, col)
	f.names = append(f.names, "")
	if name != "" {
		f.names[len(f.names)-1] = name
		f.named++
	}
	return nil
}

// InsertColumnAt inserts col at position i, shifting subsequent columns (and their
// name entries) right by one.
func (f *Frame) InsertColumnAt(i int, col Column, name string) error {
	if i < 0 || i > len(f.columns) {
		return wrapf(ErrBounds, "column index %d out of range [0,%d]", i, len(f.columns))
	}
	if i == len(f.columns) {
		return f.AddColumn(col, name)
	}
	if err := f.AddColumn(col, name); err != nil {
		return err
	}

	last := len(f.columns) - 1
	col = f.columns[last]
	nm := f.names[last]
	copy(f.columns[i+1:], f.columns[i:last])
	copy(f.names[i+1:], f.names[i:last])
	f.columns[i] = col
	f.names[i] = nm
	return nil
}

// RemoveColumnAt drops the column at index i, compacting the column list and name
// index.
func (f *Frame) RemoveColumnAt(i int) error {
	if i < 0 || i >= len(f.columns) {
		return wrapf(ErrBounds, "column index %d out of range [0,%d)", i, len(f.columns))
	}
	if f.names[i] != "" {
		f.named--
	}
	f.columns = append(f.columns[:i], f.columns[i+1:]...)
	f.names = append(f.names[:i], f.names[i+1:]...)
	if len(f.columns) == 0 {
		f.next = -1
	}
	return nil
}

// RemoveColumnByName drops the column registered under name.
func (f *Frame) RemoveColumnByName(name string) error {
	i, err := f.ColumnIndex(name)
	if err != nil {
		return err
	}
	return f.RemoveColumnAt(i)
}

// SetColumnAt replaces the column at index i. col must already have a capacity equal
// to the frame's current row count; it is then aligned to the frame's physical
// capacity.
func (f *Frame) SetColumnAt(i int, col Column) error {
	if i < 0 || i >= len(f.columns) {
		return wrapf(ErrBounds, "column index %d out of range [0,%d)", i, len(f.columns))
	}
	if flavourOf(col) != f.flavour {
		return wrapf(ErrInvalidRequest, "cannot mix column flavours in a %s frame", f.flavour)
	}
	if col.Capacity() != f.next {
		return wrapf(ErrInvalidRequest, "replacement column must have capacity %d, has %d", f.next, col.Capacity())
	}
	col.MatchLength(f.Capacity())
	f.columns[i] = col
	return nil
}

// --------------------------- name index ----------------------------

// ColumnName returns the name registered for column i, or its decimal fallback if
// unnamed.
func (f *Frame) ColumnName(i int) (string, error) {
	if i < 0 || i >= len(f.columns) {
		return "", wrapf(ErrBounds, "column index %d out of range [0,%d)", i, len(f.columns))
	}
	if f.names[i] != "" {
		return f.names[i], nil
	}
	return columnNameAt(i), nil
}

// ColumnIndex resolves a registered column name to its index.
func (f *Frame) ColumnIndex(name string) (int, error) {
	if name == "" {
		return 0, wrapf(ErrInvalidRequest, "column name must not be empty")
	}
	for i, n := range f.names {
		if n == name {
			return i, nil
		}
	}
	return 0, wrapf(ErrInvalidRequest, "unknown column name %q", name)
}

// SetColumnName registers name for column i, reporting whether it overrode an
// existing entry.
func (f *Frame) SetColumnName(i int, name string) (bool, error) {
	if i < 0 || i >= len(f.columns) {
		return false, wrapf(ErrBounds, "column index %d out of range [0,%d)", i, len(f.columns))
	}
	if name == "" {
		return false, wrapf(ErrInvalidRequest, "column name must not be empty")
	}
	if existing, err := f.ColumnIndex(name); err == nil && existing != i {
		return false, wrapf(ErrInvalidRequest, "column name %q already exists", name)
	}
	overrode := f.names[i] != ""
	if !overrode {
		f.named++
	}
	f.names[i] = name
	return overrode, nil
}

// SetColumnNames assigns names to columns in order; an empty entry leaves that
// column unnamed.
func (f *Frame) SetColumnNames(names []string) error {
	if len(names) != len(f.columns) {
		return wrapf(ErrInvalidRequest, "expected %d names, got %d", len(f.columns), len(names))
	}
	for i, name := range names {
		if name == "" {
			continue
		}
		if _, err := f.SetColumnName(i, name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveColumnNames clears the entire name index.
func (f *Frame) RemoveColumnNames() {
	for i := range f.names {
		f.names[i] = ""
	}
	f.named = 0
}

// HasColumnNames reports whether any column currently has a registered name.
func (f *Frame) HasColumnNames() bool { return f.named > 0 }

// ColumnNames returns a name for every column: the registered name, or the decimal
// column index when the frame has any names but this column lacks one. It returns
// nil if the frame has no names at all.
func (f *Frame) ColumnNames() []string {
	if f.named == 0 {
		return nil
	}
	out := make([]string, len(f.columns))
	for i, n := range f.names {
		if n != "" {
			out[i] = n
		} else {
			out[i] = columnNameAt(i)
		}
	}
	return out
}
