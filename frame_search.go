// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

import (
	"fmt"
	"regexp"
)

// renderCell renders a cell value to the text form matched against search patterns.
// A null cell renders as the empty string, which only an empty-matching pattern
// (e.g. "^$") can match. A Char cell renders as its character, not its code point.
func renderCell(kind Kind, v interface{}) string {
	if v == nil {
		return ""
	}
	if kind == Char {
		return string(v.(rune))
	}
	return fmt.Sprint(v)
}

// IndexOf returns the first row index in [start, next) whose rendered cell value in
// col matches pattern, or -1 if none does.
func (f *Frame) IndexOf(col interface{}, start int, pattern string) (int, error) {
	if len(f.columns) == 0 {
		return -1, wrapf(ErrInvalidRequest, "frame has no columns")
	}
	idx, err := f.resolveIndex(col)
	if err != nil {
		return -1, err
	}
	if start < 0 || start > f.next {
		return -1, wrapf(ErrBounds, "start %d out of range [0,%d]", start, f.next)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return -1, wrapf(ErrInvalidRequest, "invalid pattern %q: %v", pattern, err)
	}
	c := f.columns[idx]
	for i := start; i < f.next; i++ {
		v, err := c.Get(i)
		if err != nil {
			return -1, err
		}
		if re.MatchString(renderCell(c.Kind(), v)) {
			return i, nil
		}
	}
	return -1, nil
}

// IndexOfAll returns every row index in [0, next) whose rendered cell value in col
// matches pattern, in increasing order.
func (f *Frame) IndexOfAll(col interface{}, pattern string) ([]int, error) {
	if len(f.columns) == 0 {
		return nil, wrapf(ErrInvalidRequest, "frame has no columns")
	}
	idx, err := f.resolveIndex(col)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, wrapf(ErrInvalidRequest, "invalid pattern %q: %v", pattern, err)
	}
	c := f.columns[idx]
	var matches []int
	for i := 0; i < f.next; i++ {
		v, err := c.Get(i)
		if err != nil {
			return nil, err
		}
		if re.MatchString(renderCell(c.Kind(), v)) {
			matches = append(matches, i)
		}
	}
	return matches, nil
}

// FindAll builds a new frame, of the same flavour and schema (including names), of
// every row matching pattern in col.
func (f *Frame) FindAll(col interface{}, pattern string) (*Frame, error) {
	matches, err := f.IndexOfAll(col, pattern)
	if err != nil {
		return nil, err
	}

	out := &Frame{flavour: f.flavour, next: -1}
	for i, c := range f.columns {
		clone := newColumnForKind(c.Kind(), c.IsNullable())
		clone.MatchLength(len(matches))
		if err := out.AddColumn(clone, f.names[i]); err != nil {
			return nil, err
		}
	}
	out.next = len(matches)

	for row, srcIdx := range matches {
		for k, c := range f.columns {
			v, err := c.Get(srcIdx)
			if err != nil {
				return nil, err
			}
			if err := out.columns[k].Set(row, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
