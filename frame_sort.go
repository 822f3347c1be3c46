// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package claymore

// SortBy permutes every column in lockstep by the values of col, using an unstable
// quicksort with a median-of-three pivot (spec.md §4.2.5). For a Nullable column, a
// presort pass first moves every null row to the tail, and the quicksort then only
// covers the null-free prefix.
func (f *Frame) SortBy(col interface{}) error {
	if len(f.columns) == 0 {
		return wrapf(ErrInvalidRequest, "frame has no columns")
	}
	idx, err := f.resolveIndex(col)
	if err != nil {
		return err
	}
	c := f.columns[idx]

	lo, hi := 0, f.next
	if c.IsNullable() {
		hi, err = f.pushNullsToTail(idx)
		if err != nil {
			return err
		}
	}
	if hi-lo < 2 {
		return nil
	}
	return f.quicksort(idx, lo, hi-1)
}

// pushNullsToTail moves every null row in column idx to [boundary, next) and
// returns boundary, the exclusive end of the null-free prefix.
func (f *Frame) pushNullsToTail(idx int) (int, error) {
	c := f.columns[idx]
	boundary := f.next
	i := 0
	for i < boundary {
		v, err := c.Get(i)
		if err != nil {
			return 0, err
		}
		if v == nil {
			boundary--
			if err := f.swapRows(i, boundary); err != nil {
				return 0, err
			}
			continue
		}
		i++
	}
	return boundary, nil
}

func (f *Frame) swapRows(i, j int) error {
	if i == j {
		return nil
	}
	for _, c := range f.columns {
		a, err := c.Get(i)
		if err != nil {
			return err
		}
		b, err := c.Get(j)
		if err != nil {
			return err
		}
		if err := c.Set(i, b); err != nil {
			return err
		}
		if err := c.Set(j, a); err != nil {
			return err
		}
	}
	return nil
}

// compareCells orders two non-null cells of the same kind, matching spec.md
// §4.2.5's "equal elements may exchange positions" (i.e. the comparator need not be
// stable, only total on value).
func compareCells(a, b interface{}) (int, error) {
	switch av := a.(type) {
	case int8:
		return compareOrdered(av, b.(int8)), nil
	case int16:
		return compareOrdered(av, b.(int16)), nil
	case int32:
		return compareOrdered(av, b.(int32)), nil
	case int64:
		return compareOrdered(av, b.(int64)), nil
	case float32:
		return compareOrdered(av, b.(float32)), nil
	case float64:
		return compareOrdered(av, b.(float64)), nil
	case bool:
		return compareOrdered(boolRank(av), boolRank(b.(bool))), nil
	case string:
		return compareOrdered(av, b.(string)), nil
	default:
		return 0, wrapf(ErrUnsupportedOperation, "cannot compare value of type %T", a)
	}
}

func boolRank(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

type ordered interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~string
}

func compareOrdered[T ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// quicksort sorts rows [lo, hi] of the frame by column idx, in place, using
// median-of-three pivot selection. Grounded on the teacher's hand-rolled sort in
// column_numeric.go, generalised from a single-column index permutation to a
// lockstep cross-column row permutation.
func (f *Frame) quicksort(idx, lo, hi int) error {
	for lo < hi {
		if hi-lo < 12 {
			return f.insertionSort(idx, lo, hi)
		}
		p, err := f.partition(idx, lo, hi)
		if err != nil {
			return err
		}
		if p-lo < hi-p {
			if err := f.quicksort(idx, lo, p-1); err != nil {
				return err
			}
			lo = p + 1
		} else {
			if err := f.quicksort(idx, p+1, hi); err != nil {
				return err
			}
			hi = p - 1
		}
	}
	return nil
}

func (f *Frame) insertionSort(idx, lo, hi int) error {
	c := f.columns[idx]
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo; j-- {
			a, err := c.Get(j - 1)
			if err != nil {
				return err
			}
			b, err := c.Get(j)
			if err != nil {
				return err
			}
			cmp, err := compareCells(a, b)
			if err != nil {
				return err
			}
			if cmp <= 0 {
				break
			}
			if err := f.swapRows(j-1, j); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Frame) partition(idx, lo, hi int) (int, error) {
	c := f.columns[idx]
	mid := lo + (hi-lo)/2

	if err := f.medianOfThree(idx, lo, mid, hi); err != nil {
		return 0, err
	}
	if err := f.swapRows(mid, hi-1); err != nil {
		return 0, err
	}

	pivot, err := c.Get(hi - 1)
	if err != nil {
		return 0, err
	}

	i := lo
	for j := lo; j < hi-1; j++ {
		v, err := c.Get(j)
		if err != nil {
			return 0, err
		}
		cmp, err := compareCells(v, pivot)
		if err != nil {
			return 0, err
		}
		if cmp < 0 {
			if err := f.swapRows(i, j); err != nil {
				return 0, err
			}
			i++
		}
	}
	if err := f.swapRows(i, hi-1); err != nil {
		return 0, err
	}
	return i, nil
}

// medianOfThree orders the cells at lo, mid, hi so that the median of the three
// ends up at mid, the pivot candidate used by partition.
func (f *Frame) medianOfThree(idx, lo, mid, hi int) error {
	c := f.columns[idx]
	get := func(i int) (interface{}, error) { return c.Get(i) }

	a, err := get(lo)
	if err != nil {
		return err
	}
	b, err := get(mid)
	if err != nil {
		return err
	}
	d, err := get(hi)
	if err != nil {
		return err
	}

	ab, err := compareCells(a, b)
	if err != nil {
		return err
	}
	if ab > 0 {
		if err := f.swapRows(lo, mid); err != nil {
			return err
		}
	}
	b, err = get(mid)
	if err != nil {
		return err
	}
	bd, err := compareCells(b, d)
	if err != nil {
		return err
	}
	if bd > 0 {
		if err := f.swapRows(mid, hi); err != nil {
			return err
		}
	}
	a, err = get(lo)
	if err != nil {
		return err
	}
	b, err = get(mid)
	if err != nil {
		return err
	}
	ab, err = compareCells(a, b)
	if err != nil {
		return err
	}
	if ab > 0 {
		if err := f.swapRows(lo, mid); err != nil {
			return err
		}
	}
	return nil
}
