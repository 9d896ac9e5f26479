// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reorder assigns dense positions to (group, category, value)
// rows so faceted charts can show each panel's categories sorted by
// value.
//
// Plotting pipelines typically map a categorical axis to one slot per
// distinct label across the entire table, so when the same category
// appears in several groups every panel is forced to share a single
// ordering. Reorder instead ranks rows: each row gets a unique integer
// position, the position becomes the axis coordinate, and the renderer
// substitutes the category string back in when it draws tick labels.
// See Labels for the renderer's side of the contract.
package reorder

import (
	"fmt"
	"math"
	"sort"
)

// A Row is one observation to place: a value attributed to a category
// within a group. Group selects the panel, Category is the display
// label, and Value is the signed magnitude the panel is ordered by.
// The same Category may appear under any number of groups.
type Row struct {
	Group    string
	Category string
	Value    float64
}

// A Placed is a Row plus its assigned position. Positions are dense
// and 1-based, and they are unique across the whole table rather than
// restarting at group boundaries.
type Placed struct {
	Row
	Position int
}

// An InvalidRowError reports an input row with a missing field.
// Index is the offset of the row in the input slice and Field names
// the missing field ("group", "category", or "value").
type InvalidRowError struct {
	Index int
	Field string
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("row %d: missing %s", e.Index, e.Field)
}

// Reorder assigns positions to rows. The result is sorted by group,
// lexically ascending, and then by value, ascending. The sort is
// stable, so rows that compare equal keep their input order. Each
// output row's Position is its 1-based index in this order. Within any
// one group, positions therefore ascend with value, and distinct
// groups occupy disjoint position ranges.
//
// Values may be negative, zero, repeated, or infinite. A row with an
// empty Group, an empty Category, or a NaN Value is malformed and
// aborts the whole batch with an *InvalidRowError; no partial result
// is returned. Reorder never modifies rows. Empty input yields an
// empty, non-nil result.
func Reorder(rows []Row) ([]Placed, error) {
	for i, r := range rows {
		switch {
		case r.Group == "":
			return nil, &InvalidRowError{i, "group"}
		case r.Category == "":
			return nil, &InvalidRowError{i, "category"}
		case math.IsNaN(r.Value):
			return nil, &InvalidRowError{i, "value"}
		}
	}

	placed := make([]Placed, len(rows))
	for i, r := range rows {
		placed[i].Row = r
	}
	sort.Stable(byGroupValue(placed))
	for i := range placed {
		placed[i].Position = i + 1
	}
	return placed, nil
}

type byGroupValue []Placed

func (s byGroupValue) Len() int      { return len(s) }
func (s byGroupValue) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byGroupValue) Less(i, j int) bool {
	if s[i].Group != s[j].Group {
		return s[i].Group < s[j].Group
	}
	return s[i].Value < s[j].Value
}

// TopK keeps, for each group independently, the k rows with the
// largest absolute value. Rows tied on absolute value are ranked in
// input order, and the survivors are returned in input order. If
// k <= 0, TopK keeps everything. The result is always a fresh slice.
//
// TopK does not validate rows; it is a pre-step for Reorder, which
// does.
func TopK(rows []Row, k int) []Row {
	if k <= 0 {
		return append([]Row{}, rows...)
	}

	byGroup := make(map[string][]int)
	for i, r := range rows {
		byGroup[r.Group] = append(byGroup[r.Group], i)
	}

	keep := make([]bool, len(rows))
	for _, idxs := range byGroup {
		sel := append([]int(nil), idxs...)
		sort.SliceStable(sel, func(i, j int) bool {
			return math.Abs(rows[sel[i]].Value) > math.Abs(rows[sel[j]].Value)
		})
		if len(sel) > k {
			sel = sel[:k]
		}
		for _, i := range sel {
			keep[i] = true
		}
	}

	out := make([]Row, 0, len(rows))
	for i, r := range rows {
		if keep[i] {
			out = append(out, r)
		}
	}
	return out
}

// Labels returns the tick-label substitution table for placed rows,
// mapping each position to its row's category. A renderer that puts
// positions on an axis must label the tick at position p with
// Labels(placed)[p]; the position integers themselves are meaningless
// to readers and must never be printed.
func Labels(placed []Placed) map[int]string {
	m := make(map[int]string, len(placed))
	for _, p := range placed {
		m[p.Position] = p.Category
	}
	return m
}

// Groups returns the distinct groups of placed rows in the order the
// renderer must lay out panels: lexically ascending, the same order
// Reorder sorted by.
func Groups(placed []Placed) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, p := range placed {
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
	}
	sort.Strings(groups)
	return groups
}
