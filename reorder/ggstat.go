// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reorder

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ByValue is a grammar-of-graphics stat that applies Reorder to
// tabular data. It gathers the named columns from every group of the
// input Grouping, optionally caps each group with TopK, and returns a
// single flat table in Reorder order with a "position" column holding
// each row's assigned position.
//
// All other input columns are dropped. ByValue panics if a named
// column is missing or if any gathered row is malformed (see Reorder).
type ByValue struct {
	// Group, Category, and Value name the input columns holding
	// each row's group, category label, and value. Group and
	// Category must be []string columns; Value may be any numeric
	// column.
	Group, Category, Value string

	// K, if positive, keeps only the K largest-magnitude rows of
	// each group, ties going to the earlier row.
	K int
}

// F applies s to g.
func (s ByValue) F(g table.Grouping) table.Grouping {
	var rows []Row
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		if t.Len() == 0 {
			continue
		}
		groups := t.MustColumn(s.Group).([]string)
		cats := t.MustColumn(s.Category).([]string)
		var vals []float64
		slice.Convert(&vals, t.MustColumn(s.Value))
		for i := range groups {
			rows = append(rows, Row{groups[i], cats[i], vals[i]})
		}
	}
	if len(rows) == 0 {
		return new(table.Table)
	}

	placed, err := Reorder(TopK(rows, s.K))
	if err != nil {
		panic(err)
	}

	groups := make([]string, len(placed))
	cats := make([]string, len(placed))
	vals := make([]float64, len(placed))
	positions := make([]int, len(placed))
	for i, p := range placed {
		groups[i], cats[i], vals[i] = p.Group, p.Category, p.Value
		positions[i] = p.Position
	}
	return new(table.Builder).
		Add(s.Group, groups).
		Add(s.Category, cats).
		Add(s.Value, vals).
		Add("position", positions).
		Done()
}
