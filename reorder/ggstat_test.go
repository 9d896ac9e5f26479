// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reorder

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
)

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func TestByValue(t *testing.T) {
	tab := new(table.Builder).
		Add("neg", []string{"A", "A", "B", "B"}).
		Add("word", []string{"x", "y", "x", "z"}).
		Add("contrib", []int{5, 1, 3, 9}).
		Add("extra", []string{"p", "q", "r", "s"}).
		Done()

	res := ByValue{Group: "neg", Category: "word", Value: "contrib"}.F(tab)

	if n := len(res.Tables()); n != 1 {
		t.Fatalf("got %d tables, want 1", n)
	}
	out := res.Table(res.Tables()[0])
	wantCols := []string{"neg", "word", "contrib", "position"}
	if !reflect.DeepEqual(out.Columns(), wantCols) {
		t.Errorf("columns = %v, want %v", out.Columns(), wantCols)
	}
	if want := []string{"A", "A", "B", "B"}; !reflect.DeepEqual(out.MustColumn("neg"), want) {
		t.Errorf("neg = %v, want %v", out.MustColumn("neg"), want)
	}
	if want := []string{"y", "x", "x", "z"}; !reflect.DeepEqual(out.MustColumn("word"), want) {
		t.Errorf("word = %v, want %v", out.MustColumn("word"), want)
	}
	if want := []float64{1, 5, 3, 9}; !reflect.DeepEqual(out.MustColumn("contrib"), want) {
		t.Errorf("contrib = %v, want %v", out.MustColumn("contrib"), want)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(out.MustColumn("position"), want) {
		t.Errorf("position = %v, want %v", out.MustColumn("position"), want)
	}
}

func TestByValueGrouped(t *testing.T) {
	// Positions stay global even when the input is already grouped.
	tab := new(table.Builder).
		Add("neg", []string{"B", "A", "B", "A"}).
		Add("word", []string{"x", "x", "z", "y"}).
		Add("contrib", []float64{3, 5, 9, 1}).
		Done()
	g := table.GroupBy(tab, "neg")

	res := ByValue{Group: "neg", Category: "word", Value: "contrib"}.F(g)

	var positions []int
	var words []string
	for _, gid := range res.Tables() {
		out := res.Table(gid)
		positions = append(positions, out.MustColumn("position").([]int)...)
		words = append(words, out.MustColumn("word").([]string)...)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(positions, want) {
		t.Errorf("position = %v, want %v", positions, want)
	}
	if want := []string{"y", "x", "x", "z"}; !reflect.DeepEqual(words, want) {
		t.Errorf("word = %v, want %v", words, want)
	}
}

func TestByValueTopK(t *testing.T) {
	tab := new(table.Builder).
		Add("neg", []string{"A", "A", "B", "B"}).
		Add("word", []string{"x", "y", "x", "z"}).
		Add("contrib", []float64{5, 1, 3, 9}).
		Done()

	res := ByValue{Group: "neg", Category: "word", Value: "contrib", K: 1}.F(tab)
	out := res.Table(res.Tables()[0])
	if want := []string{"x", "z"}; !reflect.DeepEqual(out.MustColumn("word"), want) {
		t.Errorf("word = %v, want %v", out.MustColumn("word"), want)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(out.MustColumn("position"), want) {
		t.Errorf("position = %v, want %v", out.MustColumn("position"), want)
	}
}

func TestByValueEmpty(t *testing.T) {
	res := ByValue{Group: "neg", Category: "word", Value: "contrib"}.F(new(table.Table))
	for _, gid := range res.Tables() {
		if n := res.Table(gid).Len(); n != 0 {
			t.Errorf("got %d rows, want 0", n)
		}
	}
}

func TestByValueMissingColumn(t *testing.T) {
	tab := new(table.Builder).
		Add("neg", []string{"A"}).
		Add("word", []string{"x"}).
		Add("contrib", []float64{1}).
		Done()
	shouldPanic(t, "unknown column", func() {
		ByValue{Group: "neg", Category: "word", Value: "oops"}.F(tab)
	})
}

func TestByValueBadRow(t *testing.T) {
	tab := new(table.Builder).
		Add("neg", []string{"A", ""}).
		Add("word", []string{"x", "y"}).
		Add("contrib", []float64{1, 2}).
		Done()
	shouldPanic(t, "row 1: missing group", func() {
		ByValue{Group: "neg", Category: "word", Value: "contrib"}.F(tab)
	})
}
