// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"statnotes/reorder"
)

func floatsNear(xs, ys []float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if math.Abs(xs[i]-ys[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestLambdaLabel(t *testing.T) {
	tests := []struct {
		l    float64
		want string
	}{
		{0, "1"},
		{2, "100"},
		{-2, "0.01"},
		{0.5, "3.16"},
	}
	for _, test := range tests {
		if got := lambdaLabel(test.l); got != test.want {
			t.Errorf("lambdaLabel(%v) = %q, want %q", test.l, got, test.want)
		}
	}
}

func TestPathsTable(t *testing.T) {
	lambdas := []float64{1, 100}
	paths := [][]float64{{0.5, 1, 2}, {0.4, 0.8, 1.5}}
	tab := pathsTable(lambdas, paths).Table(table.RootGroupID)

	if got, want := tab.MustColumn("log lambda").([]float64), []float64{0, 0, 2, 2}; !floatsNear(got, want) {
		t.Errorf("log lambda = %v, want %v", got, want)
	}
	if got, want := tab.MustColumn("estimate").([]float64), []float64{1, 2, 0.8, 1.5}; !floatsNear(got, want) {
		t.Errorf("estimate = %v, want %v", got, want)
	}
	if got, want := tab.MustColumn("coefficient").([]string), []string{"x1", "x2", "x1", "x2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("coefficient = %v, want %v", got, want)
	}
}

func TestFitTable(t *testing.T) {
	y := []float64{1, 3}
	tab := fitTable(y, []float64{1.1, 2.9}, []float64{1.5, 2.5}).Table(table.RootGroupID)

	if got, want := tab.MustColumn("actual").([]float64), []float64{1, 3, 1, 3, 1, 3, 1, 3}; !floatsNear(got, want) {
		t.Errorf("actual = %v, want %v", got, want)
	}
	if got, want := tab.MustColumn("predicted").([]float64), []float64{1.1, 2.9, 1, 3, 1.5, 2.5, 1, 3}; !floatsNear(got, want) {
		t.Errorf("predicted = %v, want %v", got, want)
	}
	wantEst := []string{"ols", "ols", "ols", "ols", "ridge", "ridge", "ridge", "ridge"}
	if got := tab.MustColumn("estimator").([]string); !reflect.DeepEqual(got, wantEst) {
		t.Errorf("estimator = %v, want %v", got, wantEst)
	}
	wantKind := []string{"sample", "sample", "ideal", "ideal", "sample", "sample", "ideal", "ideal"}
	if got := tab.MustColumn("kind").([]string); !reflect.DeepEqual(got, wantKind) {
		t.Errorf("kind = %v, want %v", got, wantKind)
	}
}

func TestCoefRows(t *testing.T) {
	got := coefRows([]float64{0.5, 2, -1}, []float64{0.4, 1.5, -0.5})
	want := []reorder.Row{
		{Group: "ols", Category: "x1", Value: 2},
		{Group: "ols", Category: "x2", Value: -1},
		{Group: "ridge", Category: "x1", Value: 1.5},
		{Group: "ridge", Category: "x2", Value: -0.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("coefRows = %v, want %v", got, want)
	}
}

func TestCoefChart(t *testing.T) {
	fig, err := coefChart([]float64{0.5, 2, -1}, []float64{0.4, 1.5, -0.5}, 1, 0.1)
	if err != nil {
		t.Fatalf("coefChart failed: %v", err)
	}
	svg := string(fig.SVG)
	for _, want := range []string{"<svg", ">ols</text>", ">ridge</text>", ">x1</text>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("chart is missing %q", want)
		}
	}
	// Only the largest coefficient of each fit survives the cutoff.
	if strings.Contains(svg, ">x2</text>") {
		t.Errorf("chart kept x2 past the cutoff")
	}
}

func TestRSquared(t *testing.T) {
	y := []float64{1, 2, 3}
	if got := rSquared([]float64{1, 2, 3}, y); got != 1 {
		t.Errorf("perfect fit R² = %v, want 1", got)
	}
	if got := rSquared([]float64{2, 2, 2}, y); math.Abs(got) > 1e-12 {
		t.Errorf("mean-only fit R² = %v, want 0", got)
	}
}

func TestCoefErr(t *testing.T) {
	if got := coefErr([]float64{1, 2}, []float64{1, 0}); got != 2 {
		t.Errorf("coefErr = %v, want 2", got)
	}
	if got := coefErr([]float64{1, 2}, []float64{1, 2}); got != 0 {
		t.Errorf("coefErr = %v, want 0", got)
	}
}
