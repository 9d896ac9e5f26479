// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"math/rand"
	"sort"
	"testing"
)

func TestKFold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	folds := KFold(10, 3, rng)
	if len(folds) != 3 {
		t.Fatalf("got %d folds, want 3", len(folds))
	}

	var all []int
	for _, f := range folds {
		if len(f.Train)+len(f.Test) != 10 {
			t.Errorf("fold sizes %d + %d != 10", len(f.Train), len(f.Test))
		}
		inTest := make(map[int]bool)
		for _, i := range f.Test {
			inTest[i] = true
		}
		for _, i := range f.Train {
			if inTest[i] {
				t.Errorf("index %d is in both train and test", i)
			}
		}
		all = append(all, f.Test...)
	}

	// Every index is held out exactly once.
	sort.Ints(all)
	for i, v := range all {
		if v != i {
			t.Fatalf("held-out indices = %v, want 0..9", all)
		}
	}
}

func TestKFoldPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, test := range []struct{ n, k int }{{10, 1}, {3, 4}, {0, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("KFold(%d, %d) did not panic", test.n, test.k)
				}
			}()
			KFold(test.n, test.k, rng)
		}()
	}
}

func TestCVMSE(t *testing.T) {
	// Noiseless linear data: the unpenalized fit predicts held-out
	// rows exactly, so its cross-validated MSE is zero.
	X := make([][]float64, 8)
	y := make([]float64, 8)
	for i := range X {
		x := float64(i)
		X[i] = []float64{1, x}
		y[i] = 2 + 3*x
	}
	folds := KFold(len(X), 4, rand.New(rand.NewSource(3)))

	r, err := CVMSE(X, y, 0, folds)
	if err != nil {
		t.Fatalf("CVMSE failed: %v", err)
	}
	if r.MSE > 1e-9 {
		t.Errorf("MSE at λ=0 is %v, want ≈ 0", r.MSE)
	}
	if r.Lambda != 0 {
		t.Errorf("Lambda = %v, want 0", r.Lambda)
	}

	// A heavy penalty cannot beat the exact fit.
	heavy, err := CVMSE(X, y, 1e6, folds)
	if err != nil {
		t.Fatalf("CVMSE failed: %v", err)
	}
	if heavy.MSE <= r.MSE {
		t.Errorf("MSE at λ=1e6 is %v, want > %v", heavy.MSE, r.MSE)
	}
}

func TestCrossValidate(t *testing.T) {
	X := make([][]float64, 12)
	y := make([]float64, 12)
	for i := range X {
		x := float64(i)
		X[i] = []float64{1, x}
		y[i] = 2 + 3*x
	}
	folds := KFold(len(X), 3, rand.New(rand.NewSource(5)))

	lambdas := []float64{0, 1, 100, 1e6}
	results, best, err := CrossValidate(X, y, lambdas, folds)
	if err != nil {
		t.Fatalf("CrossValidate failed: %v", err)
	}
	if len(results) != len(lambdas) {
		t.Fatalf("got %d results, want %d", len(results), len(lambdas))
	}
	for i, r := range results {
		if r.Lambda != lambdas[i] {
			t.Errorf("results[%d].Lambda = %v, want %v", i, r.Lambda, lambdas[i])
		}
	}
	if best != 0 {
		t.Errorf("best = %d (λ=%v), want 0", best, results[best].Lambda)
	}
}
