// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package regress

import (
	"math"
	"math/rand"

	"github.com/aclements/go-moremath/stats"
)

// A Fold is one train/test split of row indices.
type Fold struct {
	Train, Test []int
}

// KFold shuffles n row indices with rng and deals them into k folds of
// near-equal size. Each index lands in exactly one fold's Test set and
// in the Train sets of all the others. KFold panics unless
// 2 <= k <= n.
func KFold(n, k int, rng *rand.Rand) []Fold {
	if k < 2 || k > n {
		panic("need 2 <= k <= n")
	}
	perm := rng.Perm(n)
	folds := make([]Fold, k)
	for f := range folds {
		lo, hi := f*n/k, (f+1)*n/k
		folds[f].Test = append([]int{}, perm[lo:hi]...)
		for i, idx := range perm {
			if i < lo || i >= hi {
				folds[f].Train = append(folds[f].Train, idx)
			}
		}
	}
	return folds
}

// A CVResult reports the cross-validated prediction error of one ridge
// penalty.
type CVResult struct {
	Lambda float64
	MSE    float64 // mean of the per-fold held-out MSEs
	SE     float64 // standard error of that mean
}

// CVMSE fits ridge with penalty lambda on each fold's training rows
// and measures its MSE on the fold's held-out rows.
func CVMSE(X [][]float64, y []float64, lambda float64, folds []Fold) (CVResult, error) {
	mses := make([]float64, len(folds))
	for i, f := range folds {
		trainX, trainY := take(X, y, f.Train)
		testX, testY := take(X, y, f.Test)
		beta, err := Ridge(trainX, trainY, lambda)
		if err != nil {
			return CVResult{}, err
		}
		mses[i] = MSE(Predict(testX, beta), testY)
	}

	m := stats.Mean(mses)
	se := 0.0
	if len(mses) > 1 {
		var ss float64
		for _, v := range mses {
			ss += (v - m) * (v - m)
		}
		se = math.Sqrt(ss/float64(len(mses)-1)) / math.Sqrt(float64(len(mses)))
	}
	return CVResult{Lambda: lambda, MSE: m, SE: se}, nil
}

func take(X [][]float64, y []float64, idxs []int) ([][]float64, []float64) {
	takeX := make([][]float64, len(idxs))
	takeY := make([]float64, len(idxs))
	for i, idx := range idxs {
		takeX[i], takeY[i] = X[idx], y[idx]
	}
	return takeX, takeY
}

// CrossValidate runs CVMSE for every lambda and returns the results in
// lambda order, along with the index of the result with the smallest
// mean MSE.
func CrossValidate(X [][]float64, y []float64, lambdas []float64, folds []Fold) ([]CVResult, int, error) {
	results := make([]CVResult, len(lambdas))
	best := 0
	for i, lambda := range lambdas {
		r, err := CVMSE(X, y, lambda, folds)
		if err != nil {
			return nil, 0, err
		}
		results[i] = r
		if r.MSE < results[best].MSE {
			best = i
		}
	}
	return results, best, nil
}
