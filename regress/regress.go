// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regress fits linear models by ordinary least squares and by
// ridge regression, and picks ridge penalties by cross-validation.
package regress

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/gonum/matrix"
	"github.com/gonum/matrix/mat64"
)

// ErrSingular is returned when a model's normal equations have no
// solution, such as ordinary least squares on perfectly collinear
// predictors.
var ErrSingular = errors.New("singular normal equations")

// Ridge computes the ridge regression fit for the design matrix X and
// response y with penalty lambda >= 0. It solves for Β̂ in the
// penalized normal equations
//
//	(𝐗ᵀ𝐗 + λ𝐈)Β̂ = 𝐗ᵀ𝐲
//
// and returns the coefficients Β̂₀, Β̂₁, ... , one per column of X. The
// first column of X is taken to be the intercept and is never
// penalized. With lambda == 0 this is ordinary least squares.
//
// Penalties compare predictor coefficients against each other, so the
// non-intercept columns should be on a common scale; see Standardize.
func Ridge(X [][]float64, y []float64, lambda float64) ([]float64, error) {
	if len(X) != len(y) {
		panic("len(X) != len(y)")
	}
	if len(X) == 0 {
		panic("empty design matrix")
	}
	p := len(X[0])

	// Construct 𝐗ᵀ.
	xTVals := make([]float64, p*len(X))
	for i, row := range X {
		if len(row) != p {
			panic("ragged design matrix")
		}
		for j, v := range row {
			xTVals[j*len(X)+i] = v
		}
	}
	XT := mat64.NewDense(p, len(X), xTVals)
	Xm := XT.T()

	// Construct 𝐲.
	yVec := mat64.NewVector(len(y), y)

	// Compute Β̂.
	lhs := mat64.NewDense(p, p, nil)
	lhs.Mul(XT, Xm)
	for j := 1; j < p; j++ {
		lhs.Set(j, j, lhs.At(j, j)+lambda)
	}

	rhs := mat64.NewVector(p, nil)
	rhs.MulVec(XT, yVec)

	BVals := make([]float64, p)
	B := mat64.NewVector(p, BVals)
	if err := B.SolveVec(lhs, rhs); err != nil {
		// An ill-conditioned but solvable system comes back as
		// a finite Condition; anything else did not solve.
		cond, ok := err.(matrix.Condition)
		if !ok || math.IsInf(float64(cond), 0) {
			return nil, ErrSingular
		}
	}
	for _, v := range BVals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingular
		}
	}
	return BVals, nil
}

// LeastSquares computes the ordinary least squares fit for the design
// matrix X and response y. It is Ridge with no penalty.
func LeastSquares(X [][]float64, y []float64) ([]float64, error) {
	return Ridge(X, y, 0)
}

// WithIntercept returns a design matrix with a constant 1 prepended to
// each row of predictors.
func WithIntercept(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64{1}, r...)
	}
	return out
}

// Standardize rescales each column of rows to mean 0 and standard
// deviation 1 and returns the rescaled copy along with the column
// means and deviations. Columns with zero variance are centered but
// not scaled.
func Standardize(rows [][]float64) (std [][]float64, mean, sd []float64) {
	if len(rows) == 0 {
		return nil, nil, nil
	}
	p := len(rows[0])
	mean = make([]float64, p)
	sd = make([]float64, p)

	col := make([]float64, len(rows))
	for j := 0; j < p; j++ {
		for i, row := range rows {
			col[i] = row[j]
		}
		mean[j] = stats.Mean(col)
		var ss float64
		for _, v := range col {
			ss += (v - mean[j]) * (v - mean[j])
		}
		sd[j] = 1
		if len(rows) > 1 && ss > 0 {
			sd[j] = math.Sqrt(ss / float64(len(rows)-1))
		}
	}

	std = make([][]float64, len(rows))
	for i, row := range rows {
		std[i] = make([]float64, p)
		for j, v := range row {
			std[i][j] = (v - mean[j]) / sd[j]
		}
	}
	return std, mean, sd
}

// Predict evaluates the fitted coefficients beta on each row of X.
func Predict(X [][]float64, beta []float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		var s float64
		for j, v := range row {
			s += beta[j] * v
		}
		pred[i] = s
	}
	return pred
}

// MSE returns the mean squared difference between pred and y.
func MSE(pred, y []float64) float64 {
	if len(pred) != len(y) {
		panic("len(pred) != len(y)")
	}
	var sum float64
	for i := range pred {
		d := pred[i] - y[i]
		sum += d * d
	}
	return sum / float64(len(pred))
}

// LambdaGrid returns n ridge penalties spaced evenly on a log10 scale
// from 10**lo to 10**hi.
func LambdaGrid(lo, hi float64, n int) []float64 {
	return vec.Map(func(e float64) float64 { return math.Pow(10, e) }, vec.Linspace(lo, hi, n))
}
