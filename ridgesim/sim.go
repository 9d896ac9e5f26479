// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"
)

// A simConfig describes a synthetic regression problem.
type simConfig struct {
	n     int     // observations
	p     int     // predictors
	rho   float64 // pairwise predictor correlation
	noise float64 // response noise standard deviation
	seed  int64
}

// A problem is one drawn dataset plus the coefficients that
// generated it.
type problem struct {
	x    [][]float64 // n rows of p predictors
	y    []float64
	beta []float64 // true coefficients; beta[0] is the intercept
}

// trueBeta returns the generating coefficients for p predictors: an
// intercept of 1 and a fifth of the predictors active with
// alternating sign, the rest zero. Ridge only has something to gain
// when most predictors carry no signal.
func trueBeta(p int) []float64 {
	beta := make([]float64, p+1)
	beta[0] = 1
	vals := []float64{3, -2, 1.5}
	active := (p + 4) / 5
	for j := 0; j < active; j++ {
		beta[j+1] = vals[j%len(vals)]
	}
	return beta
}

// simulate draws a problem from cfg. Each predictor is standard
// normal, and all predictors load on one latent factor so that every
// pair correlates at rho. The response is x·beta plus Gaussian noise.
func simulate(cfg simConfig) *problem {
	rng := rand.New(rand.NewSource(cfg.seed))
	beta := trueBeta(cfg.p)

	shared, indep := math.Sqrt(cfg.rho), math.Sqrt(1-cfg.rho)
	x := make([][]float64, cfg.n)
	y := make([]float64, cfg.n)
	for i := range x {
		z := rng.NormFloat64()
		row := make([]float64, cfg.p)
		yi := beta[0]
		for j := range row {
			row[j] = shared*z + indep*rng.NormFloat64()
			yi += beta[j+1] * row[j]
		}
		x[i] = row
		y[i] = yi + cfg.noise*rng.NormFloat64()
	}
	return &problem{x: x, y: y, beta: beta}
}
