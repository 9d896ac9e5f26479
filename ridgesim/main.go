// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ridgesim compares ridge regression against ordinary least
// squares on a simulated problem with correlated predictors, picking
// the ridge penalty by cross-validation and reporting the results as
// an HTML page of charts.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"statnotes/regress"
	"statnotes/report"
)

var (
	flagN       = flag.Int("n", 200, "simulate `rows` observations")
	flagP       = flag.Int("p", 30, "simulate `cols` predictors")
	flagRho     = flag.Float64("rho", 0.8, "pairwise predictor `correlation` in [0, 1)")
	flagNoise   = flag.Float64("noise", 2, "response noise standard `deviation`")
	flagSeed    = flag.Int64("seed", 1, "random `seed`")
	flagFolds   = flag.Int("folds", 10, "cross-validate with `k` folds")
	flagLambdas = flag.Int("lambdas", 13, "try `count` penalties from 1e-3 to 1e3")
	flagTop     = flag.Int("top", 12, "chart the `K` largest coefficients per fit (negative: all)")
	flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
	flagText    = flag.Bool("text", false, "print a plain-text report instead of HTML")
	flagTitle   = flag.String("title", "Ridge regression vs OLS", "report `title`")
)

func main() {
	log.SetPrefix("ridgesim: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := simConfig{n: *flagN, p: *flagP, rho: *flagRho, noise: *flagNoise, seed: *flagSeed}
	switch {
	case cfg.p < 2:
		log.Fatal("-p must be at least 2")
	case cfg.n < cfg.p+2:
		log.Fatal("-n must be at least p+2")
	case cfg.rho < 0 || cfg.rho >= 1:
		log.Fatal("-rho must be in [0, 1)")
	case cfg.noise < 0:
		log.Fatal("-noise must not be negative")
	case *flagFolds < 2 || *flagFolds > cfg.n:
		log.Fatal("-folds must be between 2 and n")
	case *flagLambdas < 2:
		log.Fatal("-lambdas must be at least 2")
	}

	sr := NewStatusReporter()
	sr.Message(fmt.Sprintf("simulating %d observations of %d predictors (rho=%g)",
		cfg.n, cfg.p, cfg.rho))
	prob := simulate(cfg)
	X := regress.WithIntercept(prob.x)

	ols, err := regress.LeastSquares(X, prob.y)
	if err != nil {
		sr.Stop()
		log.Fatalf("OLS fit: %v", err)
	}

	// Score every penalty by k-fold cross-validation, then refit
	// the full data at each penalty for the coefficient paths.
	// Each CV step costs folds fits, each path step one.
	lambdas := regress.LambdaGrid(-3, 3, *flagLambdas)
	folds := regress.KFold(cfg.n, *flagFolds, rand.New(rand.NewSource(cfg.seed+1)))
	step, steps := 0, len(lambdas)*(*flagFolds+1)

	cv := make([]regress.CVResult, len(lambdas))
	best := 0
	for i, lambda := range lambdas {
		sr.Progress(fmt.Sprintf("cross-validating penalty %.3g", lambda),
			float64(step)/float64(steps))
		step += *flagFolds
		r, err := regress.CVMSE(X, prob.y, lambda, folds)
		if err != nil {
			sr.Stop()
			log.Fatalf("cross-validating penalty %.3g: %v", lambda, err)
		}
		cv[i] = r
		if r.MSE < cv[best].MSE {
			best = i
		}
	}

	paths := make([][]float64, len(lambdas))
	for i, lambda := range lambdas {
		sr.Progress(fmt.Sprintf("fitting penalty %.3g", lambda),
			float64(step)/float64(steps))
		step++
		beta, err := regress.Ridge(X, prob.y, lambda)
		if err != nil {
			sr.Stop()
			log.Fatalf("ridge fit at penalty %.3g: %v", lambda, err)
		}
		paths[i] = beta
	}
	ridge := paths[best]
	sr.Stop()

	rep, err := buildReport(*flagTitle, cfg, prob, fits{
		ols:      ols,
		ridge:    ridge,
		olsHat:   regress.Predict(X, ols),
		ridgeHat: regress.Predict(X, ridge),
		lambdas:  lambdas,
		paths:    paths,
		cv:       cv,
		best:     best,
		folds:    *flagFolds,
		top:      *flagTop,
	})
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	if *flagText {
		err = report.WriteText(f, rep)
	} else {
		err = report.WriteHTML(f, rep)
	}
	if err != nil {
		log.Fatal(err)
	}
}
