// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"statnotes/regress"
	"statnotes/report"
)

// fits collects everything the report draws.
type fits struct {
	ols, ridge       []float64 // coefficient vectors, intercept first
	olsHat, ridgeHat []float64 // fitted values on the simulated data
	lambdas          []float64
	paths            [][]float64 // paths[i] is the full-data fit at lambdas[i]
	cv               []regress.CVResult
	best             int // index of the chosen penalty
	folds            int
	top              int // coefficient chart cutoff
}

// rSquared is the fraction of response variance pred explains.
func rSquared(pred, y []float64) float64 {
	m := stats.Mean(y)
	var tot float64
	for _, v := range y {
		tot += (v - m) * (v - m)
	}
	return 1 - regress.MSE(pred, y)*float64(len(y))/tot
}

// coefErr is the Euclidean distance from an estimate to the truth.
func coefErr(est, truth []float64) float64 {
	var ss float64
	for j := range est {
		d := est[j] - truth[j]
		ss += d * d
	}
	return math.Sqrt(ss)
}

func buildReport(title string, cfg simConfig, prob *problem, f fits) (*report.Report, error) {
	active := 0
	for _, b := range prob.beta[1:] {
		if b != 0 {
			active++
		}
	}
	simSec := report.Section{
		Heading: "Simulation",
		Prose: []string{fmt.Sprintf(
			"Each of %d observations draws %d standard normal predictors "+
				"that share one latent factor, so every pair correlates at "+
				"%.2g. Only %d predictors carry signal; the response adds "+
				"Gaussian noise with standard deviation %.2g.",
			cfg.n, cfg.p, cfg.rho, active, cfg.noise)},
		Facts: []report.Fact{
			{Name: "observations", Value: fmt.Sprint(cfg.n)},
			{Name: "predictors", Value: fmt.Sprint(cfg.p)},
			{Name: "active predictors", Value: fmt.Sprint(active)},
			{Name: "predictor correlation", Value: fmt.Sprintf("%.3g", cfg.rho)},
			{Name: "noise sd", Value: fmt.Sprintf("%.3g", cfg.noise)},
			{Name: "seed", Value: fmt.Sprint(cfg.seed)},
		},
	}

	chosen := f.cv[f.best]
	cvFig, err := figure(cvPlot(f.cv, f.best), 550, 330,
		"mean held-out MSE per penalty; the marked point is the chosen penalty")
	if err != nil {
		return nil, err
	}
	cvSec := report.Section{
		Heading: "Penalty selection",
		Prose: []string{fmt.Sprintf(
			"%d-fold cross-validation scores each penalty by its mean MSE "+
				"on held-out folds. The ridge fit keeps the penalty with the "+
				"smallest mean.", f.folds)},
		Facts: []report.Fact{
			{Name: "folds", Value: fmt.Sprint(f.folds)},
			{Name: "penalties tried", Value: fmt.Sprint(len(f.cv))},
			{Name: "chosen penalty", Value: fmt.Sprintf("%.3g", chosen.Lambda)},
			{Name: "held-out MSE", Value: fmt.Sprintf("%.4g ± %.2g", chosen.MSE, chosen.SE)},
		},
		Figures: []report.Figure{cvFig},
	}

	pathsFig, err := figure(pathsPlot(f.lambdas, f.paths), 550, 330,
		"every coefficient's path as the penalty grows")
	if err != nil {
		return nil, err
	}
	coefFig, err := coefChart(f.ols, f.ridge, f.top, chosen.Lambda)
	if err != nil {
		return nil, err
	}
	coefSec := report.Section{
		Heading: "Coefficients",
		Prose: []string{
			"Correlated do-nothing predictors give OLS large, offsetting " +
				"estimates. The penalty shrinks every coefficient toward " +
				"zero, trading that variance for a little bias.",
		},
		Facts: []report.Fact{
			{Name: "OLS coefficient error", Value: fmt.Sprintf("%.3g", coefErr(f.ols, prob.beta))},
			{Name: "ridge coefficient error", Value: fmt.Sprintf("%.3g", coefErr(f.ridge, prob.beta))},
		},
		Figures: []report.Figure{pathsFig, coefFig},
	}

	fitFig, err := figure(fitPlot(prob.y, f.olsHat, f.ridgeHat), 700, 360,
		"predictions against the simulated response; the gray line is a perfect fit")
	if err != nil {
		return nil, err
	}
	fitSec := report.Section{
		Heading: "Fit",
		Facts: []report.Fact{
			{Name: "OLS R²", Value: report.Pct(rSquared(f.olsHat, prob.y))},
			{Name: "ridge R²", Value: report.Pct(rSquared(f.ridgeHat, prob.y))},
		},
		Figures: []report.Figure{fitFig},
	}

	return &report.Report{
		Title:    title,
		Sections: []report.Section{simSec, cvSec, coefSec, fitSec},
		Cmdline:  report.Cmdline(),
	}, nil
}
