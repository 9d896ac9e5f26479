// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"image/color"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"statnotes/barsvg"
	"statnotes/regress"
	"statnotes/reorder"
	"statnotes/report"
)

// figure renders p as an inline SVG figure.
func figure(p *gg.Plot, width, height int, caption string) (report.Figure, error) {
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, width, height); err != nil {
		return report.Figure{}, err
	}
	return report.Figure{Caption: caption, SVG: template.HTML(buf.String())}, nil
}

// lambdaLabel formats a log10 penalty tick as the penalty it stands
// for.
func lambdaLabel(l float64) string {
	return fmt.Sprintf("%.3g", math.Pow(10, l))
}

// lambdaScale returns an x scale whose ticks show penalties rather
// than their log10 positions.
func lambdaScale() gg.Scaler {
	s := gg.NewLinearScaler()
	s.SetFormatter(lambdaLabel)
	return s
}

// cvPlot charts mean held-out MSE against the penalty and marks the
// chosen penalty.
func cvPlot(cv []regress.CVResult, best int) *gg.Plot {
	logl := make([]float64, len(cv))
	mses := make([]float64, len(cv))
	for i, r := range cv {
		logl[i] = math.Log10(r.Lambda)
		mses[i] = r.MSE
	}
	tab := new(table.Builder).
		Add("log lambda", logl).
		Add("mean held-out MSE", mses).
		Done()

	p := gg.NewPlot(tab)
	p.SetScale("x", lambdaScale())
	p.Add(gg.AxisLabel("x", "penalty"))
	p.Add(gg.LayerLines{X: "log lambda", Y: "mean held-out MSE"})
	p.Add(gg.LayerPoints{X: "log lambda", Y: "mean held-out MSE"})

	mark := new(table.Builder).
		Add("log lambda", []float64{logl[best]}).
		Add("mean held-out MSE", []float64{mses[best]}).
		Done()
	p.Save().SetData(mark)
	p.Add(gg.LayerPoints{
		X:     "log lambda",
		Y:     "mean held-out MSE",
		Color: p.Const(color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff}),
	})
	p.Restore()
	return p
}

// pathsTable unpivots the per-penalty fits into one row per
// (penalty, coefficient). The intercept is left out.
func pathsTable(lambdas []float64, paths [][]float64) table.Grouping {
	var logl, est []float64
	var name []string
	for i, lambda := range lambdas {
		for j := 1; j < len(paths[i]); j++ {
			logl = append(logl, math.Log10(lambda))
			est = append(est, paths[i][j])
			name = append(name, fmt.Sprintf("x%d", j))
		}
	}
	return new(table.Builder).
		Add("log lambda", logl).
		Add("estimate", est).
		Add("coefficient", name).
		Done()
}

// pathsPlot charts every coefficient's path as the penalty grows.
func pathsPlot(lambdas []float64, paths [][]float64) *gg.Plot {
	p := gg.NewPlot(pathsTable(lambdas, paths))
	p.SetScale("x", lambdaScale())
	p.Add(gg.AxisLabel("x", "penalty"))
	p.Add(gg.LayerLines{X: "log lambda", Y: "estimate", Color: "coefficient"})
	return p
}

// fitTable pairs each estimator's predictions with the simulated
// response, plus two "ideal" rows per estimator tracing the
// prediction-equals-response line.
func fitTable(y, olsHat, ridgeHat []float64) table.Grouping {
	lo, hi := stats.Bounds(y)
	n := len(y)
	actual := make([]float64, 0, 2*n+4)
	pred := make([]float64, 0, 2*n+4)
	est := make([]string, 0, 2*n+4)
	kind := make([]string, 0, 2*n+4)
	for _, e := range []struct {
		name string
		hat  []float64
	}{{"ols", olsHat}, {"ridge", ridgeHat}} {
		for i, v := range y {
			actual = append(actual, v)
			pred = append(pred, e.hat[i])
			est = append(est, e.name)
			kind = append(kind, "sample")
		}
		actual = append(actual, lo, hi)
		pred = append(pred, lo, hi)
		est = append(est, e.name, e.name)
		kind = append(kind, "ideal", "ideal")
	}
	return new(table.Builder).
		Add("actual", actual).
		Add("predicted", pred).
		Add("estimator", est).
		Add("kind", kind).
		Done()
}

// fitPlot charts predictions against the simulated response, one
// facet per estimator.
func fitPlot(y, olsHat, ridgeHat []float64) *gg.Plot {
	p := gg.NewPlot(fitTable(y, olsHat, ridgeHat))
	p.Add(gg.FacetX{Col: "estimator", SplitYScales: true})

	p.Save().SetData(table.FilterEq(p.Data(), "kind", "ideal"))
	p.Add(gg.LayerLines{
		X:     "actual",
		Y:     "predicted",
		Color: p.Const(color.Gray{0xc0}),
	})
	p.Restore()

	p.Save().SetData(table.FilterEq(p.Data(), "kind", "sample"))
	p.Add(gg.LayerPoints{X: "actual", Y: "predicted"})
	p.Restore()
	return p
}

// coefRows pairs each predictor's OLS and ridge estimates as rows
// for the ranked coefficient chart. The intercept is left out; it is
// not penalized.
func coefRows(ols, ridge []float64) []reorder.Row {
	var rows []reorder.Row
	for j := 1; j < len(ols); j++ {
		rows = append(rows, reorder.Row{Group: "ols", Category: fmt.Sprintf("x%d", j), Value: ols[j]})
	}
	for j := 1; j < len(ridge); j++ {
		rows = append(rows, reorder.Row{Group: "ridge", Category: fmt.Sprintf("x%d", j), Value: ridge[j]})
	}
	return rows
}

// coefChart ranks the largest coefficients of each fit and renders
// them as one bar panel per fit.
func coefChart(ols, ridge []float64, k int, lambda float64) (report.Figure, error) {
	placed, err := reorder.Reorder(reorder.TopK(coefRows(ols, ridge), k))
	if err != nil {
		return report.Figure{}, err
	}
	var buf bytes.Buffer
	c := &barsvg.Chart{XLabel: "estimate", Width: 700}
	if err := c.Render(&buf, placed, reorder.Labels(placed)); err != nil {
		return report.Figure{}, err
	}
	return report.Figure{
		Caption: fmt.Sprintf("largest coefficients of each fit, ridge at penalty %.3g", lambda),
		SVG:     template.HTML(buf.String()),
	}, nil
}
