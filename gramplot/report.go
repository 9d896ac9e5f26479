// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"statnotes/barsvg"
	"statnotes/report"
)

// buildReport renders the contribution chart and wraps it in a
// report with the corpus counts.
func buildReport(cfg Config, res *analysis, paths []string) (*report.Report, error) {
	var chart bytes.Buffer
	c := &barsvg.Chart{
		XLabel:    "contribution (count × valence)",
		Width:     cfg.Chart.Width,
		BarHeight: cfg.Chart.BarHeight,
	}
	if err := c.Render(&chart, res.placed, res.labels); err != nil {
		return nil, err
	}

	facts := []report.Fact{
		{Name: "corpus words", Value: fmt.Sprint(res.words)},
		{Name: "distinct bigrams", Value: fmt.Sprint(res.bigrams)},
		{Name: "negation bigrams", Value: fmt.Sprint(res.negated)},
		{Name: "scored contributions", Value: fmt.Sprint(len(res.rows))},
		{Name: "charted rows", Value: fmt.Sprint(len(res.placed))},
	}
	if !(len(paths) == 1 && paths[0] == "-") {
		facts = append(facts, report.Fact{Name: "inputs", Value: strings.Join(paths, " ")})
	}

	sec := report.Section{
		Heading: "Contributions by negation",
		Prose: []string{
			"Each panel shows one negation term. Bars are the words that " +
				"follow it, ranked by contribution: how often the pair occurs " +
				"times the valence of the word. Long positive bars mark " +
				"positive words the corpus likes to negate.",
			"Scales are per panel, so compare bars within a panel, not " +
				"across panels.",
		},
		Facts: facts,
		Figures: []report.Figure{{
			Caption: "words following each negation term, by contribution",
			SVG:     template.HTML(chart.String()),
		}},
	}
	return &report.Report{
		Title:    cfg.Title,
		Sections: []report.Section{sec},
		Cmdline:  report.Cmdline(),
	}, nil
}
