// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"github.com/aclements/go-gg/table"
	"statnotes/ngram"
	"statnotes/reorder"
	"statnotes/sentiment"
)

// An analysis holds the corpus measurements behind one report.
type analysis struct {
	words   int // corpus length in words
	bigrams int // distinct bigrams
	negated int // distinct bigrams led by a negation term

	k      int           // top-K cutoff applied per negation
	rows   []reorder.Row // scored contributions, before the cutoff
	placed []reorder.Placed
	labels map[int]string
}

// newScorer returns the word scorer cfg selects, either a TSV
// lexicon or the VADER lexicon.
func newScorer(cfg Config) (sentiment.Scorer, error) {
	if cfg.Lexicon != "" {
		return sentiment.LoadLexicon(cfg.Lexicon)
	}
	return sentiment.NewVader()
}

// analyze runs the bigram pipeline over text: tokenize, keep bigrams
// led by a negation term, score the following word with s, and rank
// the contributions for charting.
func analyze(text string, cfg Config, s sentiment.Scorer) (*analysis, error) {
	words := ngram.Tokenize(text)
	counts := ngram.Count(words)

	negations := make(map[string]bool)
	for _, w := range cfg.Negations {
		negations[strings.ToLower(w)] = true
	}
	negated := counts.FilterFirst(negations)
	if cfg.MinCount > 1 {
		negated = negated.Min(cfg.MinCount)
	}

	rows := sentiment.Contributions(negated, s)
	if len(cfg.Stopwords) > 0 {
		stop := make(map[string]bool)
		for _, w := range cfg.Stopwords {
			stop[strings.ToLower(w)] = true
		}
		kept := rows[:0]
		for _, r := range rows {
			if !stop[r.Category] {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	placed, err := reorder.Reorder(reorder.TopK(rows, cfg.TopK))
	if err != nil {
		return nil, err
	}
	return &analysis{
		words:   len(words),
		bigrams: len(counts.Keys),
		negated: len(negated.Keys),
		k:       cfg.TopK,
		rows:    rows,
		placed:  placed,
		labels:  reorder.Labels(placed),
	}, nil
}

// rowTable converts contribution rows into a table with negation,
// word, and contribution columns.
func rowTable(rows []reorder.Row) table.Grouping {
	negs := make([]string, len(rows))
	words := make([]string, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		negs[i] = r.Group
		words[i] = r.Category
		vals[i] = r.Value
	}
	return new(table.Builder).
		Add("negation", negs).
		Add("word", words).
		Add("contribution", vals).
		Done()
}

// printTable prints the ranked contributions as a table. These are
// the same rows the chart draws, in the same order, with the position
// column the chart uses for bar slots.
func printTable(w io.Writer, res *analysis) {
	ranked := reorder.ByValue{
		Group:    "negation",
		Category: "word",
		Value:    "contribution",
		K:        res.k,
	}.F(rowTable(res.rows))
	table.Fprint(w, ranked)
}
