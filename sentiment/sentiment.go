// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sentiment scores words against a sentiment lexicon and turns
// word-pair counts into signed sentiment contributions.
package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drankou/go-vader/vader"

	"statnotes/ngram"
	"statnotes/reorder"
)

// A Scorer rates the sentiment valence of a single word. Positive
// valence is positive sentiment. The second result reports whether the
// scorer knows the word; unknown and zero-valence words are both
// sentiment-neutral.
type Scorer interface {
	Score(word string) (float64, bool)
}

// A Lexicon is a Scorer backed by a fixed word-to-valence table, such
// as the AFINN list.
type Lexicon map[string]float64

// Score returns the valence of word.
func (l Lexicon) Score(word string) (float64, bool) {
	v, ok := l[word]
	return v, ok
}

// ParseLexicon reads a lexicon with one tab-separated "term<TAB>score"
// entry per line. Terms are lowercased and may contain spaces. Blank
// lines and lines starting with "#" are ignored.
func ParseLexicon(r io.Reader) (Lexicon, error) {
	lex := make(Lexicon)
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.LastIndex(line, "\t")
		if i < 0 {
			return nil, fmt.Errorf("line %d: malformed lexicon entry %q", n, line)
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(line[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad score in %q", n, line)
		}
		lex[strings.ToLower(strings.TrimSpace(line[:i]))] = val
	}
	return lex, scanner.Err()
}

// LoadLexicon reads the lexicon file at path. See ParseLexicon for the
// format.
func LoadLexicon(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lex, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return lex, nil
}

// Vader is a Scorer backed by the VADER sentiment model. It rates a
// word by the compound polarity VADER assigns it in isolation, on a
// [-1, 1] scale.
type Vader struct {
	sia vader.SentimentIntensityAnalyzer
}

// NewVader loads the VADER model.
func NewVader() (*Vader, error) {
	v := new(Vader)
	if err := v.sia.Init(); err != nil {
		return nil, err
	}
	return v, nil
}

// Score returns the compound polarity of word.
func (v *Vader) Score(word string) (float64, bool) {
	s := v.sia.PolarityScores(word)["compound"]
	return s, s != 0
}

// Contributions converts pair counts into rows for reordering: one row
// per pair, grouped by the pair's first word, labeled with its second,
// valued at count times the second word's valence. Pairs whose second
// word the scorer rates 0 or does not know contribute nothing and are
// dropped. Rows come out in c's key order.
func Contributions(c *ngram.Counts, s Scorer) []reorder.Row {
	var rows []reorder.Row
	for _, k := range c.Keys {
		valence, ok := s.Score(k.Second)
		if !ok || valence == 0 {
			continue
		}
		rows = append(rows, reorder.Row{
			Group:    k.First,
			Category: k.Second,
			Value:    float64(c.N[k]) * valence,
		})
	}
	return rows
}
