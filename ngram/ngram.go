// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ngram tokenizes text and counts adjacent word pairs.
package ngram

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase words. A word is a maximal run
// of letters and apostrophes; surrounding apostrophes are trimmed so
// quoted words do not differ from bare ones, but internal ones
// ("don't") survive. Everything else, digits included, separates
// words.
func Tokenize(text string) []string {
	var words []string
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			words = append(words, strings.ToLower(f))
		}
	}
	return words
}

// A Pair is an ordered pair of adjacent words.
type Pair struct {
	First, Second string
}

// Bigrams returns the adjacent pairs of words, in order.
func Bigrams(words []string) []Pair {
	if len(words) < 2 {
		return nil
	}
	pairs := make([]Pair, len(words)-1)
	for i := range pairs {
		pairs[i] = Pair{words[i], words[i+1]}
	}
	return pairs
}

// Counts accumulates pair frequencies.
type Counts struct {
	N map[Pair]int

	// Keys gives all keys of N in the order first added.
	Keys []Pair

	// Firsts gives the distinct first words from the keys in N in
	// the order first added. FirstSet is its set representation.
	Firsts   []string
	FirstSet map[string]bool
}

func NewCounts() *Counts {
	return &Counts{
		N:        make(map[Pair]int),
		FirstSet: make(map[string]bool),
	}
}

// Count tallies the bigrams of words into a new Counts.
func Count(words []string) *Counts {
	c := NewCounts()
	for _, p := range Bigrams(words) {
		c.Add(p)
	}
	return c
}

// Add increments the count of p.
func (c *Counts) Add(p Pair) {
	if _, ok := c.N[p]; !ok {
		c.addKey(p)
	}
	c.N[p]++
}

func (c *Counts) addKey(p Pair) {
	c.Keys = append(c.Keys, p)
	if !c.FirstSet[p.First] {
		c.Firsts = append(c.Firsts, p.First)
		c.FirstSet[p.First] = true
	}
}

// FilterFirst returns a new Counts keeping only the pairs whose first
// word is in firsts, in the original key order.
func (c *Counts) FilterFirst(firsts map[string]bool) *Counts {
	c2 := NewCounts()
	for _, k := range c.Keys {
		if firsts[k.First] {
			c2.addKey(k)
			c2.N[k] = c.N[k]
		}
	}
	return c2
}

// Min returns a new Counts keeping only the pairs counted at least
// min times, in the original key order.
func (c *Counts) Min(min int) *Counts {
	c2 := NewCounts()
	for _, k := range c.Keys {
		if c.N[k] >= min {
			c2.addKey(k)
			c2.N[k] = c.N[k]
		}
	}
	return c2
}
