// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls corpus analysis and chart layout. A YAML config
// file overrides fields it names and inherits defaults for the rest.
type Config struct {
	// Negations are the first words of the bigrams to keep.
	Negations []string `yaml:"negations"`

	// Stopwords are following words to discard before scoring.
	Stopwords []string `yaml:"stopwords"`

	// MinCount drops bigrams seen fewer than this many times.
	MinCount int `yaml:"min_count"`

	// TopK keeps the K largest contributions per negation term.
	// Negative keeps everything.
	TopK int `yaml:"top_k"`

	// Lexicon is the path of a word<TAB>score sentiment lexicon.
	// Empty uses the VADER lexicon.
	Lexicon string `yaml:"lexicon"`

	Title string `yaml:"title"`

	Chart struct {
		Width     int `yaml:"width"`
		BarHeight int `yaml:"bar_height"`
	} `yaml:"chart"`
}

func defaultConfig() Config {
	var c Config
	c.Negations = []string{"not", "no", "never", "without"}
	c.MinCount = 1
	c.TopK = 12
	c.Title = "Sentiment after negations"
	return c
}

func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%s: %v", path, err)
	}
	return c, nil
}
