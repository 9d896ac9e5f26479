// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gramplot charts which words a corpus negates.
//
// gramplot reads plain text, keeps the bigrams that start with a
// negation term ("not", "no", "never", "without" by default), and
// scores the word after the negation with a sentiment lexicon. Each
// bigram contributes count × valence. The largest contributions per
// negation term are charted as one bar panel per term, ranked from
// most negative at the bottom to most positive at the top, and
// wrapped in an HTML report.
//
// Input files are plain text; "-" or no arguments reads stdin.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"statnotes/report"
)

func main() {
	log.SetPrefix("gramplot: ")
	log.SetFlags(0)

	var (
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagConfig  = flag.String("config", "", "read analysis settings from YAML `file`")
		flagLexicon = flag.String("lexicon", "", "score words with TSV lexicon `file` instead of VADER")
		flagTop     = flag.Int("top", 0, "keep the `K` largest contributions per negation (negative: all)")
		flagTitle   = flag.String("title", "", "report `title`")
		flagText    = flag.Bool("text", false, "print a plain-text report instead of HTML")
		flagTable   = flag.Bool("table", false, "print the ranked table instead of a report")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	if *flagTop != 0 {
		cfg.TopK = *flagTop
	}
	if *flagLexicon != "" {
		cfg.Lexicon = *flagLexicon
	}
	if *flagTitle != "" {
		cfg.Title = *flagTitle
	}

	// Read the corpus.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var corpus bytes.Buffer
	for _, path := range paths {
		func() {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
			}
			if _, err := io.Copy(&corpus, f); err != nil {
				log.Fatal(err)
			}
			corpus.WriteByte('\n')
		}()
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		log.Fatal(err)
	}
	res, err := analyze(corpus.String(), cfg, scorer)
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if *flagTable {
		printTable(f, res)
		return
	}

	rep, err := buildReport(cfg, res, paths)
	if err != nil {
		log.Fatal(err)
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
