// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes analysis write-ups as self-contained HTML
// documents or as plain text.
package report

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/kballard/go-shellquote"
)

// A Report is one analysis write-up: a titled sequence of sections.
type Report struct {
	Title    string
	Sections []Section

	// Cmdline, if set, is printed as a provenance footer. See
	// Cmdline.
	Cmdline string
}

// A Section is a heading followed by prose paragraphs, a small table
// of facts, and figures, any of which may be empty.
type Section struct {
	Heading string
	Prose   []string
	Facts   []Fact
	Figures []Figure
}

// A Fact is one name/value row in a section's fact table.
type Fact struct {
	Name, Value string
}

// A Figure is one chart, already rendered to SVG markup.
type Figure struct {
	Caption string
	SVG     template.HTML
}

// Cmdline returns the shell-quoted command line of the running
// process, for a report's provenance footer.
func Cmdline() string {
	return shellquote.Join(os.Args...)
}

const htmlReport = `
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
  max-width: 60em;
  margin: 0 auto;
}
table {
  border-spacing: 0;
  border-collapse: collapse;
}
table>tbody>tr>td, table>tbody>tr>th {
  padding: 4px 8px;
  line-height: 1.4;
  border-top: 1px solid #ddd;
}
th {
  text-align: left;
}
figure {
  margin: 1em 0;
}
figcaption {
  color: #777;
  font-size: 90%;
}
footer {
  margin-top: 2em;
  color: #777;
  font-size: 80%;
  font-family: monospace;
}
    </style>
  </head>
  <body>
    <h1>{{.Title}}</h1>
    {{range .Sections}}
    {{with .Heading}}<h2>{{.}}</h2>{{end}}
    {{range .Prose}}<p>{{.}}</p>
    {{end}}
    {{with .Facts}}
    <table>
      {{range .}}<tr><th>{{.Name}}</th><td>{{.Value}}</td></tr>
      {{end}}
    </table>
    {{end}}
    {{range .Figures}}
    <figure>
      {{.SVG}}
      {{with .Caption}}<figcaption>{{.}}</figcaption>{{end}}
    </figure>
    {{end}}
    {{end}}
    {{with .Cmdline}}<footer>{{.}}</footer>{{end}}
  </body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReport))

// WriteHTML writes r as a self-contained HTML document.
func WriteHTML(w io.Writer, r *Report) error {
	return htmlTemplate.Execute(w, r)
}

// WriteText writes r as plain text. Figures are omitted.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", r.Title)
	for _, s := range r.Sections {
		fmt.Fprintln(bw)
		if s.Heading != "" {
			fmt.Fprintf(bw, "%s\n", s.Heading)
		}
		for _, p := range s.Prose {
			fmt.Fprintf(bw, "%s\n", p)
		}
		width := 0
		for _, f := range s.Facts {
			if len(f.Name) > width {
				width = len(f.Name)
			}
		}
		for _, f := range s.Facts {
			fmt.Fprintf(bw, "  %-*s  %s\n", width, f.Name, f.Value)
		}
	}
	if r.Cmdline != "" {
		fmt.Fprintf(bw, "\n%s\n", r.Cmdline)
	}
	return bw.Flush()
}

// Pct formats the ratio x as a percentage with a precision that suits
// its size.
func Pct(x float64) string {
	p := 100 * x
	if p >= 9.5 {
		return fmt.Sprintf("%.0f%%", p)
	} else if p > 0.95 {
		return fmt.Sprintf("%.1f%%", p)
	}
	return fmt.Sprintf("%.2f%%", p)
}
