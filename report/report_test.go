// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strings"
	"testing"
)

var testReport = &Report{
	Title:   "Widgets & gadgets",
	Cmdline: "widget -n 4",
	Sections: []Section{
		{
			Heading: "Counts",
			Prose:   []string{"All widgets counted.", "Math says 1 < 2."},
			Facts:   []Fact{{"rows", "4"}, {"rows kept", "2"}},
			Figures: []Figure{{Caption: "widgets by size", SVG: "<svg>chart</svg>"}},
		},
	},
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, testReport); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	out := buf.String()

	// Text content is escaped, SVG markup is not.
	for _, want := range []string{
		"<h1>Widgets &amp; gadgets</h1>",
		"<h2>Counts</h2>",
		"<p>Math says 1 &lt; 2.</p>",
		"<tr><th>rows kept</th><td>2</td></tr>",
		"<svg>chart</svg>",
		"<figcaption>widgets by size</figcaption>",
		"<footer>widget -n 4</footer>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(out, "&lt;svg") {
		t.Errorf("figure SVG was escaped")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testReport); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	want := `Widgets & gadgets

Counts
All widgets counted.
Math says 1 < 2.
  rows       4
  rows kept  2

widget -n 4
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteTextBare(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, &Report{Title: "t"}); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if buf.String() != "t\n" {
		t.Errorf("got %q, want %q", buf.String(), "t\n")
	}
}

func TestPct(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{1, "100%"},
		{0.5, "50%"},
		{0.12, "12%"},
		{0.05, "5.0%"},
		{0.0094, "0.94%"},
		{0, "0.00%"},
	}
	for _, test := range tests {
		if got := Pct(test.x); got != test.want {
			t.Errorf("Pct(%v) = %q, want %q", test.x, got, test.want)
		}
	}
}
