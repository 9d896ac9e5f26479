// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barsvg renders placed rows as SVG small multiples of
// horizontal bars, one panel per group.
//
// The renderer keeps the two promises position assignment depends on:
// each panel shows only its own group's rows, on a value scale
// computed from that panel alone, and the tick for a bar is the
// category label looked up by position, never the position integer
// itself.
package barsvg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/aclements/go-moremath/scale"
	"github.com/ajstarks/svgo"

	"statnotes/reorder"
)

// fontSize is the font size in pixels.
const fontSize float64 = 14

// facetLabelHeight is the height of panel labels, as a multiple of
// the font size.
const facetLabelHeight = 1.3

const (
	xTickSep = 5
	yTickSep = 5
	margin   = 6
	panelGap = 8

	posFill = "#4682b4" // bars extending right of zero
	negFill = "#c44e52" // bars extending left of zero
)

// A Chart describes a faceted horizontal bar chart.
type Chart struct {
	Title  string
	XLabel string

	// Width is the total image width in pixels. 0 means 600.
	Width int

	// BarHeight is the height of one bar row in pixels. 0 means 22.
	BarHeight int
}

// measureString estimates the width in pixels of s at the chart font
// size.
func measureString(s string) float64 {
	return 0.5 * fontSize * float64(utf8.RuneCountInString(s))
}

// Render writes c as SVG. Rows are drawn one panel per group, panels
// in lexically ascending group order, and within each panel in
// ascending position from the bottom up, so values ascend toward the
// top. Every row's position must have an entry in labels.
func (c *Chart) Render(w io.Writer, placed []reorder.Placed, labels map[int]string) error {
	width := c.Width
	if width == 0 {
		width = 600
	}
	barH := float64(c.BarHeight)
	if barH == 0 {
		barH = 22
	}

	byGroup := make(map[string][]reorder.Placed)
	labelW := 0.0
	for _, p := range placed {
		l, ok := labels[p.Position]
		if !ok {
			return fmt.Errorf("no label for position %d", p.Position)
		}
		if lw := measureString(l); lw > labelW {
			labelW = lw
		}
		byGroup[p.Group] = append(byGroup[p.Group], p)
	}
	groups := reorder.Groups(placed)
	for _, g := range groups {
		rows := byGroup[g]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	}

	titleH, xlabelH := 0.0, 0.0
	if c.Title != "" {
		titleH = 1.5 * fontSize
	}
	if c.XLabel != "" {
		xlabelH = 1.5 * fontSize
	}
	stripH := facetLabelHeight * fontSize
	axisH := 1.25*fontSize + xTickSep

	height := margin + titleH + xlabelH + margin
	for _, g := range groups {
		height += stripH + float64(len(byGroup[g]))*barH + axisH + panelGap
	}
	if len(groups) > 0 {
		height -= panelGap
	}

	panelX := margin + labelW + yTickSep
	panelW := float64(width) - panelX - margin
	if panelW < 10 {
		return fmt.Errorf("chart width %d is too narrow for its labels", width)
	}

	var buf bytes.Buffer
	svg := svg.New(&buf)
	svg.Start(width, int(height), fmt.Sprintf(`font-size="%.6gpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, fontSize))
	if c.Title != "" {
		svg.Text(width/2, int(margin+titleH/2), c.Title, `text-anchor="middle" dy=".3em"`)
	}

	y := margin + titleH
	for _, g := range groups {
		rows := byGroup[g]

		// Panel label strip.
		svg.Rect(int(panelX), int(y), int(panelW), int(stripH), "fill: #ccc")
		svg.Text(int(panelX+panelW/2), int(y+stripH/2), g, `text-anchor="middle" dy=".3em"`)
		y += stripH

		// The value scale is this panel's alone, widened to
		// anchor bars at zero.
		lo, hi := 0.0, 0.0
		for _, p := range rows {
			lo = math.Min(lo, p.Value)
			hi = math.Max(hi, p.Value)
		}
		if lo == hi {
			lo, hi = -1, 1
		}
		ls := scale.Linear{Min: lo, Max: hi}
		xOf := func(v float64) float64 { return panelX + ls.Map(v)*panelW }

		bodyH := float64(len(rows)) * barH
		svg.Rect(int(panelX), int(y), int(panelW), int(bodyH), "fill:#eee")

		major, _ := ls.Ticks(scale.TickOptions{Max: 5})
		for _, tick := range major {
			frac := ls.Map(tick)
			if frac < 0 || frac > 1 {
				continue
			}
			svg.Path(fmt.Sprintf("M%d %dV%d", int(xOf(tick)), int(y), int(y+bodyH)), "stroke: #fff; stroke-width:2; fill:none")
		}

		for i, p := range rows {
			rowY := y + float64(len(rows)-1-i)*barH
			x0, x1 := xOf(0), xOf(p.Value)
			fill := posFill
			if x1 < x0 {
				x0, x1 = x1, x0
				fill = negFill
			}
			svg.Rect(int(x0), int(rowY+3), int(x1-x0), int(barH-6), "fill: "+fill)
			svg.Text(int(panelX-yTickSep), int(rowY+barH/2), labels[p.Position], `text-anchor="end" dy=".3em" fill="#666"`)
		}
		y += bodyH

		// Ticks, under this panel since every panel scales
		// independently.
		svg.Path(fmt.Sprintf("M%d %dH%d", int(panelX), int(y), int(panelX+panelW)), "stroke:#888; stroke-width:2; fill:none")
		for _, tick := range major {
			frac := ls.Map(tick)
			if frac < 0 || frac > 1 {
				continue
			}
			svg.Text(int(xOf(tick)), int(y+xTickSep), fmt.Sprintf("%.6g", tick), `text-anchor="middle" dy="1em" fill="#666"`)
		}
		y += axisH + panelGap
	}

	if c.XLabel != "" {
		svg.Text(int(panelX+panelW/2), int(height-margin-xlabelH/2), c.XLabel, `text-anchor="middle" dy=".3em"`)
	}
	svg.End()

	_, err := w.Write(buf.Bytes())
	return err
}
