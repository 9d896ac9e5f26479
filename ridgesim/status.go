// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/crypto/ssh/terminal"
)

// A StatusReporter keeps a progress line with an ETA in place at the
// bottom of a terminal. On a non-terminal it degrades to printing
// messages.
type StatusReporter struct {
	update chan<- statusUpdate
	done   chan bool
}

type statusUpdate struct {
	progress float64
	message  string
}

func NewStatusReporter() *StatusReporter {
	if os.Getenv("TERM") == "dumb" || !terminal.IsTerminal(1) {
		return &StatusReporter{}
	}
	update := make(chan statusUpdate)
	sr := &StatusReporter{update: update}
	go sr.loop(update)
	return sr
}

// Progress replaces the status line with msg and an ETA fitted to
// the completed fraction frac.
func (sr *StatusReporter) Progress(msg string, frac float64) {
	if sr.update != nil {
		sr.update <- statusUpdate{message: msg, progress: frac}
	}
}

// Message prints msg above the status line.
func (sr *StatusReporter) Message(msg string) {
	if sr.update == nil {
		fmt.Println(msg)
	} else {
		sr.update <- statusUpdate{message: msg, progress: -1}
	}
}

// Stop clears the status line. The reporter must not be used after
// Stop.
func (sr *StatusReporter) Stop() {
	if sr.update != nil {
		sr.done = make(chan bool)
		close(sr.update)
		<-sr.done
		sr.update = nil
	}
}

func (sr *StatusReporter) loop(updates <-chan statusUpdate) {
	const resetLine = "\r\x1b[2K"
	const wrapOff = "\x1b[?7l"
	const wrapOn = "\x1b[?7h"

	tick := time.NewTicker(time.Second / 4)
	defer tick.Stop()

	t0 := time.Now()
	var times, progress []float64
	var end time.Time
	var msg string
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				fmt.Print(resetLine)
				close(sr.done)
				return
			}
			if update.progress == -1 {
				fmt.Print(resetLine)
				fmt.Println(update.message)
				break
			}
			times = append(times, float64(time.Since(t0)))
			progress = append(progress, update.progress)
			msg = update.message
			end = fitEnd(t0, times, progress)

		case <-tick.C:
		}

		eta := "ETA unknown"
		if !end.IsZero() {
			left := time.Until(end)
			// Trim off sub-second precision.
			left -= left % time.Second
			if left < 0 {
				left = 0
			}
			eta = "ETA " + left.String()
		}
		if msg != "" {
			eta = msg + ", " + eta
		}
		fmt.Printf("%s%s%s%s", resetLine, wrapOff, eta, wrapOn)
	}
}

// fitEnd estimates when progress will reach 1 by fitting a line to
// the (time, progress) samples. Sample weights decay with a 30
// second time constant so the estimated rate tracks recent progress.
// It returns the zero time if the rate is unknown or not positive.
func fitEnd(t0 time.Time, times, progress []float64) time.Time {
	const decay = 30 * time.Second
	now := times[len(times)-1]

	weights := make([]float64, len(times))
	var sw, sx, sy float64
	for i, t := range times {
		w := math.Exp((t - now) / float64(decay))
		weights[i] = w
		sw += w
		sx += w * t
		sy += w * progress[i]
	}
	mx, my := sx/sw, sy/sw

	var sxx, sxy float64
	for i, t := range times {
		sxx += weights[i] * (t - mx) * (t - mx)
		sxy += weights[i] * (t - mx) * (progress[i] - my)
	}
	if sxx == 0 || sxy <= 0 {
		return time.Time{}
	}
	rate := sxy / sxx
	intercept := my - rate*mx
	return t0.Add(time.Duration((1 - intercept) / rate))
}
