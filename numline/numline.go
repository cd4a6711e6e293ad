// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numline implements the number-line model used by the mathboard
// widgets: tick generation, exact fraction arithmetic, and dot placement.
// It has no GUI dependencies and can be tested in isolation; the board
// package renders its output.
package numline

//go:generate core generate

import (
	"math"
	"strconv"
)

// Line is a number line spanning [Start, End], subdivided into Partition
// equal parts per unit interval, with user-placed [Dot] markers.
// Dots are stored as fractions relative to Start rather than as absolute
// values, so changing Partition reinterprets them against the new tick
// grid without moving them.
type Line struct {

	// Start is the value at the left end of the line.
	Start float64

	// End is the value at the right end of the line.
	// The line is only valid when End > Start.
	End float64

	// Partition is the number of equal subdivisions per unit interval
	// (1 = integers only). It is always at least 1.
	Partition int `default:"1" min:"1"`

	// Dots are the markers placed on the line, in placement order.
	// The slice is replaced wholesale on every mutation; see [Line.Apply].
	Dots []Dot
}

// Defaults sets default line parameters: a 0 to 5 integer line.
func (ln *Line) Defaults() {
	ln.End = 5
	ln.Partition = 1
}

// Valid reports whether the line has a renderable range (End > Start).
// An invalid line produces no ticks and displays a placeholder instead.
func (ln *Line) Valid() bool {
	return ln.End > ln.Start
}

// Segments returns the number of whole tick intervals that fit in the
// line's span: floor((End - Start) * Partition). A fractional span gets
// ticks only up to the last one at or before End, so no tick is ever
// generated past the right end of the line.
// It returns 0 for an invalid range.
func (ln *Line) Segments() int {
	if !ln.Valid() {
		return 0
	}
	return int(math.Floor((ln.End-ln.Start)*float64(max(ln.Partition, 1)) + 1e-9))
}

// TickKinds are the kinds of ticks on a [Line].
type TickKinds int32 //enums:enum -trim-prefix Tick

const (
	// TickInteger is a tick on a whole-number value. It gets the long
	// tick mark and a plain integer label.
	TickInteger TickKinds = iota

	// TickUnit is the first subdivision tick after Start when the
	// partition is greater than 1. It gets the short tick mark plus a
	// static 1/partition fraction label illustrating the subdivision unit.
	TickUnit

	// TickMinor is any other subdivision tick: short mark, no label.
	TickMinor
)

// Tick is one tick position on a [Line].
type Tick struct {

	// Index is the 0-based tick index, inclusive of both ends.
	Index int

	// Value is the number at this tick: Start + Index/Partition.
	Value float64

	// Kind determines the mark length and labeling; see [TickKinds].
	Kind TickKinds

	// Label is the text shown under the tick: the integer value for
	// [TickInteger], empty otherwise. [TickUnit] ticks render their
	// fraction label as a stacked glyph instead of using Label.
	Label string
}

// Ticks generates the ticks for the line per its current range and
// partition. It returns nil for an invalid range.
func (ln *Line) Ticks() []Tick {
	segs := ln.Segments()
	if segs <= 0 {
		return nil
	}
	part := max(ln.Partition, 1)
	tks := make([]Tick, segs+1)
	for i := range tks {
		tk := Tick{Index: i, Value: ln.Start + float64(i)/float64(part)}
		switch {
		case i%part == 0:
			tk.Kind = TickInteger
			tk.Label = strconv.FormatFloat(tk.Value, 'f', -1, 64)
		case i == 1:
			tk.Kind = TickUnit
		default:
			tk.Kind = TickMinor
		}
		tks[i] = tk
	}
	return tks
}
