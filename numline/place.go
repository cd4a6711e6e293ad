// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numline

import (
	"math"
	"slices"

	"cogentcore.org/core/math32"
)

// Dot is a user-placed marker on a [Line]. Its position is the fraction
// Numerator/Denominator relative to the line's Start, where Denominator
// is the line's Partition at the time the dot was placed.
type Dot struct {

	// Numerator of the dot's offset from the line Start.
	Numerator int

	// Denominator of the dot's offset; always the Partition current at
	// placement time, never zero.
	Denominator int

	// ShowMixed toggles the dot's label between improper-fraction and
	// mixed-number display.
	ShowMixed bool
}

// Fraction returns the dot's offset from the line Start as a [Fraction].
func (d Dot) Fraction() Fraction {
	return Frac(d.Numerator, d.Denominator)
}

// Value returns the dot's absolute value on a line with the given Start.
func (d Dot) Value(start float64) float64 {
	return start + d.Fraction().Value()
}

// Geom is the rendered pixel geometry of a number line, in the shape's
// local coordinates. The board widget fills it in from its layout; the
// model uses it to map between values and pixels during placement.
type Geom struct {

	// Left is the x position of the Start end of the line.
	Left float32

	// Right is the x position of the End end of the line.
	Right float32

	// Y is the y position of the baseline.
	Y float32
}

// X returns the x position of the given value on line ln.
func (g Geom) X(ln *Line, value float64) float32 {
	return g.Left + float32((value-ln.Start)/(ln.End-ln.Start))*(g.Right-g.Left)
}

// Pixel tolerances for pointer interaction with a number line.
const (
	// LabelSlop is the horizontal tolerance of the fraction-label
	// hot-zone above a dot, where clicking toggles mixed display.
	LabelSlop = 20

	// BandSlopY is the vertical tolerance around the baseline within
	// which a click counts as a line interaction.
	BandSlopY = 25

	// BandSlopX is the horizontal tolerance beyond the line ends within
	// which a click counts as a line interaction.
	BandSlopX = 10

	// DotSlop is the horizontal tolerance for clicking an existing dot
	// to remove it.
	DotSlop = 12
)

// PlaceActions are the possible outcomes of a pointer click on a number
// line; see [Line.Place].
type PlaceActions int32 //enums:enum -trim-prefix Place

const (
	// PlaceNone means the click was outside the interactive band and is
	// not a line interaction: the event must be left to the host for its
	// normal selection and pan behavior.
	PlaceNone PlaceActions = iota

	// PlaceToggle flips the ShowMixed flag of the dot at Index.
	PlaceToggle

	// PlaceRemove removes the dot at Index.
	PlaceRemove

	// PlaceAdd adds Dot, snapped to the nearest tick.
	PlaceAdd
)

// Placement is the classified result of a click, to be applied with
// [Line.Apply].
type Placement struct {

	// Action says what the click does; [PlaceNone] if nothing.
	Action PlaceActions

	// Index is the index of the affected existing dot, for
	// [PlaceToggle] and [PlaceRemove]. -1 otherwise.
	Index int

	// Dot is the new dot, for [PlaceAdd].
	Dot Dot
}

// Place classifies a pointer position in the shape's local space against
// the line's rendered geometry. In order:
//  1. In the label hot-zone above an existing dot (±[LabelSlop] px
//     horizontally, above the baseline within the band): toggle that
//     dot's mixed display.
//  2. Outside the interactive band (±[BandSlopY] px vertically,
//     ±[BandSlopX] px beyond the ends): no interaction.
//  3. Within ±[DotSlop] px of an existing dot: remove it.
//  4. Otherwise: add a dot snapped to the nearest tick. When two ticks
//     are exactly equidistant, the first one in left-to-right scan order
//     wins; the snapped dot stores round((value-Start)*Partition) over
//     the current Partition.
//
// An invalid line ignores all clicks.
func (ln *Line) Place(pt math32.Vector2, g Geom) Placement {
	none := Placement{Action: PlaceNone, Index: -1}
	if !ln.Valid() {
		return none
	}
	if pt.Y < g.Y && pt.Y >= g.Y-BandSlopY {
		for i, d := range ln.Dots {
			if math32.Abs(pt.X-g.X(ln, d.Value(ln.Start))) <= LabelSlop {
				return Placement{Action: PlaceToggle, Index: i}
			}
		}
	}
	if pt.Y < g.Y-BandSlopY || pt.Y > g.Y+BandSlopY ||
		pt.X < g.Left-BandSlopX || pt.X > g.Right+BandSlopX {
		return none
	}
	for i, d := range ln.Dots {
		if math32.Abs(pt.X-g.X(ln, d.Value(ln.Start))) <= DotSlop {
			return Placement{Action: PlaceRemove, Index: i}
		}
	}
	best := -1
	bestDist := float32(math.MaxFloat32)
	var bestValue float64
	for i, tk := range ln.Ticks() {
		dist := math32.Abs(pt.X - g.X(ln, tk.Value))
		if dist < bestDist {
			best = i
			bestDist = dist
			bestValue = tk.Value
		}
	}
	if best < 0 {
		return none
	}
	part := max(ln.Partition, 1)
	num := int(math.Round((bestValue - ln.Start) * float64(part)))
	return Placement{
		Action: PlaceAdd,
		Index:  -1,
		Dot:    Dot{Numerator: num, Denominator: part},
	}
}

// Apply applies the placement to the line. Every mutating action replaces
// the Dots slice with a fresh copy, so prior slices handed to the host
// remain valid. It reports whether the line was mutated, which is also
// whether the originating event should be consumed.
func (ln *Line) Apply(p Placement) bool {
	switch p.Action {
	case PlaceToggle:
		dots := slices.Clone(ln.Dots)
		dots[p.Index].ShowMixed = !dots[p.Index].ShowMixed
		ln.Dots = dots
	case PlaceRemove:
		ln.Dots = slices.Delete(slices.Clone(ln.Dots), p.Index, p.Index+1)
	case PlaceAdd:
		ln.Dots = append(slices.Clone(ln.Dots), p.Dot)
	default:
		return false
	}
	return true
}
