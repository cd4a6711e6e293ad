// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numline

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// quarters returns a 0..1 line in quarters rendered across 400px,
// so ticks fall at x = 0, 100, 200, 300, 400 with the baseline at y = 100.
func quarters() (*Line, Geom) {
	return &Line{End: 1, Partition: 4}, Geom{Left: 0, Right: 400, Y: 100}
}

func TestPlaceAdd(t *testing.T) {
	ln, g := quarters()
	p := ln.Place(math32.Vec2(205, 100), g)
	assert.Equal(t, PlaceAdd, p.Action)
	assert.Equal(t, Dot{Numerator: 2, Denominator: 4}, p.Dot)
	assert.Equal(t, Frac(1, 2), p.Dot.Fraction().Simplified())

	assert.True(t, ln.Apply(p))
	assert.Equal(t, []Dot{{Numerator: 2, Denominator: 4}}, ln.Dots)
}

func TestPlaceAddTieBreak(t *testing.T) {
	ln, g := quarters()
	// exactly between the ticks at x=100 and x=200: first minimal wins
	p := ln.Place(math32.Vec2(150, 100), g)
	assert.Equal(t, PlaceAdd, p.Action)
	assert.Equal(t, 1, p.Dot.Numerator)
	assert.Equal(t, 4, p.Dot.Denominator)
}

func TestPlaceAddEndSlop(t *testing.T) {
	ln, g := quarters()
	// up to 10px beyond the line ends still snaps to the end ticks
	p := ln.Place(math32.Vec2(-8, 110), g)
	assert.Equal(t, PlaceAdd, p.Action)
	assert.Equal(t, 0, p.Dot.Numerator)

	p = ln.Place(math32.Vec2(409, 92), g)
	assert.Equal(t, PlaceAdd, p.Action)
	assert.Equal(t, 4, p.Dot.Numerator)
}

func TestPlaceRemove(t *testing.T) {
	ln, g := quarters()
	ln.Dots = []Dot{
		{Numerator: 1, Denominator: 4},
		{Numerator: 2, Denominator: 4},
		{Numerator: 3, Denominator: 4},
	}
	prev := ln.Dots
	p := ln.Place(math32.Vec2(210, 104), g) // within 12px of the dot at x=200
	assert.Equal(t, PlaceRemove, p.Action)
	assert.Equal(t, 1, p.Index)

	assert.True(t, ln.Apply(p))
	assert.Equal(t, []Dot{
		{Numerator: 1, Denominator: 4},
		{Numerator: 3, Denominator: 4},
	}, ln.Dots, "order of remaining dots unchanged")
	assert.Len(t, prev, 3, "prior slice untouched")
}

func TestPlaceToggle(t *testing.T) {
	ln, g := quarters()
	ln.Dots = []Dot{{Numerator: 2, Denominator: 4}}
	prev := ln.Dots
	p := ln.Place(math32.Vec2(215, 85), g) // label hot-zone above the dot
	assert.Equal(t, PlaceToggle, p.Action)
	assert.Equal(t, 0, p.Index)

	assert.True(t, ln.Apply(p))
	assert.True(t, ln.Dots[0].ShowMixed)
	assert.False(t, prev[0].ShowMixed, "prior slice untouched")

	assert.True(t, ln.Apply(ln.Place(math32.Vec2(215, 85), g)))
	assert.False(t, ln.Dots[0].ShowMixed)
}

func TestPlaceOutsideBand(t *testing.T) {
	ln, g := quarters()
	ln.Dots = []Dot{{Numerator: 2, Denominator: 4}}
	for _, pt := range []math32.Vector2{
		math32.Vec2(200, 160), // too far below
		math32.Vec2(200, 60),  // too far above
		math32.Vec2(-30, 100), // beyond the left end
		math32.Vec2(415, 100), // beyond the right end
		math32.Vec2(-30, 90),  // above the line but past the ends
	} {
		p := ln.Place(pt, g)
		assert.Equal(t, PlaceNone, p.Action, "click at %v", pt)
		assert.False(t, ln.Apply(p))
	}
	assert.Len(t, ln.Dots, 1)
}

func TestPlaceInvalidLine(t *testing.T) {
	ln := &Line{Start: 5, End: 2, Partition: 1}
	g := Geom{Left: 0, Right: 400, Y: 100}
	p := ln.Place(math32.Vec2(200, 100), g)
	assert.Equal(t, PlaceNone, p.Action)
	assert.False(t, ln.Apply(p))
	assert.Empty(t, ln.Dots)
}

func TestDotsSurvivePartitionChange(t *testing.T) {
	ln, g := quarters()
	assert.True(t, ln.Apply(ln.Place(math32.Vec2(200, 100), g)))
	v := ln.Dots[0].Value(ln.Start)

	// the dot's value is unchanged by a partition change; it is only
	// reinterpreted against the new tick grid on the next render
	ln.Partition = 8
	assert.Equal(t, v, ln.Dots[0].Value(ln.Start))
	assert.Equal(t, Frac(1, 2), ln.Dots[0].Fraction().Simplified())
}
