// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"image"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"

	"github.com/mathboard/mathboard/numline"
)

// number line rendering metrics, in pixels
const (
	lineInset    = 24 // from the content box edges to the line ends
	lineOverhang = 8  // the baseline extends this far past the end ticks
	longTick     = 9  // half-length of an integer tick mark
	shortTick    = 5  // half-length of a subdivision tick mark
	dotRadius    = 5
	tickLabelGap = 6 // between a tick mark and its label below
	dotLabelGap  = 8 // between the line and a dot's label above

	tickLabelScale = 0.9
	unitLabelScale = 0.75
	dotLabelScale  = 0.85
)

// invalidRangeText is the placeholder shown instead of ticks when the
// line's range is invalid (end <= start).
const invalidRangeText = "end must be greater than start"

// NumberLine is a number line shape: a horizontal line with labeled
// ticks on which dots can be placed by clicking. Dots snap to the
// current tick grid and are labeled with their simplified fraction
// value; clicking the label toggles mixed-number display, and clicking
// a dot removes it. See [numline.Line.Place] for the exact interaction
// rules.
type NumberLine struct {
	core.WidgetBase

	// Line is the underlying number-line model: the value range, the
	// partition, and the placed dots.
	Line numline.Line

	// LineColor is the color of the baseline, ticks, and tick labels'
	// fraction bars.
	LineColor image.Image

	// DotColor is the color of placed dots and their labels' bars.
	DotColor image.Image
}

func (nl *NumberLine) Init() {
	nl.WidgetBase.Init()
	nl.Line.Defaults()
	nl.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Clickable, abilities.Activatable, abilities.Hoverable)
		s.Cursor = cursors.Pointer
		s.Min.X.Dp(480)
		s.Min.Y.Dp(130)
		s.Padding.Set(units.Dp(8))
		s.Background = colors.Scheme.Surface
		s.Border.Radius = styles.BorderRadiusSmall
		nl.LineColor = colors.Scheme.OnSurface
		nl.DotColor = colors.Scheme.Primary.Base
	})
	nl.On(events.Click, func(e events.Event) {
		if !inSelectMode(nl) {
			return
		}
		pt := math32.FromPoint(e.Pos()).Sub(nl.Geom.Pos.Content)
		if !nl.Line.Apply(nl.Line.Place(pt, nl.geom())) {
			// outside the interactive band: leave the event for the
			// host's selection and pan behavior
			return
		}
		e.SetHandled()
		selectShape(nl)
		nl.SendChange(e)
		nl.NeedsRender()
	})
}

// geom returns the line's rendered geometry in local coordinates,
// from the current content box allocation.
func (nl *NumberLine) geom() numline.Geom {
	sz := nl.Geom.Size.Actual.Content
	return numline.Geom{Left: lineInset, Right: sz.X - lineInset, Y: 0.6 * sz.Y}
}

// SetRange sets the start and end values of the line.
func (nl *NumberLine) SetRange(start, end float64) *NumberLine {
	nl.Line.Start = start
	nl.Line.End = end
	nl.NeedsRender()
	return nl
}

// SetPartition sets the number of subdivisions per unit interval.
// Existing dots keep their numeric values and are reinterpreted against
// the new tick grid.
func (nl *NumberLine) SetPartition(p int) *NumberLine {
	nl.Line.Partition = max(p, 1)
	nl.NeedsRender()
	return nl
}

func (nl *NumberLine) Render() {
	nl.WidgetBase.Render()
	pos := nl.Geom.Pos.Content
	sz := nl.Geom.Size.Actual.Content
	ln := &nl.Line
	if !ln.Valid() {
		lns := shapeText(&nl.WidgetBase, invalidRangeText, 1)
		nl.Scene.Painter.DrawText(lns, pos.Add(sz.Sub(lns.Bounds.Size()).MulScalar(0.5)))
		return
	}
	g := nl.geom()
	y := pos.Y + g.Y
	strokeLine(&nl.WidgetBase,
		math32.Vec2(pos.X+g.Left-lineOverhang, y),
		math32.Vec2(pos.X+g.Right+lineOverhang, y), 2, nl.LineColor)
	for _, tk := range ln.Ticks() {
		x := pos.X + g.X(ln, tk.Value)
		switch tk.Kind {
		case numline.TickInteger:
			strokeLine(&nl.WidgetBase, math32.Vec2(x, y-longTick), math32.Vec2(x, y+longTick), 2, nl.LineColor)
			lns := shapeText(&nl.WidgetBase, tk.Label, tickLabelScale)
			drawTextCentered(&nl.WidgetBase, lns, x, y+longTick+tickLabelGap)
		default:
			strokeLine(&nl.WidgetBase, math32.Vec2(x, y-shortTick), math32.Vec2(x, y+shortTick), 1, nl.LineColor)
			if tk.Kind == numline.TickUnit {
				unit := numline.Frac(1, ln.Partition)
				gl := newFracGlyph(&nl.WidgetBase, "", &unit, unitLabelScale)
				gl.Draw(&nl.WidgetBase, math32.Vec2(x-0.5*gl.Size.X, y+shortTick+tickLabelGap), nl.LineColor)
			}
		}
	}
	for _, d := range ln.Dots {
		x := pos.X + g.X(ln, d.Value(ln.Start))
		fillCircle(&nl.WidgetBase, math32.Vec2(x, y), dotRadius, nl.DotColor)
		gl := fracGlyphFor(&nl.WidgetBase, d.Fraction(), d.ShowMixed, dotLabelScale)
		gl.Draw(&nl.WidgetBase, math32.Vec2(x-0.5*gl.Size.X, y-longTick-dotLabelGap-gl.Size.Y), nl.DotColor)
	}
}
