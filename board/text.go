// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"image"
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/text/rich"
	"cogentcore.org/core/text/shaped"

	"github.com/mathboard/mathboard/numline"
)

// shapeText shapes s with the widget's current font styling, with the
// font size multiplied by scale. The result is used both for measurement
// and for drawing with [paint.Painter.DrawText].
func shapeText(wb *core.WidgetBase, s string, scale float32) *shaped.Lines {
	st := &wb.Styles
	sty, tsty := st.NewRichText()
	sty.Size *= scale
	tsty.Color = colors.ToUniform(st.Color)
	tx := rich.NewText(sty, []rune(s))
	return wb.Scene.TextShaper.WrapLines(tx, sty, tsty, math32.Vec2(10000, 1000))
}

// drawTextCentered draws the shaped lines with their horizontal center at
// x and their top edge at y.
func drawTextCentered(wb *core.WidgetBase, lns *shaped.Lines, x, y float32) {
	sz := lns.Bounds.Size()
	wb.Scene.Painter.DrawText(lns, math32.Vec2(x-0.5*sz.X, y))
}

// strokeLine strokes a single line segment in the given width and color.
func strokeLine(wb *core.WidgetBase, sp, ep math32.Vector2, width float32, clr image.Image) {
	pc := &wb.Scene.Painter
	pc.Stroke.Color = clr
	pc.Stroke.Width.Dp(width)
	pc.Fill.Color = nil
	pc.MoveTo(sp.X, sp.Y)
	pc.LineTo(ep.X, ep.Y)
	pc.PathDone()
}

// fillCircle fills a circle of radius r centered at ctr.
func fillCircle(wb *core.WidgetBase, ctr math32.Vector2, r float32, clr image.Image) {
	pc := &wb.Scene.Painter
	pc.Fill.Color = clr
	pc.Stroke.Color = nil
	pc.Circle(ctr.X, ctr.Y, r)
	pc.PathDone()
}

const (
	// fracBarPad is the horizontal padding of the fraction bar beyond
	// the wider of the numerator and denominator.
	fracBarPad = 2

	// fracWholeGap is the gap between the whole part of a mixed number
	// and its stacked fraction.
	fracWholeGap = 3
)

// fracGlyph is a measured stacked-fraction glyph, optionally with a
// leading whole number part (mixed-number display). Shape it once per
// render with [newFracGlyph], then position using Size and Draw.
type fracGlyph struct {
	whole    *shaped.Lines // nil if no whole part
	num, den *shaped.Lines // nil if whole-only display
	wholeSz  math32.Vector2
	numSz    math32.Vector2
	denSz    math32.Vector2
	barW     float32

	// Size is the total rendered size of the glyph.
	Size math32.Vector2
}

// fracGlyphFor measures the display glyph for a dot's fraction: the
// simplified improper fraction, or the mixed-number form when showMixed
// is set (whole only when the simplified remainder is 0).
func fracGlyphFor(wb *core.WidgetBase, f numline.Fraction, showMixed bool, scale float32) fracGlyph {
	sf := f.Simplified()
	if showMixed {
		if m, ok := f.Mixed(); ok {
			if m.Part.Numerator == 0 {
				return newFracGlyph(wb, strconv.Itoa(m.Whole), nil, scale)
			}
			return newFracGlyph(wb, strconv.Itoa(m.Whole), &m.Part, scale)
		}
	}
	return newFracGlyph(wb, "", &sf, scale)
}

// newFracGlyph shapes and measures a fraction glyph. whole may be empty
// and frac may be nil, but not both.
func newFracGlyph(wb *core.WidgetBase, whole string, frac *numline.Fraction, scale float32) fracGlyph {
	g := fracGlyph{}
	if whole != "" {
		g.whole = shapeText(wb, whole, scale)
		g.wholeSz = g.whole.Bounds.Size()
		g.Size = g.wholeSz
	}
	if frac == nil {
		return g
	}
	g.num = shapeText(wb, strconv.Itoa(frac.Numerator), scale)
	g.den = shapeText(wb, strconv.Itoa(frac.Denominator), scale)
	g.numSz = g.num.Bounds.Size()
	g.denSz = g.den.Bounds.Size()
	g.barW = max(g.numSz.X, g.denSz.X) + 2*fracBarPad
	stackH := g.numSz.Y + g.denSz.Y
	g.Size.X += g.barW
	if g.whole != nil {
		g.Size.X += fracWholeGap
	}
	g.Size.Y = max(g.Size.Y, stackH)
	return g
}

// Draw renders the glyph with its top-left corner at pos, using clr for
// the fraction bar.
func (g *fracGlyph) Draw(wb *core.WidgetBase, pos math32.Vector2, clr image.Image) {
	x := pos.X
	if g.whole != nil {
		wb.Scene.Painter.DrawText(g.whole, math32.Vec2(x, pos.Y+0.5*(g.Size.Y-g.wholeSz.Y)))
		x += g.wholeSz.X + fracWholeGap
	}
	if g.num == nil {
		return
	}
	stackH := g.numSz.Y + g.denSz.Y
	top := pos.Y + 0.5*(g.Size.Y-stackH)
	ctr := x + 0.5*g.barW
	drawTextCentered(wb, g.num, ctr, top)
	barY := top + g.numSz.Y
	strokeLine(wb, math32.Vec2(x, barY), math32.Vec2(x+g.barW, barY), 1, clr)
	drawTextCentered(wb, g.den, ctr, barY)
}
