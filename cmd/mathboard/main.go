// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mathboard is a whiteboard app for teaching fractions and number
// lines. A toolbar selects the shape placement tool, the board hosts
// the placed shapes, and a side panel edits the selected shape.
package main

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/tree"

	"github.com/mathboard/mathboard/board"
)

func main() {
	b := core.NewBody("mathboard").SetTitle("Mathboard")

	sp := core.NewSplits(b)
	sp.SetSplits(0.75, 0.25)
	bd := board.NewBoard(sp)

	side := core.NewFrame(sp)
	side.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	core.NewText(side).SetType(core.TextTitleMedium).SetText("Shape")
	hint := core.NewText(side).SetText("Click a shape to edit it")
	fm := core.NewForm(side)
	fm.SetStruct(&struct{}{})
	fm.OnChange(func(e events.Event) {
		if bd.Selected != nil {
			bd.Selected.AsWidget().Update()
		}
	})

	bd.OnSelect(func(e events.Event) {
		hint.SetState(bd.Selected != nil, states.Invisible)
		switch sh := bd.Selected.(type) {
		case *board.NumberLine:
			fm.SetStruct(&sh.Line)
		case *board.Fraction:
			fm.SetStruct(&sh.Value)
		case *board.MixedNumber:
			fm.SetStruct(&sh.Value)
		default:
			fm.SetStruct(&struct{}{})
		}
		fm.Update()
	})

	b.AddTopBar(func(bar *core.Frame) {
		tb := core.NewToolbar(bar)
		tb.Maker(func(p *tree.Plan) {
			tool := func(t board.Tools, ic icons.Icon, tip string) {
				tree.AddAt(p, t.String(), func(w *core.Button) {
					w.SetIcon(ic).SetTooltip(tip)
					w.OnClick(func(e events.Event) {
						bd.SetTool(t)
					})
				})
			}
			tool(board.ToolSelect, icons.ArrowSelectorTool, "Select and edit shapes")
			tool(board.ToolNumberLine, icons.Straighten, "Place a number line")
			tool(board.ToolFraction, icons.Percent, "Place a fraction")
			tool(board.ToolMixedNumber, icons.Numbers, "Place a mixed number")
		})
	})

	b.RunMainWindow()
}
