// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package board provides the mathboard whiteboard surface and its
// educational shape widgets: [NumberLine], [Fraction], and [MixedNumber].
// The shapes are regular Cogent Core widgets; the [Board] hosts them at
// free positions and runs the shape placement tools.
package board

//go:generate core generate

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
)

// Tools are the interaction modes of a [Board]. In [ToolSelect], clicks
// go to the shapes themselves (dot placement, field editing, selection);
// in any creation mode the next click places the corresponding shape and
// the tool reverts to [ToolSelect].
type Tools int32 //enums:enum -trim-prefix Tool

const (
	// ToolSelect is the neutral mode: clicks select and interact with
	// existing shapes.
	ToolSelect Tools = iota

	// ToolNumberLine places a [NumberLine] at the next click.
	ToolNumberLine

	// ToolFraction places a [Fraction] at the next click.
	ToolFraction

	// ToolMixedNumber places a [MixedNumber] at the next click.
	ToolMixedNumber
)

// Board is a whiteboard surface for educational math shapes. Shapes are
// child widgets positioned freely at the point where they were placed.
type Board struct {
	core.Frame

	// Tool is the active interaction mode. Use [Board.SetTool] to change
	// it so that the placement state machine is reset along with it.
	Tool Tools `set:"-"`

	// Selected is the currently selected shape, if any. A [events.Select]
	// event is sent on the board when it changes.
	Selected core.Widget `set:"-" json:"-" xml:"-"`

	// state is the placement tool state machine; see tools.go.
	state ToolStates
}

func (bd *Board) Init() {
	bd.Frame.Init()
	bd.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Clickable, abilities.Activatable)
		s.Display = styles.Custom
		s.Overflow.Set(styles.OverflowHidden)
		s.Grow.Set(1, 1)
		s.Background = colors.Scheme.SurfaceContainerLowest
		s.Border.Width.Set(units.Dp(1))
		s.Border.Color.Set(colors.Scheme.OutlineVariant)
		if bd.Tool != ToolSelect {
			s.Cursor = cursors.Crosshair
		}
	})
	bd.On(events.MouseDown, func(e events.Event) {
		if bd.pointerDown() {
			e.SetHandled()
		}
	})
	bd.On(events.MouseUp, func(e events.Event) {
		pos := math32.FromPoint(e.Pos()).Sub(bd.Geom.Pos.Content)
		if w := bd.pointerUp(pos); w != nil {
			e.SetHandled()
		}
	})
	bd.On(events.Click, func(e events.Event) {
		// unhandled clicks in select mode select the shape under the
		// pointer, or clear the selection over empty board space
		if bd.Tool == ToolSelect {
			bd.setSelected(bd.shapeAt(e.Pos()))
		}
	})
}

// shapeAt returns the shape whose bounding box contains the given scene
// point, or nil.
func (bd *Board) shapeAt(pos image.Point) core.Widget {
	var found core.Widget
	for _, c := range bd.Children {
		cw, ok := c.(core.Widget)
		if !ok {
			continue
		}
		if pos.In(cw.AsWidget().Geom.TotalBBox) {
			found = cw
		}
	}
	return found
}

// SetTool sets the active tool and resets the placement state machine.
func (bd *Board) SetTool(t Tools) *Board {
	bd.Tool = t
	bd.state = ToolIdle
	bd.Restyle()
	return bd
}

// setSelected updates the selected shape and notifies listeners with a
// [events.Select] event when it changes.
func (bd *Board) setSelected(w core.Widget) {
	if w == bd.Selected {
		return
	}
	if bd.Selected != nil {
		bd.Selected.AsWidget().SetSelected(false)
	}
	bd.Selected = w
	if w != nil {
		w.AsWidget().SetSelected(true)
	}
	bd.Send(events.Select)
	bd.NeedsRender()
}

// addShape adds a new shape widget for the given creation tool at the
// given position in board-local coordinates, selects it, and returns it.
// It returns nil for [ToolSelect].
func (bd *Board) addShape(t Tools, pos math32.Vector2) core.Widget {
	var w core.Widget
	switch t {
	case ToolNumberLine:
		w = NewNumberLine(bd)
	case ToolFraction:
		w = NewFraction(bd)
	case ToolMixedNumber:
		w = NewMixedNumber(bd)
	default:
		return nil
	}
	w.AsWidget().Styler(func(s *styles.Style) {
		// pos is already in rendered dots, not px
		s.Pos.X.Dot(pos.X)
		s.Pos.Y.Dot(pos.Y)
	})
	bd.setSelected(w)
	bd.Update()
	return w
}

// boardOf returns the [Board] containing the given widget, or nil.
func boardOf(w core.Widget) *Board {
	for p := w.AsTree().Parent; p != nil; p = p.AsTree().Parent {
		if bd, ok := p.(*Board); ok {
			return bd
		}
	}
	return nil
}

// inSelectMode reports whether the board containing w, if any, is in the
// neutral select mode. Shapes only intercept pointer events then; in a
// creation mode the board owns the pointer.
func inSelectMode(w core.Widget) bool {
	bd := boardOf(w)
	return bd == nil || bd.Tool == ToolSelect
}

// selectShape makes w the selection of its containing board, if any.
func selectShape(w core.Widget) {
	if bd := boardOf(w); bd != nil {
		bd.setSelected(w)
	}
}
