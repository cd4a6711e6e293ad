// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
)

// ToolStates are the states of the shape placement state machine:
// Idle -> Pointing on mouse-down with a creation tool active, then
// Pointing -> (create shape) -> Idle on mouse-up. The select tool
// never leaves Idle.
type ToolStates int32 //enums:enum -trim-prefix Tool

const (
	// ToolIdle means no placement is in progress.
	ToolIdle ToolStates = iota

	// ToolPointing means the pointer is down with a creation tool
	// active, and the shape will be created where it is released.
	ToolPointing
)

// pointerDown advances the placement machine on a mouse-down event.
// It reports whether the event starts a placement, which is also whether
// the board consumes it.
func (bd *Board) pointerDown() bool {
	if bd.Tool == ToolSelect || bd.state != ToolIdle {
		return false
	}
	bd.state = ToolPointing
	return true
}

// pointerUp completes a placement on a mouse-up event at the given
// position in board-local coordinates: the active tool's shape is
// created there, the tool reverts to [ToolSelect], and the machine
// returns to [ToolIdle]. It returns the new shape, or nil if no
// placement was in progress.
func (bd *Board) pointerUp(pos math32.Vector2) core.Widget {
	if bd.state != ToolPointing {
		return nil
	}
	bd.state = ToolIdle
	w := bd.addShape(bd.Tool, pos)
	bd.SetTool(ToolSelect)
	return w
}
