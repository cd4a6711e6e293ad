// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"testing"

	"cogentcore.org/core/core"
	"github.com/stretchr/testify/assert"

	"github.com/mathboard/mathboard/numline"
)

func TestNumberLine(t *testing.T) {
	b := core.NewBody()
	NewNumberLine(b)
	b.AssertRender(t, "numberline/basic")
}

func TestNumberLineQuarters(t *testing.T) {
	b := core.NewBody()
	nl := NewNumberLine(b).SetRange(0, 2).SetPartition(4)
	nl.Line.Dots = []numline.Dot{{Numerator: 3, Denominator: 4}, {Numerator: 6, Denominator: 4, ShowMixed: true}}
	b.AssertRender(t, "numberline/quarters")
}

func TestNumberLineOffset(t *testing.T) {
	b := core.NewBody()
	NewNumberLine(b).SetRange(2, 6).SetPartition(2)
	b.AssertRender(t, "numberline/offset")
}

func TestNumberLineInvalid(t *testing.T) {
	b := core.NewBody()
	NewNumberLine(b).SetRange(3, 3)
	b.AssertRender(t, "numberline/invalid")
}

func TestNumberLineGeom(t *testing.T) {
	b := core.NewBody()
	nl := NewNumberLine(b)
	b.AssertRender(t, "numberline/geom", func() {
		g := nl.geom()
		assert.Equal(t, float32(lineInset), g.Left)
		assert.Greater(t, g.Right, g.Left)
		assert.Greater(t, g.Y, float32(0))
	})
}
