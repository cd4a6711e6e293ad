// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/styles/units"
	"github.com/stretchr/testify/assert"

	"github.com/mathboard/mathboard/numline"
)

func TestFraction(t *testing.T) {
	b := core.NewBody()
	NewFraction(b)
	b.AssertRender(t, "fraction/basic")
}

func TestFractionSuffix(t *testing.T) {
	b := core.NewBody()
	NewFraction(b).SetValue(numline.Frac(3, 4)).SetSuffix("cups")
	b.AssertRender(t, "fraction/suffix")
}

func TestMixedNumber(t *testing.T) {
	b := core.NewBody()
	NewMixedNumber(b)
	b.AssertRender(t, "mixed/basic")
}

func TestMixedNumberSuffix(t *testing.T) {
	b := core.NewBody()
	NewMixedNumber(b).SetValue(numline.Mixed{Whole: 2, Part: numline.Frac(1, 3)}).SetSuffix("miles")
	b.AssertRender(t, "mixed/suffix")
}

func TestFieldEm(t *testing.T) {
	assert.InDelta(t, 1.2, fieldEm(0), 1e-6)
	assert.InDelta(t, 1.2, fieldEm(2), 1e-6)
	assert.InDelta(t, 3.0, fieldEm(5), 1e-6)
}

func TestStackFieldsEm(t *testing.T) {
	b := core.NewBody()
	num := core.NewTextField(b).SetText("1")
	den := core.NewTextField(b).SetText("100")
	suf := core.NewTextField(b).SetText("cm")

	// the stack is as wide as its wider field
	assert.InDelta(t, fieldEm(3), stackFieldsEm(num, den, nil), 1e-6)
	assert.InDelta(t, fieldEm(3)+fieldGapEm+fieldEm(2), stackFieldsEm(num, den, suf), 1e-6)
	assert.Equal(t, float32(0), stackFieldsEm(nil, nil, suf))
}

func TestFractionGrow(t *testing.T) {
	b := core.NewBody()
	fr := NewFraction(b)
	b.AssertRender(t, "fraction/grow", func() {
		w0 := fr.width
		fr.den.SetText("1000000")
		fr.grow()
		assert.Greater(t, fr.width, w0)

		// growth is one-directional
		grown := fr.width
		fr.den.SetText("2")
		fr.grow()
		assert.Equal(t, grown, fr.width)

		// the grown width is in dots and must be styled as such
		fr.Restyle()
		assert.Equal(t, units.UnitDot, fr.Styles.Min.X.Unit)
		assert.Equal(t, fr.width, fr.Styles.Min.X.Value)
	})
}

func TestMixedNumberGrow(t *testing.T) {
	b := core.NewBody()
	mn := NewMixedNumber(b)
	b.AssertRender(t, "mixed/grow", func() {
		w0 := mn.width
		mn.whole.SetText("123456")
		mn.grow()
		assert.Greater(t, mn.width, w0)

		mn.Restyle()
		assert.Equal(t, units.UnitDot, mn.Styles.Min.X.Unit)
		assert.Equal(t, mn.width, mn.Styles.Min.X.Value)
	})
}
