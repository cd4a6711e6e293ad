// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"

	"github.com/mathboard/mathboard/numline"
)

// MixedNumber is an editable mixed-number shape: a whole-number field
// followed by a stacked proper-fraction part and an optional suffix
// field. It uses the same one-directional width growth as [Fraction].
type MixedNumber struct {
	core.Frame

	// Value is the mixed number shown in the fields.
	Value numline.Mixed

	// Suffix is optional text displayed after the number.
	Suffix string

	// width is the grown width floor in dots; it only ever increases.
	width float32

	whole, num, den, suf *core.TextField
}

func (mn *MixedNumber) Init() {
	mn.Frame.Init()
	mn.Value = numline.Mixed{Whole: 1, Part: numline.Frac(1, 2)}
	mn.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Clickable, abilities.Activatable)
		s.Direction = styles.Row
		s.Align.Items = styles.Center
		s.Gap.Set(units.Em(fieldGapEm))
		s.Padding.Set(units.Dp(8))
		s.Background = colors.Scheme.Surface
		s.Border.Radius = styles.BorderRadiusSmall
		if mn.width > 0 {
			s.Min.X.Dot(mn.width)
		}
	})
	mn.Maker(func(p *tree.Plan) {
		tree.AddAt(p, "whole", func(w *core.TextField) {
			mn.whole = w
			numField(w, mn,
				func() int { return mn.Value.Whole },
				func(v int) bool { mn.Value.Whole = v; return true })
		})
		fracStack(p, mn, func() *numline.Fraction { return &mn.Value.Part },
			func(num, den *core.TextField) { mn.num, mn.den = num, den })
		tree.AddAt(p, "suffix", func(w *core.TextField) {
			mn.suf = w
			suffixField(w, mn,
				func() string { return mn.Suffix },
				func(s string) { mn.Suffix = s })
		})
	})
}

// grow widens the shape if its fields no longer fit; like
// [Fraction.grow] it never shrinks the shape or changes its height.
func (mn *MixedNumber) grow() {
	em := mn.Styles.Font.Size.Dots
	need := em * stackFieldsEm(mn.num, mn.den, mn.suf)
	if mn.whole != nil {
		need += em * (fieldEm(len(mn.whole.Text())) + fieldGapEm)
	}
	need += mn.Styles.BoxSpace().Size().X
	if need > mn.width {
		mn.width = need
		mn.NeedsLayout()
	}
}
