// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"

	"github.com/mathboard/mathboard/numline"
)

// editable numeric field sizing
const (
	// fieldCharEm is the width of one character in em units.
	fieldCharEm = 0.6

	// fieldMinChars is the minimum field width floor, in characters.
	fieldMinChars = 2

	// fieldGapEm is the fixed gap between fields, in em units.
	fieldGapEm = 0.25
)

// fieldEm returns the width of an editable numeric field in em units
// for the given character count, with a [fieldMinChars] floor.
func fieldEm(n int) float32 {
	return fieldCharEm * float32(max(n, fieldMinChars))
}

// growShape is a shape whose width grows to fit its editable fields;
// see [Fraction.grow].
type growShape interface {
	core.Widget
	grow()
}

// numField configures tf as an editable numeric field bound to an int
// value: its width follows its content length with a floor, every
// keystroke triggers the owner's one-directional growth, and invalid or
// rejected edits revert to the current value.
func numField(tf *core.TextField, owner growShape, get func() int, set func(int) bool) {
	tf.Styler(func(s *styles.Style) {
		s.Min.X.Em(fieldEm(len(tf.Text())))
	})
	tf.Updater(func() {
		tf.SetText(strconv.Itoa(get()))
	})
	tf.OnInput(func(e events.Event) {
		owner.grow()
	})
	tf.OnChange(func(e events.Event) {
		if v, err := strconv.Atoi(tf.Text()); err == nil && set(v) {
			owner.AsWidget().SendChange(e)
			return
		}
		tf.SetText(strconv.Itoa(get()))
	})
}

// suffixField configures tf as the optional free-text suffix field.
func suffixField(tf *core.TextField, owner growShape, get func() string, set func(string)) {
	tf.SetPlaceholder("unit")
	tf.Styler(func(s *styles.Style) {
		s.Min.X.Em(fieldEm(len(tf.Text())))
	})
	tf.Updater(func() {
		tf.SetText(get())
	})
	tf.OnInput(func(e events.Event) {
		owner.grow()
	})
	tf.OnChange(func(e events.Event) {
		set(tf.Text())
		owner.AsWidget().SendChange(e)
	})
}

// fracStack adds the stacked numerator / bar / denominator column for
// the given fraction accessor to the plan.
func fracStack(p *tree.Plan, owner growShape, frac func() *numline.Fraction, assign func(num, den *core.TextField)) {
	tree.AddAt(p, "stack", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
			s.Align.Items = styles.Center
			s.Gap.Set(units.Dp(2))
		})
		w.Maker(func(p *tree.Plan) {
			var num, den *core.TextField
			tree.AddAt(p, "numerator", func(w *core.TextField) {
				num = w
				numField(w, owner,
					func() int { return frac().Numerator },
					func(v int) bool { frac().Numerator = v; return true })
			})
			tree.AddAt(p, "bar", func(w *core.Separator) {
				w.Styler(func(s *styles.Style) {
					s.Background = colors.Scheme.OnSurface
				})
			})
			tree.AddAt(p, "denominator", func(w *core.TextField) {
				den = w
				numField(w, owner,
					func() int { return frac().Denominator },
					func(v int) bool {
						if v == 0 {
							return false
						}
						frac().Denominator = v
						return true
					})
			})
			assign(num, den)
		})
	})
}

// Fraction is an editable fraction shape: stacked numerator and
// denominator fields with a fraction bar, plus an optional suffix
// field. The shape grows horizontally to fit its fields as the user
// types and never shrinks back.
type Fraction struct {
	core.Frame

	// Value is the fraction shown in the fields.
	Value numline.Fraction

	// Suffix is optional text displayed after the fraction, such as a
	// unit name.
	Suffix string

	// width is the grown width floor in dots; it only ever increases.
	width float32

	num, den, suf *core.TextField
}

func (fr *Fraction) Init() {
	fr.Frame.Init()
	fr.Value = numline.Frac(1, 2)
	fr.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Clickable, abilities.Activatable)
		s.Direction = styles.Row
		s.Align.Items = styles.Center
		s.Gap.Set(units.Em(fieldGapEm))
		s.Padding.Set(units.Dp(8))
		s.Background = colors.Scheme.Surface
		s.Border.Radius = styles.BorderRadiusSmall
		if fr.width > 0 {
			s.Min.X.Dot(fr.width)
		}
	})
	fr.Maker(func(p *tree.Plan) {
		fracStack(p, fr, func() *numline.Fraction { return &fr.Value },
			func(num, den *core.TextField) { fr.num, fr.den = num, den })
		tree.AddAt(p, "suffix", func(w *core.TextField) {
			fr.suf = w
			suffixField(w, fr,
				func() string { return fr.Suffix },
				func(s string) { fr.Suffix = s })
		})
	})
}

// grow widens the shape if its fields no longer fit. Growth happens on
// every keystroke, is one-directional (the shape never auto-shrinks),
// and never affects height.
func (fr *Fraction) grow() {
	em := fr.Styles.Font.Size.Dots
	need := em * stackFieldsEm(fr.num, fr.den, fr.suf)
	need += fr.Styles.BoxSpace().Size().X
	if need > fr.width {
		fr.width = need
		fr.NeedsLayout()
	}
}

// stackFieldsEm returns the total width in em units of a stacked
// fraction plus an optional suffix field: the stack is as wide as its
// wider field, and each additional field adds a fixed gap.
func stackFieldsEm(num, den, suf *core.TextField) float32 {
	if num == nil || den == nil {
		return 0
	}
	w := max(fieldEm(len(num.Text())), fieldEm(len(den.Text())))
	if suf != nil {
		w += fieldGapEm + fieldEm(len(suf.Text()))
	}
	return w
}
