// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{1, 1, 1},
		{2, 4, 2},
		{4, 2, 2},
		{6, 4, 2},
		{9, 6, 3},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{-6, 4, 2},
		{6, -4, 2},
		{-6, -4, 2},
		{12, 18, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestSimplified(t *testing.T) {
	tests := []struct {
		in, want Fraction
	}{
		{Frac(2, 4), Frac(1, 2)},
		{Frac(4, 4), Frac(1, 1)},
		{Frac(3, 4), Frac(3, 4)},
		{Frac(6, 8), Frac(3, 4)},
		{Frac(10, 4), Frac(5, 2)},
		{Frac(0, 4), Frac(0, 1)},
		{Frac(12, 3), Frac(4, 1)},
	}
	for _, tt := range tests {
		got := tt.in.Simplified()
		assert.Equal(t, tt.want, got, "%v simplified", tt.in)
		if tt.in.Numerator != 0 {
			assert.InDelta(t, tt.in.Value(), got.Value(), 1e-12, "%v ratio preserved", tt.in)
			assert.Equal(t, 1, GCD(got.Numerator, got.Denominator), "%v in lowest terms", tt.in)
		}
	}
}

func TestSimplifiedZeroDenominator(t *testing.T) {
	// unreachable by construction, but must not panic or divide by zero
	f := Frac(3, 0)
	assert.Equal(t, f, f.Simplified())
}

func TestMixed(t *testing.T) {
	tests := []struct {
		in   Fraction
		want Mixed
		ok   bool
	}{
		{Frac(7, 4), Mixed{1, Frac(3, 4)}, true},
		{Frac(4, 4), Mixed{1, Frac(0, 1)}, true},
		{Frac(6, 4), Mixed{1, Frac(1, 2)}, true},
		{Frac(8, 4), Mixed{2, Frac(0, 1)}, true},
		{Frac(13, 5), Mixed{2, Frac(3, 5)}, true},
		{Frac(3, 4), Mixed{}, false},
		{Frac(0, 4), Mixed{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.in.Mixed()
		assert.Equal(t, tt.ok, ok, "%v applicable", tt.in)
		if !ok {
			continue
		}
		assert.Equal(t, tt.want, got, "%v mixed", tt.in)
		assert.Equal(t, tt.in.Numerator/tt.in.Denominator, got.Whole, "%v whole", tt.in)
		assert.Less(t, got.Part.Value(), 1.0, "%v remainder proper", tt.in)
	}
}

func TestMixedString(t *testing.T) {
	m, ok := Frac(8, 4).Mixed()
	assert.True(t, ok)
	assert.Equal(t, "2", m.String()) // whole only when remainder is 0

	m, ok = Frac(7, 4).Mixed()
	assert.True(t, ok)
	assert.Equal(t, "1 3/4", m.String())

	assert.Equal(t, "2/4", Frac(2, 4).String())
}
