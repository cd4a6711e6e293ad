// Copyright (c) 2026, Mathboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numline

import (
	"fmt"
	"log/slog"
	"strconv"
)

// GCD returns the greatest common divisor of the absolute values of
// a and b, using the Euclidean algorithm. It returns 0 only when both
// arguments are 0, which callers must not do.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Fraction is an exact ratio of two integers. A zero Denominator is an
// invariant violation: dots always carry the line's partition, which is
// constrained to be positive.
type Fraction struct {
	Numerator   int
	Denominator int
}

// Frac returns a new [Fraction] with the given numerator and denominator.
func Frac(num, den int) Fraction {
	return Fraction{Numerator: num, Denominator: den}
}

// Value returns the fraction as a float64.
func (f Fraction) Value() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// Simplified returns the fraction reduced to lowest terms, dividing both
// parts by their GCD. A fraction with a 0 denominator cannot occur by
// construction; it is logged and returned unchanged.
func (f Fraction) Simplified() Fraction {
	if f.Denominator == 0 {
		slog.Error("numline.Fraction: zero denominator", "fraction", f)
		return f
	}
	if f.Numerator == 0 {
		return Frac(0, 1)
	}
	g := GCD(f.Numerator, f.Denominator)
	return Frac(f.Numerator/g, f.Denominator/g)
}

func (f Fraction) String() string {
	return strconv.Itoa(f.Numerator) + "/" + strconv.Itoa(f.Denominator)
}

// Mixed is a whole number plus a proper fraction part, the alternative
// display form for an improper [Fraction].
type Mixed struct {
	Whole int
	Part  Fraction
}

// Mixed converts an improper fraction to mixed form: the whole part is
// floor(n/d) and the remainder fraction is simplified. It reports false
// for a proper fraction (numerator < denominator), for which mixed form
// is not applicable.
func (f Fraction) Mixed() (Mixed, bool) {
	if f.Numerator < f.Denominator {
		return Mixed{}, false
	}
	return Mixed{
		Whole: f.Numerator / f.Denominator,
		Part:  Frac(f.Numerator%f.Denominator, f.Denominator).Simplified(),
	}, true
}

// String renders the mixed number: just the whole part when the remainder
// numerator is 0, otherwise the whole part followed by the fraction.
func (m Mixed) String() string {
	if m.Part.Numerator == 0 {
		return strconv.Itoa(m.Whole)
	}
	return fmt.Sprintf("%d %s", m.Whole, m.Part)
}
