// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "math"

// curveExponent returns the exponent p of the power curve
// min + (max - min) * alpha^p that goes through middle at alpha = 0.5,
// and false if middle is NaN or not strictly between min and max,
// in which case the curve is linear.
func curveExponent(min, max, middle float64) (float64, bool) {
	if math.IsNaN(middle) || max == min {
		return 1, false
	}
	t := (middle - min) / (max - min)
	if !(t > 0 && t < 1) {
		return 1, false
	}
	return math.Log(t) / math.Log(0.5), true
}

// Interpolate returns the value at the given alpha, clamped to [0, 1],
// on the curve from min to max that goes through middle at alpha = 0.5.
// The curve is linear when middle is NaN or out of range.
func Interpolate(min, max, middle, alpha float64) float64 {
	alpha = Clamp(alpha, 0, 1)
	p, _ := curveExponent(min, max, middle)
	return min + (max-min)*math.Pow(alpha, p)
}

// InverseInterpolate is the inverse of [Interpolate]: it returns the alpha
// in [0, 1] for the given value on the curve from min to max that goes
// through middle at alpha = 0.5.
func InverseInterpolate(min, max, middle, value float64) float64 {
	if max == min {
		return 0
	}
	r := Clamp((value-min)/(max-min), 0, 1)
	p, _ := curveExponent(min, max, middle)
	return math.Pow(r, 1/p)
}
