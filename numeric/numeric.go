// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric provides the value model of number inputs and sliders:
// tolerant equality, number formatting, range remapping, mid-point curves,
// and rounding, clamping and stepping policies.
package numeric

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance of [Equal].
const Epsilon = 1e-6

// DefaultPrecision is the default number of decimals of [Format].
const DefaultPrecision = 12

// Equal returns whether the two numbers are equal within [Epsilon].
// NaN is equal to NaN.
func Equal(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) < Epsilon
}

// Format formats the given number with at most the given number of
// decimals, without trailing zeros, which removes floating point noise
// (eg: 4.199999999999999 gives "4.2"). NaN and infinities give "NaN",
// "+Infinity" and "-Infinity". Negative zero gives "0".
func Format(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	precision = min(max(precision, 0), 100)
	s := strconv.FormatFloat(v, 'f', precision, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if r == 0 {
		r = 0 // no negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Remap is a linear mapping from the input range [Remap[0], Remap[1]]
// to the output range [Remap[2], Remap[3]].
type Remap [4]float64

// ToDegrees is the [Remap] that presents radians as degrees.
var ToDegrees = Remap{0, math.Pi, 0, 180}

// Apply maps the given value from the input range to the output range.
func (r Remap) Apply(v float64) float64 {
	return (v-r[0])/(r[1]-r[0])*(r[3]-r[2]) + r[2]
}

// Inverse maps the given value from the output range to the input range.
func (r Remap) Inverse(v float64) float64 {
	return (v-r[2])/(r[3]-r[2])*(r[1]-r[0]) + r[0]
}

// Clamp returns the value clamped to [lo, hi]. NaN is returned as is.
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// RoundHalfUp rounds the value to the nearest integer,
// with halves rounded toward positive infinity.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundTo rounds the value to the nearest multiple of the given
// positive number, with halves rounded toward positive infinity.
func RoundTo(v, multiple float64) float64 {
	if multiple <= 0 {
		return v
	}
	return RoundHalfUp(v/multiple) * multiple
}
