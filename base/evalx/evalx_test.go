// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 2", 4},
		{"-3", -3},
		{"10 / 4", 2.5},
		{"(1 + 2) * 3", 9},
		{"sqrt(16)", 4},
		{"2 * PI", 2 * math.Pi},
		{"TAU / 2", math.Pi},
		{"max(1, 7, 3)", 7},
		{"pow(2, 10)", 1024},
		{"abs(-2.5)", 2.5},
		{"7 % 4", 3},
		{"1e3", 1000},
		{"1e-3", 0.001},
		{"2.5E+2", 250},
		{"PI-1", math.Pi - 1},
		{"2*PI-1", 2*math.Pi - 1},
		{"TAU-PI", math.Pi},
		{".5", 0.5},
		{"-.5", -0.5},
		{"2-.25", 1.75},
		{"max(2*PI-1, 0)", 2*math.Pi - 1},
		{"1--1", 2},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.InDelta(t, tt.want, got, 1e-12, tt.expr)
	}
}

func TestEvaluateErrors(t *testing.T) {
	for _, s := range []string{"", "not-an-expr", "2 +", "foo(1)", "5 apples", "sqrt(-1)", `"abc"`} {
		_, err := Evaluate(s)
		assert.Error(t, err, s)
	}
}

func TestSafeEvaluate(t *testing.T) {
	assert.Equal(t, 0.0, SafeEvaluate(nil))
	assert.Equal(t, 4.0, SafeEvaluate("2 + 2"))
	assert.Equal(t, 0.0, SafeEvaluate("not-an-expr"))
	assert.Equal(t, 0.0, SafeEvaluate("sqrt(-1)"))
	assert.Equal(t, 0.0, SafeEvaluate(struct{ X int }{3}))
	assert.Equal(t, 0.0, SafeEvaluate([]float64{1}))
	assert.Equal(t, 1.5, SafeEvaluate(1.5))
	assert.Equal(t, 3.0, SafeEvaluate(int8(3)))
	assert.Equal(t, 9.0, SafeEvaluate(uint16(9)))
	assert.Equal(t, float64(float32(0.25)), SafeEvaluate(float32(0.25)))
	assert.True(t, math.IsInf(SafeEvaluate(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(SafeEvaluate(math.NaN())), "numbers are returned unchanged")
	assert.Equal(t, 12.0, SafeEvaluate(" 12 "))
	assert.Equal(t, 0.1, SafeEvaluate(".1"))
	assert.InDelta(t, math.Pi-1, SafeEvaluate("PI-1"), 1e-12)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "PI - 1", normalize("PI-1"))
	assert.Equal(t, " - 0.5", normalize("-.5"))
	assert.Equal(t, "1e-3", normalize("1e-3"))
	assert.Equal(t, "a.b", normalize("a.b"))
	assert.Equal(t, "sqrt(0.25)", normalize("sqrt(.25)"))
}
