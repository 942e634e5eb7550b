// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	f := Parse("number slider(0, 2 * PI, 0.1) clamped")
	assert.Equal(t, TypeNumber, f.Type)
	assert.True(t, f.Has("clamped"))
	assert.False(t, f.Has("integer"))
	assert.Equal(t, []string{}, f.ArgsOf("integer"))
	assert.Equal(t, 0.0, f.NumericArgOf("slider"))
	assert.InDelta(t, 2*math.Pi, f.NumericArgAt("slider", 1, 0), 1e-12)
	assert.Equal(t, 0.1, f.NumericArgAt("slider", 2, 0))
	assert.Equal(t, 10.0, f.NumericArgAt("slider", 3, 10))
	assert.Equal(t, 7.0, f.NumericArgAt("missing", 0, 7))

	a, ok := f.Arg("slider", 1)
	assert.True(t, ok)
	assert.Equal(t, "2 * PI", a)
	_, ok = f.Arg("slider", -1)
	assert.False(t, ok)
}

func TestParseFieldUnknown(t *testing.T) {
	assert.Equal(t, TypeUnknown, Parse("").Type)
	assert.Equal(t, TypeUnknown, Parse("(1, 2)").Type)
}

func TestInferField(t *testing.T) {
	tests := []struct {
		source string
		value  any
		want   string
	}{
		{"", 1.5, TypeNumber},
		{"", 3, TypeNumber},
		{"", uint8(3), TypeNumber},
		{"", true, TypeBoolean},
		{"", "hello", TypeString},
		{"", func() {}, TypeButton},
		{"", nil, TypeUnknown},
		{"", map[string]float64{"x": 1}, TypeObject},
		{"color", "#ff0000", TypeColor},
		{"vector(xy)", 1, TypeVector},
	}
	for _, tt := range tests {
		f := Infer(tt.source, tt.value)
		assert.Equal(t, tt.want, f.Type, "%q %v", tt.source, tt.value)
	}
	assert.Equal(t, 0, Infer("", 2).Props.Len())
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "number range(0, 10) integer", Parse("number range(0,10) integer").String())
	assert.Equal(t, "string", NewField(TypeString, nil, nil).String())
}
