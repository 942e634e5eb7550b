// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"

	"cogentcore.org/inspector/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputDefaults(t *testing.T) {
	in := NewInput(meta.Parse("number"))
	assert.True(t, math.IsInf(in.Min, -1))
	assert.True(t, math.IsInf(in.Max, 1))
	assert.True(t, math.IsNaN(in.Middle))
	assert.Equal(t, 0.0, in.Step)
	assert.Equal(t, 0.0, in.Round)
	assert.Equal(t, 10.0, in.ModifierScale)
	assert.Equal(t, 1.0, in.DragScale)
	assert.Equal(t, 3, in.Precision)
	assert.Nil(t, in.Remap)
	assert.Nil(t, in.Slider)
	assert.True(t, math.IsNaN(in.Value()))
	assert.Equal(t, "", in.Text())
}

func TestNewInputFallbacks(t *testing.T) {
	in := NewInput(meta.Parse("number slider(0, 2 * PI, 0.1, 5) middle(1) precision(2) dragScale(0.5)"))
	assert.Equal(t, 0.0, in.Min)
	assert.InDelta(t, 2*math.Pi, in.Max, 1e-12)
	assert.Equal(t, 0.1, in.Step)
	assert.Equal(t, 5.0, in.ModifierScale)
	assert.Equal(t, 1.0, in.Middle)
	assert.Equal(t, 2, in.Precision)
	assert.Equal(t, 0.5, in.DragScale)
	require.NotNil(t, in.Slider)

	in = NewInput(meta.Parse("number min(-1) range(0, 10) slider(5, 6) max(20) step(2)"))
	assert.Equal(t, -1.0, in.Min)
	assert.Equal(t, 20.0, in.Max)
	assert.Equal(t, 2.0, in.Step)

	in = NewInput(meta.Parse("number range(0, 10)"))
	assert.Equal(t, 0.0, in.Min)
	assert.Equal(t, 10.0, in.Max)
	assert.Nil(t, in.Slider)

	// no slider without finite bounds
	in = NewInput(meta.Parse("number slider(0)"))
	assert.Nil(t, in.Slider)
}

func TestInputSetValue(t *testing.T) {
	in := NewInput(meta.Parse("number range(0, 10) clamped integer"))
	var got []float64
	h := in.OnChange(func(v float64) { got = append(got, v) })

	in.SetValue(3.6, false)
	assert.Equal(t, 4.0, in.Value())
	assert.Equal(t, "4", in.Text())
	in.SetValue(15, false)
	assert.Equal(t, 10.0, in.Value())
	in.SetValue(10.0000001, false) // equal, no change
	in.SetValue(-3, true)
	assert.Equal(t, 0.0, in.Value())
	assert.Equal(t, []float64{4, 10}, got)

	h.Destroy()
	in.SetValue(5, false)
	assert.Equal(t, []float64{4, 10}, got)
}

func TestInputPrecision(t *testing.T) {
	in := NewInput(meta.Parse("number precision(2)"))
	in.SetValue(1.23456, false)
	assert.Equal(t, 1.23456, in.Value())
	assert.Equal(t, "1.23", in.Text())

	in = NewInput(meta.Parse("number round(0.25)"))
	in.SetValue(0.8, false)
	assert.Equal(t, 0.75, in.Value())
}

func TestInputRemap(t *testing.T) {
	in := NewInput(meta.Parse("number remap(to-degrees)"))
	in.SetValue(math.Pi/2, false)
	assert.Equal(t, "90", in.Text())
	in.SetText("45")
	assert.InDelta(t, math.Pi/4, in.Value(), 1e-12)

	in = NewInput(meta.Parse("number remap(0, 1, 0, 100) precision(1)"))
	in.SetValue(0.256, false)
	assert.Equal(t, "25.6", in.Text())
}

func TestInputSetText(t *testing.T) {
	in := NewInput(meta.Parse("number"))
	in.SetText("2 * 3 + 1")
	assert.Equal(t, 7.0, in.Value())
	in.SetText("not a number")
	assert.Equal(t, 0.0, in.Value())
}

func TestInputShift(t *testing.T) {
	in := NewInput(meta.Parse("number step(0.5) modifierScale(4)"))
	in.SetValue(1, true)
	in.Shift(1, 0)
	assert.Equal(t, 1.5, in.Value())
	in.Shift(-1, Shift)
	assert.Equal(t, -0.5, in.Value())
	in.Shift(1, Alt)
	assert.Equal(t, -0.375, in.Value())

	in = NewInput(meta.Parse("number dragScale(0.1)"))
	in.SetValue(0, true)
	in.DragShift(2, 0)
	assert.InDelta(t, 0.2, in.Value(), 1e-12)
	in.DragShift(1, Shift)
	assert.InDelta(t, 1.2, in.Value(), 1e-12)
}

func TestInputKeyDown(t *testing.T) {
	in := NewInput(meta.Parse("number"))
	in.SetValue(0, true)
	assert.False(t, in.KeyDown(KeyArrowUp, 0))
	assert.Equal(t, 0.0, in.Value())

	in.SetFocused(true)
	assert.True(t, in.KeyDown(KeyArrowUp, 0))
	assert.True(t, in.KeyDown(KeyArrowUp, Shift))
	assert.Equal(t, 11.0, in.Value())
	assert.True(t, in.KeyDown(KeyArrowDown, 0))
	assert.Equal(t, 10.0, in.Value())
	assert.False(t, in.KeyDown(KeyNone, 0))
	assert.True(t, in.KeyDown(KeyEscape, 0))
	assert.False(t, in.Focused())
}

func TestInputSlider(t *testing.T) {
	in := NewInput(meta.Parse("number slider(1, 100) middle(10) slider-fill"))
	require.NotNil(t, in.Slider)
	assert.Equal(t, "none", in.Slider.Fill)

	in.SetValue(10, false)
	assert.InDelta(t, 0.5, in.Slider.Alpha(), 1e-9)

	var got []float64
	in.OnChange(func(v float64) { got = append(got, v) })
	in.Slider.DragTo(1)
	assert.Equal(t, 100.0, in.Value())
	in.Slider.DragTo(0.5)
	assert.InDelta(t, 10, in.Value(), 1e-9)
	in.Slider.DragTo(-2)
	assert.Equal(t, 1.0, in.Value())
	assert.Len(t, got, 3)

	in.Destroy()
	in.Destroy()
	in.Slider.DragTo(1)
	assert.Equal(t, 1.0, in.Value())
}

func TestSliderLinear(t *testing.T) {
	sr := NewSlider()
	sr.SetValue(25, 0, 100, math.NaN())
	assert.Equal(t, 0.25, sr.Alpha())
	assert.Equal(t, 75.0, sr.ValueAt(0.75))
	var v float64
	h := sr.OnDrag(func(value float64) { v = value })
	sr.DragTo(0.5)
	assert.Equal(t, 50.0, v)
	assert.Equal(t, 0.5, sr.Alpha())
	h.Destroy()
	sr.DragTo(1)
	assert.Equal(t, 50.0, v)
	assert.True(t, sr.SetDragMode(true).DragMode())
}
