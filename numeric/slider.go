// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"

	"cogentcore.org/inspector/events"
)

// Slider is the value model of a slider attached to a number input.
// Its position is an alpha in [0, 1], mapped to values between
// [Slider.Min] and [Slider.Max], linearly or through the mid-point
// curve when [Slider.Middle] is set.
type Slider struct {

	// Min is the value at alpha = 0.
	Min float64

	// Max is the value at alpha = 1.
	Max float64

	// Middle is the value at alpha = 0.5, or NaN for a linear slider.
	Middle float64

	// Fill is the fill mode of the slider, set by the slider-fill modifier.
	Fill string

	// alpha is the current position of the slider.
	alpha float64

	// dragMode is whether fine drag mode is on.
	dragMode bool

	listeners events.Listeners[func(value float64)]
	destroyed bool
}

// NewSlider returns a new linear [Slider] from 0 to 1.
func NewSlider() *Slider {
	return &Slider{Max: 1, Middle: math.NaN()}
}

// SetFill sets the [Slider.Fill] mode.
func (sr *Slider) SetFill(fill string) *Slider {
	sr.Fill = fill
	return sr
}

// SetValue sets the range of the slider and moves it to the given value,
// without notifying the drag listeners.
func (sr *Slider) SetValue(value, min, max, middle float64) *Slider {
	sr.Min, sr.Max, sr.Middle = min, max, middle
	sr.alpha = InverseInterpolate(min, max, middle, value)
	return sr
}

// Alpha returns the current position of the slider, in [0, 1].
func (sr *Slider) Alpha() float64 {
	return sr.alpha
}

// ValueAt returns the value at the given position.
func (sr *Slider) ValueAt(alpha float64) float64 {
	return Interpolate(sr.Min, sr.Max, sr.Middle, alpha)
}

// DragTo moves the slider to the given position, clamped to [0, 1],
// and notifies the drag listeners with the corresponding value.
func (sr *Slider) DragTo(alpha float64) {
	if sr.destroyed {
		return
	}
	sr.alpha = Clamp(alpha, 0, 1)
	value := sr.ValueAt(sr.alpha)
	sr.listeners.Each(func(fun func(float64)) { fun(value) })
}

// OnDrag adds a listener called with the new value when the slider is dragged.
func (sr *Slider) OnDrag(fun func(value float64)) *events.Handle {
	return sr.listeners.Add(fun)
}

// SetDragMode sets whether fine drag mode is on.
func (sr *Slider) SetDragMode(on bool) *Slider {
	sr.dragMode = on
	return sr
}

// DragMode returns whether fine drag mode is on.
func (sr *Slider) DragMode() bool {
	return sr.dragMode
}

// Destroy removes all of the drag listeners. It is safe to call more than once.
func (sr *Slider) Destroy() {
	if sr.destroyed {
		return
	}
	sr.destroyed = true
	sr.listeners.Clear()
}
