// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"

	"cogentcore.org/inspector/base/evalx"
	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/meta"
)

// Modifiers are the modifier keys held during a shift of the value.
type Modifiers uint8

const (
	// Shift multiplies the shift by [Input.ModifierScale].
	Shift Modifiers = 1 << iota

	// Alt divides the shift by [Input.ModifierScale].
	Alt
)

// Has returns whether the given modifier is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// Keys are the keys handled by a focused [Input].
type Keys int32

const (
	KeyNone Keys = iota
	KeyArrowUp
	KeyArrowDown
	KeyEscape
)

// Input is the value model of a number input. It is configured
// from the modifiers of a [meta.Field]:
//
//	min(v) | range(v, _) | slider(v, ...)       minimum, default -Inf
//	max(v) | range(_, v) | slider(_, v, ...)    maximum, default +Inf
//	middle(v)                                   mid-point of the slider curve
//	step(v) | slider(_, _, v)                   shift step, 0 meaning 1
//	round(v)                                    rounding multiple
//	modifierScale(v) | slider(_, _, _, v)       shift/alt scale, default 10
//	dragScale(v)                                extra drag scale, default 1
//	precision(v)                                display decimals, default 3
//	remap(to-degrees) | remap(a, b, c, d)       display remapping
//	clamped, integer                            value policies
//
// The value is stored with full precision; only the text is formatted.
type Input struct {

	// Meta is the field configuration of the input.
	Meta *meta.Field

	Min           float64
	Max           float64
	Middle        float64
	Step          float64
	Round         float64
	ModifierScale float64
	DragScale     float64
	Precision     int

	// Remap is the display remapping, if any.
	Remap *Remap

	// Slider is the slider of the input, which only exists with the
	// slider modifier and finite bounds.
	Slider *Slider

	value     float64
	text      string
	focused   bool
	listeners events.Listeners[func(value float64)]
	destroyed bool
}

// argRef refers to the argument at the given index of a modifier.
type argRef struct {
	name  string
	index int
}

// firstArg returns the evaluated value of the first present argument
// among the given references, or the default value.
func firstArg(f *meta.Field, defaultValue float64, refs ...argRef) float64 {
	for _, r := range refs {
		if a, ok := f.Arg(r.name, r.index); ok {
			return evalx.SafeEvaluate(a)
		}
	}
	return defaultValue
}

// NewInput returns a new [Input] configured from the given field.
// Its initial value is NaN, with an empty text.
func NewInput(f *meta.Field) *Input {
	in := &Input{Meta: f, value: math.NaN()}
	in.Min = firstArg(f, math.Inf(-1), argRef{"min", 0}, argRef{"range", 0}, argRef{"slider", 0})
	in.Max = firstArg(f, math.Inf(1), argRef{"max", 0}, argRef{"range", 1}, argRef{"slider", 1})
	in.Middle = firstArg(f, math.NaN(), argRef{"middle", 0})
	in.Step = firstArg(f, 0, argRef{"step", 0}, argRef{"slider", 2})
	in.Round = firstArg(f, 0, argRef{"round", 0})
	in.ModifierScale = firstArg(f, 10, argRef{"modifierScale", 0}, argRef{"slider", 3})
	in.DragScale = firstArg(f, 1, argRef{"dragScale", 0})
	in.Precision = int(firstArg(f, 3, argRef{"precision", 0}))

	if args := f.ArgsOf("remap"); len(args) > 0 {
		switch {
		case args[0] == "to-degrees":
			r := ToDegrees
			in.Remap = &r
		case len(args) == 4:
			in.Remap = &Remap{}
			for i, a := range args {
				in.Remap[i] = evalx.SafeEvaluate(a)
			}
		}
	}

	if f.Has("slider") && !math.IsInf(in.Min, 0) && !math.IsInf(in.Max, 0) {
		in.Slider = NewSlider().SetValue(in.Min, in.Min, in.Max, in.Middle)
		if f.Has("slider-fill") {
			fill, _ := f.Arg("slider-fill", 0)
			if fill == "" {
				fill = "none"
			}
			in.Slider.SetFill(fill)
		}
		in.Slider.OnDrag(func(value float64) { in.SetValue(value, false) })
	}
	return in
}

// Value returns the current value, with full precision.
func (in *Input) Value() float64 {
	return in.value
}

// Text returns the display text of the current value.
func (in *Input) Text() string {
	return in.text
}

// Constrain applies the clamped, integer and round policies to the given value.
func (in *Input) Constrain(value float64) float64 {
	if in.Meta.Has("clamped") {
		value = Clamp(value, in.Min, in.Max)
	}
	if in.Meta.Has("integer") {
		value = RoundHalfUp(value)
	}
	if in.Round > 0 {
		value = RoundTo(value, in.Round)
	}
	return value
}

// SetValue sets the value after applying [Input.Constrain]. Nothing
// happens if the result is [Equal] to the current value, which stops
// feedback loops between nested inputs. Otherwise the slider and the text
// are updated, and the change listeners are notified unless silent.
func (in *Input) SetValue(value float64, silent bool) *Input {
	if in.destroyed {
		return in
	}
	value = in.Constrain(value)
	if Equal(value, in.value) {
		return in
	}
	in.value = value
	if in.Slider != nil {
		in.Slider.SetValue(value, in.Min, in.Max, in.Middle)
	}
	display := value
	if in.Remap != nil {
		display = in.Remap.Apply(value)
	}
	in.text = Format(display, in.Precision)
	if !silent {
		in.listeners.Each(func(fun func(float64)) { fun(value) })
	}
	return in
}

// SetText sets the value from the given user text, which is
// evaluated with [evalx.SafeEvaluate] and remapped back.
func (in *Input) SetText(text string) *Input {
	value := evalx.SafeEvaluate(text)
	if in.Remap != nil {
		value = in.Remap.Inverse(value)
	}
	return in.SetValue(value, false)
}

// Shift adds scalarBase steps to the value. A zero step counts as 1;
// the [Shift] modifier multiplies it by [Input.ModifierScale]
// and the [Alt] modifier divides it.
func (in *Input) Shift(scalarBase float64, mods Modifiers) *Input {
	step := in.Step
	if step == 0 {
		step = 1
	}
	step *= scalarBase
	switch {
	case mods.Has(Shift):
		step *= in.ModifierScale
	case mods.Has(Alt):
		step /= in.ModifierScale
	}
	return in.SetValue(in.value+step, false)
}

// DragShift is [Input.Shift] for pointer drags, scaled by [Input.DragScale].
func (in *Input) DragShift(scalarBase float64, mods Modifiers) *Input {
	return in.Shift(scalarBase*in.DragScale, mods)
}

// SetFocused sets whether the input has the keyboard focus.
func (in *Input) SetFocused(focused bool) *Input {
	in.focused = focused
	return in
}

// Focused returns whether the input has the keyboard focus.
func (in *Input) Focused() bool {
	return in.focused
}

// KeyDown handles the given key press, and returns whether it was handled.
// Keys are only handled while the input is focused: arrows shift the value
// by one step and escape gives up the focus.
func (in *Input) KeyDown(k Keys, mods Modifiers) bool {
	if !in.focused {
		return false
	}
	switch k {
	case KeyArrowUp:
		in.Shift(1, mods)
	case KeyArrowDown:
		in.Shift(-1, mods)
	case KeyEscape:
		in.SetFocused(false)
	default:
		return false
	}
	return true
}

// OnChange adds a listener called with the new value
// when the value changes non-silently.
func (in *Input) OnChange(fun func(value float64)) *events.Handle {
	return in.listeners.Add(fun)
}

// Destroy releases the slider and the listeners.
// It is safe to call more than once.
func (in *Input) Destroy() {
	if in.destroyed {
		return
	}
	in.destroyed = true
	in.listeners.Clear()
	if in.Slider != nil {
		in.Slider.Destroy()
	}
}
