// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"cogentcore.org/inspector/base/evalx"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/numeric"
)

// DragPixels is the pointer distance, in pixels, of one
// drag step of a number field label.
const DragPixels = 50

// Number is a field for a number, edited through a [numeric.Input].
// Its value is always a float64.
type Number struct {
	Base

	// Input is the number input of the field.
	Input *numeric.Input
}

// NewNumber returns a new [Number] field.
func NewNumber(p *meta.Property, f *meta.Field) (Field, error) {
	nf := &Number{}
	err := nf.Init(nf, p, f)
	nf.Input = numeric.NewInput(f)
	nf.Input.OnChange(func(value float64) {
		nf.Set(value, false)
	})
	return nf, err
}

// SetValue sets the value, which is converted with [evalx.SafeEvaluate]
// and constrained by the input.
func (nf *Number) SetValue(value any, silent bool) {
	nf.Input.SetValue(evalx.SafeEvaluate(value), true)
	nf.Set(nf.Input.Value(), silent)
}

// Float returns the current value.
func (nf *Number) Float() float64 {
	return nf.Input.Value()
}

func (nf *Number) Focused() bool {
	return nf.Base.Focused() || nf.Input.Focused()
}

// DragLabel shifts the value for a horizontal pointer drag
// of the given number of pixels on the label.
func (nf *Number) DragLabel(deltaX float64, mods numeric.Modifiers) {
	nf.Input.DragShift(deltaX/DragPixels, mods)
}

func (nf *Number) Destroy() {
	nf.Input.Destroy()
	nf.Base.Destroy()
}
