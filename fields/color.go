// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"cogentcore.org/inspector/meta"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a field for a color given as a CSS string (eg: "#ff8800").
type Color struct {
	Base
}

// NewColor returns a new [Color] field.
func NewColor(p *meta.Property, f *meta.Field) (Field, error) {
	cf := &Color{}
	return cf, cf.Init(cf, p, f)
}

// String returns the current value.
func (cf *Color) String() string {
	s, _ := cf.value.(string)
	return s
}

// Preview returns the color to show in the preview: the current value,
// normalized to a lowercase 6 digit hex color when it is a 3 or 6
// digit hex color.
func (cf *Color) Preview() string {
	s := cf.String()
	c, err := colorful.Hex(s)
	if err != nil {
		return s
	}
	return c.Hex()
}

// SetColor sets the value from the given color picked by the user.
func (cf *Color) SetColor(c colorful.Color) {
	cf.SetValue(c.Clamped().Hex(), false)
}
