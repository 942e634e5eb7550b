// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"cogentcore.org/inspector/meta"
)

// Boolean is a field for a bool.
type Boolean struct {
	Base
}

// NewBoolean returns a new [Boolean] field.
func NewBoolean(p *meta.Property, f *meta.Field) (Field, error) {
	bf := &Boolean{}
	return bf, bf.Init(bf, p, f)
}

// Checked returns whether the current value is true.
func (bf *Boolean) Checked() bool {
	b, _ := bf.value.(bool)
	return b
}

// Toggle inverts the value, as clicking on the checkbox does.
func (bf *Boolean) Toggle() {
	bf.SetValue(!bf.Checked(), false)
}

// Text is a field for a string, used for the text and string types.
type Text struct {
	Base
}

// NewText returns a new [Text] field.
func NewText(p *meta.Property, f *meta.Field) (Field, error) {
	tf := &Text{}
	return tf, tf.Init(tf, p, f)
}

// String returns the current value.
func (tf *Text) String() string {
	s, _ := tf.value.(string)
	return s
}

// Input sets the value from user input.
func (tf *Text) Input(text string) {
	tf.SetValue(text, false)
}

// Unknown is the placeholder field for types that have no registered field.
type Unknown struct {
	Base
}

// NewUnknown returns a new [Unknown] field.
func NewUnknown(p *meta.Property, f *meta.Field) (Field, error) {
	uf := &Unknown{}
	return uf, uf.Init(uf, p, f)
}

// Message returns the message shown in place of the field.
func (uf *Unknown) Message() string {
	return "Unknown field type: " + uf.meta.Type
}
