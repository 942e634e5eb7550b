// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fields provides the editable fields of the inspector,
// one kind of field per annotation type, and a registry of them.
package fields

import (
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/meta"
)

// Field is an editable field for the value of one property.
// All fields embed [Base], which implements most of this interface.
type Field interface {

	// AsBase returns the [Base] of the field.
	AsBase() *Base

	// Key returns the key of the property of the field.
	Key() string

	// Property returns the property of the field.
	Property() *meta.Property

	// Meta returns the parsed configuration of the field.
	Meta() *meta.Field

	// Value returns a copy of the current value.
	Value() any

	// SetValue sets the value, notifying the change listeners unless silent.
	// Nothing happens if the value is deeply equal to the current one.
	SetValue(value any, silent bool)

	// Focused returns whether the user is currently interacting with the field.
	Focused() bool

	// SetFocused sets whether the user is currently interacting with the field.
	SetFocused(focused bool)

	// OnChange adds a listener called with a copy of the new value
	// whenever the value changes non-silently.
	OnChange(fun func(value any)) *events.Handle

	// Revert sets the value back to the default value, non-silently.
	Revert()

	// Destroy releases the field and its listeners.
	Destroy()
}

// Base is the base of every [Field]. It holds a copy of the default value,
// and the current and previous values, which are copies that are never
// shared with the caller.
type Base struct {

	// This is the field that embeds this base, used for virtual calls.
	This Field

	property     *meta.Property
	meta         *meta.Field
	defaultValue any
	value        any
	previous     any
	initialized  bool
	focused      bool
	destroyed    bool
	listeners    events.Listeners[func(value any)]
}

// Init initializes the base for the given field, property and configuration.
// An error is returned if the default value cannot be copied, in which
// case the default value is nil.
func (b *Base) Init(this Field, p *meta.Property, f *meta.Field) error {
	b.This = this
	b.property = p
	b.meta = f
	def, err := p.CloneValue()
	b.defaultValue = def
	return err
}

func (b *Base) AsBase() *Base { return b }

func (b *Base) Key() string { return b.property.Key }

func (b *Base) Property() *meta.Property { return b.property }

func (b *Base) Meta() *meta.Field { return b.meta }

// Type returns the type name of the field.
func (b *Base) Type() string { return b.meta.Type }

func (b *Base) Value() any {
	return errors.Log1(meta.Clone(b.value))
}

// Previous returns a copy of the value before the last change.
func (b *Base) Previous() any {
	return errors.Log1(meta.Clone(b.previous))
}

// Default returns a copy of the default value.
func (b *Base) Default() any {
	return errors.Log1(meta.Clone(b.defaultValue))
}

// Initialized returns whether a value has been set yet.
func (b *Base) Initialized() bool { return b.initialized }

func (b *Base) SetValue(value any, silent bool) {
	b.Set(value, silent)
}

// Set is the implementation of [Field.SetValue] for the base:
// it stores a copy of the value and notifies the listeners,
// and returns whether the value changed.
func (b *Base) Set(value any, silent bool) bool {
	if b.destroyed {
		return false
	}
	if b.initialized && reflect.DeepEqual(value, b.value) {
		return false
	}
	cp, err := meta.Clone(value)
	if errors.Log(err) != nil {
		return false
	}
	if b.initialized {
		b.previous = b.value
	} else {
		b.previous = errors.Log1(meta.Clone(cp))
	}
	b.value = cp
	b.initialized = true
	if !silent {
		b.notify()
	}
	return true
}

func (b *Base) notify() {
	b.listeners.Each(func(fun func(any)) {
		fun(b.Value())
	})
}

func (b *Base) Focused() bool { return b.focused }

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b *Base) OnChange(fun func(value any)) *events.Handle {
	return b.listeners.Add(fun)
}

func (b *Base) Revert() {
	b.This.SetValue(b.Default(), false)
}

// Destroyed returns whether the field has been destroyed.
func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.listeners.Clear()
}

// Description returns the description of the property,
// or a placeholder if it has none.
func (b *Base) Description() string {
	if b.property.Description == "" {
		return "(No description provided)"
	}
	return b.property.Description
}
