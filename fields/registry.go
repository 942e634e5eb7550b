// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"maps"
	"slices"
	"sync"

	"cogentcore.org/inspector/meta"
)

// Constructor makes a new [Field] for the given property and configuration.
// The returned error only reports problems with the default value; the
// field is usable anyway.
type Constructor func(p *meta.Property, f *meta.Field) (Field, error)

var (
	typesMu sync.RWMutex

	// Types is the registry of field constructors by type name.
	// Use [Register] to add to it.
	Types = map[string]Constructor{}
)

// Register registers the given constructor for the given type name,
// replacing any previous one.
func Register(typ string, con Constructor) {
	typesMu.Lock()
	defer typesMu.Unlock()
	Types[typ] = con
}

// Registered returns the sorted names of the registered types.
func Registered() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return slices.Sorted(maps.Keys(Types))
}

// New returns a new [Field] for the given property and configuration.
// A type without a registered constructor gives an [Unknown] field.
func New(p *meta.Property, f *meta.Field) (Field, error) {
	typesMu.RLock()
	con, ok := Types[f.Type]
	typesMu.RUnlock()
	if !ok {
		return NewUnknown(p, f)
	}
	return con(p, f)
}

func init() {
	Register(meta.TypeNumber, NewNumber)
	Register(meta.TypeBoolean, NewBoolean)
	Register(meta.TypeText, NewText)
	Register(meta.TypeString, NewText)
	Register(meta.TypeColor, NewColor)
	Register(meta.TypeVector, NewVector)
	Register(meta.TypeUnknown, NewUnknown)
}
