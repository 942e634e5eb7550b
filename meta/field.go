// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"cogentcore.org/inspector/base/evalx"
	"cogentcore.org/inspector/base/ordmap"
)

// Field is the parsed configuration of one field, as given by the
// annotation string of a [Property]. It is an immutable view over [Tokens],
// made for each rendered field.
//
// Do not confuse it with [Property], which represents the metadata of a
// property (a property may have zero, one or more fields).
type Field struct {

	// Type is the type name of the field (eg: number, vector).
	Type string

	// TypeArgs are the arguments of the type token (eg: xyz in vector(xyz)).
	TypeArgs []string

	// Props are the modifiers, by name, with their raw arguments.
	Props *ordmap.Map[string, []string]
}

// NewField returns a new [Field] with the given type, type arguments
// and modifiers. A nil props map is treated as empty.
func NewField(typ string, typeArgs []string, props *ordmap.Map[string, []string]) *Field {
	if props == nil {
		props = ordmap.New[string, []string]()
	}
	if typeArgs == nil {
		typeArgs = []string{}
	}
	return &Field{Type: typ, TypeArgs: typeArgs, Props: props}
}

// Parse parses the given annotation string into a [Field].
// An annotation without any token denotes [TypeUnknown].
func Parse(source string) *Field {
	tk := ParseTokens(source)
	if tk.Type == "" {
		tk.Type = TypeUnknown
	}
	return NewField(tk.Type, tk.TypeArgs, tk.Modifiers)
}

// Infer returns the [Field] for the given annotation string, or,
// if it is empty, a field whose type is the [TypeOf] the given value
// and that has no modifiers.
func Infer(source string, value any) *Field {
	if source != "" {
		return Parse(source)
	}
	return NewField(TypeOf(value), nil, nil)
}

// Has returns whether the field has the given modifier.
func (f *Field) Has(name string) bool {
	return f.Props.Has(name)
}

// ArgsOf returns the arguments of the given modifier,
// which is empty if the modifier is absent.
func (f *Field) ArgsOf(name string) []string {
	if args, ok := f.Props.ValueByKeyTry(name); ok {
		return args
	}
	return []string{}
}

// Arg returns the argument at the given index of the given modifier,
// and whether it is present.
func (f *Field) Arg(name string, index int) (string, bool) {
	args := f.ArgsOf(name)
	if index < 0 || index >= len(args) {
		return "", false
	}
	return args[index], true
}

// NumericArgOf returns the numeric value of the first argument of the
// given modifier, or 0 if it is absent. See [Field.NumericArgAt].
func (f *Field) NumericArgOf(name string) float64 {
	return f.NumericArgAt(name, 0, 0)
}

// NumericArgAt returns the value of the argument at the given index of
// the given modifier, evaluated with [evalx.SafeEvaluate], or the given
// default value if the argument is absent.
func (f *Field) NumericArgAt(name string, index int, defaultValue float64) float64 {
	if arg, ok := f.Arg(name, index); ok {
		return evalx.SafeEvaluate(arg)
	}
	return defaultValue
}

// String returns the canonical annotation string of the field.
func (f *Field) String() string {
	return Tokens{Type: f.Type, TypeArgs: f.TypeArgs, Modifiers: f.Props}.String()
}
