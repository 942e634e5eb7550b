// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"reflect"
)

// The built-in type names of the annotation language.
const (
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeText    = "text"
	TypeString  = "string"
	TypeColor   = "color"
	TypeVector  = "vector"

	// TypeUnknown is the type of properties that have no matching field.
	TypeUnknown = "unknown"

	// TypeObject is the inferred type of composite values.
	TypeObject = "object"

	// Structural types, which are not fields.
	TypeButton = "button"
	TypeSpacer = "spacer"
	TypeGroup  = "group"
)

// TypeOf returns the annotation type name for the runtime type of the
// given value, used when a property has no explicit type: numbers give
// [TypeNumber], bools [TypeBoolean], strings [TypeString], functions
// [TypeButton], nil [TypeUnknown], and anything else [TypeObject].
func TypeOf(value any) string {
	if value == nil {
		return TypeUnknown
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		return TypeButton
	}
	return TypeObject
}

// IsStructural returns whether the given type name denotes a
// structural entry (button, spacer or group) rather than a field.
func IsStructural(typ string) bool {
	return typ == TypeButton || typ == TypeSpacer || typ == TypeGroup
}
