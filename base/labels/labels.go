// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels provides user-friendly labels for keys and types.
package labels

import (
	"reflect"
	"strings"

	"cogentcore.org/inspector/base/reflectx"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label returns the user-friendly label of the given property key,
// in title case (eg: "meshScale" gives "Mesh Scale").
func Label(key string) string {
	return cases.Title(language.Und, cases.NoLower).String(strcase.ToDelimited(key, ' '))
}

// FriendlyTypeName returns a user-friendly version of the name of the given type.
// It transforms it into title case, excludes the package, and converts various
// builtin types into more friendly forms (eg: "int" to "Number").
func FriendlyTypeName(typ reflect.Type) string {
	if typ == nil {
		return "None"
	}
	nptyp := reflectx.NonPointerType(typ)
	nm := nptyp.Name()

	// if it is named, we use that
	if nm != "" {
		switch nm {
		case "string":
			return "Text"
		case "bool":
			return "Boolean"
		case "float32", "float64", "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
			return "Number"
		}
		return Label(nm)
	}

	// otherwise, we fall back on Kind
	switch nptyp.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		bnm := FriendlyTypeName(nptyp.Elem())
		if strings.HasSuffix(bnm, "s") {
			return "List of " + bnm
		}
		return bnm + "s"
	case reflect.Func:
		return "Function"
	case reflect.Chan:
		return "Channel"
	}
	if nptyp.String() == "interface {}" {
		return "Value"
	}
	return nptyp.String()
}
