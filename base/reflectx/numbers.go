// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"math"
	"reflect"
	"strings"
)

// ToFloat returns the given value as a float64, if it is a number
// (possibly behind pointers and interfaces).
func ToFloat(v reflect.Value) (float64, bool) {
	v = Underlying(v)
	switch {
	case !v.IsValid():
		return 0, false
	case v.CanFloat():
		return v.Float(), true
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	}
	return 0, false
}

// SetFloat sets the given settable numeric value to the given float,
// rounding it for integer kinds, and returns whether it could be set.
// Interface values are set to a float64.
func SetFloat(v reflect.Value, f float64) bool {
	if !v.CanSet() {
		return false
	}
	switch {
	case v.CanFloat():
		v.SetFloat(f)
	case v.CanInt():
		v.SetInt(int64(math.Round(f)))
	case v.CanUint():
		v.SetUint(uint64(max(math.Round(f), 0)))
	case v.Kind() == reflect.Interface && v.NumMethod() == 0:
		v.Set(reflect.ValueOf(f))
	default:
		return false
	}
	return true
}

// FieldByNameFold returns the exported field of the given struct value
// whose name matches the given name case-insensitively (eg: "x" gives
// the field X). It returns an invalid value if there is none.
func FieldByNameFold(v reflect.Value, name string) reflect.Value {
	v = NonPointerValue(v)
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	typ := v.Type()
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}
