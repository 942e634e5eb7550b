// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/errors"
	"github.com/jinzhu/copier"
)

// Cloneable is implemented by values that know how to copy themselves.
// Types with unexported state should implement it, since [Clone] only
// copies the exported fields of structs.
type Cloneable interface {
	CloneValue() any
}

// ErrNotCloneable is returned by [Clone] for values that cannot be copied.
var ErrNotCloneable = errors.New("meta: value is not cloneable")

// Clone returns a copy of the given value, such that changes to the copy
// are never visible through the original:
//   - nil, booleans, numbers, strings and functions are returned as is.
//   - [Cloneable] values are copied with their CloneValue method.
//   - maps, slices, arrays, structs and pointers to structs are deep-copied.
//
// Any other value (channels, unsafe pointers, pointers to non-struct values)
// gives an error wrapping [ErrNotCloneable].
func Clone(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if c, ok := v.(Cloneable); ok {
		return c.CloneValue(), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String, reflect.Func,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return v, nil
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return v, nil
		}
		return deepCopy(v, rv.Type())
	case reflect.Array, reflect.Struct:
		return deepCopy(v, rv.Type())
	case reflect.Pointer:
		if rv.IsNil() {
			return v, nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			cp, err := deepCopy(v, rv.Elem().Type())
			if err != nil {
				return nil, err
			}
			ptr := reflect.New(rv.Elem().Type())
			ptr.Elem().Set(reflect.ValueOf(cp))
			return ptr.Interface(), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrNotCloneable, v)
}

// deepCopy copies v into a new value of the given type.
func deepCopy(v any, typ reflect.Type) (any, error) {
	dst := reflect.New(typ)
	if typ.Kind() == reflect.Array {
		// arrays are values; copy them element by element so that
		// reference elements are not shared
		src := reflect.ValueOf(v)
		for i := range src.Len() {
			el, err := Clone(src.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			if el != nil {
				dst.Elem().Index(i).Set(reflect.ValueOf(el))
			}
		}
		return dst.Elem().Interface(), nil
	}
	err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrNotCloneable, v, err)
	}
	return dst.Elem().Interface(), nil
}
