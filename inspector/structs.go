// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/meta"
	"github.com/iancoleman/strcase"
)

// structField is an exported field of a struct reached by [walkStruct].
type structField struct {
	field reflect.StructField
	value reflect.Value
	key   string
	path  string
}

// walkStruct calls the given function for each inspectable field of the
// given struct value. Fields tagged `inspector:"-"` are skipped. Untagged
// struct fields are walked recursively, in a group named by their `path`
// tag or their name, with keys prefixed by their name.
func walkStruct(v reflect.Value, keyPrefix, path string, fun func(sf structField)) {
	v = reflectx.NonPointerValue(v)
	if v.Kind() != reflect.Struct {
		return
	}
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, tagged := f.Tag.Lookup("inspector")
		if tag == "-" {
			continue
		}
		fv := v.Field(i)
		fpath := path
		if p := f.Tag.Get("path"); p != "" {
			fpath = joinPath(path, p)
		}
		if !tagged && reflectx.NonPointerType(f.Type).Kind() == reflect.Struct {
			prefix := keyPrefix + f.Name
			if f.Anonymous {
				prefix = keyPrefix
			} else if f.Tag.Get("path") == "" {
				fpath = joinPath(path, f.Name)
			}
			walkStruct(fv, prefix, fpath, fun)
			continue
		}
		fun(structField{field: f, value: fv, key: strcase.ToLowerCamel(keyPrefix + f.Name), path: fpath})
	}
}

func joinPath(a, b string) string {
	if a == "" {
		return b
	}
	return a + "/" + b
}

// InferFields returns the properties of the exported fields of the given
// struct, or pointer to a struct. Keys are the lower camel case field
// names (eg: MeshScale gives meshScale). Each field can be configured
// with struct tags:
//   - inspector: the annotation of the field, or "-" to skip it.
//   - desc: the description of the field.
//   - path: the group path of the field.
//
// A func() field gives a button. An untagged struct field is inferred
// recursively, in its own group.
func InferFields(v any) ([]*meta.Property, error) {
	rv := reflectx.NonPointerValue(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("inspector.InferFields: %T is not a struct", v)
	}
	var props []*meta.Property
	walkStruct(rv, "", "", func(sf structField) {
		if fun, ok := sf.value.Interface().(func()); ok {
			p := meta.Button(sf.key, fun)
			p.Description = sf.field.Tag.Get("desc")
			p.Path = sf.path
			props = append(props, p)
			return
		}
		props = append(props, meta.New(sf.key, meta.Raw{
			Value:       sf.value.Interface(),
			Type:        sf.field.Tag.Get("inspector"),
			Description: sf.field.Tag.Get("desc"),
			Path:        sf.path,
		}))
	})
	return props, nil
}

// ValuesOf returns the current values of the fields of the given struct
// by the keys of [InferFields], skipping buttons. It is typically used
// in the updated values function of [Inspector.RegisterFields].
func ValuesOf(v any) map[string]any {
	values := map[string]any{}
	walkStruct(reflect.ValueOf(v), "", "", func(sf structField) {
		if sf.field.Type.Kind() == reflect.Func {
			return
		}
		values[sf.key] = sf.value.Interface()
	})
	return values
}

// SetValueOf sets the field of the given pointer to a struct with the given
// key of [InferFields] to the given value, converting numbers as needed.
// It is typically used in an [Inspector.OnAnyChange] listener.
func SetValueOf(v any, key string, value any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("inspector.SetValueOf: %T is not a pointer", v)
	}
	var target reflect.Value
	walkStruct(rv, "", "", func(sf structField) {
		if sf.key == key {
			target = sf.value
		}
	})
	if !target.IsValid() {
		return fmt.Errorf("inspector.SetValueOf: no field with key %q in %T", key, v)
	}
	if !target.CanSet() {
		return fmt.Errorf("inspector.SetValueOf: field %q of %T cannot be set", key, v)
	}
	val := reflect.ValueOf(value)
	switch {
	case !val.IsValid():
		target.SetZero()
	case val.Type().AssignableTo(target.Type()):
		target.Set(val)
	case val.CanConvert(target.Type()):
		if f, ok := reflectx.ToFloat(val); ok && reflectx.SetFloat(target, f) {
			return nil
		}
		target.Set(val.Convert(target.Type()))
	default:
		return fmt.Errorf("inspector.SetValueOf: cannot set field %q of type %v to %T", key, target.Type(), value)
	}
	return nil
}
