// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/keylist"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/numeric"
)

// Widget names of the widget modifier of vectors.
const (
	WidgetTranslate3D = "translate-3d"
)

// TranslateScale is the distance moved per pixel by a translate drag.
const TranslateScale = 0.005

// Vector is a field for a value with several numeric components,
// each edited with its own [numeric.Input] that shares the configuration
// of the field. The value is a map from component names to numbers,
// or a struct (or pointer to a struct) with matching exported fields
// (eg: component x is field X).
//
// The components are given by the type arguments: vector(xyz) gives
// x, y and z, as does vector(x, y, z).
type Vector struct {
	Base

	// Components are the names of the components.
	Components []string

	// Inputs are the inputs of the components, by name.
	Inputs keylist.List[string, *numeric.Input]

	// Widget is the extra widget of the field, if any (eg: translate-3d).
	Widget string
}

// VectorComponents returns the component names for the given type arguments.
func VectorComponents(typeArgs []string) []string {
	if len(typeArgs) > 0 && strings.HasPrefix(typeArgs[0], "xy") {
		return strings.Split(typeArgs[0], "")
	}
	return typeArgs
}

// NewVector returns a new [Vector] field.
func NewVector(p *meta.Property, f *meta.Field) (Field, error) {
	vf := &Vector{}
	err := vf.Init(vf, p, f)
	vf.Components = VectorComponents(f.TypeArgs)
	vf.Widget, _ = f.Arg("widget", 0)
	for _, c := range vf.Components {
		in := numeric.NewInput(f)
		if errors.Log(vf.Inputs.Add(c, in)) != nil {
			continue
		}
		in.OnChange(func(value float64) {
			vf.setComponent(c, value)
		})
	}
	return vf, err
}

// working returns a copy of the current value,
// or of the default value if there is none yet.
func (vf *Vector) working() any {
	if vf.initialized {
		return vf.Value()
	}
	return vf.Default()
}

// setComponent sets the given component of a copy of the value
// and sets the whole value, non-silently.
func (vf *Vector) setComponent(name string, x float64) {
	v, err := SetComponent(vf.working(), name, x)
	if errors.Log(err) != nil {
		return
	}
	vf.Set(v, false)
}

// SetValue sets the value and updates the component inputs. Components
// that are changed by the input constraints (eg: clamped) are stored
// with their constrained values.
func (vf *Vector) SetValue(value any, silent bool) {
	for name, in := range vf.Inputs.All() {
		x, ok := Component(value, name)
		if !ok {
			continue
		}
		in.SetValue(x, true)
		if y := in.Value(); !numeric.Equal(x, y) {
			if v, err := SetComponent(value, name, y); err == nil {
				value = v
			}
		}
	}
	vf.Set(value, silent)
}

// Component returns the value of the given component.
func (vf *Vector) Component(name string) (float64, bool) {
	return Component(vf.value, name)
}

// Translate adds the given deltas to the x, y and z components, for the
// translate-3d widget. It returns false if the field has no such widget.
func (vf *Vector) Translate(dx, dy, dz float64) bool {
	if vf.Widget != WidgetTranslate3D {
		return false
	}
	v := vf.working()
	for _, d := range []struct {
		name  string
		delta float64
	}{{"x", dx}, {"y", dy}, {"z", dz}} {
		if d.delta == 0 {
			continue
		}
		x, ok := Component(v, d.name)
		if !ok {
			continue
		}
		nv, err := SetComponent(v, d.name, x+d.delta)
		if errors.Log(err) != nil {
			return false
		}
		v = nv
	}
	vf.SetValue(v, false)
	return true
}

// TranslateDrag translates for a pointer drag of the given number of
// pixels on the translate-3d widget: a pan moves x and y, a dolly moves z.
// The Shift and Alt modifiers scale the move like for number inputs.
func (vf *Vector) TranslateDrag(deltaX, deltaY float64, dolly bool, mods numeric.Modifiers) bool {
	ms := vf.meta.NumericArgAt("modifierScale", 0, 10)
	scale := TranslateScale
	switch {
	case mods.Has(numeric.Shift):
		scale *= ms
	case mods.Has(numeric.Alt):
		scale /= ms
	}
	if dolly {
		return vf.Translate(0, 0, scale*-deltaY)
	}
	return vf.Translate(scale*deltaX, scale*-deltaY, 0)
}

// Focused returns whether the field or any of its component inputs is focused.
func (vf *Vector) Focused() bool {
	if vf.Base.Focused() {
		return true
	}
	for _, in := range vf.Inputs.Values {
		if in.Focused() {
			return true
		}
	}
	return false
}

func (vf *Vector) Destroy() {
	for _, in := range vf.Inputs.Values {
		in.Destroy()
	}
	vf.Base.Destroy()
}

// Component returns the value of the given component of the given
// vector value, which is a map with string keys or a struct.
func Component(v any, name string) (float64, bool) {
	rv := reflectx.Underlying(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return 0, false
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !e.IsValid() {
			return 0, false
		}
		return reflectx.ToFloat(e)
	case reflect.Struct:
		f := reflectx.FieldByNameFold(rv, name)
		if !f.IsValid() {
			return 0, false
		}
		return reflectx.ToFloat(f)
	}
	return 0, false
}

// SetComponent returns a copy of the given vector value with the
// given component set to the given number.
func SetComponent(v any, name string, x float64) (any, error) {
	cp, err := meta.Clone(v)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(cp)
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		if rv.IsNil() {
			return nil, fmt.Errorf("fields: cannot set component %q of a nil map", name)
		}
		ev := reflect.New(rv.Type().Elem()).Elem()
		if !reflectx.SetFloat(ev, x) {
			return nil, fmt.Errorf("fields: cannot set component %q of %T", name, v)
		}
		rv.SetMapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()), ev)
		return cp, nil
	case rv.Kind() == reflect.Struct:
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if !reflectx.SetFloat(reflectx.FieldByNameFold(pv, name), x) {
			return nil, fmt.Errorf("fields: cannot set component %q of %T", name, v)
		}
		return pv.Elem().Interface(), nil
	case rv.Kind() == reflect.Pointer && !rv.IsNil():
		if !reflectx.SetFloat(reflectx.FieldByNameFold(rv, name), x) {
			return nil, fmt.Errorf("fields: cannot set component %q of %T", name, v)
		}
		return cp, nil
	}
	return nil, fmt.Errorf("fields: %T is not a vector value", v)
}
