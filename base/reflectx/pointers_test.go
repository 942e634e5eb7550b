// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))
	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))
	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	assert.Equal(t, 1, NonPointerValue(reflect.ValueOf(v)).Interface())
	p := &v
	assert.Equal(t, 1, NonPointerValue(reflect.ValueOf(p)).Interface())
	pp := &p
	assert.Equal(t, 1, NonPointerValue(reflect.ValueOf(pp)).Interface())

	var np *int
	assert.Equal(t, reflect.Pointer, NonPointerValue(reflect.ValueOf(np)).Kind())
}

func TestUnderlying(t *testing.T) {
	v := 2.5
	var a any = &v
	assert.Equal(t, 2.5, Underlying(reflect.ValueOf(&a)).Interface())
	assert.False(t, Underlying(reflect.Value{}).IsValid())
}

type vec struct {
	X, Y float64
	Z    int
	w    float64
}

func TestNumbers(t *testing.T) {
	f, ok := ToFloat(reflect.ValueOf(uint8(3)))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
	_, ok = ToFloat(reflect.ValueOf("3"))
	assert.False(t, ok)

	v := vec{X: 1}
	rv := reflect.ValueOf(&v)
	x := FieldByNameFold(rv, "x")
	assert.True(t, x.IsValid())
	assert.True(t, SetFloat(x, 4.5))
	assert.True(t, SetFloat(FieldByNameFold(rv, "z"), 2.6))
	assert.Equal(t, vec{X: 4.5, Z: 3}, v)
	assert.False(t, FieldByNameFold(rv, "w").IsValid())
	assert.False(t, FieldByNameFold(reflect.ValueOf(3), "x").IsValid())
	assert.False(t, SetFloat(reflect.ValueOf(1.0), 2))

	var a any
	av := reflect.ValueOf(&a).Elem()
	assert.True(t, SetFloat(av, 7))
	assert.Equal(t, 7.0, a)
}
