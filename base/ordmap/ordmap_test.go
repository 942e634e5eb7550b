// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("speed", 1)
	om.Add("angle", 2)
	om.Add("speed", 3)

	assert.Equal(t, 2, om.Len())
	assert.Equal(t, []string{"speed", "angle"}, om.Keys())
	assert.Equal(t, 3, om.ValueByKey("speed"))
	assert.True(t, om.Has("angle"))
	_, ok := om.ValueByKeyTry("missing")
	assert.False(t, ok)

	keys := []string{}
	for k, v := range om.All() {
		keys = append(keys, k)
		assert.Equal(t, om.ValueByKey(k), v)
	}
	assert.Equal(t, []string{"speed", "angle"}, keys)
}

func TestMakeAndClone(t *testing.T) {
	om := Make([]KeyValue[string, int]{{"a", 1}, {"b", 2}, {"a", 5}})
	assert.Equal(t, []string{"a", "b"}, om.Keys())
	assert.Equal(t, 5, om.ValueByKey("a"))

	cl := om.Clone()
	cl.Add("c", 3)
	assert.Equal(t, 2, om.Len())
	assert.Equal(t, 3, cl.Len())
}

func TestZeroValue(t *testing.T) {
	var om Map[string, bool]
	assert.Equal(t, 0, om.Len())
	om.Add("x", true)
	assert.True(t, om.ValueByKey("x"))

	var nilMap *Map[string, bool]
	assert.Equal(t, 0, nilMap.Len())
	assert.False(t, nilMap.Has("x"))
}
