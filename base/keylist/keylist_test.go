// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	var kl List[string, int]
	assert.NoError(t, kl.Add("ball", 1))
	assert.NoError(t, kl.Add("physics", 2))
	assert.Error(t, kl.Add("ball", 3))

	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, 1, kl.At("ball"))
	assert.Equal(t, 1, kl.IndexByKey("physics"))
	assert.Equal(t, -1, kl.IndexByKey("camera"))
	assert.Equal(t, []string{"ball", "physics"}, kl.Keys)
}

func TestRequire(t *testing.T) {
	var kl List[string, *int]
	made := 0
	mk := func() *int {
		made++
		v := made
		return &v
	}
	a := kl.Require("a", mk)
	b := kl.Require("b", mk)
	a2 := kl.Require("a", mk)
	assert.Same(t, a, a2)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, made)

	keys := []string{}
	for k := range kl.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
