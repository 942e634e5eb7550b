// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTokens(t *testing.T) {
	tk := ParseTokens("number slider(1, 100) integer clamped middle(10)")
	assert.Equal(t, "number", tk.Type)
	assert.Equal(t, []string{}, tk.TypeArgs)
	assert.Equal(t, []string{"slider", "integer", "clamped", "middle"}, tk.Modifiers.Keys())
	assert.Equal(t, []string{"1", "100"}, tk.Modifiers.ValueByKey("slider"))
	assert.Equal(t, []string{}, tk.Modifiers.ValueByKey("integer"))
	assert.Equal(t, []string{"10"}, tk.Modifiers.ValueByKey("middle"))
}

func TestParseTokensTypeArgs(t *testing.T) {
	tk := ParseTokens("vector(xyz) step(0.1 )")
	assert.Equal(t, "vector", tk.Type)
	assert.Equal(t, []string{"xyz"}, tk.TypeArgs)
	assert.Equal(t, []string{"0.1"}, tk.Modifiers.ValueByKey("step"))

	tk = ParseTokens("vector(x, y) remap(to-degrees)")
	assert.Equal(t, []string{"x", "y"}, tk.TypeArgs)
	assert.Equal(t, []string{"to-degrees"}, tk.Modifiers.ValueByKey("remap"))
}

func TestParseTokensEdges(t *testing.T) {
	tk := ParseTokens("")
	assert.Equal(t, "", tk.Type)
	assert.Equal(t, 0, tk.Modifiers.Len())

	tk = ParseTokens("  number  !! 42 clamped  ")
	assert.Equal(t, "number", tk.Type)
	assert.Equal(t, []string{"clamped"}, tk.Modifiers.Keys())

	tk = ParseTokens("number step() step(2)")
	assert.Equal(t, []string{"step"}, tk.Modifiers.Keys())
	assert.Equal(t, []string{"2"}, tk.Modifiers.ValueByKey("step"))

	// arguments are not parsed recursively
	tk = ParseTokens("number min(max(1, 2))")
	assert.Equal(t, []string{"max(1", "2"}, tk.Modifiers.ValueByKey("min"))
}

func TestTokensString(t *testing.T) {
	assert.Equal(t, "number slider(0, 100, 1) integer", ParseTokens("number slider(0,100,1)   integer").String())
	assert.Equal(t, "vector(xyz) precision(2)", ParseTokens("vector(xyz) precision(2)").String())
}
