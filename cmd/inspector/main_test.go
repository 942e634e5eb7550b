// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testDocument = `speed:
  value: 1
  type: number range(0, 10)
  description: How fast it goes
gravity:
  value: 9.8
  type: number
  path: physics
tint:
  value: "#f00"
  type: color
`

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func writeDocument(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(testDocument), 0o644))
	return fn
}

func decodeEntries(t *testing.T, out string) []entryOutput {
	t.Helper()
	var entries []entryOutput
	require.NoError(t, yaml.NewDecoder(strings.NewReader(out)).Decode(&entries))
	return entries
}

func renderKeys(t *testing.T, out string) []string {
	t.Helper()
	entries := decodeEntries(t, out)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

func TestTokens(t *testing.T) {
	out := run(t, "tokens", "number slider(0, 10) integer")
	assert.Contains(t, out, "type: number")
	assert.Contains(t, out, "slider:")
	assert.Contains(t, out, "integer: []")
}

func TestEval(t *testing.T) {
	assert.Equal(t, "14\n", run(t, "eval", "2 * (3 + 4)"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.3\n", run(t, "format", "--precision", "3", "0.1+0.2"))
	assert.Equal(t, "0.333333333333\n1.5\n", run(t, "format", "1/3", "1.5"))
}

func TestRender(t *testing.T) {
	fn := writeDocument(t)
	out := run(t, "render", fn)
	assert.Equal(t, []string{"speed", "physics", "gravity", "physics-spacer", "tint"}, renderKeys(t, out))
	entries := decodeEntries(t, out)
	assert.Equal(t, "(1)", entries[1].Count)
	assert.Equal(t, "#ff0000", entries[4].Text)
	assert.Equal(t, "1", entries[0].Text)
	assert.Equal(t, "field", entries[0].Kind)
	assert.Equal(t, "spacer", entries[3].Kind)

	out = run(t, "render", fn, "--search", "grav")
	assert.Equal(t, []string{"physics", "gravity", "physics-spacer"}, renderKeys(t, out))

	out = run(t, "render", fn, "--search", "sped")
	assert.Contains(t, out, "No fields to display")
	assert.Contains(t, out, "- speed")
}

func TestRenderWatch(t *testing.T) {
	fn := writeDocument(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"render", fn, "--watch", "--refresh", "10ms"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	go func() {
		time.Sleep(100 * time.Millisecond)
		doc := strings.Replace(testDocument, "value: 1\n", "value: 5\n", 1)
		os.WriteFile(fn, []byte(doc), 0o644)
	}()
	require.NoError(t, cmd.ExecuteContext(ctx))

	var snapshots [][]entryOutput
	dec := yaml.NewDecoder(&out)
	for {
		var entries []entryOutput
		err := dec.Decode(&entries)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		snapshots = append(snapshots, entries)
	}
	require.GreaterOrEqual(t, len(snapshots), 2)
	assert.Equal(t, "1", snapshots[0][0].Text)
	assert.Equal(t, "5", snapshots[len(snapshots)-1][0].Text)
}

func TestRenderState(t *testing.T) {
	fn := writeDocument(t)
	state := filepath.Join(t.TempDir(), "state.toml")
	out := run(t, "render", fn, "--state", state, "--toggle", "physics")
	assert.Equal(t, []string{"speed", "physics", "tint"}, renderKeys(t, out))

	out = run(t, "render", fn, "--state", state)
	assert.Equal(t, []string{"speed", "physics", "tint"}, renderKeys(t, out))

	b, err := os.ReadFile(state)
	require.NoError(t, err)
	assert.Contains(t, string(b), "inspector-group-physics")
}

func TestReadDocument(t *testing.T) {
	om, err := readDocument(strings.NewReader(testDocument))
	require.NoError(t, err)
	assert.Equal(t, []string{"speed", "gravity", "tint"}, om.Keys())

	_, err = readDocument(strings.NewReader("- a\n- b\n"))
	assert.Error(t, err)
	_, err = readDocument(strings.NewReader("a: {}\na: {}\n"))
	assert.Error(t, err)

	om, err = readDocument(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, om.Len())
}
