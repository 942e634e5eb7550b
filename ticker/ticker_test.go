// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tk := New()
	var fast, slow []Tick
	tk.OnTick(0, func(t Tick) { fast = append(fast, t) })
	h := tk.OnTick(100*time.Millisecond, func(t Tick) { slow = append(slow, t) })
	assert.Equal(t, 2, tk.Len())

	for range 5 {
		tk.Advance(40 * time.Millisecond)
	}
	assert.Len(t, fast, 5)
	assert.Equal(t, []Tick{{Time: 120 * time.Millisecond, Delta: 120 * time.Millisecond}}, slow)
	assert.Equal(t, 200*time.Millisecond, tk.Elapsed())

	h.Destroy()
	h.Destroy()
	tk.Advance(time.Second)
	assert.Len(t, slow, 1)
	assert.Len(t, fast, 6)
	assert.Equal(t, 1, tk.Len())
}

func TestDestroyInCallback(t *testing.T) {
	tk := New()
	n := 0
	tk.OnTick(0, func(Tick) {
		n++
		tk.Destroy()
	})
	tk.OnTick(0, func(Tick) { n++ })
	tk.Advance(time.Millisecond)
	tk.Advance(time.Millisecond)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, tk.Len())

	h := tk.OnTick(0, func(Tick) { n++ })
	assert.False(t, h.Destroyed())
	tk.Advance(time.Millisecond)
	assert.Equal(t, 1, n)
}

func TestRun(t *testing.T) {
	tk := New()
	n := 0
	tk.OnTick(0, func(Tick) {
		n++
		if n == 3 {
			tk.Destroy()
		}
	})
	err := tk.Run(context.Background(), time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	tk = New()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = tk.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, tk.Elapsed(), time.Duration(0))
}
