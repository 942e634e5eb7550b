// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticker provides a host-driven source of periodic callbacks.
package ticker

import (
	"context"
	"time"

	"cogentcore.org/inspector/events"
)

// Tick is the data passed to periodic callbacks.
type Tick struct {

	// Time is the total time elapsed on the ticker.
	Time time.Duration

	// Delta is the time elapsed since the last call
	// of the callback (or since it was added).
	Delta time.Duration
}

// Source is a source of periodic callbacks.
type Source interface {

	// OnTick adds a callback called at most once per tick of the source,
	// whenever at least the given interval has elapsed since its last call.
	// Destroying the returned handle removes the callback.
	OnTick(interval time.Duration, fun func(t Tick)) *events.Handle
}

// Ticker is a [Source] driven by its host, which calls [Ticker.Advance]
// or [Ticker.Run]. Callbacks only ever run inside Advance, on the
// goroutine of the host; a Ticker is not safe for concurrent use.
type Ticker struct {
	elapsed   time.Duration
	subs      events.Listeners[*subscription]
	destroyed bool
}

type subscription struct {
	interval time.Duration
	acc      time.Duration
	fun      func(t Tick)
}

// New returns a new [Ticker].
func New() *Ticker {
	return &Ticker{}
}

func (tk *Ticker) OnTick(interval time.Duration, fun func(t Tick)) *events.Handle {
	if tk.destroyed {
		return events.NewHandle(nil)
	}
	return tk.subs.Add(&subscription{interval: interval, fun: fun})
}

// Len returns the number of active callbacks.
func (tk *Ticker) Len() int {
	return tk.subs.Len()
}

// Elapsed returns the total time elapsed on the ticker.
func (tk *Ticker) Elapsed() time.Duration {
	return tk.elapsed
}

// Advance advances the ticker by the given duration, calling every
// callback whose interval has elapsed since its last call.
func (tk *Ticker) Advance(delta time.Duration) {
	if tk.destroyed {
		return
	}
	tk.elapsed += delta
	tk.subs.Each(func(s *subscription) {
		if tk.destroyed {
			return
		}
		s.acc += delta
		if s.acc < s.interval {
			return
		}
		t := Tick{Time: tk.elapsed, Delta: s.acc}
		s.acc = 0
		s.fun(t)
	})
}

// Run advances the ticker with the real time elapsed, every given period,
// until the context is done or the ticker is destroyed. It runs on the
// calling goroutine and returns the context error, if any.
func (tk *Ticker) Run(ctx context.Context, period time.Duration) error {
	t := time.NewTicker(period)
	defer t.Stop()
	last := time.Now()
	for !tk.destroyed {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			tk.Advance(now.Sub(last))
			last = now
		}
	}
	return nil
}

// Destroy removes every callback and stops the ticker.
// It is safe to call more than once.
func (tk *Ticker) Destroy() {
	if tk.destroyed {
		return
	}
	tk.destroyed = true
	tk.subs.Clear()
}
