// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides ordered lists of listener functions
// with disposable subscription handles.
package events

// Listeners is an ordered list of listener functions of type F.
// Listeners are closure methods with all context captured,
// registered on specific objects. The zero value is ready to use.
type Listeners[F any] struct {
	items []*listener[F]
}

type listener[F any] struct {
	fun    F
	handle *Handle
}

// Handle is a disposable subscription returned when adding
// a listener. Calling [Handle.Destroy] removes the listener.
type Handle struct {
	destroy func()
	done    bool
}

// NewHandle returns a new [Handle] that calls the given function
// the first time it is destroyed.
func NewHandle(destroy func()) *Handle {
	return &Handle{destroy: destroy}
}

// Destroy removes the subscription. It is safe to call
// more than once, and on a nil handle.
func (h *Handle) Destroy() {
	if h == nil || h.done {
		return
	}
	h.done = true
	if h.destroy != nil {
		h.destroy()
	}
}

// Destroyed returns whether [Handle.Destroy] has been called.
func (h *Handle) Destroyed() bool {
	return h == nil || h.done
}

// Add adds the given function to the end of the list
// and returns a handle that removes it.
func (ls *Listeners[F]) Add(fun F) *Handle {
	l := &listener[F]{fun: fun}
	l.handle = NewHandle(func() { ls.remove(l) })
	ls.items = append(ls.items, l)
	return l.handle
}

func (ls *Listeners[F]) remove(l *listener[F]) {
	for i, it := range ls.items {
		if it == l {
			ls.items = append(ls.items[:i:i], ls.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of listeners.
func (ls *Listeners[F]) Len() int {
	return len(ls.items)
}

// Each calls the given function for each listener, in the order
// they were added. The list is copied first, so listeners can be
// added or removed while calling. Listeners removed during the
// iteration are not called.
func (ls *Listeners[F]) Each(call func(fun F)) {
	if len(ls.items) == 0 {
		return
	}
	items := append([]*listener[F](nil), ls.items...)
	for _, l := range items {
		if l.handle.done {
			continue
		}
		call(l.fun)
	}
}

// Clear removes all listeners, marking their handles as destroyed.
func (ls *Listeners[F]) Clear() {
	for _, l := range ls.items {
		l.handle.done = true
	}
	ls.items = nil
}
