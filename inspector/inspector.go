// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspector provides the runtime property inspector: it turns a set
// of annotated properties into an editable, searchable tree of fields, keeps
// the fields in sync with an external data source at a fixed refresh rate,
// and forwards the edits of the user to change listeners.
package inspector

import (
	"log/slog"
	"time"

	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/fieldtree"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/settings"
	"cogentcore.org/inspector/ticker"
)

// DefaultRefreshInterval is the default interval of the periodic update.
const DefaultRefreshInterval = 100 * time.Millisecond

// Header is the header of an inspector.
type Header struct {

	// Title is the title of the inspector.
	Title string

	// Description is shown below the title.
	Description string

	// Closable is whether a close button is shown,
	// which calls [Inspector.RequestClose].
	Closable bool
}

// Inspector is a property inspector. Make one with [New], configure it with
// its setters, and register properties with [Inspector.RegisterFields].
// An Inspector is not safe for concurrent use: all of its methods, and the
// ticks of its [ticker.Source], must run on the same goroutine.
type Inspector struct {

	// Header is the header of the inspector.
	Header Header

	// SearchEnabled is whether the search is enabled.
	// When it is off, the search is ignored.
	SearchEnabled bool

	// RefreshInterval is the interval of the periodic update.
	RefreshInterval time.Duration

	// Store is the store of the expanded state of groups.
	Store settings.Store

	// Ticker is the source of the periodic update, if any.
	Ticker ticker.Source

	properties    []*meta.Property
	updatedValues func() map[string]any
	tree          *fieldtree.Tree
	search        string

	// live are the live fields, in render order.
	live    []*liveField
	entries []Entry

	onChange    map[string]*events.Listeners[func(value any)]
	onAnyChange events.Listeners[func(key string, value any)]
	onClose     events.Listeners[func()]
	tick        *events.Handle
	destroyed   bool
}

// New returns a new [Inspector] with search enabled, the default refresh
// interval, and a [settings.MemoryStore].
func New() *Inspector {
	in := &Inspector{
		SearchEnabled:   true,
		RefreshInterval: DefaultRefreshInterval,
		Store:           settings.NewMemoryStore(nil),
		onChange:        map[string]*events.Listeners[func(value any)]{},
	}
	in.tree = fieldtree.New(nil, in.Store)
	in.Render()
	return in
}

// SetSearchEnabled sets [Inspector.SearchEnabled].
func (in *Inspector) SetSearchEnabled(v bool) *Inspector {
	in.SearchEnabled = v
	in.Render()
	return in
}

// SetStore sets [Inspector.Store]. It applies from the next registration.
func (in *Inspector) SetStore(v settings.Store) *Inspector {
	in.Store = v
	return in
}

// SetTicker sets [Inspector.Ticker], moving the periodic update to it.
func (in *Inspector) SetTicker(v ticker.Source) *Inspector {
	in.Ticker = v
	in.subscribe()
	return in
}

// SetHeader sets [Inspector.Header].
func (in *Inspector) SetHeader(v Header) *Inspector {
	in.Header = v
	return in
}

// SetRefreshInterval sets [Inspector.RefreshInterval].
func (in *Inspector) SetRefreshInterval(v time.Duration) *Inspector {
	in.RefreshInterval = v
	in.subscribe()
	return in
}

// subscribe (re)subscribes the periodic update to the ticker.
func (in *Inspector) subscribe() {
	in.tick.Destroy()
	in.tick = nil
	if in.destroyed || in.Ticker == nil {
		return
	}
	in.tick = in.Ticker.OnTick(in.RefreshInterval, func(ticker.Tick) {
		in.Update()
	})
}

// Update pulls the latest values from the updated values function of the
// registration and silently sets them on every live field that is not
// focused, so that external changes show up without fighting the user.
// It is called periodically by the ticker.
func (in *Inspector) Update() {
	if in.destroyed || in.updatedValues == nil {
		return
	}
	values := in.updatedValues()
	for _, lf := range in.live {
		if lf.field.Focused() {
			continue
		}
		if v, ok := values[lf.field.Key()]; ok {
			lf.field.SetValue(v, true)
		}
	}
}

// OnChange adds a listener called with the new value
// whenever the user changes the value of the given key.
func (in *Inspector) OnChange(key string, fun func(value any)) *events.Handle {
	if in.destroyed {
		return events.NewHandle(nil)
	}
	ls := in.onChange[key]
	if ls == nil {
		ls = &events.Listeners[func(value any)]{}
		in.onChange[key] = ls
	}
	return ls.Add(fun)
}

// OnAnyChange adds a listener called with the key and the new value
// whenever the user changes any value.
func (in *Inspector) OnAnyChange(fun func(key string, value any)) *events.Handle {
	if in.destroyed {
		return events.NewHandle(nil)
	}
	return in.onAnyChange.Add(fun)
}

// OnCloseRequest adds a listener called when the user asks to close
// the inspector with the close button of the header.
func (in *Inspector) OnCloseRequest(fun func()) *events.Handle {
	if in.destroyed {
		return events.NewHandle(nil)
	}
	return in.onClose.Add(fun)
}

// RequestClose notifies the close request listeners.
func (in *Inspector) RequestClose() {
	if in.destroyed {
		return
	}
	in.onClose.Each(func(fun func()) { fun() })
}

// emit notifies the change listeners of a change of the given key.
func (in *Inspector) emit(key string, value any) {
	if in.destroyed {
		return
	}
	slog.Debug("inspector: change", "key", key, "value", value)
	if ls := in.onChange[key]; ls != nil {
		ls.Each(func(fun func(any)) { fun(value) })
	}
	in.onAnyChange.Each(func(fun func(string, any)) { fun(key, value) })
}

// Destroyed returns whether [Inspector.Destroy] has been called.
func (in *Inspector) Destroyed() bool {
	return in.destroyed
}

// Destroy releases the listeners, then the periodic update, then the
// fields and entries. No callback is called after it. It is safe to call
// more than once.
func (in *Inspector) Destroy() {
	if in.destroyed {
		return
	}
	in.destroyed = true
	for _, ls := range in.onChange {
		ls.Clear()
	}
	clear(in.onChange)
	in.onAnyChange.Clear()
	in.onClose.Clear()
	in.tick.Destroy()
	in.tick = nil
	in.destroyFields()
	in.entries = nil
	in.properties = nil
	in.updatedValues = nil
}
