// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"log/slog"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/labels"
	"cogentcore.org/inspector/base/plan"
	"cogentcore.org/inspector/events"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/fieldtree"
	"cogentcore.org/inspector/meta"
)

// EmptyMessage is the message of the entry shown when there is nothing else.
const EmptyMessage = "No fields to display"

// EntryKinds are the kinds of rendered entries.
type EntryKinds int32

const (
	// KindGroup is the header of a group, which toggles it.
	KindGroup EntryKinds = iota

	// KindButton is a button that calls a function.
	KindButton

	// KindSpacer is an empty space.
	KindSpacer

	// KindField is an editable field.
	KindField

	// KindEmpty is the placeholder shown when there is nothing to display.
	KindEmpty
)

var entryKindNames = [...]string{"group", "button", "spacer", "field", "empty"}

func (k EntryKinds) String() string {
	if k < 0 || int(k) >= len(entryKindNames) {
		return "unknown"
	}
	return entryKindNames[k]
}

// Entry is one rendered entry of the inspector.
type Entry struct {

	// ID is the index of the entry in [Inspector.Entries].
	ID int

	// Kind is the kind of the entry.
	Kind EntryKinds

	// Key is the key of the property of the entry.
	Key string

	// Label is the user-friendly label of the entry.
	Label string

	// Property is the property of the entry, which is nil for [KindEmpty].
	Property *meta.Property

	// Field is the live field of a [KindField] entry.
	Field fields.Field

	// Node is the group of a [KindGroup] entry.
	Node *fieldtree.Node

	// Count is the count label of a [KindGroup] entry (eg: "(2/5)").
	Count string

	// Expanded is whether the group of a [KindGroup] entry is expanded.
	Expanded bool

	// Size is the relative size of a [KindSpacer] entry.
	Size float64

	// Message is the message of a [KindEmpty] entry.
	Message string
}

// liveField is a field that lives across renders for as long
// as its property keeps being rendered.
type liveField struct {
	name   string
	field  fields.Field
	change *events.Handle
}

func (lf *liveField) PlanName() string { return lf.name }

func (lf *liveField) destroy() {
	lf.change.Destroy()
	lf.field.Destroy()
}

// planName is the name of the live field of the given property: fields
// are kept across renders as long as their key and type stay the same.
func planName(p *meta.Property) string {
	return p.Key + "\x00" + p.Type
}

// destroyFields destroys all of the live fields.
func (in *Inspector) destroyFields() {
	for _, lf := range in.live {
		lf.destroy()
	}
	in.live = nil
}

// Entries returns the entries of the last render.
func (in *Inspector) Entries() []Entry {
	return in.entries
}

// Field returns the live field for the given key, or nil
// if it is not currently rendered.
func (in *Inspector) Field(key string) fields.Field {
	for _, lf := range in.live {
		if lf.field.Key() == key {
			return lf.field
		}
	}
	return nil
}

// Search returns the current search, or "" when search is disabled.
func (in *Inspector) Search() string {
	if !in.SearchEnabled {
		return ""
	}
	return in.search
}

// Render computes the entries to display for the current tree and search,
// and updates the live fields accordingly: fields whose property is still
// rendered are kept, the others are destroyed, and new fields are made
// with the current value of their key (or their default value).
func (in *Inspector) Render() []Entry {
	if in.destroyed {
		return nil
	}
	search := in.Search()
	var values map[string]any
	if in.updatedValues != nil {
		values = in.updatedValues()
	}

	var entries []Entry
	var fieldProps []*meta.Property
	var fieldIDs []int
	for p := range in.tree.Fields(search) {
		e := Entry{ID: len(entries), Key: p.Key, Label: labels.Label(p.Key), Property: p}
		switch {
		case p.Type == meta.TypeGroup:
			path, _ := p.Value.(string)
			e.Kind = KindGroup
			e.Node = in.tree.NodeByPath(path)
			if e.Node != nil {
				e.Count = e.Node.CountLabel(search)
				e.Expanded = e.Node.Expanded()
			}
		case p.Type == meta.TypeSpacer:
			e.Kind = KindSpacer
			e.Size = fieldtree.SpacerSize
			if size, ok := p.Value.(float64); ok {
				e.Size = size
			}
		case isButton(p):
			e.Kind = KindButton
		default:
			e.Kind = KindField
			fieldProps = append(fieldProps, p)
			fieldIDs = append(fieldIDs, e.ID)
		}
		entries = append(entries, e)
	}

	in.live, _ = plan.Update(in.live, len(fieldProps),
		func(i int) string { return planName(fieldProps[i]) },
		func(name string, i int) (*liveField, bool) {
			return in.newLiveField(name, fieldProps[i], values), true
		},
		func(lf *liveField) { lf.destroy() })
	for i, lf := range in.live {
		entries[fieldIDs[i]].Field = lf.field
	}

	if len(entries) == 0 {
		entries = append(entries, Entry{Kind: KindEmpty, Message: EmptyMessage})
	}
	in.entries = entries
	slog.Debug("inspector: rendered", "entries", len(entries), "fields", len(in.live), "search", search)
	return entries
}

// isButton returns whether the given property is rendered as a button.
func isButton(p *meta.Property) bool {
	return meta.Infer(p.Type, p.Value).Type == meta.TypeButton
}

// newLiveField makes the live field of the given property.
func (in *Inspector) newLiveField(name string, p *meta.Property, values map[string]any) *liveField {
	f, err := fields.New(p, meta.Infer(p.Type, p.Value))
	errors.Log(err)
	if v, ok := values[p.Key]; ok {
		f.SetValue(v, true)
	} else {
		f.SetValue(errors.Log1(p.CloneValue()), true)
	}
	lf := &liveField{name: name, field: f}
	key := p.Key
	lf.change = f.OnChange(func(value any) {
		in.emit(key, value)
	})
	return lf
}

// Press calls the function of the button with the given key,
// and returns whether there is such a button.
func (in *Inspector) Press(key string) bool {
	for _, e := range in.entries {
		if e.Kind != KindButton || e.Key != key {
			continue
		}
		fun, ok := e.Property.Value.(func())
		if !ok {
			slog.Error("inspector: button value is not a func()", "key", key)
			return false
		}
		fun()
		return true
	}
	return false
}

// ToggleGroup toggles whether the group with the given path is expanded,
// saves it, and renders again.
func (in *Inspector) ToggleGroup(path string) error {
	n := in.tree.NodeByPath(path)
	if n == nil || n.IsRoot() {
		return errors.New("inspector: no group at path " + path)
	}
	err := n.Toggle()
	in.Render()
	return err
}
