// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/base/ordmap"
	"cogentcore.org/inspector/base/reflectx"
	"cogentcore.org/inspector/fieldtree"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/settings"
)

// UnknownDescription is the description of the properties
// made from values of an unsupported shape.
const UnknownDescription = "Unknown type"

// RegisterFields replaces the registered properties with the given entries,
// destroying every live field, and renders again. The entries can be:
//   - a *[ordmap.Map][string, any], in its order.
//   - a map[string]any, in sorted key order.
//   - a []*[meta.Property] or []meta.Property.
//   - a struct or a pointer to a struct, whose properties are
//     given by [InferFields].
//
// The values of a map are a [meta.Raw], a [meta.Tuple], a func() for
// a button, or a [meta.Property] or pointer to one. Any other value
// gives a property of type [meta.TypeUnknown].
//
// Properties without an order get their position in the entries.
// Properties with a duplicate key or a default value that cannot be
// copied are skipped, and reported in the returned error, while the
// other properties are registered anyway.
//
// The updatedValues function, which can be nil, returns the current
// values of the data source by key. It gives the initial values of the
// fields, and it is polled by the periodic update.
func (in *Inspector) RegisterFields(entries any, updatedValues func() map[string]any) error {
	if in.destroyed {
		return errors.New("inspector: RegisterFields called after Destroy")
	}
	props, err := normalize(entries)
	if err != nil {
		return err
	}
	var errs []error
	seen := map[string]bool{}
	valid := make([]*meta.Property, 0, len(props))
	for i, p := range props {
		if seen[p.Key] {
			errs = append(errs, fmt.Errorf("inspector: duplicate key %q", p.Key))
			continue
		}
		if _, err := p.CloneValue(); err != nil {
			errs = append(errs, fmt.Errorf("inspector: property %q: %w", p.Key, err))
			continue
		}
		seen[p.Key] = true
		if p.Order == nil {
			p.Order = meta.Order(i)
		}
		valid = append(valid, p)
	}

	in.destroyFields()
	in.properties = valid
	in.updatedValues = updatedValues
	if in.Store == nil {
		in.Store = settings.NewMemoryStore(nil)
	}
	in.tree = fieldtree.New(valid, in.Store)
	slog.Debug("inspector: registered fields", "properties", len(valid), "skipped", len(errs))
	in.Render()
	if in.tick == nil {
		in.subscribe()
	}
	return errors.Join(errs...)
}

// Properties returns the registered properties.
func (in *Inspector) Properties() []*meta.Property {
	return in.properties
}

// normalize returns copies of the properties of the given entries,
// which are then free to be modified.
func normalize(entries any) ([]*meta.Property, error) {
	switch es := entries.(type) {
	case nil:
		return nil, nil
	case *ordmap.Map[string, any]:
		props := make([]*meta.Property, 0, es.Len())
		for k, v := range es.All() {
			props = append(props, fromValue(k, v))
		}
		return props, nil
	case map[string]any:
		props := make([]*meta.Property, 0, len(es))
		for _, k := range slices.Sorted(maps.Keys(es)) {
			props = append(props, fromValue(k, es[k]))
		}
		return props, nil
	case []*meta.Property:
		props := make([]*meta.Property, 0, len(es))
		for _, p := range es {
			if p == nil {
				continue
			}
			cp := *p
			props = append(props, &cp)
		}
		return props, nil
	case []meta.Property:
		props := make([]*meta.Property, len(es))
		for i := range es {
			cp := es[i]
			props[i] = &cp
		}
		return props, nil
	}
	if reflectx.NonPointerValue(reflect.ValueOf(entries)).Kind() == reflect.Struct {
		return InferFields(entries)
	}
	return nil, fmt.Errorf("inspector: unsupported entries type %T", entries)
}

// fromValue returns the property for the given map key and value.
func fromValue(key string, v any) *meta.Property {
	switch v := v.(type) {
	case meta.Raw:
		return meta.New(key, v)
	case meta.Tuple:
		p := meta.New(key, v.Meta)
		p.Value = v.Value
		return p
	case func():
		return meta.Button(key, v)
	case *meta.Property:
		if v != nil {
			cp := *v
			if cp.Key == "" {
				cp.Key = key
			}
			return &cp
		}
	case meta.Property:
		if v.Key == "" {
			v.Key = key
		}
		return &v
	}
	return &meta.Property{Key: key, Type: meta.TypeUnknown, Description: UnknownDescription}
}
