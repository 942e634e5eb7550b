// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/inspector/base/ordmap"
	"cogentcore.org/inspector/meta"
	"gopkg.in/yaml.v3"
)

// docEntry is an entry of a property document.
type docEntry struct {
	Value       any    `yaml:"value"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Order       *int   `yaml:"order"`
	Path        string `yaml:"path"`
}

// readDocument reads a YAML property document, which is a mapping from
// property keys to entries, keeping the order of the keys:
//
//	speed:
//	  value: 1
//	  type: number slider(0, 10)
//	  path: physics
func readDocument(r io.Reader) (*ordmap.Map[string, any], error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return ordmap.New[string, any](), nil
		}
		return nil, err
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: property document must be a mapping", doc.Line)
	}
	om := ordmap.New[string, any]()
	for i := 0; i+1 < len(doc.Content); i += 2 {
		k, v := doc.Content[i], doc.Content[i+1]
		var de docEntry
		if err := v.Decode(&de); err != nil {
			return nil, fmt.Errorf("line %d: property %q: %w", v.Line, k.Value, err)
		}
		if om.Has(k.Value) {
			return nil, fmt.Errorf("line %d: duplicate property %q", k.Line, k.Value)
		}
		om.Add(k.Value, meta.Raw{
			Value:       de.Value,
			Type:        de.Type,
			Description: de.Description,
			Order:       de.Order,
			Path:        de.Path,
		})
	}
	return om, nil
}
