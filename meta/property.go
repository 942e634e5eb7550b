// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"regexp"
	"strings"
)

// Raw is the caller-supplied metadata of a property, without its key.
type Raw struct {

	// Value is the default value of the property.
	Value any

	// Type is the annotation string of the property
	// (eg: "number integer range(0, 100)").
	Type string

	// Description is a human-readable description of the property.
	Description string

	// Order is the render priority of the property, if any.
	// By default it is the position of the property at registration.
	Order *int

	// Path is the group path of the property (eg: "physics/ball").
	Path string
}

// Tuple is a value paired with its metadata. The Value of Meta is ignored.
type Tuple struct {
	Value any
	Meta  Raw
}

// Property is a single inspectable entry. Properties are made fresh
// on every registration and are not modified afterward.
type Property struct {

	// Key is the key of the property, unique within a registration.
	Key string

	// Value is the default value of the property, or the
	// callback of a button, or the path of a group.
	Value any

	// Type is the annotation string of the property, or one of the
	// structural types [TypeButton], [TypeSpacer] and [TypeGroup].
	Type string

	// Description is a human-readable description of the property.
	Description string

	// Order is the render priority of the property, if any.
	Order *int

	// Path is the group path of the property.
	Path string
}

// New returns a new [Property] with the given key and metadata.
func New(key string, raw Raw) *Property {
	return &Property{
		Key:         key,
		Value:       raw.Value,
		Type:        raw.Type,
		Description: raw.Description,
		Order:       raw.Order,
		Path:        raw.Path,
	}
}

// Button returns a new button [Property] calling the given function.
func Button(key string, fun func()) *Property {
	return &Property{Key: key, Value: fun, Type: TypeButton}
}

// Spacer returns a new spacer [Property] of the given relative size.
func Spacer(size float64) *Property {
	return &Property{Key: TypeSpacer, Value: size, Type: TypeSpacer}
}

// Group returns a new group header [Property] for the group
// with the given name and path.
func Group(name, path string, order *int) *Property {
	return &Property{Key: name, Value: path, Type: TypeGroup, Order: order}
}

// Order returns a pointer to the given order, for use in [Raw.Order].
func Order(order int) *int {
	return &order
}

// OrderValue returns the order of the property, which is 0 if unset.
func (p *Property) OrderValue() int {
	if p.Order == nil {
		return 0
	}
	return *p.Order
}

// HasOrder returns whether the property has an explicit order.
func (p *Property) HasOrder() bool {
	return p.Order != nil
}

// IsStructural returns whether the property is a button,
// a spacer or a group rather than a field.
func (p *Property) IsStructural() bool {
	return IsStructural(p.Type)
}

// CloneValue returns a copy of the default value of the property.
// See [Clone].
func (p *Property) CloneValue() (any, error) {
	return Clone(p.Value)
}

// String returns a short description of the property for debugging.
func (p *Property) String() string {
	s := p.Key
	if p.Path != "" {
		s = p.Path + "/" + s
	}
	if p.Type != "" {
		s += " [" + p.Type + "]"
	}
	return s
}

var pathSeparator = regexp.MustCompile(`\s*[.:/]\s*`)

// SplitPath splits the given group path into its tokens. The separators
// are '.', ':' and '/', with any surrounding whitespace. Empty tokens
// are removed.
func SplitPath(path string) []string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	var tokens []string
	for _, tok := range pathSeparator.Split(path, -1) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
