// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"regexp"
	"strings"

	"cogentcore.org/inspector/base/ordmap"
)

// tokenRegexp matches one token of an annotation string:
// an identifier optionally followed by a parenthesized argument list.
var tokenRegexp = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_-]*)\s*(?:\(([^)]*)\))?`)

// Tokens is the result of parsing an annotation string with [ParseTokens].
// For example, "number slider(1, 100) integer clamped middle(10)" gives:
//
//	Type:      "number"
//	TypeArgs:  []
//	Modifiers: slider: [1 100], integer: [], clamped: [], middle: [10]
type Tokens struct {

	// Type is the identifier of the first token, which is always the type.
	Type string

	// TypeArgs are the arguments of the first token.
	TypeArgs []string

	// Modifiers maps each subsequent token to its arguments,
	// in the order in which they first appear. Bare flags
	// (eg: clamped) have an empty argument list.
	Modifiers *ordmap.Map[string, []string]
}

// ParseTokens turns an annotation string into [Tokens].
// Unrecognized characters between tokens are ignored, and arguments
// are never parsed recursively. An empty string gives an empty type.
func ParseTokens(input string) Tokens {
	tk := Tokens{TypeArgs: []string{}, Modifiers: ordmap.New[string, []string]()}
	for i, m := range tokenRegexp.FindAllStringSubmatch(input, -1) {
		args := splitArgs(m[2])
		if i == 0 {
			tk.Type = m[1]
			tk.TypeArgs = args
			continue
		}
		tk.Modifiers.Add(m[1], args)
	}
	return tk
}

// splitArgs splits a raw argument list on commas, trimming each argument.
func splitArgs(raw string) []string {
	if raw == "" {
		return []string{}
	}
	args := strings.Split(raw, ",")
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}
	return args
}

// String returns the canonical annotation string for the tokens.
func (tk Tokens) String() string {
	var b strings.Builder
	writeToken(&b, tk.Type, tk.TypeArgs)
	for name, args := range tk.Modifiers.All() {
		b.WriteByte(' ')
		writeToken(&b, name, args)
	}
	return b.String()
}

func writeToken(b *strings.Builder, name string, args []string) {
	b.WriteString(name)
	if len(args) > 0 {
		b.WriteByte('(')
		b.WriteString(strings.Join(args, ", "))
		b.WriteByte(')')
	}
}
