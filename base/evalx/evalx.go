// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalx evaluates numeric values and arithmetic expressions
// given as strings, such as the arguments of inspector annotations
// (eg: "2 * PI", "sqrt(2) / 2").
package evalx

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"cogentcore.org/inspector/base/errors"
)

// Context is the evaluation context used by [Evaluate].
// It defines the constants and functions available in expressions.
// It can be extended before any evaluation happens.
var Context = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"PI":  cty.NumberFloatVal(math.Pi),
		"pi":  cty.NumberFloatVal(math.Pi),
		"TAU": cty.NumberFloatVal(2 * math.Pi),
		"tau": cty.NumberFloatVal(2 * math.Pi),
		"E":   cty.NumberFloatVal(math.E),
		"e":   cty.NumberFloatVal(math.E),
	},
	Functions: map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"min":   stdlib.MinFunc,
		"max":   stdlib.MaxFunc,
		"pow":   stdlib.PowFunc,
		"sqrt":  unaryFunc(math.Sqrt),
		"round": unaryFunc(math.Round),
		"sin":   unaryFunc(math.Sin),
		"cos":   unaryFunc(math.Cos),
		"tan":   unaryFunc(math.Tan),
		"log":   unaryFunc(math.Log),
		"exp":   unaryFunc(math.Exp),
	},
}

// unaryFunc wraps the given float function as a cty function
// of one number argument.
func unaryFunc(f func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{Name: "num", Type: cty.Number}},
		Type:   function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			x, _ := args[0].AsBigFloat().Float64()
			r := f(x)
			if math.IsNaN(r) {
				return cty.UnknownVal(cty.Number), fmt.Errorf("result of %v is not a number", x)
			}
			return cty.NumberFloatVal(r), nil
		},
	})
}

// Evaluate evaluates the given arithmetic expression and returns
// its numeric value. It supports numeric literals, the operators
// + - * / %, parentheses, the constants in [Context], and the
// functions in [Context].
func Evaluate(s string) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = 0, fmt.Errorf("evalx: evaluating %q: %v", s, r)
		}
	}()
	expr, diags := hclsyntax.ParseExpression([]byte(normalize(s)), "expression", hcl.InitialPos)
	if diags.HasErrors() {
		return 0, diags
	}
	v, diags := expr.Value(Context)
	if diags.HasErrors() {
		return 0, diags
	}
	v, err = convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("evalx: %q is not a number: %w", s, err)
	}
	if v.IsNull() || !v.IsKnown() {
		return 0, errors.New("evalx: expression " + s + " has no value")
	}
	result, _ = v.AsBigFloat().Float64()
	return result, nil
}

// normalize rewrites arithmetic into HCL syntax: a minus sign is always
// an operator (HCL allows '-' inside identifiers, so PI-1 would be one
// name), and numbers with a leading dot get a leading zero (.5 is 0.5).
// Signs of number exponents (1e-3) are kept.
func normalize(s string) string {
	var b strings.Builder
	ident, number := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ident {
			if isLetter(c) || isDigit(c) {
				b.WriteByte(c)
				continue
			}
			ident = false
		}
		if number {
			switch {
			case isDigit(c), c == '.', c == 'e', c == 'E':
				b.WriteByte(c)
				continue
			case (c == '-' || c == '+') && (s[i-1] == 'e' || s[i-1] == 'E'):
				b.WriteByte(c)
				continue
			}
			number = false
		}
		switch {
		case isLetter(c):
			ident = true
			b.WriteByte(c)
		case isDigit(c):
			number = true
			b.WriteByte(c)
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]):
			number = true
			b.WriteString("0.")
		case c == '-':
			b.WriteString(" - ")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SafeEvaluate returns the numeric value of the given value, which can be:
//   - already a number, which is returned unchanged
//   - a string that can be evaluated to a number, including expressions
//     such as "2 + 2", "sqrt(16)" or "2 * PI"
//   - nil, which returns 0
//
// Strings that fail to evaluate, or evaluate to NaN, return 0,
// as does any other type of value. SafeEvaluate never panics.
func SafeEvaluate(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case string:
		f, err := Evaluate(x)
		if err != nil || math.IsNaN(f) {
			return 0
		}
		return f
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	}
	return 0
}
