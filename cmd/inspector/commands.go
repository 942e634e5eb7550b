// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/inspector/base/evalx"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/numeric"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tokensOutput is the YAML output of the tokens command.
type tokensOutput struct {
	Type      string              `yaml:"type"`
	TypeArgs  []string            `yaml:"typeArgs,omitempty"`
	Modifiers map[string][]string `yaml:"modifiers,omitempty"`
	Canonical string              `yaml:"canonical"`
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <annotation>",
		Short: "Print the parsed tokens of an annotation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk := meta.ParseTokens(strings.Join(args, " "))
			out := tokensOutput{Type: tk.Type, TypeArgs: tk.TypeArgs, Canonical: tk.String()}
			if tk.Modifiers != nil && tk.Modifiers.Len() > 0 {
				out.Modifiers = map[string][]string{}
				for k, v := range tk.Modifiers.All() {
					out.Modifiers[k] = v
				}
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := evalx.Evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), numeric.Format(v, numeric.DefaultPrecision))
			return err
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <number>...",
		Short: "Format numbers as the inspector displays them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			precision := a.config.GetInt(cfgKeyPrecision)
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), numeric.Format(evalx.SafeEvaluate(arg), precision))
			}
			return nil
		},
	}
	cmd.Flags().Int("precision", numeric.DefaultPrecision, "maximum number of decimals")
	a.config.BindPFlag(cfgKeyPrecision, cmd.Flags().Lookup("precision"))
	return cmd
}
