// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/inspector/base/errors"
	"cogentcore.org/inspector/fields"
	"cogentcore.org/inspector/inspector"
	"cogentcore.org/inspector/meta"
	"cogentcore.org/inspector/settings"
	"cogentcore.org/inspector/ticker"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// entryOutput is the YAML output of a rendered entry.
type entryOutput struct {
	Kind     string  `yaml:"kind"`
	Key      string  `yaml:"key,omitempty"`
	Label    string  `yaml:"label,omitempty"`
	Type     string  `yaml:"type,omitempty"`
	Value    any     `yaml:"value,omitempty"`
	Text     string  `yaml:"text,omitempty"`
	Count    string  `yaml:"count,omitempty"`
	Expanded *bool   `yaml:"expanded,omitempty"`
	Size     float64 `yaml:"size,omitempty"`
	Message  string  `yaml:"message,omitempty"`
}

func toOutput(e inspector.Entry) entryOutput {
	out := entryOutput{Kind: e.Kind.String(), Key: e.Key, Label: e.Label, Message: e.Message}
	switch e.Kind {
	case inspector.KindGroup:
		out.Count = e.Count
		out.Expanded = &e.Expanded
	case inspector.KindSpacer:
		out.Size = e.Size
	case inspector.KindField:
		out.Type = e.Field.Meta().Type
		out.Value = e.Field.Value()
		switch f := e.Field.(type) {
		case *fields.Number:
			out.Text = f.Input.Text()
		case *fields.Color:
			out.Text = f.Preview()
		case *fields.Unknown:
			out.Message = f.Message()
		}
	}
	return out
}

// encodeEntries returns the YAML of the current entries of the inspector,
// followed by a document of suggestions if the search matches nothing.
func encodeEntries(in *inspector.Inspector) ([]byte, error) {
	entries := in.Entries()
	out := make([]entryOutput, len(entries))
	for i, e := range entries {
		out[i] = toOutput(e)
	}
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	if sug := in.Suggest(3); len(sug) > 0 {
		if err := enc.Encode(map[string][]string{"suggestions": sug}); err != nil {
			return nil, err
		}
	}
	err := enc.Close()
	return b.Bytes(), err
}

// documentValues returns the current values of the properties
// of the document in the given file, logging any error.
func documentValues(filename string) map[string]any {
	f, err := os.Open(filename)
	if errors.Log(err) != nil {
		return nil
	}
	defer f.Close()
	doc, err := readDocument(f)
	if errors.Log(err) != nil {
		return nil
	}
	values := make(map[string]any, doc.Len())
	for k, v := range doc.All() {
		values[k] = v.(meta.Raw).Value
	}
	return values
}

// watch re-renders the inspector with the values of its document every
// refresh interval, writing the entries again whenever they change, until
// the context is done or the process is interrupted.
func watch(ctx context.Context, w io.Writer, in *inspector.Inspector, interval time.Duration, last []byte) error {
	if interval <= 0 {
		interval = inspector.DefaultRefreshInterval
	}
	tk := ticker.New()
	defer tk.Destroy()
	in.SetRefreshInterval(interval).SetTicker(tk)
	var werr error
	tk.OnTick(interval, func(ticker.Tick) {
		in.Render()
		b, err := encodeEntries(in)
		if errors.Log(err) != nil || bytes.Equal(b, last) {
			return
		}
		last = b
		if _, werr = io.WriteString(w, "---\n"); werr == nil {
			_, werr = w.Write(b)
		}
		if werr != nil {
			tk.Destroy()
		}
	})
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	err := tk.Run(ctx, interval)
	if werr != nil {
		return werr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func newRenderCmd(a *app) *cobra.Command {
	var search string
	var toggles []string
	var watching bool
	cmd := &cobra.Command{
		Use:   "render <file.yaml>",
		Short: "Render a YAML property document as inspector entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return err
			}
			doc, err := readDocument(f)
			f.Close()
			if err != nil {
				return err
			}

			in := inspector.New()
			defer in.Destroy()
			if state := a.config.GetString(cfgKeyState); state != "" {
				st, err := settings.OpenFile(state)
				if err != nil {
					return err
				}
				defer st.Close()
				in.SetStore(st)
			}
			var values func() map[string]any
			if watching {
				values = func() map[string]any { return documentValues(filename) }
			}
			if err := in.RegisterFields(doc, values); err != nil {
				slog.Warn("some properties were skipped", "err", err)
			}
			for _, path := range toggles {
				if err := in.ToggleGroup(path); err != nil {
					return err
				}
			}
			in.SetSearch(search)

			b, err := encodeEntries(in)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(b); err != nil {
				return err
			}
			if !watching {
				return nil
			}
			return watch(cmd.Context(), cmd.OutOrStdout(), in, a.config.GetDuration(cfgKeyRefresh), b)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show the properties whose key contains this")
	cmd.Flags().StringArrayVarP(&toggles, "toggle", "t", nil, "toggle the group with this path, saving it in the state file")
	cmd.Flags().String("state", "", "TOML file of the expanded state of the groups")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "render again whenever the values in the document change")
	cmd.Flags().Duration("refresh", inspector.DefaultRefreshInterval, "refresh interval of --watch")
	a.config.BindPFlag(cfgKeyState, cmd.Flags().Lookup("state"))
	a.config.BindPFlag(cfgKeyRefresh, cmd.Flags().Lookup("refresh"))
	return cmd
}
