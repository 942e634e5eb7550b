// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"cmp"
	"slices"
	"strings"

	"cogentcore.org/inspector/fieldtree"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// SetSearch sets the search, which filters the rendered properties to
// those whose key contains it case-insensitively, and renders again.
func (in *Inspector) SetSearch(search string) *Inspector {
	in.search = search
	in.Render()
	return in
}

// ClearSearch clears the search and renders again.
func (in *Inspector) ClearSearch() *Inspector {
	return in.SetSearch("")
}

// Suggest returns up to n keys that are the most similar to the current
// search, from the most similar, when the search matches no property.
// It returns nil otherwise.
func (in *Inspector) Suggest(n int) []string {
	search := strings.ToLower(in.Search())
	if search == "" || n <= 0 {
		return nil
	}
	type scored struct {
		key   string
		score float64
	}
	var cands []scored
	lev := metrics.NewLevenshtein()
	for _, p := range in.properties {
		if p.IsStructural() {
			continue
		}
		if fieldtree.Matches(p, search) {
			return nil
		}
		cands = append(cands, scored{p.Key, strutil.Similarity(search, strings.ToLower(p.Key), lev)})
	}
	slices.SortStableFunc(cands, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	keys := make([]string, 0, min(n, len(cands)))
	for _, c := range cands[:min(n, len(cands))] {
		if c.score <= 0 {
			break
		}
		keys = append(keys, c.key)
	}
	return keys
}
