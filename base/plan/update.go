// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan provides an efficient mechanism for updating a slice
// to contain a target list of elements, generating minimal edits to
// modify the current slice contents to match the target.
// The mechanism depends on the use of unique name string identifiers
// to determine whether an element is currently configured correctly.
// The inspector uses it to keep live fields across re-renders.
package plan

import (
	"log/slog"
	"slices"
)

// Namer is an interface that types can implement to specify their name in a plan context.
type Namer interface {

	// PlanName returns the name of the object in a plan context.
	PlanName() string
}

// Update ensures that the elements of the slice contain
// the elements according to the plan, specified by unique
// element names, with n = total number of items in the target slice.
// If a new item is needed then new is called to create it,
// for given name at given index position; if it returns
// false, the item is skipped. If destroy is not-nil, then
// it is called on any element that is being deleted from the slice.
// It returns the updated slice and whether any changes were made.
func Update[T Namer](s []T, n int, name func(i int) string, new func(name string, i int) (T, bool), destroy func(e T)) (r []T, mods bool) {
	names := make([]string, 0, n)
	nmap := make(map[string]int, n)
	for i := range n {
		nm := name(i)
		if _, has := nmap[nm]; has {
			slog.Error("plan.Update: duplicate name", "name", nm)
			continue
		}
		nmap[nm] = i
		names = append(names, nm)
	}
	// first remove anything we don't want
	r = s
	for i := len(r) - 1; i >= 0; i-- {
		if _, ok := nmap[r[i].PlanName()]; !ok {
			mods = true
			if destroy != nil {
				destroy(r[i])
			}
			r = slices.Delete(r, i, i+1)
		}
	}
	// next add and move items as needed, in order
	pos := 0
	for _, tn := range names {
		ci := slices.IndexFunc(r[pos:], func(e T) bool { return e.PlanName() == tn })
		if ci < 0 {
			ne, ok := new(tn, nmap[tn])
			if !ok {
				continue
			}
			mods = true
			r = slices.Insert(r, pos, ne)
		} else if ci += pos; ci != pos {
			mods = true
			e := r[ci]
			r = slices.Delete(r, ci, ci+1)
			r = slices.Insert(r, pos, e)
		}
		pos++
	}
	return
}
