// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides simple persisted key-value string stores,
// used to remember the expanded state of inspector groups.
package settings

import (
	"maps"
	"slices"
	"sync"
)

// Store is a key-value string store.
type Store interface {

	// Get returns the value for the given key, and whether it is present.
	Get(key string) (string, bool)

	// Set sets the value for the given key.
	Set(key, value string) error
}

// MemoryStore is a [Store] that only lives in memory.
// It is safe for concurrent use. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns a new [MemoryStore] with the given initial values,
// which are copied.
func NewMemoryStore(values map[string]string) *MemoryStore {
	return &MemoryStore{values: maps.Clone(values)}
}

func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.values[key]
	return v, ok
}

func (ms *MemoryStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.values == nil {
		ms.values = map[string]string{}
	}
	ms.values[key] = value
	return nil
}

// Keys returns the sorted keys of the store.
func (ms *MemoryStore) Keys() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return slices.Sorted(maps.Keys(ms.values))
}
