// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"bytes"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"cogentcore.org/inspector/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// FileStore is a [Store] persisted as a flat TOML table in a file.
// The file is read when the store is opened and rewritten on every
// [FileStore.Set]. It is safe for concurrent use.
type FileStore struct {

	// Filename is the path of the TOML file.
	Filename string

	mu      sync.Mutex
	values  map[string]string
	watcher *fsnotify.Watcher
	done    chan struct{}

	// onReload is called after the values are reloaded from the file.
	onReload func()
}

// OpenFile opens a [FileStore] for the given file. A missing
// file is not an error; it is created on the first Set.
func OpenFile(filename string) (*FileStore, error) {
	fst := &FileStore{Filename: filename, values: map[string]string{}}
	if err := fst.load(); err != nil {
		return nil, err
	}
	return fst, nil
}

func (fst *FileStore) load() error {
	b, err := os.ReadFile(fst.Filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	values := map[string]string{}
	if err := toml.NewDecoder(bytes.NewReader(b)).Decode(&values); err != nil {
		return err
	}
	fst.mu.Lock()
	fst.values = values
	fst.mu.Unlock()
	return nil
}

func (fst *FileStore) Get(key string) (string, bool) {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	v, ok := fst.values[key]
	return v, ok
}

func (fst *FileStore) Set(key, value string) error {
	fst.mu.Lock()
	fst.values[key] = value
	values := maps.Clone(fst.values)
	fst.mu.Unlock()
	return fst.save(values)
}

// Values returns a copy of all of the values of the store.
func (fst *FileStore) Values() map[string]string {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	return maps.Clone(fst.values)
}

func (fst *FileStore) save(values map[string]string) error {
	b, err := toml.Marshal(values)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fst.Filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(fst.Filename, b, 0o666)
}

// Watch starts watching the file for external changes, reloading the
// values when it is written. The given function, if non-nil, is called
// after every reload, from the watching goroutine. Calling Watch more
// than once has no effect. Watching stops on [FileStore.Close].
func (fst *FileStore) Watch(onReload func()) error {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	if fst.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// watch the directory so that atomic renames of the file are seen
	if err := w.Add(filepath.Dir(fst.Filename)); err != nil {
		w.Close()
		return err
	}
	fst.watcher = w
	fst.done = make(chan struct{})
	fst.onReload = onReload
	go fst.watch(w, fst.done)
	return nil
}

func (fst *FileStore) watch(w *fsnotify.Watcher, done chan struct{}) {
	name := filepath.Clean(fst.Filename)
	for {
		select {
		case <-done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if errors.Log(fst.load()) != nil {
				continue
			}
			slog.Debug("settings: reloaded", "file", fst.Filename)
			fst.mu.Lock()
			onReload := fst.onReload
			fst.mu.Unlock()
			if onReload != nil {
				onReload()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Close stops watching the file, if it is being watched.
func (fst *FileStore) Close() error {
	fst.mu.Lock()
	defer fst.mu.Unlock()
	if fst.watcher == nil {
		return nil
	}
	close(fst.done)
	err := fst.watcher.Close()
	fst.watcher = nil
	return err
}
