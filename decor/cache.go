// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"os"
	"sync"
	"time"
)

// A Cache holds parsed decor files so repeated plots that name the
// same file do not re-read it. An entry is reused only while the
// file's modification time and size are unchanged and it was parsed
// with the same prefix.
//
// Without a Cache, every plot call re-reads its decor file.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
}

type cacheKey struct {
	path, prefix string
}

type cacheEntry struct {
	mtime time.Time
	size  int64
	table *Table
}

// Load returns the table for the decor file at path, parsing it with
// p if it is not cached or has changed on disk.
//
// The returned Table is shared with later callers. Callers must not
// modify its records; use Record.Attrs to get a private copy.
func (c *Cache) Load(p *Parser, path string) (*Table, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := cacheKey{path, p.Prefix}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && e.mtime.Equal(fi.ModTime()) && e.size == fi.Size() {
		return e.table, nil
	}

	t, err := p.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if c.entries == nil {
		c.entries = make(map[cacheKey]*cacheEntry)
	}
	c.entries[key] = &cacheEntry{fi.ModTime(), fi.Size(), t}
	return t, nil
}

// Reset drops all cached tables.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
