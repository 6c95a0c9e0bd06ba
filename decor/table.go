// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// A Table maps lookup keys to decor records. Each mapping line is
// registered under its key as written, with underscores replaced by
// hyphens, and with hyphens replaced by underscores. All three keys
// refer to the same *Record.
type Table struct {
	recs map[string]*Record
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{recs: make(map[string]*Record)}
}

// Add registers rec under key and its separator variants.
func (t *Table) Add(key string, rec *Record) {
	if t.recs == nil {
		t.recs = make(map[string]*Record)
	}
	t.recs[key] = rec
	t.recs[strings.Replace(key, "_", "-", -1)] = rec
	t.recs[strings.Replace(key, "-", "_", -1)] = rec
}

// Lookup returns the record for label. A nil Table has no records.
func (t *Table) Lookup(label string) (*Record, bool) {
	if t == nil {
		return nil, false
	}
	rec, ok := t.recs[label]
	return rec, ok
}

// Len returns the number of lookup keys in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.recs)
}

// Keys returns the lookup keys of t in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.recs))
	for k := range t.recs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of t with copies of its records. Keys that
// share a record in t share the copied record in the clone.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	t2 := &Table{recs: make(map[string]*Record, len(t.recs))}
	copies := make(map[*Record]*Record)
	for k, rec := range t.recs {
		c, ok := copies[rec]
		if !ok {
			c = new(Record)
			*c = *rec
			copies[rec] = c
		}
		t2.recs[k] = c
	}
	return t2
}

// CleanFields deletes fields from every record in t. This is used to
// drop attributes that make no sense for a kind of plot, such as
// markers on a bar chart.
func (t *Table) CleanFields(fields ...Field) {
	if t == nil {
		return
	}
	for _, rec := range t.recs {
		for _, f := range fields {
			rec.Delete(f)
		}
	}
}

// Parse reads a decor file from r. Lines that do not hold a mapping
// are skipped. If several lines register the same key, the last one
// wins.
func (p *Parser) Parse(r io.Reader) (*Table, error) {
	log := zap.L().Named("decor")
	t := NewTable()

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		key, rec, ok := p.ParseLine(line)
		if !ok {
			if strings.TrimSpace(stripComment(line)) != "" {
				log.Debug("skipping line", zap.Int("line", lineno), zap.String("text", line))
			}
			continue
		}
		t.Add(key, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// ReadFile reads and parses the decor file at path.
func (p *Parser) ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading decor file %s: %w", path, err)
	}
	return t, nil
}
