// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"fmt"
	"sort"
	"strings"
)

// Reserved attribute keys.
const (
	// KeyDecorFile names the decor file to resolve attributes
	// from. It is never passed on to a renderer.
	KeyDecorFile = "decorfile"

	// KeyLabel is the label of a series. On input it is the raw
	// label looked up in the decor table; on output it is the
	// display label.
	KeyLabel = "label"
)

// Attrs is a bag of attributes passed through to a renderer. Values
// are not interpreted except for the reserved keys above.
type Attrs map[string]interface{}

// Merge copies the attributes in overrides into base and returns
// base. Attributes already present in base are kept: resolved decor
// always wins over attributes supplied by the caller. KeyDecorFile is
// never copied. If base is nil, Merge allocates a new Attrs.
func Merge(base, overrides Attrs) Attrs {
	if base == nil {
		base = make(Attrs, len(overrides))
	}
	for k, v := range overrides {
		if k == KeyDecorFile {
			continue
		}
		if _, ok := base[k]; ok {
			continue
		}
		base[k] = v
	}
	return base
}

// DecorFile returns the decor file path in a, or "" if there is none.
func (a Attrs) DecorFile() string {
	switch v := a[KeyDecorFile].(type) {
	case string:
		return v
	case nil:
		return ""
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(a[KeyDecorFile])
}

// Label returns the label in a and whether one is present.
func (a Attrs) Label() (string, bool) {
	v, ok := a[KeyLabel]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// String formats a with its keys in sorted order.
func (a Attrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%v", k, a[k])
	}
	b.WriteByte('}')
	return b.String()
}
