// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// CommonPrefix returns the longest common prefix of labels that ends
// with a separator ("_", "-", "." or "/"). Cutting at a separator
// keeps whole words of each label, so "exp_run1" and "exp_run2" share
// the prefix "exp_", not "exp_run".
func CommonPrefix(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	prefix := labels[0]
	for _, l := range labels[1:] {
		n := 0
		for n < len(prefix) && n < len(l) && prefix[n] == l[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix[:strings.LastIndexAny(prefix, "_-./")+1]
}

// FixLabels returns the display label for each of raw. Underscores in
// each label are replaced with hyphens. If t is non-nil, the
// normalized label is looked up in t and replaced by its record's
// display label. Labels missing from t are logged and kept in their
// normalized form.
func FixLabels(raw []string, t *Table) []string {
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = normalize(l)
		if t == nil {
			continue
		}
		rec, ok := t.Lookup(out[i])
		if !ok {
			zap.L().Named("decor").Info("no decor for label", zap.String("label", out[i]))
			continue
		}
		if dl, ok := rec.DisplayLabel(); ok {
			out[i] = dl
		}
	}
	return out
}

// WriteSample writes a skeleton decor file for labels to w. The
// common prefix of labels is stripped and underscores become hyphens,
// matching how a Parser with that prefix looks labels up.
func WriteSample(w io.Writer, labels []string) error {
	bw := bufio.NewWriter(w)
	prefix := CommonPrefix(labels)

	keys := make([]string, 0, len(labels))
	width := len("#olabel")
	for _, l := range labels {
		k := shellquote.Join(normalize(l[len(prefix):]))
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	fmt.Fprintf(bw, "# Sample decor file for this set\n")
	cols := make([]string, 0, len(Fields))
	for _, f := range Fields {
		cols = append(cols, f.Key())
	}
	fmt.Fprintf(bw, "#%-*s\t%s\n", width-1, "olabel", strings.Join(cols, "\t"))
	for _, k := range keys {
		fmt.Fprintf(bw, "%-*s\t\"NEW_NAME\"\n", width, k)
	}
	return bw.Flush()
}
