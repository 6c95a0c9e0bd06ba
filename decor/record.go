// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decor reads decor files, which map raw series labels to
// presentation attributes such as a display label, a color, or a
// marker.
//
// Each line of a decor file is a mapping:
//
//	<label> <new label> [color] [line width] [marker size] [marker] [hatch]
//
// Words are split the way a shell splits them, so multi-word values
// can be quoted. "#" starts a comment. Any optional field may be
// given as "None" to leave it unspecified. Lines with fewer than two
// words are ignored.
package decor

import (
	"fmt"
	"strconv"
	"strings"
)

// A Field identifies one attribute of a Record.
type Field int

const (
	// Label is the display label that replaces the raw label.
	Label Field = iota
	Color
	LineWidth
	MarkerSize
	Marker
	Hatch

	numFields
)

var fieldKeys = [numFields]string{
	Label:      KeyLabel,
	Color:      "color",
	LineWidth:  "linewidth",
	MarkerSize: "markersize",
	Marker:     "marker",
	Hatch:      "hatch",
}

// Key returns the attribute key f is stored under in an Attrs.
func (f Field) Key() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldKeys[f]
}

func (f Field) String() string {
	return f.Key()
}

// Fields lists every Field in decor file column order.
var Fields = []Field{Label, Color, LineWidth, MarkerSize, Marker, Hatch}

// A Record is the set of attributes a decor file gives for one label.
// Every field is independently optional. A present value is an int
// if it was written as an integer and a string otherwise.
type Record struct {
	vals [numFields]interface{}
}

// Get returns the value of f and whether it is present.
func (r *Record) Get(f Field) (interface{}, bool) {
	if f < 0 || f >= numFields {
		return nil, false
	}
	v := r.vals[f]
	return v, v != nil
}

// Set sets f to v. v must be an int or a string.
func (r *Record) Set(f Field, v interface{}) {
	switch v.(type) {
	case int, string:
	default:
		panic(fmt.Sprintf("decor: bad value type %T for field %s", v, f))
	}
	r.vals[f] = v
}

// Delete removes f from r.
func (r *Record) Delete(f Field) {
	if f >= 0 && f < numFields {
		r.vals[f] = nil
	}
}

// DisplayLabel returns the display label of r as a string.
func (r *Record) DisplayLabel() (string, bool) {
	v, ok := r.Get(Label)
	if !ok {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Attrs returns a new Attrs holding the fields present in r.
func (r *Record) Attrs() Attrs {
	a := make(Attrs)
	for f, v := range r.vals {
		if v != nil {
			a[Field(f).Key()] = v
		}
	}
	return a
}

func (r *Record) String() string {
	var parts []string
	for _, f := range Fields {
		if v, ok := r.Get(f); ok {
			parts = append(parts, fmt.Sprintf("%s:%v", f, v))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// A Parser parses decor files. The zero Parser is ready to use.
type Parser struct {
	// Prefix is stripped from the start of each raw label before
	// it is used as a lookup key. Typically it is the common
	// prefix of all of the labels being plotted.
	Prefix string
}

// ParseLine parses a single line of a decor file. It returns the
// lookup key and the record for that key. ok is false if the line
// does not hold a mapping: it is blank, is only a comment, has a
// single word, or cannot be split into words.
func (p *Parser) ParseLine(line string) (key string, rec *Record, ok bool) {
	words, err := Tokenize(line)
	if err != nil || len(words) < 2 {
		return "", nil, false
	}

	rec = new(Record)
	key = words[0]
	// Word 0 is the original label; the rest map onto Fields.
	for i, word := range words[1:] {
		if i >= len(Fields) {
			break
		}
		if n, err := strconv.Atoi(word); err == nil {
			rec.vals[Fields[i]] = n
			continue
		}
		if word == "None" {
			continue
		}
		rec.vals[Fields[i]] = word
	}

	return p.StripPrefix(key), rec, true
}

// StripPrefix removes p.Prefix from the start of label. A label that
// does not start with the prefix is returned unmodified. Keys are
// stripped when a decor file is parsed, and labels are stripped again
// before they are looked up, so either form of a label finds its
// record.
func (p *Parser) StripPrefix(label string) string {
	if p.Prefix == "" || !strings.HasPrefix(label, p.Prefix) {
		return label
	}
	return label[len(p.Prefix):]
}
