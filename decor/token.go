// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Tokenize splits one line of a decor file into shell-style words.
// Single- and double-quoted spans form a single word. An unquoted,
// unescaped "#" starts a comment that runs to the end of the line,
// even in the middle of a word.
//
// Tokenize returns an error if the line has an unterminated quote or
// a trailing backslash.
func Tokenize(line string) ([]string, error) {
	return shellquote.Split(stripComment(line))
}

// stripComment returns line up to its first comment character.
func stripComment(line string) string {
	var single, double, escaped bool
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case single:
			if r == '\'' {
				single = false
			}
		case r == '\\':
			escaped = true
		case double:
			if r == '"' {
				double = false
			}
		case r == '\'':
			single = true
		case r == '"':
			double = true
		case r == '#':
			return line[:i]
		}
	}
	return line
}

// normalize returns the hyphenated spelling of label.
func normalize(label string) string {
	return strings.Replace(label, "_", "-", -1)
}
