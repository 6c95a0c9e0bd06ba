// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(`
[figure]
width = 800
title = "Throughput"

[bars]
ramp = "magma"
`))
	require.NoError(t, err)

	want := Default()
	want.Figure.Width = 800
	want.Figure.Title = "Throughput"
	want.Bars.Ramp = "magma"
	assert.Equal(t, want, s)
}

func TestDecodeErrors(t *testing.T) {
	for _, input := range []string{
		"[figure]\nwidth = -1\n",
		"[font]\nsize = 0\n",
		"[bars]\ngap = 1.5\n",
		"[figure]\ncolour = \"red\"\n",
		"[figure\n",
	} {
		if _, err := Decode(strings.NewReader(input)); err == nil {
			t.Errorf("Decode(%q): expected error", input)
		}
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	path := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, os.WriteFile(path, []byte("[font]\nfamily = \"sans-serif\"\n"), 0666))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sans-serif", s.Font.Family)
	assert.Equal(t, 26.0, s.Font.Size)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
