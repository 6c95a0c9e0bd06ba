// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/decorplot/go-decor/decor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type call struct {
	kind   string
	xs, ys []float64
	width  float64
	attrs  decor.Attrs
}

// recorder is a Surface that records what it is asked to draw. The
// artifact for each call is its index.
type recorder struct {
	calls      []call
	tickPos    []float64
	tickLabels []string
}

func (r *recorder) add(c call) (Artifact, error) {
	r.calls = append(r.calls, c)
	return len(r.calls) - 1, nil
}

func (r *recorder) Line(xs, ys []float64, attrs decor.Attrs) (Artifact, error) {
	return r.add(call{"line", xs, ys, 0, attrs})
}

func (r *recorder) ErrorBar(xs, ys []float64, attrs decor.Attrs) (Artifact, error) {
	return r.add(call{"errorbar", xs, ys, 0, attrs})
}

func (r *recorder) Bar(xs, heights []float64, width float64, attrs decor.Attrs) (Artifact, error) {
	return r.add(call{"bar", xs, heights, width, attrs})
}

func (r *recorder) SetXTicks(pos []float64, labels []string) error {
	r.tickPos, r.tickLabels = pos, labels
	return nil
}

func (r *recorder) Legend() []LegendEntry {
	var l []LegendEntry
	for _, c := range r.calls {
		if label, ok := c.attrs.Label(); ok {
			l = append(l, LegendEntry{label, c.attrs})
		}
	}
	return l
}

const testDecor = `# olabel   label        color lw ms   marker
cpu_busy    "CPU (Busy)" blue  2  None s
mem_used    Memory       None  3  6    o
exp_run1    "Run 1"      green
`

func writeDecor(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decor.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0666))
	return path
}

func newTestPlotter(t *testing.T) (*Plotter, *recorder, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := new(recorder)
	p := New(r)
	p.Log = zap.New(core)
	return p, r, logs
}

func TestLineDecor(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	path := writeDecor(t, testDecor)

	xs, ys := []float64{1, 2}, []float64{3, 4}
	art, err := p.Line(xs, ys, decor.Attrs{decor.KeyDecorFile: path, "label": "cpu-busy"})
	require.NoError(t, err)
	assert.Equal(t, 0, art)

	require.Len(t, r.calls, 1)
	c := r.calls[0]
	assert.Equal(t, "line", c.kind)
	assert.Equal(t, xs, c.xs)
	assert.Equal(t, ys, c.ys)
	assert.Equal(t, decor.Attrs{"label": "CPU (Busy)", "color": "blue", "linewidth": 2, "marker": "s"}, c.attrs)
}

func TestDecorWins(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	path := writeDecor(t, testDecor)

	_, err := p.Line(nil, nil, decor.Attrs{
		decor.KeyDecorFile: path,
		"label":            "mem_used",
		"color":            "black",
		"linewidth":        9,
		"alpha":            0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, decor.Attrs{
		"label":      "Memory",
		"color":      "black",
		"linewidth":  3,
		"markersize": 6,
		"marker":     "o",
		"alpha":      0.5,
	}, r.calls[0].attrs)
}

func TestNoDecor(t *testing.T) {
	p, r, _ := newTestPlotter(t)

	// Without a label the decor file is never opened.
	missing := filepath.Join(t.TempDir(), "missing.txt")
	for _, kw := range []decor.Attrs{
		{"color": "red"},
		{decor.KeyDecorFile: missing, "color": "red"},
		{decor.KeyDecorFile: nil, "label": "x", "color": "red"},
		{decor.KeyDecorFile: "", "label": "x", "color": "red"},
	} {
		_, err := p.Line(nil, nil, kw)
		require.NoError(t, err, "%v", kw)
	}
	for i, c := range r.calls {
		_, hasFile := c.attrs[decor.KeyDecorFile]
		assert.False(t, hasFile, "call %d passed the decor file through", i)
		assert.Equal(t, "red", c.attrs["color"])
	}
	assert.Equal(t, "x", r.calls[3].attrs["label"])
}

func TestUnresolvedLabel(t *testing.T) {
	p, r, logs := newTestPlotter(t)
	path := writeDecor(t, testDecor)

	_, err := p.Line(nil, nil, decor.Attrs{decor.KeyDecorFile: path, "label": "nope", "color": "red"})
	require.NoError(t, err)
	assert.Equal(t, decor.Attrs{"label": "nope", "color": "red"}, r.calls[0].attrs)

	misses := logs.FilterMessage("no decor for label").All()
	require.Len(t, misses, 1)
	assert.Equal(t, zapcore.InfoLevel, misses[0].Level)
	assert.Equal(t, "nope", misses[0].ContextMap()["label"])
}

func TestMissingDecorFile(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err := p.Line(nil, nil, decor.Attrs{decor.KeyDecorFile: missing, "label": "x"})
	assert.Error(t, err)
	assert.Empty(t, r.calls)
}

func TestErrorBar(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	path := writeDecor(t, testDecor)

	yerr := []float64{0.1, 0.2}
	_, err := p.ErrorBar([]float64{1, 2}, []float64{3, 4}, decor.Attrs{decor.KeyDecorFile: path, "label": "cpu_busy", "yerr": yerr})
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Equal(t, "errorbar", r.calls[0].kind)
	assert.Equal(t, "blue", r.calls[0].attrs["color"])
	assert.Equal(t, yerr, r.calls[0].attrs["yerr"])
}

func TestSetPrefix(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	path := writeDecor(t, testDecor)

	p.SetPrefix([]string{"exp_run1", "exp_run2"})
	_, err := p.Line(nil, nil, decor.Attrs{decor.KeyDecorFile: path, "label": "run1"})
	require.NoError(t, err)
	assert.Equal(t, decor.Attrs{"label": "Run 1", "color": "green"}, r.calls[0].attrs)

	// Raw labels are stripped before lookup.
	_, err = p.Line(nil, nil, decor.Attrs{decor.KeyDecorFile: path, "label": "exp_run1"})
	require.NoError(t, err)
	assert.Equal(t, decor.Attrs{"label": "Run 1", "color": "green"}, r.calls[1].attrs)

	require.NoError(t, p.GroupedBar([][]float64{{1}, {2}}, []string{"exp_run1", "exp_run2"}, []string{"t"}, decor.Attrs{decor.KeyDecorFile: path}))
	assert.Equal(t, "Run 1", r.calls[2].attrs["label"])
	assert.Equal(t, "green", r.calls[2].attrs["color"])
	assert.Equal(t, "run2", r.calls[3].attrs["label"])
}

func TestCachedDecor(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	p.Cache = new(decor.Cache)
	path := writeDecor(t, testDecor)

	kw := decor.Attrs{decor.KeyDecorFile: path, "label": "cpu_busy"}
	for i := 0; i < 2; i++ {
		_, err := p.Line(nil, nil, kw)
		require.NoError(t, err)
	}
	require.NoError(t, p.GroupedBar([][]float64{{1}}, []string{"cpu_busy"}, []string{"t"}, kw))
	_, err := p.Line(nil, nil, kw)
	require.NoError(t, err)

	// Neither merging nor cleaning bar fields leaks into the cache.
	want := decor.Attrs{"label": "CPU (Busy)", "color": "blue", "linewidth": 2, "marker": "s"}
	assert.Equal(t, want, r.calls[0].attrs)
	assert.Equal(t, want, r.calls[1].attrs)
	assert.Equal(t, want, r.calls[3].attrs)
}

func TestBarGeometry(t *testing.T) {
	width, offsets := BarGeometry(3, 0.2)
	assert.InDelta(t, 0.8/3, width, 1e-12)
	require.Len(t, offsets, 3)
	for i, off := range offsets {
		assert.InDelta(t, float64(i)*0.8/3, off, 1e-12)
	}

	width, offsets = BarGeometry(0, 0.2)
	assert.Zero(t, width)
	assert.Nil(t, offsets)
}

func TestGroupedBar(t *testing.T) {
	p, r, _ := newTestPlotter(t)

	err := p.GroupedBar([][]float64{{1, 2}, {3, 4}}, []string{"a", "b"}, []string{"t1", "t2"}, nil)
	require.NoError(t, err)

	require.Len(t, r.calls, 2)
	for i, c := range r.calls {
		assert.Equal(t, "bar", c.kind)
		assert.InDelta(t, 0.4, c.width, 1e-12)
		require.Len(t, c.xs, 2)
		off := float64(i) * 0.4
		assert.InDelta(t, off, c.xs[0], 1e-12)
		assert.InDelta(t, 1+off, c.xs[1], 1e-12)
	}
	assert.Equal(t, []float64{1, 2}, r.calls[0].ys)
	assert.Equal(t, []float64{3, 4}, r.calls[1].ys)
	assert.Equal(t, "a", r.calls[0].attrs["label"])
	assert.Equal(t, "b", r.calls[1].attrs["label"])

	// Colors span the ramp.
	assert.Equal(t, Viridis.Map(0), r.calls[0].attrs["color"])
	assert.Equal(t, Viridis.Map(1), r.calls[1].attrs["color"])

	assert.Equal(t, []string{"t1", "t2"}, r.tickLabels)
	require.Len(t, r.tickPos, 2)
	assert.InDelta(t, 0.4, r.tickPos[0], 1e-12)
	assert.InDelta(t, 1.4, r.tickPos[1], 1e-12)
}

func TestGroupedBarDecor(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	path := writeDecor(t, testDecor)

	err := p.GroupedBar(
		[][]float64{{1}, {2}, {3}},
		[]string{"cpu_busy", "mem_used", "other_series"},
		[]string{"t"},
		decor.Attrs{decor.KeyDecorFile: path, "hatch": "//"},
	)
	require.NoError(t, err)
	require.Len(t, r.calls, 3)

	// Bar-meaningless fields are gone and decor colors are kept.
	assert.Equal(t, decor.Attrs{"label": "CPU (Busy)", "color": "blue", "hatch": "//"}, r.calls[0].attrs)

	// Series without a decor color are colored from the ramp.
	assert.Equal(t, decor.Attrs{"label": "Memory", "color": Viridis.Map(0.5), "hatch": "//"}, r.calls[1].attrs)
	assert.Equal(t, decor.Attrs{"label": "other-series", "color": Viridis.Map(1), "hatch": "//"}, r.calls[2].attrs)
}

func TestGroupedBarSingleSeries(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	require.NoError(t, p.GroupedBar([][]float64{{1, 2, 3}}, []string{"only"}, []string{"a", "b", "c"}, nil))
	require.Len(t, r.calls, 1)
	_, ok := r.calls[0].attrs["color"]
	assert.False(t, ok, "single series got a computed color")
	assert.InDelta(t, 0.8, r.calls[0].width, 1e-12)
}

func TestGroupedBarCallerColor(t *testing.T) {
	p, r, _ := newTestPlotter(t)
	require.NoError(t, p.GroupedBar([][]float64{{1}, {2}}, []string{"a", "b"}, []string{"t"}, decor.Attrs{"color": color.Black}))
	for _, c := range r.calls {
		assert.Equal(t, color.Black, c.attrs["color"])
	}
}

func TestGroupedBarDimensions(t *testing.T) {
	for _, test := range []struct {
		series      [][]float64
		labels      []string
		tickLabels  []string
		description string
	}{
		{[][]float64{{1, 2}, {3}}, []string{"a", "b"}, []string{"t1", "t2"}, "ragged series"},
		{[][]float64{{1, 2}, {3, 4}}, []string{"a"}, []string{"t1", "t2"}, "too few labels"},
		{[][]float64{{1, 2}, {3, 4}}, []string{"a", "b"}, []string{"t1"}, "too few ticks"},
		{nil, nil, nil, "no series"},
	} {
		p, r, _ := newTestPlotter(t)
		err := p.GroupedBar(test.series, test.labels, test.tickLabels, nil)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s: got error %v, want ErrDimensionMismatch", test.description, err)
		}
		if len(r.calls) != 0 || r.tickLabels != nil {
			t.Errorf("%s: drew before failing", test.description)
		}
	}
}

func TestRampColors(t *testing.T) {
	assert.Nil(t, RampColors(Viridis, 1))
	assert.Nil(t, RampColors(nil, 3))
	cs := RampColors(Magma, 3)
	require.Len(t, cs, 3)
	assert.Equal(t, Magma.Colors[0], cs[0])
	assert.Equal(t, Magma.Map(0.5), cs[1])
	assert.Equal(t, Magma.Colors[8], cs[2])
}
