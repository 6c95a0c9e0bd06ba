// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command decorplot plots tables of series, taking labels, colors, and
// other presentation attributes from a decor file.
//
// decorplot takes input files of whitespace-separated columns. The
// first line names the columns: the first column gives the x value or
// tick label of each row, and every other column is a series. A column
// named "S.err" gives the error magnitudes of series S.
//
// A decor file maps series names to presentation attributes, one
// series per line:
//
//	# original  label       color  linewidth  markersize  marker  hatch
//	cpu_busy    "CPU busy"  red    2          None        o
//
// Series names are matched after stripping the common prefix of all
// series names (or -prefix), and "_" and "-" are interchangeable. Use
// -sample to print a decor file skeleton for an input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/table"
	"github.com/decorplot/go-decor/config"
	"github.com/decorplot/go-decor/decor"
	"github.com/decorplot/go-decor/export"
	"github.com/decorplot/go-decor/ggsurface"
	"github.com/decorplot/go-decor/plot"
	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

func main() {
	log.SetPrefix("decorplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagConfig     = flag.String("config", "", "read figure style from TOML `file`")
		flagDecor      = flag.String("decor", "", "read series attributes from decor `file`")
		flagKind       = flag.String("kind", "line", "plot `kind`: line, errbar, or bar")
		flagOut        = flag.String("o", "", "write output to `file` (default: SVG to stdout)")
		flagLegend     = flag.String("legend", "", "write a legend to `file`")
		flagPrefix     = flag.String("prefix", "", "strip `prefix` from series names (default: their common prefix)")
		flagCrop       = flag.String("crop", "pdfcrop", "crop PDF output with `command`")
		flagTitle      = flag.String("title", "", "plot title (overrides -config)")
		flagSample     = flag.Bool("sample", false, "print a sample decor file instead of a plot")
		flagTable      = flag.Bool("table", false, "print the resolved attributes instead of a plot")
		flagVerbose    = flag.Bool("v", false, "log decor resolution in detail")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *flagVerbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	style, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	if *flagTitle != "" {
		style.Figure.Title = *flagTitle
	}
	ramp, ok := plot.Ramps[style.Bars.Ramp]
	if !ok {
		log.Fatalf("unknown color ramp %q", style.Bars.Ramp)
	}
	cropCmd, err := shellquote.Split(*flagCrop)
	if err != nil {
		log.Fatalf("bad -crop command: %v", err)
	}

	// Parse data inputs.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var data []*Dataset
	for _, path := range paths {
		func() {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
			}

			d, err := ParseData(f)
			if err != nil {
				log.Fatalf("%s: %v", path, err)
			}
			data = append(data, d)
		}()
	}

	var labels []string
	for _, d := range data {
		labels = append(labels, d.Labels()...)
	}

	if *flagSample {
		if err := decor.WriteSample(os.Stdout, labels); err != nil {
			log.Fatal(err)
		}
		return
	}

	fig := ggsurface.New(style)
	p := plot.New(fig)
	p.Gap = style.Bars.Gap
	p.Ramp = ramp
	if *flagPrefix != "" {
		p.Parser.Prefix = *flagPrefix
	} else {
		p.SetPrefix(labels)
	}
	if len(data) > 1 {
		// Every input rereads the same decor file.
		p.Cache = new(decor.Cache)
	}

	if *flagTable {
		tab, err := attrTable(p, *flagDecor, labels)
		if err != nil {
			log.Fatal(err)
		}
		table.Fprint(os.Stdout, tab)
		return
	}

	for _, d := range data {
		if err := draw(p, fig, *flagKind, *flagDecor, d); err != nil {
			log.Fatal(err)
		}
	}

	e := &export.Exporter{CropCommand: cropCmd}
	if *flagOut == "" {
		if err := fig.Write(os.Stdout, "svg"); err != nil {
			log.Fatal(err)
		}
	} else if err := e.SaveFigure(fig, *flagOut); err != nil {
		log.Fatal(err)
	}
	if *flagLegend != "" {
		if err := e.SaveLegend(fig, *flagLegend); err != nil {
			log.Fatal(err)
		}
	}
}

// draw plots every series of d on p.
func draw(p *plot.Plotter, fig *ggsurface.Figure, kind, decorFile string, d *Dataset) error {
	kw := func() decor.Attrs {
		if decorFile == "" {
			return decor.Attrs{}
		}
		return decor.Attrs{decor.KeyDecorFile: decorFile}
	}

	switch kind {
	case "bar":
		return p.GroupedBar(d.Values(), d.Labels(), d.Ticks, kw())

	case "line", "errbar":
		xs := d.Positions()
		for _, s := range d.Series {
			a := kw()
			a[decor.KeyLabel] = s.Label
			var err error
			if kind == "errbar" && s.Yerr != nil {
				a["yerr"] = s.Yerr
				_, err = p.ErrorBar(xs, s.Ys, a)
			} else {
				_, err = p.Line(xs, s.Ys, a)
			}
			if err != nil {
				return fmt.Errorf("series %s: %w", s.Label, err)
			}
		}
		if d.Xs == nil {
			return fig.SetXTicks(xs, d.Ticks)
		}
		return nil
	}
	return fmt.Errorf("unknown plot kind %q", kind)
}

// attrTable resolves the attributes of each label against decorFile
// and returns them as a table with one row per label.
func attrTable(p *plot.Plotter, decorFile string, labels []string) (*table.Table, error) {
	cols := make([][]string, len(decor.Fields))
	for _, label := range labels {
		kw := decor.Attrs{decor.KeyLabel: label}
		if decorFile != "" {
			kw[decor.KeyDecorFile] = decorFile
		}
		attrs, err := p.Resolve(kw)
		if err != nil {
			return nil, err
		}
		for i, f := range decor.Fields {
			v := ""
			if x, ok := attrs[f.Key()]; ok {
				v = fmt.Sprint(x)
			}
			cols[i] = append(cols[i], v)
		}
	}

	b := table.NewBuilder(nil).Add("series", labels)
	for i, f := range decor.Fields {
		b.Add(f.Key(), cols[i])
	}
	return b.Done(), nil
}
