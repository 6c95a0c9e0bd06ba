// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes rendered figures to files and post-processes
// them with an external cropping tool.
package export

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// A Figure can render itself in a named format, such as "svg".
type Figure interface {
	Write(w io.Writer, format string) error
}

// A LegendFigure can render a legend-only image of itself.
type LegendFigure interface {
	WriteLegend(w io.Writer, format string) error
}

// DefaultCropCommand is the crop command used when
// Exporter.CropCommand is empty.
var DefaultCropCommand = []string{"pdfcrop"}

// An Exporter saves figures to files.
type Exporter struct {
	// CropCommand is the command and leading arguments used to crop
	// a PDF. The path to crop is appended as the final argument.
	// The command must write its output to "<stem>-crop.pdf".
	CropCommand []string

	// Log receives crop diagnostics. If nil, zap.L() is used.
	Log *zap.Logger
}

func (e *Exporter) log() *zap.Logger {
	if e.Log == nil {
		return zap.L().Named("export")
	}
	return e.Log
}

// format returns the output format named by path's extension.
func format(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no file extension to choose a format", path)
	}
	return strings.ToLower(ext), nil
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// writeFile creates path and fills it using write.
func writeFile(path string, write func(w io.Writer, format string) error) error {
	fmtName, err := format(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, fmtName); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// SaveFigure writes fig to path in the format named by path's
// extension. PDF output is then cropped.
func (e *Exporter) SaveFigure(fig Figure, path string) error {
	if err := writeFile(path, fig.Write); err != nil {
		return err
	}
	if isPDF(path) {
		return e.Crop(path)
	}
	return nil
}

// SaveLegend writes a legend-only image of fig to path. Legends are
// always cropped when written as PDF.
func (e *Exporter) SaveLegend(fig LegendFigure, path string) error {
	if err := writeFile(path, fig.WriteLegend); err != nil {
		return err
	}
	if isPDF(path) {
		return e.Crop(path)
	}
	return nil
}

// Crop runs the crop command on path and replaces path with the
// cropped file. If the command cannot be run or fails, Crop logs a
// warning and leaves path as it is. Crop returns an error only if the
// cropped file cannot be moved into place.
func (e *Exporter) Crop(path string) error {
	args := e.CropCommand
	if len(args) == 0 {
		args = DefaultCropCommand
	}
	args = append(append([]string(nil), args...), path)

	cmd := exec.Command(args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		fields := []zap.Field{zap.String("path", path), zap.Strings("command", args), zap.Error(err)}
		if ee, ok := err.(*exec.ExitError); ok {
			fields = append(fields, zap.Int("exit", ee.ExitCode()))
		}
		if len(out) > 0 {
			fields = append(fields, zap.ByteString("output", out))
		}
		e.log().Warn("crop failed; keeping uncropped file", fields...)
		return nil
	}

	cropped := strings.TrimSuffix(path, filepath.Ext(path)) + "-crop.pdf"
	if err := os.Rename(cropped, path); err != nil {
		return fmt.Errorf("replacing %s with cropped output: %w", path, err)
	}
	return nil
}
