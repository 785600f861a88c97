// Package charts renders distribution charts of table columns to image files.
//
// Every function writes one file per column into Options.OutDir and returns
// the written paths. The file format follows Options.Format (any extension
// gonum/plot can save: png, svg, pdf, jpg, eps, tif).
package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

// Options controls where and how charts are rendered
type Options struct {
	OutDir        string
	Format        string
	WidthIn       float64 // figure width in inches
	HeightIn      float64 // figure height in inches (minimum for horizontal bars)
	TopN          int     // categories kept when GroupOther is set
	MaxCategories int     // columns with more distinct values are skipped
	GroupOther    bool    // fold categories past TopN into "Other" instead of skipping
	Logger        *slog.Logger
}

// DefaultOptions returns 10x6 inch PNG charts in "plots", top 10 of at most 15 categories
func DefaultOptions() Options {
	return Options{
		OutDir:        "plots",
		Format:        "png",
		WidthIn:       10,
		HeightIn:      6,
		TopN:          10,
		MaxCategories: 15,
	}
}

// Result lists the files written and the columns skipped
type Result struct {
	Files   []string
	Skipped []string
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// path builds the output file for one chart and makes sure its directory exists.
// Columns whose safe names coincide get a numeric suffix instead of
// overwriting a file already in taken.
func (o Options) path(kind, column string, taken []string) (string, error) {
	dir := o.OutDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create plot directory %s: %w", dir, err)
	}
	format := o.Format
	if format == "" {
		format = "png"
	}
	base := kind + "_" + unsafeChars.ReplaceAllString(column, "_")
	path := filepath.Join(dir, base+"."+format)
	for n := 2; slices.Contains(taken, path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", base, n, format))
	}
	return path, nil
}
