package charts

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/summary"
)

var (
	barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	kdeColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// CategoricalTopN draws the distribution of each categorical column.
// Columns with more than MaxCategories distinct values are skipped, unless
// GroupOther is set, in which case the TopN most frequent values are kept and
// the rest are summed into "Other". More than two categories are drawn as
// horizontal bars, otherwise as vertical bars; every bar is labelled with its count.
func CategoricalTopN(t *schema.Table, columns []string, opts Options) (*Result, error) {
	log := opts.logger()
	result := &Result{}

	for _, column := range columns {
		counts, err := summary.ValueCounts(t, column)
		if err != nil {
			return nil, err
		}
		numUnique := len(counts)

		if numUnique > opts.MaxCategories {
			if !opts.GroupOther {
				log.Info("skipping column due to high cardinality", "column", column, "categories", numUnique)
				result.Skipped = append(result.Skipped, column)
				continue
			}
			counts = summary.TopN(counts, opts.TopN)
			numUnique = len(counts)
		}
		if numUnique > opts.MaxCategories {
			log.Info("skipping column, too many categories even after grouping", "column", column, "categories", numUnique)
			result.Skipped = append(result.Skipped, column)
			continue
		}
		if numUnique == 0 {
			log.Info("skipping column with no values", "column", column)
			result.Skipped = append(result.Skipped, column)
			continue
		}

		horizontal := numUnique > 2
		height := opts.HeightIn
		var p *plot.Plot
		if horizontal {
			height = math.Max(opts.HeightIn, float64(numUnique)*0.5)
			p, err = barChart("Distribution of "+column, "Count", column, counts, true)
		} else {
			p, err = barChart("Distribution of "+column, column, "Count", counts, false)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to build chart for %s: %w", column, err)
		}

		path, err := save(p, opts, result, "categorical", column, opts.WidthIn, height)
		if err != nil {
			return nil, err
		}
		log.Debug("categorical chart written", "column", column, "path", path, "categories", numUnique)
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// ValueCountBars draws a vertical bar per distinct value of each column,
// most frequent first, labelled with its count
func ValueCountBars(t *schema.Table, columns []string, opts Options) (*Result, error) {
	log := opts.logger()
	result := &Result{}

	for _, column := range columns {
		counts, err := summary.ValueCounts(t, column)
		if err != nil {
			return nil, err
		}
		if len(counts) == 0 {
			log.Info("skipping column with no values", "column", column)
			result.Skipped = append(result.Skipped, column)
			continue
		}

		p, err := barChart("Distribution of "+column, column, "Frequency", counts, false)
		if err != nil {
			return nil, fmt.Errorf("failed to build chart for %s: %w", column, err)
		}

		path, err := save(p, opts, result, "counts", column, opts.WidthIn, opts.HeightIn)
		if err != nil {
			return nil, err
		}
		log.Debug("value count chart written", "column", column, "path", path)
		result.Files = append(result.Files, path)
	}

	return result, nil
}

func barChart(title, xLabel, yLabel string, counts []summary.Count, horizontal bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	maxVal := 0.0
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Value
		maxVal = math.Max(maxVal, values[i])
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = horizontal
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	offset := maxVal * 0.01
	xys := make(plotter.XYs, len(counts))
	labels := make([]string, len(counts))
	for i, v := range values {
		if horizontal {
			xys[i] = plotter.XY{X: v + offset, Y: float64(i)}
		} else {
			xys[i] = plotter.XY{X: float64(i), Y: v + offset}
		}
		labels[i] = strconv.Itoa(counts[i].Count)
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(annotations)

	if horizontal {
		p.NominalY(names...)
		p.X.Min = 0
		p.X.Max = maxVal * 1.1
	} else {
		p.NominalX(names...)
		p.Y.Min = 0
		p.Y.Max = maxVal * 1.1
	}
	return p, nil
}

func save(p *plot.Plot, opts Options, result *Result, kind, column string, widthIn, heightIn float64) (string, error) {
	path, err := opts.path(kind, column, result.Files)
	if err != nil {
		return "", err
	}
	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return path, nil
}
