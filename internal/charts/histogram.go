package charts

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/summary"
)

// kdeSamples is the number of points the density curve is evaluated at
const kdeSamples = 200

// Histograms draws a histogram of the numeric cells of each column with a
// Gaussian kernel density estimate scaled to the bar counts
func Histograms(t *schema.Table, columns []string, opts Options) (*Result, error) {
	log := opts.logger()
	result := &Result{}

	for _, column := range columns {
		values, err := t.Values(column)
		if err != nil {
			return nil, err
		}
		nums := summary.Numbers(values)
		if len(nums) == 0 {
			log.Info("skipping column with no numeric values", "column", column)
			result.Skipped = append(result.Skipped, column)
			continue
		}

		p, err := histogram(column, nums)
		if err != nil {
			return nil, fmt.Errorf("failed to build histogram for %s: %w", column, err)
		}

		path, err := save(p, opts, result, "hist", column, opts.WidthIn, opts.HeightIn)
		if err != nil {
			return nil, err
		}
		log.Debug("histogram written", "column", column, "path", path, "values", len(nums))
		result.Files = append(result.Files, path)
	}

	return result, nil
}

func histogram(column string, nums []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Distribution of " + column
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"

	bins := BinCount(nums)
	h, err := plotter.NewHist(plotter.Values(nums), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = barColor
	p.Add(h)

	bandwidth := ScottBandwidth(nums)
	if bandwidth > 0 {
		lo, hi := minMax(nums)
		scale := float64(len(nums)) * (hi - lo) / float64(bins)
		density := plotter.NewFunction(func(x float64) float64 {
			return scale * GaussianKDE(nums, bandwidth, x)
		})
		density.Samples = kdeSamples
		density.Color = kdeColor
		density.Width = vg.Points(2)
		p.Add(density)
	}

	return p, nil
}

// BinCount picks the larger of the Sturges and Freedman-Diaconis bin counts
func BinCount(nums []float64) int {
	n := len(nums)
	if n < 2 {
		return 1
	}
	sturges := int(math.Ceil(math.Log2(float64(n)))) + 1

	lo, hi := minMax(nums)
	sorted := make([]float64, n)
	copy(sorted, nums)
	sort.Float64s(sorted)
	iqr := quantile(sorted, 0.75) - quantile(sorted, 0.25)
	if iqr <= 0 || hi <= lo {
		return sturges
	}
	width := 2 * iqr / math.Cbrt(float64(n))
	fd := int(math.Ceil((hi - lo) / width))
	if fd > sturges {
		return fd
	}
	return sturges
}

// ScottBandwidth returns std * n^(-1/5), or 0 when the data has no spread
func ScottBandwidth(nums []float64) float64 {
	n := float64(len(nums))
	if n < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range nums {
		mean += v
	}
	mean /= n
	sq := 0.0
	for _, v := range nums {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / (n - 1))
	return std * math.Pow(n, -0.2)
}

// GaussianKDE evaluates the kernel density estimate of nums at x
func GaussianKDE(nums []float64, bandwidth, x float64) float64 {
	if bandwidth <= 0 || len(nums) == 0 {
		return 0
	}
	norm := 1 / (bandwidth * math.Sqrt(2*math.Pi) * float64(len(nums)))
	sum := 0.0
	for _, v := range nums {
		z := (x - v) / bandwidth
		sum += math.Exp(-0.5 * z * z)
	}
	return norm * sum
}

func minMax(nums []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range nums {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// quantile linearly interpolates between order statistics of sorted data
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	i := int(math.Floor(pos))
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}
