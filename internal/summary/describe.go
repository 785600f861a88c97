package summary

import (
	"fmt"
	"math"

	"github.com/DataDog/sketches-go/ddsketch"

	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/schema"
)

// quantileAccuracy is the relative accuracy of the reported quartiles
const quantileAccuracy = 0.01

// Description summarises the numeric cells of a column.
// Quartiles are DDSketch estimates within 1% relative error.
type Description struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
}

// Describe summarises every cell of a column that reinterprets as a finite number.
// Cells that do not are ignored; Count reports how many were used.
func Describe(t *schema.Table, column string) (*Description, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}

	nums := Numbers(values)
	desc := &Description{Column: column, Count: len(nums)}
	if len(nums) == 0 {
		nan := math.NaN()
		desc.Mean, desc.Std, desc.Min, desc.Max = nan, nan, nan, nan
		desc.P25, desc.P50, desc.P75 = nan, nan, nan
		return desc, nil
	}

	sketch, err := ddsketch.NewDefaultDDSketch(quantileAccuracy)
	if err != nil {
		return nil, fmt.Errorf("failed to create sketch: %w", err)
	}

	desc.Min, desc.Max = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, v := range nums {
		sum += v
		desc.Min = math.Min(desc.Min, v)
		desc.Max = math.Max(desc.Max, v)
		if err := sketch.Add(v); err != nil {
			return nil, fmt.Errorf("failed to add %v to sketch: %w", v, err)
		}
	}
	desc.Mean = sum / float64(len(nums))

	if len(nums) > 1 {
		sq := 0.0
		for _, v := range nums {
			sq += (v - desc.Mean) * (v - desc.Mean)
		}
		desc.Std = math.Sqrt(sq / float64(len(nums)-1))
	} else {
		desc.Std = math.NaN()
	}

	quartiles, err := sketch.GetValuesAtQuantiles([]float64{0.25, 0.5, 0.75})
	if err != nil {
		return nil, fmt.Errorf("failed to compute quartiles: %w", err)
	}
	desc.P25, desc.P50, desc.P75 = quartiles[0], quartiles[1], quartiles[2]

	return desc, nil
}

// Numbers returns the values that reinterpret as finite numbers, in order
func Numbers(values []interface{}) []float64 {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := convert.ToNumeric(v); ok && !math.IsInf(f, 0) {
			nums = append(nums, f)
		}
	}
	return nums
}
