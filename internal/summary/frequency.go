// Package summary computes frequency and distribution summaries of single columns.
package summary

import (
	"fmt"
	"sort"

	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/data"
	"github.com/leengari/edakit/internal/domain/schema"
)

// Count is the number of occurrences of one rendered value
type Count struct {
	Value string
	Count int
}

// Frequency is a Count with its share of all non-missing values
type Frequency struct {
	Value   string
	Count   int
	Percent float64
}

// PercentString formats the share with two decimals, e.g. "33.33%"
func (f Frequency) PercentString() string {
	return fmt.Sprintf("%.2f%%", f.Percent)
}

// ValueCounts counts the non-missing values of a column.
// Values are keyed by their rendering; the result is sorted by count,
// descending, with ties kept in order of first appearance.
func ValueCounts(t *schema.Table, column string) ([]Count, error) {
	values, err := t.Values(column)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		if convert.IsMissing(v) {
			continue
		}
		key := convert.Render(v)
		pos, seen := index[key]
		if !seen {
			pos = len(counts)
			index[key] = pos
			counts = append(counts, Count{Value: key})
		}
		counts[pos].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

// UniqueValues returns the frequency and percentage of every distinct
// non-missing value of a column, most frequent first
func UniqueValues(t *schema.Table, column string) ([]Frequency, error) {
	counts, err := ValueCounts(t, column)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	freqs := make([]Frequency, len(counts))
	for i, c := range counts {
		freqs[i] = Frequency{
			Value:   c.Value,
			Count:   c.Count,
			Percent: float64(c.Count) / float64(total) * 100,
		}
	}
	return freqs, nil
}

// NUnique returns the number of distinct non-missing values of a column
func NUnique(t *schema.Table, column string) (int, error) {
	counts, err := ValueCounts(t, column)
	if err != nil {
		return 0, err
	}
	return len(counts), nil
}

// TopN keeps the n most frequent values and sums the rest into a trailing
// "Other" entry when anything was cut
func TopN(counts []Count, n int) []Count {
	if n < 0 || len(counts) <= n {
		out := make([]Count, len(counts))
		copy(out, counts)
		return out
	}
	out := make([]Count, n, n+1)
	copy(out, counts[:n])
	other := 0
	for _, c := range counts[n:] {
		other += c.Count
	}
	return append(out, Count{Value: "Other", Count: other})
}

// FrequencyTable returns UniqueValues of a column as a table named after the
// column, with value, frequency and percentage columns
func FrequencyTable(t *schema.Table, column string) (*schema.Table, error) {
	freqs, err := UniqueValues(t, column)
	if err != nil {
		return nil, err
	}

	out := schema.NewTable(column,
		schema.Column{Name: "value", Type: schema.ColumnTypeText},
		schema.Column{Name: "frequency", Type: schema.ColumnTypeInt},
		schema.Column{Name: "percentage", Type: schema.ColumnTypeFloat},
	)
	for _, f := range freqs {
		out.Rows = append(out.Rows, data.NewRow(map[string]interface{}{
			"value":      f.Value,
			"frequency":  int64(f.Count),
			"percentage": f.Percent,
		}))
	}
	return out, nil
}
