package summary

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/leengari/edakit/internal/domain/schema"
)

// PrintUniqueValues writes the frequency and percentage of each distinct value
// of a column. The value column is headed by the column name.
func PrintUniqueValues(w io.Writer, t *schema.Table, column string) error {
	freqs, err := UniqueValues(t, column)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tFrequency\tPercentage\t\n", column)
	for _, f := range freqs {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", f.Value, f.Count, f.PercentString())
	}
	return tw.Flush()
}

// PrintValueCounts writes the value counts of each column of t, one block per column
func PrintValueCounts(w io.Writer, t *schema.Table, columns []string) error {
	for _, column := range columns {
		counts, err := ValueCounts(t, column)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Value counts for %s:\n", column)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, c := range counts {
			fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Name: %s, Length: %d\n\n", column, len(counts))
	}
	return nil
}

// PrintDescription writes a Description as aligned name/value lines
func PrintDescription(w io.Writer, d *Description) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "column\t%s\n", d.Column)
	fmt.Fprintf(tw, "count\t%d\n", d.Count)
	for _, stat := range []struct {
		name  string
		value float64
	}{
		{"mean", d.Mean},
		{"std", d.Std},
		{"min", d.Min},
		{"25%", d.P25},
		{"50%", d.P50},
		{"75%", d.P75},
		{"max", d.Max},
	} {
		fmt.Fprintf(tw, "%s\t%.4f\n", stat.name, stat.value)
	}
	return tw.Flush()
}
