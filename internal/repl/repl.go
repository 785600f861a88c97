package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/leengari/edakit/internal/charts"
	"github.com/leengari/edakit/internal/consistency"
	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/engine"
	"github.com/leengari/edakit/internal/summary"
)

const help = `Commands:
  head [n]                  show the first n rows (default 5)
  columns                   list columns and types
  check                     per-cell type consistency summary
  categorize COL...         encode flag columns as 1/0
  dates COL...              parse date columns
  onehot COL                replace a column with dummy columns
  unique COL                frequency and percentage per value
  counts COL...             value counts
  describe COL              numeric summary
  plot KIND COL...          KIND is categorical, hist or counts
  exit | \q                 quit`

// Start reads commands from in until EOF or exit and runs them against eng
func Start(in io.Reader, out io.Writer, eng *engine.Engine, plotOpts charts.Options) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Exploring %s. Type 'help' for commands, 'exit' or '\\q' to quit.\n", eng.Table().Name)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "\\q" {
			return
		}

		if err := Execute(out, eng, plotOpts, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

// Execute runs one shell command and prints its result
func Execute(w io.Writer, eng *engine.Engine, plotOpts charts.Options, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(w, help)
		return nil
	case "head":
		n := 5
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return fmt.Errorf("head: invalid row count %q", args[0])
			}
			n = v
		}
		return PrintTable(w, eng.Table().Head(n))
	case "columns":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, col := range eng.Table().Schema.Columns {
			fmt.Fprintf(tw, "%s\t%s\n", col.Name, col.Type)
		}
		return tw.Flush()
	case "check":
		_, report := eng.Check()
		return PrintReport(w, report, 10)
	case "categorize", "dates":
		if len(args) == 0 {
			return fmt.Errorf("%s: at least one column is required", cmd)
		}
		run := eng.Categorize
		if cmd == "dates" {
			run = eng.ToDate
		}
		head, err := run(args)
		if err != nil {
			return err
		}
		return PrintTable(w, head)
	case "onehot":
		if len(args) != 1 {
			return fmt.Errorf("onehot: exactly one column is required")
		}
		out, err := eng.OneHot(args[0])
		if err != nil {
			return err
		}
		return PrintTable(w, out.Head(5))
	case "unique":
		if len(args) != 1 {
			return fmt.Errorf("unique: exactly one column is required")
		}
		return eng.UniqueValues(w, args[0])
	case "counts":
		if len(args) == 0 {
			return fmt.Errorf("counts: at least one column is required")
		}
		return eng.ValueCounts(w, args)
	case "describe":
		if len(args) != 1 {
			return fmt.Errorf("describe: exactly one column is required")
		}
		desc, err := eng.Describe(args[0])
		if err != nil {
			return err
		}
		return summary.PrintDescription(w, desc)
	case "plot":
		if len(args) < 2 {
			return fmt.Errorf("plot: usage is plot KIND COL...")
		}
		result, err := eng.Plot(engine.PlotKind(args[0]), args[1:], plotOpts)
		if err != nil {
			return err
		}
		for _, f := range result.Files {
			fmt.Fprintf(w, "wrote %s\n", f)
		}
		for _, s := range result.Skipped {
			fmt.Fprintf(w, "skipped %s\n", s)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q (type 'help')", cmd)
}

// PrintTable writes t as aligned columns with a "name (TYPE)" header.
// Missing cells print as NULL.
func PrintTable(w io.Writer, t *schema.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Header
	for i, col := range t.Schema.Columns {
		fmt.Fprintf(tw, "%s (%s)", col.Name, col.Type)
		if i < len(t.Schema.Columns)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Separator
	for i := range t.Schema.Columns {
		fmt.Fprintf(tw, "---")
		if i < len(t.Schema.Columns)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	for _, row := range t.Rows {
		for i, col := range t.Schema.Columns {
			val, ok := row.Get(col.Name)
			if !ok {
				fmt.Fprintf(tw, "NULL")
			} else {
				fmt.Fprintf(tw, "%s", convert.Render(val))
			}
			if i < len(t.Schema.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	fmt.Fprintf(tw, "(%d rows)\n", len(t.Rows))
	return tw.Flush()
}

// PrintReport writes the per-column consistency counts of a report followed by
// at most limit mismatching cells; a negative limit prints all of them
func PrintReport(w io.Writer, report *consistency.Report, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\ttype\tconsistent\tinconsistent")
	for _, c := range report.Columns {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", c.Column, c.Type, c.Consistent, c.Inconsistent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Consistent() {
		fmt.Fprintf(w, "%s: all %d rows consistent\n", report.Table, report.Rows)
		return nil
	}
	fmt.Fprintf(w, "%s: %d inconsistent cells\n", report.Table, len(report.Mismatches))
	for i, m := range report.Mismatches {
		if limit >= 0 && i >= limit {
			fmt.Fprintf(w, "  ... %d more\n", len(report.Mismatches)-limit)
			break
		}
		fmt.Fprintf(w, "  %s\n", m.Error())
	}
	return nil
}
