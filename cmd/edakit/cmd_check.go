package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/repl"
	"github.com/leengari/edakit/internal/storage/writer"
	"github.com/leengari/edakit/internal/summary"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		strict bool
		export string
		freq   []string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report cells whose value does not match the column type",
		Long: `check builds a boolean table of the same shape as the input: a numeric
column's cell is true when it reinterprets as a number, other columns are
always true unless --strict is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				a.cfg.Check.Strict = strict
			}

			result, report := a.eng.Check()
			if err := repl.PrintReport(cmd.OutOrStdout(), report, limit); err != nil {
				return err
			}
			if export == "" {
				return nil
			}

			source := a.eng.Table()
			result.Name = source.Name + "_check"
			tables := []*schema.Table{source, result}
			for _, col := range freq {
				t, err := summary.FrequencyTable(source, col)
				if err != nil {
					return err
				}
				tables = append(tables, t)
			}
			if err := writer.ExportXLSX(export, tables...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d sheets to %s\n", len(tables), export)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "also require text cells to be strings and date cells to parse")
	cmd.Flags().StringVar(&export, "export", "", "write the table, its check table and frequency tables to this .xlsx file")
	cmd.Flags().StringSliceVar(&freq, "freq", nil, "columns whose frequency tables are added to the export")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum mismatches to print (-1 for all)")
	return cmd
}
