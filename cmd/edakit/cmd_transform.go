package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/edakit/internal/repl"
	"github.com/leengari/edakit/internal/storage/writer"
)

func newCategorizeCmd(a *app) *cobra.Command {
	var truthy string

	cmd := &cobra.Command{
		Use:   "categorize COL...",
		Short: "Encode flag columns as 1 (truthy value) or 0",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("truthy") {
				a.cfg.Transform.Truthy = truthy
			}
			head, err := a.eng.Categorize(args)
			if err != nil {
				return err
			}
			return repl.PrintTable(cmd.OutOrStdout(), head)
		},
	}
	cmd.Flags().StringVar(&truthy, "truthy", "SI", "value encoded as 1")
	return cmd
}

func newDatesCmd(a *app) *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "dates COL...",
		Short: "Parse columns as dates; unparseable cells become missing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("layout") {
				a.cfg.Transform.DateLayout = layout
			}
			head, err := a.eng.ToDate(args)
			if err != nil {
				return err
			}
			return repl.PrintTable(cmd.OutOrStdout(), head)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "20060102", "Go time layout of the date text")
	return cmd
}

func newOneHotCmd(a *app) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "onehot COL",
		Short: "Replace a categorical column with one boolean column per value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.eng.OneHot(args[0])
			if err != nil {
				return err
			}
			if err := repl.PrintTable(cmd.OutOrStdout(), out.Head(5)); err != nil {
				return err
			}
			if save == "" {
				return nil
			}
			if err := writer.SaveTable(out, save); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", out.Name, save)
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the encoded table as a meta.json/data.json directory")
	return cmd
}
