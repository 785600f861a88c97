package main

import (
	"github.com/spf13/cobra"

	"github.com/leengari/edakit/internal/summary"
)

func newUniqueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unique COL",
		Short: "Print the frequency and percentage of each value of a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eng.UniqueValues(cmd.OutOrStdout(), args[0])
		},
	}
}

func newCountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "counts COL...",
		Short: "Print the value counts of each column",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eng.ValueCounts(cmd.OutOrStdout(), args)
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe COL",
		Short: "Summarise the numeric cells of a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := a.eng.Describe(args[0])
			if err != nil {
				return err
			}
			return summary.PrintDescription(cmd.OutOrStdout(), desc)
		},
	}
}
