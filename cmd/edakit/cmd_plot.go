package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leengari/edakit/internal/engine"
	"github.com/leengari/edakit/internal/repl"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		out        string
		format     string
		groupOther bool
	)

	cmd := &cobra.Command{
		Use:       "plot categorical|hist|counts COL...",
		Short:     "Render one chart per column to image files",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: []string{string(engine.PlotCategorical), string(engine.PlotHistogram), string(engine.PlotValueCounts)},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.PlotOptions(a.logger)
			if cmd.Flags().Changed("out") {
				opts.OutDir = out
			}
			if cmd.Flags().Changed("format") {
				opts.Format = format
			}
			if cmd.Flags().Changed("group-other") {
				opts.GroupOther = groupOther
			}

			result, err := a.eng.Plot(engine.PlotKind(args[0]), args[1:], opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, f := range result.Files {
				fmt.Fprintf(w, "wrote %s\n", f)
			}
			for _, s := range result.Skipped {
				fmt.Fprintf(w, "skipped %s\n", s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "plots", "output directory")
	cmd.Flags().StringVar(&format, "format", "png", "image format (png, svg, pdf, jpg)")
	cmd.Flags().BoolVar(&groupOther, "group-other", false, "plot high-cardinality columns as top values plus Other")
	return cmd
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Explore the input interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), a.eng, a.cfg.PlotOptions(a.logger))
			return nil
		},
	}
}
