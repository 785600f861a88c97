package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/edakit/internal/config"
	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/engine"
	"github.com/leengari/edakit/internal/logging"
	"github.com/leengari/edakit/internal/storage"
)

// app carries the state shared by every subcommand once the root has loaded it
type app struct {
	configPath string
	input      string
	sheet      string
	schemaPath string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func()
	eng      *engine.Engine
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "edakit",
		Short: "Exploratory data analysis helpers for tabular files",
		Long: `edakit loads a table (CSV, XLSX or a meta.json/data.json directory) and runs
one analysis step on it: type consistency checks, flag and date coercion,
one-hot encoding, frequency summaries and charts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "YAML config file")
	root.PersistentFlags().StringVarP(&a.input, "input", "i", "", "input table: directory, .csv or .xlsx")
	root.PersistentFlags().StringVar(&a.sheet, "sheet", "", "XLSX sheet (default: first sheet)")
	root.PersistentFlags().StringVar(&a.schemaPath, "schema", "", "meta.json declaring column types for CSV/XLSX input")

	root.AddCommand(
		newCheckCmd(a),
		newCategorizeCmd(a),
		newDatesCmd(a),
		newOneHotCmd(a),
		newUniqueCmd(a),
		newCountsCmd(a),
		newDescribeCmd(a),
		newPlotCmd(a),
		newShellCmd(a),
	)
	return root
}

// setup loads config, logging and the input table before any subcommand runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger, a.closeLog = logging.SetupLogger(logging.Options{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		SeqURL: cfg.SeqURL,
	})
	slog.SetDefault(a.logger)

	if a.input == "" {
		return fmt.Errorf("--input is required")
	}

	var declared *schema.TableSchema
	if a.schemaPath != "" {
		declared, err = storage.LoadSchema(a.schemaPath)
		if err != nil {
			return err
		}
	}

	table, err := storage.LoadInput(a.input, storage.InputOptions{
		Sheet:      a.sheet,
		Schema:     declared,
		DateLayout: cfg.Transform.DateLayout,
	})
	if err != nil {
		return err
	}

	a.eng = engine.New(table, cfg)
	a.eng.AddObserver(engine.NewLoggingObserver(a.logger))
	return nil
}

func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
	}
}
