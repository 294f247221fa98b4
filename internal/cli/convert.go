package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Torinad2/EZ-Pass/internal/config"
	"github.com/Torinad2/EZ-Pass/internal/logger"
	"github.com/Torinad2/EZ-Pass/internal/pipeline"
	"github.com/Torinad2/EZ-Pass/internal/writer"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var (
		configPath string
		format     string
		workers    int
		noMetadata bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Parse statement PDFs and write a spreadsheet",
		Long: `Parse one statement PDF, or every PDF in a folder, and write the
combined transactions to OUTPUT.

The output format follows the OUTPUT extension (.xlsx or .csv) unless
--format is given. Records keep input file order, then statement line
order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if noMetadata {
				cfg.Metadata.Enabled = false
			}
			if err := applyFormat(cfg, format, output); err != nil {
				return err
			}

			log := logger.New(verbose)

			inputs, err := pipeline.CollectInputs(input)
			if err != nil {
				return err
			}
			log.Info().Int("documents", len(inputs)).Str("input", input).Msg("collected statements")

			res, err := pipeline.New(cfg, log).Run(inputs)
			if err != nil {
				return err
			}
			log.Info().Int("records", len(res.Records)).Msg("parsed transactions")
			if len(res.Records) == 0 {
				log.Warn().Msg("no transactions matched; the statements may use an unsupported layout")
			}

			if err := writeOutput(cfg, output, res); err != nil {
				return err
			}
			log.Info().Str("output", output).Msg("saved")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: xlsx or csv (default: from OUTPUT extension)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Documents to process concurrently (output order is unaffected)")
	cmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "Skip statement-level summary extraction")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFormat resolves the output format: an explicit flag wins, then
// the output extension, then the configured default.
func applyFormat(cfg *config.Config, flag, output string) error {
	switch {
	case flag != "":
		cfg.Output.Format = strings.ToLower(flag)
	case strings.EqualFold(filepath.Ext(output), ".csv"):
		cfg.Output.Format = "csv"
	case strings.EqualFold(filepath.Ext(output), ".xlsx"):
		cfg.Output.Format = "xlsx"
	}
	if cfg.Output.Format != "xlsx" && cfg.Output.Format != "csv" {
		return fmt.Errorf("unsupported output format %q (use xlsx or csv)", cfg.Output.Format)
	}
	return nil
}

func writeOutput(cfg *config.Config, output string, res *pipeline.Result) error {
	if cfg.Output.Format == "csv" {
		w := &writer.CSVWriter{IncludeMetadata: cfg.Metadata.Enabled}
		return w.WriteToFile(output, res.Records, res.Metadata)
	}
	w := &writer.XLSXWriter{
		SheetName:    cfg.Output.SheetName,
		FreezeHeader: cfg.Output.FreezeHeader,
		MinColWidth:  cfg.Output.MinColWidth,
		MaxColWidth:  cfg.Output.MaxColWidth,
	}
	return w.WriteToFile(output, res.Records, res.Metadata)
}
