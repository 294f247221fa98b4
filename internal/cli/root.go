// Package cli provides the command-line interface for the converter.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ezpass",
		Short: "Convert EZ-Pass statement PDFs into spreadsheets",
		Long: `ezpass extracts transaction activity from EZ-Pass toll statement
PDFs and writes it to an Excel workbook or CSV file.

It understands the newer lane-id layout, the older double-date layout,
and fee/payment rows, keeps statement dates verbatim as MM/DD/YY text,
and optionally pulls account-level summary fields from each statement.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
