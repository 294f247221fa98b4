package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ezpass v%s\n", version)
		},
	}
}
