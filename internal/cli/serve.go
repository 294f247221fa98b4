package cli

import (
	"github.com/spf13/cobra"

	"github.com/Torinad2/EZ-Pass/internal/api"
	"github.com/Torinad2/EZ-Pass/internal/logger"
)

// NewServeCommand creates the serve command, which exposes the
// converter over HTTP.
func NewServeCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		Long: `Start an HTTP server with two endpoints:

  POST /api/convert   multipart PDF upload, returns parsed records as JSON
  GET  /api/health    liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			log := logger.New(verbose)
			app := api.NewApp(cfg, log)

			log.Info().Str("addr", addr).Msg("listening")
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
