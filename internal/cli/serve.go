package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analytics dashboard",
	Long: `Load the input tables, aggregate them, and serve the dashboard on the
configured address. The server stays up until interrupted with Ctrl+C.

Example:
  retail-dashboard serve --data-dir datasets
  retail-dashboard serve --source postgres --connection postgres://localhost/retail
  retail-dashboard serve --listen :9000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "",
		"address to serve the dashboard on")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if serveListen != "" {
		cfg.Serve.Listen = serveListen
	}

	// Validate configuration
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite, campaigns, err := analyze(ctx)
	if err != nil {
		return err
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	}()

	srv := server.New(cfg.Serve.Listen, suite, campaigns)
	return srv.Run(ctx)
}
