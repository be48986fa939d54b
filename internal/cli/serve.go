package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/themestudio/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and preview server",
	Long: `Start the HTTP server exposing palette generation, token resolution,
theme generation and the swatch preview page.

The listen address defaults to THEMESTUDIO_ADDR (":8080").

Examples:
  themestudio serve              # Start on the configured address
  themestudio serve --port 3000  # Start on port 3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	servePort      int
	serveConfigDir string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides THEMESTUDIO_ADDR)")
	serveCmd.Flags().StringVar(&serveConfigDir, "config-dir", "", "Config directory (default $XDG_CONFIG_HOME/themestudio)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}
	if serveConfigDir != "" {
		cfg.ConfigDir = serveConfigDir
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	return app.Run(ctx, cfg)
}
