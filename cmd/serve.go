package cmd

import (
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the calculator as an HTTP API",
	Long: "Serves the ROI engine over HTTP. Every request is an independent\n" +
		"pure computation; nothing is stored between calls.\n\n" +
		"  GET  /healthz\n" +
		"  GET  /v1/defaults\n" +
		"  GET  /v1/roi?cost=25000&rate=50&days=15\n" +
		"  POST /v1/roi  {\"car_cost\": ..., \"daily_rate\": ..., \"rental_days\": ...}",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagAddr != "" {
		cfg.Server.Addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := server.New(cfg)
	log.Printf("turoi api listening on http://%s", svc.Addr())

	return svc.Run(ctx)
}
