package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/donorscan/internal/api"
	"github.com/dgallion1/donorscan/internal/config"
)

var (
	servePort    string
	serveBackend string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the donorscan HTTP server.

Endpoints:
  POST /scrape        - tiered name extraction: {"url": "..."}
  POST /scrape-names  - flat entity list: {"url": "...", "people_only": false}
  GET  /health        - liveness check
  GET  /api/stats/ner - recognizer latency over the stats window

Examples:
  donorscan serve                     # PORT from the environment, default 8080
  donorscan serve --port 3000
  donorscan serve --backend claude    # requires ANTHROPIC_API_KEY`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		log, err := newLogger(os.Stdout)
		if err != nil {
			return err
		}

		cfg := config.Load()
		if servePort != "" {
			cfg.Port = servePort
		}
		if serveBackend != "" {
			cfg.NERBackend = serveBackend
		}

		a, err := newApp(cfg, log)
		if err != nil {
			log.Error("invalid configuration", "error", err)
			return err
		}
		defer a.Close()

		srv := api.NewServer(a.extractor, a.stats, log, cfg)

		httpServer := &http.Server{
			Addr:        ":" + cfg.Port,
			Handler:     srv,
			ReadTimeout: 30 * time.Second,
			IdleTimeout: 60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			log.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting donorscan", "port", cfg.Port, "backend", cfg.NERBackend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveBackend, "backend", "", "recognizer backend: prose or claude (overrides NER_BACKEND)")
}
