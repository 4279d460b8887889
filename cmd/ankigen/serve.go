package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmasdeu/ankigen/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the card generator over HTTP",
	Long: `Serve starts an HTTP server with a single generation endpoint:
POST /api/cards accepts a multipart document upload and responds with the
suggested cards as JSON, or as CSV when the client sends Accept: text/csv.
Set server.api_key (or ANKIGEN_SERVER_API_KEY) to require bearer-token auth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, rules, log, err := setup()
		if err != nil {
			return err
		}

		srv := api.NewServer(rules, log, cfg)

		httpServer := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting ankigen api", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
