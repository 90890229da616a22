// cmd/cardwallet/commands/serve.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := newApplication(ctx, os.Stdout)
			if err != nil {
				return err
			}
			if port == "" {
				port = application.Config.ServerPort
			}

			server := &http.Server{
				Addr:         ":" + port,
				Handler:      application.HTTPHandler,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				application.Logger.Info("Starting HTTP server", "port", port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case err := <-serveErr:
				if err != nil {
					application.Logger.Error("HTTP server failed to start", "error", err)
					return fmt.Errorf("listen on :%s: %w", port, err)
				}
			case <-ctx.Done():
			}

			application.Logger.Info("Shutting down HTTP server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				application.Logger.Error("HTTP server shutdown failed", "error", err)
				return err
			}
			if err := application.Shutdown(shutdownCtx); err != nil {
				application.Logger.Error("Application shutdown failed", "error", err)
				return err
			}

			application.Logger.Info("Application gracefully stopped.")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default from config)")
	return cmd
}
