// main is the entry point of the profile page server.
//
// STARTUP SEQUENCE:
//  1. Load configuration from the environment (and an optional YAML file)
//  2. Initialise the logger
//  3. Build the profile handler; it answers every request
//  4. Start the HTTP server in a separate goroutine
//  5. Block until an OS signal (Ctrl+C / kill) arrives
//  6. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	PORT=3000 go run ./cmd/profile-page
//
// or with a config file:
//
//	go run ./cmd/profile-page --config=config/local.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/profile-page/internal/config"
	"github.com/aanand-mishra/profile-page/internal/http/handlers/profile"
	"github.com/aanand-mishra/profile-page/internal/types"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "profile-page",
		Short: "Serve the student profile page",
		Long: "Starts an HTTP server that answers every request with the student profile page.\n\n" +
			config.Description(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(configPath)
			log := setupLogger(cfg.Env, cmd.OutOrStdout())

			p, err := types.NewProfile(types.DefaultName, types.DefaultClass, types.DefaultRollNo)
			if err != nil {
				log.Error("invalid profile", slog.String("error", err.Error()))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := newServer(cfg, p)

			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				log.Error("failed to listen",
					slog.String("address", server.Addr),
					slog.String("error", err.Error()))
				return err
			}

			log.Info("Server running on port "+cfg.Port, slog.String("env", cfg.Env))

			if err := run(ctx, log, server, ln); err != nil {
				log.Error("server encountered an error", slog.String("error", err.Error()))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to an optional configuration YAML file")

	return cmd
}

// newServer wires the profile handler into an http.Server listening on the
// configured port. There is no router: the handler sees every request.
func newServer(cfg *config.Config, p types.Profile) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: profile.New(p),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// run serves on ln until ctx is cancelled, then shuts the server down,
// giving in-flight requests shutdownTimeout to finish.
func run(ctx context.Context, log *slog.Logger, server *http.Server, ln net.Listener) error {
	serveErr := make(chan error, 1)

	go func() {
		// Serve returns http.ErrServerClosed once Shutdown is called.
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}

// setupLogger returns a *slog.Logger writing to w, configured for the given
// environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging (staging): JSON output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
