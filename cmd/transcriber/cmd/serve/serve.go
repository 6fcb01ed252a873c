package serve

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-transcriber/internal/api/server"
	"audio-transcriber/internal/app"
)

const shutdownTimeout = 30 * time.Second

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload page and JSON API",
	Long: `Start the upload page and JSON API.

Listens on TRANSCRIBER_HOST:TRANSCRIBER_PORT (default 0.0.0.0:8501). The page is served
at /, the JSON API at /api/v1/transcriptions, with /health, /metrics and /swagger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := app.Bootstrap(ctx, verbose)
		if err != nil {
			return err
		}
		defer application.Close()

		return run(ctx, application)
	},
}

func run(ctx context.Context, application *app.Application) error {
	settings := application.Settings

	srv, err := server.NewServer(server.Config{
		Host:           settings.Host,
		Port:           settings.Port,
		ReadTimeout:    settings.ReadTimeout,
		WriteTimeout:   settings.WriteTimeout(),
		IdleTimeout:    settings.IdleTimeout,
		Environment:    settings.Environment,
		ServiceName:    application.ServiceName(),
		MaxUploadBytes: settings.MaxUploadBytes(),
	}, application.Service, application.Registry, application.Logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	application.Logger.Info("Shutdown signal received", zap.String("address", srv.Addr()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
