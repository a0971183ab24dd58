package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/csecompass/catalog/internal/api"
	"github.com/csecompass/catalog/internal/api/web"
	"github.com/csecompass/catalog/internal/core/service"
	"github.com/csecompass/catalog/internal/printer"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server with the resource and roadmap pages, the JSON API,
health checks, Prometheus metrics and Swagger UI.

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, sources, err := bootstrap(ctx, os.Stdout)
	if err != nil {
		return err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		_ = sources.Close(context.Background())
		return printer.Error("Failed to load templates", err.Error())
	}

	e := api.NewRouter(api.Deps{
		Resources:       service.NewResourceService(sources.Resources, log),
		Roadmaps:        service.NewRoadmapService(sources.Roadmaps, log),
		Pingers:         sources.Pingers,
		OptionalPingers: sources.OptionalPingers,
		Renderer:        renderer,
		Logger:          log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			_ = sources.Close(context.Background())
			return printer.Error("Server failed", err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := sources.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("closing record sources")
	}
	log.Info().Msg("server stopped")
	return nil
}
