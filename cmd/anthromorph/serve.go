package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"anthromorph/internal/core"
	"anthromorph/internal/observability"
	"anthromorph/internal/server"
)

var (
	serveTransport string
	serveAddr      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the taxonomy tools over stdio or HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "transport to serve on: stdio or http")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address for the http transport")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := DefaultServiceConfig()
	if configPath != "" {
		loaded, err := loadServiceConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if serveTransport != "" {
		cfg.Transport = serveTransport
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	logger := observability.InitLogger("anthromorph", cfg.LogConsole)
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tax, src, err := loadTaxonomy(ctx)
	if err != nil {
		return err
	}
	logger.Info().
		Str("driver", string(src.Driver())).
		Str("source", src.Description()).
		Str("version", tax.Version).
		Msg("taxonomy loaded")

	service := core.NewService(tax,
		core.WithLogger(observability.NewZerologAdapter(logger)),
		core.WithMetricsRecorder(observability.NewPrometheusRecorder()),
	)
	dispatcher := server.NewDispatcher(server.NewRegistry(service))

	switch cfg.Transport {
	case "stdio":
		logger.Info().Msg("serving on stdio")
		return server.NewStdioServer(dispatcher, logger).Serve(ctx, os.Stdin, os.Stdout)
	case "http":
		return serveHTTP(ctx, cfg.ListenAddr, dispatcher, logger)
	default:
		return fmt.Errorf("unsupported transport %q (expected stdio or http)", cfg.Transport)
	}
}

func serveHTTP(ctx context.Context, addr string, dispatcher *server.Dispatcher, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHTTPHandler(dispatcher, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg("serving on http")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
