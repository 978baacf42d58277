// Command unquoted serves daily cryptoquip puzzles over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bojanrajkovic/unquote/internal/engine"
	"github.com/bojanrajkovic/unquote/internal/gameid"
	"github.com/bojanrajkovic/unquote/internal/quotes"
	"github.com/bojanrajkovic/unquote/internal/server"
	"github.com/bojanrajkovic/unquote/internal/store"
	"github.com/bojanrajkovic/unquote/internal/telemetry"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "unquoted",
		Short:         "Daily cryptoquip puzzle server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error("unquoted exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parseLevel(cfg.LogLevel),
	})

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, "unquoted")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	src := quotes.NewSource(cfg.QuotesFile)
	if err := src.Load(); err != nil {
		return err
	}
	n, _ := src.Len()
	logger.Info("loaded quote corpus", "path", cfg.QuotesFile, "quotes", n)

	codec, err := gameid.New()
	if err != nil {
		return err
	}
	gen := engine.NewGenerator(src, codec)

	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("player store ready")
	} else {
		logger.Info("no DATABASE_URL set, player stats disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(cfg, logger, src, gen, codec, st).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
