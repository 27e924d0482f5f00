package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"subgraphScope/internal/config"
	"subgraphScope/internal/dashboard"
	"subgraphScope/internal/explorer"
	"subgraphScope/internal/metrics"
	"subgraphScope/internal/server"
	"subgraphScope/internal/subgraph"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	links, err := explorer.New(cfg.Explorer)
	if err != nil {
		return err
	}

	client, err := subgraph.NewClient(cfg.Endpoint, cfg.RequestTimeout, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	board := dashboard.New(client, metrics.New(reg), logger)

	srv, err := server.NewServer(ctx, server.Config{
		Addr:     cfg.Listen,
		PageSize: cfg.PageSize,
		Links:    links,
	}, board, reg, logger)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	logger.Info("dashboard start",
		zap.String("endpoint", client.Endpoint()),
		zap.String("listen", cfg.Listen),
		zap.Int("page_size", cfg.PageSize),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)

	board.RefreshAsync(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	stop()
	board.Wait()

	logger.Info("dashboard stopped")
	return nil
}
