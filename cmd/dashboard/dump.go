package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"subgraphScope/internal/config"
	"subgraphScope/internal/storage"
	"subgraphScope/internal/subgraph"
)

func runDump(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDump(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, err := subgraph.NewClient(cfg.Endpoint, cfg.RequestTimeout, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("dump start",
		zap.String("endpoint", client.Endpoint()),
		zap.Strings("tables", cfg.Tables),
	)

	snapshot, err := client.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	sink := storage.NewJsonlWriter(cmd.OutOrStdout())
	if err := sink.PutSnapshot(snapshot, cfg.Tables); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}

	logger.Info("dump complete",
		zap.Int("pools", len(snapshot.Pools)),
		zap.Int("tokens", len(snapshot.Tokens)),
		zap.Int("swaps", len(snapshot.Swaps)),
	)
	return nil
}
