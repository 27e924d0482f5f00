package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"subgraphScope/internal/explorer"
	"subgraphScope/internal/paginate"
	"subgraphScope/internal/subgraph"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "Uniswap V3 subgraph dashboard",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE:  runServe,
	}

	serveCmd.Flags().String("endpoint", subgraph.DefaultEndpoint, "subgraph GraphQL endpoint")
	serveCmd.Flags().String("explorer", explorer.DefaultBaseURL, "block explorer base URL")
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().Int("page-size", paginate.DefaultPageSize, "rows per table page")
	serveCmd.Flags().Duration("request-timeout", 30*time.Second, "subgraph request timeout")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Fetch once and print rows as JSON lines",
		RunE:  runDump,
	}

	dumpCmd.Flags().String("endpoint", subgraph.DefaultEndpoint, "subgraph GraphQL endpoint")
	dumpCmd.Flags().Duration("request-timeout", 30*time.Second, "subgraph request timeout")
	dumpCmd.Flags().StringSlice("tables", nil, "tables to print (pools,tokens,swaps); empty means all")
	dumpCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(dumpCmd)

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
