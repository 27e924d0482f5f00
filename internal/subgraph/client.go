package subgraph

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"subgraphScope/internal/model"
)

// Client runs the dashboard query against a subgraph endpoint.
type Client struct {
	endpoint string
	gql      *graphql.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewClient creates a subgraph client. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("subgraph endpoint is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := &http.Client{Timeout: timeout}
	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		logger.Debug("graphql", zap.String("msg", s))
	}

	return &Client{
		endpoint: endpoint,
		gql:      gql,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Endpoint returns the configured subgraph URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch issues the dashboard query and returns a fresh snapshot.
func (c *Client) Fetch(ctx context.Context) (model.Snapshot, error) {
	req := graphql.NewRequest(dashboardQuery)

	var resp dashboardResponse
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return model.Snapshot{}, fmt.Errorf("query subgraph: %w", err)
	}

	snapshot := buildSnapshot(resp, c.now())
	c.logger.Debug("subgraph fetched",
		zap.String("endpoint", c.endpoint),
		zap.Int("pools", len(snapshot.Pools)),
		zap.Int("tokens", len(snapshot.Tokens)),
		zap.Int("swaps", len(snapshot.Swaps)),
	)
	return snapshot, nil
}
