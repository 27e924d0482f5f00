package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"subgraphScope/internal/metrics"
	"subgraphScope/internal/model"
)

// Status is the fetch state shown to the user.
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// Fetcher loads a full snapshot from the data source.
type Fetcher interface {
	Fetch(ctx context.Context) (model.Snapshot, error)
}

// Dashboard owns the last fetched snapshot and its status. A refresh
// replaces the snapshot wholesale. Overlapping refreshes are not
// coalesced; whichever finishes last wins.
type Dashboard struct {
	fetcher Fetcher
	metrics *metrics.Metrics
	logger  *zap.Logger

	mu       sync.RWMutex
	status   Status
	snapshot model.Snapshot

	wg sync.WaitGroup
}

// New builds a Dashboard in the loading state.
func New(fetcher Fetcher, m *metrics.Metrics, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		fetcher: fetcher,
		metrics: m,
		logger:  logger,
		status:  StatusLoading,
	}
}

// State returns the current status and snapshot.
func (d *Dashboard) State() (Status, model.Snapshot) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status, d.snapshot
}

// Refresh fetches synchronously. While the fetch runs the status is
// loading; afterwards it is ready with the new snapshot, or error.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.setStatus(StatusLoading)

	done := d.metrics.FetchStarted()
	snapshot, err := d.fetcher.Fetch(ctx)
	done(err)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.status = StatusError
		d.logger.Warn("refresh failed", zap.Error(err))
		return err
	}

	d.status = StatusReady
	d.snapshot = snapshot
	d.metrics.SetItems(len(snapshot.Pools), len(snapshot.Tokens), len(snapshot.Swaps))
	d.logger.Info("refresh complete",
		zap.Int("pools", len(snapshot.Pools)),
		zap.Int("tokens", len(snapshot.Tokens)),
		zap.Int("swaps", len(snapshot.Swaps)),
	)
	return nil
}

// RefreshAsync starts a refresh in the background. The status flips to
// loading before it returns.
func (d *Dashboard) RefreshAsync(ctx context.Context) {
	d.setStatus(StatusLoading)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		_ = d.Refresh(ctx)
	}()
}

// Wait blocks until background refreshes have finished.
func (d *Dashboard) Wait() {
	d.wg.Wait()
}

func (d *Dashboard) setStatus(status Status) {
	d.mu.Lock()
	d.status = status
	d.mu.Unlock()
}
