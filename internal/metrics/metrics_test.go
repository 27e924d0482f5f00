package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFetchStartedRecordsResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	done := m.FetchStarted()
	if got := testutil.ToFloat64(m.inFlight); got != 1 {
		t.Fatalf("in flight should be 1, got %v", got)
	}
	done(nil)

	m.FetchStarted()(errors.New("boom"))
	m.FetchStarted()(errors.New("boom"))

	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("in flight should be 0, got %v", got)
	}
	if got := testutil.ToFloat64(m.fetchesTotal.WithLabelValues(ResultSuccess)); got != 1 {
		t.Fatalf("success count mismatch: %v", got)
	}
	if got := testutil.ToFloat64(m.fetchesTotal.WithLabelValues(ResultError)); got != 2 {
		t.Fatalf("error count mismatch: %v", got)
	}
}

func TestSetItems(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.SetItems(3, 2, 1)

	if got := testutil.ToFloat64(m.items.WithLabelValues("pools")); got != 3 {
		t.Fatalf("pools gauge mismatch: %v", got)
	}
	if got := testutil.ToFloat64(m.items.WithLabelValues("swaps")); got != 1 {
		t.Fatalf("swaps gauge mismatch: %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.FetchStarted()(nil)
	m.SetItems(1, 1, 1)
}
