package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRender("SupplyChain", 3*time.Millisecond)
	m.ObserveRender("SupplyChain", time.Millisecond)
	if got := testutil.ToFloat64(m.renders.WithLabelValues("SupplyChain")); got != 2 {
		t.Fatalf("expected 2 supply chain renders, got %f", got)
	}
	if samples := testutil.CollectAndCount(m.renderLatency.(prometheus.Collector)); samples != 1 {
		t.Fatalf("expected latency histogram to be collected once, got %d", samples)
	}

	m.IncArchived()
	if got := testutil.ToFloat64(m.archived); got != 1 {
		t.Fatalf("expected archived counter 1, got %f", got)
	}

	m.IncIngested()
	m.IncIngested()
	if got := testutil.ToFloat64(m.ingested); got != 2 {
		t.Fatalf("expected ingested counter 2, got %f", got)
	}

	m.SetStreamClients(4)
	if got := testutil.ToFloat64(m.streamClients); got != 4 {
		t.Fatalf("expected stream clients gauge 4, got %f", got)
	}
}

func TestNewPanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	New(reg)
}
