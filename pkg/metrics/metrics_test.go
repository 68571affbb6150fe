package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveBackend(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "drivetail-dashboard")

	m.ObserveBackend("PATCH", "ticket", "ok", 15*time.Millisecond)
	m.ObserveBackend("PATCH", "ticket", "ok", 5*time.Millisecond)
	m.ObserveBackend("PATCH", "ticket", "transport_error", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BackendRequestsTotal.WithLabelValues("PATCH", "ticket", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendRequestsTotal.WithLabelValues("PATCH", "ticket", "transport_error")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBackend("GET", "slot", "ok", time.Second)
		m.IncActivityError()
		m.IncSlotBatch("created")
	})
}
