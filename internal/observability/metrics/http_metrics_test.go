package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetrics_Observe(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetrics(registry)

	m.Observe("/v1/quotes", "POST", 200, 25*time.Millisecond)
	m.Observe("/v1/quotes", "POST", 200, 30*time.Millisecond)
	m.Observe("", "GET", 404, time.Millisecond)

	count := testutil.ToFloat64(m.requests.WithLabelValues("/v1/quotes", "POST", "200"))
	assert.Equal(t, float64(2), count)

	unknown := testutil.ToFloat64(m.requests.WithLabelValues("unknown", "GET", "404"))
	assert.Equal(t, float64(1), unknown)
}

func TestHTTPMetrics_NilReceiver(t *testing.T) {
	var m *HTTPMetrics
	assert.NotPanics(t, func() {
		m.Observe("/v1/quotes", "GET", 200, time.Millisecond)
	})
}
