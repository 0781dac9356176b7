package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBackend(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveBackend("dashboard", OutcomeSuccess)
	m.ObserveBackend("dashboard", OutcomeSuccess)
	m.ObserveBackend("dashboard", OutcomeTransport)
	m.ObserveFallback("dashboard")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BackendRequests.WithLabelValues("dashboard", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendRequests.WithLabelValues("dashboard", OutcomeTransport)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendFallbacks.WithLabelValues("dashboard")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(NewRegistry())
	m.Signups.WithLabelValues("starter", "created").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `seo_website_signups_total{outcome="created",plan="starter"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
