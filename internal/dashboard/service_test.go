package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swedensai/seo-website/internal/config"
	"github.com/swedensai/seo-website/internal/flash"
	"github.com/swedensai/seo-website/internal/metrics"
	"github.com/swedensai/seo-website/pkg/apperror"
	"github.com/swedensai/seo-website/pkg/seoapi"
	"github.com/swedensai/seo-website/pkg/seoapi/testutil"
)

const dashboardPath = "/api/seo/customers/7/dashboard"

func newTestService(t *testing.T, baseURL string) (*Service, *metrics.Metrics) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	api, err := seoapi.NewClient(seoapi.Options{BaseURL: baseURL, Timeout: 2 * time.Second, Logger: log})
	require.NoError(t, err)

	cfg := &config.Config{API: config.APIConfig{BaseURL: baseURL, CustomerID: 7}}
	m := metrics.New(prometheus.NewRegistry())
	return NewService(api, cfg, m, log), m
}

func TestLoad_Success(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnJSON(http.MethodGet, dashboardPath, http.StatusOK, testutil.FixtureSnapshot())

	svc, m := newTestService(t, ms.URL)
	view := svc.Load(context.Background())

	assert.Equal(t, StateReady, view.State)
	assert.False(t, view.Demo())
	assert.False(t, view.NoData())
	assert.Empty(t, view.Err)
	require.NotNil(t, view.Snapshot)
	assert.Equal(t, "Malmö Rör AB", view.Snapshot.Customer.Name)
	assert.Equal(t, 1234567, view.Snapshot.Stats.AvgSearchVolume)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.BackendRequests.WithLabelValues(opDashboard, metrics.OutcomeSuccess)))
}

func TestLoad_ServerErrorFallsBackToMock(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnError(http.MethodGet, dashboardPath, http.StatusInternalServerError, "database is down")

	svc, m := newTestService(t, ms.URL)
	view := svc.Load(context.Background())

	assert.Equal(t, StateReadyWithError, view.State)
	assert.True(t, view.Demo())
	assert.Equal(t, MockSnapshot(), view.Snapshot)
	assert.Equal(t, "database is down", view.Err)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.BackendFallbacks.WithLabelValues(opDashboard)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.BackendRequests.WithLabelValues(opDashboard, metrics.OutcomeHTTPError)))
}

func TestLoad_UnreachableFallsBackToMock(t *testing.T) {
	ms := testutil.NewMockServer(t)
	url := ms.URL
	ms.Close()

	svc, m := newTestService(t, url)
	view := svc.Load(context.Background())

	assert.Equal(t, StateReadyWithError, view.State)
	assert.Equal(t, MockSnapshot(), view.Snapshot)
	assert.Equal(t, "the SEO service could not be reached", view.Err)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.BackendRequests.WithLabelValues(opDashboard, metrics.OutcomeTransport)))
}

func TestGenerateReport(t *testing.T) {
	const path = "/api/seo/customers/7/generate-report"

	t.Run("success", func(t *testing.T) {
		ms := testutil.NewMockServer(t)
		ms.OnJSON(http.MethodPost, path, http.StatusOK, map[string]any{"message": "Report generated successfully", "report_id": 32})

		svc, _ := newTestService(t, ms.URL)
		msg := svc.GenerateReport(context.Background())

		assert.Equal(t, flash.Message{Kind: flash.Success, Text: "Report generated successfully! Check your reports section."}, msg)

		req, ok := ms.LastRequest(http.MethodPost, path)
		require.True(t, ok)
		assert.Equal(t, true, testutil.DecodeBody(t, req)["generate_pdf"])
	})

	t.Run("backend error", func(t *testing.T) {
		ms := testutil.NewMockServer(t)
		ms.OnError(http.MethodPost, path, http.StatusInternalServerError, "openai quota exceeded")

		svc, _ := newTestService(t, ms.URL)
		msg := svc.GenerateReport(context.Background())

		assert.Equal(t, flash.Error, msg.Kind)
		assert.Equal(t, "Failed to generate report. Please try again.", msg.Text)
	})

	t.Run("unreachable", func(t *testing.T) {
		ms := testutil.NewMockServer(t)
		url := ms.URL
		ms.Close()

		svc, _ := newTestService(t, url)
		msg := svc.GenerateReport(context.Background())

		assert.Equal(t, flash.Error, msg.Kind)
		assert.Equal(t, "Error generating report: the SEO service could not be reached", msg.Text)
	})
}

func TestAnalyze(t *testing.T) {
	const path = "/api/seo/customers/7/analyze"

	ms := testutil.NewMockServer(t)
	ms.OnJSON(http.MethodPost, path, http.StatusOK, map[string]any{"message": "SEO analysis completed", "results": map[string]any{}})

	svc, _ := newTestService(t, ms.URL)
	msg := svc.Analyze(context.Background())
	assert.Equal(t, flash.Message{Kind: flash.Success, Text: "SEO analysis completed"}, msg)

	ms.OnError(http.MethodPost, path, http.StatusNotFound, "Customer not found")
	msg = svc.Analyze(context.Background())
	assert.Equal(t, flash.Message{Kind: flash.Error, Text: "Failed to run SEO analysis. Please try again."}, msg)
}

func TestContentIdeas(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnJSON(http.MethodGet, "/api/seo/customers/7/content-ideas", http.StatusOK, testutil.FixtureContentIdeas())

	svc, _ := newTestService(t, ms.URL)
	ideas, err := svc.ContentIdeas(context.Background())

	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "10 Signs You Need an Emergency Plumber", ideas[0].Title)
}

func TestReportPDF_NotFound(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnError(http.MethodGet, "/api/seo/reports/99/pdf", http.StatusNotFound, "PDF not found")

	svc, _ := newTestService(t, ms.URL)
	_, err := svc.ReportPDF(context.Background(), 99)

	require.Error(t, err)
	appErr := apperror.From(err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "Report '99' not found", appErr.Message)
}

func TestReportPDF_BackendDown(t *testing.T) {
	ms := testutil.NewMockServer(t)
	url := ms.URL
	ms.Close()

	svc, _ := newTestService(t, url)
	_, err := svc.ReportPDF(context.Background(), 31)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.From(err).HTTPStatus)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "ready-with-error", StateReadyWithError.String())
	assert.True(t, View{}.NoData())
}
