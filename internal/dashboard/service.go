// Package dashboard loads the customer dashboard and runs its quick actions.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"go.uber.org/fx"

	"github.com/swedensai/seo-website/internal/config"
	"github.com/swedensai/seo-website/internal/flash"
	"github.com/swedensai/seo-website/internal/metrics"
	"github.com/swedensai/seo-website/pkg/apperror"
	"github.com/swedensai/seo-website/pkg/logger"
	"github.com/swedensai/seo-website/pkg/seoapi"
)

var Module = fx.Module("dashboard",
	fx.Provide(NewService),
)

// Backend operation names used in logs and metrics.
const (
	opDashboard      = "dashboard"
	opGenerateReport = "generate_report"
	opAnalyze        = "analyze"
	opContentIdeas   = "content_ideas"
	opReportPDF      = "report_pdf"
)

// State is the load state of the dashboard page.
type State int

const (
	StateLoading State = iota
	StateReady
	StateReadyWithError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateReadyWithError:
		return "ready-with-error"
	default:
		return "loading"
	}
}

// View is what the dashboard page renders.
type View struct {
	State    State
	Snapshot *seoapi.DashboardSnapshot
	// Err describes why demo data is shown. Empty unless State is
	// StateReadyWithError.
	Err string
}

// Demo reports whether the view shows demo data instead of live data.
func (v View) Demo() bool {
	return v.State == StateReadyWithError
}

// NoData reports whether there is nothing at all to show.
func (v View) NoData() bool {
	return v.Snapshot == nil
}

// Service talks to the SEO backend on behalf of the configured customer.
type Service struct {
	api        *seoapi.Client
	customerID int64
	metrics    *metrics.Metrics
	log        *slog.Logger
}

// NewService creates the dashboard service.
func NewService(api *seoapi.Client, cfg *config.Config, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		api:        api,
		customerID: cfg.API.CustomerID,
		metrics:    m,
		log:        log.With(logger.Scope("dashboard")),
	}
}

// Load fetches the dashboard snapshot. It never fails: when the backend
// does not deliver, the demo snapshot is returned and the view is marked
// accordingly.
func (s *Service) Load(ctx context.Context) View {
	view := View{State: StateLoading}

	snap, err := s.api.GetDashboard(ctx, s.customerID)
	s.observe(opDashboard, err)
	if err != nil {
		s.log.Warn("dashboard unavailable, showing demo data",
			slog.Int64("customer_id", s.customerID),
			logger.Error(err),
		)
		s.metrics.ObserveFallback(opDashboard)
		view.State = StateReadyWithError
		view.Snapshot = MockSnapshot()
		view.Err = describe(err)
		return view
	}

	view.State = StateReady
	view.Snapshot = snap
	return view
}

// GenerateReport asks the backend for a new report and returns the notice
// to show afterwards.
func (s *Service) GenerateReport(ctx context.Context) flash.Message {
	resp, err := s.api.GenerateReport(ctx, s.customerID)
	s.observe(opGenerateReport, err)
	if err == nil {
		s.log.Info("report generated",
			slog.Int64("customer_id", s.customerID),
			slog.Int64("report_id", resp.ReportID),
		)
		return flash.Message{Kind: flash.Success, Text: "Report generated successfully! Check your reports section."}
	}

	s.log.Error("generate report failed", slog.Int64("customer_id", s.customerID), logger.Error(err))
	if _, ok := seoapi.AsError(err); ok {
		return flash.Message{Kind: flash.Error, Text: "Failed to generate report. Please try again."}
	}
	return flash.Message{Kind: flash.Error, Text: "Error generating report: " + describe(err)}
}

// Analyze runs an SEO analysis for the customer.
func (s *Service) Analyze(ctx context.Context) flash.Message {
	resp, err := s.api.Analyze(ctx, s.customerID)
	s.observe(opAnalyze, err)
	if err == nil {
		text := resp.Message
		if text == "" {
			text = "SEO analysis completed successfully"
		}
		return flash.Message{Kind: flash.Success, Text: text}
	}

	s.log.Error("seo analysis failed", slog.Int64("customer_id", s.customerID), logger.Error(err))
	if _, ok := seoapi.AsError(err); ok {
		return flash.Message{Kind: flash.Error, Text: "Failed to run SEO analysis. Please try again."}
	}
	return flash.Message{Kind: flash.Error, Text: "Error running SEO analysis: " + describe(err)}
}

// ContentIdeas returns content ideas for the customer.
func (s *Service) ContentIdeas(ctx context.Context) ([]seoapi.ContentSuggestion, error) {
	ideas, err := s.api.GetContentIdeas(ctx, s.customerID)
	s.observe(opContentIdeas, err)
	if err != nil {
		s.log.Warn("content ideas unavailable", slog.Int64("customer_id", s.customerID), logger.Error(err))
		return nil, err
	}
	return ideas.ContentSuggestions, nil
}

// ReportPDF opens the PDF of a report for streaming. A report without PDF
// is reported as not found.
func (s *Service) ReportPDF(ctx context.Context, reportID int64) (*seoapi.ReportPDF, error) {
	pdf, err := s.api.DownloadReportPDF(ctx, reportID)
	s.observe(opReportPDF, err)
	if err == nil {
		return pdf, nil
	}
	if seoapi.IsNotFound(err) {
		return nil, apperror.NewNotFound("Report", strconv.FormatInt(reportID, 10))
	}
	return nil, apperror.NewBadGateway(err)
}

func (s *Service) observe(op string, err error) {
	s.metrics.ObserveBackend(op, outcome(err))
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if _, ok := seoapi.AsError(err); ok {
		return metrics.OutcomeHTTPError
	}
	return metrics.OutcomeTransport
}

// describe turns a backend error into text suitable for visitors. Transport
// details such as addresses stay in the logs.
func describe(err error) string {
	if apiErr, ok := seoapi.AsError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("the SEO service answered with status %d", apiErr.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "the SEO service did not respond in time"
	}
	return "the SEO service could not be reached"
}
