// Package seoapi provides an HTTP client for the SEO backend.
//
// The backend owns customers, keyword rankings, competitors and reports;
// the website only reads them and triggers actions. All endpoints live
// under /api/seo.
package seoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"

	"github.com/swedensai/seo-website/internal/config"
	"github.com/swedensai/seo-website/pkg/logger"
)

// Module provides the SEO backend client as an fx module
var Module = fx.Module("seoapi",
	fx.Provide(NewClientFromConfig),
)

const userAgent = "swedensai-website/1.0"

// Client is an HTTP client for the SEO backend
type Client struct {
	http *resty.Client
	base string
	log  *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds every request. Zero means no client side timeout;
	// the request context still applies.
	Timeout time.Duration
	// HTTPClient replaces the underlying transport (tests).
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a new SEO backend client
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	return &Client{
		http: rc,
		base: opts.BaseURL,
		log:  log.With(logger.Scope("seoapi")),
	}, nil
}

// NewClientFromConfig creates the client from website configuration
func NewClientFromConfig(cfg *config.Config, log *slog.Logger) (*Client, error) {
	return NewClient(Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  log,
	})
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.base
}

// ---------------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------------

// CreateCustomer signs up a new customer.
// POST /api/seo/customers
func (c *Client) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*CreateCustomerResponse, error) {
	var out CreateCustomerResponse
	if err := c.do(ctx, http.MethodPost, "/api/seo/customers", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboard returns the dashboard snapshot for a customer.
// GET /api/seo/customers/{id}/dashboard
func (c *Client) GetDashboard(ctx context.Context, customerID int64) (*DashboardSnapshot, error) {
	var out DashboardSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/seo/customers/{id}/dashboard", idParam(customerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateReport asks the backend to generate a new report, with PDF.
// POST /api/seo/customers/{id}/generate-report
func (c *Client) GenerateReport(ctx context.Context, customerID int64) (*GenerateReportResponse, error) {
	var out GenerateReportResponse
	body := &GenerateReportRequest{GeneratePDF: true}
	if err := c.do(ctx, http.MethodPost, "/api/seo/customers/{id}/generate-report", idParam(customerID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze runs a fresh SEO analysis for a customer.
// POST /api/seo/customers/{id}/analyze
func (c *Client) Analyze(ctx context.Context, customerID int64) (*AnalyzeResponse, error) {
	var out AnalyzeResponse
	if err := c.do(ctx, http.MethodPost, "/api/seo/customers/{id}/analyze", idParam(customerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContentIdeas returns AI generated content ideas for a customer.
// GET /api/seo/customers/{id}/content-ideas
func (c *Client) GetContentIdeas(ctx context.Context, customerID int64) (*ContentIdeas, error) {
	var out ContentIdeas
	if err := c.do(ctx, http.MethodGet, "/api/seo/customers/{id}/content-ideas", idParam(customerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// ReportPDF is a streamed PDF download. The caller must close Body.
type ReportPDF struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	Filename      string
}

// DownloadReportPDF streams the PDF of a report.
// GET /api/seo/reports/{id}/pdf
func (c *Client) DownloadReportPDF(ctx context.Context, reportID int64) (*ReportPDF, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "application/pdf").
		SetPathParams(idParam(reportID)).
		Get("/api/seo/reports/{id}/pdf")
	if err != nil {
		return nil, fmt.Errorf("report pdf request failed: %w", err)
	}

	raw := resp.RawResponse
	if resp.IsError() {
		defer raw.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(raw.Body, 64<<10))
		return nil, parseError(resp.StatusCode(), body)
	}

	pdf := &ReportPDF{
		Body:          raw.Body,
		ContentType:   raw.Header.Get("Content-Type"),
		ContentLength: raw.ContentLength,
		Filename:      fmt.Sprintf("seo_report_%d.pdf", reportID),
	}
	if pdf.ContentType == "" {
		pdf.ContentType = "application/pdf"
	}
	if _, params, err := mime.ParseMediaType(raw.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		pdf.Filename = params["filename"]
	}
	return pdf, nil
}

// ---------------------------------------------------------------------------
// Health
// ---------------------------------------------------------------------------

// Health checks that the backend is reachable.
// GET /api/seo/health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/seo/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

// do executes a JSON request. Non-2xx answers come back as *Error, every
// other failure is a wrapped transport or decoding error.
func (c *Client) do(ctx context.Context, method, path string, params map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetPathParams(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Warn("backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("latency", time.Since(start)),
			logger.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	c.log.Debug("backend request",
		slog.String("method", method),
		slog.String("url", resp.Request.URL),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("latency", resp.Time()),
	)

	if resp.IsError() {
		return parseError(resp.StatusCode(), resp.Body())
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}
