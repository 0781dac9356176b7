package seoapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/swedensai/seo-website/pkg/seoapi"
	"github.com/swedensai/seo-website/pkg/seoapi/testutil"
)

func newClient(t *testing.T, mock *testutil.MockServer) *seoapi.Client {
	t.Helper()
	client, err := seoapi.NewClient(seoapi.Options{BaseURL: mock.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := seoapi.NewClient(seoapi.Options{}); err == nil {
		t.Fatal("expected error for empty BaseURL")
	}
}

func TestGetDashboard(t *testing.T) {
	mock := testutil.NewMockServer(t)
	fixture := testutil.FixtureSnapshot()
	mock.OnJSON("GET", "/api/seo/customers/7/dashboard", http.StatusOK, fixture)

	snap, err := newClient(t, mock).GetDashboard(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}

	if snap.Customer.Name != fixture.Customer.Name {
		t.Errorf("customer name = %q, want %q", snap.Customer.Name, fixture.Customer.Name)
	}
	if snap.Stats != fixture.Stats {
		t.Errorf("stats = %+v, want %+v", snap.Stats, fixture.Stats)
	}
	if len(snap.Keywords) != 2 || *snap.Keywords[0].PreviousRank != 11 {
		t.Errorf("unexpected keywords: %+v", snap.Keywords)
	}
	if len(snap.RecentReports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(snap.RecentReports))
	}
	if !snap.RecentReports[0].HasAnalysis() || snap.RecentReports[1].HasAnalysis() {
		t.Error("HasAnalysis() does not match fixture")
	}
	if got := snap.RecentReports[0].ReportDate.Format("2006-01-02"); got != "2025-10-03" {
		t.Errorf("report date = %s, want 2025-10-03", got)
	}

	req, ok := mock.LastRequest("GET", "/api/seo/customers/7/dashboard")
	if !ok {
		t.Fatal("dashboard request not recorded")
	}
	if accept := req.Header.Get("Accept"); accept != "application/json" {
		t.Errorf("Accept = %q, want application/json", accept)
	}
}

func TestGetDashboardDecodesBackendTimestamps(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.On("GET", "/api/seo/customers/1/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"customer": {"name": "A", "email": "a@b.se", "website_url": "https://a.se", "target_keywords": [], "subscription_plan": "starter", "created_at": "2025-09-01T10:11:12.123456", "last_report_date": null},
			"stats": {"total_keywords": 0, "ranking_improvements": 0, "avg_search_volume": 0, "total_competitors": 0},
			"keywords": [{"keyword": "x", "current_rank": null, "previous_rank": null, "search_volume": null, "difficulty": null}],
			"competitors": [],
			"recent_reports": [{"id": 1, "report_date": "2025-09-01T00:00:00", "ai_analysis": null}]
		}`)
	})

	snap, err := newClient(t, mock).GetDashboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}
	if snap.Customer.CreatedAt == nil || snap.Customer.CreatedAt.Year() != 2025 {
		t.Errorf("created_at not parsed: %v", snap.Customer.CreatedAt)
	}
	if snap.Customer.LastReportDate != nil && !snap.Customer.LastReportDate.IsZero() {
		t.Errorf("last_report_date should be empty, got %v", snap.Customer.LastReportDate)
	}
	if snap.Keywords[0].CurrentRank != nil {
		t.Error("null current_rank should decode to nil")
	}
	if snap.RecentReports[0].HasAnalysis() {
		t.Error("null ai_analysis should not count as analysis")
	}
}

func TestGetDashboardServerError(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.OnError("GET", "/api/seo/customers/1/dashboard", http.StatusInternalServerError, "database is down")

	_, err := newClient(t, mock).GetDashboard(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := seoapi.AsError(err)
	if !ok {
		t.Fatalf("expected *seoapi.Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Message != "database is down" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestGetDashboardTransportError(t *testing.T) {
	mock := testutil.NewMockServer(t)
	client := newClient(t, mock)
	mock.Close()

	_, err := client.GetDashboard(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if _, ok := seoapi.AsError(err); ok {
		t.Error("transport failure must not be reported as a backend answer")
	}
}

func TestGetDashboardMalformedBody(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.On("GET", "/api/seo/customers/1/dashboard", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>maintenance</html>")
	})

	_, err := newClient(t, mock).GetDashboard(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestCreateCustomer(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.OnJSON("POST", "/api/seo/customers", http.StatusCreated, testutil.FixtureCreateCustomerResponse())

	resp, err := newClient(t, mock).CreateCustomer(context.Background(), &seoapi.CreateCustomerRequest{
		Name:             "Anna",
		Email:            "anna@example.se",
		WebsiteURL:       "https://example.se",
		TargetKeywords:   "restaurant Stockholm, lunch Södermalm",
		SubscriptionPlan: seoapi.PlanStarter,
	})
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}
	if id, ok := resp.CustomerID(); !ok || id != 12 {
		t.Errorf("CustomerID() = %d, %v; want 12, true", id, ok)
	}

	req, _ := mock.LastRequest("POST", "/api/seo/customers")
	body := testutil.DecodeBody(t, req)
	want := map[string]any{
		"name":              "Anna",
		"email":             "anna@example.se",
		"website_url":       "https://example.se",
		"target_keywords":   "restaurant Stockholm, lunch Södermalm",
		"subscription_plan": "starter",
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %v, want %v", k, body[k], v)
		}
	}
	if len(body) != len(want) {
		t.Errorf("unexpected extra fields in body: %v", body)
	}
}

func TestCreateCustomerConflict(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.OnError("POST", "/api/seo/customers", http.StatusConflict, "Customer with this email already exists")

	_, err := newClient(t, mock).CreateCustomer(context.Background(), &seoapi.CreateCustomerRequest{Email: "dup@example.se"})
	if !seoapi.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if seoapi.IsBadRequest(err) || seoapi.IsNotFound(err) {
		t.Error("status helpers should be exclusive")
	}
}

func TestGenerateReport(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.OnJSON("POST", "/api/seo/customers/3/generate-report", http.StatusOK, map[string]any{
		"message":   "AI report generated successfully",
		"report_id": 99,
	})

	resp, err := newClient(t, mock).GenerateReport(context.Background(), 3)
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}
	if resp.ReportID != 99 {
		t.Errorf("ReportID = %d, want 99", resp.ReportID)
	}

	req, _ := mock.LastRequest("POST", "/api/seo/customers/3/generate-report")
	body := testutil.DecodeBody(t, req)
	if body["generate_pdf"] != true {
		t.Errorf("generate_pdf = %v, want true", body["generate_pdf"])
	}
}

func TestAnalyzeAndContentIdeas(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.OnJSON("POST", "/api/seo/customers/3/analyze", http.StatusOK, map[string]any{"message": "SEO analysis completed successfully"})
	mock.OnJSON("GET", "/api/seo/customers/3/content-ideas", http.StatusOK, testutil.FixtureContentIdeas())
	client := newClient(t, mock)

	analysis, err := client.Analyze(context.Background(), 3)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis.Message != "SEO analysis completed successfully" {
		t.Errorf("message = %q", analysis.Message)
	}

	ideas, err := client.GetContentIdeas(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetContentIdeas() error = %v", err)
	}
	if len(ideas.ContentSuggestions) != 2 {
		t.Errorf("expected 2 suggestions, got %d", len(ideas.ContentSuggestions))
	}
}

func TestGetContentIdeasStringList(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.On("GET", "/api/seo/customers/3/content-ideas", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"customer_id": 3, "content_suggestions": ["Guide to plumbing in Malmö", "Winter pipe care"]}`)
	})
	client := newClient(t, mock)

	ideas, err := client.GetContentIdeas(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetContentIdeas() error = %v", err)
	}
	if len(ideas.ContentSuggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(ideas.ContentSuggestions))
	}
	if got := ideas.ContentSuggestions[1].Title; got != "Winter pipe care" {
		t.Errorf("title = %q", got)
	}
}

func TestDownloadReportPDF(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.On("GET", "/api/seo/reports/31/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="seo_report_7_20251003.pdf"`)
		_, _ = io.WriteString(w, "%PDF-1.4 fake")
	})
	mock.OnError("GET", "/api/seo/reports/32/pdf", http.StatusNotFound, "PDF not found")
	client := newClient(t, mock)

	pdf, err := client.DownloadReportPDF(context.Background(), 31)
	if err != nil {
		t.Fatalf("DownloadReportPDF() error = %v", err)
	}
	defer pdf.Body.Close()

	data, _ := io.ReadAll(pdf.Body)
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("body = %q", data)
	}
	if pdf.Filename != "seo_report_7_20251003.pdf" {
		t.Errorf("filename = %q", pdf.Filename)
	}

	_, err = client.DownloadReportPDF(context.Background(), 32)
	if !seoapi.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	mock := testutil.NewMockServer(t)
	mock.On("GET", "/api/seo/health", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newClient(t, mock).Health(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
