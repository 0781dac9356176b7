package seoapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Plan identifiers accepted by the backend.
const (
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

// Customer is the customer profile as stored by the backend.
type Customer struct {
	ID               int64    `json:"id,omitempty"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	WebsiteURL       string   `json:"website_url"`
	TargetKeywords   []string `json:"target_keywords"`
	SubscriptionPlan string   `json:"subscription_plan"`
	CreatedAt        *Time    `json:"created_at,omitempty"`
	LastReportDate   *Time    `json:"last_report_date,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// Stats are the aggregate tiles at the top of the dashboard.
type Stats struct {
	TotalKeywords       int `json:"total_keywords"`
	RankingImprovements int `json:"ranking_improvements"`
	AvgSearchVolume     int `json:"avg_search_volume"`
	TotalCompetitors    int `json:"total_competitors"`
}

// Keyword is one tracked keyword. Ranks are search result positions, so a
// lower number is better. Every numeric field may be missing until the
// backend has analysed the keyword at least once.
type Keyword struct {
	Keyword      string   `json:"keyword"`
	CurrentRank  *int     `json:"current_rank"`
	PreviousRank *int     `json:"previous_rank"`
	SearchVolume *int     `json:"search_volume"`
	Difficulty   *float64 `json:"difficulty"`
}

// Competitor is a competing site and its average ranking position.
type Competitor struct {
	CompetitorURL  string `json:"competitor_url"`
	CompetitorRank *int   `json:"competitor_rank"`
}

// Report is a generated SEO report.
type Report struct {
	ID         int64           `json:"id"`
	ReportDate *Time           `json:"report_date"`
	PDFPath    *string         `json:"pdf_path,omitempty"`
	AIAnalysis json.RawMessage `json:"ai_analysis,omitempty"`
}

// HasAnalysis reports whether the AI analysis for the report is available.
func (r Report) HasAnalysis() bool {
	v := bytes.TrimSpace(r.AIAnalysis)
	return len(v) > 0 && !bytes.Equal(v, []byte("null")) && !bytes.Equal(v, []byte(`""`))
}

// HasPDF reports whether the backend stored a PDF for the report.
func (r Report) HasPDF() bool {
	return r.PDFPath != nil && *r.PDFPath != ""
}

// DashboardSnapshot is everything the dashboard page shows, as returned by
// one GET /api/seo/customers/{id}/dashboard call.
type DashboardSnapshot struct {
	Customer      Customer     `json:"customer"`
	Stats         Stats        `json:"stats"`
	Keywords      []Keyword    `json:"keywords"`
	Competitors   []Competitor `json:"competitors"`
	RecentReports []Report     `json:"recent_reports"`
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

// CreateCustomerRequest is the signup payload. TargetKeywords is sent as the
// raw comma separated text the visitor typed; the backend does the parsing.
type CreateCustomerRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	WebsiteURL       string `json:"website_url"`
	TargetKeywords   string `json:"target_keywords"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// CreateCustomerResponse is the backend answer to a successful signup.
type CreateCustomerResponse struct {
	ID       *int64    `json:"id,omitempty"`
	Message  string    `json:"message,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}

// CustomerID returns the id of the created customer, wherever the backend
// put it.
func (r *CreateCustomerResponse) CustomerID() (int64, bool) {
	if r.ID != nil {
		return *r.ID, true
	}
	if r.Customer != nil && r.Customer.ID != 0 {
		return r.Customer.ID, true
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// GenerateReportRequest asks the backend to build a new report.
type GenerateReportRequest struct {
	GeneratePDF bool `json:"generate_pdf"`
}

// GenerateReportResponse is returned once the report has been stored.
type GenerateReportResponse struct {
	Message  string `json:"message"`
	ReportID int64  `json:"report_id"`
}

// AnalyzeResponse is returned by a manual SEO analysis run.
type AnalyzeResponse struct {
	Message string         `json:"message"`
	Results map[string]any `json:"results,omitempty"`
}

// ContentSuggestion is one AI generated content idea. The backend passes
// model output through as-is, so an idea may arrive as a bare string or as
// an object whose fields are not all strings.
type ContentSuggestion struct {
	Title       string `json:"title"`
	Keyword     string `json:"keyword"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ContentSuggestion) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		return json.Unmarshal(data, &c.Title)
	case len(data) > 0 && data[0] != '{':
		c.Title = looseString(data)
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("content suggestion: %w", err)
	}
	*c = ContentSuggestion{
		Title:       looseString(fields["title"]),
		Keyword:     looseString(fields["keyword"]),
		Type:        looseString(fields["type"]),
		Description: looseString(fields["description"]),
	}
	return nil
}

// looseString renders a JSON value as text: strings unquoted, string lists
// joined, numbers and booleans verbatim. Anything else becomes empty.
func looseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return ""
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return ""
		}
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if s := looseString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case '{':
		return ""
	default:
		return string(raw)
	}
}

// ContentIdeas is the list of content ideas for a customer.
type ContentIdeas struct {
	CustomerID         int64               `json:"customer_id"`
	ContentSuggestions []ContentSuggestion `json:"content_suggestions"`
}

// HealthResponse is the backend health check answer.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// ---------------------------------------------------------------------------
// Time
// ---------------------------------------------------------------------------

// The backend emits ISO-8601 timestamps without a zone ("2025-09-01T00:00:00").
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time is a timestamp that accepts the backend's zone-less ISO-8601 format.
// Zone-less values are interpreted as UTC.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) *Time {
	return &Time{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format("2006-01-02T15:04:05"))
}
