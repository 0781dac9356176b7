package testutil

import (
	"encoding/json"
	"time"

	"github.com/swedensai/seo-website/pkg/seoapi"
)

// Fixtures provides common test data.

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64 { return &v }
func stringPtr(v string) *string { return &v }

// FixtureSnapshot returns a realistic dashboard snapshot that differs from
// the website's built-in demo data in every field.
func FixtureSnapshot() *seoapi.DashboardSnapshot {
	return &seoapi.DashboardSnapshot{
		Customer: seoapi.Customer{
			ID:               7,
			Name:             "Malmö Rör AB",
			Email:            "info@malmoror.se",
			WebsiteURL:       "https://malmoror.se",
			TargetKeywords:   []string{"plumber Malmö", "emergency plumbing"},
			SubscriptionPlan: seoapi.PlanProfessional,
			CreatedAt:        seoapi.NewTime(time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)),
		},
		Stats: seoapi.Stats{
			TotalKeywords:       2,
			RankingImprovements: 1,
			AvgSearchVolume:     1234567,
			TotalCompetitors:    4,
		},
		Keywords: []seoapi.Keyword{
			{Keyword: "plumber Malmö", CurrentRank: intPtr(4), PreviousRank: intPtr(11), SearchVolume: intPtr(3400), Difficulty: floatPtr(38)},
			{Keyword: "emergency plumbing", CurrentRank: intPtr(9), PreviousRank: intPtr(6), SearchVolume: intPtr(900), Difficulty: floatPtr(52.5)},
		},
		Competitors: []seoapi.Competitor{
			{CompetitorURL: "vvsmalmo.se", CompetitorRank: intPtr(1)},
			{CompetitorURL: "rorjour.se", CompetitorRank: intPtr(3)},
		},
		RecentReports: []seoapi.Report{
			{ID: 31, ReportDate: seoapi.NewTime(time.Date(2025, 10, 3, 14, 0, 0, 0, time.UTC)), PDFPath: stringPtr("/reports/seo_report_7.pdf"), AIAnalysis: json.RawMessage(`"{\"executive_summary\": \"Rankings are improving\"}"`)},
			{ID: 30, ReportDate: seoapi.NewTime(time.Date(2025, 9, 3, 14, 0, 0, 0, time.UTC))},
		},
	}
}

// FixtureCreateCustomerResponse returns the answer to a successful signup.
func FixtureCreateCustomerResponse() *seoapi.CreateCustomerResponse {
	return &seoapi.CreateCustomerResponse{
		ID:      int64Ptr(12),
		Message: "Customer created successfully",
	}
}

// FixtureContentIdeas returns a list of content ideas.
func FixtureContentIdeas() *seoapi.ContentIdeas {
	return &seoapi.ContentIdeas{
		CustomerID: 7,
		ContentSuggestions: []seoapi.ContentSuggestion{
			{Title: "10 Signs You Need an Emergency Plumber", Keyword: "emergency plumbing", Type: "blog post", Description: "Checklist article targeting urgent searches."},
			{Title: "Plumbing Services in Malmö", Keyword: "plumber Malmö", Type: "landing page", Description: "Local service page with opening hours and areas served."},
		},
	}
}
