package dashboard

import (
	"encoding/json"
	"time"

	"github.com/swedensai/seo-website/pkg/seoapi"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// MockSnapshot is the demo data shown when the backend cannot be reached.
// It returns a fresh copy on every call.
func MockSnapshot() *seoapi.DashboardSnapshot {
	return &seoapi.DashboardSnapshot{
		Customer: seoapi.Customer{
			Name:             "Demo Customer",
			Email:            "demo@example.com",
			WebsiteURL:       "https://example.com",
			TargetKeywords:   []string{"SEO services", "digital marketing", "website optimization"},
			SubscriptionPlan: seoapi.PlanProfessional,
		},
		Stats: seoapi.Stats{
			TotalKeywords:       15,
			RankingImprovements: 8,
			AvgSearchVolume:     2500,
			TotalCompetitors:    12,
		},
		Keywords: []seoapi.Keyword{
			{Keyword: "SEO services", CurrentRank: intPtr(3), PreviousRank: intPtr(5), SearchVolume: intPtr(5000), Difficulty: floatPtr(65)},
			{Keyword: "digital marketing", CurrentRank: intPtr(7), PreviousRank: intPtr(9), SearchVolume: intPtr(8000), Difficulty: floatPtr(70)},
			{Keyword: "website optimization", CurrentRank: intPtr(12), PreviousRank: intPtr(15), SearchVolume: intPtr(1200), Difficulty: floatPtr(45)},
		},
		Competitors: []seoapi.Competitor{
			{CompetitorURL: "competitor1.com", CompetitorRank: intPtr(2)},
			{CompetitorURL: "competitor2.com", CompetitorRank: intPtr(4)},
			{CompetitorURL: "competitor3.com", CompetitorRank: intPtr(6)},
		},
		RecentReports: []seoapi.Report{
			{
				ID:         1,
				ReportDate: seoapi.NewTime(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
				AIAnalysis: json.RawMessage(`"Recent analysis shows improvement"`),
			},
		},
	}
}
