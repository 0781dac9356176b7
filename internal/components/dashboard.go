package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/swedensai/seo-website/internal/dashboard"
	"github.com/swedensai/seo-website/pkg/seoapi"
)

const outlineButton = "inline-flex items-center rounded-md border border-gray-300 bg-white px-3 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50"

// DashboardPage renders the dashboard for view.
func DashboardPage(view dashboard.View) g.Node {
	if view.NoData() {
		return dashboardUnavailable(view.Err)
	}

	return Div(
		Class("min-h-screen bg-gray-50"),
		g.If(view.Demo(), demoBanner(view.Err)),
		DashboardBody(view.Snapshot),
	)
}

// DashboardBody renders a snapshot without any state decoration.
func DashboardBody(s *seoapi.DashboardSnapshot) g.Node {
	return g.Group([]g.Node{
		Div(
			Class("bg-white shadow-sm border-b"),
			Div(
				Class("container mx-auto px-4 py-6"),
				Div(
					Class("flex justify-between items-center"),
					Div(
						H1(Class("text-2xl font-bold text-gray-900"), g.Text("SEO Dashboard")),
						P(Class("text-gray-600"), g.Text(s.Customer.WebsiteURL)),
					),
					actionButton("/dashboard/generate-report", "bg-blue-600 hover:bg-blue-700 text-white px-4 py-2",
						Icon("lucide--file-text h-4 w-4 mr-2", ""),
						g.Text("Generate Report"),
					),
				),
			),
		),

		Div(
			Class("container mx-auto px-4 py-8"),
			statsTiles(s.Stats),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-8"),
				keywordList(s.Keywords),
				competitorList(s.Competitors),
			),
			reportList(s.RecentReports),
			quickActions(),
		),
	})
}

func demoBanner(reason string) g.Node {
	text := "Showing demo data. Your live SEO data could not be loaded right now."
	if reason != "" {
		text = fmt.Sprintf("Showing demo data. Your live SEO data could not be loaded (%s).", reason)
	}
	return Div(
		ID("demo-banner"),
		Class("bg-yellow-50 border-b border-yellow-200 text-yellow-800"),
		g.Attr("role", "status"),
		Div(
			Class("container mx-auto px-4 py-3 flex items-center gap-2 text-sm"),
			Icon("lucide--alert-triangle h-4 w-4", ""),
			Span(g.Text(text)),
			A(Href("/dashboard"), Class("ml-auto underline"), g.Text("Retry")),
		),
	)
}

func dashboardUnavailable(reason string) g.Node {
	return Div(
		Class("min-h-screen bg-gray-50 flex items-center justify-center"),
		Div(
			Class("text-center"),
			P(Class("text-red-600 mb-4"), g.Textf("Error loading dashboard: %s", reason)),
			LinkButton("/dashboard", "px-4 py-2 text-white bg-blue-600 hover:bg-blue-700", g.Text("Retry")),
		),
	)
}

type statTile struct {
	Icon  string
	Color string
	Label string
	Value int
}

func statsTiles(st seoapi.Stats) g.Node {
	tiles := []statTile{
		{"lucide--target", "blue", "Total Keywords", st.TotalKeywords},
		{"lucide--trending-up", "green", "Improvements", st.RankingImprovements},
		{"lucide--bar-chart-3", "purple", "Avg. Search Volume", st.AvgSearchVolume},
		{"lucide--users", "orange", "Competitors", st.TotalCompetitors},
	}

	return Div(
		ID("stats"),
		Class("grid grid-cols-1 md:grid-cols-4 gap-6 mb-8"),
		g.Group(g.Map(tiles, func(t statTile) g.Node {
			return Div(
				Class("bg-white p-6 rounded-lg shadow-sm"),
				Div(
					Class("flex items-center"),
					Div(
						Class(fmt.Sprintf("w-12 h-12 bg-%s-100 rounded-lg flex items-center justify-center", t.Color)),
						Icon(fmt.Sprintf("%s h-6 w-6 text-%s-600", t.Icon, t.Color), ""),
					),
					Div(
						Class("ml-4"),
						P(Class("text-sm font-medium text-gray-600"), g.Text(t.Label)),
						P(Class("text-2xl font-bold text-gray-900"), g.Attr("data-stat", t.Label), g.Text(formatNumber(t.Value))),
					),
				),
			)
		})),
	)
}

func keywordList(keywords []seoapi.Keyword) g.Node {
	return Div(
		ID("keywords"),
		Class("bg-white rounded-lg shadow-sm p-6"),
		H2(Class("text-xl font-semibold mb-6"), g.Text("Keyword Rankings")),
		Div(
			Class("space-y-4"),
			g.Group(g.Map(keywords, keywordRow)),
		),
	)
}

func keywordRow(k seoapi.Keyword) g.Node {
	return Div(
		Class("flex items-center justify-between p-4 border border-gray-200 rounded-lg"),
		Div(
			Class("flex-1"),
			H3(Class("font-medium text-gray-900"), g.Text(k.Keyword)),
			P(
				Class("text-sm text-gray-600"),
				g.Textf("%s searches/month • %s difficulty", searchVolume(k.SearchVolume), difficulty(k.Difficulty)),
			),
		),
		Div(
			Class("text-right"),
			Div(
				Class("flex items-center"),
				Span(Class("text-2xl font-bold text-gray-900"), g.Text(rank(k.CurrentRank))),
				rankIndicator(dashboard.ChangeOf(k)),
			),
		),
	)
}

func rankIndicator(c dashboard.RankChange) g.Node {
	if !c.Known {
		return nil
	}
	if c.Improved {
		return Div(
			Class("ml-2 flex items-center text-green-600"),
			g.Attr("data-trend", "up"),
			Icon("lucide--trending-up h-4 w-4", "Improved"),
			Span(Class("text-sm ml-1"), g.Text(strconv.Itoa(c.Delta))),
		)
	}
	return Div(
		Class("ml-2 flex items-center text-red-600"),
		g.Attr("data-trend", "down"),
		Icon("lucide--trending-down h-4 w-4", "Declined"),
		Span(Class("text-sm ml-1"), g.Text(strconv.Itoa(c.Delta))),
	)
}

func competitorList(competitors []seoapi.Competitor) g.Node {
	return Div(
		ID("competitors"),
		Class("bg-white rounded-lg shadow-sm p-6"),
		H2(Class("text-xl font-semibold mb-6"), g.Text("Top Competitors")),
		Div(
			Class("space-y-4"),
			g.Group(g.Map(competitors, func(c seoapi.Competitor) g.Node {
				return Div(
					Class("flex items-center justify-between p-4 border border-gray-200 rounded-lg"),
					Div(
						H3(Class("font-medium text-gray-900"), g.Text(c.CompetitorURL)),
						P(Class("text-sm text-gray-600"), g.Text("Average ranking position")),
					),
					Div(
						Class("text-right"),
						Span(Class("text-xl font-bold text-gray-900"), g.Text(rank(c.CompetitorRank))),
					),
				)
			})),
		),
	)
}

func reportList(reports []seoapi.Report) g.Node {
	return Div(
		ID("reports"),
		Class("bg-white rounded-lg shadow-sm p-6 mt-8"),
		Div(
			Class("flex justify-between items-center mb-6"),
			H2(Class("text-xl font-semibold"), g.Text("Recent Reports")),
			downloadLatest(reports),
		),

		g.If(len(reports) > 0,
			Div(
				Class("space-y-4"),
				g.Group(g.Map(reports, reportRow)),
			),
		),
		g.If(len(reports) == 0,
			Div(
				Class("text-center py-8"),
				Icon("lucide--file-text h-12 w-12 text-gray-400 mx-auto mb-4", ""),
				P(Class("text-gray-600"), g.Text("No reports generated yet")),
				actionButton("/dashboard/generate-report", "mt-4 bg-gray-900 hover:bg-gray-800 text-white px-4 py-2",
					g.Text("Generate Your First Report"),
				),
			),
		),
	)
}

func reportRow(r seoapi.Report) g.Node {
	status := "Processing..."
	if r.HasAnalysis() {
		status = "AI analysis completed"
	}

	return Div(
		Class("flex items-center justify-between p-4 border border-gray-200 rounded-lg"),
		Div(
			H3(Class("font-medium text-gray-900"), g.Text(ReportTitle(r))),
			P(Class("text-sm text-gray-600"), g.Text(status)),
		),
		g.If(r.HasPDF(), A(Href(reportPDFPath(r.ID)), Class(outlineButton), g.Text("View Report"))),
		g.If(!r.HasPDF(), Span(Class(outlineButton+" opacity-50 cursor-not-allowed"), g.Attr("aria-disabled", "true"), g.Text("View Report"))),
	)
}

func downloadLatest(reports []seoapi.Report) g.Node {
	for _, r := range reports {
		if r.HasPDF() {
			return A(
				Href(reportPDFPath(r.ID)),
				Class(outlineButton),
				Icon("lucide--download h-4 w-4 mr-2", ""),
				g.Text("Download Latest"),
			)
		}
	}
	return Span(
		Class(outlineButton+" opacity-50 cursor-not-allowed"),
		g.Attr("aria-disabled", "true"),
		Icon("lucide--download h-4 w-4 mr-2", ""),
		g.Text("Download Latest"),
	)
}

func quickActions() g.Node {
	return Div(
		Class("bg-blue-50 rounded-lg p-6 mt-8"),
		H2(Class("text-xl font-semibold mb-4"), g.Text("Quick Actions")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-4"),
			actionButton("/dashboard/analyze", "w-full justify-start "+outlineButton,
				Icon("lucide--zap h-4 w-4 mr-2", ""),
				g.Text("Run SEO Analysis"),
			),
			A(
				Href("/dashboard/content-ideas"),
				Class("justify-start "+outlineButton),
				Icon("lucide--file-text h-4 w-4 mr-2", ""),
				g.Text("View Content Ideas"),
			),
			A(
				Href("/dashboard#competitors"),
				Class("justify-start "+outlineButton),
				Icon("lucide--bar-chart-3 h-4 w-4 mr-2", ""),
				g.Text("Competitor Research"),
			),
		),
	)
}

// actionButton is a single button form posting to action.
func actionButton(action, classes string, children ...g.Node) g.Node {
	return g.El("form",
		Method("post"),
		Action(action),
		Button(
			Type("submit"),
			Class("inline-flex items-center rounded-md font-medium "+classes),
			g.Group(children),
		),
	)
}

// ReportTitle labels a report by its date, e.g. "SEO Report - 9/1/2025".
func ReportTitle(r seoapi.Report) string {
	if r.ReportDate == nil || r.ReportDate.IsZero() {
		return "SEO Report"
	}
	return "SEO Report - " + r.ReportDate.UTC().Format("1/2/2006")
}

func reportPDFPath(id int64) string {
	return fmt.Sprintf("/dashboard/reports/%d/pdf", id)
}

func rank(v *int) string {
	if v == nil {
		return "#-"
	}
	return "#" + strconv.Itoa(*v)
}

func searchVolume(v *int) string {
	if v == nil {
		return "n/a"
	}
	return formatNumber(*v)
}

func difficulty(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}
