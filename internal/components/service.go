package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type deliverable struct {
	Emoji string
	Color string
	Title string
	Text  string
}

var serviceSteps = []featureCard{
	{"lucide--search", "blue", "AI Scans Your Website", "Our advanced AI analyzes your website's technical SEO, content quality, and current keyword rankings across all major search engines."},
	{"lucide--users", "green", "Competitor Intelligence", "AI identifies your top competitors and analyzes their strategies, content gaps, and ranking opportunities you can exploit."},
	{"lucide--file-text", "purple", "Actionable Reports", "Receive detailed monthly reports with specific recommendations, content ideas, and a clear roadmap to improve your rankings."},
}

var technology = []featureCard{
	{"lucide--cpu", "blue", "AI-Powered Analysis", "Machine learning algorithms process millions of data points to identify ranking patterns and optimization opportunities."},
	{"lucide--globe", "green", "Real-Time Monitoring", "Continuous tracking of your rankings, competitor movements, and algorithm updates across all search engines."},
	{"lucide--bar-chart-3", "purple", "Predictive Insights", "Advanced forecasting models predict ranking changes and suggest proactive optimizations before competitors catch up."},
	{"lucide--file-text", "orange", "Content Generation", "AI creates ready-to-publish content ideas, meta descriptions, and optimization suggestions tailored to your industry."},
}

var deliverables = []deliverable{
	{"📊", "blue", "Ranking Reports", "Detailed position tracking for all your keywords"},
	{"🔍", "green", "Competitor Analysis", "What your competitors are doing to outrank you"},
	{"✍️", "purple", "Content Ideas", "Ready-to-publish blog posts and page content"},
	{"🛠️", "orange", "Technical Fixes", "Specific technical SEO improvements to implement"},
}

func ServicePage() g.Node {
	return Div(
		Class("min-h-screen bg-white"),
		Div(
			Class("bg-gradient-to-r from-blue-600 to-indigo-700 text-white py-16"),
			Div(
				Class("container mx-auto px-4 text-center"),
				H1(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text("Our AI checks your website, competitors, and keywords")),
				P(
					Class("text-xl opacity-90 max-w-3xl mx-auto"),
					g.Text("Advanced artificial intelligence analyzes your SEO performance 24/7, delivering insights that would take hours of manual work."),
				),
			),
		),

		Div(
			Class("container mx-auto px-4 py-16"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text("How Our AI-Powered System Works")),
				P(Class("text-lg text-gray-600 max-w-2xl mx-auto"), g.Text("Three simple steps to transform your SEO performance with cutting-edge technology")),
			),

			Div(
				Class("grid md:grid-cols-3 gap-8 mb-16"),
				g.Group(serviceStepNodes()),
			),

			Div(
				Class("bg-gray-50 rounded-2xl p-8 md:p-12 mb-16"),
				H2(Class("text-3xl font-bold text-center mb-12"), g.Text("Powered by Advanced Technology")),
				Div(
					Class("grid md:grid-cols-2 gap-8"),
					g.Group(g.Map(technology, func(f featureCard) g.Node {
						return Div(
							Class("flex items-start space-x-4"),
							IconBadge(f.Icon, f.Color, "rounded-lg"),
							Div(
								H3(Class("text-xl font-semibold mb-2"), g.Text(f.Title)),
								P(Class("text-gray-600"), g.Text(f.Text)),
							),
						)
					})),
				),
			),

			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl font-bold mb-8"), g.Text("What You Get Every Month")),
				Div(
					Class("grid md:grid-cols-2 lg:grid-cols-4 gap-6"),
					g.Group(g.Map(deliverables, func(d deliverable) g.Node {
						return Div(
							Class("bg-white border border-gray-200 rounded-lg p-6 hover:shadow-lg transition-shadow"),
							Div(Class(fmt.Sprintf("text-2xl font-bold text-%s-600 mb-2", d.Color)), g.Text(d.Emoji)),
							H3(Class("font-semibold mb-2"), g.Text(d.Title)),
							P(Class("text-sm text-gray-600"), g.Text(d.Text)),
						)
					})),
				),
			),

			Div(
				Class("text-center"),
				H2(Class("text-3xl font-bold mb-4"), g.Text("Ready to see what AI can do for your SEO?")),
				P(Class("text-lg text-gray-600 mb-8"), g.Text("Get your first AI-powered SEO report and start ranking higher today.")),
				LinkButton("/pricing", "text-lg px-8 py-4 text-white bg-blue-600 hover:bg-blue-700",
					g.Text("Get Started Now"),
					arrowRight(),
				),
			),
		),
	)
}

func serviceStepNodes() []g.Node {
	nodes := make([]g.Node, 0, len(serviceSteps))
	for i, s := range serviceSteps {
		nodes = append(nodes, Div(
			Class("text-center"),
			Div(
				Class(fmt.Sprintf("w-16 h-16 bg-%s-100 rounded-full flex items-center justify-center mx-auto mb-6", s.Color)),
				Icon(fmt.Sprintf("%s h-8 w-8 text-%s-600", s.Icon, s.Color), ""),
			),
			Div(
				Class(fmt.Sprintf("bg-%s-600 text-white rounded-full w-8 h-8 flex items-center justify-center mx-auto mb-4 text-sm font-bold", s.Color)),
				g.Textf("%d", i+1),
			),
			H3(Class("text-xl font-semibold mb-3"), g.Text(s.Title)),
			P(Class("text-gray-600"), g.Text(s.Text)),
		))
	}
	return nodes
}
