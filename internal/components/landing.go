package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type featureCard struct {
	Icon  string
	Color string
	Title string
	Text  string
}

type testimonial struct {
	Quote  string
	Author string
}

var landingFeatures = []featureCard{
	{"lucide--trending-up", "blue", "Track Rankings", "Monitor your keyword positions and see exactly where you rank compared to competitors."},
	{"lucide--target", "green", "Competitor Analysis", "Discover what your competitors are doing right and get actionable insights to outrank them."},
	{"lucide--zap", "purple", "AI-Powered Reports", "Get detailed monthly reports with content suggestions and optimization recommendations."},
}

var testimonials = []testimonial{
	{
		"\"SEO Pro transformed our online visibility. We saw a significant increase in organic traffic within the first month. Highly recommended!\"",
		"Anna Lindqvist, Marketing Director at IKEA",
	},
	{
		"\"The AI-powered reports are incredibly insightful and easy to understand. We finally have a clear roadmap for our SEO strategy.\"",
		"Erik Johansson, CEO of Spotify Sweden",
	},
	{
		"\"We used to struggle with manual SEO tasks. SwedensAi automated everything, saving us countless hours and delivering fantastic results.\"",
		"Sofia Karlsson, Digital Manager at H&M",
	},
}

func LandingPage() g.Node {
	return Div(
		Class("min-h-screen bg-gradient-to-br from-blue-50 to-indigo-100"),
		Div(
			Class("container mx-auto px-4 py-16"),
			landingHero(),

			Div(
				Class("grid md:grid-cols-3 gap-8 max-w-5xl mx-auto mt-16"),
				g.Group(g.Map(landingFeatures, func(f featureCard) g.Node {
					return Div(
						Class("bg-white p-8 rounded-xl shadow-lg hover:shadow-xl transition-shadow"),
						IconBadge(f.Icon, f.Color, "rounded-lg"),
						H3(Class("text-xl font-semibold mb-3"), g.Text(f.Title)),
						P(Class("text-gray-600"), g.Text(f.Text)),
					)
				})),
			),

			Div(
				Class("text-center mt-16"),
				P(Class("text-gray-500 mb-8"), g.Text("Trusted by businesses across Europe")),
				Div(
					Class("flex justify-center items-center space-x-8 opacity-60"),
					g.Group(g.Map([]string{"COMPANY", "BRAND", "STARTUP", "AGENCY"}, func(name string) g.Node {
						return Div(Class("text-2xl font-bold text-gray-400"), g.Text(name))
					})),
				),
			),

			Div(
				Class("py-16"),
				H2(Class("text-3xl md:text-4xl font-bold text-center text-gray-900 mb-12"), g.Text("What Our Clients Say")),
				Div(
					Class("grid md:grid-cols-3 gap-8"),
					g.Group(g.Map(testimonials, func(t testimonial) g.Node {
						return Div(
							Class("bg-white p-8 rounded-xl shadow-lg"),
							P(Class("text-gray-700 italic mb-4"), g.Text(t.Quote)),
							P(Class("font-semibold text-gray-900"), g.Text(t.Author)),
						)
					})),
				),
			),

			Div(
				Class("bg-blue-600 rounded-2xl p-8 md:p-12 text-center text-white mt-16"),
				H2(Class("text-3xl font-bold mb-4"), g.Text("Ready to dominate Google?")),
				P(Class("text-xl mb-6 opacity-90"), g.Text("Join hundreds of businesses already ranking higher with our automated SEO service.")),
				LinkButton("/pricing", "text-lg px-8 py-4 bg-white text-blue-700 hover:bg-gray-100",
					g.Text("Start Your SEO Journey"),
					arrowRight(),
				),
			),
		),
	)
}

func landingHero() g.Node {
	return Div(
		Class("text-center max-w-4xl mx-auto"),
		H1(
			Class("text-5xl md:text-6xl font-bold text-gray-900 mb-6 leading-tight"),
			g.Text("We help you rank "),
			Span(
				Class("text-blue-600 relative"),
				g.Text("higher on Google"),
				Div(Class("absolute -bottom-2 left-0 right-0 h-1 bg-blue-600 rounded-full")),
			),
		),
		P(
			Class("text-xl text-gray-600 mb-8 max-w-2xl mx-auto"),
			g.Text("Automated SEO reports, competitor analysis, and content suggestions delivered monthly. No manual work required."),
		),
		Div(
			Class("flex flex-col sm:flex-row gap-4 justify-center mb-12"),
			LinkButton("/service", "text-lg px-8 py-4 text-white bg-blue-600 hover:bg-blue-700",
				g.Text("Learn How It Works"),
				arrowRight(),
			),
			LinkButton("/pricing", "text-lg px-8 py-4 border border-blue-600 text-blue-600 hover:bg-blue-50",
				g.Text("View Pricing"),
			),
		),
	)
}
