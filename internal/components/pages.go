package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/swedensai/seo-website/pkg/seoapi"
)

// ContentIdeasPage lists AI generated content ideas. unavailable is set when
// the backend could not deliver them.
func ContentIdeasPage(ideas []seoapi.ContentSuggestion, unavailable bool) g.Node {
	return Div(
		Class("min-h-screen bg-gray-50"),
		Div(
			Class("container mx-auto px-4 py-8 max-w-3xl"),
			A(Href("/dashboard"), Class("text-sm text-blue-600 hover:underline"), g.Text("← Back to dashboard")),
			H1(Class("text-2xl font-bold text-gray-900 mt-4 mb-6"), g.Text("Content Ideas")),

			g.If(unavailable,
				Div(
					ID("ideas-unavailable"),
					Class("bg-yellow-50 border border-yellow-200 text-yellow-800 rounded-lg px-4 py-3"),
					g.Attr("role", "status"),
					g.Text("Content ideas are not available right now. Please try again later."),
				),
			),
			g.If(!unavailable && len(ideas) == 0,
				P(Class("text-gray-600"), g.Text("No content ideas yet. They are generated with your monthly report.")),
			),

			Div(
				Class("space-y-4"),
				g.Group(g.Map(ideas, func(idea seoapi.ContentSuggestion) g.Node {
					return Div(
						Class("bg-white rounded-lg shadow-sm p-6"),
						H2(Class("text-lg font-semibold text-gray-900"), g.Text(idea.Title)),
						g.If(idea.Keyword != "" || idea.Type != "",
							P(Class("text-sm text-blue-600 mt-1"), g.Text(ideaMeta(idea))),
						),
						g.If(idea.Description != "",
							P(Class("text-gray-600 mt-2"), g.Text(idea.Description)),
						),
					)
				})),
			),
		),
	)
}

func ideaMeta(idea seoapi.ContentSuggestion) string {
	switch {
	case idea.Keyword != "" && idea.Type != "":
		return idea.Type + " • " + idea.Keyword
	case idea.Keyword != "":
		return idea.Keyword
	default:
		return idea.Type
	}
}

// ErrorPage is shown for failed requests and unknown routes.
func ErrorPage(status int, message string) g.Node {
	return Div(
		Class("min-h-[60vh] flex items-center justify-center"),
		Div(
			Class("text-center px-4"),
			P(Class("text-6xl font-bold text-blue-600"), g.Textf("%d", status)),
			P(Class("mt-4 text-xl text-gray-700"), g.Text(message)),
			LinkButton("/", "mt-8 px-4 py-2 text-white bg-blue-600 hover:bg-blue-700", g.Text("Back to home")),
		),
	)
}
