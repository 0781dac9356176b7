package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Footer(
		Class("border-t border-gray-200 mt-16"),
		Div(
			Class("container mx-auto px-4 py-8 grid gap-6 md:grid-cols-4"),
			Div(
				Class("md:col-span-2"),
				Logo(),
				P(
					Class("mt-3 text-sm text-gray-600 max-w-md"),
					g.Text("Automated SEO reports, competitor analysis, and content suggestions delivered monthly."),
				),
			),
			Div(
				P(Class("font-medium"), g.Text("Service")),
				Div(
					Class("flex flex-col space-y-1.5 mt-3 text-sm text-gray-600"),
					A(Href("/service"), g.Text("How It Works")),
					A(Href("/pricing"), g.Text("Pricing")),
				),
			),
			Div(
				P(Class("font-medium"), g.Text("Customers")),
				Div(
					Class("flex flex-col space-y-1.5 mt-3 text-sm text-gray-600"),
					A(Href("/dashboard"), g.Text("Dashboard")),
					A(Href("/pricing#signup-form"), g.Text("Sign up")),
				),
			),
		),
		Div(
			Class("container mx-auto px-4 py-6 border-t border-gray-100 text-sm text-gray-500"),
			g.Text("© 2026 SwedensAi. All rights reserved."),
		),
	)
}
