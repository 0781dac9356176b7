package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/swedensai/seo-website/internal/flash"
	"github.com/swedensai/seo-website/internal/signup"
)

// Plan card buttons submit the signup form under this name, so the chosen
// plan never collides with the form's own plan field.
const SelectPlanField = "select_plan"

const (
	signupFormID = "signup"
	inputClass   = "w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-600 focus:border-transparent"
	labelClass   = "block text-sm font-medium text-gray-700 mb-2"
)

var included = []deliverable{
	{"📊", "blue", "Monthly SEO Reports", "Detailed analysis of your rankings, traffic, and performance"},
	{"🎯", "green", "Competitor Tracking", "Monitor what your competitors are doing and how to beat them"},
	{"✍️", "purple", "Content Ideas", "Ready-to-publish blog posts and page content suggestions"},
	{"🔧", "orange", "Action Plans", "Clear, step-by-step instructions to improve your rankings"},
}

// PricingPage renders the plan catalogue and the signup form. alert is
// shown above the form after a failed submission.
func PricingPage(form signup.Form, alert flash.Message) g.Node {
	return Div(
		Class("min-h-screen bg-gray-50"),
		Div(
			Class("bg-white py-16"),
			Div(
				Class("container mx-auto px-4 text-center"),
				H1(Class("text-4xl md:text-5xl font-bold text-gray-900 mb-6"), g.Text("You get monthly reports + content ideas")),
				P(
					Class("text-xl text-gray-600 max-w-3xl mx-auto"),
					g.Text("Choose the plan that fits your business. All plans include AI-powered SEO analysis, competitor tracking, and actionable recommendations delivered monthly."),
				),
			),
		),

		Div(
			Class("container mx-auto px-4 py-16"),
			Div(
				Class("grid md:grid-cols-3 gap-8 mb-16"),
				g.Group(g.Map(signup.Plans(), func(p signup.Plan) g.Node {
					return planCard(p, p.ID == form.Plan)
				})),
			),

			Div(
				Class("bg-white rounded-2xl p-8 md:p-12 mb-16"),
				H2(Class("text-3xl font-bold text-center mb-12"), g.Text("What's Included in Every Plan")),
				Div(
					Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"),
					g.Group(g.Map(included, func(d deliverable) g.Node {
						return Div(
							Class("text-center"),
							Div(
								Class(fmt.Sprintf("w-16 h-16 bg-%s-100 rounded-full flex items-center justify-center mx-auto mb-4", d.Color)),
								Span(Class("text-2xl"), g.Text(d.Emoji)),
							),
							H3(Class("font-semibold mb-2"), g.Text(d.Title)),
							P(Class("text-sm text-gray-600"), g.Text(d.Text)),
						)
					})),
				),
			),

			signupForm(form, alert),
		),
	)
}

func planCard(p signup.Plan, selected bool) g.Node {
	border := "border border-gray-200 shadow-lg"
	button := "bg-gray-900 hover:bg-gray-800"
	if p.Popular {
		border = "border-2 border-blue-600 shadow-xl scale-105"
		button = "bg-blue-600 hover:bg-blue-700"
	}

	return Div(
		Class("bg-white rounded-2xl p-8 relative "+border),
		g.If(selected, g.Attr("data-selected", "true")),
		g.If(p.Popular,
			Div(
				Class("absolute -top-4 left-1/2 transform -translate-x-1/2"),
				Div(
					Class("bg-blue-600 text-white px-4 py-2 rounded-full text-sm font-semibold flex items-center"),
					Icon("lucide--star h-4 w-4 mr-1", ""),
					g.Text("Most Popular"),
				),
			),
		),

		Div(
			Class("text-center mb-8"),
			H3(Class("text-2xl font-bold text-gray-900 mb-2"), g.Text(p.Name)),
			P(Class("text-gray-600 mb-4"), g.Text(p.Description)),
			Div(
				Class("text-4xl font-bold text-gray-900 mb-2"),
				g.Textf("€%d", p.Price),
				Span(Class("text-lg font-normal text-gray-600"), g.Text("/month")),
			),
		),

		Ul(
			Class("space-y-4 mb-8"),
			g.Group(g.Map(p.Features, func(f string) g.Node {
				return Li(
					Class("flex items-start"),
					Icon("lucide--check h-5 w-5 text-green-600 mr-3 mt-0.5 flex-shrink-0", ""),
					Span(Class("text-gray-700"), g.Text(f)),
				)
			})),
		),

		Button(
			Type("submit"),
			g.Attr("form", signupFormID),
			g.Attr("formaction", "/pricing/plan#signup-form"),
			g.Attr("formnovalidate"),
			Name(SelectPlanField),
			Value(p.ID),
			Class("w-full inline-flex items-center justify-center rounded-md px-4 py-2 font-medium text-white "+button),
			g.Text("Get Started"),
			Icon("lucide--arrow-right ml-2 h-4 w-4", ""),
		),
	)
}

func signupForm(form signup.Form, alert flash.Message) g.Node {
	return Div(
		ID("signup-form"),
		Class("bg-white rounded-2xl p-8 md:p-12 max-w-2xl mx-auto"),
		H2(Class("text-3xl font-bold text-center mb-8"), g.Text("Start Your SEO Journey Today")),

		g.If(!alert.Empty(), formAlert(alert)),

		g.El("form",
			ID(signupFormID),
			Method("post"),
			Action("/pricing"),
			Class("space-y-6"),

			Div(
				Label(g.Attr("for", "website"), Class(labelClass), g.Text("Your Website URL *")),
				Input(
					ID("website"), Type("url"), Name(signup.FieldWebsite), Value(form.Website),
					Placeholder("https://yourwebsite.com"), Class(inputClass), Required(),
				),
			),

			Div(
				Label(g.Attr("for", "keywords"), Class(labelClass), g.Text("Target Keywords *")),
				Textarea(
					ID("keywords"), Name(signup.FieldKeywords), Placeholder(form.Placeholder()),
					Rows("3"), Class(inputClass), Required(),
					g.Text(form.Keywords),
				),
				P(Class("text-sm text-gray-500 mt-1"), g.Text("Separate keywords with commas. Include your location for local businesses.")),
			),

			Div(
				Class("grid md:grid-cols-2 gap-4"),
				Div(
					Label(g.Attr("for", "name"), Class(labelClass), g.Text("Your Name *")),
					Input(
						ID("name"), Type("text"), Name(signup.FieldName), Value(form.Name),
						Placeholder("John Doe"), Class(inputClass), Required(),
					),
				),
				Div(
					Label(g.Attr("for", "email"), Class(labelClass), g.Text("Email Address *")),
					Input(
						ID("email"), Type("email"), Name(signup.FieldEmail), Value(form.Email),
						Placeholder("john@company.com"), Class(inputClass), Required(),
					),
				),
			),

			Div(
				Label(g.Attr("for", "plan"), Class(labelClass), g.Text("Selected Plan")),
				Select(
					ID("plan"), Name(signup.FieldPlan), Class(inputClass),
					g.Group(g.Map(signup.Plans(), func(p signup.Plan) g.Node {
						return Option(
							Value(p.ID),
							g.If(p.ID == form.Plan, Selected()),
							g.Textf("%s - €%d/month", p.Name, p.Price),
						)
					})),
				),
			),

			Div(
				Class("bg-gray-50 p-4 rounded-lg"),
				P(
					Class("text-sm text-gray-600"),
					Strong(g.Text("Next steps:")),
					g.Text(" After submitting this form, we'll contact you within 24 hours to:"),
				),
				Ul(
					Class("text-sm text-gray-600 mt-2 space-y-1"),
					Li(g.Text("• Set up your account and payment")),
					Li(g.Text("• Configure your keyword tracking")),
					Li(g.Text("• Schedule your first SEO analysis")),
					Li(g.Text("• Deliver your first report within 7 days")),
				),
			),

			Button(
				Type("submit"),
				Class("w-full inline-flex items-center justify-center rounded-md px-8 py-3 text-lg font-medium text-white bg-blue-600 hover:bg-blue-700"),
				g.Text("Start My SEO Service"),
				arrowRight(),
			),
		),

		P(Class("text-center text-sm text-gray-500 mt-6"), g.Text("No setup fees. Cancel anytime. 30-day money-back guarantee.")),
	)
}

func formAlert(msg flash.Message) g.Node {
	classes := "bg-blue-50 border-blue-200 text-blue-800"
	if msg.Kind == flash.Error {
		classes = "bg-red-50 border-red-200 text-red-800"
	}
	return Div(
		ID("signup-alert"),
		Class("mb-6 border rounded-lg px-4 py-3 "+classes),
		g.Attr("role", "alert"),
		g.Text(msg.Text),
	)
}
