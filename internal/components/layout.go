package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/swedensai/seo-website/internal/flash"
)

type PageConfig struct {
	Title       string
	Description string
	Flash       flash.Message
}

func Layout(config PageConfig, nav NavState, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "SwedensAi - Automated SEO Service"
	}

	if config.Description == "" {
		config.Description = "Automated SEO reports, competitor analysis, and content suggestions delivered monthly. No manual work required."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-white"),
				Navigation(nav),
				FlashNotice(config.Flash),
				Main(g.Group(content)),
				PageFooter(),
			),
		),
	})
}

// FlashNotice renders the one-shot message left by the previous request.
func FlashNotice(msg flash.Message) g.Node {
	if msg.Empty() {
		return nil
	}

	classes := "bg-blue-50 border-blue-200 text-blue-800"
	icon := "lucide--info"
	switch msg.Kind {
	case flash.Success:
		classes = "bg-green-50 border-green-200 text-green-800"
		icon = "lucide--check-circle"
	case flash.Error:
		classes = "bg-red-50 border-red-200 text-red-800"
		icon = "lucide--alert-circle"
	}

	return Div(
		Class("container mx-auto px-4 pt-4"),
		Div(
			ID("flash"),
			Class("flex items-center gap-2 border rounded-lg px-4 py-3 "+classes),
			g.Attr("role", "alert"),
			Icon(icon+" h-5 w-5", ""),
			Span(g.Text(msg.Text)),
		),
	)
}
