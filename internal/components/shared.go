package components

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var numbers = message.NewPrinter(language.English)

// formatNumber renders n with English digit grouping (2500 -> "2,500").
func formatNumber(n int) string {
	return numbers.Sprintf("%d", n)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an Iconify icon. iconClass is "set--name" optionally
// followed by extra classes, e.g. "lucide--trending-up h-5 w-5".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify inline-block %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is an icon on a tinted square, as used on feature cards.
func IconBadge(icon, color, shape string) g.Node {
	return Div(
		Class(fmt.Sprintf("w-12 h-12 bg-%s-100 %s flex items-center justify-center flex-shrink-0 mb-4", color, shape)),
		Icon(fmt.Sprintf("%s h-6 w-6 text-%s-600", icon, color), ""),
	)
}

// Logo is the SwedensAi word mark.
func Logo() g.Node {
	return A(
		Href("/"),
		Class("flex items-center space-x-2"),
		Div(
			Class("w-8 h-8 bg-blue-900 rounded-lg flex items-center justify-center"),
			Icon("lucide--trending-up h-5 w-5 text-yellow-400", ""),
		),
		Span(Class("text-xl font-bold text-blue-900"), g.Text("SwedensAi")),
	)
}

// LinkButton is an anchor styled as a button.
func LinkButton(href, classes string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Class("inline-flex items-center justify-center rounded-md font-medium transition-colors "+classes),
		g.Group(children),
	)
}

func arrowRight() g.Node {
	return Icon("lucide--arrow-right ml-2 h-5 w-5", "")
}
