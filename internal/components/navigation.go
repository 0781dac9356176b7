package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NavState is the navigation bar state for one request.
type NavState struct {
	// Active is the path of the current page.
	Active string
	// MenuOpen shows the mobile link list.
	MenuOpen bool
}

type navLink struct {
	Path  string
	Label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/service", "How It Works"},
	{"/pricing", "Pricing"},
	{"/dashboard", "Dashboard"},
}

// Navigation is the top bar. Without JavaScript the mobile menu is toggled
// through the ?menu=open query parameter; every link points at a plain
// path, so following one closes the menu.
func Navigation(state NavState) g.Node {
	return Nav(
		Class("bg-white shadow-sm border-b border-gray-200 sticky top-0 z-50"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("flex justify-between items-center h-16"),
				Logo(),

				Div(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(navLinks, func(l navLink) g.Node {
						return navAnchor(l, state.Active, "text-sm font-medium transition-colors", "text-gray-600 hover:text-gray-900")
					})),
					LinkButton("/pricing", "px-3 py-2 text-sm text-white bg-blue-600 hover:bg-blue-700", g.Text("Get Started")),
				),

				Div(
					Class("md:hidden"),
					menuToggle(state),
				),
			),

			g.If(state.MenuOpen,
				Div(
					ID("mobile-menu"),
					Class("md:hidden py-4 border-t border-gray-200"),
					Div(
						Class("flex flex-col space-y-4"),
						g.Group(g.Map(navLinks, func(l navLink) g.Node {
							return navAnchor(l, state.Active, "text-sm font-medium", "text-gray-600")
						})),
						LinkButton("/pricing", "w-fit px-3 py-2 text-sm text-white bg-blue-600 hover:bg-blue-700", g.Text("Get Started")),
					),
				),
			),
		),
	)
}

func navAnchor(l navLink, active, base, inactive string) g.Node {
	if l.Path == active {
		return A(Href(l.Path), Class(base+" text-blue-600"), g.Attr("aria-current", "page"), g.Text(l.Label))
	}
	return A(Href(l.Path), Class(base+" "+inactive), g.Text(l.Label))
}

func menuToggle(state NavState) g.Node {
	path := state.Active
	if path == "" {
		path = "/"
	}

	if state.MenuOpen {
		return A(
			Href(path),
			Class("text-gray-600 hover:text-gray-900"),
			g.Attr("aria-expanded", "true"),
			g.Attr("aria-controls", "mobile-menu"),
			Icon("lucide--x h-6 w-6", "Close menu"),
		)
	}
	return A(
		Href(path+"?menu=open"),
		Class("text-gray-600 hover:text-gray-900"),
		g.Attr("aria-expanded", "false"),
		Icon("lucide--menu h-6 w-6", "Open menu"),
	)
}
