package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
)

// TabSelectorID is the element id swapped by the tab fragment endpoint.
const TabSelectorID = "tab-selector"

// Header renders the tab selector, the theme toggle and the social links.
func Header(state page.State, socials []content.SocialLink) g.Node {
	return g.Group{
		h.Nav(h.Class("mb-8"),
			h.Div(h.Class("container max-w-7xl mx-auto px-4"),
				h.Div(h.Class("flex flex-col sm:flex-row justify-between items-center"),
					h.Div(h.Class("hidden sm:block sm:w-[110px]")),
					TabSelector(state),
					h.Div(h.Class("sm:w-[110px] flex justify-center sm:justify-end"),
						ThemeToggle(),
					),
				),
			),
		),
		h.Div(h.Class("flex justify-center gap-2 max-w-[150px] mx-auto mb-6"),
			g.Map(socials, func(link content.SocialLink) g.Node {
				return SocialCard(link, "w-10 h-10")
			}),
		),
	}
}

// TabSelector renders the three tab buttons. Without scripts the buttons
// submit a GET to the page; with htmx they fetch a fresh selector and swap it
// in place.
func TabSelector(state page.State) g.Node {
	return g.El("form",
		h.ID(TabSelectorID),
		h.Method("get"),
		h.Action("/"),
		h.Role("tablist"),
		h.Class("backdrop-blur-md bg-white/20 dark:bg-black/20 rounded-full p-1 shadow-lg border border-white/30 dark:border-white/10 mb-4 sm:mb-0"),
		g.Map(page.Tabs, func(tab page.Tab) g.Node {
			return tabButton(tab, state.Selected(tab))
		}),
	)
}

func tabButton(tab page.Tab, selected bool) g.Node {
	return h.Button(
		h.Type("submit"),
		h.Name("tab"),
		h.Value(tab.String()),
		h.Role("tab"),
		h.Aria("selected", strconv.FormatBool(selected)),
		h.DataAttr("tab", tab.String()),
		g.Attr("hx-get", "/tabs/"+tab.String()),
		g.Attr("hx-target", "#"+TabSelectorID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-push-url", "/?tab="+tab.String()),
		h.Class(pick("px-4 sm:px-6 py-2 rounded-full transition-all duration-300", selected, tabSelected, tabUnselected)),
		g.Text(tab.String()),
	)
}

// ThemeToggle posts to the theme endpoint. The client script fills in the
// theme currently on screen so the server flips what the visitor sees.
func ThemeToggle() g.Node {
	return g.El("form",
		h.Method("post"),
		h.Action("/theme"),
		h.DataAttr("theme-toggle", ""),
		g.Attr("hx-post", "/theme"),
		g.Attr("hx-swap", "none"),
		h.Class("scale-[0.55] sm:scale-[0.5] origin-center sm:origin-right"),
		h.Button(
			h.Type("submit"),
			h.Aria("label", "Toggle theme"),
			h.Class("relative w-24 h-12 rounded-full bg-white/60 dark:bg-zinc-800 shadow-inner border border-white/40 dark:border-white/10 flex items-center justify-between px-3 transition-colors duration-300"),
			icon(iconSun, "w-6 h-6 text-yellow-500"),
			icon(iconMoon, "w-6 h-6 text-indigo-300"),
			h.Span(h.Class("absolute top-1 left-1 w-10 h-10 rounded-full bg-white dark:bg-zinc-600 shadow-md transition-transform duration-300 dark:translate-x-12")),
		),
	)
}
