package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.4"
)

// Document is the HTML shell. The theme class is on <html> in the markup and
// the pre-paint script runs before any stylesheet, so the first paint always
// uses the right theme.
func Document(applied theme.Applied, title string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.If(applied.Class != "", h.Class(applied.Class)),
			g.Attr("style", "color-scheme: "+applied.ColorScheme),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("color-scheme"), h.Content("light dark")),
				h.TitleEl(g.Text(title)),
				h.Script(g.Raw(theme.PrePaintScript)),
				h.Script(h.Src(tailwindCDN)),
				h.Script(g.Raw(`tailwind.config = { darkMode: "class" };`)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src(htmxCDN), h.Defer()),
				h.Script(h.Src("/static/js/theme.js"), h.Defer()),
			),
			h.Body(h.Class("antialiased"), g.Group(body)),
		),
	)
}
