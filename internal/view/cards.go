package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
)

// SocialCard is a square link tile holding the link's icon. class sizes the
// tile.
func SocialCard(link content.SocialLink, class string) g.Node {
	return h.A(
		h.Href(link.Href),
		h.Aria("label", link.Name),
		h.DataAttr("social", link.Name),
		h.Class(join(glassCard+" p-3 aspect-square flex items-center justify-center group", class)),
		icon(link.Icon, "w-5 h-5 text-gray-600 dark:text-gray-300 group-hover:text-gray-800 dark:group-hover:text-gray-100 transition-colors duration-300"),
	)
}

// ExperienceCard renders one resume entry. Past roles get muted company text.
func ExperienceCard(exp content.Experience) g.Node {
	experienceType := string(content.Current)
	if exp.IsPast() {
		experienceType = string(content.Past)
	}
	return h.Div(
		h.DataAttr("experience-type", experienceType),
		h.Class(glassCard+" p-4"),
		h.Div(h.Class("flex justify-between items-start mb-2"),
			h.Div(
				h.H4(h.Class("font-bold text-gray-800 dark:text-gray-100 text-lg"), g.Text(exp.Role)),
				h.P(h.Class(pick("text-sm", exp.IsPast(), companyPast, companyCurrent)), g.Text(exp.Company)),
			),
			h.Div(h.Class("text-right"),
				h.Div(h.Class("text-sm font-medium text-gray-700 dark:text-gray-200"), g.Text(exp.Company)),
				h.Div(h.Class("text-xs text-gray-500 dark:text-gray-400"), g.Text(exp.Period)),
			),
		),
	)
}

// ProjectCard renders one gallery entry with its screenshot, title, company,
// description and tags.
func ProjectCard(p content.Project) g.Node {
	return h.Div(
		h.DataAttr("project-id", strconv.Itoa(p.ID)),
		h.Class("backdrop-blur-md bg-white/20 dark:bg-black/20 rounded-3xl overflow-hidden shadow-xl border border-white/30 dark:border-white/10 hover:shadow-2xl transition-all duration-300 group"),
		h.Div(h.Class("relative h-48 bg-gradient-to-br from-gray-800 to-gray-900 overflow-hidden"),
			g.If(p.Image != "",
				h.Img(h.Src(p.Image), h.Alt(p.Title), h.Loading("lazy"),
					h.Class("absolute inset-0 w-full h-full object-cover group-hover:scale-105 transition-transform duration-300")),
			),
			h.Div(h.Class("absolute inset-0 bg-black/20")),
			h.Div(h.Class("absolute bottom-4 left-4 right-4"),
				h.Div(h.Class("text-white text-sm opacity-80 mb-1"), g.Text("PROJECT AT "+p.Company)),
				h.H3(h.Class("text-white font-bold text-lg leading-tight"), g.Text(p.Title)),
			),
		),
		h.Div(h.Class("p-6"),
			h.Div(h.Class("text-gray-600 dark:text-gray-300 text-sm mb-4"), g.Text(p.Description)),
			h.Div(h.Class("flex flex-wrap gap-2"),
				g.Map(p.Tags, func(tag string) g.Node {
					return h.Span(
						h.Class("px-3 py-1 bg-white/30 dark:bg-white/10 rounded-full text-xs text-gray-700 dark:text-gray-200 border border-white/40 dark:border-white/20"),
						g.Text(tag),
					)
				}),
			),
		),
	)
}

// TechStack renders the technology badges with their icons.
func TechStack(technologies []content.Technology) g.Node {
	return h.Div(h.Class("backdrop-blur-md bg-white/20 dark:bg-black/20 rounded-3xl p-4 shadow-xl border border-white/30 dark:border-white/10 hover:shadow-2xl transition-all duration-300 w-full"),
		h.Div(h.Class("flex items-center justify-center mb-3"),
			h.Div(h.Class("w-3 h-3 bg-gray-400 dark:bg-gray-500 rounded-full")),
		),
		h.Div(h.Class("flex justify-center gap-2 mb-3 flex-wrap"),
			g.Map(technologies, func(tech content.Technology) g.Node {
				return h.Div(
					h.DataAttr("tech", tech.Name),
					g.Attr("title", tech.Name),
					h.Class("w-12 h-12 "+tech.Color+" "+tech.TextColor+" rounded-lg flex flex-col items-center justify-center font-bold shadow-lg"),
					g.If(tech.Icon != "", h.Img(h.Src(tech.Icon), h.Alt(""), h.Class("w-6 h-6"), h.Loading("lazy"))),
					h.Span(h.Class("text-[10px] leading-none mt-0.5"), g.Text(tech.Name)),
				)
			}),
		),
		h.Div(h.Class("text-center"),
			h.Div(h.Class("text-xs text-gray-600 dark:text-gray-400 mb-1"), g.Text("CURRENTLY USING")),
			h.Div(h.Class("text-sm font-bold text-gray-800 dark:text-gray-100"), g.Text("TECH I ❤️")),
		),
	)
}

// BackgroundAnimation draws the decorative pulsing blobs behind the page.
func BackgroundAnimation() g.Node {
	blob := "absolute w-80 h-80 rounded-full mix-blend-multiply dark:mix-blend-soft-light filter blur-xl opacity-70 animate-pulse"
	return h.Div(h.Class("absolute inset-0 overflow-hidden pointer-events-none"), h.Aria("hidden", "true"),
		h.Div(h.Class(blob+" -top-40 -right-40 bg-purple-300 dark:bg-purple-800")),
		h.Div(h.Class(blob+" -bottom-40 -left-40 bg-blue-300 dark:bg-blue-900 delay-1000")),
		h.Div(h.Class(blob+" top-40 left-40 bg-pink-300 dark:bg-indigo-800 delay-500")),
	)
}
