package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
)

// ProfileSection renders the profile card followed by the vertical social
// links and the tech stack.
func ProfileSection(profile content.Profile, socials []content.SocialLink, technologies []content.Technology) g.Node {
	return h.Section(h.Class("space-y-6"),
		h.Div(h.Class(glassPanel),
			h.Div(h.Class("flex items-start gap-4 mb-4"),
				h.Div(h.Class("w-16 h-16 rounded-full bg-gradient-to-br from-purple-400 to-blue-500 flex items-center justify-center text-white font-bold text-xl"),
					g.Text(profile.Initials),
				),
				h.Div(
					h.H1(h.Class("text-2xl font-bold text-gray-800 dark:text-gray-100"), g.Text(profile.Name)),
				),
			),
			h.Div(h.Class("text-gray-600 dark:text-gray-300 text-sm leading-relaxed space-y-2"), bio(profile.BioMarkdown)),
		),
		h.Div(h.Class("flex flex-row items-start gap-4"),
			h.Div(h.Class("flex flex-col gap-2 max-w-[80px]"),
				g.Map(socials, func(link content.SocialLink) g.Node {
					return SocialCard(link, "w-14 h-14")
				}),
			),
			h.Div(h.Class("flex-1"), TechStack(technologies)),
		),
	)
}

// bio falls back to the escaped source when the markdown cannot be rendered.
func bio(src string) g.Node {
	out, err := content.RenderMarkdown(src)
	if err != nil {
		return h.P(g.Text(src))
	}
	return g.Raw(out)
}

// LocationAndTechSection renders the map card with the location label.
func LocationAndTechSection(profile content.Profile) g.Node {
	return h.Section(h.Class("space-y-6 relative"),
		h.Div(h.Class(glassPanel+" h-48"),
			h.Div(h.Class("relative w-full h-full bg-gradient-to-br from-green-200 to-blue-200 dark:from-green-800 dark:to-blue-900 rounded-2xl overflow-hidden flex items-center justify-center"),
				g.If(profile.MapImage != "",
					h.Img(h.Src(profile.MapImage), h.Alt("Map of "+profile.Location), h.Loading("lazy"),
						h.Class("absolute inset-0 w-full h-full object-cover")),
				),
				h.Span(h.Class("relative px-3 py-1 rounded-full bg-white/70 dark:bg-black/50 text-gray-600 dark:text-gray-200 font-medium"),
					g.Text(profile.Location),
				),
			),
		),
	)
}

// ResumeAndExperienceSection renders the resume card and one experience card
// per entry, in the given order.
func ResumeAndExperienceSection(experiences []content.Experience) g.Node {
	return h.Section(h.Class("space-y-6"),
		h.Div(h.Class(glassPanel),
			h.Div(h.Class("flex items-center justify-between mb-4"),
				h.H3(h.Class("font-bold text-gray-800 dark:text-gray-100"), g.Text("RESUME")),
				h.Div(h.Class("flex gap-2"),
					icon(content.IconEye, "w-5 h-5 text-gray-600 dark:text-gray-300"),
					h.Div(h.Class("w-5 h-5 bg-gray-300 dark:bg-gray-600 rounded")),
				),
			),
		),
		h.Div(h.Class("space-y-4"),
			h.H3(h.Class("text-sm font-medium text-gray-600 dark:text-gray-400 px-2"), g.Text("6 YEARS OF")),
			h.H2(h.Class("text-2xl font-bold text-gray-800 dark:text-gray-100 px-2"), g.Text("EXPERIENCE")),
			g.Map(experiences, ExperienceCard),
		),
	)
}

// ProjectsGrid lays the project cards out one, two or three to a row
// depending on the viewport.
func ProjectsGrid(projects []content.Project) g.Node {
	return h.Section(h.ID("projects"), h.Class("mt-12 max-w-7xl mx-auto"),
		h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
			g.Map(projects, ProjectCard),
		),
	)
}
