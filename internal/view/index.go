package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/theme"
)

// RootID is the mount point the page owns.
const RootID = "root"

// Index renders the whole page body. It renders nothing until the state is
// mounted.
func Index(state page.State, p content.Portfolio) g.Node {
	if !state.Mounted {
		return g.Group(nil)
	}
	return h.Div(h.Class("min-h-screen bg-gradient-to-br from-purple-100 via-blue-50 to-pink-100 dark:from-zinc-900 dark:via-zinc-800 dark:to-slate-900 relative overflow-hidden transition-colors duration-300"),
		BackgroundAnimation(),
		h.Div(h.Class("relative z-10 container mx-auto px-6 py-8"),
			Header(state, p.Socials),
			h.Main(
				h.Div(h.Class("grid grid-cols-1 lg:grid-cols-3 gap-6 max-w-7xl mx-auto"),
					ProfileSection(p.Profile, p.Socials, p.Technologies),
					LocationAndTechSection(p.Profile),
					ResumeAndExperienceSection(p.Experiences),
				),
				ProjectsGrid(p.Projects),
			),
		),
	)
}

// Page is the full document: the themed shell around the mount point.
func Page(applied theme.Applied, state page.State, p content.Portfolio) g.Node {
	title := p.Profile.Name
	if title == "" {
		title = "Portfolio"
	}
	return Document(applied, title,
		h.Div(h.ID(RootID), Index(state, p)),
	)
}
