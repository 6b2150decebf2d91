package view

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/theme"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func mounted() page.State {
	s := page.New()
	s.Mount()
	return s
}

func TestIndexRendersNothingBeforeMount(t *testing.T) {
	assert.Empty(t, render(t, Index(page.New(), content.Default())))
}

func TestPageRootIsEmptyBeforeMount(t *testing.T) {
	out := render(t, Page(theme.Apply(theme.Light), page.New(), content.Default()))
	assert.Contains(t, out, `<div id="root"></div>`)
}

func TestIndexRendersSectionsAfterMount(t *testing.T) {
	out := render(t, Index(mounted(), content.Default()))
	assert.Contains(t, out, "Rassai Said")
	assert.Contains(t, out, "RESUME")
	assert.Contains(t, out, "Austin, TX")
	assert.Contains(t, out, `id="projects"`)
	assert.Contains(t, out, `id="tab-selector"`)
}

func TestTabSelectionDoesNotFilterContent(t *testing.T) {
	p := content.Default()
	var outputs []string
	for _, tab := range page.Tabs {
		s := mounted()
		s.SetActiveTab(tab)
		outputs = append(outputs, render(t, Index(s, p)))
	}
	for _, out := range outputs {
		assert.Equal(t, len(p.Projects), strings.Count(out, "data-project-id="))
		assert.Equal(t, len(p.Experiences), strings.Count(out, "data-experience-type="))
	}
}

func TestTabSelectorMarksExactlyTheActiveTab(t *testing.T) {
	for _, active := range page.Tabs {
		t.Run(active.String(), func(t *testing.T) {
			s := page.New()
			s.SetActiveTab(active)
			out := render(t, TabSelector(s))

			assert.Equal(t, 1, strings.Count(out, `aria-selected="true"`))
			assert.Equal(t, 2, strings.Count(out, `aria-selected="false"`))
			assert.Equal(t, 1, strings.Count(out, tabSelected))
			assert.Equal(t, 2, strings.Count(out, tabUnselected))

			button := buttonFor(t, out, active)
			assert.Contains(t, button, `aria-selected="true"`)
			assert.Contains(t, button, tabSelected)
		})
	}
}

// buttonFor returns the opening tag of the button for tab.
func buttonFor(t *testing.T, out string, tab page.Tab) string {
	t.Helper()
	marker := `data-tab="` + tab.String() + `"`
	i := strings.Index(out, marker)
	require.GreaterOrEqual(t, i, 0, "missing %s", marker)
	start := strings.LastIndex(out[:i], "<button")
	end := strings.Index(out[i:], ">")
	require.GreaterOrEqual(t, start, 0)
	return out[start : i+end]
}

func TestTabSelectorOrder(t *testing.T) {
	out := render(t, TabSelector(page.New()))
	all := strings.Index(out, `data-tab="All"`)
	about := strings.Index(out, `data-tab="About"`)
	work := strings.Index(out, `data-tab="Work"`)
	assert.True(t, all < about && about < work)
	assert.Contains(t, out, `hx-get="/tabs/About"`)
}

func TestProjectsGridRendersOneCardPerProject(t *testing.T) {
	projects := []content.Project{
		{ID: 7, Title: "ALPHA", Company: "ACME", Tags: []string{"Go", "HTMX"}},
		{ID: 8, Title: "BETA", Company: "INITECH", Tags: []string{"SQL"}},
		{ID: 9, Title: "GAMMA", Company: "HOOLI", Tags: []string{"CSS", "Figma", "Storybook"}},
	}
	out := render(t, ProjectsGrid(projects))

	assert.Equal(t, len(projects), strings.Count(out, "data-project-id="))
	for _, p := range projects {
		card := segment(t, out, `data-project-id="`+strconv.Itoa(p.ID)+`"`)
		assert.Contains(t, card, ">"+p.Title+"<")
		assert.Contains(t, card, "PROJECT AT "+p.Company)
		for _, tag := range p.Tags {
			assert.Contains(t, card, ">"+tag+"<")
		}
	}
	assert.Contains(t, out, "grid-cols-1 md:grid-cols-2 lg:grid-cols-3")
}

func TestProjectsGridEmpty(t *testing.T) {
	out := render(t, ProjectsGrid(nil))
	assert.Zero(t, strings.Count(out, "data-project-id="))
}

func TestProjectCardEscapesText(t *testing.T) {
	out := render(t, ProjectCard(content.Project{ID: 1, Title: "<b>x</b>", Company: "A&B"}))
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, out, "PROJECT AT A&amp;B")
}

func TestProjectCardDegradesWithMissingFields(t *testing.T) {
	out := render(t, ProjectCard(content.Project{}))
	assert.Contains(t, out, `data-project-id="0"`)
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<span")
}

func TestResumeSectionKeepsOrderAndStyling(t *testing.T) {
	out := render(t, ResumeAndExperienceSection([]content.Experience{
		{Role: "A", Type: content.Current},
		{Role: "B", Type: content.Past},
	}))

	assert.Equal(t, 2, strings.Count(out, "data-experience-type="))
	first := strings.Index(out, `data-experience-type="current"`)
	second := strings.Index(out, `data-experience-type="past"`)
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)

	a := segment(t, out, `data-experience-type="current"`)
	b := segment(t, out, `data-experience-type="past"`)
	assert.Contains(t, a, ">A<")
	assert.Contains(t, a, "text-sm "+companyCurrent)
	assert.Contains(t, b, ">B<")
	assert.Contains(t, b, "text-sm "+companyPast)
}

func TestExperienceCardUnknownTypeIsPast(t *testing.T) {
	out := render(t, ExperienceCard(content.Experience{Role: "X", Type: "contract"}))
	assert.Contains(t, out, `data-experience-type="past"`)
}

func TestSocialCard(t *testing.T) {
	out := render(t, SocialCard(content.SocialLink{Name: "GitHub", Href: "#", Icon: content.IconGitHub}, "w-10 h-10"))
	assert.Contains(t, out, `href="#"`)
	assert.Contains(t, out, `aria-label="GitHub"`)
	assert.Contains(t, out, "w-10 h-10")
	assert.Contains(t, out, "<svg")
}

func TestSocialCardUnknownIcon(t *testing.T) {
	out := render(t, SocialCard(content.SocialLink{Name: "x", Icon: "rss"}, ""))
	assert.NotContains(t, out, "<svg")
}

func TestHeaderRendersThreeSocialLinks(t *testing.T) {
	out := render(t, Header(page.New(), content.Default().Socials))
	assert.Equal(t, 3, strings.Count(out, "data-social="))
	assert.Contains(t, out, `data-theme-toggle=""`)
	assert.Contains(t, out, `action="/theme"`)
}

func TestTechStackRendersEveryBadge(t *testing.T) {
	techs := content.Default().Technologies
	out := render(t, TechStack(techs))
	assert.Equal(t, len(techs), strings.Count(out, "data-tech="))
	assert.Contains(t, out, "CURRENTLY USING")
}

func TestProfileSectionRendersBioMarkdown(t *testing.T) {
	p := content.Default()
	out := render(t, ProfileSection(p.Profile, p.Socials, p.Technologies))
	assert.Contains(t, out, "<strong>ENSI</strong>")
	assert.Contains(t, out, ">RS<")
}

func TestLocationSectionUsesMapImage(t *testing.T) {
	out := render(t, LocationAndTechSection(content.Profile{Location: "Austin, TX", MapImage: "/assets/images/map.svg"}))
	assert.Contains(t, out, `src="/assets/images/map.svg"`)
	assert.Contains(t, out, `alt="Map of Austin, TX"`)
}

func TestBackgroundAnimationIsDecorative(t *testing.T) {
	out := render(t, BackgroundAnimation())
	assert.Contains(t, out, `aria-hidden="true"`)
	assert.Equal(t, 3, strings.Count(out, "animate-pulse"))
}

func TestDocumentCarriesTheme(t *testing.T) {
	dark := render(t, Document(theme.Apply(theme.Dark), "t"))
	assert.True(t, strings.HasPrefix(dark, "<!doctype html>"))
	assert.Contains(t, dark, `<html lang="en" class="dark"`)
	assert.Contains(t, dark, "color-scheme: dark")

	light := render(t, Document(theme.Apply(theme.Light), "t"))
	assert.NotContains(t, light, `class="dark"`)
	assert.Contains(t, light, "color-scheme: light")
}

func TestDocumentRunsPrePaintScriptBeforeStyles(t *testing.T) {
	out := render(t, Document(theme.Apply(theme.Light), "t"))
	script := strings.Index(out, "prefers-color-scheme: dark")
	styles := strings.Index(out, "/static/css/site.css")
	body := strings.Index(out, "<body")
	require.GreaterOrEqual(t, script, 0)
	assert.Less(t, script, styles)
	assert.Less(t, script, body)
}

// segment returns the markup from marker up to the next card marker.
func segment(t *testing.T, out, marker string) string {
	t.Helper()
	i := strings.Index(out, marker)
	require.GreaterOrEqual(t, i, 0, "missing %s", marker)
	rest := out[i+len(marker):]
	next := len(rest)
	for _, m := range []string{"data-project-id=", "data-experience-type="} {
		if j := strings.Index(rest, m); j >= 0 && j < next {
			next = j
		}
	}
	return out[i : i+len(marker)+next]
}
