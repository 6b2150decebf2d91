// Package content holds the hand-authored records shown on the portfolio page.
package content

// ExperienceType marks whether a role is the one currently held.
type ExperienceType string

const (
	Current ExperienceType = "current"
	Past    ExperienceType = "past"
)

// Project is one entry in the project gallery.
type Project struct {
	ID          int
	Title       string
	Description string
	Tags        []string
	Image       string
	Company     string
}

// Experience is one entry in the resume list.
type Experience struct {
	Role    string
	Company string
	Period  string
	Type    ExperienceType
}

// IsPast reports whether the role is no longer held. Anything other than
// Current counts as past.
func (e Experience) IsPast() bool {
	return e.Type != Current
}

type Profile struct {
	Name        string
	Initials    string
	Location    string
	BioMarkdown string
	MapImage    string
}

// Icon names a glyph from the inline icon set in the view package.
type Icon string

const (
	IconLinkedIn Icon = "linkedin"
	IconGitHub   Icon = "github"
	IconMail     Icon = "mail"
	IconEye      Icon = "eye"
)

type SocialLink struct {
	Name string
	Href string
	Icon Icon
}

// Technology is a badge in the tech stack card. Color and TextColor are
// utility classes applied to the badge.
type Technology struct {
	Name      string
	Color     string
	TextColor string
	Icon      string
}

// Portfolio bundles every dataset the page renders.
type Portfolio struct {
	Profile      Profile
	Socials      []SocialLink
	Technologies []Technology
	Projects     []Project
	Experiences  []Experience
}

// Clone returns a deep copy so callers can never alias the shared datasets.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Socials = append([]SocialLink(nil), p.Socials...)
	out.Technologies = append([]Technology(nil), p.Technologies...)
	out.Experiences = append([]Experience(nil), p.Experiences...)
	out.Projects = make([]Project, len(p.Projects))
	for i, project := range p.Projects {
		project.Tags = append([]string(nil), project.Tags...)
		out.Projects[i] = project
	}
	if p.Projects == nil {
		out.Projects = nil
	}
	return out
}
