// Package theme resolves, applies and persists the light/dark selection.
//
// The theme of a request is resolved once, before anything is rendered, and
// handed to the view layer as an explicit value. Controller.Toggle is the only
// writer of the persisted value.
package theme

import "strings"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the key of the persisted selection, both as a cookie name and
// as the localStorage key used by the pre-paint script.
const StorageKey = "theme"

// Parse reports ok=false for anything other than "light" or "dark".
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return Light, false
}

// Toggled flips the theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	if t == Dark {
		return string(Dark)
	}
	return string(Light)
}

// Applied is the document-level effect of a theme.
type Applied struct {
	Theme Theme
	// Class is the class list set on the <html> element.
	Class string
	// ColorScheme is the value of the color-scheme CSS property and meta tag.
	ColorScheme string
}

// Apply returns what the document root must carry for t.
func Apply(t Theme) Applied {
	if t == Dark {
		return Applied{Theme: Dark, Class: "dark", ColorScheme: "dark"}
	}
	return Applied{Theme: Light, Class: "", ColorScheme: "light"}
}
