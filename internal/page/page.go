// Package page holds the state owned by the portfolio index page.
package page

import "strings"

// Tab is the navigation state shown in the header. Selecting a tab is
// cosmetic; every section renders regardless of the active tab.
type Tab string

const (
	TabAll   Tab = "All"
	TabAbout Tab = "About"
	TabWork  Tab = "Work"
)

// Tabs lists the selector entries in display order.
var Tabs = []Tab{TabAll, TabAbout, TabWork}

// ParseTab matches case-insensitively and falls back to TabAll.
func ParseTab(s string) Tab {
	s = strings.TrimSpace(s)
	for _, t := range Tabs {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return TabAll
}

func (t Tab) String() string {
	return string(t)
}

// State is the page's own state. The zero value is not mounted and has no
// active tab; use New.
type State struct {
	ActiveTab Tab
	Mounted   bool
}

func New() State {
	return State{ActiveTab: TabAll}
}

// SetActiveTab selects tab. Unknown tabs select TabAll.
func (s *State) SetActiveTab(tab Tab) {
	s.ActiveTab = ParseTab(string(tab))
}

// Mount marks the first render pass as complete. Nothing is rendered before
// this is called.
func (s *State) Mount() {
	s.Mounted = true
}

// Selected reports whether tab is the active one.
func (s State) Selected(tab Tab) bool {
	return s.ActiveTab == tab
}
