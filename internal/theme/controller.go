package theme

import (
	"errors"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Controller derives the initial theme and owns writes to the store.
type Controller struct {
	store Store
	pref  PreferenceSource
	log   *logger.Logger
}

func NewController(store Store, pref PreferenceSource, log *logger.Logger) *Controller {
	if pref == nil {
		pref = FixedPreference(false)
	}
	return &Controller{store: store, pref: pref, log: log}
}

// Initial returns dark when "dark" is stored, or when nothing is stored and
// the OS prefers dark. Any other stored value selects light. A store that
// cannot be read counts as nothing stored.
func (c *Controller) Initial() Theme {
	stored, ok := c.load()
	if ok && stored != "" {
		if stored == string(Dark) {
			return Dark
		}
		return Light
	}
	if c.pref.PrefersDark() {
		return Dark
	}
	return Light
}

// Apply is the document effect of t.
func (c *Controller) Apply(t Theme) Applied {
	return Apply(t)
}

// Toggle flips current, persists the result and returns it. Persistence
// failures leave the returned theme unaffected.
func (c *Controller) Toggle(current Theme) Theme {
	next := current.Toggled()
	if c.store == nil {
		return next
	}
	if err := c.store.Save(next.String()); err != nil {
		c.log.WithFields(map[string]any{"theme": next.String(), "error": err.Error()}).Debug("theme not persisted")
	}
	return next
}

func (c *Controller) load() (string, bool) {
	if c.store == nil {
		return "", false
	}
	v, err := c.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNotStored) {
			c.log.WithFields(map[string]any{"error": err.Error()}).Debug("theme store unreadable")
		}
		return "", false
	}
	return v, true
}
