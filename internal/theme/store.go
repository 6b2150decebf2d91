package theme

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// ErrNotStored is returned by Store.Load when no value has been persisted.
var ErrNotStored = errors.New("theme: not stored")

// Store persists the selection across sessions.
type Store interface {
	Load() (string, error)
	Save(value string) error
}

// PreferenceSource reports the operating system color-scheme preference.
type PreferenceSource interface {
	PrefersDark() bool
}

// FixedPreference is a PreferenceSource with a known answer.
type FixedPreference bool

func (p FixedPreference) PrefersDark() bool {
	return bool(p)
}

// ClientHintHeader carries the browser's color-scheme preference once the
// server has asked for it with Accept-CH.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// ClientHint reads the preference from the request's client hint. Browsers
// that do not send the hint are treated as preferring light; the pre-paint
// script corrects that on the client.
func ClientHint(r *http.Request) FixedPreference {
	if r == nil {
		return false
	}
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ClientHintHeader)), `"`)
	return FixedPreference(strings.EqualFold(v, "dark"))
}

const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStore keeps the selection in the origin-scoped theme cookie. The
// cookie is readable by scripts so the client toggle can update it too.
type CookieStore struct {
	c      *gin.Context
	secure bool
}

func NewCookieStore(c *gin.Context, secure bool) CookieStore {
	return CookieStore{c: c, secure: secure}
}

func (s CookieStore) Load() (string, error) {
	v, err := s.c.Cookie(StorageKey)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNotStored
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s CookieStore) Save(value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(StorageKey, value, cookieMaxAge, "/", "", s.secure, false)
	return nil
}

// MemoryStore is an in-process Store used by the static export and tests.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNotStored
	}
	return s.value, nil
}

func (s *MemoryStore) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.set = true
	return nil
}
