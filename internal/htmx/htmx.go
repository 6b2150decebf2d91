// Package htmx holds the request and response headers the site exchanges with
// htmx.
package htmx

import (
	"net/http"
	"strings"
)

const (
	// RequestHeader is sent by htmx on every request it issues.
	RequestHeader = "HX-Request"
	// TriggerHeader fires a client-side event after the swap.
	TriggerHeader = "HX-Trigger"
)

// IsRequest reports whether the request was initiated by htmx.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}
