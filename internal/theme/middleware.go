package theme

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logger"
)

type contextKey struct{}

const controllerKey = "theme.controller"

// WithTheme returns a context carrying t.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme resolved for the request, or Light.
func FromContext(ctx context.Context) Theme {
	if ctx == nil {
		return Light
	}
	if t, ok := ctx.Value(contextKey{}).(Theme); ok {
		return t
	}
	return Light
}

// Middleware resolves the request theme before any handler renders. It also
// asks the browser for the color-scheme client hint on later requests.
func Middleware(secureCookies bool, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl := NewController(NewCookieStore(c, secureCookies), ClientHint(c.Request), log)
		t := ctrl.Initial()

		c.Set(controllerKey, ctrl)
		c.Request = c.Request.WithContext(WithTheme(c.Request.Context(), t))

		h := c.Writer.Header()
		h.Set("Accept-CH", ClientHintHeader)
		h.Add("Vary", ClientHintHeader)
		h.Add("Vary", "Cookie")

		c.Next()
	}
}

// ControllerFrom returns the controller installed by Middleware. Without the
// middleware it falls back to a controller over the request's cookie.
func ControllerFrom(c *gin.Context) *Controller {
	if v, ok := c.Get(controllerKey); ok {
		if ctrl, ok := v.(*Controller); ok {
			return ctrl
		}
	}
	return NewController(NewCookieStore(c, false), ClientHint(c.Request), nil)
}
