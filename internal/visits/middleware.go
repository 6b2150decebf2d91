package visits

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logger"
)

var untrackedPrefixes = []string{"/static/", "/assets/", "/favicon", "/health"}

// Tracked reports whether a request counts as a visit: page GETs only, and
// never when the client sends DNT: 1.
func Tracked(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("DNT") == "1" {
		return false
	}
	path := r.URL.Path
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records tracked requests without delaying the response.
func Middleware(rec *Recorder, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rec == nil || !Tracked(c.Request) {
			c.Next()
			return
		}

		v := Visit{
			HashedIP:  rec.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			At:        time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := rec.Record(ctx, v); err != nil {
				log.Error(err, "error recording visit")
			}
		}()
		c.Next()
	}
}
