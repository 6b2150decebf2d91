// Package server wires the HTTP routes of the portfolio site.
package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/visits"
)

//go:embed static
var staticFiles embed.FS

const ServiceName = "portfolio"

type Deps struct {
	Portfolio content.Portfolio
	Log       *logger.Logger
	Version   string
	// AssetsDir is served under /assets; empty disables it.
	AssetsDir string
	// SecureCookies marks the theme cookie Secure.
	SecureCookies bool
	// Visits is optional.
	Visits *visits.Recorder
}

// SetMode switches gin to release mode in production.
func SetMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func NewRouter(dep Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(dep.Log))

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))
	if dep.AssetsDir != "" {
		r.Static("/assets", dep.AssetsDir)
	}

	NewHealthHandler(ServiceName, dep.Version, dep.Visits).RegisterRoutes(r)

	pages := r.Group("/")
	pages.Use(theme.Middleware(dep.SecureCookies, dep.Log))
	if dep.Visits != nil {
		pages.Use(visits.Middleware(dep.Visits, dep.Log))
	}
	NewPageHandler(dep.Portfolio).RegisterRoutes(pages)

	return r
}
