package server

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/htmx"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/view"
)

// PageHandler serves the portfolio page and its fragments. The portfolio is
// shared by every request and never written.
type PageHandler struct {
	portfolio content.Portfolio
}

func NewPageHandler(p content.Portfolio) *PageHandler {
	return &PageHandler{portfolio: p.Clone()}
}

func (h *PageHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/tabs/:tab", h.Tab)
	r.POST("/theme", h.ToggleTheme)
}

// Index renders the full page with the tab from ?tab= selected.
func (h *PageHandler) Index(c *gin.Context) {
	state := page.New()
	state.SetActiveTab(page.Tab(c.Query("tab")))
	state.Mount()

	applied := theme.Apply(theme.FromContext(c.Request.Context()))
	render(c, http.StatusOK, view.Page(applied, state, h.portfolio))
}

// Tab returns the tab selector with :tab selected. Outside htmx it redirects
// to the page instead of returning a bare fragment.
func (h *PageHandler) Tab(c *gin.Context) {
	state := page.New()
	state.SetActiveTab(page.Tab(c.Param("tab")))

	if !htmx.IsRequest(c.Request) {
		c.Redirect(http.StatusSeeOther, "/?tab="+url.QueryEscape(state.ActiveTab.String()))
		return
	}
	render(c, http.StatusOK, view.TabSelector(state))
}

// ToggleTheme flips the theme the visitor sees. The client posts the theme on
// screen as "current"; without it the theme resolved for the request is used.
func (h *PageHandler) ToggleTheme(c *gin.Context) {
	current, ok := theme.Parse(c.PostForm("current"))
	if !ok {
		current = theme.FromContext(c.Request.Context())
	}
	next := theme.ControllerFrom(c).Toggle(current)

	if htmx.IsRequest(c.Request) {
		c.Header("X-Theme", next.String())
		c.Header(htmx.TriggerHeader, "theme-changed")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func render(c *gin.Context, code int, n g.Node) {
	c.Render(code, nodeRender{node: n})
}
