package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/visits"
)

type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Visits    string        `json:"visits"`
	Stats     *visits.Stats `json:"stats,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	visits      *visits.Recorder
}

func NewHealthHandler(serviceName, version string, rec *visits.Recorder) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		visits:      rec,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Visits:    "disabled",
	}

	if h.visits != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		stats, err := h.visits.Stats(ctx)
		if err != nil {
			resp.Visits = "down"
		} else {
			resp.Visits = "up"
			resp.Stats = &stats
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
