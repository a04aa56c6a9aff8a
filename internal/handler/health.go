package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jw-proxy-go/internal/config"
	"jw-proxy-go/internal/route"
)

// Version is a string type for dependency injection of the build version.
type Version string

// HealthHandler serves health and status endpoints.
type HealthHandler struct {
	cfg     *config.Config
	routes  *route.Table
	version Version
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cfg *config.Config, routes *route.Table, v Version) *HealthHandler {
	return &HealthHandler{cfg: cfg, routes: routes, version: v}
}

// Healthz returns a simple OK response for liveness probes.
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// StatusResponse is the body of GET /proxy/status.
type StatusResponse struct {
	Status         string            `json:"status"`
	Version        string            `json:"version"`
	UpstreamURL    string            `json:"upstream_url"`
	TimeoutSeconds int               `json:"timeout_seconds"`
	Endpoints      map[string]string `json:"endpoints"`
}

// Status returns proxy status information.
func (h *HealthHandler) Status(c echo.Context) error {
	endpoints := make(map[string]string)
	for _, r := range h.routes.Routes() {
		endpoints[r.Marker] = r.URL
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:         "ok",
		Version:        string(h.version),
		UpstreamURL:    h.cfg.Upstream.BaseURL,
		TimeoutSeconds: h.cfg.Upstream.TimeoutSeconds,
		Endpoints:      endpoints,
	})
}
