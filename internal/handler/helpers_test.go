package handler

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"jw-proxy-go/internal/client"
	"jw-proxy-go/internal/config"
	"jw-proxy-go/internal/metrics"
	"jw-proxy-go/internal/middleware"
	"jw-proxy-go/internal/route"
	"jw-proxy-go/internal/service"
)

type testEnv struct {
	cfg     *config.Config
	routes  *route.Table
	client  *client.UpstreamClient
	proxy   *ProxyHandler
	health  *HealthHandler
	metrics *metrics.Metrics
}

// newTestEnv wires the proxy against an httptest upstream at baseURL.
func newTestEnv(t *testing.T, baseURL string) *testEnv {
	t.Helper()
	return newTestEnvWithTimeout(t, baseURL, 15)
}

func newTestEnvWithTimeout(t *testing.T, baseURL string, timeoutSeconds int) *testEnv {
	t.Helper()
	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL:         baseURL,
			TimeoutSeconds:  timeoutSeconds,
			IdleConnections: 10,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	routes, err := route.NewTable(baseURL)
	if err != nil {
		t.Fatalf("route.NewTable: %v", err)
	}
	m := metrics.New()
	uc := client.NewUpstreamClient(cfg, logger, m)
	svc := service.NewForwardService(uc, routes, logger)

	return &testEnv{
		cfg:     cfg,
		routes:  routes,
		client:  uc,
		proxy:   NewProxyHandler(svc, logger, m),
		health:  NewHealthHandler(cfg, routes, "test"),
		metrics: m,
	}
}

// echo builds a server with the production route layout.
func (env *testEnv) echo() *echo.Echo {
	e := echo.New()
	e.Pre(middleware.Preflight())
	RegisterRoutes(e, env.proxy, env.health)
	RegisterMetrics(e, env.cfg, env.metrics)
	return e
}

// fixedClock pins the handler's timestamp source.
func (env *testEnv) fixedClock(ts time.Time) {
	env.proxy.now = func() time.Time { return ts }
}
