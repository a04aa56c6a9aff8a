package handler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"jw-proxy-go/internal/metrics"
	"jw-proxy-go/internal/middleware"
	"jw-proxy-go/internal/model"
	"jw-proxy-go/internal/route"
	"jw-proxy-go/internal/service"
)

// InvalidEndpointMessage is the plain-text body returned for unroutable paths.
const InvalidEndpointMessage = "Invalid endpoint. Use /findInformNotice.do or /toPosts.do"

// defaultContentType is used when the upstream response carries none.
const defaultContentType = "application/json"

// ProxyHandler relays requests to the upstream site.
type ProxyHandler struct {
	service *service.ForwardService
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewProxyHandler creates a ProxyHandler.
// The metrics parameter is optional; pass nil to disable failure counting.
func NewProxyHandler(svc *service.ForwardService, logger *slog.Logger, m *metrics.Metrics) *ProxyHandler {
	return &ProxyHandler{
		service: svc,
		logger:  logger.With("component", "proxy_handler"),
		metrics: m,
		now:     time.Now,
	}
}

// Handle forwards the request and relays the buffered upstream response with
// CORS headers added.
func (h *ProxyHandler) Handle(c echo.Context) error {
	req := c.Request()

	pr := &model.ProxyRequest{
		Ctx:    req.Context(),
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   req.Body,
	}

	resp, err := h.service.Forward(pr)
	if err != nil {
		return h.mapError(c, err)
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	middleware.SetCORSHeaders(c.Response().Header())
	return c.Blob(resp.StatusCode, contentType, resp.Body)
}

func (h *ProxyHandler) mapError(c echo.Context, err error) error {
	if errors.Is(err, route.ErrInvalidEndpoint) {
		middleware.SetAllowOrigin(c.Response().Header())
		return c.String(http.StatusBadRequest, InvalidEndpointMessage)
	}

	// Body limit violations surface as *echo.HTTPError while the body is read.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	reason, message := classify(err)
	h.logger.Error("proxy error",
		"err", err,
		"reason", reason,
		"path", c.Request().URL.Path,
	)
	if h.metrics != nil {
		h.metrics.ProxyFailures.WithLabelValues(reason).Inc()
	}

	middleware.SetAllowOrigin(c.Response().Header())
	return c.JSON(http.StatusInternalServerError, model.NewErrorBody(message, h.now()))
}

// classify returns a bounded reason label and a client-facing message.
func classify(err error) (reason, message string) {
	if errors.Is(err, service.ErrRequestBody) {
		return "request_body", "failed to read request body"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout", "upstream request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "canceled", "client disconnected"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns", "upstream host unreachable: " + dnsErr.Error()
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "connection", "upstream connection failed: " + urlErr.Err.Error()
	}

	return "upstream", err.Error()
}
