// Package service implements the core proxy forwarding logic.
package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"jw-proxy-go/internal/client"
	"jw-proxy-go/internal/model"
	"jw-proxy-go/internal/route"
)

// ErrUpstream wraps every failure that happens after routing succeeded:
// reading the inbound body, contacting the upstream, or reading its reply.
var ErrUpstream = errors.New("proxy failed")

// ErrRequestBody marks a failure to read the inbound request body.
var ErrRequestBody = errors.New("read request body")

// browserUserAgent is presented to the upstream instead of the caller's agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// previewRunes bounds the upstream body excerpt written to the log.
const previewRunes = 200

// ForwardService relays requests to the endpoint selected by the route table.
type ForwardService struct {
	client *client.UpstreamClient
	routes *route.Table
	logger *slog.Logger
}

// NewForwardService creates a ForwardService.
func NewForwardService(c *client.UpstreamClient, routes *route.Table, logger *slog.Logger) *ForwardService {
	return &ForwardService{
		client: c,
		routes: routes,
		logger: logger.With("component", "forward_service"),
	}
}

// Forward resolves the route for pr.Path and performs exactly one upstream call.
//
// A path matching no route returns route.ErrInvalidEndpoint before the body is
// touched. Every later failure wraps ErrUpstream. The inbound body is read
// only for POST requests.
func (s *ForwardService) Forward(pr *model.ProxyRequest) (*model.ProxyResponse, error) {
	rt, err := s.routes.Resolve(pr.Path)
	if err != nil {
		return nil, err
	}

	var body []byte
	if pr.Method == http.MethodPost {
		body, err = readBody(pr.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrUpstream, ErrRequestBody, err)
		}
	}

	s.logger.Debug("forwarding request",
		"method", pr.Method,
		"path", pr.Path,
		"endpoint", rt.Endpoint.String(),
	)

	resp, err := s.client.Fetch(pr.Ctx, pr.Method, rt.URL, s.browserHeaders(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	s.logger.Info("upstream status",
		"endpoint", rt.Endpoint.String(),
		"status", resp.StatusCode,
	)
	s.logger.Info("upstream response preview",
		"endpoint", rt.Endpoint.String(),
		"preview", preview(resp.Body, previewRunes),
	)

	return resp, nil
}

// browserHeaders returns the fixed header set sent upstream. The Referer is
// always the landing page, even for notice queries.
func (s *ForwardService) browserHeaders() http.Header {
	h := make(http.Header, 7)
	h.Set("User-Agent", browserUserAgent)
	h.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	h.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	h.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Referer", s.routes.URL(route.PostsEndpoint))
	h.Set("Origin", s.routes.Origin())
	return h
}

// readBody drains r fully. A POST without a body is forwarded with an empty one.
func readBody(r io.Reader) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	return io.ReadAll(r)
}

// preview returns at most n runes of b.
func preview(b []byte, n int) string {
	i := 0
	for count := 0; count < n && i < len(b); count++ {
		_, size := utf8.DecodeRune(b[i:])
		i += size
	}
	return string(b[:i])
}
