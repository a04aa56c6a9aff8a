package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidEndpoint is returned when a path matches no route.
var ErrInvalidEndpoint = errors.New("route: path matches no upstream endpoint")

// Endpoint identifies one of the upstream targets.
type Endpoint int

const (
	// NoticeEndpoint is the AJAX notice-query API.
	NoticeEndpoint Endpoint = iota + 1
	// PostsEndpoint is the landing page, used by clients to obtain session cookies.
	PostsEndpoint
)

func (e Endpoint) String() string {
	switch e {
	case NoticeEndpoint:
		return "notice"
	case PostsEndpoint:
		return "posts"
	default:
		return "unknown"
	}
}

// upstreamPaths are the fixed paths of each endpoint on the upstream host.
var upstreamPaths = map[Endpoint]string{
	NoticeEndpoint: "/zhinan/cms/article/v2/findInformNotice.do",
	PostsEndpoint:  "/zhinan/cms/toPosts.do",
}

// Route pairs a path marker with the endpoint it selects.
type Route struct {
	Endpoint Endpoint
	Marker   string
	URL      string
}

// Table is an immutable, ordered route table bound to one upstream origin.
type Table struct {
	routes []Route
	origin string
}

// NewTable builds the route table for the given upstream base URL
// (scheme and host, e.g. "https://jw.scut.edu.cn").
func NewTable(baseURL string) (*Table, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream base url %q must include scheme and host", baseURL)
	}
	origin := u.Scheme + "://" + u.Host

	return &Table{
		routes: []Route{
			{Endpoint: NoticeEndpoint, Marker: "/findInformNotice.do", URL: origin + upstreamPaths[NoticeEndpoint]},
			{Endpoint: PostsEndpoint, Marker: "/toPosts.do", URL: origin + upstreamPaths[PostsEndpoint]},
		},
		origin: origin,
	}, nil
}

// Resolve returns the first route whose marker is contained in path.
func (t *Table) Resolve(path string) (Route, error) {
	for _, r := range t.routes {
		if strings.Contains(path, r.Marker) {
			return r, nil
		}
	}
	return Route{}, ErrInvalidEndpoint
}

// URL returns the upstream URL of an endpoint, or empty string if unknown.
func (t *Table) URL(e Endpoint) string {
	for _, r := range t.routes {
		if r.Endpoint == e {
			return r.URL
		}
	}
	return ""
}

// Origin returns the upstream origin (scheme://host).
func (t *Table) Origin() string {
	return t.origin
}

// Routes returns a copy of the table entries in evaluation order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}
