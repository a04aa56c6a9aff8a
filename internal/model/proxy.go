// Package model defines shared types for the proxy.
package model

import (
	"context"
	"io"
	"time"
)

// TimestampLayout renders error timestamps as ISO 8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ProxyRequest represents a client request to be forwarded upstream.
type ProxyRequest struct {
	Ctx    context.Context
	Method string
	Path   string
	Body   io.Reader
}

// ProxyResponse is an upstream response held fully in memory.
type ProxyResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// ErrorBody is the JSON payload returned when forwarding fails.
type ErrorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewErrorBody builds an ErrorBody stamped with now.
func NewErrorBody(message string, now time.Time) ErrorBody {
	return ErrorBody{
		Error:     "Proxy failed",
		Message:   message,
		Timestamp: now.UTC().Format(TimestampLayout),
	}
}
