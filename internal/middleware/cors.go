package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS values advertised to browsers. Every origin is allowed.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type, X-Requested-With"
	MaxAge       = "86400"
)

// Preflight answers every OPTIONS request with 204 and the CORS permission
// headers, without touching the upstream. Register it with Echo#Pre so it
// runs before routing.
func Preflight() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodOptions {
				return next(c)
			}

			h := c.Response().Header()
			SetCORSHeaders(h)
			h.Set(echo.HeaderAccessControlMaxAge, MaxAge)
			return c.NoContent(http.StatusNoContent)
		}
	}
}

// SetAllowOrigin sets only Access-Control-Allow-Origin, as used on error responses.
func SetAllowOrigin(h http.Header) {
	h.Set(echo.HeaderAccessControlAllowOrigin, AllowOrigin)
}

// SetCORSHeaders sets the origin, method and header permissions sent with relayed responses.
func SetCORSHeaders(h http.Header) {
	SetAllowOrigin(h)
	h.Set(echo.HeaderAccessControlAllowMethods, AllowMethods)
	h.Set(echo.HeaderAccessControlAllowHeaders, AllowHeaders)
}
