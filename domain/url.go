package domain

import (
	"context"
	"net/url"

	"github.com/labstack/echo/v4"
)

type requestPathKey struct{}

// RequestPathCtxKey is the context key of the raw request path set by the instrumentation middleware.
var RequestPathCtxKey = requestPathKey{}

const unknownRequestPath = "unknown"

// ParseURLPath returns the path of the request URI without the query.
func ParseURLPath(c echo.Context) (string, error) {
	parsedURL, err := url.Parse(c.Request().RequestURI)
	if err != nil {
		return "", err
	}

	return parsedURL.Path, nil
}

// GetURLPathFromContext returns the request path stored in ctx or "unknown"
// for calls that did not come through the HTTP server.
func GetURLPathFromContext(ctx context.Context) string {
	requestPath, ok := ctx.Value(RequestPathCtxKey).(string)
	if !ok || len(requestPath) == 0 {
		return unknownRequestPath
	}
	return requestPath
}
