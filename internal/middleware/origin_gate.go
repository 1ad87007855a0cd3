package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/hkbertoson/form-relay/internal/errs"
	"github.com/hkbertoson/form-relay/internal/response"
)

// CORS header values sent on every response.
const (
	AllowHeaders = "Content-Type"
	AllowMethods = "POST, OPTIONS"
)

// OriginGate enforces the origin allow-list and the accepted methods.
//
// It is a pure function of (method, origin, allow-list): it never
// logs and never touches the request body.
type OriginGate struct {
	allowed map[string]struct{}
}

// NewOriginGate builds a gate from an already parsed allow-list.
func NewOriginGate(allowList []string) *OriginGate {
	allowed := make(map[string]struct{}, len(allowList))
	for _, origin := range allowList {
		allowed[origin] = struct{}{}
	}
	return &OriginGate{allowed: allowed}
}

// Allows reports whether origin is on the allow-list. The empty origin
// is never allowed.
func (g *OriginGate) Allows(origin string) bool {
	_, ok := g.allowed[origin]
	return ok
}

// Headers computes the CORS headers for origin. The allow-origin value
// echoes origin only when it is allowed, and is empty otherwise.
func (g *OriginGate) Headers(origin string) response.Headers {
	allowOrigin := ""
	if g.Allows(origin) {
		allowOrigin = origin
	}
	return response.Headers{
		"Access-Control-Allow-Headers": AllowHeaders,
		"Access-Control-Allow-Methods": AllowMethods,
		"Access-Control-Allow-Origin":  allowOrigin,
	}
}

// Check returns the CORS headers and, when the request stops here, its
// terminal response. A nil response means the request may proceed.
//
// Order matters:
//  1. OPTIONS is answered with 204 for any origin (preflight).
//  2. A disallowed origin gets 403.
//  3. Anything but POST gets 405.
func (g *OriginGate) Check(method, origin string, asJSON bool) (response.Headers, *events.APIGatewayProxyResponse) {
	headers := g.Headers(origin)

	if method == http.MethodOptions {
		resp := response.Empty(http.StatusNoContent, headers)
		return headers, &resp
	}

	if !g.Allows(origin) {
		resp := response.Error(errs.NewForbiddenError(errs.MessageOriginNotAllowed), headers, asJSON)
		return headers, &resp
	}

	if method != http.MethodPost {
		resp := response.Error(errs.NewMethodNotAllowedError(errs.MessageMethodNotAllowed), headers, asJSON)
		return headers, &resp
	}

	return headers, nil
}

// Header looks up name in single-value event headers, ignoring case.
func Header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// IsJSON reports whether a Content-Type header declares a JSON body.
// Parameters such as charset are ignored.
func IsJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
