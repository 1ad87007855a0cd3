// Package middleware stores the request gate and the middleware of the
// local development server.
//
// The gate (CORS headers, origin allow-list, method check) runs inside
// every invocation. The echo middleware (request id, request-scoped
// logger, request logging, panic recovery) only wraps the dev server.
//
// JSON mode is decided on the media type alone. This is deliberately
// looser than an exact header match: `application/json; charset=utf-8`
// is a JSON request, not a form post.
package middleware
