package middleware

import (
	"github.com/hkbertoson/form-relay/internal/server"
)

// Middlewares groups the echo middleware used by the dev server so the
// router receives one object instead of many.
type Middlewares struct {
	// Global holds request logging, recovery and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger to every request.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the Server.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
