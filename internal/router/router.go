// Package router builds the echo router for the local development
// server: middleware chain, the function route and system routes.
package router

import (
	"github.com/hkbertoson/form-relay/internal/handler"
	"github.com/hkbertoson/form-relay/internal/middleware"
	"github.com/hkbertoson/form-relay/internal/server"
	"github.com/labstack/echo/v4"
)

// FunctionPath is where `netlify dev` serves the function locally.
const FunctionPath = "/.netlify/functions/formrelay"

// NewRouter creates the echo instance with middleware and routes.
//
// Middleware order matters: RequestID first so EnhanceContext can put
// the id on the request logger, which RequestLogger then uses.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerFunctionRoutes(router, h)
	registerSystemRoutes(router, h)

	return router
}

// registerFunctionRoutes mounts the relay for every method; method
// enforcement belongs to the relay itself.
func registerFunctionRoutes(r *echo.Echo, h *handler.Handlers) {
	r.Any(FunctionPath, h.Function.Invoke)
}
