package handler

import (
	"net/http"
	"time"

	"github.com/hkbertoson/form-relay/internal/middleware"
	"github.com/hkbertoson/form-relay/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthHandler reports whether the dev server is up and how it is
// configured to send mail.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 with the overall status, a UTC timestamp, the
// environment and a checks map. The mail check is configuration only;
// no connection to the mail provider is opened.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := h.server.Config

	mail := map[string]interface{}{
		"status":    "configured",
		"transport": cfg.Mail.Transport,
	}
	if cfg.Mail.Transport == "smtp" {
		host, port, err := cfg.Mail.Endpoint()
		if err != nil {
			mail["status"] = "misconfigured"
			mail["error"] = err.Error()
		} else {
			mail["host"] = host
			mail["port"] = port
		}
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": cfg.Primary.Env,
		"checks": map[string]interface{}{
			"mail": mail,
			"origins": map[string]interface{}{
				"status":  "configured",
				"allowed": len(cfg.AllowList),
			},
		},
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return errors.Wrap(err, "failed to write JSON response")
	}

	logger.Debug().Msg("health check passed")
	return nil
}
