package handler

import (
	"github.com/hkbertoson/form-relay/internal/server"
)

// Handlers groups the dev server's HTTP handlers so the router receives
// one object.
type Handlers struct {
	Function *FunctionHandler // Function replays requests into the relay.
	Health   *HealthHandler   // Health serves /status.
}

// NewHandlers constructs the handler container around an existing relay.
func NewHandlers(s *server.Server, relay *RelayHandler) *Handlers {
	return &Handlers{
		Function: NewFunctionHandler(s, relay),
		Health:   NewHealthHandler(s),
	}
}
