// Command formrelay-dev serves the function over HTTP for local
// development, at the same path `netlify dev` uses.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/hkbertoson/form-relay/internal/handler"
	"github.com/hkbertoson/form-relay/internal/lib/email"
	"github.com/hkbertoson/form-relay/internal/logger"
	"github.com/hkbertoson/form-relay/internal/router"
	"github.com/hkbertoson/form-relay/internal/server"
	"github.com/hkbertoson/form-relay/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	boot := logger.Bootstrap()

	cfg, err := config.LoadConfig()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log, err := logger.New(cfg)
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to initialize logger")
	}

	sender, err := email.NewSender(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize mail sender")
	}

	srv := server.New(cfg, &log)
	relay := handler.NewRelayHandler(cfg, log, service.NewMailDispatcher(cfg, sender))
	r := router.NewRouter(srv, handler.NewHandlers(srv, relay))
	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
