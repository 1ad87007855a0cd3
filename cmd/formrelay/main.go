// Command formrelay is the Netlify function: it relays one form
// submission per invocation to the configured mailbox.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/hkbertoson/form-relay/internal/handler"
	"github.com/hkbertoson/form-relay/internal/lib/email"
	"github.com/hkbertoson/form-relay/internal/logger"
	"github.com/hkbertoson/form-relay/internal/service"
)

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

	relay := handler.NewRelayHandler(cfg, log, service.NewMailDispatcher(cfg, sender))

	lambda.Start(relay.Handle)
}
