package service

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/hkbertoson/form-relay/internal/errs"
	"github.com/hkbertoson/form-relay/internal/lib/email"
	"github.com/hkbertoson/form-relay/internal/payload"
	"github.com/hkbertoson/form-relay/internal/response"
	"github.com/rs/zerolog"
)

// Dispatch describes one validated submission to send.
type Dispatch struct {
	Payload payload.Payload

	// Headers are the CORS headers computed by the gate.
	Headers response.Headers

	// Origin is the allow-listed request origin, used to build the
	// redirect targets in form mode.
	Origin string

	// JSON selects the JSON response style over redirects.
	JSON bool
}

// MailDispatcher sends a submission as an email and answers the client.
type MailDispatcher struct {
	cfg    *config.Config
	sender email.Sender
}

// NewMailDispatcher wires a dispatcher to a transport.
func NewMailDispatcher(cfg *config.Config, sender email.Sender) *MailDispatcher {
	return &MailDispatcher{
		cfg:    cfg,
		sender: sender,
	}
}

// NewMessage maps a validated payload to the outgoing email. The
// message field is embedded in a paragraph without escaping.
func (d *MailDispatcher) NewMessage(p payload.Payload) email.Message {
	return email.Message{
		From:     d.cfg.Email,
		FromName: d.cfg.Mail.FromName,
		To:       p.Get("email"),
		Subject:  p.Get("subject"),
		HTML:     "<p>" + p.Get("message") + "</p>",
	}
}

// Send makes exactly one delivery attempt and always returns a response.
// A transport error is logged through the logger carried by ctx and is
// never shown to the client.
func (d *MailDispatcher) Send(ctx context.Context, in Dispatch) events.APIGatewayProxyResponse {
	logger := zerolog.Ctx(ctx)

	if err := d.sender.Send(ctx, d.NewMessage(in.Payload)); err != nil {
		logger.Error().
			Err(err).
			Int("status", failureStatus(in.JSON)).
			Msg("error sending email")

		if in.JSON {
			return response.Error(errs.NewInternalServerError(errs.MessageSendFailed), in.Headers, true)
		}
		return response.Redirect(in.Headers, d.cfg.Redirect.ErrorURL(in.Origin))
	}

	logger.Info().Msg("email sent")

	if in.JSON {
		return response.Sent(in.Headers)
	}
	return response.Redirect(in.Headers, d.cfg.Redirect.SuccessURL(in.Origin))
}

func failureStatus(asJSON bool) int {
	if asJSON {
		return http.StatusInternalServerError
	}
	return http.StatusSeeOther
}
