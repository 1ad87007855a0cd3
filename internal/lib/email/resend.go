package email

import (
	"context"

	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// emailsAPI is the part of the Resend emails service the sender uses.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender sends mail through the Resend HTTP API. cfg.Pass is the
// API key and cfg.Email must be on a domain verified with Resend.
type ResendSender struct {
	emails emailsAPI
	logger *zerolog.Logger
}

// NewResendSender initializes a Resend client with the API key from config.
func NewResendSender(cfg *config.Config, logger *zerolog.Logger) *ResendSender {
	return &ResendSender{
		emails: resend.NewClient(cfg.Pass).Emails,
		logger: logger,
	}
}

// Send makes one API call for msg.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.fromHeader(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "resend send failed")
	}

	s.logger.Debug().
		Str("transport", "resend").
		Str("email_id", sent.Id).
		Msg("email accepted")
	return nil
}
