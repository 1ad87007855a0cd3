// Package email provides the outbound mail transports.
//
// Two transports are available behind the Sender interface: SMTP
// (gomail, for gmail and other well-known services) and Resend
// (resend-go). The relay only ever sends one message per invocation
// and never retries.
package email

import (
	"context"
	"fmt"

	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/rs/zerolog"
)

// Message is one outbound email.
type Message struct {
	// From is the authenticated sender address.
	From string

	// FromName is an optional display name for From.
	FromName string

	To      string
	Subject string

	// HTML is sent as-is, without escaping.
	HTML string
}

// Sender delivers a Message. Implementations make exactly one attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the transport selected by mail.transport.
func NewSender(cfg *config.Config, logger *zerolog.Logger) (Sender, error) {
	switch cfg.Mail.Transport {
	case "smtp":
		return NewSMTPSender(cfg, logger)
	case "resend":
		return NewResendSender(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.Mail.Transport)
	}
}

// fromHeader formats the From value as `Name <address>` when a display
// name is configured.
func (m Message) fromHeader() string {
	if m.FromName == "" {
		return m.From
	}
	return fmt.Sprintf("%s <%s>", m.FromName, m.From)
}
