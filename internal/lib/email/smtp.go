package email

import (
	"context"
	"crypto/tls"

	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// dialer is the part of *gomail.Dialer the sender uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends mail through an authenticated SMTP server.
//
// Port 465 uses implicit TLS and any other port upgrades with STARTTLS,
// which is how gomail.Dialer decides on its own.
type SMTPSender struct {
	dialer dialer
	host   string
	port   int
	logger *zerolog.Logger
}

// NewSMTPSender resolves the SMTP endpoint and authenticates as
// cfg.Email with cfg.Pass.
func NewSMTPSender(cfg *config.Config, logger *zerolog.Logger) (*SMTPSender, error) {
	host, port, err := cfg.Mail.Endpoint()
	if err != nil {
		return nil, err
	}

	d := gomail.NewDialer(host, port, cfg.Email, cfg.Pass)
	d.TLSConfig = &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}

	return &SMTPSender{
		dialer: d,
		host:   host,
		port:   port,
		logger: logger,
	}, nil
}

// Send opens one connection, delivers msg and closes the connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "smtp send aborted")
	}

	s.logger.Debug().
		Str("transport", "smtp").
		Str("host", s.host).
		Int("port", s.port).
		Msg("sending email")

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return errors.Wrapf(err, "smtp send via %s failed", s.host)
	}
	return nil
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	if msg.FromName != "" {
		m.SetAddressHeader("From", msg.From, msg.FromName)
	} else {
		m.SetHeader("From", msg.From)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}
