package config

import (
	"fmt"
	"strings"
)

// SMTPEndpoint is a host and port pair for a well-known mail service.
type SMTPEndpoint struct {
	Host string
	Port int
}

// Services lists the SMTP services that can be selected by name alone.
// Port 465 means implicit TLS; 587 means STARTTLS.
var Services = map[string]SMTPEndpoint{
	"gmail":   {Host: "smtp.gmail.com", Port: 465},
	"outlook": {Host: "smtp-mail.outlook.com", Port: 587},
	"hotmail": {Host: "smtp-mail.outlook.com", Port: 587},
	"yahoo":   {Host: "smtp.mail.yahoo.com", Port: 465},
	"icloud":  {Host: "smtp.mail.me.com", Port: 587},
}

// Endpoint resolves the SMTP host and port.
//
// An explicit SMTPHost wins over Service. A missing port defaults to the
// service's port, or 587 for a custom host.
func (m MailConfig) Endpoint() (string, int, error) {
	if host := strings.TrimSpace(m.SMTPHost); host != "" {
		port := m.SMTPPort
		if port == 0 {
			port = 587
		}
		return host, port, nil
	}

	known, ok := Services[strings.ToLower(strings.TrimSpace(m.Service))]
	if !ok {
		return "", 0, fmt.Errorf("unknown mail service %q: set mail.smtp_host", m.Service)
	}

	port := known.Port
	if m.SMTPPort != 0 {
		port = m.SMTPPort
	}
	return known.Host, port, nil
}
