// Package mail implements ports.MailSender over an authenticated SMTP
// relay. Each Send opens a fresh session, transmits one message, and closes
// the session: at most one delivery attempt, no retry.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config captures the mail-relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// SSL selects implicit TLS on connect. When false the session starts
	// in plaintext and upgrades via STARTTLS.
	SSL bool
}

// Sender sends plain-text messages through the configured relay.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender builds a Sender. Credentials are required by config loading, so
// an unauthenticated relay session is not constructible.
func NewSender(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &Sender{dialer: d, from: cfg.From}
}

// Send delivers one message to one recipient. The context is checked before
// dialing; an already-cancelled request does not open a relay session.
func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
