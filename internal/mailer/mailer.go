// Package mailer sends best-effort notification email over SMTP. Delivery
// failure is never surfaced to HTTP callers; the caller logs and moves on.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"wildcats_backend/internal/config"
)

// Mailer sends plaintext notifications to the configured operator address.
type Mailer struct {
	cfg config.SMTPConfig
}

// New creates a Mailer. Enabled() is false when no SMTP host is configured.
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether sending is configured at all.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.NotifyEmail != ""
}

// Notify sends a plaintext message to the operator notification address.
func (m *Mailer) Notify(subject, body string) error {
	if !m.Enabled() {
		return nil
	}

	from := m.cfg.Username
	if from == "" {
		from = m.cfg.NotifyEmail
	}

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + m.cfg.NotifyEmail,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, from, []string{m.cfg.NotifyEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
