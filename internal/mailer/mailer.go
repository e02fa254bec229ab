// Package mailer sends transactional mail over SMTP. Only the password
// reset flow uses it.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/floydfdes/api-fridge-chef/internal/config"
)

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendPasswordReset emails the reset link. With no SMTP host configured
// the mail is logged instead of sent, so local and test environments work
// without a mail server.
func (m *Mailer) SendPasswordReset(to, token string) error {
	resetURL := fmt.Sprintf("%s/%s", strings.TrimRight(m.cfg.ResetBaseURL, "/"), token)

	body := "You are receiving this because you (or someone else) have requested the reset of the password for your account.\r\n\r\n" +
		"Please click on the following link, or paste this into your browser to complete the process:\r\n\r\n" +
		resetURL + "\r\n\r\n" +
		"If you did not request this, please ignore this email and your password will remain unchanged.\r\n"

	if m.cfg.Host == "" {
		log.Printf("SMTP not configured, skipping password reset mail to %s (link: %s)", to, resetURL)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Password Reset\r\n\r\n%s", m.cfg.From, to, body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending password reset mail: %w", err)
	}

	return nil
}
