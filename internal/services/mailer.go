package services

import (
	"gopkg.in/gomail.v2"

	"github.com/venkatesh481825/HRMS/internal/config"
)

// Mailer sends a message with a plain-text body and an HTML alternative to a
// single recipient. Dispatch is best effort: callers report failures but do
// not roll back the state change the mail announces.
type Mailer interface {
	Send(to, subject, textBody, htmlBody string) error
}

// SMTPMailer delivers mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

// Send delivers one message. The plain-text body is the primary part with
// the HTML body as alternative, so clients without HTML still render it.
func (m *SMTPMailer) Send(to, subject, textBody, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
