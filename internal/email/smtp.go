package email

import (
	"fmt"

	"castingfy/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through a plain SMTP relay.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider() *SMTPProvider {
	cfg := config.GetConfig()
	return &SMTPProvider{
		dialer: gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
		),
		from: fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail),
	}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return p.dialer.DialAndSend(m)
}
