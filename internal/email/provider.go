package email

// Provider delivers a single rendered message.
type Provider interface {
	Send(to, subject, htmlBody string) error
}
