package email

import (
	"fmt"

	"castingfy/internal/config"
	"castingfy/internal/logger"
)

// Service renders and sends transactional mail. Delivery failures are
// logged, not propagated: registration must not fail because the
// relay is down.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// NewServiceFromConfig picks SMTP when a host is configured and the
// mock provider otherwise.
func NewServiceFromConfig() *Service {
	cfg := config.GetConfig()
	if cfg.Email.SMTPHost == "" {
		logger.Warn("email: no SMTP host configured, using mock provider")
		return NewService(NewMockProvider())
	}
	return NewService(NewSMTPProvider())
}

func (s *Service) SendVerificationEmail(to, displayName, token string) {
	subject := "Confirm your Castingfy account"
	body := fmt.Sprintf(verificationTemplate, displayName, token, token)
	if err := s.provider.Send(to, subject, body); err != nil {
		logger.Error("email: failed to send verification email", "error", err.Error(), "to", to)
	}
}

func (s *Service) SendWelcomeEmail(to, displayName string) {
	subject := "Welcome to Castingfy"
	body := fmt.Sprintf(welcomeTemplate, displayName)
	if err := s.provider.Send(to, subject, body); err != nil {
		logger.Error("email: failed to send welcome email", "error", err.Error(), "to", to)
	}
}

const verificationTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hi %s,</h2>
  <p>Thanks for signing up. Confirm your email address to activate your account:</p>
  <p><a href="https://castingfy.com/verify-email?token=%s">Confirm email</a></p>
  <p>Or paste this code into the app: <b>%s</b></p>
  <p>If you did not create an account, you can ignore this message.</p>
</body>
</html>`

const welcomeTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, %s!</h2>
  <p>Your account is verified. Complete your profile to start getting discovered.</p>
</body>
</html>`
