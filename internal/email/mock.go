package email

import "sync"

// MockProvider records messages instead of sending them. Used in
// tests and when no SMTP host is configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []MockMessage
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to, subject, htmlBody string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, MockMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// LastTo returns the recipient of the most recent message, or "".
func (p *MockProvider) LastTo() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Sent) == 0 {
		return ""
	}
	return p.Sent[len(p.Sent)-1].To
}
