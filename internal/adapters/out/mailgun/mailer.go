// Package mailgun implements the mailer port against the Mailgun HTTP API.
package mailgun

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.mailgun.net/v3"

// Mailer sends transactional email through a Mailgun domain.
type Mailer struct {
	client  *http.Client
	baseURL string
	domain  string
	apiKey  string
	from    string
}

// NewMailer creates a mailer for the Mailgun domain. The from address is
// used as the sender of every message.
func NewMailer(domain, apiKey, from string) *Mailer {
	return &Mailer{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		domain:  domain,
		apiKey:  apiKey,
		from:    from,
	}
}

// NewMailerWithBaseURL is NewMailer pointed at a non-default API endpoint.
// Used for the EU region and for tests.
func NewMailerWithBaseURL(baseURL, domain, apiKey, from string) *Mailer {
	m := NewMailer(domain, apiKey, from)
	m.baseURL = strings.TrimSuffix(baseURL, "/")

	return m
}

// SendVerificationEmail sends the account verification code to the address.
func (m *Mailer) SendVerificationEmail(ctx context.Context, to, code string) error {
	form := url.Values{}
	form.Set("from", m.from)
	form.Set("to", to)
	form.Set("subject", "Verify your email")
	form.Set("text", "Your verification code is "+code)

	endpoint := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build mailgun request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailgun responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
