// Package mailer sends transactional email through the Resend REST API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured means no API key was provided at startup.
var ErrNotConfigured = errors.New("API de e-mail não configurada. Configure a chave RESEND_API_KEY.")

// Message is one outgoing email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Client posts messages to a Resend-compatible endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New returns a client. An empty baseURL targets the public Resend API; the
// key may be empty, in which case Send fails with ErrNotConfigured.
func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type apiError struct {
	Message string `json:"message"`
}

// Send delivers the message. Non-2xx responses surface the provider's
// message text.
func (c *Client) Send(ctx context.Context, m Message) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("erro ao enviar e-mail: %s", body.Message)
	}
	return fmt.Errorf("erro ao enviar e-mail: status %d", resp.StatusCode)
}
