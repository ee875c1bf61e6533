// Package mailrelay is a minimal HTTP client for the transactional
// email relay that fronts the business SMTP account. The relay accepts
// a JSON inquiry payload and answers {success, message}.
package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the email relay endpoint.
type Client struct {
	httpClient *http.Client
	relayURL   string
}

// NewClient constructs a new relay client with sane defaults.
func NewClient(relayURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		relayURL:   relayURL,
	}
}

// InquiryEmail is the notification payload for a new contact inquiry.
// Phone and newsletter are optional; everything else is required by the
// relay.
type InquiryEmail struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Subject             string `json:"subject"`
	Message             string `json:"message"`
	ReferenceID         string `json:"referenceId"`
	SubscribeNewsletter bool   `json:"subscribeNewsletter,omitempty"`
}

// SendResult is the relay's answer.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendInquiryNotification posts the inquiry payload to the relay.
// Single attempt, no retry; the caller decides whether a failure is
// fatal (for inquiry submission it never is).
func (c *Client) SendInquiryNotification(ctx context.Context, email *InquiryEmail) (*SendResult, error) {
	payload, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	if os.Getenv("ENV") == "development" {
		log.Debug().Str("endpoint", c.relayURL).RawJSON("payload", payload).Msg("[MAILRELAY] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result SendResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.Success {
		return &result, fmt.Errorf("relay refused message: %s", result.Message)
	}
	return &result, nil
}
