package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"circles-of-care-site/internal/domain"
)

const defaultSendTimeout = 15 * time.Second

// HTTPSender posts submissions as JSON to the contact endpoint of the site
// API. Any transport failure or non-2xx response is a failed send.
type HTTPSender struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPSender returns a sender for endpoint, e.g. https://host/v1/contact.
func NewHTTPSender(endpoint string) *HTTPSender {
	return &HTTPSender{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: defaultSendTimeout},
	}
}

// apiResponse mirrors the envelope written by the JSON API.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *HTTPSender) Send(ctx context.Context, sub domain.ContactSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("contactform: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("contactform: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var envelope apiResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		return fmt.Errorf("contactform: send rejected with status %d: %s", resp.StatusCode, envelope.Message)
	}
	return fmt.Errorf("contactform: send rejected with status %d", resp.StatusCode)
}
