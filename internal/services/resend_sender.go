package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

// ResendSender delivers email through the Resend HTTP API. Body is sent
// as HTML.
type ResendSender struct {
	APIKey     string
	From       string
	BaseURL    string
	HTTPClient *http.Client
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		APIKey:     apiKey,
		From:       from,
		BaseURL:    resendAPIURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ResendSender) Send(to string, subject string, body string) error {
	if strings.TrimSpace(s.APIKey) == "" {
		return errors.New("resend API key is required")
	}

	payload := map[string]any{
		"from":    s.From,
		"to":      []string{to},
		"subject": subject,
		"html":    body,
	}
	b, _ := json.Marshal(payload)

	url := s.BaseURL
	if url == "" {
		url = resendAPIURL
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	hc := s.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}
