package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type LeadSubmission struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Interest string
}

// LeadRelay forwards contact submissions to an external CRM.
type LeadRelay interface {
	Submit(ctx context.Context, lead LeadSubmission) error
}

// LeadConnectorClient posts contact form submissions to a LeadConnector
// form endpoint.
type LeadConnectorClient struct {
	formURL    string
	httpClient *http.Client
}

func NewLeadConnectorClient(formURL string) *LeadConnectorClient {
	return &LeadConnectorClient{
		formURL:    strings.TrimSpace(formURL),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *LeadConnectorClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

func (c *LeadConnectorClient) Submit(ctx context.Context, lead LeadSubmission) error {
	if c.formURL == "" {
		return errors.New("leadconnector form URL is required")
	}

	message := lead.Message
	if lead.Interest != "" {
		message = "Interest: " + lead.Interest + "\n\n" + message
	}

	payload := map[string]string{
		"full_name": lead.Name,
		"email":     lead.Email,
		"phone":     lead.Phone,
		"message":   message,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("leadconnector submit failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
