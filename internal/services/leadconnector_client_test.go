package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLeadConnectorSubmit(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewLeadConnectorClient(srv.URL)
	err := c.Submit(context.Background(), LeadSubmission{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "555-0100",
		Message:  "Tell me more.",
		Interest: "Case Studies",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got["full_name"] != "Jane Doe" || got["email"] != "jane@x.com" {
		t.Fatalf("unexpected payload: %v", got)
	}
	if !strings.HasPrefix(got["message"], "Interest: Case Studies\n\n") {
		t.Fatalf("interest not folded into message: %q", got["message"])
	}
}

func TestLeadConnectorSubmitFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewLeadConnectorClient(srv.URL)
	if err := c.Submit(context.Background(), LeadSubmission{Name: "x", Email: "x@x.com"}); err == nil {
		t.Fatalf("expected error on 502")
	}
}

func TestLeadConnectorRequiresURL(t *testing.T) {
	c := NewLeadConnectorClient("  ")
	if err := c.Submit(context.Background(), LeadSubmission{}); err == nil {
		t.Fatalf("expected error without form URL")
	}
}
