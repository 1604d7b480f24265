package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/repify/repify/common"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/metrics"
)

const (
	StatusForwarded = "forwarded"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// Lead is one contact form submission. It is forwarded and never stored.
type Lead struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Goal        string    `json:"goal"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Normalize trims surrounding whitespace from every field
func (l Lead) Normalize() Lead {
	l.Name = strings.TrimSpace(l.Name)
	l.Email = strings.TrimSpace(l.Email)
	l.Goal = strings.TrimSpace(l.Goal)
	return l
}

// Forwarder delivers leads to a webhook. A Forwarder with no URL drops leads.
type Forwarder struct {
	webhookURL string
	client     *retryablehttp.Client
}

// NewForwarder creates a Forwarder posting JSON to webhookURL
func NewForwarder(webhookURL string, config common.RetryConfig) *Forwarder {
	return &Forwarder{
		webhookURL: webhookURL,
		client:     common.NewRetryableClient("contact-webhook", config),
	}
}

// Enabled reports whether leads leave the process
func (f *Forwarder) Enabled() bool {
	return f != nil && f.webhookURL != ""
}

// Forward posts the lead to the webhook and returns the delivery status.
func (f *Forwarder) Forward(ctx context.Context, lead Lead) (string, error) {
	if !f.Enabled() || lead.Email == "" {
		metrics.RecordLead(StatusSkipped)
		return StatusSkipped, nil
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return StatusFailed, fmt.Errorf("failed to encode lead: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(body))
	if err != nil {
		metrics.RecordLead(StatusFailed)
		return StatusFailed, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.RecordLead(StatusFailed)
		return StatusFailed, fmt.Errorf("failed to deliver lead: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordLead(StatusFailed)
		return StatusFailed, fmt.Errorf("webhook responded with status: %s", resp.Status)
	}

	metrics.RecordLead(StatusForwarded)
	logger.Debugf("Lead forwarded for goal %q", lead.Goal)
	return StatusForwarded, nil
}
