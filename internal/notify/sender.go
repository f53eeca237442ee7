package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"impactohub-backend/internal/database/models"
)

//go:generate mockgen -source=sender.go -destination=../mocks/sender_mock.go -package=mocks

// Sender delivers a persisted notification to an external channel
type Sender interface {
	Send(notification *models.Notification) error
}

// WebhookSender posts notifications to a delivery webhook
type WebhookSender struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewWebhookSender creates a new webhook sender
func NewWebhookSender(baseURL, token string, timeout time.Duration) *WebhookSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSender{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts a single notification to the webhook endpoint
func (s *WebhookSender) Send(notification *models.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("delivery endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// NoopSender is used when no delivery webhook is configured; rows are still
// persisted for the in-app feed.
type NoopSender struct{}

// Send does nothing
func (NoopSender) Send(_ *models.Notification) error {
	return nil
}
