package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Message is one outbound transactional email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Sender dispatches one message. No retry is attempted here; callers
// decide what a failed send means for them.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// APISender sends messages through the transactional email provider's
// HTTP API (JSON POST with a bearer key).
type APISender struct {
	URL    string
	APIKey string
	Client *http.Client
	Log    *zap.Logger
}

func NewAPISender(url, apiKey string, log *zap.Logger) *APISender {
	return &APISender{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{Timeout: 15 * time.Second},
		Log:    log,
	}
}

func (s *APISender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("email api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email api returned status %d", resp.StatusCode)
	}

	s.Log.Info("email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

// LogSender logs messages instead of sending them. Used in development
// when no API key is configured, so the flow can be exercised end to end
// without a provider account.
type LogSender struct {
	Log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{Log: log}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.Log.Info("email (not sent, log-only sender)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.HTML))
	return nil
}
