// Package chats is the trip assistant: questions are forwarded to a webhook and its
// plain-text answer is relayed over HTTP or a websocket.
package chats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"suratguide/logger"
)

const (
	Greeting      = "Hello! How can I help you plan your trip?"
	EmptyReply    = "Got it! Let me process that."
	FailureReply  = "Sorry, I couldn't connect to the assistant."
	maxReplyBytes = 64 << 10
)

var errNoWebhook = errors.New("chat webhook not configured")

// Assistant posts questions to the configured webhook.
type Assistant struct {
	webhookURL string
	httpClient *http.Client
	log        *logger.Logger
}

func NewAssistant(webhookURL string, timeout time.Duration, log *logger.Logger) *Assistant {
	return &Assistant{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "assistant"),
	}
}

// Ask never fails: transport and status errors turn into FailureReply and an empty
// body into EmptyReply. The question is posted as given.
func (a *Assistant) Ask(ctx context.Context, question string) string {
	reply, err := a.ask(ctx, question)
	if err != nil {
		a.log.Warn("assistant request failed", "error", err)
		return FailureReply
	}
	if reply == "" {
		return EmptyReply
	}
	return reply
}

func (a *Assistant) ask(ctx context.Context, question string) (string, error) {
	if a.webhookURL == "" {
		return "", errNoWebhook
	}

	payload, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("read reply: %w", err)
	}
	return string(body), nil
}
