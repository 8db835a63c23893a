package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the external chat-assistant webhook. It sits entirely
// outside the scheduling/reward core: a plain POST with a fixed-count retry.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	maxAttempts int
	backoffBase time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:     baseURL,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		maxAttempts: 3,
		backoffBase: time.Second,
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
	IsRetry   bool   `json:"isRetry,omitempty"`
	Retry     int    `json:"retryCount,omitempty"`
}

type chatResponse struct {
	Output string `json:"output"`
}

// Send posts a message to the assistant and returns its reply. On failure it
// retries after 1s, 2s, 4s, giving up after three attempts.
func (c *Client) Send(ctx context.Context, userID, message string) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("webhook URL is not configured")
	}

	endpoint := c.BaseURL + "/webhook-test/tdah"

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.backoffBase << (attempt - 1) // 1s, 2s, 4s
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		reply, err := c.post(ctx, endpoint, chatRequest{
			Message:   message,
			UserID:    userID,
			Timestamp: time.Now().Format(time.RFC3339),
			IsRetry:   attempt > 0,
			Retry:     attempt,
		})
		if err == nil {
			return reply, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("assistant unreachable after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) post(ctx context.Context, endpoint string, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Output == "" {
		return "Desculpe, não consegui processar sua mensagem.", nil
	}
	return decoded.Output, nil
}
