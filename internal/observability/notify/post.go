package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds one delivery attempt.
	DefaultTimeout = 5 * time.Second
	retryStep      = 200 * time.Millisecond
	maxErrorBody   = 1 << 10
)

// Poster sends JSON bodies with linear-backoff retries. Sinks embed it.
type Poster struct {
	Client  *http.Client
	Retries int
	Label   string
}

// NewPoster builds a Poster, defaulting the client timeout and clamping retries at zero.
func NewPoster(label string, client *http.Client, timeout time.Duration, retries int) Poster {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return Poster{Client: client, Retries: max(retries, 0), Label: label}
}

// PostJSON marshals v and posts it to url until it succeeds, retries run out, or ctx ends.
func (p Poster) PostJSON(ctx context.Context, url string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", p.Label, err)
	}
	var lastErr error
	for attempt := 0; attempt <= p.Retries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(time.Duration(attempt) * retryStep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		if lastErr = p.post(ctx, url, body); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (p Poster) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", p.Label, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", p.Label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s responded %s: %s", p.Label, resp.Status, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
