// Package ollama implements the text-generation collaborator against a
// local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/observability"
)

// Client talks to POST {base}/api/generate. Generation is issued without
// streaming and with a stop marker on code fences so the model does not
// trail the JSON object with prose.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	log        *slog.Logger
}

// New builds a client. timeout bounds a single HTTP exchange; the caller's
// context bounds the whole call including retries.
func New(baseURL string, timeout time.Duration, maxRetries int, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		log:        log,
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64  `json:"temperature"`
	NumPredict  int      `json:"num_predict"`
	Stop        []string `json:"stop"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Generate implements domain.Generator. Transient failures (connection
// errors, 5xx) are retried with exponential backoff up to maxRetries;
// client errors and context expiry are not.
func (c *Client) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
			Stop:        []string{"```"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("op=ollama.Generate: encode: %w", err)
	}

	var out string
	operation := func() error {
		var opErr error
		out, opErr = c.doGenerate(ctx, body)
		return opErr
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			observability.GenerationRequests.WithLabelValues("timeout").Inc()
			return "", fmt.Errorf("op=ollama.Generate: %w: %w", domain.ErrUpstreamTimeout, err)
		}
		observability.GenerationRequests.WithLabelValues("error").Inc()
		return "", err
	}
	observability.GenerationRequests.WithLabelValues("ok").Inc()
	return out, nil
}

func (c *Client) doGenerate(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("op=ollama.Generate: request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", backoff.Permanent(ctx.Err())
		}
		c.log.Warn("generation request failed, may retry", slog.Any("error", err))
		return "", fmt.Errorf("op=ollama.Generate: %w: %w", domain.ErrUpstreamFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("op=ollama.Generate: read: %w: %w", domain.ErrUpstreamFailure, err)
	}
	switch {
	case resp.StatusCode >= 500:
		c.log.Warn("generation server error, may retry", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("op=ollama.Generate: status %d: %w", resp.StatusCode, domain.ErrUpstreamFailure)
	case resp.StatusCode != http.StatusOK:
		return "", backoff.Permanent(fmt.Errorf("op=ollama.Generate: status %d: %w", resp.StatusCode, domain.ErrUpstreamFailure))
	}

	var gr generateResponse
	if err := json.Unmarshal(payload, &gr); err != nil {
		return "", backoff.Permanent(fmt.Errorf("op=ollama.Generate: decode: %w: %w", domain.ErrUpstreamFailure, err))
	}
	if gr.Error != "" {
		return "", backoff.Permanent(fmt.Errorf("op=ollama.Generate: %s: %w", gr.Error, domain.ErrUpstreamFailure))
	}
	return gr.Response, nil
}
