// Package tika extracts document text via an Apache Tika server, covering
// the binary formats (.pdf, .docx) the local extractor rejects.
package tika

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/pkg/textx"
)

// Extractor implements domain.TextExtractor against PUT {base}/tika.
type Extractor struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Tika-backed extractor.
func New(baseURL string, timeout time.Duration) *Extractor {
	return &Extractor{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ExtractPath uploads the file body and returns the plain-text rendering.
// Partial or reordered text is passed through as-is; downstream extraction
// is expected to tolerate it.
func (e *Extractor) ExtractPath(ctx context.Context, fileName, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("op=tika.ExtractPath: %w", err)
	}
	defer func() { _ = f.Close() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, e.baseURL+"/tika", f)
	if err != nil {
		return "", fmt.Errorf("op=tika.ExtractPath: request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("op=tika.ExtractPath: %w: %w", domain.ErrUpstreamTimeout, err)
		}
		return "", fmt.Errorf("op=tika.ExtractPath: %w: %w", domain.ErrUpstreamFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnsupportedMediaType {
		return "", fmt.Errorf("op=tika.ExtractPath: %s: %w", fileName, domain.ErrUnsupportedFormat)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("op=tika.ExtractPath: status %d: %w", resp.StatusCode, domain.ErrUpstreamFailure)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return "", fmt.Errorf("op=tika.ExtractPath: read: %w", err)
	}
	return textx.SanitizeText(string(body)), nil
}
