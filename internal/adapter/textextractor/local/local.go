// Package local extracts plain text from files on disk without external
// services. It handles text-like files directly and rejects binary formats
// it cannot render, leaving those to the Tika-backed extractor.
package local

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/pkg/textx"
)

// maxFileSize bounds how much of a document is read.
const maxFileSize = 16 << 20

// Extractor implements domain.TextExtractor for plain-text content.
type Extractor struct{}

// New returns a local extractor.
func New() *Extractor { return &Extractor{} }

// ExtractPath reads the file and returns sanitized text. Content type is
// sniffed from the bytes, not the file name; anything that is not
// text-shaped maps to domain.ErrUnsupportedFormat.
func (e *Extractor) ExtractPath(ctx context.Context, fileName, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("op=local.ExtractPath: %w", err)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("op=local.ExtractPath: file too large: %w", domain.ErrInvalidArgument)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("op=local.ExtractPath: %w", err)
	}
	mt := mimetype.Detect(raw)
	if !isTextLike(mt) {
		return "", fmt.Errorf("op=local.ExtractPath: %s is %s: %w", fileName, mt.String(), domain.ErrUnsupportedFormat)
	}
	return textx.SanitizeText(string(raw)), nil
}

func isTextLike(mt *mimetype.MIME) bool {
	for cur := mt; cur != nil; cur = cur.Parent() {
		if strings.HasPrefix(cur.String(), "text/") {
			return true
		}
	}
	return false
}
