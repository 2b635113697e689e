package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/scriptum/internal/interfaces"
)

// PlainTextEngine handles files that already are text. Decoding is exact,
// so confidence is always 1.
type PlainTextEngine struct{}

var _ interfaces.Engine = (*PlainTextEngine)(nil)

// NewPlainTextEngine creates a new plain text engine
func NewPlainTextEngine() *PlainTextEngine {
	return &PlainTextEngine{}
}

func (e *PlainTextEngine) Name() string { return "plaintext" }

func (e *PlainTextEngine) Supports(mimeType, fileName string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".text", ".md":
		return true
	}
	return false
}

func (e *PlainTextEngine) Extract(ctx context.Context, input interfaces.ExtractionInput) (*interfaces.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	return &interfaces.ExtractionResult{
		Text:       string(content),
		Confidence: 1.0,
	}, nil
}
