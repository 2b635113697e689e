package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/interfaces"
)

// TesseractEngine runs image OCR through a gosseract client. Confidence is
// the mean word confidence reported by Tesseract, scaled to [0,1].
type TesseractEngine struct {
	logger        arbor.ILogger
	language      string
	dpi           int
	clientFactory func() *gosseract.Client
}

var _ interfaces.Engine = (*TesseractEngine)(nil)

// NewTesseractEngine creates a Tesseract-backed OCR engine
func NewTesseractEngine(logger arbor.ILogger, language string, dpi int) *TesseractEngine {
	return &TesseractEngine{
		logger:        logger,
		language:      language,
		dpi:           dpi,
		clientFactory: gosseract.NewClient,
	}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

func (e *TesseractEngine) Supports(mimeType, fileName string) bool {
	if strings.HasPrefix(mimeType, "image/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".gif":
		return true
	}
	return false
}

func (e *TesseractEngine) Extract(ctx context.Context, input interfaces.ExtractionInput) (*interfaces.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := e.clientFactory()
	defer client.Close()

	if err := client.SetImage(input.Path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	language := input.Language
	if language == "" {
		language = e.language
	}
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	if e.dpi > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(e.dpi)); err != nil {
			return nil, fmt.Errorf("failed to set dpi: %w", err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to recognize text: %w", err)
	}
	text = strings.TrimSpace(text)

	confidence := wordConfidence(client)
	if confidence == 0 {
		confidence = heuristicConfidence(text)
	}

	return &interfaces.ExtractionResult{
		Text:       text,
		Confidence: confidence,
	}, nil
}

// wordConfidence averages per-word confidences, returning 0 when Tesseract
// reports no word boxes.
func wordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence / 100.0
	}
	return sum / float64(len(boxes))
}
