// -----------------------------------------------------------------------
// PDF text-layer engine - extracts embedded text from PDF documents
// Uses pdfcpu for Go-native PDF processing
// -----------------------------------------------------------------------

package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/interfaces"
)

// PDFTextEngine reads the embedded text layer of a PDF. Scanned-only PDFs
// without a text layer yield empty text, not an error; callers decide
// whether to retry with an image OCR engine.
type PDFTextEngine struct {
	logger  arbor.ILogger
	tempDir string
}

var _ interfaces.Engine = (*PDFTextEngine)(nil)

// NewPDFTextEngine creates a new PDF text-layer engine
func NewPDFTextEngine(logger arbor.ILogger, tempDir string) *PDFTextEngine {
	if tempDir == "" {
		tempDir = filepath.Join(os.TempDir(), "scriptum-pdf")
	}
	os.MkdirAll(tempDir, 0755)

	return &PDFTextEngine{
		logger:  logger,
		tempDir: tempDir,
	}
}

func (e *PDFTextEngine) Name() string { return "pdftext" }

func (e *PDFTextEngine) Supports(mimeType, fileName string) bool {
	if mimeType == "application/pdf" {
		return true
	}
	return strings.EqualFold(filepath.Ext(fileName), ".pdf")
}

func (e *PDFTextEngine) Extract(ctx context.Context, input interfaces.ExtractionInput) (*interfaces.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfCtx, err := api.ReadContextFile(input.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir := filepath.Join(e.tempDir, fmt.Sprintf("pages_%d", os.Getpid()))
	os.MkdirAll(outDir, 0755)
	defer os.RemoveAll(outDir)

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(input.Path, outDir, nil, conf); err != nil {
		e.logger.Warn().Err(err).Str("path", input.Path).Msg("Failed to extract PDF content")
		return &interfaces.ExtractionResult{Text: "", Confidence: 0}, nil
	}

	pageTexts := make(map[int]string)
	files, _ := os.ReadDir(outDir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err != nil {
			if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err != nil {
				continue
			}
		}
		pageTexts[pageNum] = string(content)
	}

	text := joinPages(pageTexts, pageCount)

	return &interfaces.ExtractionResult{
		Text:       text,
		Confidence: heuristicConfidence(text),
	}, nil
}

// joinPages assembles pages in order; missing pages contribute nothing.
func joinPages(pageTexts map[int]string, pageCount int) string {
	nums := make([]int, 0, len(pageTexts))
	for n := range pageTexts {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var builder strings.Builder
	for _, n := range nums {
		if n < 1 || n > pageCount {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(pageTexts[n])
	}
	return builder.String()
}
