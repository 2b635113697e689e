// -----------------------------------------------------------------------
// Document service - ingestion pipeline from file to stored document
// extraction engine -> structure analyzer -> metadata -> storage
// -----------------------------------------------------------------------

package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/models"
	"github.com/ternarybob/scriptum/internal/services/analyzer"
	"github.com/ternarybob/scriptum/internal/services/metadata"
	"github.com/ternarybob/scriptum/internal/services/ocr"
)

// Service implements DocumentService interface
type Service struct {
	storage           interfaces.DocumentStorage
	engines           *ocr.Factory
	analyzer          *analyzer.Analyzer
	metadataExtractor *metadata.Extractor
	logger            arbor.ILogger
}

// NewService creates a new document service
func NewService(
	storage interfaces.DocumentStorage,
	engines *ocr.Factory,
	logger arbor.ILogger,
) interfaces.DocumentService {
	return &Service{
		storage:           storage,
		engines:           engines,
		analyzer:          analyzer.NewAnalyzer(),
		metadataExtractor: metadata.NewExtractor(logger),
		logger:            logger,
	}
}

// Ingest runs the full pipeline for a file on disk.
func (s *Service) Ingest(ctx context.Context, path string, mimeTypeHint string) (*models.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	fileName := filepath.Base(path)
	engine, err := s.engines.ForFile(mimeTypeHint, fileName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("file", fileName).
		Str("engine", engine.Name()).
		Msg("Extracting text")

	result, err := engine.Extract(ctx, interfaces.ExtractionInput{
		Path:     path,
		MimeType: mimeTypeHint,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", fileName, err)
	}

	doc := s.buildDocument(result.Text, fileName, result.Confidence)
	doc.MimeType = mimeTypeHint
	doc.SizeBytes = info.Size()

	if err := s.storage.SaveDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.logger.Info().
		Str("doc_id", doc.ID).
		Str("file", fileName).
		Str("type", doc.Extraction.DocumentType).
		Int("clauses", len(doc.Structured.Clauses)).
		Int("sections", len(doc.Structured.Sections)).
		Msg("Document ingested")

	return doc, nil
}

// IngestText analyzes already-extracted text, e.g. output of an external
// OCR run, and stores the result.
func (s *Service) IngestText(ctx context.Context, rawText, fileNameHint string, confidence float64) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := s.buildDocument(rawText, fileNameHint, confidence)
	doc.SizeBytes = int64(len(rawText))

	if err := s.storage.SaveDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.logger.Info().
		Str("doc_id", doc.ID).
		Str("type", doc.Extraction.DocumentType).
		Msg("Text ingested")

	return doc, nil
}

// Reanalyze re-runs the analyzer and metadata extraction over a stored
// document's raw text, keeping its identity and original confidence.
func (s *Service) Reanalyze(ctx context.Context, id string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.storage.GetDocument(id)
	if err != nil {
		return nil, err
	}

	confidence := 0.0
	if doc.Extraction != nil {
		confidence = doc.Extraction.Confidence
	}

	doc.Structured = s.analyzer.Analyze(doc.RawText, doc.FileName)
	doc.Extraction = s.metadataExtractor.Extract(doc.RawText, confidence)

	if err := s.storage.SaveDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to save reanalyzed document: %w", err)
	}

	s.logger.Info().Str("doc_id", doc.ID).Msg("Document reanalyzed")
	return doc, nil
}

func (s *Service) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.storage.GetDocument(id)
}

func (s *Service) ListDocuments(ctx context.Context, opts *interfaces.ListOptions) ([]*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.storage.ListDocuments(opts)
}

func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.storage.DeleteDocument(id)
}

func (s *Service) GetStats(ctx context.Context) (*models.DocumentStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.storage.GetStats()
}

// buildDocument assembles a new document from raw text: fresh ID, analyzed
// structure and extraction metadata.
func (s *Service) buildDocument(rawText, fileName string, confidence float64) *models.Document {
	return &models.Document{
		ID:         common.NewDocumentID(),
		FileName:   fileName,
		RawText:    rawText,
		Structured: s.analyzer.Analyze(rawText, fileName),
		Extraction: s.metadataExtractor.Extract(rawText, confidence),
	}
}
