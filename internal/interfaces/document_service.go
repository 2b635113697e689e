package interfaces

import (
	"context"

	"github.com/ternarybob/scriptum/internal/models"
)

// DocumentService handles document ingestion and retrieval.
type DocumentService interface {
	// Ingest runs text extraction on a file, analyzes the result and stores
	// the document.
	Ingest(ctx context.Context, path string, mimeTypeHint string) (*models.Document, error)

	// IngestText analyzes already-extracted text and stores the document.
	IngestText(ctx context.Context, rawText, fileNameHint string, confidence float64) (*models.Document, error)

	// Reanalyze re-runs the analyzer over a stored document's raw text.
	Reanalyze(ctx context.Context, id string) (*models.Document, error)

	GetDocument(ctx context.Context, id string) (*models.Document, error)
	ListDocuments(ctx context.Context, opts *ListOptions) ([]*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*models.DocumentStats, error)
}
