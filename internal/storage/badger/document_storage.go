package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// DocumentStorage implements the DocumentStorage interface for Badger
type DocumentStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewDocumentStorage creates a new DocumentStorage instance
func NewDocumentStorage(db *BadgerDB, logger arbor.ILogger) interfaces.DocumentStorage {
	return &DocumentStorage{
		db:     db,
		logger: logger,
	}
}

func (s *DocumentStorage) SaveDocument(doc *models.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document ID is required")
	}

	now := time.Now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	if err := s.db.Store().Upsert(doc.ID, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (s *DocumentStorage) GetDocument(id string) (*models.Document, error) {
	var doc models.Document
	if err := s.db.Store().Get(id, &doc); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (s *DocumentStorage) ListDocuments(opts *interfaces.ListOptions) ([]*models.Document, error) {
	query := badgerhold.Where("ID").Ne("") // Select all

	// The classified type lives inside the extraction metadata, so that
	// filter runs after the scan. Limit and offset are pushed into the
	// query only when no post-filter would shrink the page afterwards.
	filtered := opts != nil && opts.DocumentType != ""
	if opts != nil && !filtered {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Skip(opts.Offset)
		}
	}

	var docs []models.Document
	if err := s.db.Store().Find(&docs, query); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	result := make([]*models.Document, 0, len(docs))
	for i := range docs {
		if filtered {
			if docs[i].Extraction == nil || docs[i].Extraction.DocumentType != opts.DocumentType {
				continue
			}
		}
		result = append(result, &docs[i])
	}

	if filtered {
		if opts.Offset > 0 {
			if opts.Offset >= len(result) {
				return []*models.Document{}, nil
			}
			result = result[opts.Offset:]
		}
		if opts.Limit > 0 && len(result) > opts.Limit {
			result = result[:opts.Limit]
		}
	}
	return result, nil
}

func (s *DocumentStorage) DeleteDocument(id string) error {
	if err := s.db.Store().Delete(id, &models.Document{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (s *DocumentStorage) CountDocuments() (int, error) {
	count, err := s.db.Store().Count(&models.Document{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return int(count), nil
}

func (s *DocumentStorage) GetStats() (*models.DocumentStats, error) {
	var docs []models.Document
	if err := s.db.Store().Find(&docs, nil); err != nil {
		return nil, fmt.Errorf("failed to load documents for stats: %w", err)
	}

	stats := &models.DocumentStats{
		TotalDocuments:  len(docs),
		DocumentsByType: make(map[string]int),
	}
	for i := range docs {
		docType := "Unknown"
		if docs[i].Extraction != nil && docs[i].Extraction.DocumentType != "" {
			docType = docs[i].Extraction.DocumentType
		}
		stats.DocumentsByType[docType]++
		if docs[i].UpdatedAt.After(stats.LastUpdated) {
			stats.LastUpdated = docs[i].UpdatedAt
		}
	}
	return stats, nil
}

func (s *DocumentStorage) ClearAll() error {
	if err := s.db.Store().DeleteMatching(&models.Document{}, nil); err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}
	s.logger.Debug().Msg("All documents cleared")
	return nil
}
