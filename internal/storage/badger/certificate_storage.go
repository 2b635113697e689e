package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// CertificateStorage implements the CertificateStorage interface for Badger
type CertificateStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewCertificateStorage creates a new CertificateStorage instance
func NewCertificateStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CertificateStorage {
	return &CertificateStorage{
		db:     db,
		logger: logger,
	}
}

func (s *CertificateStorage) SaveCertificate(cert *models.Certificate) error {
	if cert.ID == "" {
		return fmt.Errorf("certificate ID is required")
	}
	if cert.DocumentID == "" {
		return fmt.Errorf("certificate document ID is required")
	}
	if cert.IssuedAt.IsZero() {
		cert.IssuedAt = time.Now()
	}

	if err := s.db.Store().Upsert(cert.ID, cert); err != nil {
		return fmt.Errorf("failed to save certificate: %w", err)
	}
	return nil
}

func (s *CertificateStorage) GetCertificate(id string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.db.Store().Get(id, &cert); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("certificate not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &cert, nil
}

func (s *CertificateStorage) GetCertificateByDocument(documentID string) (*models.Certificate, error) {
	var certs []models.Certificate
	err := s.db.Store().Find(&certs, badgerhold.Where("DocumentID").Eq(documentID))
	if err != nil {
		return nil, fmt.Errorf("failed to find certificate: %w", err)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("no certificate for document: %s", documentID)
	}
	return &certs[0], nil
}

func (s *CertificateStorage) ListCertificates(limit int) ([]*models.Certificate, error) {
	query := badgerhold.Where("ID").Ne("")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var certs []models.Certificate
	if err := s.db.Store().Find(&certs, query); err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}

	result := make([]*models.Certificate, len(certs))
	for i := range certs {
		result[i] = &certs[i]
	}
	return result, nil
}

func (s *CertificateStorage) DeleteCertificate(id string) error {
	if err := s.db.Store().Delete(id, &models.Certificate{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	return nil
}
