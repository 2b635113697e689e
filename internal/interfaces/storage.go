package interfaces

import (
	"github.com/ternarybob/scriptum/internal/models"
)

// ListOptions controls document listing.
type ListOptions struct {
	DocumentType string // filter by classified document type, empty = all
	Limit        int
	Offset       int
}

// DocumentStorage - interface for document persistence
type DocumentStorage interface {
	SaveDocument(doc *models.Document) error
	GetDocument(id string) (*models.Document, error)
	ListDocuments(opts *ListOptions) ([]*models.Document, error)
	DeleteDocument(id string) error
	CountDocuments() (int, error)
	GetStats() (*models.DocumentStats, error)
	ClearAll() error
}

// CertificateStorage - interface for certificate record persistence
type CertificateStorage interface {
	SaveCertificate(cert *models.Certificate) error
	GetCertificate(id string) (*models.Certificate, error)
	GetCertificateByDocument(documentID string) (*models.Certificate, error)
	ListCertificates(limit int) ([]*models.Certificate, error)
	DeleteCertificate(id string) error
}

// StorageManager - composite interface for all storage operations
type StorageManager interface {
	DocumentStorage() DocumentStorage
	CertificateStorage() CertificateStorage
	Close() error
}
