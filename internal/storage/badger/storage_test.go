package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/models"
)

func newTestManager(t *testing.T) interfaces.StorageManager {
	t.Helper()

	cfg := &common.BadgerConfig{Path: t.TempDir()}
	manager, err := NewManager(common.GetLogger(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	return manager
}

func testDocument(id, docType string) *models.Document {
	return &models.Document{
		ID:       id,
		FileName: "contract.txt",
		MimeType: "text/plain",
		RawText:  "CLAUSE 1: Term\nBody text.",
		Structured: &models.StructuredContent{
			Clauses: []models.Clause{{Number: "1", Title: "Term", Content: "Body text."}},
		},
		Extraction: &models.ExtractionMetadata{
			DocumentType: docType,
			Confidence:   0.9,
		},
	}
}

func TestDocumentStorage_SaveAndGet(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	doc := testDocument("doc_1", "Agreement")
	require.NoError(t, storage.SaveDocument(doc))
	assert.False(t, doc.CreatedAt.IsZero())
	assert.False(t, doc.UpdatedAt.IsZero())

	loaded, err := storage.GetDocument("doc_1")
	require.NoError(t, err)
	assert.Equal(t, "contract.txt", loaded.FileName)
	assert.Equal(t, "Agreement", loaded.Extraction.DocumentType)
	require.Len(t, loaded.Structured.Clauses, 1)
	assert.Equal(t, "Term", loaded.Structured.Clauses[0].Title)
}

func TestDocumentStorage_SaveRequiresID(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()
	assert.Error(t, storage.SaveDocument(&models.Document{}))
}

func TestDocumentStorage_GetMissing(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()
	_, err := storage.GetDocument("doc_missing")
	assert.Error(t, err)
}

func TestDocumentStorage_List(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	require.NoError(t, storage.SaveDocument(testDocument("doc_1", "Agreement")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_2", "Invoice")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_3", "Invoice")))

	all, err := storage.ListDocuments(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	invoices, err := storage.ListDocuments(&interfaces.ListOptions{DocumentType: "Invoice"})
	require.NoError(t, err)
	assert.Len(t, invoices, 2)

	limited, err := storage.ListDocuments(&interfaces.ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDocumentStorage_ListFilteredWithLimit(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	// Interleave types so a scan-side limit would cut invoices short.
	require.NoError(t, storage.SaveDocument(testDocument("doc_1", "Agreement")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_2", "Agreement")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_3", "Invoice")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_4", "Invoice")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_5", "Invoice")))

	invoices, err := storage.ListDocuments(&interfaces.ListOptions{DocumentType: "Invoice", Limit: 2})
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	for _, doc := range invoices {
		assert.Equal(t, "Invoice", doc.Extraction.DocumentType)
	}

	rest, err := storage.ListDocuments(&interfaces.ListOptions{DocumentType: "Invoice", Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	none, err := storage.ListDocuments(&interfaces.ListOptions{DocumentType: "Invoice", Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocumentStorage_Delete(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	require.NoError(t, storage.SaveDocument(testDocument("doc_1", "Agreement")))
	require.NoError(t, storage.DeleteDocument("doc_1"))

	_, err := storage.GetDocument("doc_1")
	assert.Error(t, err)

	// Deleting a missing document is not an error.
	assert.NoError(t, storage.DeleteDocument("doc_1"))
}

func TestDocumentStorage_CountAndStats(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	require.NoError(t, storage.SaveDocument(testDocument("doc_1", "Agreement")))
	require.NoError(t, storage.SaveDocument(testDocument("doc_2", "Invoice")))

	count, err := storage.CountDocuments()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stats, err := storage.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 1, stats.DocumentsByType["Agreement"])
	assert.Equal(t, 1, stats.DocumentsByType["Invoice"])
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestDocumentStorage_ClearAll(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	require.NoError(t, storage.SaveDocument(testDocument("doc_1", "Agreement")))
	require.NoError(t, storage.ClearAll())

	count, err := storage.CountDocuments()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCertificateStorage_SaveAndGet(t *testing.T) {
	storage := newTestManager(t).CertificateStorage()

	cert := &models.Certificate{
		ID:            "cert_1",
		DocumentID:    "doc_1",
		Statement:     "This certifies the attached output.",
		Parties:       []string{"Acme Corporation"},
		LegalTerms:    []string{"waiver"},
		ContentDigest: "abc123",
	}
	require.NoError(t, storage.SaveCertificate(cert))
	assert.False(t, cert.IssuedAt.IsZero())

	loaded, err := storage.GetCertificate("cert_1")
	require.NoError(t, err)
	assert.Equal(t, "doc_1", loaded.DocumentID)
	assert.Equal(t, "abc123", loaded.ContentDigest)

	byDoc, err := storage.GetCertificateByDocument("doc_1")
	require.NoError(t, err)
	assert.Equal(t, "cert_1", byDoc.ID)
}

func TestCertificateStorage_Validation(t *testing.T) {
	storage := newTestManager(t).CertificateStorage()

	assert.Error(t, storage.SaveCertificate(&models.Certificate{DocumentID: "doc_1"}))
	assert.Error(t, storage.SaveCertificate(&models.Certificate{ID: "cert_1"}))
}

func TestCertificateStorage_ListAndDelete(t *testing.T) {
	storage := newTestManager(t).CertificateStorage()

	require.NoError(t, storage.SaveCertificate(&models.Certificate{ID: "cert_1", DocumentID: "doc_1"}))
	require.NoError(t, storage.SaveCertificate(&models.Certificate{ID: "cert_2", DocumentID: "doc_2"}))

	certs, err := storage.ListCertificates(0)
	require.NoError(t, err)
	assert.Len(t, certs, 2)

	require.NoError(t, storage.DeleteCertificate("cert_1"))
	certs, err = storage.ListCertificates(0)
	require.NoError(t, err)
	assert.Len(t, certs, 1)

	_, err = storage.GetCertificateByDocument("doc_1")
	assert.Error(t, err)
}
