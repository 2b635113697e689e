package documents

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/services/ocr"
	"github.com/ternarybob/scriptum/internal/storage/badger"
)

func newTestService(t *testing.T) interfaces.DocumentService {
	t.Helper()

	cfg := common.NewDefaultConfig()
	cfg.OCR.TempDir = t.TempDir()
	cfg.OCR.EnableOCR = false

	manager, err := badger.NewManager(common.GetLogger(), &common.BadgerConfig{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	factory := ocr.NewFactory(cfg, common.GetLogger())
	return NewService(manager.DocumentStorage(), factory, common.GetLogger())
}

func TestService_IngestTextFile(t *testing.T) {
	svc := newTestService(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "contract.txt")
	content := "SERVICES AGREEMENT\nThis Agreement is made between Acme Corporation and Beta Industries Ltd.\nCLAUSE 1: Term\nThe term is one year."
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := svc.Ingest(context.Background(), path, "text/plain")
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "contract.txt", doc.FileName)
	assert.Equal(t, int64(len(content)), doc.SizeBytes)
	assert.Equal(t, content, doc.RawText)
	assert.Equal(t, 1.0, doc.Extraction.Confidence)
	assert.Equal(t, "Agreement", doc.Extraction.DocumentType)
	require.Len(t, doc.Structured.Clauses, 1)
	assert.Equal(t, "Term", doc.Structured.Clauses[0].Title)

	// Round trip through storage.
	loaded, err := svc.GetDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, "Agreement", loaded.Extraction.DocumentType)
}

func TestService_IngestMissingFile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Ingest(context.Background(), "/nonexistent/contract.txt", "text/plain")
	assert.Error(t, err)
}

func TestService_IngestUnsupportedType(t *testing.T) {
	svc := newTestService(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "archive.zip")
	require.NoError(t, os.WriteFile(path, []byte("not really a zip"), 0644))

	_, err := svc.Ingest(context.Background(), path, "application/zip")
	assert.Error(t, err)
}

func TestService_IngestText(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.IngestText(context.Background(), "INVOICE NO: INV-2024-001\nTOTAL DUE: $1,250.00", "scan.png", 0.72)
	require.NoError(t, err)

	assert.Equal(t, 0.72, doc.Extraction.Confidence)
	assert.Equal(t, "Invoice", doc.Extraction.DocumentType)
	assert.Equal(t, "INV-2024-001", doc.Structured.KeyInformation["Invoice Number"])
}

func TestService_Reanalyze(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.IngestText(context.Background(), "CLAUSE 1: Term\nBody.", "a.txt", 0.5)
	require.NoError(t, err)

	again, err := svc.Reanalyze(context.Background(), doc.ID)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, again.ID)
	assert.Equal(t, 0.5, again.Extraction.Confidence)
	assert.Equal(t, doc.Structured, again.Structured)
}

func TestService_ListAndStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.IngestText(ctx, "This agreement between A and B.", "a.txt", 1)
	require.NoError(t, err)
	_, err = svc.IngestText(ctx, "INVOICE\nAmount due: 10.00", "b.txt", 1)
	require.NoError(t, err)

	docs, err := svc.ListDocuments(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 1, stats.DocumentsByType["Agreement"])
	assert.Equal(t, 1, stats.DocumentsByType["Invoice"])
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.IngestText(ctx, "Some text.", "a.txt", 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(ctx, doc.ID))
	_, err = svc.GetDocument(ctx, doc.ID)
	assert.Error(t, err)
}
