// -----------------------------------------------------------------------
// Certificate service - Section 65B admissibility data records
// Assembles the certificate record; rendering is left to consumers
// -----------------------------------------------------------------------

package certificates

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/models"
)

// statementTemplate is the certificate statement body. It names the
// producing system and the digest so the record is self-describing.
const statementTemplate = `This is to certify that the attached electronic record identified as {{.FileName}} (document {{.DocumentID}}) was produced by the Scriptum document analysis system in the ordinary course of its operation on {{.IssuedAt}}. The record was derived from text extracted with a reported confidence of {{printf "%.2f" .Confidence}} and its content digest (SHA-256) is {{.Digest}}.{{if .DocumentType}} The document was classified as: {{.DocumentType}}.{{end}}`

type statementData struct {
	FileName     string
	DocumentID   string
	IssuedAt     string
	Confidence   float64
	Digest       string
	DocumentType string
}

// Service issues certificate records for stored documents.
type Service struct {
	documents    interfaces.DocumentStorage
	certificates interfaces.CertificateStorage
	tmpl         *template.Template
	logger       arbor.ILogger
}

// NewService creates a new certificate service
func NewService(documents interfaces.DocumentStorage, certificates interfaces.CertificateStorage, logger arbor.ILogger) *Service {
	return &Service{
		documents:    documents,
		certificates: certificates,
		tmpl:         template.Must(template.New("statement").Parse(statementTemplate)),
		logger:       logger,
	}
}

// Issue builds and stores the certificate record for a document. A document
// keeps at most one certificate: reissuing replaces the previous record.
func (s *Service) Issue(ctx context.Context, documentID string) (*models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.documents.GetDocument(documentID)
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{
		DocumentID:     doc.ID,
		Parties:        []string{},
		KeyInformation: map[string]string{},
		LegalTerms:     []string{},
		ContentDigest:  contentDigest(doc.RawText),
		IssuedAt:       time.Now(),
	}

	if existing, err := s.certificates.GetCertificateByDocument(doc.ID); err == nil {
		cert.ID = existing.ID
	} else {
		cert.ID = common.NewCertificateID()
	}

	confidence := 0.0
	docType := ""
	if doc.Extraction != nil {
		confidence = doc.Extraction.Confidence
		docType = doc.Extraction.DocumentType
		cert.Parties = append(cert.Parties, doc.Extraction.Parties...)
		cert.LegalTerms = append(cert.LegalTerms, doc.Extraction.LegalTerms...)
	}
	if doc.Structured != nil {
		for label, value := range doc.Structured.KeyInformation {
			cert.KeyInformation[label] = value
		}
	}

	statement, err := s.renderStatement(statementData{
		FileName:     doc.FileName,
		DocumentID:   doc.ID,
		IssuedAt:     cert.IssuedAt.Format("2 January 2006"),
		Confidence:   confidence,
		Digest:       cert.ContentDigest,
		DocumentType: docType,
	})
	if err != nil {
		return nil, err
	}
	cert.Statement = statement

	if err := s.certificates.SaveCertificate(cert); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("cert_id", cert.ID).
		Str("doc_id", doc.ID).
		Msg("Certificate issued")

	return cert, nil
}

// Get returns a certificate by its ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.certificates.GetCertificate(id)
}

// GetByDocument returns the certificate issued for a document.
func (s *Service) GetByDocument(ctx context.Context, documentID string) (*models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.certificates.GetCertificateByDocument(documentID)
}

// List returns stored certificates.
func (s *Service) List(ctx context.Context, limit int) ([]*models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.certificates.ListCertificates(limit)
}

// Verify recomputes the digest of the document's current raw text and
// compares it with the certified digest.
func (s *Service) Verify(ctx context.Context, certificateID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	cert, err := s.certificates.GetCertificate(certificateID)
	if err != nil {
		return false, err
	}
	doc, err := s.documents.GetDocument(cert.DocumentID)
	if err != nil {
		return false, err
	}
	return contentDigest(doc.RawText) == cert.ContentDigest, nil
}

func (s *Service) renderStatement(data statementData) (string, error) {
	var b strings.Builder
	if err := s.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render certificate statement: %w", err)
	}
	return b.String(), nil
}

// contentDigest is the hex-encoded SHA-256 of the raw extracted text.
func contentDigest(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return hex.EncodeToString(sum[:])
}
