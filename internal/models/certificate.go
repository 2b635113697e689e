package models

import "time"

// Certificate is the data record behind a Section 65B admissibility
// certificate. Rendering the certificate into a deliverable document is a
// concern of the consuming workflow, not of this service.
type Certificate struct {
	ID         string `json:"id"` // cert_{uuid}
	DocumentID string `json:"document_id"`

	Statement      string            `json:"statement"`
	Parties        []string          `json:"parties"`
	KeyInformation map[string]string `json:"key_information"`
	LegalTerms     []string          `json:"legal_terms"`

	// SHA-256 digest of the raw extracted text, hex encoded.
	ContentDigest string `json:"content_digest"`

	IssuedAt time.Time `json:"issued_at"`
}
