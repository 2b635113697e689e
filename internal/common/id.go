package common

import (
	"github.com/google/uuid"
)

// NewDocumentID generates a unique document ID with the "doc_" prefix
// Format: doc_<uuid>
func NewDocumentID() string {
	return "doc_" + uuid.New().String()
}

// NewCertificateID generates a unique certificate ID with the "cert_" prefix
// Format: cert_<uuid>
func NewCertificateID() string {
	return "cert_" + uuid.New().String()
}
