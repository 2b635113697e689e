package models

import "time"

// Document is a stored document: the raw extracted text plus the analyzer's
// structured view and extraction metadata.
type Document struct {
	ID        string `json:"id"` // doc_{uuid}
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`

	RawText string `json:"raw_text"`

	Structured *StructuredContent  `json:"structured,omitempty"`
	Extraction *ExtractionMetadata `json:"extraction,omitempty"`

	// Set by storage, not by the analyzer.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentStats summarizes the document store.
type DocumentStats struct {
	TotalDocuments  int            `json:"total_documents"`
	DocumentsByType map[string]int `json:"documents_by_type"`
	LastUpdated     time.Time      `json:"last_updated"`
}
