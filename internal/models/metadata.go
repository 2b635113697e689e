package models

// ExtractionMetadata is the per-extraction summary computed alongside the
// structured content. It is produced once per extraction call and never
// updated incrementally.
type ExtractionMetadata struct {
	Confidence        float64  `json:"confidence"` // OCR confidence, 0..1, passed through unmodified
	DocumentType      string   `json:"document_type"`
	Parties           []string `json:"parties"`
	Dates             []string `json:"dates"`
	Keywords          []string `json:"keywords"`
	LegalTerms        []string `json:"legal_terms"`
	Confidentiality   string   `json:"confidentiality"`
	WordCount         int      `json:"word_count"`
	CharacterCount    int      `json:"character_count"`
	PageCountEstimate int      `json:"page_count_estimate"`
}
