package models

// StructuredContent is the structured view of a document produced by the
// analyzer. Clauses and Sections are alternative views of the same text:
// when clause markers are found the flat Sections list stays empty, and
// vice versa.
type StructuredContent struct {
	Title           string            `json:"title,omitempty"`
	Sections        []Section         `json:"sections"`
	Clauses         []Clause          `json:"clauses"`
	Tables          []TableRef        `json:"tables"`
	Signatures      []SignatureBlock  `json:"signatures"`
	LegalReferences []string          `json:"legal_references"`
	Definitions     map[string]string `json:"definitions"`
	KeyInformation  map[string]string `json:"key_information"`
}

// Section is a heading-delimited span of text with an inferred outline level.
type Section struct {
	Heading string `json:"heading,omitempty"`
	Content string `json:"content"`
	Level   int    `json:"level"`
}

// Clause is a numbered legal paragraph (CLAUSE / Article / Section n).
type Clause struct {
	Number     string      `json:"number"`
	Title      string      `json:"title,omitempty"`
	Content    string      `json:"content"`
	Subclauses []Subclause `json:"subclauses"`
}

// Subclause is a numbered sub-paragraph within a clause (1.1, (a), 2) ...).
type Subclause struct {
	Number  string `json:"number"`
	Content string `json:"content"`
}

// TableRef flags a detected tabular region. Table contents are not parsed,
// only located.
type TableRef struct {
	Description string `json:"description"`
	Location    string `json:"location"` // 1-based line number of the first row
}

// SignatureBlock holds whatever could be recovered around a signature
// trigger line. All fields are independently optional.
type SignatureBlock struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Date     string `json:"date,omitempty"`
}

// NewStructuredContent returns an empty result with all containers
// initialized, so every analysis yields valid (possibly empty) sequences.
func NewStructuredContent() *StructuredContent {
	return &StructuredContent{
		Sections:        []Section{},
		Clauses:         []Clause{},
		Tables:          []TableRef{},
		Signatures:      []SignatureBlock{},
		LegalReferences: []string{},
		Definitions:     map[string]string{},
		KeyInformation:  map[string]string{},
	}
}
