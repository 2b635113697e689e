package metadata

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/models"
	"github.com/ternarybob/scriptum/internal/services/analyzer"
)

// charsPerPage is the plain-text character count assumed per page when
// estimating document length.
const charsPerPage = 1800

// maxKeywords caps the keyword list on extracted metadata.
const maxKeywords = 10

// Extractor derives per-document metadata from raw extracted text. The OCR
// confidence score is carried through unmodified.
type Extractor struct {
	logger arbor.ILogger

	wordPattern *regexp.Regexp
}

// NewExtractor creates a new metadata extractor
func NewExtractor(logger arbor.ILogger) *Extractor {
	return &Extractor{
		logger:      logger,
		wordPattern: regexp.MustCompile(`[A-Za-z]{4,}`),
	}
}

// Extract computes the metadata summary for one document. It never fails:
// degenerate input yields zero counts and default classifications.
func (e *Extractor) Extract(rawText string, confidence float64) *models.ExtractionMetadata {
	meta := &models.ExtractionMetadata{
		Confidence:      confidence,
		DocumentType:    "Unknown",
		Parties:         []string{},
		Dates:           []string{},
		Keywords:        []string{},
		LegalTerms:      []string{},
		Confidentiality: "Internal",
	}

	if strings.TrimSpace(rawText) == "" {
		return meta
	}

	if docType, ok := analyzer.ClassifyDocumentType(rawText); ok {
		meta.DocumentType = docType
	}

	meta.Parties = analyzer.ExtractParties(rawText)
	meta.Dates = analyzer.ExtractDates(rawText)
	meta.Keywords = e.extractKeywords(rawText)
	meta.LegalTerms = analyzer.LegalTermsIn(rawText)
	meta.Confidentiality = classifyConfidentiality(rawText)

	meta.WordCount = len(strings.Fields(rawText))
	meta.CharacterCount = len(rawText)
	meta.PageCountEstimate = estimatePageCount(rawText)

	e.logger.Debug().
		Str("document_type", meta.DocumentType).
		Str("confidentiality", meta.Confidentiality).
		Int("word_count", meta.WordCount).
		Int("keywords", len(meta.Keywords)).
		Msg("Metadata extracted")

	return meta
}

// extractKeywords returns the most frequent non-stopword terms, ordered by
// count descending then alphabetically so output is deterministic.
func (e *Extractor) extractKeywords(text string) []string {
	counts := map[string]int{}
	for _, w := range e.wordPattern.FindAllString(strings.ToLower(text), -1) {
		if stopwords[w] {
			continue
		}
		counts[w]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}

// confidentialityLevels is checked most-restrictive first; the first marker
// present in the text wins.
var confidentialityLevels = []struct {
	marker string
	level  string
}{
	{marker: "strictly confidential", level: "Strictly Confidential"},
	{marker: "confidential", level: "Confidential"},
	{marker: "privileged", level: "Privileged"},
	{marker: "public", level: "Public"},
}

func classifyConfidentiality(text string) string {
	lower := strings.ToLower(text)
	for _, cl := range confidentialityLevels {
		if strings.Contains(lower, cl.marker) {
			return cl.level
		}
	}
	return "Internal"
}

// estimatePageCount approximates page count from character volume. Any
// non-empty document counts as at least one page.
func estimatePageCount(text string) int {
	pages := int(math.Ceil(float64(len(text)) / charsPerPage))
	if pages < 1 {
		return 1
	}
	return pages
}

// stopwords excluded from keyword extraction. Four letters and up only,
// matching the word pattern.
var stopwords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "have": true,
	"will": true, "shall": true, "been": true, "were": true, "which": true,
	"their": true, "there": true, "would": true, "could": true, "should": true,
	"other": true, "these": true, "those": true, "such": true, "upon": true,
	"into": true, "than": true, "then": true, "them": true, "they": true,
	"when": true, "where": true, "hereby": true, "herein": true, "thereof": true,
	"under": true, "over": true, "each": true, "also": true, "does": true,
}
