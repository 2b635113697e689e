package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scriptum/internal/common"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor(common.GetLogger())

	text := `SERVICES AGREEMENT
This Agreement is made between Acme Corporation and Beta Industries Ltd.
Executed on 12/03/2024. The parties shall act bona fide notwithstanding any waiver.`

	meta := extractor.Extract(text, 0.87)

	assert.Equal(t, 0.87, meta.Confidence)
	assert.Equal(t, "Agreement", meta.DocumentType)
	assert.Contains(t, meta.Parties, "Acme Corporation")
	assert.Contains(t, meta.Dates, "12/03/2024")
	assert.Equal(t, []string{"notwithstanding", "bona fide", "waiver"}, meta.LegalTerms)
	assert.Equal(t, len(strings.Fields(text)), meta.WordCount)
	assert.Equal(t, len(text), meta.CharacterCount)
	assert.Equal(t, 1, meta.PageCountEstimate)
}

func TestExtractor_ExtractEmpty(t *testing.T) {
	extractor := NewExtractor(common.GetLogger())

	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := extractor.Extract(tt.text, 0)
			require.NotNil(t, meta)
			assert.Equal(t, "Unknown", meta.DocumentType)
			assert.Equal(t, "Internal", meta.Confidentiality)
			assert.Empty(t, meta.Keywords)
			assert.Zero(t, meta.WordCount)
		})
	}
}

func TestExtractor_Keywords(t *testing.T) {
	extractor := NewExtractor(common.GetLogger())

	// "payment" appears three times, "invoice" twice; stopwords and short
	// words never qualify.
	text := "The payment covers the invoice. Payment is due before the next payment cycle. Invoice terms apply."
	meta := extractor.Extract(text, 1)

	require.NotEmpty(t, meta.Keywords)
	assert.Equal(t, "payment", meta.Keywords[0])
	assert.Equal(t, "invoice", meta.Keywords[1])
	assert.NotContains(t, meta.Keywords, "this")
	assert.NotContains(t, meta.Keywords, "the")
}

func TestExtractor_KeywordCap(t *testing.T) {
	extractor := NewExtractor(common.GetLogger())

	var b strings.Builder
	for _, w := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	} {
		b.WriteString(w)
		b.WriteString(" ")
	}

	meta := extractor.Extract(b.String(), 1)
	assert.Len(t, meta.Keywords, maxKeywords)
}

func TestClassifyConfidentiality(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "strictly confidential outranks confidential", text: "STRICTLY CONFIDENTIAL draft", want: "Strictly Confidential"},
		{name: "confidential", text: "This document is Confidential.", want: "Confidential"},
		{name: "privileged", text: "Privileged and prepared for counsel.", want: "Privileged"},
		{name: "public", text: "Approved for public release.", want: "Public"},
		{name: "default", text: "An ordinary memo.", want: "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyConfidentiality(tt.text))
		})
	}
}

func TestEstimatePageCount(t *testing.T) {
	assert.Equal(t, 1, estimatePageCount("short"))
	assert.Equal(t, 1, estimatePageCount(strings.Repeat("a", charsPerPage)))
	assert.Equal(t, 2, estimatePageCount(strings.Repeat("a", charsPerPage+1)))
	assert.Equal(t, 3, estimatePageCount(strings.Repeat("a", 2*charsPerPage+5)))
}
