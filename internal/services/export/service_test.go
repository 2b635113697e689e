package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/models"
	"github.com/ternarybob/scriptum/internal/services/analyzer"
)

func analyzedDocument(t *testing.T) *models.Document {
	t.Helper()

	text := `MASTER AGREEMENT
"Business Day" means any day other than a weekend.
CLAUSE 1: Term
The term is one year.
1.1 Renewal is automatic.
CLAUSE 2: Payment
Payment is monthly.`

	return &models.Document{
		ID:         "doc_export",
		RawText:    text,
		Structured: analyzer.NewAnalyzer().Analyze(text, "agreement.txt"),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: "Structured", want: FormatStructured},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Text(t *testing.T) {
	svc := NewService(common.GetLogger(), t.TempDir())
	doc := analyzedDocument(t)

	out, err := svc.Render(doc, FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "MASTER AGREEMENT")
	assert.Contains(t, out, "CLAUSE 1: Term")
	assert.Contains(t, out, "1.1 Renewal is automatic.")
	assert.Contains(t, out, "CLAUSE 2: Payment")
	assert.Contains(t, out, "DEFINITIONS")
	assert.Contains(t, out, "Business Day: any day other than a weekend.")
}

func TestRender_TextCarriesEveryField(t *testing.T) {
	svc := NewService(common.GetLogger(), t.TempDir())

	text := `SERVICES AGREEMENT
This agreement is made between Acme Corporation and Beta Industries.
"Business Day" means any day other than a weekend.
Delivery is governed by Section 5 of the Securities Act.
PRICE SCHEDULE
Item | Qty | Price
Widget | 2 | 10.00
Signed by:
John Smith
Chief Executive Officer
Date: 12/03/2024`

	doc := &models.Document{
		ID:         "doc_export_full",
		RawText:    text,
		Structured: analyzer.NewAnalyzer().Analyze(text, "services.txt"),
	}

	out, err := svc.Render(doc, FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "TABLES")
	assert.Contains(t, out, "PRICE SCHEDULE (line 6)")
	assert.Contains(t, out, "SIGNATURES")
	assert.Contains(t, out, "John Smith, Chief Executive Officer, 12/03/2024")
	assert.Contains(t, out, "LEGAL REFERENCES")
	assert.Contains(t, out, "Section 5 of the Securities Act")
	assert.Contains(t, out, "Business Day: any day other than a weekend.")
	assert.Contains(t, out, "KEY INFORMATION")
	assert.Contains(t, out, "Document Type: Agreement")
}

func TestRender_JSONRoundTrip(t *testing.T) {
	svc := NewService(common.GetLogger(), t.TempDir())
	doc := analyzedDocument(t)

	out, err := svc.Render(doc, FormatJSON)
	require.NoError(t, err)

	var decoded models.StructuredContent
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *doc.Structured, decoded)
}

func TestRender_Structured(t *testing.T) {
	svc := NewService(common.GetLogger(), t.TempDir())
	doc := analyzedDocument(t)

	out, err := svc.Render(doc, FormatStructured)
	require.NoError(t, err)

	assert.Contains(t, out, "== Clauses ==")
	assert.Contains(t, out, "Clause 1 (Term)")
	assert.Contains(t, out, "== Definitions ==")
	assert.Contains(t, out, "Business Day: any day other than a weekend.")
}

func TestRender_NoStructure(t *testing.T) {
	svc := NewService(common.GetLogger(), t.TempDir())
	_, err := svc.Render(&models.Document{ID: "doc_empty"}, FormatText)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(common.GetLogger(), dir)
	doc := analyzedDocument(t)

	path, err := svc.Write(doc, FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, "doc_export_json.json"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.StructuredContent
	assert.NoError(t, json.Unmarshal(content, &decoded))
}
