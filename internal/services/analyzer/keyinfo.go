package analyzer

import (
	"regexp"
	"strings"
)

// Key-information labels. Extractors follow first-writer-wins semantics:
// once a label is set it is never overwritten, and empty values are never
// stored.
const (
	LabelDocumentType  = "Document Type"
	LabelInvoiceNumber = "Invoice Number"
	LabelTotalAmount   = "Total Amount"
	LabelDocumentDate  = "Document Date"
	LabelPartyA        = "Party A"
	LabelPartyB        = "Party B"
	LabelReference     = "Reference"
	LabelParties       = "Parties"
)

var (
	invoiceNumberPattern = regexp.MustCompile(`(?i:(?:invoice|reference|ref)(?:\s+no\.?)?)[:.\s]+([A-Z0-9\-]{3,})`)
	totalAmountPattern   = regexp.MustCompile(`(?i:(?:total|amount)(?:\s+due)?)\s*[:.]?\s*[$£€]?\s*([0-9][0-9,]*(?:\.[0-9]{2})?)`)

	betweenPartiesPattern = regexp.MustCompile(`(?i:between)\s+([^.]{3,50})\s+and\s+([^.]{3,50})`)
	corporatePartyPattern = regexp.MustCompile(`[A-Z][A-Za-z&',.\- ]{2,40}\s(?:Inc|LLC|Ltd|LLP|Corp|Corporation|Company|GmbH|Pvt|PLC)\.?`)
	salutationPattern     = regexp.MustCompile(`(?:Mr|Mrs|Ms|Dr)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`)

	datedPattern            = regexp.MustCompile(`(?i:(?:dated|date)[:.\s]+)(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	numericDateTokenPattern = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`)
	monthNamePattern        = regexp.MustCompile(`(?:\d{1,2}(?:st|nd|rd|th)?\s+)?(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}|\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December),?\s+\d{4}`)
)

// documentTypeRule is one ordered classification rule; the first rule whose
// keywords are all present wins and no further rules are evaluated.
type documentTypeRule struct {
	docType  string
	keywords []string // all must be present (lower-cased substring match)
	anyOf    []string // alternative: any one present
}

var documentTypeRules = []documentTypeRule{
	{docType: "Agreement", keywords: []string{"agreement", "between"}},
	{docType: "Invoice", anyOf: []string{"invoice", "amount due"}},
	{docType: "Contract", anyOf: []string{"contract"}, keywords: nil},
	{docType: "Contract", keywords: []string{"terms", "conditions"}},
	{docType: "Insurance Policy", keywords: []string{"policy", "insurance"}},
	{docType: "Receipt", anyOf: []string{"receipt"}},
}

// ClassifyDocumentType runs the ordered keyword rules over the full text.
// It returns false when no rule matches.
func ClassifyDocumentType(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range documentTypeRules {
		if matchesRule(lower, rule) {
			return rule.docType, true
		}
	}
	return "", false
}

func matchesRule(lower string, rule documentTypeRule) bool {
	if len(rule.anyOf) > 0 {
		for _, kw := range rule.anyOf {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
	for _, kw := range rule.keywords {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return len(rule.keywords) > 0
}

// ExtractParties collects party names from salutation and corporate-suffix
// patterns, deduplicated by exact text in order of first appearance.
func ExtractParties(text string) []string {
	parties := []string{}
	seen := map[string]bool{}

	if m := betweenPartiesPattern.FindStringSubmatch(text); m != nil {
		for _, p := range []string{strings.TrimSpace(m[1]), strings.TrimSpace(m[2])} {
			if p != "" && !seen[p] {
				seen[p] = true
				parties = append(parties, p)
			}
		}
	}

	for _, pattern := range []*regexp.Regexp{corporatePartyPattern, salutationPattern} {
		for _, m := range pattern.FindAllString(text, -1) {
			p := strings.TrimSpace(m)
			if p != "" && !seen[p] {
				seen[p] = true
				parties = append(parties, p)
			}
		}
	}

	return parties
}

// ExtractDates collects every date-shaped token in the text, deduplicated
// in order of first appearance.
func ExtractDates(text string) []string {
	dates := []string{}
	seen := map[string]bool{}
	for _, pattern := range []*regexp.Regexp{numericDateTokenPattern, monthNamePattern} {
		for _, m := range pattern.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				dates = append(dates, m)
			}
		}
	}
	return dates
}

// applyKeyInformation runs the full-text extractors in their fixed order,
// merging results first-writer-wins.
func applyKeyInformation(text string, keyInfo map[string]string) {
	if docType, ok := ClassifyDocumentType(text); ok {
		setKeyInfo(keyInfo, LabelDocumentType, docType)

		if docType == "Invoice" {
			if m := invoiceNumberPattern.FindStringSubmatch(text); m != nil {
				setKeyInfo(keyInfo, LabelInvoiceNumber, m[1])
			}
			if m := totalAmountPattern.FindStringSubmatch(text); m != nil {
				setKeyInfo(keyInfo, LabelTotalAmount, m[1])
			}
		}
	}

	if m := betweenPartiesPattern.FindStringSubmatch(text); m != nil {
		setKeyInfo(keyInfo, LabelPartyA, strings.TrimSpace(m[1]))
		setKeyInfo(keyInfo, LabelPartyB, strings.TrimSpace(m[2]))
	}

	if m := datedPattern.FindStringSubmatch(text); m != nil {
		setKeyInfo(keyInfo, LabelDocumentDate, m[1])
	} else if m := monthNamePattern.FindString(text); m != "" {
		setKeyInfo(keyInfo, LabelDocumentDate, m)
	}
}

// headingLabelRule maps heading wording to a key-information label.
type headingLabelRule struct {
	label    string
	keywords []string // all must be present in the lower-cased heading
}

var headingLabelRules = []headingLabelRule{
	{label: LabelInvoiceNumber, keywords: []string{"invoice", "no"}},
	{label: LabelInvoiceNumber, keywords: []string{"invoice", "number"}},
	{label: LabelDocumentDate, keywords: []string{"date"}},
	{label: LabelTotalAmount, keywords: []string{"total"}},
	{label: LabelTotalAmount, keywords: []string{"amount"}},
	{label: LabelParties, keywords: []string{"parties"}},
	{label: LabelReference, keywords: []string{"reference"}},
}

// extractHeadingKeyInfo captures a key-information value from a heading and
// the following context lines. The value is whatever follows a colon on the
// heading itself, else the first context line.
func extractHeadingKeyInfo(heading string, context []string, keyInfo map[string]string) {
	lower := strings.ToLower(heading)

	for _, rule := range headingLabelRules {
		matched := true
		for _, kw := range rule.keywords {
			if !strings.Contains(lower, kw) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		value := ""
		if idx := strings.Index(heading, ":"); idx >= 0 {
			value = strings.TrimSpace(heading[idx+1:])
		}
		if value == "" && len(context) > 0 {
			value = context[0]
		}
		if rule.label == LabelTotalAmount {
			value = strings.TrimLeft(value, "$£€ \t")
		}
		setKeyInfo(keyInfo, rule.label, value)
		return
	}
}

// setKeyInfo writes a label only when unset and the value is non-empty.
func setKeyInfo(keyInfo map[string]string, label, value string) {
	if value == "" {
		return
	}
	if _, exists := keyInfo[label]; exists {
		return
	}
	keyInfo[label] = value
}
