package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// LineKind tags the classification of a single trimmed line. Rules are
// evaluated in a fixed order: clause marker, subclause marker (only inside a
// clause), heading (section mode only), definition, legal reference,
// signature trigger, content. The first matching rule wins.
type LineKind int

const (
	KindContent LineKind = iota
	KindClauseMarker
	KindSubclauseMarker
	KindHeading
	KindDefinition
	KindLegalReference
	KindSignatureTrigger
)

var (
	// "CLAUSE 3:", "Article IV.", "Section 12 Payment terms". Keyword is
	// case-insensitive; Roman numerals must be upper-case.
	clauseMarkerPattern = regexp.MustCompile(`^(?i:clause|article|section)\s+(\d+|[IVXLCDM]+)\s*[.:]?\s*(.*)$`)

	// Subclause forms: "1.1 text", "(a) text", "2)b text".
	subclauseDottedPattern   = regexp.MustCompile(`^(\d+\.\d+)\.?\s+(.+)$`)
	subclauseLetteredPattern = regexp.MustCompile(`^\(([a-z])\)\s+(.+)$`)
	subclauseParenPattern    = regexp.MustCompile(`^(\d+\)[a-z]?)\s*(.+)$`)

	headingCapsPattern     = regexp.MustCompile(`^[A-Z0-9\s.]{3,}$`)
	headingNumberedPattern = regexp.MustCompile(`^\d+\.\s+[A-Z]`)
	headingDottedPattern   = regexp.MustCompile(`^\d+\.\d+\.?\s+[A-Z]`)
	headingLetteredPattern = regexp.MustCompile(`^[a-z]\)\s+[A-Z]`)
	headingRomanPattern    = regexp.MustCompile(`^[IVXLCDM]+\.\s+[A-Z]`)

	levelRomanPattern   = regexp.MustCompile(`^[IVXLCDM]+\.\s`)
	levelDottedPattern  = regexp.MustCompile(`^\d+\.\d+\.?\s`)
	levelNumericPattern = regexp.MustCompile(`^\d+\.\s`)
	levelLetterPattern  = regexp.MustCompile(`^[a-z]\)\s`)

	definitionPattern = regexp.MustCompile(`^["']?([^"']{1,80}?)["']?\s+(?i:means|shall\s+mean|is\s+defined\s+as)\s+(.+)$`)

	uscPattern             = regexp.MustCompile(`\d+\s+U\.S\.C\.\s+§+\s*\d+`)
	actReferencePattern    = regexp.MustCompile(`(?:Section|Article)\s+(?:[IVXLCDM]+|\d+)\s+of\s+the\s+[A-Z][A-Za-z\s]*(?:Act|Code|Regulation|Statute)`)
	signatureWordPattern   = regexp.MustCompile(`(?i)signature|signed\s+by`)
	signatureRulePattern   = regexp.MustCompile(`[_X]{10,}`)
	startsWithDigitPattern = regexp.MustCompile(`^\d`)
)

// maxReferenceLength is the cap applied to captured legal references before
// dedup insertion.
const maxReferenceLength = 150

// ClassifyLine applies the rule precedence to one trimmed line. The clause
// and subclause rules only apply in clause mode, the heading rule only in
// section mode, and the subclause rule only while a clause is open; the
// caller passes that state in.
func ClassifyLine(line string, sectionMode, inClause bool) LineKind {
	if sectionMode {
		if IsHeading(line) {
			return KindHeading
		}
	} else {
		if _, _, ok := IsClauseMarker(line); ok {
			return KindClauseMarker
		}
		if inClause {
			if _, _, ok := IsSubclauseMarker(line); ok {
				return KindSubclauseMarker
			}
		}
	}
	if _, _, ok := IsDefinition(line); ok {
		return KindDefinition
	}
	if IsLegalReference(line) {
		return KindLegalReference
	}
	if IsSignatureTrigger(line) {
		return KindSignatureTrigger
	}
	return KindContent
}

// IsClauseMarker reports whether a line opens a clause, returning its number
// and any trailing title text.
func IsClauseMarker(line string) (number, title string, ok bool) {
	m := clauseMarkerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// IsSubclauseMarker reports whether a line opens a subclause, returning the
// marker and the remaining content. Only meaningful while inside a clause.
func IsSubclauseMarker(line string) (number, content string, ok bool) {
	if m := subclauseDottedPattern.FindStringSubmatch(line); m != nil {
		return m[1], strings.TrimSpace(m[2]), true
	}
	if m := subclauseLetteredPattern.FindStringSubmatch(line); m != nil {
		return "(" + m[1] + ")", strings.TrimSpace(m[2]), true
	}
	if m := subclauseParenPattern.FindStringSubmatch(line); m != nil {
		return m[1], strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// IsHeading reports whether a line reads as a section heading.
func IsHeading(line string) bool {
	if len(line) >= 100 {
		return false
	}
	if isAllUpper(line) {
		return true
	}
	if headingCapsPattern.MatchString(line) {
		return true
	}
	if headingDottedPattern.MatchString(line) || headingNumberedPattern.MatchString(line) {
		return true
	}
	if headingLetteredPattern.MatchString(line) || headingRomanPattern.MatchString(line) {
		return true
	}
	return false
}

// HeadingLevel assigns an outline level to a heading line. Rules are
// evaluated in a fixed precedence order; the first match wins.
func HeadingLevel(line string) int {
	switch {
	case levelRomanPattern.MatchString(line):
		return 1
	case levelDottedPattern.MatchString(line):
		return 3
	case levelNumericPattern.MatchString(line):
		return 2
	case levelLetterPattern.MatchString(line):
		return 4
	case len(line) < 20 && isAllUpper(line):
		return 1
	default:
		return 2
	}
}

// IsDefinition reports whether a line defines a term, returning the term and
// its definition text.
func IsDefinition(line string) (term, definition string, ok bool) {
	m := definitionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// IsLegalReference reports whether a line cites a statute, section or
// article.
func IsLegalReference(line string) bool {
	if strings.Contains(line, "Section") || strings.Contains(line, "Article") {
		return true
	}
	if uscPattern.MatchString(line) {
		return true
	}
	return actReferencePattern.MatchString(line)
}

// IsSignatureTrigger reports whether a line marks a signature area: either
// signature wording or a signing rule of underscores / X placeholders.
func IsSignatureTrigger(line string) bool {
	return signatureWordPattern.MatchString(line) || signatureRulePattern.MatchString(line)
}

// truncateReference caps a captured reference for storage.
func truncateReference(ref string) string {
	if len(ref) > maxReferenceLength {
		return ref[:maxReferenceLength] + "..."
	}
	return ref
}

func startsWithDigit(line string) bool {
	return startsWithDigitPattern.MatchString(line)
}

// isAllUpper reports whether a line is entirely upper-case and contains at
// least one letter.
func isAllUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// splitLines breaks raw text into trimmed, non-empty lines. Blank lines are
// dropped before classification, so paragraph boundaries are not preserved
// in reconstructed content.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
