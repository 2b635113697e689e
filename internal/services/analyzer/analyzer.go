// -----------------------------------------------------------------------
// DocumentStructureAnalyzer - heuristic structuring of OCR-extracted text
// Pattern-based segmentation into clauses, sections, tables and signatures
// -----------------------------------------------------------------------

package analyzer

import (
	"strings"

	"github.com/ternarybob/scriptum/internal/models"
)

// Analyzer turns raw extracted text into a structured document model. It is
// a pure function of its inputs: no I/O, no shared mutable state, fresh
// result containers on every call, safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a new document structure analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze segments raw text into the structured document model. It never
// fails: any input, including the empty string, yields a valid result with
// all containers initialized.
func (a *Analyzer) Analyze(text, fileNameHint string) *models.StructuredContent {
	result := models.NewStructuredContent()

	lines := splitLines(text)
	if len(lines) == 0 {
		return result
	}

	result.Title = detectTitle(lines)

	if hasClauseMarkers(lines) {
		a.segmentClauses(lines, result)
	} else {
		a.segmentSections(lines, result)
	}

	applyKeyInformation(text, result.KeyInformation)

	return result
}

// detectTitle returns the first plausible heading line, or "".
func detectTitle(lines []string) string {
	for _, line := range lines {
		if IsHeading(line) {
			return line
		}
	}
	return ""
}

// hasClauseMarkers reports whether any line opens a clause. Clause mode and
// section mode are mutually exclusive views of one document.
func hasClauseMarkers(lines []string) bool {
	for _, line := range lines {
		if _, _, ok := IsClauseMarker(line); ok {
			return true
		}
	}
	return false
}

// segmentClauses walks the line stream in clause mode. Prose before the
// first subclause becomes the clause content; once a subclause has been
// seen, later non-subclause prose inside the same clause is dropped from
// the model. That matches the observed behavior of the extraction pipeline
// this analyzer replaces, and downstream consumers rely on it.
func (a *Analyzer) segmentClauses(lines []string, result *models.StructuredContent) {
	var current *models.Clause
	var content []string
	seenSubclause := false

	finalize := func() {
		if current == nil {
			return
		}
		if !seenSubclause {
			current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		}
		result.Clauses = append(result.Clauses, *current)
	}

	i := 0
	for i < len(lines) {
		if ref, next, ok := detectTableRun(lines, i); ok {
			result.Tables = append(result.Tables, ref)
			i = next
			continue
		}

		line := lines[i]
		kind := ClassifyLine(line, false, current != nil)

		if kind == KindClauseMarker {
			number, title, _ := IsClauseMarker(line)
			finalize()
			current = &models.Clause{Number: number, Subclauses: []models.Subclause{}}
			content = nil
			seenSubclause = false

			// A bare marker takes the following line as its title, unless
			// that line starts a numbered run of its own.
			if title == "" && i+1 < len(lines) && !startsWithDigit(lines[i+1]) {
				title = lines[i+1]
				i++
			}
			current.Title = title
			i++
			continue
		}

		if kind == KindSubclauseMarker {
			number, text, _ := IsSubclauseMarker(line)
			if !seenSubclause {
				seenSubclause = true
				current.Content = strings.TrimSpace(strings.Join(content, "\n"))
			}
			current.Subclauses = append(current.Subclauses, models.Subclause{Number: number, Content: text})
			i++
			continue
		}

		if skip := a.collect(kind, lines, i, result); skip > 0 {
			i += skip
			continue
		}

		if current != nil && !seenSubclause {
			content = append(content, line)
		}
		i++
	}

	finalize()
}

// segmentSections walks the line stream in section mode (no clause markers
// anywhere in the input).
func (a *Analyzer) segmentSections(lines []string, result *models.StructuredContent) {
	current := models.Section{Level: 1}
	var content []string

	i := 0
	for i < len(lines) {
		if ref, next, ok := detectTableRun(lines, i); ok {
			result.Tables = append(result.Tables, ref)
			i = next
			continue
		}

		line := lines[i]
		kind := ClassifyLine(line, true, false)

		if kind == KindHeading {
			// A section without content is dropped, not emitted.
			if body := strings.TrimSpace(strings.Join(content, "\n")); body != "" {
				current.Content = body
				result.Sections = append(result.Sections, current)
			}
			current = models.Section{Heading: line, Level: HeadingLevel(line)}
			content = nil

			extractHeadingKeyInfo(line, followingLines(lines, i, 2), result.KeyInformation)
			i++
			continue
		}

		if skip := a.collect(kind, lines, i, result); skip > 0 {
			i += skip
			continue
		}

		content = append(content, line)
		i++
	}

	// Finalize the last open section; a trailing bare heading is kept.
	current.Content = strings.TrimSpace(strings.Join(content, "\n"))
	if current.Content != "" || current.Heading != "" {
		result.Sections = append(result.Sections, current)
	}
}

// collect records the non-structural kinds. It returns the number of lines
// consumed when the scan should jump ahead (signature blocks), or 0 when
// the caller should also treat the line as plain content.
func (a *Analyzer) collect(kind LineKind, lines []string, i int, result *models.StructuredContent) int {
	switch kind {
	case KindDefinition:
		term, definition, _ := IsDefinition(lines[i])
		result.Definitions[term] = definition
	case KindLegalReference:
		addLegalReference(result, lines[i])
	case KindSignatureTrigger:
		result.Signatures = append(result.Signatures, scanSignatureBlock(lines, i))
		// Jump past the block so trailing name/date lines don't re-trigger.
		return 4
	}
	return 0
}

// addLegalReference inserts a reference, truncated and deduplicated by
// exact text, preserving insertion order.
func addLegalReference(result *models.StructuredContent, line string) {
	ref := truncateReference(line)
	for _, existing := range result.LegalReferences {
		if existing == ref {
			return
		}
	}
	result.LegalReferences = append(result.LegalReferences, ref)
}

// followingLines returns up to n lines after index i.
func followingLines(lines []string, i, n int) []string {
	start := i + 1
	if start >= len(lines) {
		return nil
	}
	end := start + n
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}
