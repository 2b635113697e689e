package analyzer

import (
	"strings"

	"github.com/ternarybob/scriptum/internal/models"
)

// scanSignatureBlock recovers a signature block from the lines around a
// trigger at index i. Name, position and date are each optional: the window
// covers up to three lines ahead, falling back to the two lines before the
// trigger for a name.
func scanSignatureBlock(lines []string, i int) models.SignatureBlock {
	var block models.SignatureBlock

	for j := i + 1; j <= i+3 && j < len(lines); j++ {
		line := lines[j]
		if isDateLine(line) {
			if block.Date == "" {
				block.Date = extractDateToken(line)
			}
			continue
		}
		if signatureRulePattern.MatchString(line) || IsSignatureTrigger(line) {
			continue
		}
		if block.Name == "" {
			block.Name = line
			continue
		}
		if block.Position == "" {
			block.Position = line
		}
	}

	if block.Name == "" {
		for j := i - 1; j >= i-2 && j >= 0; j-- {
			line := lines[j]
			if isDateLine(line) || signatureRulePattern.MatchString(line) || IsSignatureTrigger(line) {
				continue
			}
			if IsHeading(line) {
				continue
			}
			block.Name = line
			break
		}
	}

	return block
}

// isDateLine reports whether a line carries a date: either the word "date"
// or a date-shaped token.
func isDateLine(line string) bool {
	if strings.Contains(strings.ToLower(line), "date") {
		return true
	}
	return numericDateTokenPattern.MatchString(line) || monthNamePattern.MatchString(line)
}

// extractDateToken pulls the date-shaped token out of a line, falling back
// to the text after a "Date:" label, then to the whole line.
func extractDateToken(line string) string {
	if m := numericDateTokenPattern.FindString(line); m != "" {
		return m
	}
	if m := monthNamePattern.FindString(line); m != "" {
		return m
	}
	if idx := strings.Index(strings.ToLower(line), "date"); idx >= 0 {
		rest := strings.TrimLeft(line[idx+len("date"):], ":. \t")
		if rest != "" {
			return rest
		}
	}
	return line
}
