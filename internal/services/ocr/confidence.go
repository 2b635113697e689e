package ocr

import (
	"regexp"
	"strings"
)

var (
	datePattern      = regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b|\b20\d{2}\b`)
	amountPattern    = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{2})\b|\b\d+\.\d{2}\b`)
	structurePattern = regexp.MustCompile(`(?i)\b(clause|article|section|agreement|party|parties)\b`)
)

// heuristicConfidence scores decoded text for engines that cannot report a
// confidence of their own. Recognisable document artifacts (dates, amounts,
// legal structure words, enough volume) each add a fixed boost to a low
// base score.
func heuristicConfidence(text string) float64 {
	score := 0.2
	if datePattern.MatchString(text) {
		score += 0.2
	}
	if amountPattern.MatchString(text) {
		score += 0.15
	}
	if structurePattern.MatchString(text) {
		score += 0.2
	}
	if len(strings.TrimSpace(text)) > 120 {
		score += 0.15
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
