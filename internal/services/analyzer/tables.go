package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ternarybob/scriptum/internal/models"
)

// multiColumnPattern matches lines whose columns are separated by runs of
// three or more spaces.
var multiColumnPattern = regexp.MustCompile(`\S\s{3,}\S`)

// isTableRow reports whether a line looks like one row of a table: at least
// two pipe separators, or wide-space separated columns.
func isTableRow(line string) bool {
	if strings.Count(line, "|") >= 2 {
		return true
	}
	return multiColumnPattern.MatchString(line)
}

// detectTableRun checks whether a table starts at index i. A candidate row
// is confirmed only when one of the next two lines also qualifies; the
// returned next index skips past all consecutive qualifying lines so table
// contents never reach the line classifier. Location is the 1-based line
// number of the first row.
func detectTableRun(lines []string, i int) (models.TableRef, int, bool) {
	if !isTableRow(lines[i]) {
		return models.TableRef{}, 0, false
	}

	confirmed := false
	for j := i + 1; j <= i+2 && j < len(lines); j++ {
		if isTableRow(lines[j]) {
			confirmed = true
			break
		}
	}
	if !confirmed {
		return models.TableRef{}, 0, false
	}

	next := i
	for next < len(lines) && isTableRow(lines[next]) {
		next++
	}

	ref := models.TableRef{
		Description: tableDescription(lines, i),
		Location:    strconv.Itoa(i + 1),
	}
	return ref, next, true
}

// tableDescription returns the nearest preceding line that mentions a table
// or schedule, defaulting to "Table".
func tableDescription(lines []string, i int) string {
	for j := i - 1; j >= 0; j-- {
		lower := strings.ToLower(lines[j])
		if strings.Contains(lower, "table") || strings.Contains(lower, "schedule") {
			return lines[j]
		}
	}
	return "Table"
}
