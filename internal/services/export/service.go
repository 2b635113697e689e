package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/models"
)

// Format selects an export rendering.
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatStructured Format = "structured"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatStructured:
		return FormatStructured, nil
	}
	return "", fmt.Errorf("unknown export format %q (want text, json or structured)", s)
}

// Service renders stored documents into export formats. Every rendering is
// derived from the structured content alone, so exports stay stable across
// re-ingestion of the same text.
type Service struct {
	logger    arbor.ILogger
	outputDir string
}

// NewService creates a new export service
func NewService(logger arbor.ILogger, outputDir string) *Service {
	return &Service{
		logger:    logger,
		outputDir: outputDir,
	}
}

// Render produces the requested rendering of a document.
func (s *Service) Render(doc *models.Document, format Format) (string, error) {
	if doc.Structured == nil {
		return "", fmt.Errorf("document %s has no structured content", doc.ID)
	}

	switch format {
	case FormatText:
		return renderText(doc.Structured), nil
	case FormatJSON:
		return renderJSON(doc.Structured)
	case FormatStructured:
		return renderStructured(doc.Structured), nil
	}
	return "", fmt.Errorf("unknown export format %q", format)
}

// Write renders a document and writes it under the output directory,
// returning the file path.
func (s *Service) Write(doc *models.Document, format Format) (string, error) {
	content, err := s.Render(doc, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := "txt"
	if format == FormatJSON {
		ext = "json"
	}
	path := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.%s", doc.ID, format, ext))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	s.logger.Info().Str("doc_id", doc.ID).Str("path", path).Msg("Export written")
	return path, nil
}

// renderText flattens the structure into plain text, preserving clause and
// subclause numbering and appending a block for each remaining field.
func renderText(sc *models.StructuredContent) string {
	var b strings.Builder

	if sc.Title != "" {
		b.WriteString(sc.Title)
		b.WriteString("\n\n")
	}

	for _, sec := range sc.Sections {
		if sec.Heading != "" {
			b.WriteString(sec.Heading)
			b.WriteString("\n")
		}
		if sec.Content != "" {
			b.WriteString(sec.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, c := range sc.Clauses {
		b.WriteString("CLAUSE ")
		b.WriteString(c.Number)
		if c.Title != "" {
			b.WriteString(": ")
			b.WriteString(c.Title)
		}
		b.WriteString("\n")
		if c.Content != "" {
			b.WriteString(c.Content)
			b.WriteString("\n")
		}
		for _, sub := range c.Subclauses {
			b.WriteString(sub.Number)
			b.WriteString(" ")
			b.WriteString(sub.Content)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sc.Tables) > 0 {
		b.WriteString("TABLES\n")
		for _, tbl := range sc.Tables {
			fmt.Fprintf(&b, "%s (line %s)\n", tbl.Description, tbl.Location)
		}
		b.WriteString("\n")
	}

	if len(sc.Signatures) > 0 {
		b.WriteString("SIGNATURES\n")
		for _, sig := range sc.Signatures {
			fmt.Fprintf(&b, "%s, %s, %s\n", sig.Name, sig.Position, sig.Date)
		}
		b.WriteString("\n")
	}

	if len(sc.LegalReferences) > 0 {
		b.WriteString("LEGAL REFERENCES\n")
		for _, ref := range sc.LegalReferences {
			b.WriteString(ref)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sc.Definitions) > 0 {
		b.WriteString("DEFINITIONS\n")
		for _, term := range sortedKeys(sc.Definitions) {
			fmt.Fprintf(&b, "%s: %s\n", term, sc.Definitions[term])
		}
		b.WriteString("\n")
	}

	if len(sc.KeyInformation) > 0 {
		b.WriteString("KEY INFORMATION\n")
		for _, label := range sortedKeys(sc.KeyInformation) {
			fmt.Fprintf(&b, "%s: %s\n", label, sc.KeyInformation[label])
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// renderJSON dumps the structure verbatim.
func renderJSON(sc *models.StructuredContent) (string, error) {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal structured content: %w", err)
	}
	return string(data), nil
}

// renderStructured produces a labeled report covering every extracted
// field.
func renderStructured(sc *models.StructuredContent) string {
	var b strings.Builder

	writeHeader := func(name string) {
		b.WriteString("== ")
		b.WriteString(name)
		b.WriteString(" ==\n")
	}

	if sc.Title != "" {
		writeHeader("Title")
		b.WriteString(sc.Title)
		b.WriteString("\n\n")
	}

	if len(sc.Sections) > 0 {
		writeHeader("Sections")
		for _, sec := range sc.Sections {
			fmt.Fprintf(&b, "[L%d] %s\n%s\n", sec.Level, sec.Heading, sec.Content)
		}
		b.WriteString("\n")
	}

	if len(sc.Clauses) > 0 {
		writeHeader("Clauses")
		for _, c := range sc.Clauses {
			fmt.Fprintf(&b, "Clause %s", c.Number)
			if c.Title != "" {
				fmt.Fprintf(&b, " (%s)", c.Title)
			}
			b.WriteString("\n")
			if c.Content != "" {
				b.WriteString(c.Content)
				b.WriteString("\n")
			}
			for _, sub := range c.Subclauses {
				fmt.Fprintf(&b, "  %s %s\n", sub.Number, sub.Content)
			}
		}
		b.WriteString("\n")
	}

	if len(sc.Tables) > 0 {
		writeHeader("Tables")
		for _, tbl := range sc.Tables {
			fmt.Fprintf(&b, "%s (line %s)\n", tbl.Description, tbl.Location)
		}
		b.WriteString("\n")
	}

	if len(sc.Signatures) > 0 {
		writeHeader("Signatures")
		for _, sig := range sc.Signatures {
			fmt.Fprintf(&b, "Name: %s  Position: %s  Date: %s\n", sig.Name, sig.Position, sig.Date)
		}
		b.WriteString("\n")
	}

	if len(sc.LegalReferences) > 0 {
		writeHeader("Legal References")
		for _, ref := range sc.LegalReferences {
			b.WriteString(ref)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sc.Definitions) > 0 {
		writeHeader("Definitions")
		for _, term := range sortedKeys(sc.Definitions) {
			fmt.Fprintf(&b, "%s: %s\n", term, sc.Definitions[term])
		}
		b.WriteString("\n")
	}

	if len(sc.KeyInformation) > 0 {
		writeHeader("Key Information")
		for _, label := range sortedKeys(sc.KeyInformation) {
			fmt.Fprintf(&b, "%s: %s\n", label, sc.KeyInformation[label])
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// sortedKeys keeps map-backed report blocks deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
