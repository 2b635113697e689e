package interfaces

import "context"

// ExtractionInput describes one file handed to a text-extraction engine.
type ExtractionInput struct {
	Path     string // path to the file on disk
	MimeType string // mime type hint, may be empty
	Language string // OCR language hint, may be empty
}

// ExtractionResult is the engine output: decoded text plus a confidence
// score in [0,1]. Engines that cannot score their output leave Confidence
// at zero; callers fall back to a heuristic score.
type ExtractionResult struct {
	Text       string
	Confidence float64
}

// Engine extracts text from a file. Implementations are black boxes to the
// analyzer; it does not care whether text came from a PDF text layer or an
// image OCR pass.
type Engine interface {
	Name() string
	Extract(ctx context.Context, input ExtractionInput) (*ExtractionResult, error)
	Supports(mimeType, fileName string) bool
}
