package ocr

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
)

// Factory selects the extraction engine for a file. Engines are consulted
// in registration order; the first one claiming support wins.
type Factory struct {
	logger  arbor.ILogger
	engines []interfaces.Engine
}

// NewFactory wires the engine set from config. The Tesseract engine is only
// registered when OCR is enabled, since it needs a native Tesseract install.
func NewFactory(cfg *common.Config, logger arbor.ILogger) *Factory {
	engines := []interfaces.Engine{
		NewPlainTextEngine(),
		NewPDFTextEngine(logger, cfg.OCR.TempDir),
	}
	if cfg.OCR.EnableOCR {
		engines = append(engines, NewTesseractEngine(logger, cfg.OCR.Language, cfg.OCR.DPI))
	}

	return &Factory{
		logger:  logger,
		engines: engines,
	}
}

// ForFile returns the first engine that supports the given file.
func (f *Factory) ForFile(mimeType, fileName string) (interfaces.Engine, error) {
	for _, engine := range f.engines {
		if engine.Supports(mimeType, fileName) {
			f.logger.Debug().
				Str("engine", engine.Name()).
				Str("file", fileName).
				Msg("Extraction engine selected")
			return engine, nil
		}
	}
	return nil, fmt.Errorf("no extraction engine for mime type %q (file %q)", mimeType, fileName)
}

// Engines returns the registered engines in selection order.
func (f *Factory) Engines() []interfaces.Engine {
	return f.engines
}
