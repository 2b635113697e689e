package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/services/certificates"
	"github.com/ternarybob/scriptum/internal/services/documents"
	"github.com/ternarybob/scriptum/internal/services/export"
	"github.com/ternarybob/scriptum/internal/services/ocr"
	"github.com/ternarybob/scriptum/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	DocumentService    interfaces.DocumentService
	ExportService      *export.Service
	CertificateService *certificates.Service
}

// New wires the full application from a loaded config.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	storageManager, err := badger.NewManager(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	engineFactory := ocr.NewFactory(cfg, logger)

	app := &App{
		Config:         cfg,
		Logger:         logger,
		StorageManager: storageManager,

		DocumentService: documents.NewService(storageManager.DocumentStorage(), engineFactory, logger),
		ExportService:   export.NewService(logger, cfg.Export.OutputDir),
		CertificateService: certificates.NewService(
			storageManager.DocumentStorage(),
			storageManager.CertificateStorage(),
			logger,
		),
	}

	logger.Info().Str("environment", cfg.Environment).Msg("Application initialized")
	return app, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.StorageManager != nil {
		return a.StorageManager.Close()
	}
	return nil
}
