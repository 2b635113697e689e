package badger

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db          *BadgerDB
	document    interfaces.DocumentStorage
	certificate interfaces.CertificateStorage
	logger      arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:          db,
		document:    NewDocumentStorage(db, logger),
		certificate: NewCertificateStorage(db, logger),
		logger:      logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// DocumentStorage returns the Document storage interface
func (m *Manager) DocumentStorage() interfaces.DocumentStorage {
	return m.document
}

// CertificateStorage returns the Certificate storage interface
func (m *Manager) CertificateStorage() interfaces.CertificateStorage {
	return m.certificate
}

// Close closes the underlying database
func (m *Manager) Close() error {
	return m.db.Close()
}
