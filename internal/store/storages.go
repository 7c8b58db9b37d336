package store

import (
	"github.com/MKhiriev/go-saas-starter/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
// It is the single injection point the service layer receives; no package
// keeps an ambient/global store reference.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
	}
}
