package service

import (
	"github.com/MKhiriev/go-saas-starter/internal/config"
	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/store"
)

// Services bundles every application service consumed by the transport layer.
type Services struct {
	AuthService        AuthService
	ProjectService     ProjectService
	AnalyzeService     AnalyzeService
	AppInfoService     AppInfoService
	DiagnosticsService DiagnosticsService
}

// NewServices wires all services to their repositories and configuration.
// The store handle travels only through explicit constructor injection.
func NewServices(storages *store.Storages, db *store.DB, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, logger),
		ProjectService:     NewProjectService(storages.ProjectRepository, logger),
		AnalyzeService:     NewAnalyzeService(storages.UserRepository, logger),
		AppInfoService:     NewAppInfoService(cfg.App, logger),
		DiagnosticsService: NewDiagnosticsService(db, cfg.Storage, logger),
	}
}
