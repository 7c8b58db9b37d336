package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-saas-starter/internal/config"
	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/models"
)

// maxDiagnosticTables caps the table listing in the diagnostics report.
const maxDiagnosticTables = 10

// diagnosticsService implements DiagnosticsService on top of the shared
// database handle. It only reads connection metadata and never touches
// application tables directly.
type diagnosticsService struct {
	db     DatabasePinger
	dbName string
	logger *logger.Logger
}

// DatabasePinger is the narrow view of the database handle the diagnostics
// endpoint needs.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
	ListTables(ctx context.Context, limit int) ([]string, error)
}

// NewDiagnosticsService constructs a DiagnosticsService over the given
// database handle. A nil handle produces "not available" reports instead of
// errors so the endpoint stays useful while the database is down.
func NewDiagnosticsService(db DatabasePinger, cfg config.Storage, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		db:     db,
		dbName: databaseName(cfg.DB.DSN),
		logger: logger,
	}
}

// Check reports whether the backend can reach its database and which tables
// are visible. It never returns an error: failures are folded into the
// report's status strings.
func (s *diagnosticsService) Check(ctx context.Context) models.DiagnosticsReport {
	report := models.DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseName:     s.dbName,
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}

	if s.db == nil {
		return report
	}

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Err(err).Msg("diagnostics ping failed")
		report.Database = "error: " + err.Error()
		return report
	}

	report.Database = "available"
	report.ConnectionStatus = "connected"

	tables, err := s.db.ListTables(ctx, maxDiagnosticTables)
	if err != nil {
		s.logger.Err(err).Msg("diagnostics table listing failed")
		report.Database = "connected but error: " + err.Error()
		return report
	}

	report.Tables = tables
	report.Database = "connected and working"

	return report
}

// databaseName extracts the database name (the last path segment) from a DSN,
// best effort.
func databaseName(dsn string) string {
	if dsn == "" {
		return ""
	}

	name := dsn
	if i := strings.LastIndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	return name
}
