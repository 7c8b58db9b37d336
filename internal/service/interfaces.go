package service

import (
	"context"

	"github.com/MKhiriev/go-saas-starter/models"
)

// AuthService owns the account lifecycle: signup, login, and API-key
// resolution. Accounts are stateless between requests; the API key returned
// at signup is the only credential a client ever holds.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ResolveAPIKey is the authorization primitive behind every protected
	// operation. An empty key and an unknown key fail with the same error.
	ResolveAPIKey(ctx context.Context, apiKey string) (models.User, error)
}

// ProjectService exposes owner-scoped CRUD over projects. Every operation
// takes the resolved authenticated user as its authorization context.
type ProjectService interface {
	List(ctx context.Context, owner models.User) ([]models.Project, error)
	Create(ctx context.Context, owner models.User, req models.CreateProjectRequest) (models.Project, error)
	Update(ctx context.Context, owner models.User, id string, patch models.ProjectPatch) (models.Project, error)
	Delete(ctx context.Context, owner models.User, id string) error
}

// AnalyzeService performs the metered text-analysis operation.
type AnalyzeService interface {
	Analyze(ctx context.Context, user models.User, text string) (models.AnalysisResult, error)
}

// AppInfoService reports the service name and version for the info endpoint.
type AppInfoService interface {
	Info(ctx context.Context) models.AppInfo
}

// DiagnosticsService produces the deployment health report for the
// diagnostics endpoint.
type DiagnosticsService interface {
	Check(ctx context.Context) models.DiagnosticsReport
}
