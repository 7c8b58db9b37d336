package store

import (
	"context"

	"github.com/MKhiriev/go-saas-starter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts. Lookups match
// stored values exactly; no case normalization is performed.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByAPIKey(ctx context.Context, apiKey string) (models.User, error)

	// IncrementUsage bumps usage_count and refreshes updated_at for the user
	// with the given email. A missing user is a no-op, not an error.
	IncrementUsage(ctx context.Context, email string) error
}

// ProjectRepository is the data-access contract for owner-scoped projects.
// Every read and mutation that takes an ownerEmail collapses "does not exist"
// and "exists but owned by someone else" into ErrProjectNotFound.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	FindProjectsByOwner(ctx context.Context, ownerEmail string) ([]models.Project, error)
	FindProjectByID(ctx context.Context, id string, ownerEmail string) (models.Project, error)

	// UpdateProject applies the non-nil fields of patch to the project with
	// the given id and always refreshes updated_at, returning the stored row.
	// Ownership must have been checked by the caller via FindProjectByID;
	// the update itself is keyed by id only, mirroring the find-then-patch
	// flow this API exposes.
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error)

	DeleteProject(ctx context.Context, id string, ownerEmail string) error
}
