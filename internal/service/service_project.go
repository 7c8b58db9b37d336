package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/store"
	"github.com/MKhiriev/go-saas-starter/models"
	"github.com/google/uuid"
)

// projectService is the concrete implementation of ProjectService. All
// repository calls are scoped by the owner's email; the service never
// queries a project without that scope.
type projectService struct {
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService wired to the given
// ProjectRepository.
func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// List returns the owner's projects, most recent first. An owner with no
// projects gets an empty slice.
func (s *projectService) List(ctx context.Context, owner models.User) ([]models.Project, error) {
	projects, err := s.projectRepository.FindProjectsByOwner(ctx, owner.Email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("project listing failed")
		return nil, fmt.Errorf("project listing failed: %w", err)
	}

	return projects, nil
}

// Create persists a new active project owned by the caller and returns the
// stored record as the database materialized it.
//
// Returns ErrInvalidDataProvided when the name is empty, matching the
// required-field rule signup applies to its fields.
func (s *projectService) Create(ctx context.Context, owner models.User, req models.CreateProjectRequest) (models.Project, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		log.Error().Str("owner", owner.Email).Msg("project name is required")
		return models.Project{}, ErrInvalidDataProvided
	}

	created, err := s.projectRepository.CreateProject(ctx, models.Project{
		OwnerEmail:  owner.Email,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.StatusActive,
	})
	if err != nil {
		log.Err(err).Str("owner", owner.Email).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial patch to one of the owner's projects.
//
// Validation happens before any store access: the id must be a well-formed
// UUID (ErrInvalidProjectID) and a present status must be a known value
// (ErrInvalidStatus). The ownership check and the patch are two separate
// statements; see the repository for the race semantics.
//
// Returns store.ErrProjectNotFound for a missing project and for another
// owner's project alike.
func (s *projectService) Update(ctx context.Context, owner models.User, id string, patch models.ProjectPatch) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := validateProjectID(id); err != nil {
		return models.Project{}, err
	}

	if patch.Status != nil && !models.ValidProjectStatus(*patch.Status) {
		log.Error().Str("status", *patch.Status).Msg("unknown project status in patch")
		return models.Project{}, ErrInvalidStatus
	}

	if _, err := s.projectRepository.FindProjectByID(ctx, id, owner.Email); err != nil {
		return models.Project{}, err
	}

	updated, err := s.projectRepository.UpdateProject(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("project update ended with error")
		return models.Project{}, err
	}

	return updated, nil
}

// Delete permanently removes one of the owner's projects, with the same id
// validation and collapsed not-found semantics as Update.
func (s *projectService) Delete(ctx context.Context, owner models.User, id string) error {
	if err := validateProjectID(id); err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(ctx, id, owner.Email); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("project deletion ended with error")
		return err
	}

	return nil
}

func validateProjectID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidProjectID
	}
	return nil
}
