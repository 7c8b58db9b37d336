package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/utils"
	"github.com/MKhiriev/go-saas-starter/models"
	sq "github.com/Masterminds/squirrel"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. Project identifiers are UUIDs generated here at insert
// time, so two concurrent creates can never collide.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateProject persists a new project and returns the stored row as the
// database materialized it (status default, server-side timestamps).
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProject, r.ids.Generate(), project.OwnerEmail, project.Name, project.Description, project.Status)

	created, err := scanProject(row)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error creating project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindProjectsByOwner returns every project owned by ownerEmail, most recent
// first. An owner with no projects yields an empty slice, not an error.
func (r *projectRepository) FindProjectsByOwner(ctx context.Context, ownerEmail string) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findProjectsByOwner, ownerEmail)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.FindProjectsByOwner").Msg("error querying projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerEmail, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*projectRepository.FindProjectsByOwner").Msg("error scanning project rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// FindProjectByID retrieves a single project scoped to its owner. A project
// belonging to a different owner is indistinguishable from a missing one:
// both return [ErrProjectNotFound].
func (r *projectRepository) FindProjectByID(ctx context.Context, id string, ownerEmail string) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findProjectByID, id, ownerEmail)

	found, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.FindProjectByID").Msg("error scanning project row")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProject applies the non-nil patch fields to the project with the
// given id and refreshes updated_at unconditionally, so even an empty patch
// leaves a visible trace. The UPDATE is keyed by id only: ownership has been
// established by the caller's preceding FindProjectByID, and the two
// statements are intentionally not atomic (concurrent patches to one project
// are last-write-wins).
func (r *projectRepository) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("projects").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, owner_email, name, description, status, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error building update query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, scanErr := scanProject(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			// the row vanished between the ownership check and the update
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(scanErr).Str("func", "*projectRepository.UpdateProject").Msg("error scanning updated project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", scanErr)
	}

	return updated, nil
}

// DeleteProject removes the project permanently. The DELETE is owner-scoped
// in a single statement; zero affected rows means the project does not exist
// or belongs to someone else, and both cases surface as [ErrProjectNotFound].
func (r *projectRepository) DeleteProject(ctx context.Context, id string, ownerEmail string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProject, id, ownerEmail)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error deleting project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func scanProject(row *sql.Row) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.OwnerEmail, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
