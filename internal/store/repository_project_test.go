package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/utils"
	"github.com/MKhiriev/go-saas-starter/models"
)

var projectColumns = []string{"id", "owner_email", "name", "description", "status", "created_at", "updated_at"}

func newTestProjectRepo(t *testing.T) (*projectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &projectRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func strPtr(s string) *string { return &s }

func TestCreateProject_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(projectColumns).
		AddRow("0198a4ff-0000-7000-8000-000000000001", "alice@example.com", "website", "landing page", models.StatusActive, now, now)

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs(sqlmock.AnyArg(), "alice@example.com", "website", strPtr("landing page"), models.StatusActive).
		WillReturnRows(rows)

	created, err := repo.CreateProject(context.Background(), models.Project{
		OwnerEmail:  "alice@example.com",
		Name:        "website",
		Description: strPtr("landing page"),
		Status:      models.StatusActive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a store-generated id")
	}
	if created.Status != models.StatusActive {
		t.Errorf("expected active status, got %s", created.Status)
	}
}

func TestCreateProject_NilDescription(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(projectColumns).
		AddRow("0198a4ff-0000-7000-8000-000000000002", "alice@example.com", "api", nil, models.StatusActive, now, now)

	mock.ExpectQuery("INSERT INTO projects").
		WillReturnRows(rows)

	created, err := repo.CreateProject(context.Background(), models.Project{
		OwnerEmail: "alice@example.com",
		Name:       "api",
		Status:     models.StatusActive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Description != nil {
		t.Errorf("expected nil description, got %q", *created.Description)
	}
}

func TestFindProjectsByOwner_ReturnsAllMostRecentFirst(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows(projectColumns).
		AddRow("id-2", "alice@example.com", "second", nil, models.StatusActive, newer, newer).
		AddRow("id-1", "alice@example.com", "first", nil, models.StatusArchived, older, older)

	mock.ExpectQuery("SELECT (.+) FROM projects").
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	projects, err := repo.FindProjectsByOwner(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Name != "second" || projects[1].Name != "first" {
		t.Errorf("expected most recent first, got %s then %s", projects[0].Name, projects[1].Name)
	}
}

func TestFindProjectsByOwner_EmptyIsNotAnError(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM projects").
		WithArgs("lonely@example.com").
		WillReturnRows(sqlmock.NewRows(projectColumns))

	projects, err := repo.FindProjectsByOwner(context.Background(), "lonely@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projects == nil || len(projects) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", projects)
	}
}

func TestFindProjectByID_OwnerScoped(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM projects").
		WithArgs("id-1", "alice@example.com").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow("id-1", "alice@example.com", "website", nil, models.StatusActive, now, now))

	found, err := repo.FindProjectByID(context.Background(), "id-1", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "id-1" {
		t.Errorf("expected id-1, got %s", found.ID)
	}
}

func TestFindProjectByID_NotFoundAndNotOwnedAreIdentical(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	// a missing project and someone else's project both produce zero rows
	mock.ExpectQuery("SELECT (.+) FROM projects").
		WithArgs("id-1", "mallory@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT (.+) FROM projects").
		WithArgs("no-such-id", "alice@example.com").
		WillReturnError(sql.ErrNoRows)

	_, errForeign := repo.FindProjectByID(context.Background(), "id-1", "mallory@example.com")
	_, errMissing := repo.FindProjectByID(context.Background(), "no-such-id", "alice@example.com")

	if !errors.Is(errForeign, ErrProjectNotFound) || !errors.Is(errMissing, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for both, got %v and %v", errForeign, errMissing)
	}
	if errForeign.Error() != errMissing.Error() {
		t.Errorf("errors must be indistinguishable: %q vs %q", errForeign, errMissing)
	}
}

func TestUpdateProject_PartialPatch(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("UPDATE projects SET").
		WithArgs(models.StatusArchived, "id-1").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow("id-1", "alice@example.com", "website", nil, models.StatusArchived, now.Add(-time.Hour), now))

	updated, err := repo.UpdateProject(context.Background(), "id-1", models.ProjectPatch{
		Status: strPtr(models.StatusArchived),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusArchived {
		t.Errorf("expected archived, got %s", updated.Status)
	}
	if updated.Name != "website" {
		t.Errorf("patch must not touch name, got %s", updated.Name)
	}
}

func TestUpdateProject_EmptyPatchStillTouchesUpdatedAt(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	now := time.Now()
	// no patch fields → the only argument is the id
	mock.ExpectQuery("UPDATE projects SET updated_at = now()").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow("id-1", "alice@example.com", "website", nil, models.StatusActive, now.Add(-time.Hour), now))

	updated, err := repo.UpdateProject(context.Background(), "id-1", models.ProjectPatch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("expected updated_at to move forward")
	}
}

func TestUpdateProject_VanishedRow(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE projects SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProject(context.Background(), "id-1", models.ProjectPatch{Name: strPtr("renamed")})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDeleteProject_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("id-1", "alice@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteProject(context.Background(), "id-1", "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteProject_NotFoundOrNotOwned(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("id-1", "mallory@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProject(context.Background(), "id-1", "mallory@example.com")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
