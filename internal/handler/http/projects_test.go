package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/service"
	"github.com/MKhiriev/go-saas-starter/internal/store"
	"github.com/MKhiriev/go-saas-starter/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProjectService implements service.ProjectService for unit tests.
type mockProjectService struct {
	listFn   func(ctx context.Context, owner models.User) ([]models.Project, error)
	createFn func(ctx context.Context, owner models.User, req models.CreateProjectRequest) (models.Project, error)
	updateFn func(ctx context.Context, owner models.User, id string, patch models.ProjectPatch) (models.Project, error)
	deleteFn func(ctx context.Context, owner models.User, id string) error
}

func (m *mockProjectService) List(ctx context.Context, owner models.User) ([]models.Project, error) {
	return m.listFn(ctx, owner)
}

func (m *mockProjectService) Create(ctx context.Context, owner models.User, req models.CreateProjectRequest) (models.Project, error) {
	return m.createFn(ctx, owner, req)
}

func (m *mockProjectService) Update(ctx context.Context, owner models.User, id string, patch models.ProjectPatch) (models.Project, error) {
	return m.updateFn(ctx, owner, id, patch)
}

func (m *mockProjectService) Delete(ctx context.Context, owner models.User, id string) error {
	return m.deleteFn(ctx, owner, id)
}

func newHandlerWithProjects(t *testing.T, projects service.ProjectService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ProjectService: projects,
	}
	return NewHandler(svcs, logger.Nop())
}

// withURLParam attaches a chi route parameter to the request context, the way
// the router would during dispatch.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

const projectID = "018f3a2b-5c6d-7e8f-9a0b-1c2d3e4f5a6b"

func TestListProjects_Success(t *testing.T) {
	stored := []models.Project{
		{ID: projectID, OwnerEmail: registeredUser.Email, Name: "newest", Status: models.StatusActive},
	}
	projects := &mockProjectService{
		listFn: func(_ context.Context, owner models.User) ([]models.Project, error) {
			assert.Equal(t, registeredUser.Email, owner.Email)
			return stored, nil
		},
	}
	h := newHandlerWithProjects(t, projects)

	req := authedRequest(http.MethodGet, "/projects", "", registeredUser)
	rec := httptest.NewRecorder()

	h.listProjects(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, stored, got)
}

func TestListProjects_EmptyListIsJSONArray(t *testing.T) {
	projects := &mockProjectService{
		listFn: func(context.Context, models.User) ([]models.Project, error) {
			return []models.Project{}, nil
		},
	}
	h := newHandlerWithProjects(t, projects)

	req := authedRequest(http.MethodGet, "/projects", "", registeredUser)
	rec := httptest.NewRecorder()

	h.listProjects(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListProjects_NoUserInContext(t *testing.T) {
	h := newHandlerWithProjects(t, &mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()

	h.listProjects(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProject_Success(t *testing.T) {
	desc := "internal tooling"
	projects := &mockProjectService{
		createFn: func(_ context.Context, owner models.User, req models.CreateProjectRequest) (models.Project, error) {
			assert.Equal(t, "tooling", req.Name)
			require.NotNil(t, req.Description)
			assert.Equal(t, desc, *req.Description)
			return models.Project{
				ID:          projectID,
				OwnerEmail:  owner.Email,
				Name:        req.Name,
				Description: req.Description,
				Status:      models.StatusActive,
			}, nil
		},
	}
	h := newHandlerWithProjects(t, projects)

	body := jsonBody(t, models.CreateProjectRequest{Name: "tooling", Description: &desc})
	req := authedRequest(http.MethodPost, "/projects", body, registeredUser)
	rec := httptest.NewRecorder()

	h.createProject(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, projectID, got.ID)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestCreateProject_NameRequired(t *testing.T) {
	projects := &mockProjectService{
		createFn: func(context.Context, models.User, models.CreateProjectRequest) (models.Project, error) {
			return models.Project{}, service.ErrInvalidDataProvided
		},
	}
	h := newHandlerWithProjects(t, projects)

	req := authedRequest(http.MethodPost, "/projects", `{}`, registeredUser)
	rec := httptest.NewRecorder()

	h.createProject(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProject_InvalidJSON(t *testing.T) {
	h := newHandlerWithProjects(t, &mockProjectService{})

	req := authedRequest(http.MethodPost, "/projects", `{broken`, registeredUser)
	rec := httptest.NewRecorder()

	h.createProject(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProject_Success(t *testing.T) {
	projects := &mockProjectService{
		updateFn: func(_ context.Context, owner models.User, id string, patch models.ProjectPatch) (models.Project, error) {
			assert.Equal(t, projectID, id)
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusArchived, *patch.Status)
			assert.Nil(t, patch.Name)
			return models.Project{ID: id, OwnerEmail: owner.Email, Name: "tooling", Status: *patch.Status}, nil
		},
	}
	h := newHandlerWithProjects(t, projects)

	req := authedRequest(http.MethodPatch, "/projects/"+projectID, `{"status":"archived"}`, registeredUser)
	req = withURLParam(req, "id", projectID)
	rec := httptest.NewRecorder()

	h.updateProject(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.StatusArchived, got.Status)
}

func TestUpdateProject_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{"bad id", service.ErrInvalidProjectID, http.StatusBadRequest, "Invalid project id"},
		{"bad status", service.ErrInvalidStatus, http.StatusBadRequest, service.ErrInvalidStatus.Error()},
		{"not found", store.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := &mockProjectService{
				updateFn: func(context.Context, models.User, string, models.ProjectPatch) (models.Project, error) {
					return models.Project{}, tt.svcErr
				},
			}
			h := newHandlerWithProjects(t, projects)

			req := authedRequest(http.MethodPatch, "/projects/"+projectID, `{}`, registeredUser)
			req = withURLParam(req, "id", projectID)
			rec := httptest.NewRecorder()

			h.updateProject(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestDeleteProject_Success(t *testing.T) {
	projects := &mockProjectService{
		deleteFn: func(_ context.Context, owner models.User, id string) error {
			assert.Equal(t, projectID, id)
			assert.Equal(t, registeredUser.Email, owner.Email)
			return nil
		},
	}
	h := newHandlerWithProjects(t, projects)

	req := authedRequest(http.MethodDelete, "/projects/"+projectID, "", registeredUser)
	req = withURLParam(req, "id", projectID)
	rec := httptest.NewRecorder()

	h.deleteProject(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestDeleteProject_NotFound(t *testing.T) {
	projects := &mockProjectService{
		deleteFn: func(context.Context, models.User, string) error {
			return store.ErrProjectNotFound
		},
	}
	h := newHandlerWithProjects(t, projects)

	req := authedRequest(http.MethodDelete, "/projects/"+projectID, "", registeredUser)
	req = withURLParam(req, "id", projectID)
	rec := httptest.NewRecorder()

	h.deleteProject(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", strings.TrimSpace(rec.Body.String()))
}
