// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed HTTP client for the public REST API.
//
// The primary abstraction is [APIClient], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation built on
// resty ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-saas-starter/models"
)

// APIClient defines transport-agnostic access to the public API.
// Implementations are responsible for serialisation, API-key header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetAPIKey stores the API key that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Signup or Login.
	SetAPIKey(apiKey string)

	// APIKey returns the API key currently stored in the client, or an empty
	// string if none has been set yet.
	APIKey() string

	// Signup registers a new account. On success it stores the issued API key
	// via SetAPIKey and returns the server's response.
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates an existing account. On success it stores the
	// account's API key via SetAPIKey and returns the server's response.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the identity summary of the authenticated account.
	Me(ctx context.Context) (models.MeResponse, error)

	// ListProjects returns the authenticated account's projects, most recent
	// first.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// CreateProject creates a new active project owned by the authenticated
	// account.
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)

	// UpdateProject applies a partial patch to one of the authenticated
	// account's projects and returns the updated record.
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error)

	// DeleteProject permanently removes one of the authenticated account's
	// projects.
	DeleteProject(ctx context.Context, id string) error

	// Analyze submits text for analysis on behalf of the authenticated
	// account. Each successful call is metered server-side.
	Analyze(ctx context.Context, text string) (models.AnalysisResult, error)
}
