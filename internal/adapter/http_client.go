package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-saas-starter/models"
	"github.com/go-resty/resty/v2"
)

// apiKeyHeader carries the API key on every authenticated request.
const apiKeyHeader = "X-API-Key"

// HTTPClientConfig configures [NewHTTPAPIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu     sync.RWMutex
	apiKey string
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetAPIKey implements [APIClient]. It stores apiKey (whitespace-trimmed) for
// use in the X-API-Key header of all subsequent authenticated requests.
func (h *httpAPIClient) SetAPIKey(apiKey string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.apiKey = strings.TrimSpace(apiKey)
}

// APIKey implements [APIClient].
func (h *httpAPIClient) APIKey() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.apiKey
}

// Signup implements [APIClient]. On success the issued API key is stored via
// SetAPIKey so that the client is immediately usable for protected calls.
func (h *httpAPIClient) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	var out models.SignupResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SignupResponse{}, fmt.Errorf("decode signup response: %w", err)
	}

	h.SetAPIKey(out.APIKey)
	return out, nil
}

// Login implements [APIClient]. On success the account's API key is stored
// via SetAPIKey.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetAPIKey(out.APIKey)
	return out, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.MeResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	var out models.MeResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.MeResponse{}, fmt.Errorf("decode me response: %w", err)
	}

	return out, nil
}

func (h *httpAPIClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.authedRequest(ctx).Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}

	return projects, nil
}

func (h *httpAPIClient) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	var out models.Project
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Project{}, fmt.Errorf("decode create project response: %w", err)
	}

	return out, nil
}

func (h *httpAPIClient) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/projects/" + url.PathEscape(id))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	var out models.Project
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Project{}, fmt.Errorf("decode update project response: %w", err)
	}

	return out, nil
}

func (h *httpAPIClient) DeleteProject(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/projects/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AnalyzeRequest{Text: text}).
		Post("/api/v1/analyze")
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analyze request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnalysisResult{}, err
	}

	var out models.AnalysisResult
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("decode analyze response: %w", err)
	}

	return out, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if key := h.APIKey(); key != "" {
		req.SetHeader(apiKeyHeader, key)
	}
	return req
}
