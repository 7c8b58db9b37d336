package models

// SignupResponse is returned by POST /auth/signup. It carries the freshly
// issued API key; the key is never returned by any other unauthenticated
// operation.
type SignupResponse struct {
	ID     int64  `json:"id"`
	APIKey string `json:"api_key"`
	Plan   string `json:"plan"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// LoginResponse is returned by POST /auth/login. No password material is
// ever included.
type LoginResponse struct {
	APIKey string `json:"api_key"`
	Plan   string `json:"plan"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// MeResponse is the identity summary returned by GET /me.
type MeResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Plan   string `json:"plan"`
	APIKey string `json:"api_key"`
}

// AnalysisResult is returned by POST /api/v1/analyze. Words and Characters
// are measured on the trimmed input text; Preview is its first 80 characters.
type AnalysisResult struct {
	Email      string `json:"email"`
	Plan       string `json:"plan"`
	Words      int    `json:"words"`
	Characters int    `json:"characters"`
	Preview    string `json:"preview"`
}

// DeleteResponse acknowledges a successful DELETE /projects/{id}.
type DeleteResponse struct {
	OK bool `json:"ok"`
}

// AppInfo describes the running application, returned by GET /.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DiagnosticsReport is returned by GET /test. It mirrors the shape a
// deployment dashboard expects: coarse status strings plus the first few
// table names reachable through the configured database connection.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}
