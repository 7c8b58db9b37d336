package models

import "time"

// Plan values assignable to a user account. Every account starts on PlanFree;
// no exposed operation mutates the plan.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// persistence layer at creation time.
	UserID int64 `json:"id"`

	// Email is the unique natural key of the account. It is matched
	// case-sensitively, exactly as stored, and is immutable after signup.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash is the hex-encoded SHA-256 digest of the user's salted
	// password. This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// PasswordSalt is the hex-encoded random salt the digest was computed
	// with. Never exposed via JSON.
	PasswordSalt string `json:"-"`

	// APIKey is the bearer token issued once at signup. It is the sole
	// credential for protected operations and is never rotated.
	APIKey string `json:"api_key"`

	// Plan is the subscription plan of the account: "free" or "pro".
	Plan string `json:"plan"`

	// UsageCount counts invocations of metered operations. It only grows.
	UsageCount int64 `json:"usage_count"`

	// CreatedAt is the timestamp when the account was created (UTC).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the account record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
