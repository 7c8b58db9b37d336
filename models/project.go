package models

import "time"

// Project status values. A freshly created project is always StatusActive.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// ValidProjectStatus reports whether s names a known project status.
func ValidProjectStatus(s string) bool {
	return s == StatusActive || s == StatusArchived
}

// Project is a resource owned by exactly one user. Every read and mutation of
// a project is scoped to its OwnerEmail; a project invisible to a caller
// behaves identically to a non-existent one.
type Project struct {
	// ID is the store-generated opaque identifier (UUID), immutable.
	ID string `json:"id"`

	// OwnerEmail references User.Email by value, set at creation, immutable.
	OwnerEmail string `json:"owner_email"`

	// Name is the required display name of the project.
	Name string `json:"name"`

	// Description is optional; nil means no description was ever provided.
	Description *string `json:"description"`

	// Status is "active" or "archived".
	Status string `json:"status"`

	// CreatedAt is immutable after creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation, including empty patches.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectPatch describes a partial update of a project. A nil field means
// "leave unchanged"; JSON null decodes to nil and is therefore treated the
// same as an absent field. There is no way to clear a field through a patch.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Empty reports whether the patch carries no fields at all. An empty patch is
// still applied: it refreshes the project's UpdatedAt timestamp.
func (p ProjectPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil
}
