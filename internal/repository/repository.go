package repository

import (
	"context"

	"github.com/team-updates-api/internal/database"
	"github.com/team-updates-api/internal/models"
)

// UpdateRepository defines the interface for update data operations
type UpdateRepository interface {
	// ListPublished returns published updates with a non-null publish time,
	// newest published first, capped at limit rows
	ListPublished(ctx context.Context, limit int) ([]*models.Update, error)
	// ListAll returns every update regardless of status, newest created first
	ListAll(ctx context.Context) ([]*models.Update, error)
	// Create inserts a new update and fills in the server-assigned fields
	Create(ctx context.Context, update *models.Update) error
	// Replace overwrites title, body, and status of an existing row and
	// applies the publish-transition rule in a single statement; returns
	// ErrNotFound if no row matches
	Replace(ctx context.Context, id, title, body, status string) (*models.Update, error)
	// Delete physically removes an update; returns ErrNotFound if no row matched
	Delete(ctx context.Context, id string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Update UpdateRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Update: NewUpdateRepo(db),
	}
}
