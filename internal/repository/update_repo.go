package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/team-updates-api/internal/database"
	"github.com/team-updates-api/internal/models"
)

// updateRepo is the concrete implementation of UpdateRepository
type updateRepo struct {
	db *database.DB
}

// NewUpdateRepo creates a new update repository
func NewUpdateRepo(db *database.DB) UpdateRepository {
	return &updateRepo{db: db}
}

// ListPublished retrieves published updates ordered by publish time, newest first
func (r *updateRepo) ListPublished(ctx context.Context, limit int) ([]*models.Update, error) {
	query := `
		SELECT id, title, body, status, published_at, created_at, updated_at
		FROM updates
		WHERE status = 'published' AND published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUpdates(rows)
}

// ListAll retrieves every update, newest created first
func (r *updateRepo) ListAll(ctx context.Context) ([]*models.Update, error) {
	query := `
		SELECT id, title, body, status, published_at, created_at, updated_at
		FROM updates
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUpdates(rows)
}

// Create inserts a new update. The ID is assigned here and the timestamps by
// the database; a published insert gets its publish time stamped in the same
// statement.
func (r *updateRepo) Create(ctx context.Context, update *models.Update) error {
	update.ID = uuid.New().String()

	query := `
		INSERT INTO updates (id, title, body, status, published_at)
		VALUES ($1, $2, $3, $4, CASE WHEN $4 = 'published' THEN now() END)
		RETURNING published_at, created_at, updated_at
	`
	var publishedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query,
		update.ID, update.Title, update.Body, update.Status,
	).Scan(&publishedAt, &update.CreatedAt, &update.UpdatedAt)
	if err != nil {
		return err
	}
	if publishedAt.Valid {
		update.PublishedAt = &publishedAt.Time
	}
	return nil
}

// Replace overwrites title, body, and status of an existing update. The
// publish-transition rule runs inside the statement, against the stored row:
// a first transition to published stamps published_at, a transition to draft
// clears it, and an edit that stays published leaves it untouched. One
// statement, so concurrent replaces cannot interleave between the status
// read and the write.
func (r *updateRepo) Replace(ctx context.Context, id, title, body, status string) (*models.Update, error) {
	query := `
		UPDATE updates
		SET title = $1,
		    body = $2,
		    status = $3,
		    published_at = CASE
		        WHEN $3 = 'published' AND published_at IS NULL THEN now()
		        WHEN $3 = 'draft' THEN NULL
		        ELSE published_at
		    END,
		    updated_at = now()
		WHERE id = $4
		RETURNING id, title, body, status, published_at, created_at, updated_at
	`
	update, err := scanUpdate(r.db.QueryRowContext(ctx, query, title, body, status, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return update, err
}

// Delete physically removes an update
func (r *updateRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM updates WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUpdate(row rowScanner) (*models.Update, error) {
	var update models.Update
	var publishedAt sql.NullTime

	err := row.Scan(
		&update.ID, &update.Title, &update.Body, &update.Status,
		&publishedAt, &update.CreatedAt, &update.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		update.PublishedAt = &publishedAt.Time
	}
	return &update, nil
}

func scanUpdates(rows *sql.Rows) ([]*models.Update, error) {
	var updates []*models.Update
	for rows.Next() {
		update, err := scanUpdate(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}
	return updates, rows.Err()
}
