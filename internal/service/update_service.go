package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/models"
	"github.com/team-updates-api/internal/repository"
	"github.com/team-updates-api/internal/validation"
)

// updateService implements UpdateService on top of the update repository
type updateService struct {
	repo repository.UpdateRepository
	log  zerolog.Logger
}

// NewUpdateService creates a new update service
func NewUpdateService(repo repository.UpdateRepository, log zerolog.Logger) UpdateService {
	return &updateService{
		repo: repo,
		log:  log.With().Str("service", "update").Logger(),
	}
}

// MaxListLimit caps how many published updates one request may ask for
const MaxListLimit = 100

// ListPublished returns the public view: published rows only, newest
// published first, capped at limit
func (s *updateService) ListPublished(ctx context.Context, limit int) (*models.UpdateList, error) {
	if limit < 1 || limit > MaxListLimit {
		return nil, NewClientError("limit must be between 1 and 100")
	}

	updates, err := s.repo.ListPublished(ctx, limit)
	if err != nil {
		return nil, NewStoreError(err)
	}
	return newUpdateList(updates), nil
}

// ListAll returns the admin view: every update regardless of status
func (s *updateService) ListAll(ctx context.Context) (*models.UpdateList, error) {
	updates, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, NewStoreError(err)
	}
	return newUpdateList(updates), nil
}

// Create inserts a new update. Status defaults to draft; a published create
// gets its publish time stamped by the store.
func (s *updateService) Create(ctx context.Context, req *models.CreateUpdateRequest) (*models.Update, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	update := &models.Update{
		Title:  req.Title,
		Body:   req.Body,
		Status: status,
	}
	if err := s.repo.Create(ctx, update); err != nil {
		return nil, NewStoreError(err)
	}

	s.log.Info().Str("id", update.ID).Str("status", update.Status).Msg("Update created")
	return update, nil
}

// Replace performs a full overwrite of an existing update. The publish
// transition runs against the row's stored status, inside one statement.
func (s *updateService) Replace(ctx context.Context, req *models.ReplaceUpdateRequest) (*models.Update, error) {
	update, err := s.repo.Replace(ctx, req.ID, req.Title, req.Body, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("update not found")
		}
		return nil, NewStoreError(err)
	}

	s.log.Info().Str("id", update.ID).Str("status", update.Status).Msg("Update replaced")
	return update, nil
}

// Delete physically removes an update. A malformed id cannot address any
// row, so it reports not found without touching the store.
func (s *updateService) Delete(ctx context.Context, id string) error {
	if !validation.IsValidUUID(id) {
		return NewNotFoundError("update not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFoundError("update not found")
		}
		return NewStoreError(err)
	}

	s.log.Info().Str("id", id).Msg("Update deleted")
	return nil
}

// newUpdateList wraps rows in the response envelope, normalizing a nil slice
// to an empty one so the JSON list is never null
func newUpdateList(updates []*models.Update) *models.UpdateList {
	if updates == nil {
		updates = []*models.Update{}
	}
	return &models.UpdateList{Updates: updates, Count: len(updates)}
}
