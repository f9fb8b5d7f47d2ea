package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/team-updates-api/internal/models"
	"github.com/team-updates-api/internal/repository"
)

// MockUpdateRepository is an in-memory implementation of UpdateRepository.
// It emulates the store contract — including the publish-transition rule
// that the real implementation runs in SQL — and counts every call so tests
// can assert that guarded endpoints never touch the store.
type MockUpdateRepository struct {
	Updates map[string]*models.Update

	// ForcedError, when set, is returned by every operation
	ForcedError error

	ListPublishedCalls int
	ListAllCalls       int
	CreateCalls        int
	ReplaceCalls       int
	DeleteCalls        int
}

// NewMockUpdateRepository creates an empty mock repository
func NewMockUpdateRepository() *MockUpdateRepository {
	return &MockUpdateRepository{
		Updates: make(map[string]*models.Update),
	}
}

// TotalCalls returns the number of store operations performed
func (m *MockUpdateRepository) TotalCalls() int {
	return m.ListPublishedCalls + m.ListAllCalls +
		m.CreateCalls + m.ReplaceCalls + m.DeleteCalls
}

func (m *MockUpdateRepository) ListPublished(ctx context.Context, limit int) ([]*models.Update, error) {
	m.ListPublishedCalls++
	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	var published []*models.Update
	for _, u := range m.Updates {
		if u.Status == models.StatusPublished && u.PublishedAt != nil {
			published = append(published, u)
		}
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].PublishedAt.After(*published[j].PublishedAt)
	})
	if len(published) > limit {
		published = published[:limit]
	}
	return published, nil
}

func (m *MockUpdateRepository) ListAll(ctx context.Context) ([]*models.Update, error) {
	m.ListAllCalls++
	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	all := make([]*models.Update, 0, len(m.Updates))
	for _, u := range m.Updates {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (m *MockUpdateRepository) Create(ctx context.Context, update *models.Update) error {
	m.CreateCalls++
	if m.ForcedError != nil {
		return m.ForcedError
	}

	now := time.Now()
	update.ID = uuid.New().String()
	update.CreatedAt = now
	update.UpdatedAt = now
	if update.Status == models.StatusPublished {
		publishedAt := now
		update.PublishedAt = &publishedAt
	}

	stored := *update
	m.Updates[update.ID] = &stored
	return nil
}

func (m *MockUpdateRepository) Replace(ctx context.Context, id, title, body, status string) (*models.Update, error) {
	m.ReplaceCalls++
	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	stored, ok := m.Updates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	now := time.Now()
	stored.Title = title
	stored.Body = body
	switch {
	case status == models.StatusPublished && stored.PublishedAt == nil:
		publishedAt := now
		stored.PublishedAt = &publishedAt
	case status == models.StatusDraft:
		stored.PublishedAt = nil
	}
	stored.Status = status
	stored.UpdatedAt = now

	result := *stored
	return &result, nil
}

func (m *MockUpdateRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.ForcedError != nil {
		return m.ForcedError
	}

	if _, ok := m.Updates[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Updates, id)
	return nil
}
