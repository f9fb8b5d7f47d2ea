package models

import (
	"time"
)

// Update statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatuses defines allowed update statuses
var ValidStatuses = map[string]bool{
	StatusDraft:     true,
	StatusPublished: true,
}

// Update represents a site announcement managed through the admin API
type Update struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Body        string     `json:"body" db:"body"`
	Status      string     `json:"status" db:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateUpdateRequest is the payload for POST /v1/admin/updates.
// Status is optional and defaults to draft.
type CreateUpdateRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status,omitempty"`
}

// ReplaceUpdateRequest is the payload for PUT /v1/admin/updates.
// This is a full replace: every field is required.
type ReplaceUpdateRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

// UpdateList is the response envelope for list endpoints
type UpdateList struct {
	Updates []*Update `json:"updates"`
	Count   int       `json:"count"`
}
