package validation

import (
	"strings"

	"github.com/google/uuid"
	"github.com/team-updates-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateCreateUpdate validates the payload for creating an update.
// Status is optional; when present it must be a known value.
func ValidateCreateUpdate(req *models.CreateUpdateRequest) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateContent(req.Title, req.Body)...)

	if req.Status != "" && !models.ValidStatuses[req.Status] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, published",
			Value:   req.Status,
		})
	}

	return errors
}

// ValidateReplaceUpdate validates the payload for a full replace. Every
// field is required; there are no partial updates.
func ValidateReplaceUpdate(req *models.ReplaceUpdateRequest) []ValidationError {
	var errors []ValidationError

	if req.ID == "" {
		errors = append(errors, ValidationError{Field: "id", Message: "id is required"})
	} else if !IsValidUUID(req.ID) {
		errors = append(errors, ValidationError{Field: "id", Message: "invalid UUID format", Value: req.ID})
	}

	errors = append(errors, validateContent(req.Title, req.Body)...)

	if req.Status == "" {
		errors = append(errors, ValidationError{Field: "status", Message: "status is required"})
	} else if !models.ValidStatuses[req.Status] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "status must be one of: draft, published",
			Value:   req.Status,
		})
	}

	return errors
}

// validateContent checks the fields shared by create and replace
func validateContent(title, body string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(body) == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body is required"})
	}

	return errors
}

// IsValidUUID checks whether s parses as a UUID
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
