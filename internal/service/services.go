package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/config"
	"github.com/team-updates-api/internal/models"
	"github.com/team-updates-api/internal/repository"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login validates credentials against the configured admin account and
	// returns a signed bearer token
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	// VerifyToken checks signature and expiry and returns the decoded claims
	VerifyToken(token string) (*models.SessionClaims, error)
}

// UpdateService defines the interface for update management
type UpdateService interface {
	ListPublished(ctx context.Context, limit int) (*models.UpdateList, error)
	ListAll(ctx context.Context) (*models.UpdateList, error)
	Create(ctx context.Context, req *models.CreateUpdateRequest) (*models.Update, error)
	Replace(ctx context.Context, req *models.ReplaceUpdateRequest) (*models.Update, error)
	Delete(ctx context.Context, id string) error
}

// Services holds all service interfaces
type Services struct {
	Auth   AuthService
	Update UpdateService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:   NewAuthService(&cfg.Auth, log),
		Update: NewUpdateService(repos.Update, log),
	}
}
