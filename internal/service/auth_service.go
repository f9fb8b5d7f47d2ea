package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/config"
	"github.com/team-updates-api/internal/models"
)

// authService implements AuthService against a single configured admin
// account. There is no user table; credentials and the signing key come from
// the environment and the issued token is the whole session.
type authService struct {
	cfg *config.AuthConfig
	log zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		cfg: cfg,
		log: log.With().Str("service", "auth").Logger(),
	}
}

// Login validates the supplied credentials and issues a signed token.
// Both comparisons always run and the response is held to a minimum delay,
// so a wrong username is not distinguishable from a wrong password by timing.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	start := time.Now()
	defer s.holdResponseFloor(start)

	if s.cfg.AdminUser == "" || s.cfg.AdminPassword == "" || s.cfg.JWTSecret == "" {
		return "", NewConfigError(errors.New("ADMIN_USER, ADMIN_PASSWORD, and JWT_SECRET must all be set"))
	}

	userMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUser))
	passMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPassword))

	if userMatch&passMatch != 1 {
		return "", NewAuthError("invalid credentials", errors.New("credential mismatch"))
	}

	now := time.Now()
	claims := &models.SessionClaims{
		Username: s.cfg.AdminUser,
		Role:     models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", NewConfigError(fmt.Errorf("failed to sign token: %w", err))
	}

	s.log.Info().Str("username", req.Username).Msg("Admin login succeeded")
	return token, nil
}

// VerifyToken validates signature and expiry and returns the decoded claims
func (s *authService) VerifyToken(tokenString string) (*models.SessionClaims, error) {
	if s.cfg.JWTSecret == "" {
		return nil, NewConfigError(errors.New("JWT_SECRET is not set"))
	}

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, NewAuthError("invalid or expired token", err)
	}
	if !token.Valid {
		return nil, NewAuthError("invalid or expired token", errors.New("token not valid"))
	}

	return claims, nil
}

// holdResponseFloor sleeps away whatever remains of the configured minimum
// login latency
func (s *authService) holdResponseFloor(start time.Time) {
	if remaining := s.cfg.LoginMinDelay - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
}
