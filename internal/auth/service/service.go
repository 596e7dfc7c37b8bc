// Package service implements the single-admin session gate. The credential
// pair comes from configuration; the bcrypt hash is computed once at startup
// so sign-in never touches the plaintext again.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"leadboard_backend/internal/auth/password"
	"leadboard_backend/internal/events"
	"leadboard_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const accessTokenType = "access"

// Admin identifies the single configured operator.
type Admin struct {
	ID    uuid.UUID
	Email string
}

type Service struct {
	cfg   config.AuthConfig
	bus   events.Bus
	admin Admin
	hash  string
}

func New(cfg config.AuthConfig, bus events.Bus) (*Service, error) {
	hash, err := password.Hash(cfg.GetAdminPassword())
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg: cfg,
		bus: bus,
		admin: Admin{
			ID:    uuid.New(),
			Email: cfg.GetAdminEmail(),
		},
		hash: hash,
	}, nil
}

// SignIn checks the submitted pair against the configured credential and
// issues a signed access token. Email comparison is case-insensitive; both
// failure modes collapse into the same error so a caller cannot probe which
// half was wrong.
func (s *Service) SignIn(ctx context.Context, email, plainPassword string) (string, Admin, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) {
		return "", Admin{}, ErrInvalidCredentials
	}

	if err := password.Compare(s.hash, plainPassword); err != nil {
		return "", Admin{}, ErrInvalidCredentials
	}

	token, err := s.signJWT(s.admin, s.cfg.GetAccessTokenTTL())
	if err != nil {
		return "", Admin{}, err
	}

	s.bus.Publish(ctx, events.AdminSignedIn{
		BaseEvent: events.NewBaseEvent(),
		Email:     s.admin.Email,
	})

	return token, s.admin, nil
}

// Admin returns the configured operator identity.
func (s *Service) Admin() Admin {
	return s.admin
}

func (s *Service) signJWT(admin Admin, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   admin.ID.String(),
		"email": admin.Email,
		"type":  accessTokenType,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
