package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/api/metrics"
	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
	"github.com/ypamc/restaurant-backend/internal/hash"
	"github.com/ypamc/restaurant-backend/internal/token"
)

// AuthService implements staff registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a staff account. The role is always the baseline admin
// role: elevated roles (finance, records) are assigned out of band, never
// through this endpoint.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := hash.Password(input.Password)
	if err != nil {
		return nil, err
	}

	username := input.Username
	if username == "" {
		username = deriveUsername(input.FirstName)
	}

	user := &domain.User{
		Username:     username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashed,
		Role:         domain.RoleAdmin,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates a staff user and mints a bearer token carrying the
// user snapshot. Unknown username and wrong password are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !hash.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Snapshot())
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("login")
	return signed, user, nil
}

// deriveUsername builds a username from a first name: lower-cased with
// spaces collapsed to underscores.
func deriveUsername(firstName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(firstName)), " ", "_")
}
