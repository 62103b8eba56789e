package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/app/repositories"
	"github.com/eduforge/backend/internal/pkg/apperrors"
	pkgauth "github.com/eduforge/backend/internal/pkg/auth"
	"github.com/eduforge/backend/internal/session"
)

// AuthResult is what a successful identity operation yields: the stripped
// identity and a signed access token for subsequent requests.
type AuthResult struct {
	Identity    *models.Identity
	AccessToken string
	ExpiresIn   int
}

// AuthService implements the identity operations: login, signup, logout and
// the federated login stub.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	SignUp(ctx context.Context, email, password, name string, role models.Role) (*AuthResult, error)
	Logout(ctx context.Context) error
	LoginWithGoogle(ctx context.Context, email string) (*AuthResult, error)
	// CurrentIdentity rehydrates the persisted session, or nil when absent.
	CurrentIdentity(ctx context.Context) (*models.Identity, error)
	GetIdentity(ctx context.Context, id string) (*models.Identity, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	sessions   session.Store
	jwtService *pkgauth.JWTService
	logger     zerolog.Logger

	// mu serializes identity operations so duplicate in-flight submissions
	// cannot race the persisted session slot.
	mu sync.Mutex
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	sessions session.Store,
	jwtService *pkgauth.JWTService,
	lgr zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtService: jwtService,
		logger:     lgr,
	}
}

// Login authenticates by email and password. The stored password hash is
// stripped before the identity is persisted or returned.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !pkgauth.CheckPassword(account.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	identity := account.Identity
	return s.establish(ctx, &identity)
}

// SignUp creates a new identity with exactly one role and establishes it as
// the active session.
func (s *authService) SignUp(ctx context.Context, email, password, name string, role models.Role) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return nil, apperrors.NewValidationError("email and name are required")
	}
	if len(password) < pkgauth.MinPasswordLength {
		return nil, apperrors.ErrInvalidPassword
	}
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateAccount
	}

	hash, err := pkgauth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Identity: models.Identity{
			ID:    uuid.New().String(),
			Email: email,
			Name:  name,
			Roles: []models.Role{role},
		},
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("Account created")

	identity := account.Identity
	return s.establish(ctx, &identity)
}

// Logout clears the active session. Failures are logged, never surfaced.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear persisted session")
	}
	return nil
}

// LoginWithGoogle is the federated login stub. It resolves the identity by
// email when the provider handed one back, and falls back to the first
// seeded account otherwise so the flow stays deterministic.
func (s *authService) LoginWithGoogle(ctx context.Context, email string) (*AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var account *models.Account
	if email != "" {
		found, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up account: %w", err)
		}
		account = found
	}

	if account == nil {
		accounts, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		if len(accounts) == 0 {
			return nil, apperrors.NewProviderError("no account available for federated login")
		}
		account = accounts[0]
	}

	identity := account.Identity
	return s.establish(ctx, &identity)
}

// CurrentIdentity rehydrates the persisted session slot.
func (s *authService) CurrentIdentity(ctx context.Context) (*models.Identity, error) {
	return s.sessions.Load(ctx)
}

// GetIdentity returns the identity for an account id.
func (s *authService) GetIdentity(ctx context.Context, id string) (*models.Identity, error) {
	account, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	identity := account.Identity
	return &identity, nil
}

// establish persists the identity as the active session and issues a token.
func (s *authService) establish(ctx context.Context, identity *models.Identity) (*AuthResult, error) {
	if err := s.sessions.Save(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, expiresIn, err := s.jwtService.GenerateToken(identity)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Identity:    identity,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
