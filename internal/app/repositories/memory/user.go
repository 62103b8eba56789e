package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/pkg/apperrors"
)

// UserRepository is an in-memory account store seeded at startup.
type UserRepository struct {
	mu       sync.RWMutex
	accounts []*models.Account
}

// NewUserRepository creates a store pre-populated with the given accounts.
func NewUserRepository(seed []*models.Account) *UserRepository {
	accounts := make([]*models.Account, 0, len(seed))
	for _, a := range seed {
		cp := *a
		accounts = append(accounts, &cp)
	}
	return &UserRepository{accounts: accounts}
}

// FindByEmail returns the account for the email.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindByID returns the account for the id.
func (r *UserRepository) FindByID(_ context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// EmailExists reports whether an account with the email exists.
func (r *UserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// Create stores a new account.
func (r *UserRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return apperrors.ErrDuplicateAccount
		}
	}
	cp := *account
	r.accounts = append(r.accounts, &cp)
	return nil
}

// List returns all accounts in insertion order.
func (r *UserRepository) List(_ context.Context) ([]*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}
