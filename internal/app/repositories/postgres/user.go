package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/pkg/apperrors"
	"github.com/eduforge/backend/internal/pkg/dberrors"
	"github.com/eduforge/backend/internal/pkg/logger"
)

// UserRepository stores accounts in PostgreSQL.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var userColumns = []string{"id", "email", "name", "avatar", "roles", "password_hash"}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var (
		account models.Account
		roles   []string
	)
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.Avatar, &roles, &account.PasswordHash)
	if err != nil {
		return nil, err
	}
	account.Roles = make([]models.Role, 0, len(roles))
	for _, r := range roles {
		account.Roles = append(account.Roles, models.Role(r))
	}
	return &account, nil
}

// FindByEmail returns the account for the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where("LOWER(email) = LOWER(?)", email).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	account, err := scanAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return account, nil
}

// FindByID returns the account for the id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user query: %w", err)
	}

	account, err := scanAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}
	return account, nil
}

// EmailExists reports whether an account with the email exists.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))", email).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// Create stores a new account.
func (r *UserRepository) Create(ctx context.Context, account *models.Account) error {
	roles := make([]string, 0, len(account.Roles))
	for _, role := range account.Roles {
		roles = append(roles, string(role))
	}

	sql, args, err := r.sb.Insert("users").
		Columns(userColumns...).
		Values(account.ID, account.Email, account.Name, account.Avatar, roles, account.PasswordHash).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateAccount
		}
		logger.Error().Err(err).Str("email", account.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// List returns all accounts in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]*models.Account, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}
