package repositories

import (
	"context"

	"github.com/eduforge/backend/internal/app/models"
)

// UserRepository abstracts account storage so the auth and authorization
// logic does not change when the backing store does.
type UserRepository interface {
	// FindByEmail returns the account for the email, or apperrors.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// FindByID returns the account for the id, or apperrors.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Account, error)
	// EmailExists reports whether an account with the email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create stores a new account. Duplicate emails map to
	// apperrors.ErrDuplicateAccount.
	Create(ctx context.Context, account *models.Account) error
	// List returns all accounts in insertion order.
	List(ctx context.Context) ([]*models.Account, error)
}

// CourseRepository abstracts course storage for the catalog.
type CourseRepository interface {
	// GetAll returns every course in insertion order.
	GetAll(ctx context.Context) ([]models.Course, error)
	// GetBySlug returns the course with the slug, or apperrors.ErrCourseNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	// GetByInstructorID returns the courses taught by the instructor.
	GetByInstructorID(ctx context.Context, instructorID string) ([]models.Course, error)
	// SlugExists reports whether a course with the slug exists.
	SlugExists(ctx context.Context, slug string) (bool, error)
	// Create stores a new course. Duplicate slugs map to
	// apperrors.ErrSlugAlreadyExists.
	Create(ctx context.Context, course *models.Course) error
	// Categories returns the distinct categories in first-seen order.
	Categories(ctx context.Context) ([]string, error)
}

// Repositories bundles the application's stores.
type Repositories struct {
	Users   UserRepository
	Courses CourseRepository
}
