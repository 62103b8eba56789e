package memory

import (
	"context"
	"sync"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/pkg/apperrors"
)

// CourseRepository is an in-memory course store seeded at startup.
// Insertion order is preserved; the catalog relies on it for the
// unsorted query modes.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []models.Course
}

// NewCourseRepository creates a store pre-populated with the given courses.
func NewCourseRepository(seed []models.Course) *CourseRepository {
	courses := make([]models.Course, len(seed))
	copy(courses, seed)
	return &CourseRepository{courses: courses}
}

// GetAll returns every course in insertion order.
func (r *CourseRepository) GetAll(_ context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

// GetBySlug returns the course with the slug.
func (r *CourseRepository) GetBySlug(_ context.Context, slug string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courses {
		if c.Slug == slug {
			cp := c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

// GetByInstructorID returns the courses taught by the instructor.
func (r *CourseRepository) GetByInstructorID(_ context.Context, instructorID string) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Course
	for _, c := range r.courses {
		if c.Instructor.ID == instructorID {
			out = append(out, c)
		}
	}
	return out, nil
}

// SlugExists reports whether a course with the slug exists.
func (r *CourseRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courses {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// Create stores a new course.
func (r *CourseRepository) Create(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.Slug == course.Slug {
			return apperrors.ErrSlugAlreadyExists
		}
	}
	r.courses = append(r.courses, *course)
	return nil
}

// Categories returns the distinct categories in first-seen order.
func (r *CourseRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool, len(r.courses))
	var out []string
	for _, c := range r.courses {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out, nil
}
