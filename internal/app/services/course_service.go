package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/app/repositories"
	"github.com/eduforge/backend/internal/pkg/apperrors"
)

// CourseDraft is what the course-creation wizard submits. Storage and deep
// validation of wizard-only fields stay behind this contract.
type CourseDraft struct {
	Title         string
	Description   string
	Category      string
	Level         models.Level
	Price         float64
	DiscountPrice *float64
	Duration      string
	Language      string
	Image         string
	Tags          []string
	AIEnhanced    bool
	Curriculum    *models.Curriculum
	Requirements  []string
	Objectives    []string
}

// InstructorStats summarizes an instructor's catalog for the dashboard.
type InstructorStats struct {
	CourseCount   int     `json:"courseCount"`
	TotalStudents int     `json:"totalStudents"`
	AverageRating float64 `json:"averageRating"`
}

// CourseService owns instructor-facing course operations.
type CourseService interface {
	// SubmitCourse validates the draft and stores it, returning the new
	// course id.
	SubmitCourse(ctx context.Context, instructor *models.Identity, draft CourseDraft) (string, error)
	// CoursesByInstructor returns the instructor's own courses.
	CoursesByInstructor(ctx context.Context, instructorID string) ([]models.Course, error)
	// Stats computes the dashboard summary for an instructor.
	Stats(ctx context.Context, instructorID string) (*InstructorStats, error)
}

type courseService struct {
	courseRepo repositories.CourseRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo repositories.CourseRepository, lgr zerolog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		logger:     lgr,
		now:        time.Now,
	}
}

// SubmitCourse validates the draft and stores it.
func (s *courseService) SubmitCourse(ctx context.Context, instructor *models.Identity, draft CourseDraft) (string, error) {
	if instructor == nil {
		return "", apperrors.ErrPermissionDenied
	}
	if strings.TrimSpace(draft.Title) == "" {
		return "", apperrors.NewValidationError("title is required")
	}
	if draft.Price < 0 {
		return "", apperrors.NewValidationError("price must not be negative")
	}
	if draft.DiscountPrice != nil && *draft.DiscountPrice > draft.Price {
		return "", apperrors.ErrInvalidDiscount
	}
	if draft.Level == "" {
		draft.Level = models.LevelAllLevels
	}
	if !models.ValidLevel(draft.Level) {
		return "", apperrors.NewValidationError("unknown course level")
	}

	slug, err := s.uniqueSlug(ctx, draft.Title)
	if err != nil {
		return "", err
	}

	avatar := ""
	if instructor.Avatar != nil {
		avatar = *instructor.Avatar
	}

	course := &models.Course{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Instructor: models.InstructorRef{
			ID:     instructor.ID,
			Name:   instructor.Name,
			Avatar: avatar,
		},
		Duration:      draft.Duration,
		Level:         draft.Level,
		Price:         draft.Price,
		DiscountPrice: draft.DiscountPrice,
		Image:         draft.Image,
		Category:      draft.Category,
		Tags:          draft.Tags,
		AIEnhanced:    draft.AIEnhanced,
		LastUpdated:   s.now(),
		Language:      draft.Language,
		Curriculum:    draft.Curriculum,
		Requirements:  draft.Requirements,
		Objectives:    draft.Objectives,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return "", err
	}

	s.logger.Info().Str("slug", slug).Str("instructorID", instructor.ID).Msg("Course submitted")
	return course.ID, nil
}

// CoursesByInstructor returns the instructor's own courses.
func (s *courseService) CoursesByInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	return s.courseRepo.GetByInstructorID(ctx, instructorID)
}

// Stats computes the dashboard summary for an instructor.
func (s *courseService) Stats(ctx context.Context, instructorID string) (*InstructorStats, error) {
	courses, err := s.courseRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	stats := &InstructorStats{CourseCount: len(courses)}
	var ratingSum float64
	for _, c := range courses {
		stats.TotalStudents += c.StudentCount
		ratingSum += c.Rating
	}
	if len(courses) > 0 {
		stats.AverageRating = ratingSum / float64(len(courses))
	}
	return stats, nil
}

// uniqueSlug derives a URL-safe slug from the title and suffixes it until it
// is unique.
func (s *courseService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "course"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.courseRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Slugify lowercases the title and collapses anything that is not a letter
// or digit into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
