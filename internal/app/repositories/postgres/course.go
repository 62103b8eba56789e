package postgres

import (
	"context"
	"encoding/json"
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

// CourseRepository stores courses in PostgreSQL. The curriculum is kept as a
// JSONB document; it is only ever read and written whole.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var courseColumns = []string{
	"id", "slug", "title", "description", "long_description",
	"instructor_id", "instructor_name", "instructor_avatar",
	"rating", "review_count", "student_count", "duration", "level",
	"price", "discount_price", "image", "category", "tags",
	"ai_enhanced", "featured", "last_updated", "language",
	"curriculum", "requirements", "objectives",
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var (
		course        models.Course
		level         string
		curriculumRaw []byte
	)
	err := row.Scan(
		&course.ID, &course.Slug, &course.Title, &course.Description, &course.LongDescription,
		&course.Instructor.ID, &course.Instructor.Name, &course.Instructor.Avatar,
		&course.Rating, &course.ReviewCount, &course.StudentCount, &course.Duration, &level,
		&course.Price, &course.DiscountPrice, &course.Image, &course.Category, &course.Tags,
		&course.AIEnhanced, &course.Featured, &course.LastUpdated, &course.Language,
		&curriculumRaw, &course.Requirements, &course.Objectives,
	)
	if err != nil {
		return nil, err
	}
	course.Level = models.Level(level)
	if len(curriculumRaw) > 0 {
		var curriculum models.Curriculum
		if err := json.Unmarshal(curriculumRaw, &curriculum); err != nil {
			return nil, fmt.Errorf("error decoding curriculum: %w", err)
		}
		course.Curriculum = &curriculum
	}
	return &course, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Course, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

// GetAll returns every course in insertion order.
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	return r.queryCourses(ctx, r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("created_at ASC"))
}

// GetBySlug returns the course with the slug.
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by slug: %w", err)
	}
	return course, nil
}

// GetByInstructorID returns the courses taught by the instructor.
func (r *CourseRepository) GetByInstructorID(ctx context.Context, instructorID string) ([]models.Course, error) {
	return r.queryCourses(ctx, r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("created_at ASC"))
}

// SlugExists reports whether a course with the slug exists.
func (r *CourseRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM courses WHERE slug = $1)", slug).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Error checking slug existence")
		return false, fmt.Errorf("error checking slug existence: %w", err)
	}
	return exists, nil
}

// Create stores a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	var curriculumRaw []byte
	if course.Curriculum != nil {
		raw, err := json.Marshal(course.Curriculum)
		if err != nil {
			return fmt.Errorf("error encoding curriculum: %w", err)
		}
		curriculumRaw = raw
	}

	sql, args, err := r.sb.Insert("courses").
		Columns(courseColumns...).
		Values(
			course.ID, course.Slug, course.Title, course.Description, course.LongDescription,
			course.Instructor.ID, course.Instructor.Name, course.Instructor.Avatar,
			course.Rating, course.ReviewCount, course.StudentCount, course.Duration, string(course.Level),
			course.Price, course.DiscountPrice, course.Image, course.Category, course.Tags,
			course.AIEnhanced, course.Featured, course.LastUpdated, course.Language,
			curriculumRaw, course.Requirements, course.Objectives,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrSlugAlreadyExists
		}
		logger.Error().Err(err).Str("slug", course.Slug).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Categories returns the distinct categories in first-seen order.
func (r *CourseRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT category FROM courses GROUP BY category ORDER BY MIN(created_at)")
	if err != nil {
		logger.Error().Err(err).Msg("Error querying categories")
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
