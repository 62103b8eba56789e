package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduforge/backend/internal/app/models"
	memoryRepos "github.com/eduforge/backend/internal/app/repositories/memory"
	"github.com/eduforge/backend/internal/pkg/apperrors"
)

func newCourseService(seed []models.Course) (CourseService, *memoryRepos.CourseRepository) {
	repo := memoryRepos.NewCourseRepository(seed)
	svc := NewCourseService(repo, zerolog.Nop())
	return svc, repo
}

func testInstructor() *models.Identity {
	avatar := "https://example.com/avatar.jpg"
	return &models.Identity{
		ID:     "instructor-1",
		Email:  "teach@example.com",
		Name:   "Test Instructor",
		Avatar: &avatar,
		Roles:  []models.Role{models.RoleInstructor},
	}
}

func TestSubmitCourseStoresDraft(t *testing.T) {
	svc, repo := newCourseService(nil)

	id, err := svc.SubmitCourse(context.Background(), testInstructor(), CourseDraft{
		Title:    "Intro to Testing",
		Category: "Programming",
		Price:    19.99,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id == "" {
		t.Fatal("Expected a course id, got empty string")
	}

	course, err := repo.GetBySlug(context.Background(), "intro-to-testing")
	if err != nil {
		t.Fatalf("Expected stored course, got %v", err)
	}
	if course.Instructor.ID != "instructor-1" {
		t.Errorf("Expected instructor id 'instructor-1', got %q", course.Instructor.ID)
	}
	if course.Level != models.LevelAllLevels {
		t.Errorf("Expected default level %q, got %q", models.LevelAllLevels, course.Level)
	}
	if course.LastUpdated.IsZero() {
		t.Error("Expected LastUpdated to be stamped")
	}
}

func TestSubmitCourseRejectsDiscountAbovePrice(t *testing.T) {
	svc, _ := newCourseService(nil)
	discount := 50.0

	_, err := svc.SubmitCourse(context.Background(), testInstructor(), CourseDraft{
		Title:         "Overdiscounted",
		Price:         40,
		DiscountPrice: &discount,
	})
	if !errors.Is(err, apperrors.ErrInvalidDiscount) {
		t.Errorf("Expected ErrInvalidDiscount, got %v", err)
	}
}

func TestSubmitCourseRejectsBadDrafts(t *testing.T) {
	svc, _ := newCourseService(nil)
	ctx := context.Background()

	if _, err := svc.SubmitCourse(ctx, testInstructor(), CourseDraft{Title: "  "}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Expected validation error for blank title, got %v", err)
	}
	if _, err := svc.SubmitCourse(ctx, testInstructor(), CourseDraft{Title: "x", Price: -1}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Expected validation error for negative price, got %v", err)
	}
	if _, err := svc.SubmitCourse(ctx, testInstructor(), CourseDraft{Title: "x", Level: "Expert"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Expected validation error for unknown level, got %v", err)
	}
	if _, err := svc.SubmitCourse(ctx, nil, CourseDraft{Title: "x"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Expected permission error for nil instructor, got %v", err)
	}
}

func TestSubmitCourseSuffixesDuplicateSlugs(t *testing.T) {
	svc, repo := newCourseService([]models.Course{
		{ID: "seed", Slug: "my-course", Title: "My Course"},
	})

	if _, err := svc.SubmitCourse(context.Background(), testInstructor(), CourseDraft{Title: "My Course"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := repo.GetBySlug(context.Background(), "my-course-2"); err != nil {
		t.Errorf("Expected slug 'my-course-2' to exist, got %v", err)
	}

	if _, err := svc.SubmitCourse(context.Background(), testInstructor(), CourseDraft{Title: "My Course"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := repo.GetBySlug(context.Background(), "my-course-3"); err != nil {
		t.Errorf("Expected slug 'my-course-3' to exist, got %v", err)
	}
}

func TestStatsAggregatesInstructorCourses(t *testing.T) {
	svc, _ := newCourseService([]models.Course{
		{ID: "1", Slug: "a", Instructor: models.InstructorRef{ID: "i1"}, StudentCount: 100, Rating: 4.0},
		{ID: "2", Slug: "b", Instructor: models.InstructorRef{ID: "i1"}, StudentCount: 300, Rating: 5.0},
		{ID: "3", Slug: "c", Instructor: models.InstructorRef{ID: "other"}, StudentCount: 999, Rating: 1.0},
	})

	stats, err := svc.Stats(context.Background(), "i1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.CourseCount != 2 {
		t.Errorf("Expected 2 courses, got %d", stats.CourseCount)
	}
	if stats.TotalStudents != 400 {
		t.Errorf("Expected 400 students, got %d", stats.TotalStudents)
	}
	if stats.AverageRating != 4.5 {
		t.Errorf("Expected average rating 4.5, got %v", stats.AverageRating)
	}
}

func TestStatsWithNoCourses(t *testing.T) {
	svc, _ := newCourseService(nil)

	stats, err := svc.Stats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.CourseCount != 0 || stats.TotalStudents != 0 || stats.AverageRating != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Machine Learning Fundamentals", "machine-learning-fundamentals"},
		{"UX/UI Design Principles", "ux-ui-design-principles"},
		{"Project Management Professional (PMP) Certification", "project-management-professional-pmp-certification"},
		{"  Trimmed   Title  ", "trimmed-title"},
		{"C++ & Go!", "c-go"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSubmitCourseUsesClock(t *testing.T) {
	repo := memoryRepos.NewCourseRepository(nil)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &courseService{courseRepo: repo, logger: zerolog.Nop(), now: func() time.Time { return fixed }}

	if _, err := svc.SubmitCourse(context.Background(), testInstructor(), CourseDraft{Title: "Clock Test"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	course, err := repo.GetBySlug(context.Background(), "clock-test")
	if err != nil {
		t.Fatalf("Expected stored course, got %v", err)
	}
	if !course.LastUpdated.Equal(fixed) {
		t.Errorf("Expected LastUpdated %v, got %v", fixed, course.LastUpdated)
	}
}
