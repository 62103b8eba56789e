package services

import (
	"context"
	"sort"
	"strings"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/app/repositories"
)

// QueryMode selects the catalog rail being rendered.
type QueryMode string

const (
	ModeAll      QueryMode = "all"
	ModeFeatured QueryMode = "featured"
	ModePopular  QueryMode = "popular"
	ModeNew      QueryMode = "new"
)

// popularLimit caps the popular and new rails.
const popularLimit = 8

// AllSentinel is the criteria value meaning "no filter" for category and level.
const AllSentinel = "all"

// ParseQueryMode maps a request value to a QueryMode; anything unknown
// degrades to ModeAll.
func ParseQueryMode(s string) QueryMode {
	switch QueryMode(strings.ToLower(s)) {
	case ModeFeatured:
		return ModeFeatured
	case ModePopular:
		return ModePopular
	case ModeNew:
		return ModeNew
	}
	return ModeAll
}

// Criteria describes one catalog query. Zero values mean "no filter";
// unknown values degrade to no filter, never to an error.
type Criteria struct {
	// Text is matched case-insensitively against title, description,
	// category and tags.
	Text string
	// Category filters on exact category ("" or "all" matches everything).
	Category string
	// Level filters on exact level ("" or "all" matches everything).
	Level string
	// PriceMin and PriceMax bound the effective price, inclusive. A nil
	// bound is open.
	PriceMin *float64
	PriceMax *float64
	// AIEnhancedOnly keeps only AI-enhanced courses.
	AIEnhancedOnly bool
	// Mode applies the rail-specific filter/sort/limit after the other
	// predicates.
	Mode QueryMode
}

// CatalogService produces filtered views of the course collection.
type CatalogService interface {
	Query(ctx context.Context, criteria Criteria) ([]models.Course, error)
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	courseRepo repositories.CourseRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(courseRepo repositories.CourseRepository) CatalogService {
	return &catalogService{courseRepo: courseRepo}
}

// Query recomputes the filtered view from the full collection on every call.
func (s *catalogService) Query(ctx context.Context, criteria Criteria) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCourses(courses, criteria), nil
}

// GetBySlug returns a single course by its slug.
func (s *catalogService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	return s.courseRepo.GetBySlug(ctx, slug)
}

// Categories returns the distinct course categories.
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.courseRepo.Categories(ctx)
}

// FilterCourses applies the criteria to the collection and returns a new
// slice. The source is never reordered or mutated, so identical criteria
// always yield identical ordered results.
func FilterCourses(courses []models.Course, criteria Criteria) []models.Course {
	result := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if matches(&course, criteria) {
			result = append(result, course)
		}
	}

	switch criteria.Mode {
	case ModeFeatured:
		featured := result[:0]
		for _, course := range result {
			if course.Featured {
				featured = append(featured, course)
			}
		}
		result = featured
	case ModePopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].StudentCount > result[j].StudentCount
		})
		result = truncate(result, popularLimit)
	case ModeNew:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].LastUpdated.After(result[j].LastUpdated)
		})
		result = truncate(result, popularLimit)
	}
	return result
}

// matches evaluates the conjunction of every criteria predicate.
func matches(course *models.Course, criteria Criteria) bool {
	if q := strings.ToLower(strings.TrimSpace(criteria.Text)); q != "" {
		if !textMatch(course, q) {
			return false
		}
	}
	if criteria.Category != "" && criteria.Category != AllSentinel && course.Category != criteria.Category {
		return false
	}
	if criteria.Level != "" && criteria.Level != AllSentinel && string(course.Level) != criteria.Level {
		return false
	}
	price := course.EffectivePrice()
	if criteria.PriceMin != nil && price < *criteria.PriceMin {
		return false
	}
	if criteria.PriceMax != nil && price > *criteria.PriceMax {
		return false
	}
	if criteria.AIEnhancedOnly && !course.AIEnhanced {
		return false
	}
	return true
}

func textMatch(course *models.Course, query string) bool {
	if strings.Contains(strings.ToLower(course.Title), query) ||
		strings.Contains(strings.ToLower(course.Description), query) ||
		strings.Contains(strings.ToLower(course.Category), query) {
		return true
	}
	for _, tag := range course.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func truncate(courses []models.Course, limit int) []models.Course {
	if len(courses) > limit {
		return courses[:limit]
	}
	return courses
}
