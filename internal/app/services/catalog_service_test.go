package services

import (
	"testing"
	"time"

	"github.com/eduforge/backend/internal/app/models"
)

func f64(v float64) *float64 { return &v }

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func catalogFixture() []models.Course {
	return []models.Course{
		{
			ID: "1", Slug: "go-basics", Title: "Go Basics",
			Description: "Learn the Go programming language from scratch.",
			Category:    "Programming", Level: models.LevelBeginner,
			Price: 49.99, Tags: []string{"Go", "Backend"},
			AIEnhanced: true, Featured: true,
			StudentCount: 500, LastUpdated: day("2023-06-01"),
		},
		{
			ID: "2", Slug: "advanced-go", Title: "Advanced Go",
			Description: "Concurrency patterns and performance tuning.",
			Category:    "Programming", Level: models.LevelAdvanced,
			Price: 99.99, DiscountPrice: f64(59.99), Tags: []string{"Go", "Concurrency"},
			StudentCount: 1200, LastUpdated: day("2023-09-15"),
		},
		{
			ID: "3", Slug: "watercolor-painting", Title: "Watercolor Painting",
			Description: "An introduction to painting with watercolors.",
			Category:    "Art", Level: models.LevelBeginner,
			Price: 29.99, Tags: []string{"Painting", "Creativity"},
			Featured:     true,
			StudentCount: 300, LastUpdated: day("2023-03-10"),
		},
		{
			ID: "4", Slug: "data-pipelines", Title: "Data Pipelines",
			Description: "Building reliable data pipelines.",
			Category:    "Data Science", Level: models.LevelIntermediate,
			Price: 79.99, Tags: []string{"ETL", "Python"},
			AIEnhanced:   true,
			StudentCount: 900, LastUpdated: day("2023-12-01"),
		},
	}
}

func courseIDs(courses []models.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func sameIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterCoursesNoCriteriaReturnsAll(t *testing.T) {
	courses := catalogFixture()
	result := FilterCourses(courses, Criteria{})
	if len(result) != len(courses) {
		t.Fatalf("Expected %d courses, got %d", len(courses), len(result))
	}
	if !sameIDs(courseIDs(result), courseIDs(courses)) {
		t.Errorf("Expected original order %v, got %v", courseIDs(courses), courseIDs(result))
	}
}

func TestFilterCoursesConjunction(t *testing.T) {
	criteria := Criteria{
		Text:           "go",
		Category:       "Programming",
		AIEnhancedOnly: true,
	}
	result := FilterCourses(catalogFixture(), criteria)
	if len(result) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(result))
	}
	if result[0].ID != "1" {
		t.Errorf("Expected course 1, got %s", result[0].ID)
	}
}

func TestFilterCoursesIdempotent(t *testing.T) {
	courses := catalogFixture()
	criteria := Criteria{Category: "Programming"}

	first := FilterCourses(courses, criteria)
	second := FilterCourses(courses, criteria)
	if !sameIDs(courseIDs(first), courseIDs(second)) {
		t.Errorf("Expected identical results, got %v then %v", courseIDs(first), courseIDs(second))
	}
}

func TestFilterCoursesDoesNotMutateSource(t *testing.T) {
	courses := catalogFixture()
	before := courseIDs(courses)

	FilterCourses(courses, Criteria{Mode: ModePopular})
	FilterCourses(courses, Criteria{Mode: ModeNew})

	if !sameIDs(courseIDs(courses), before) {
		t.Errorf("Expected source order %v to be unchanged, got %v", before, courseIDs(courses))
	}
}

func TestFilterCoursesTextMatchesTags(t *testing.T) {
	result := FilterCourses(catalogFixture(), Criteria{Text: "concurrency"})
	if len(result) != 1 || result[0].ID != "2" {
		t.Fatalf("Expected only course 2 to match tag search, got %v", courseIDs(result))
	}
}

func TestFilterCoursesAllSentinelMatchesEverything(t *testing.T) {
	result := FilterCourses(catalogFixture(), Criteria{Category: "all", Level: "all"})
	if len(result) != 4 {
		t.Errorf("Expected 4 courses for the 'all' sentinel, got %d", len(result))
	}
}

func TestFilterCoursesPriceBoundsAreInclusive(t *testing.T) {
	// Course 2 has a discount, so its effective price is 59.99.
	result := FilterCourses(catalogFixture(), Criteria{PriceMin: f64(59.99), PriceMax: f64(59.99)})
	if len(result) != 1 {
		t.Fatalf("Expected exactly the discounted course, got %v", courseIDs(result))
	}
	if result[0].ID != "2" {
		t.Errorf("Expected course 2, got %s", result[0].ID)
	}
}

func TestFilterCoursesEffectivePriceUsesDiscount(t *testing.T) {
	// The list price of course 2 (99.99) must not match once discounted.
	result := FilterCourses(catalogFixture(), Criteria{PriceMin: f64(90)})
	if len(result) != 0 {
		t.Errorf("Expected no courses above 90 effective price, got %v", courseIDs(result))
	}
}

func TestFilterCoursesFeaturedMode(t *testing.T) {
	result := FilterCourses(catalogFixture(), Criteria{Mode: ModeFeatured})
	if !sameIDs(courseIDs(result), []string{"1", "3"}) {
		t.Errorf("Expected featured courses [1 3], got %v", courseIDs(result))
	}
}

func TestFilterCoursesPopularModeSortsByStudents(t *testing.T) {
	result := FilterCourses(catalogFixture(), Criteria{Mode: ModePopular})
	if !sameIDs(courseIDs(result), []string{"2", "4", "1", "3"}) {
		t.Errorf("Expected [2 4 1 3] by student count, got %v", courseIDs(result))
	}
}

func TestFilterCoursesNewModeSortsByLastUpdated(t *testing.T) {
	result := FilterCourses(catalogFixture(), Criteria{Mode: ModeNew})
	if !sameIDs(courseIDs(result), []string{"4", "2", "1", "3"}) {
		t.Errorf("Expected [4 2 1 3] by last updated, got %v", courseIDs(result))
	}
}

func TestFilterCoursesPopularModeCapsResults(t *testing.T) {
	var many []models.Course
	for i := 0; i < 12; i++ {
		many = append(many, models.Course{
			ID:           string(rune('a' + i)),
			StudentCount: i,
			LastUpdated:  day("2023-01-01"),
		})
	}

	popular := FilterCourses(many, Criteria{Mode: ModePopular})
	if len(popular) != popularLimit {
		t.Errorf("Expected popular rail capped at %d, got %d", popularLimit, len(popular))
	}
	fresh := FilterCourses(many, Criteria{Mode: ModeNew})
	if len(fresh) != popularLimit {
		t.Errorf("Expected new rail capped at %d, got %d", popularLimit, len(fresh))
	}
}

func TestParseQueryMode(t *testing.T) {
	cases := []struct {
		in   string
		want QueryMode
	}{
		{"featured", ModeFeatured},
		{"POPULAR", ModePopular},
		{"new", ModeNew},
		{"all", ModeAll},
		{"", ModeAll},
		{"bogus", ModeAll},
	}
	for _, tc := range cases {
		if got := ParseQueryMode(tc.in); got != tc.want {
			t.Errorf("ParseQueryMode(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
