package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/backend/internal/app/models/dto"
	"github.com/eduforge/backend/internal/app/services"
	"github.com/eduforge/backend/internal/middleware"
)

// CatalogController handles the public course catalog
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCourses returns the filtered catalog
// @Summary List courses
// @Description Applies the conjunction of the given filters to the catalog
// @Tags courses
// @Produce json
// @Param q query string false "Free-text search over title, description, category and tags"
// @Param category query string false "Exact category ('all' matches everything)"
// @Param level query string false "Exact level ('all' matches everything)"
// @Param priceMin query number false "Minimum effective price, inclusive"
// @Param priceMax query number false "Maximum effective price, inclusive"
// @Param aiOnly query bool false "Keep only AI-enhanced courses"
// @Param mode query string false "all, featured, popular or new"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	criteria := services.Criteria{
		Text:     ctx.Query("q"),
		Category: ctx.Query("category"),
		Level:    ctx.Query("level"),
		Mode:     services.ParseQueryMode(ctx.Query("mode")),
	}
	// Malformed numbers and flags degrade to "no filter", never to a fault.
	if v, err := strconv.ParseFloat(ctx.Query("priceMin"), 64); err == nil {
		criteria.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(ctx.Query("priceMax"), 64); err == nil {
		criteria.PriceMax = &v
	}
	if v, err := strconv.ParseBool(ctx.Query("aiOnly")); err == nil {
		criteria.AIEnhancedOnly = v
	}

	courses, err := c.catalogService.Query(ctx, criteria)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses: courses,
		Total:   len(courses),
	}))
}

// GetCourseBySlug returns a single course
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Unknown slug"
// @Router /courses/{slug} [get]
func (c *CatalogController) GetCourseBySlug(ctx *gin.Context) {
	course, err := c.catalogService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// ListCategories returns the distinct course categories
// @Summary List categories
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.catalogService.Categories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(categories))
}
