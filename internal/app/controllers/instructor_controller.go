package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/backend/internal/app/models/dto"
	"github.com/eduforge/backend/internal/app/services"
	"github.com/eduforge/backend/internal/middleware"
)

// InstructorController handles the instructor dashboard and course submission
type InstructorController struct {
	courseService services.CourseService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(courseService services.CourseService) *InstructorController {
	return &InstructorController{courseService: courseService}
}

// Dashboard returns the instructor's summary statistics
// @Summary Instructor dashboard
// @Tags instructor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.InstructorStats}
// @Failure 403 {object} dto.ErrorResponse "Not an instructor"
// @Router /instructor/dashboard [get]
func (c *InstructorController) Dashboard(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)
	stats, err := c.courseService.Stats(ctx, identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// MyCourses returns the courses taught by the authenticated instructor
// @Summary Instructor's courses
// @Tags instructor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 403 {object} dto.ErrorResponse "Not an instructor"
// @Router /instructor/courses [get]
func (c *InstructorController) MyCourses(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)
	courses, err := c.courseService.CoursesByInstructor(ctx, identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CourseListResponse{
		Courses: courses,
		Total:   len(courses),
	}))
}

// SubmitCourse accepts a course draft from the creation wizard
// @Summary Submit a course draft
// @Tags instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitCourseRequest true "Course draft"
// @Success 201 {object} dto.APIResponse{data=dto.SubmitCourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid draft"
// @Failure 403 {object} dto.ErrorResponse "Not an instructor"
// @Router /instructor/courses [post]
func (c *InstructorController) SubmitCourse(ctx *gin.Context) {
	var req dto.SubmitCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course draft").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	courseID, err := c.courseService.SubmitCourse(ctx, identity, services.CourseDraft{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Level:         req.Level,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Duration:      req.Duration,
		Language:      req.Language,
		Image:         req.Image,
		Tags:          req.Tags,
		AIEnhanced:    req.AIEnhanced,
		Curriculum:    req.Curriculum,
		Requirements:  req.Requirements,
		Objectives:    req.Objectives,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SubmitCourseResponse{CourseID: courseID}))
}
