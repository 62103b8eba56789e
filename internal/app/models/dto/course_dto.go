package dto

import "github.com/eduforge/backend/internal/app/models"

// CourseListResponse is the catalog query result.
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Total   int             `json:"total"`
}

// SubmitCourseRequest is the course-creation wizard payload.
type SubmitCourseRequest struct {
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description"`
	Category      string             `json:"category"`
	Level         models.Level       `json:"level"`
	Price         float64            `json:"price" binding:"min=0"`
	DiscountPrice *float64           `json:"discountPrice,omitempty"`
	Duration      string             `json:"duration"`
	Language      string             `json:"language"`
	Image         string             `json:"image"`
	Tags          []string           `json:"tags"`
	AIEnhanced    bool               `json:"aiEnhanced"`
	Curriculum    *models.Curriculum `json:"curriculum,omitempty"`
	Requirements  []string           `json:"requirements,omitempty"`
	Objectives    []string           `json:"objectives,omitempty"`
}

// SubmitCourseResponse returns the id of the accepted draft.
type SubmitCourseResponse struct {
	CourseID string `json:"courseId"`
}
