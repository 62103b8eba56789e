package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduforge/backend/internal/app/controllers"
	"github.com/eduforge/backend/internal/app/models/dto"
	"github.com/eduforge/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	instructorController *controllers.InstructorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.ListCourses)
		courses.GET("/:slug", catalogController.GetCourseBySlug)
	}
	v1.GET("/categories", catalogController.ListCategories)

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		// Already-authenticated visitors are bounced back home.
		auth.POST("/login", authMiddleware.GuestOnly(), authController.Login)
		auth.POST("/signup", authMiddleware.GuestOnly(), authController.SignUp)
		auth.POST("/google", authController.GoogleLogin)
		auth.GET("/google/callback", authController.GoogleCallback)

		auth.POST("/logout", authMiddleware.JWTAuth(), authController.Logout)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// --- Instructor routes (authenticated + instructor role) ---
	instructor := v1.Group("/instructor")
	instructor.Use(authMiddleware.JWTAuth(), authMiddleware.RequireInstructor())
	{
		instructor.GET("/dashboard", instructorController.Dashboard)
		instructor.GET("/courses", instructorController.MyCourses)
		instructor.POST("/courses", instructorController.SubmitCourse)
	}

	// Unknown paths resolve to a not-found envelope.
	router.NoRoute(func(c *gin.Context) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found").
			WithDetailsf("no route for %s %s", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
	})
}
