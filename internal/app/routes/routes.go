package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/chart"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/websocket"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Auth      *controllers.AuthController
	Home      *controllers.HomeController
	Review    *controllers.ReviewController
	Catalog   *controllers.CatalogController
	Dashboard *controllers.DashboardController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", ctrl.Auth.Login)
	v1.GET("/home", authMiddleware.OptionalAuth(), ctrl.Home.GetHome)
	v1.GET("/reviews", ctrl.Review.ListReviews)
	v1.GET("/courses", ctrl.Catalog.ListCourses)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrl.Auth.Logout)
		authenticated.POST("/reviews", ctrl.Review.CreateReview)
	}

	// --- Admin routes ---
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", ctrl.Dashboard.GetDashboard)
		admin.GET("/dashboard/chart", ctrl.Dashboard.GetChart)
		admin.GET("/dashboard/chart/ws", wsHandler.Subscribe(chart.Topic))
		admin.GET("/instructors", ctrl.Catalog.ListInstructors)
		admin.GET("/messages", ctrl.Catalog.ListMessages)
		admin.GET("/courses/:id/enrollments", ctrl.Catalog.ListCourseEnrollments)
	}
}
