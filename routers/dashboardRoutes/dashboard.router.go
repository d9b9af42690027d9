package dashboardRoutes

import (
	controllers "lssctc/controllers/dashboard"
	"lssctc/middleware"
	"lssctc/models"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the admin and instructor dashboards
func SetupDashboardRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)
	instructor := middleware.RequireRole(models.RoleInstructor)

	adminGroup := app.Group("/admin/dashboard")
	adminGroup.Get("/summary", middleware.JWTMiddleware, admin, controllers.AdminSummary)
	adminGroup.Get("/popular-courses", middleware.JWTMiddleware, admin, controllers.PopularCourses)
	adminGroup.Get("/active-trainees", middleware.JWTMiddleware, admin, controllers.ActiveTrainees)

	instructorGroup := app.Group("/instructor/dashboard")
	instructorGroup.Get("/classes", middleware.JWTMiddleware, instructor, controllers.InstructorSummary)
}
