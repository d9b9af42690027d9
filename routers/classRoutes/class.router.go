package classRoutes

import (
	controllers "lssctc/controllers/class"
	"lssctc/middleware"
	"lssctc/models"
	validators "lssctc/validators/class"

	"github.com/gofiber/fiber/v2"
)

// SetupClassRoutes sets up class lifecycle, enrollment and instructor
// assignment routes.
func SetupClassRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)
	trainee := middleware.RequireRole(models.RoleTrainee)

	adminGroup := app.Group("/admin/class")
	adminGroup.Post("/create", middleware.JWTMiddleware, admin, validators.CreateClass(), controllers.CreateClass)
	adminGroup.Get("/list", middleware.JWTMiddleware, admin, validators.List(), controllers.GetClasses)
	adminGroup.Get("/:id", middleware.JWTMiddleware, admin, controllers.GetClassDetails)

	// Lifecycle transitions
	adminGroup.Post("/:id/open", middleware.JWTMiddleware, admin, controllers.OpenClass)
	adminGroup.Post("/:id/start", middleware.JWTMiddleware, admin, controllers.StartClass)
	adminGroup.Post("/:id/complete", middleware.JWTMiddleware, admin, controllers.CompleteClass)
	adminGroup.Post("/:id/cancel", middleware.JWTMiddleware, admin, controllers.CancelClass)

	// Instructor assignment
	adminGroup.Post("/:id/instructor", middleware.JWTMiddleware, admin, validators.AssignInstructor(), controllers.AssignInstructor)
	adminGroup.Delete("/:id/instructor", middleware.JWTMiddleware, admin, controllers.RemoveInstructor)
	adminGroup.Get("/:id/instructor", middleware.JWTMiddleware, admin, controllers.GetInstructor)

	// Enrollment administration
	adminGroup.Get("/:id/enrollments", middleware.JWTMiddleware, admin, controllers.GetClassEnrollments)

	adminEnrollGroup := app.Group("/admin/enrollment")
	adminEnrollGroup.Post("/:id/approve", middleware.JWTMiddleware, admin, controllers.ApproveEnrollment)
	adminEnrollGroup.Post("/:id/reject", middleware.JWTMiddleware, admin, controllers.RejectEnrollment)

	// Trainee-facing
	classGroup := app.Group("/class")
	classGroup.Get("/list", middleware.JWTMiddleware, validators.List(), controllers.GetClasses)
	classGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetClassDetails)
	classGroup.Post("/:id/enroll", middleware.JWTMiddleware, trainee, controllers.Enroll)

	enrollGroup := app.Group("/enrollment")
	enrollGroup.Get("/list", middleware.JWTMiddleware, trainee, controllers.GetMyEnrollments)
	enrollGroup.Post("/:id/cancel", middleware.JWTMiddleware, trainee, controllers.CancelMyEnrollment)
}
