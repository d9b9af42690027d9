package adminRoutes

import (
	courseControllers "lssctc/controllers/course"
	practiceControllers "lssctc/controllers/practice"
	programControllers "lssctc/controllers/program"
	"lssctc/middleware"
	"lssctc/models"
	courseValidator "lssctc/validators/course"
	practiceValidator "lssctc/validators/practice"
	programValidator "lssctc/validators/program"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up catalog management: programs, courses, sections,
// activities and the practice/quiz definitions behind them.
func SetupAdminRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	programGroup := app.Group("/admin/program")
	programGroup.Post("/create", middleware.JWTMiddleware, admin, programValidator.Program(), programControllers.CreateProgram)
	programGroup.Put("/:id", middleware.JWTMiddleware, admin, programValidator.Program(), programControllers.UpdateProgram)
	programGroup.Delete("/:id", middleware.JWTMiddleware, admin, programControllers.DeleteProgram)
	programGroup.Get("/list", middleware.JWTMiddleware, admin, programControllers.GetPrograms)
	programGroup.Get("/:id", middleware.JWTMiddleware, admin, programControllers.GetProgramDetails)

	// Program course composition
	programGroup.Post("/:id/course", middleware.JWTMiddleware, admin, programValidator.ProgramCourse(), programControllers.AddCourse)
	programGroup.Delete("/:id/course/:course_id", middleware.JWTMiddleware, admin, programControllers.RemoveCourse)
	programGroup.Put("/:id/course/reorder", middleware.JWTMiddleware, admin, programValidator.ReorderCourse(), programControllers.ReorderCourse)

	courseGroup := app.Group("/admin/course")
	courseGroup.Post("/create", middleware.JWTMiddleware, admin, courseValidator.Course(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, admin, courseValidator.Course(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, admin, courseControllers.DeleteCourse)
	courseGroup.Get("/list", middleware.JWTMiddleware, admin, courseControllers.GetCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, admin, courseControllers.GetCourseDetails)
	courseGroup.Post("/:id/section", middleware.JWTMiddleware, admin, courseValidator.AttachSection(), courseControllers.AttachSection)

	sectionGroup := app.Group("/admin/section")
	sectionGroup.Post("/create", middleware.JWTMiddleware, admin, courseValidator.Section(), courseControllers.CreateSection)
	sectionGroup.Get("/list", middleware.JWTMiddleware, admin, courseControllers.GetSections)
	sectionGroup.Get("/:id/activities", middleware.JWTMiddleware, admin, courseControllers.GetSectionActivities)
	sectionGroup.Post("/:id/activity", middleware.JWTMiddleware, admin, courseValidator.AttachActivity(), courseControllers.AttachActivity)
	sectionGroup.Delete("/:id/activity/:activity_id", middleware.JWTMiddleware, admin, courseControllers.DetachActivity)
	sectionGroup.Put("/:id/activity/:activity_id/order", middleware.JWTMiddleware, admin, courseValidator.ActivityOrder(), courseControllers.ReorderActivity)

	activityGroup := app.Group("/admin/activity")
	activityGroup.Post("/create", middleware.JWTMiddleware, admin, courseValidator.Activity(), courseControllers.CreateActivity)
	activityGroup.Get("/list", middleware.JWTMiddleware, admin, courseControllers.GetActivities)

	practiceGroup := app.Group("/admin/practice")
	practiceGroup.Post("/create", middleware.JWTMiddleware, admin, practiceValidator.PracticeDefinition(), practiceControllers.CreatePractice)

	quizGroup := app.Group("/admin/quiz")
	quizGroup.Post("/create", middleware.JWTMiddleware, admin, practiceValidator.QuizDefinition(), practiceControllers.CreateQuiz)
}
