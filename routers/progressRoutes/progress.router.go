package progressRoutes

import (
	practiceControllers "lssctc/controllers/practice"
	progressControllers "lssctc/controllers/progress"
	"lssctc/middleware"
	"lssctc/models"
	practiceValidator "lssctc/validators/practice"
	progressValidator "lssctc/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up progress tracking, activity sessions and
// practice/quiz attempt routes.
func SetupProgressRoutes(app *fiber.App) {
	trainee := middleware.RequireRole(models.RoleTrainee)
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleInstructor)

	enrollGroup := app.Group("/enrollment")
	enrollGroup.Get("/:id/progress", middleware.JWTMiddleware, trainee, progressControllers.GetMyProgress)
	enrollGroup.Post("/:id/activity/:activityId/complete", middleware.JWTMiddleware, trainee, progressControllers.CompleteActivity)

	// Attempts
	enrollGroup.Post("/:id/practice/:practiceId/submit", middleware.JWTMiddleware, trainee, practiceValidator.PracticeSubmit(), practiceControllers.SubmitPractice)
	enrollGroup.Post("/:id/quiz/:quizId/submit", middleware.JWTMiddleware, trainee, practiceValidator.QuizSubmit(), practiceControllers.SubmitQuiz)

	// Activity definitions for trainees; correct answers are stripped
	activityGroup := app.Group("/activity")
	activityGroup.Get("/:activityId/practice", middleware.JWTMiddleware, practiceControllers.GetPractice)
	activityGroup.Get("/:activityId/quiz", middleware.JWTMiddleware, practiceControllers.GetQuiz)

	// Activity sessions
	classGroup := app.Group("/class")
	classGroup.Get("/:id/sessions", middleware.JWTMiddleware, progressControllers.GetClassSessions)
	classGroup.Get("/:id/activity/:activityId/access", middleware.JWTMiddleware, progressControllers.CheckAccess)
	classGroup.Put("/:id/activity/:activityId/session", middleware.JWTMiddleware, staff, progressValidator.SessionUpdate(), progressControllers.UpdateSession)
}
