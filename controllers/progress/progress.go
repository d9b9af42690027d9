package progressControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	"lssctc/models"
	classModels "lssctc/models/class"
	progressModels "lssctc/models/progress"
	"lssctc/services"
	"lssctc/utils"
	progressValidator "lssctc/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// GetMyProgress returns the learning progress for one of the caller's
// enrollments, with its section and activity records nested.
func GetMyProgress(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
	}

	var enrollment classModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.TraineeID != traineeID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var lp progressModels.LearningProgress
	if err := database.Database.Db.Where("enrollment_id = ?", enrollment.ID).First(&lp).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}

	var sectionRecords []progressModels.SectionRecord
	database.Database.Db.Where("learning_progress_id = ?", lp.ID).
		Order("section_order asc").Find(&sectionRecords)

	sections := make([]fiber.Map, 0, len(sectionRecords))
	for _, sr := range sectionRecords {
		var activityRecords []progressModels.ActivityRecord
		database.Database.Db.Where("section_record_id = ?", sr.ID).Find(&activityRecords)
		sections = append(sections, fiber.Map{
			"section_record": sr,
			"activities":     activityRecords,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"learning_progress": lp,
		"sections":          sections,
	})
}

// CompleteActivity marks an activity done for the caller's enrollment and
// runs the progress recalculation chain.
func CompleteActivity(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
	}
	activityID, err := c.ParamsInt("activityId")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	var enrollment classModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.TraineeID != traineeID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	record, err := services.CompleteActivity(database.Database.Db, enrollment.ID, uint(activityID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	notifyIfCourseCompleted(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity completed successfully!", record)
}

func GetClassSessions(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	sessions, err := services.GetClassSessions(database.Database.Db, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

func UpdateSession(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}
	activityID, err := c.ParamsInt("activityId")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	reqData, ok := c.Locals("validatedSessionUpdate").(*progressValidator.SessionUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := services.UpdateActivitySession(database.Database.Db, uint(classID), uint(activityID), services.UpdateSessionInput{
		IsActive:  reqData.IsActive,
		StartTime: reqData.StartTime,
		EndTime:   reqData.EndTime,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", session)
}

// CheckAccess tells the client whether an activity is currently open for a
// class without mutating anything beyond the lazy session backfill.
func CheckAccess(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}
	activityID, err := c.ParamsInt("activityId")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	if err := services.CheckActivityAccess(database.Database.Db, uint(classID), uint(activityID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity is accessible!", fiber.Map{"accessible": true})
}

// notifyIfCourseCompleted emails the trainee when the learning progress for
// the enrollment has just reached COMPLETED.
func notifyIfCourseCompleted(enrollment *classModels.Enrollment) {
	var lp progressModels.LearningProgress
	if err := database.Database.Db.Where("enrollment_id = ?", enrollment.ID).First(&lp).Error; err != nil {
		return
	}
	if lp.Status != progressModels.ProgressCompleted {
		return
	}

	var trainee models.User
	if err := database.Database.Db.Where("id = ?", enrollment.TraineeID).First(&trainee).Error; err != nil {
		return
	}
	var cls classModels.Class
	if err := database.Database.Db.Where("id = ?", enrollment.ClassID).First(&cls).Error; err != nil {
		return
	}
	utils.SendCourseCompletedEmail(trainee.Email, trainee.Name, cls.ClassCode)
}
