package classControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	"lssctc/models"
	classModels "lssctc/models/class"
	"lssctc/services"
	"lssctc/utils"

	"github.com/gofiber/fiber/v2"
)

func Enroll(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	enrollment, err := services.Enroll(database.Database.Db, traineeID, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment request submitted!", enrollment)
}

func GetMyEnrollments(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []classModels.Enrollment
	if err := database.Database.Db.Where("trainee_id = ? AND is_deleted = ?", traineeID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func CancelMyEnrollment(c *fiber.Ctx) error {
	traineeID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
	}

	enrollment, err := services.CancelEnrollment(database.Database.Db, traineeID, uint(enrollmentID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", enrollment)
}

func GetClassEnrollments(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	db := database.Database.Db.Where("class_id = ? AND is_deleted = ?", classID, false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var enrollments []classModels.Enrollment
	if err := db.Order("created_at asc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func ApproveEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
	}

	enrollment, err := services.ApproveEnrollment(database.Database.Db, uint(enrollmentID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	var trainee models.User
	if err := database.Database.Db.Where("id = ?", enrollment.TraineeID).First(&trainee).Error; err == nil {
		var cls classModels.Class
		if err := database.Database.Db.Where("id = ?", enrollment.ClassID).First(&cls).Error; err == nil {
			utils.SendEnrollmentApprovedEmail(trainee.Email, trainee.Name, cls.ClassCode)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment approved successfully!", enrollment)
}

func RejectEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
	}

	enrollment, err := services.RejectEnrollment(database.Database.Db, uint(enrollmentID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment rejected!", enrollment)
}
