package classControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	"lssctc/models"
	classModels "lssctc/models/class"
	"lssctc/services"
	"lssctc/utils"
	classValidator "lssctc/validators/class"

	"github.com/gofiber/fiber/v2"
)

func CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateClass").(*classValidator.CreateClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	cls, err := services.CreateClass(database.Database.Db, services.CreateClassInput{
		ProgramCourseID: reqData.ProgramCourseID,
		ClassCode:       reqData.ClassCode,
		Name:            reqData.Name,
		Description:     reqData.Description,
		Capacity:        reqData.Capacity,
		StartDate:       reqData.StartDate,
		EndDate:         reqData.EndDate,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully!", cls)
}

func GetClasses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&classModels.Class{}).Where("is_deleted = ?", false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	reqData, _ := c.Locals("validatedList").(*classValidator.ListRequest)
	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var classes []classModels.Class
	if err := db.Offset(offset).Limit(limit).Order("start_date desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes": classes,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetClassDetails(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	var cls classModels.Class
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", classID, false).First(&cls).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&classModels.Enrollment{}).
		Where("class_id = ? AND is_deleted = ? AND status NOT IN ?", classID, false,
			[]string{classModels.EnrollmentCancelled, classModels.EnrollmentRejected}).
		Count(&enrollmentCount)

	instructor, _ := services.GetClassInstructor(database.Database.Db, uint(classID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", fiber.Map{
		"class":            cls,
		"enrollment_count": enrollmentCount,
		"instructor":       instructor,
	})
}

func OpenClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	cls, err := services.OpenClass(database.Database.Db, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class opened successfully!", cls)
}

func StartClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	cls, err := services.StartClass(database.Database.Db, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	notifyClassStarted(cls)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class started successfully!", cls)
}

func CompleteClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	cls, err := services.CompleteClass(database.Database.Db, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class completed successfully!", cls)
}

func CancelClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	cls, err := services.CancelClass(database.Database.Db, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class cancelled successfully!", cls)
}

// notifyClassStarted emails every trainee whose enrollment just went
// INPROGRESS.
func notifyClassStarted(cls *classModels.Class) {
	var enrollments []classModels.Enrollment
	database.Database.Db.Where("class_id = ? AND status = ? AND is_deleted = ?",
		cls.ID, classModels.EnrollmentInprogress, false).Find(&enrollments)

	for _, enrollment := range enrollments {
		var trainee models.User
		if err := database.Database.Db.Where("id = ?", enrollment.TraineeID).First(&trainee).Error; err != nil {
			continue
		}
		utils.SendClassStartedEmail(trainee.Email, trainee.Name, cls.ClassCode)
	}
}
