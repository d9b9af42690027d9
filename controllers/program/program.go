package programControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	programModels "lssctc/models/program"
	"lssctc/services"
	programValidator "lssctc/validators/program"

	"github.com/gofiber/fiber/v2"
)

func CreateProgram(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgram").(*programValidator.ProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	prog := programModels.TrainingProgram{
		Name:        reqData.Name,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
		IsActive:    true,
	}
	if err := database.Database.Db.Create(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Program created successfully!", prog)
}

func UpdateProgram(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil || programID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
	}

	var prog programModels.TrainingProgram
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", programID, false).First(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgram").(*programValidator.ProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	prog.Name = reqData.Name
	if reqData.Description != "" {
		prog.Description = reqData.Description
	}
	if reqData.ImageURL != "" {
		prog.ImageURL = reqData.ImageURL
	}
	if err := database.Database.Db.Save(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program updated successfully!", prog)
}

func DeleteProgram(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil || programID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
	}

	var prog programModels.TrainingProgram
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", programID, false).First(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	prog.IsDeleted = true
	prog.IsActive = false
	if err := database.Database.Db.Save(&prog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program deleted successfully!", nil)
}

func GetPrograms(c *fiber.Ctx) error {
	var programs []programModels.TrainingProgram
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch programs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Programs fetched successfully!", fiber.Map{
		"programs": programs,
	})
}

func GetProgramDetails(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil || programID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
	}

	summary, err := services.GetProgramSummary(database.Database.Db, uint(programID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	courses, err := services.GetProgramCourses(database.Database.Db, uint(programID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program fetched successfully!", fiber.Map{
		"program": summary,
		"courses": courses,
	})
}

func AddCourse(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil || programID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
	}

	reqData, ok := c.Locals("validatedProgramCourse").(*programValidator.ProgramCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	link, err := services.AddCourseToProgram(database.Database.Db, uint(programID), reqData.CourseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added to program successfully!", link)
}

func RemoveCourse(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil || programID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
	}
	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	if err := services.RemoveCourseFromProgram(database.Database.Db, uint(programID), uint(courseID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from program successfully!", nil)
}

func ReorderCourse(c *fiber.Ctx) error {
	programID, err := c.ParamsInt("id")
	if err != nil || programID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid program ID!", nil)
	}

	reqData, ok := c.Locals("validatedReorderCourse").(*programValidator.ReorderCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.ReorderProgramCourse(database.Database.Db, uint(programID), reqData.CourseID, reqData.NewOrder); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course order updated successfully!", nil)
}
