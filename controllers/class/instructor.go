package classControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	"lssctc/services"
	classValidator "lssctc/validators/class"

	"github.com/gofiber/fiber/v2"
)

func AssignInstructor(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	reqData, ok := c.Locals("validatedAssignInstructor").(*classValidator.AssignInstructorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment, err := services.AssignInstructor(database.Database.Db, uint(classID), reqData.InstructorID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Instructor assigned successfully!", assignment)
}

func RemoveInstructor(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	if err := services.RemoveInstructor(database.Database.Db, uint(classID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor removed successfully!", nil)
}

func GetInstructor(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	instructor, err := services.GetClassInstructor(database.Database.Db, uint(classID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor fetched successfully!", instructor)
}
