package programValidator

import (
	"strings"

	"lssctc/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProgramRequest is the create/update payload for a training program
type ProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func Program() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgramRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgram", reqData)
		return c.Next()
	}
}

// ProgramCourseRequest links a course into a program
type ProgramCourseRequest struct {
	CourseID uint `json:"course_id"`
}

func ProgramCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgramCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"course_id": "Course ID is required!"})
		}

		c.Locals("validatedProgramCourse", reqData)
		return c.Next()
	}
}

// ReorderCourseRequest moves a course within a program's ordering
type ReorderCourseRequest struct {
	CourseID uint `json:"course_id"`
	NewOrder int  `json:"new_order"`
}

func ReorderCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.NewOrder < 1 {
			errors["new_order"] = "New order must be greater than 0!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorderCourse", reqData)
		return c.Next()
	}
}
