package classValidator

import (
	"strings"
	"time"

	"lssctc/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateClassRequest is the validated payload for a new class
type CreateClassRequest struct {
	ProgramCourseID uint      `json:"program_course_id" validate:"required"`
	ClassCode       string    `json:"class_code" validate:"required,min=3"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Capacity        int       `json:"capacity" validate:"required,min=1"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.ClassCode = strings.TrimSpace(reqData.ClassCode)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateClass", reqData)
		return c.Next()
	}
}

// AssignInstructorRequest assigns an instructor to a class
type AssignInstructorRequest struct {
	InstructorID uint `json:"instructor_id"`
}

func AssignInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignInstructorRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.InstructorID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"instructor_id": "Instructor ID is required!"})
		}

		c.Locals("validatedAssignInstructor", reqData)
		return c.Next()
	}
}

// ListRequest is the shared pagination query payload
type ListRequest struct {
	Page  *int `query:"page"`
	Limit *int `query:"limit"`
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
