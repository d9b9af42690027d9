package courseValidator

import (
	"strings"

	"lssctc/middleware"
	courseModels "lssctc/models/course"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the create/update payload for a course
type CourseRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Level         string  `json:"level"`
	Price         float64 `json:"price"`
	DurationHours int     `json:"duration_hours"`
	ThumbnailURL  string  `json:"thumbnail_url"`
}

func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Level != "" && reqData.Level != "BASIC" && reqData.Level != "INTERMEDIATE" && reqData.Level != "ADVANCED" {
			errors["level"] = "Level must be BASIC, INTERMEDIATE or ADVANCED!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// SectionRequest is the create/update payload for a section template
type SectionRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

func Section() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// ActivityRequest is the create/update payload for an activity template
type ActivityRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ActivityType string `json:"activity_type"`
	ContentURL   string `json:"content_url"`
}

func Activity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ActivityRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		switch reqData.ActivityType {
		case "", courseModels.ActivityMaterial, courseModels.ActivityPractice, courseModels.ActivityQuiz:
		default:
			errors["activity_type"] = "Activity type must be MATERIAL, PRACTICE or QUIZ!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedActivity", reqData)
		return c.Next()
	}
}

// AttachActivityRequest places an activity into a section
type AttachActivityRequest struct {
	ActivityID uint `json:"activity_id"`
	Order      int  `json:"order"`
}

func AttachActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AttachActivityRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ActivityID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"activity_id": "Activity ID is required!"})
		}

		c.Locals("validatedAttachActivity", reqData)
		return c.Next()
	}
}

// ActivityOrderRequest moves an activity to a new slot in its section
type ActivityOrderRequest struct {
	NewOrder int `json:"new_order"`
}

func ActivityOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ActivityOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.NewOrder < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"new_order": "New order must be greater than 0!"})
		}

		c.Locals("validatedActivityOrder", reqData)
		return c.Next()
	}
}

// AttachSectionRequest places a section into a course
type AttachSectionRequest struct {
	SectionID uint `json:"section_id"`
	Order     int  `json:"order"`
}

func AttachSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AttachSectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.SectionID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"section_id": "Section ID is required!"})
		}

		c.Locals("validatedAttachSection", reqData)
		return c.Next()
	}
}
