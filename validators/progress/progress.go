package progressValidator

import (
	"time"

	"lssctc/middleware"

	"github.com/gofiber/fiber/v2"
)

// SessionUpdateRequest is the instructor's change to an activity session
type SessionUpdateRequest struct {
	IsActive  bool       `json:"is_active"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

func SessionUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SessionUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.StartTime != nil && reqData.EndTime != nil && !reqData.StartTime.Before(*reqData.EndTime) {
			return middleware.ValidationErrorResponse(c, map[string]string{"start_time": "Start time must be before end time!"})
		}

		c.Locals("validatedSessionUpdate", reqData)
		return c.Next()
	}
}
