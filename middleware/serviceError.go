package middleware

import (
	"errors"

	"lssctc/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse translates a service-layer error into the standard
// JSON envelope. Unrecognized errors become a 500 without leaking internals.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidOperation):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, services.ErrValidation):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrAccessDenied):
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
