package supportValidator

import (
	"strings"

	"lssctc/middleware"

	"github.com/gofiber/fiber/v2"
)

// TicketRequest is the create payload for a support ticket
type TicketRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

func Ticket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TicketRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

// TicketReplyRequest is the admin reply payload
type TicketReplyRequest struct {
	Reply string `json:"reply"`
}

func TicketReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TicketReplyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Reply) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"reply": "Reply is required!"})
		}

		c.Locals("validatedTicketReply", reqData)
		return c.Next()
	}
}
