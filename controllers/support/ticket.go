package supportControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	supportModels "lssctc/models/support"
	supportValidator "lssctc/validators/support"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*supportValidator.TicketRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := supportModels.Ticket{
		UserID:   userID,
		Title:    reqData.Title,
		Message:  reqData.Message,
		Priority: reqData.Priority,
		Category: reqData.Category,
		Status:   supportModels.TicketOpen,
	}
	if ticket.Priority == "" {
		ticket.Priority = "MEDIUM"
	}
	if ticket.Category == "" {
		ticket.Category = "GENERAL"
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ticket created successfully!", ticket)
}

func GetMyTickets(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []supportModels.Ticket
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", tickets)
}

func GetAllTickets(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var tickets []supportModels.Ticket
	if err := db.Order("created_at desc").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", tickets)
}

func ReplyTicket(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
	}

	reqData, ok := c.Locals("validatedTicketReply").(*supportValidator.TicketReplyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket supportModels.Ticket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).
		First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}
	if ticket.Status == supportModels.TicketClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is already closed!", nil)
	}

	ticket.Reply = reqData.Reply
	ticket.RepliedBy = &adminID
	ticket.Status = supportModels.TicketAnswered
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reply to ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply sent successfully!", ticket)
}

func CloseTicket(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil || ticketID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket ID!", nil)
	}

	var ticket supportModels.Ticket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).
		First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	ticket.Status = supportModels.TicketClosed
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed successfully!", ticket)
}
