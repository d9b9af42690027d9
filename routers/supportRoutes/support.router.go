package supportRoutes

import (
	controllers "lssctc/controllers/support"
	"lssctc/middleware"
	"lssctc/models"
	validators "lssctc/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupSupportRoutes sets up the support ticket routes
func SetupSupportRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	supportGroup := app.Group("/support")
	supportGroup.Post("/ticket", middleware.JWTMiddleware, validators.Ticket(), controllers.CreateTicket)
	supportGroup.Get("/tickets", middleware.JWTMiddleware, controllers.GetMyTickets)

	adminGroup := app.Group("/admin/support")
	adminGroup.Get("/tickets", middleware.JWTMiddleware, admin, controllers.GetAllTickets)
	adminGroup.Post("/ticket/:id/reply", middleware.JWTMiddleware, admin, validators.TicketReply(), controllers.ReplyTicket)
	adminGroup.Post("/ticket/:id/close", middleware.JWTMiddleware, admin, controllers.CloseTicket)
}
