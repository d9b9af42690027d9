package dashboardControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	"lssctc/services"

	"github.com/gofiber/fiber/v2"
)

func AdminSummary(c *fiber.Ctx) error {
	summary, err := services.AdminDashboardSummary(database.Database.Db)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard summary fetched successfully!", summary)
}

func PopularCourses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	courses, err := services.PopularCourses(database.Database.Db, limit)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular courses fetched successfully!", courses)
}

func ActiveTrainees(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	trainees, err := services.ActiveTrainees(database.Database.Db, limit)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active trainees fetched successfully!", trainees)
}

// InstructorSummary shows the caller's classes with enrollment counts and
// average progress.
func InstructorSummary(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	rows, err := services.InstructorDashboard(database.Database.Db, instructorID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor dashboard fetched successfully!", rows)
}
