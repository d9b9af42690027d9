package courseControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	courseModels "lssctc/models/course"
	"lssctc/services"
	courseValidator "lssctc/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*courseValidator.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section := courseModels.Section{
		Name:            reqData.Name,
		Description:     reqData.Description,
		DurationMinutes: reqData.DurationMinutes,
	}
	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

func GetSections(c *fiber.Ctx) error {
	var sections []courseModels.Section
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": sections,
	})
}

func GetSectionActivities(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}

	placements, err := services.GetSectionActivities(database.Database.Db, uint(sectionID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section activities fetched successfully!", fiber.Map{
		"activities": placements,
	})
}

func CreateActivity(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedActivity").(*courseValidator.ActivityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	activity := courseModels.Activity{
		Name:        reqData.Name,
		Description: reqData.Description,
		ContentURL:  reqData.ContentURL,
	}
	if reqData.ActivityType != "" {
		activity.ActivityType = reqData.ActivityType
	}

	if err := database.Database.Db.Create(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Activity created successfully!", activity)
}

func GetActivities(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&courseModels.Activity{}).Where("is_deleted = ?", false)
	if activityType := c.Query("type"); activityType != "" {
		db = db.Where("activity_type = ?", activityType)
	}

	var activities []courseModels.Activity
	if err := db.Order("created_at desc").Find(&activities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activities fetched successfully!", fiber.Map{
		"activities": activities,
	})
}

func AttachActivity(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}

	reqData, ok := c.Locals("validatedAttachActivity").(*courseValidator.AttachActivityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	placement, err := services.AddActivityToSection(database.Database.Db, uint(sectionID), reqData.ActivityID, reqData.Order)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Activity added to section successfully!", placement)
}

func DetachActivity(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}
	activityID, err := c.ParamsInt("activity_id")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	if err := services.RemoveActivityFromSection(database.Database.Db, uint(sectionID), uint(activityID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity removed from section successfully!", nil)
}

func ReorderActivity(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}
	activityID, err := c.ParamsInt("activity_id")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	reqData, ok := c.Locals("validatedActivityOrder").(*courseValidator.ActivityOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.UpdateSectionActivityOrder(database.Database.Db, uint(sectionID), uint(activityID), reqData.NewOrder); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity order updated successfully!", nil)
}
