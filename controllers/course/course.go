package courseControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	courseModels "lssctc/models/course"
	"lssctc/services"
	courseValidator "lssctc/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Name:          reqData.Name,
		Description:   reqData.Description,
		Category:      reqData.Category,
		Price:         reqData.Price,
		DurationHours: reqData.DurationHours,
		ThumbnailURL:  reqData.ThumbnailURL,
		IsActive:      true,
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Name = reqData.Name
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.DurationHours > 0 {
		course.DurationHours = reqData.DurationHours
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	course.IsActive = false
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func GetCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Sections in order with their activity placements
	var courseSections []courseModels.CourseSection
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("section_order asc").Find(&courseSections)

	type sectionWithActivities struct {
		courseModels.Section
		SectionOrder int                            `json:"section_order"`
		Activities   []courseModels.SectionActivity `json:"activities"`
	}

	sections := make([]sectionWithActivities, 0, len(courseSections))
	for _, cs := range courseSections {
		var section courseModels.Section
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", cs.SectionID, false).First(&section).Error; err != nil {
			continue
		}

		var placements []courseModels.SectionActivity
		database.Database.Db.Where("section_id = ? AND is_deleted = ?", cs.SectionID, false).
			Order("activity_order asc").Find(&placements)

		sections = append(sections, sectionWithActivities{
			Section:      section,
			SectionOrder: cs.SectionOrder,
			Activities:   placements,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"sections": sections,
	})
}

// AttachSection places a section into a course at the requested order, or
// at the end when no order is given. Rejected once any class on the course
// has left DRAFT.
func AttachSection(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedAttachSection").(*courseValidator.AttachSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	link, err := services.AttachSectionToCourse(database.Database.Db, uint(courseID), reqData.SectionID, reqData.Order)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section added to course successfully!", link)
}
