package services

import (
	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"

	"gorm.io/gorm"
)

// sectionLocked reports whether any class built on a course containing this
// section has left DRAFT. Structural edits to a locked section are rejected
// except for the attach/detach paths, which scaffold the running classes.
func sectionLocked(db *gorm.DB, sectionID uint) (bool, error) {
	var courseSections []courseModels.CourseSection
	if err := db.Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Find(&courseSections).Error; err != nil {
		return false, err
	}
	if len(courseSections) == 0 {
		return false, nil
	}

	courseIDs := make([]uint, len(courseSections))
	for i, cs := range courseSections {
		courseIDs[i] = cs.CourseID
	}

	var count int64
	err := db.Model(&classModels.Class{}).
		Joins("JOIN program_courses ON program_courses.id = classes.program_course_id").
		Where("program_courses.course_id IN ?", courseIDs).
		Where("classes.is_deleted = ? AND classes.status <> ?", false, classModels.ClassDraft).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// courseLocked reports whether any class built on this course has left
// DRAFT. A locked course cannot gain sections: running enrollments have no
// scaffold path for section records.
func courseLocked(db *gorm.DB, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&classModels.Class{}).
		Joins("JOIN program_courses ON program_courses.id = classes.program_course_id").
		Where("program_courses.course_id = ?", courseID).
		Where("classes.is_deleted = ? AND classes.status <> ?", false, classModels.ClassDraft).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AttachSectionToCourse places a section into a course at the requested
// order, appending at max(order)+1 when no order is given.
func AttachSectionToCourse(db *gorm.DB, courseID, sectionID uint, order int) (*courseModels.CourseSection, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, notFoundf("course %d", courseID)
	}
	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return nil, notFoundf("section %d", sectionID)
	}

	locked, err := courseLocked(db, courseID)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, invalidOpf("course %d has classes past DRAFT, its section list is locked", courseID)
	}

	var duplicate int64
	db.Model(&courseModels.CourseSection{}).
		Where("course_id = ? AND section_id = ? AND is_deleted = ?", courseID, sectionID, false).
		Count(&duplicate)
	if duplicate > 0 {
		return nil, invalidOpf("section %d is already in course %d", sectionID, courseID)
	}

	if order <= 0 {
		var maxOrder int
		db.Model(&courseModels.CourseSection{}).
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Select("COALESCE(MAX(section_order), 0)").Scan(&maxOrder)
		order = maxOrder + 1
	}

	link := courseModels.CourseSection{
		CourseID:     courseID,
		SectionID:    sectionID,
		SectionOrder: order,
	}
	if err := db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// AddActivityToSection places an activity in a section. With order 0 it
// appends at max(order)+1; an explicit order shifts the conflicting rows
// down by one, highest first, to dodge transient duplicate-key violations.
// Running classes get their activity records backfilled.
func AddActivityToSection(db *gorm.DB, sectionID, activityID uint, order int) (*courseModels.SectionActivity, error) {
	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return nil, notFoundf("section %d", sectionID)
	}
	var activity courseModels.Activity
	if err := db.Where("id = ? AND is_deleted = ?", activityID, false).First(&activity).Error; err != nil {
		return nil, notFoundf("activity %d", activityID)
	}

	var count int64
	db.Model(&courseModels.SectionActivity{}).
		Where("section_id = ? AND activity_id = ? AND is_deleted = ?", sectionID, activityID, false).
		Count(&count)
	if count > 0 {
		return nil, invalidOpf("activity %d is already in section %d", activityID, sectionID)
	}

	var placement courseModels.SectionActivity
	err := db.Transaction(func(tx *gorm.DB) error {
		if order <= 0 {
			var maxOrder int
			tx.Model(&courseModels.SectionActivity{}).
				Where("section_id = ? AND is_deleted = ?", sectionID, false).
				Select("COALESCE(MAX(activity_order), 0)").Scan(&maxOrder)
			order = maxOrder + 1
		} else {
			var conflicts []courseModels.SectionActivity
			if err := tx.Where("section_id = ? AND activity_order >= ? AND is_deleted = ?", sectionID, order, false).
				Order("activity_order desc").Find(&conflicts).Error; err != nil {
				return err
			}
			for i := range conflicts {
				conflicts[i].ActivityOrder++
				if err := tx.Save(&conflicts[i]).Error; err != nil {
					return err
				}
			}
		}

		placement = courseModels.SectionActivity{
			SectionID:     sectionID,
			ActivityID:    activityID,
			ActivityOrder: order,
		}
		if err := tx.Create(&placement).Error; err != nil {
			return err
		}

		return AttachActivityRecords(tx, sectionID, activityID)
	})
	if err != nil {
		return nil, err
	}
	return &placement, nil
}

// RemoveActivityFromSection deletes a placement and its derived records
// (including dependent practice and quiz attempts), then recalculates the
// affected enrollments.
func RemoveActivityFromSection(db *gorm.DB, sectionID, activityID uint) error {
	var placement courseModels.SectionActivity
	if err := db.Where("section_id = ? AND activity_id = ? AND is_deleted = ?", sectionID, activityID, false).
		First(&placement).Error; err != nil {
		return notFoundf("activity %d in section %d", activityID, sectionID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&placement).Error; err != nil {
			return err
		}
		return DetachActivityRecords(tx, sectionID, activityID)
	})
}

// UpdateSectionActivityOrder moves an activity to a new slot. When the slot
// is held by another activity the two simply swap orders.
func UpdateSectionActivityOrder(db *gorm.DB, sectionID, activityID uint, newOrder int) error {
	if newOrder < 1 {
		return validationf("activity order must be at least 1")
	}

	locked, err := sectionLocked(db, sectionID)
	if err != nil {
		return err
	}
	if locked {
		return invalidOpf("section %d is locked, classes using it have already opened", sectionID)
	}

	var mover courseModels.SectionActivity
	if err := db.Where("section_id = ? AND activity_id = ? AND is_deleted = ?", sectionID, activityID, false).
		First(&mover).Error; err != nil {
		return notFoundf("activity %d in section %d", activityID, sectionID)
	}
	if mover.ActivityOrder == newOrder {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var occupant courseModels.SectionActivity
		err := tx.Where("section_id = ? AND activity_order = ? AND is_deleted = ? AND id <> ?",
			sectionID, newOrder, false, mover.ID).First(&occupant).Error
		if err == nil {
			occupant.ActivityOrder = mover.ActivityOrder
			if err := tx.Save(&occupant).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		mover.ActivityOrder = newOrder
		return tx.Save(&mover).Error
	})
}

// GetSectionActivities lists a section's activities in order
func GetSectionActivities(db *gorm.DB, sectionID uint) ([]courseModels.SectionActivity, error) {
	var section courseModels.Section
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return nil, notFoundf("section %d", sectionID)
	}

	var placements []courseModels.SectionActivity
	if err := db.Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Order("activity_order asc").Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}
