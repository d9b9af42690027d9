package services

import (
	courseModels "lssctc/models/course"
	programModels "lssctc/models/program"

	"gorm.io/gorm"
)

// ProgramSummary carries a program with its derived totals. TotalCourses
// and DurationHours are computed from the linked courses at read time, not
// stored on the program row.
type ProgramSummary struct {
	programModels.TrainingProgram
	TotalCourses  int64 `json:"total_courses"`
	DurationHours int64 `json:"duration_hours"`
}

// GetProgramSummary loads a program with its computed totals
func GetProgramSummary(db *gorm.DB, programID uint) (*ProgramSummary, error) {
	var prog programModels.TrainingProgram
	if err := db.Where("id = ? AND is_deleted = ?", programID, false).First(&prog).Error; err != nil {
		return nil, notFoundf("program %d", programID)
	}

	summary := ProgramSummary{TrainingProgram: prog}
	db.Model(&programModels.ProgramCourse{}).
		Where("program_id = ? AND is_deleted = ?", programID, false).
		Count(&summary.TotalCourses)
	db.Model(&courseModels.Course{}).
		Joins("JOIN program_courses ON program_courses.course_id = courses.id").
		Where("program_courses.program_id = ? AND program_courses.is_deleted = ? AND courses.is_deleted = ?",
			programID, false, false).
		Select("COALESCE(SUM(courses.duration_hours), 0)").Scan(&summary.DurationHours)
	return &summary, nil
}

// AddCourseToProgram appends a course at the end of the program's ordering
func AddCourseToProgram(db *gorm.DB, programID, courseID uint) (*programModels.ProgramCourse, error) {
	var prog programModels.TrainingProgram
	if err := db.Where("id = ? AND is_deleted = ?", programID, false).First(&prog).Error; err != nil {
		return nil, notFoundf("program %d", programID)
	}
	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return nil, notFoundf("course %d", courseID)
	}

	var duplicate int64
	db.Model(&programModels.ProgramCourse{}).
		Where("program_id = ? AND course_id = ? AND is_deleted = ?", programID, courseID, false).
		Count(&duplicate)
	if duplicate > 0 {
		return nil, invalidOpf("course %d is already in program %d", courseID, programID)
	}

	var maxOrder int
	db.Model(&programModels.ProgramCourse{}).
		Where("program_id = ? AND is_deleted = ?", programID, false).
		Select("COALESCE(MAX(course_order), 0)").Scan(&maxOrder)

	link := programModels.ProgramCourse{
		ProgramID:   programID,
		CourseID:    courseID,
		CourseOrder: maxOrder + 1,
	}
	if err := db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// RemoveCourseFromProgram drops the link and closes the order gap so the
// remaining CourseOrder values stay contiguous 1..N. Rejected while any
// class exists on the link.
func RemoveCourseFromProgram(db *gorm.DB, programID, courseID uint) error {
	var link programModels.ProgramCourse
	if err := db.Where("program_id = ? AND course_id = ? AND is_deleted = ?", programID, courseID, false).
		First(&link).Error; err != nil {
		return notFoundf("course %d in program %d", courseID, programID)
	}

	var classCount int64
	db.Table("classes").
		Where("program_course_id = ? AND is_deleted = ?", link.ID, false).
		Count(&classCount)
	if classCount > 0 {
		return invalidOpf("course %d has classes in program %d and cannot be removed", courseID, programID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		link.IsDeleted = true
		if err := tx.Save(&link).Error; err != nil {
			return err
		}
		return tx.Model(&programModels.ProgramCourse{}).
			Where("program_id = ? AND is_deleted = ? AND course_order > ?", programID, false, link.CourseOrder).
			UpdateColumn("course_order", gorm.Expr("course_order - 1")).Error
	})
}

// ReorderProgramCourse moves a course to a new position, shifting the
// displaced range so the ordering stays contiguous.
func ReorderProgramCourse(db *gorm.DB, programID, courseID uint, newOrder int) error {
	var link programModels.ProgramCourse
	if err := db.Where("program_id = ? AND course_id = ? AND is_deleted = ?", programID, courseID, false).
		First(&link).Error; err != nil {
		return notFoundf("course %d in program %d", courseID, programID)
	}

	var total int64
	db.Model(&programModels.ProgramCourse{}).
		Where("program_id = ? AND is_deleted = ?", programID, false).
		Count(&total)
	if newOrder < 1 || int64(newOrder) > total {
		return validationf("course order must be between 1 and %d", total)
	}
	if newOrder == link.CourseOrder {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if newOrder < link.CourseOrder {
			// moving up: shift the range [newOrder, old) down by one
			if err := tx.Model(&programModels.ProgramCourse{}).
				Where("program_id = ? AND is_deleted = ? AND course_order >= ? AND course_order < ?",
					programID, false, newOrder, link.CourseOrder).
				UpdateColumn("course_order", gorm.Expr("course_order + 1")).Error; err != nil {
				return err
			}
		} else {
			// moving down: shift the range (old, newOrder] up by one
			if err := tx.Model(&programModels.ProgramCourse{}).
				Where("program_id = ? AND is_deleted = ? AND course_order > ? AND course_order <= ?",
					programID, false, link.CourseOrder, newOrder).
				UpdateColumn("course_order", gorm.Expr("course_order - 1")).Error; err != nil {
				return err
			}
		}
		return tx.Model(&programModels.ProgramCourse{}).
			Where("id = ?", link.ID).
			UpdateColumn("course_order", newOrder).Error
	})
}

// GetProgramCourses lists a program's courses in order
func GetProgramCourses(db *gorm.DB, programID uint) ([]programModels.ProgramCourse, error) {
	var prog programModels.TrainingProgram
	if err := db.Where("id = ? AND is_deleted = ?", programID, false).First(&prog).Error; err != nil {
		return nil, notFoundf("program %d", programID)
	}

	var links []programModels.ProgramCourse
	if err := db.Where("program_id = ? AND is_deleted = ?", programID, false).
		Order("course_order asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
