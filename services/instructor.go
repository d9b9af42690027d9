package services

import (
	"lssctc/models"
	classModels "lssctc/models/class"

	"gorm.io/gorm"
)

// AssignInstructor assigns the single instructor of a class. The user must
// hold the INSTRUCTOR role and must not already teach a class whose
// [start, end) interval overlaps this one.
func AssignInstructor(db *gorm.DB, classID, instructorID uint) (*classModels.ClassInstructor, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}

	var instructor models.User
	if err := db.Where("id = ? AND is_deleted = ?", instructorID, false).First(&instructor).Error; err != nil {
		return nil, notFoundf("user %d", instructorID)
	}
	if instructor.Role != models.RoleInstructor {
		return nil, invalidOpf("user %d is not an instructor", instructorID)
	}

	var existing int64
	db.Model(&classModels.ClassInstructor{}).
		Where("class_id = ? AND is_deleted = ?", classID, false).
		Count(&existing)
	if existing > 0 {
		return nil, invalidOpf("class %d already has an instructor", classID)
	}

	conflict, err := hasScheduleConflict(db, instructorID, cls)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, invalidOpf("instructor %d already teaches a class in this timeslot", instructorID)
	}

	assignment := classModels.ClassInstructor{
		ClassID:      classID,
		InstructorID: instructorID,
	}
	if err := db.Create(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// RemoveInstructor unassigns the instructor, permitted only while the class
// is still DRAFT.
func RemoveInstructor(db *gorm.DB, classID uint) error {
	cls, err := getClass(db, classID)
	if err != nil {
		return err
	}
	if cls.Status != classModels.ClassDraft {
		return invalidOpf("class %d is %s, the instructor can only be removed from DRAFT classes", classID, cls.Status)
	}

	var assignment classModels.ClassInstructor
	if err := db.Where("class_id = ? AND is_deleted = ?", classID, false).First(&assignment).Error; err != nil {
		return notFoundf("instructor assignment for class %d", classID)
	}

	assignment.IsDeleted = true
	return db.Save(&assignment).Error
}

// GetClassInstructor returns the instructor user assigned to a class
func GetClassInstructor(db *gorm.DB, classID uint) (*models.User, error) {
	if _, err := getClass(db, classID); err != nil {
		return nil, err
	}

	var assignment classModels.ClassInstructor
	if err := db.Where("class_id = ? AND is_deleted = ?", classID, false).First(&assignment).Error; err != nil {
		return nil, notFoundf("instructor assignment for class %d", classID)
	}

	var instructor models.User
	if err := db.Where("id = ? AND is_deleted = ?", assignment.InstructorID, false).First(&instructor).Error; err != nil {
		return nil, notFoundf("user %d", assignment.InstructorID)
	}
	return &instructor, nil
}

// hasScheduleConflict applies the half-open overlap test a.start < b.end &&
// b.start < a.end against the instructor's other non-cancelled classes.
func hasScheduleConflict(db *gorm.DB, instructorID uint, cls *classModels.Class) (bool, error) {
	var assignments []classModels.ClassInstructor
	if err := db.Where("instructor_id = ? AND is_deleted = ? AND class_id <> ?",
		instructorID, false, cls.ID).Find(&assignments).Error; err != nil {
		return false, err
	}

	for _, assignment := range assignments {
		var other classModels.Class
		if err := db.Where("id = ? AND is_deleted = ? AND status <> ?",
			assignment.ClassID, false, classModels.ClassCancelled).First(&other).Error; err != nil {
			continue
		}
		if cls.StartDate.Before(other.EndDate) && other.StartDate.Before(cls.EndDate) {
			return true, nil
		}
	}
	return false, nil
}
