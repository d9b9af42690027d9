package services

import (
	"strings"
	"time"

	classModels "lssctc/models/class"
	programModels "lssctc/models/program"

	"gorm.io/gorm"
)

// CreateClassInput carries the validated fields for a new class
type CreateClassInput struct {
	ProgramCourseID uint
	ClassCode       string
	Name            string
	Description     string
	Capacity        int
	StartDate       time.Time
	EndDate         time.Time
}

// CreateClass creates a class in DRAFT. The start date must be in the
// future, the end date at least 3 days after the start, and the class code
// unique case-insensitively. Nothing is persisted when any check fails.
func CreateClass(db *gorm.DB, input CreateClassInput) (*classModels.Class, error) {
	var programCourse programModels.ProgramCourse
	if err := db.Where("id = ? AND is_deleted = ?", input.ProgramCourseID, false).First(&programCourse).Error; err != nil {
		return nil, notFoundf("program course %d", input.ProgramCourseID)
	}

	if !input.StartDate.After(time.Now()) {
		return nil, validationf("start date must be in the future")
	}
	if input.EndDate.Before(input.StartDate.AddDate(0, 0, 3)) {
		return nil, validationf("end date must be at least 3 days after start date")
	}
	if input.Capacity < 1 {
		return nil, validationf("capacity must be at least 1")
	}

	code := strings.TrimSpace(input.ClassCode)
	if code == "" {
		return nil, validationf("class code is required")
	}

	var count int64
	db.Model(&classModels.Class{}).
		Where("LOWER(class_code) = ? AND is_deleted = ?", strings.ToLower(code), false).
		Count(&count)
	if count > 0 {
		return nil, invalidOpf("class code %q already exists", code)
	}

	cls := classModels.Class{
		ProgramCourseID: input.ProgramCourseID,
		ClassCode:       code,
		Name:            input.Name,
		Description:     input.Description,
		Capacity:        input.Capacity,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          classModels.ClassDraft,
	}
	if err := db.Create(&cls).Error; err != nil {
		return nil, err
	}
	return &cls, nil
}

// OpenClass transitions DRAFT -> OPEN
func OpenClass(db *gorm.DB, classID uint) (*classModels.Class, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassDraft {
		return nil, invalidOpf("class %d is %s, only DRAFT classes can be opened", classID, cls.Status)
	}

	cls.Status = classModels.ClassOpen
	if err := db.Save(cls).Error; err != nil {
		return nil, err
	}
	return cls, nil
}

// StartClass transitions DRAFT/OPEN -> INPROGRESS. It requires an assigned
// instructor and at least one ENROLLED trainee, then in one transaction
// moves ENROLLED enrollments to INPROGRESS, rejects the remaining PENDING
// ones, scaffolds the progress records and creates the activity sessions.
func StartClass(db *gorm.DB, classID uint) (*classModels.Class, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassDraft && cls.Status != classModels.ClassOpen {
		return nil, invalidOpf("class %d is %s, only DRAFT or OPEN classes can be started", classID, cls.Status)
	}

	var instructorCount int64
	db.Model(&classModels.ClassInstructor{}).
		Where("class_id = ? AND is_deleted = ?", classID, false).
		Count(&instructorCount)
	if instructorCount == 0 {
		return nil, invalidOpf("class %d has no instructor assigned", classID)
	}

	var enrolled []classModels.Enrollment
	if err := db.Where("class_id = ? AND status = ? AND is_deleted = ?",
		classID, classModels.EnrollmentEnrolled, false).Find(&enrolled).Error; err != nil {
		return nil, err
	}
	if len(enrolled) == 0 {
		return nil, invalidOpf("class %d has no enrolled trainees", classID)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		cls.Status = classModels.ClassInprogress
		if err := tx.Save(cls).Error; err != nil {
			return err
		}

		if err := tx.Model(&classModels.Enrollment{}).
			Where("class_id = ? AND status = ? AND is_deleted = ?", classID, classModels.EnrollmentEnrolled, false).
			Update("status", classModels.EnrollmentInprogress).Error; err != nil {
			return err
		}
		if err := tx.Model(&classModels.Enrollment{}).
			Where("class_id = ? AND status = ? AND is_deleted = ?", classID, classModels.EnrollmentPending, false).
			Update("status", classModels.EnrollmentRejected).Error; err != nil {
			return err
		}

		if err := ScaffoldClassProgress(tx, cls); err != nil {
			return err
		}
		return CreateClassSessions(tx, cls)
	})
	if err != nil {
		return nil, err
	}
	return cls, nil
}

// CompleteClass transitions INPROGRESS -> COMPLETED
func CompleteClass(db *gorm.DB, classID uint) (*classModels.Class, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassInprogress {
		return nil, invalidOpf("class %d is %s, only INPROGRESS classes can be completed", classID, cls.Status)
	}

	cls.Status = classModels.ClassCompleted
	if err := db.Save(cls).Error; err != nil {
		return nil, err
	}
	return cls, nil
}

// CancelClass transitions DRAFT/OPEN -> CANCELLED, only while no live
// enrollments exist.
func CancelClass(db *gorm.DB, classID uint) (*classModels.Class, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassDraft && cls.Status != classModels.ClassOpen {
		return nil, invalidOpf("class %d is %s, only DRAFT or OPEN classes can be cancelled", classID, cls.Status)
	}

	var enrollmentCount int64
	db.Model(&classModels.Enrollment{}).
		Where("class_id = ? AND is_deleted = ? AND status NOT IN ?",
			classID, false, []string{classModels.EnrollmentCancelled, classModels.EnrollmentRejected}).
		Count(&enrollmentCount)
	if enrollmentCount > 0 {
		return nil, invalidOpf("class %d has %d enrollments and cannot be cancelled", classID, enrollmentCount)
	}

	cls.Status = classModels.ClassCancelled
	if err := db.Save(cls).Error; err != nil {
		return nil, err
	}
	return cls, nil
}

func getClass(db *gorm.DB, classID uint) (*classModels.Class, error) {
	var cls classModels.Class
	if err := db.Where("id = ? AND is_deleted = ?", classID, false).First(&cls).Error; err != nil {
		return nil, notFoundf("class %d", classID)
	}
	return &cls, nil
}
