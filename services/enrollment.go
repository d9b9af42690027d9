package services

import (
	"time"

	"lssctc/models"
	classModels "lssctc/models/class"

	"gorm.io/gorm"
)

// Enroll registers a trainee in an OPEN class as PENDING, subject to the
// capacity and duplicate checks.
func Enroll(db *gorm.DB, traineeID, classID uint) (*classModels.Enrollment, error) {
	var trainee models.User
	if err := db.Where("id = ? AND is_deleted = ?", traineeID, false).First(&trainee).Error; err != nil {
		return nil, notFoundf("user %d", traineeID)
	}

	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassOpen {
		return nil, invalidOpf("class %d is %s, enrollment is only open for OPEN classes", classID, cls.Status)
	}

	var duplicate int64
	db.Model(&classModels.Enrollment{}).
		Where("trainee_id = ? AND class_id = ? AND is_deleted = ? AND status NOT IN ?",
			traineeID, classID, false,
			[]string{classModels.EnrollmentCancelled, classModels.EnrollmentRejected}).
		Count(&duplicate)
	if duplicate > 0 {
		return nil, invalidOpf("trainee %d is already enrolled in class %d", traineeID, classID)
	}

	var live int64
	db.Model(&classModels.Enrollment{}).
		Where("class_id = ? AND is_deleted = ? AND status IN ?",
			classID, false, []string{classModels.EnrollmentPending, classModels.EnrollmentEnrolled}).
		Count(&live)
	if live >= int64(cls.Capacity) {
		return nil, invalidOpf("class %d is full", classID)
	}

	enrollment := classModels.Enrollment{
		TraineeID: traineeID,
		ClassID:   classID,
		Status:    classModels.EnrollmentPending,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ApproveEnrollment moves PENDING -> ENROLLED
func ApproveEnrollment(db *gorm.DB, enrollmentID uint) (*classModels.Enrollment, error) {
	enrollment, err := getEnrollment(db, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != classModels.EnrollmentPending {
		return nil, invalidOpf("enrollment %d is %s, only PENDING enrollments can be approved", enrollmentID, enrollment.Status)
	}

	now := time.Now().UTC()
	enrollment.Status = classModels.EnrollmentEnrolled
	enrollment.ApprovedAt = &now
	if err := db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// RejectEnrollment moves PENDING -> REJECTED
func RejectEnrollment(db *gorm.DB, enrollmentID uint) (*classModels.Enrollment, error) {
	enrollment, err := getEnrollment(db, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != classModels.EnrollmentPending {
		return nil, invalidOpf("enrollment %d is %s, only PENDING enrollments can be rejected", enrollmentID, enrollment.Status)
	}

	enrollment.Status = classModels.EnrollmentRejected
	if err := db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

// CancelEnrollment lets the trainee withdraw before the class starts
func CancelEnrollment(db *gorm.DB, traineeID, enrollmentID uint) (*classModels.Enrollment, error) {
	enrollment, err := getEnrollment(db, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.TraineeID != traineeID {
		return nil, accessDeniedf("enrollment %d does not belong to trainee %d", enrollmentID, traineeID)
	}
	if enrollment.Status != classModels.EnrollmentPending && enrollment.Status != classModels.EnrollmentEnrolled {
		return nil, invalidOpf("enrollment %d is %s and can no longer be cancelled", enrollmentID, enrollment.Status)
	}

	enrollment.Status = classModels.EnrollmentCancelled
	if err := db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func getEnrollment(db *gorm.DB, enrollmentID uint) (*classModels.Enrollment, error) {
	var enrollment classModels.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return nil, notFoundf("enrollment %d", enrollmentID)
	}
	return &enrollment, nil
}
