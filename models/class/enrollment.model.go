package class

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. PENDING waits for admin approval; when the class
// starts, ENROLLED rows move to INPROGRESS and PENDING rows to REJECTED.
const (
	EnrollmentPending    = "PENDING"
	EnrollmentEnrolled   = "ENROLLED"
	EnrollmentInprogress = "INPROGRESS"
	EnrollmentCompleted  = "COMPLETED"
	EnrollmentRejected   = "REJECTED"
	EnrollmentCancelled  = "CANCELLED"
)

// Enrollment is one trainee's registration in one class
type Enrollment struct {
	gorm.Model
	TraineeID  uint       `json:"trainee_id" gorm:"index;not null"`
	ClassID    uint       `json:"class_id" gorm:"index;not null"`
	Status     string     `json:"status" gorm:"default:'PENDING'"`
	ApprovedAt *time.Time `json:"approved_at"`
	IsDeleted  bool       `gorm:"default:false"`
}
