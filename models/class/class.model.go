package class

import (
	"time"

	"gorm.io/gorm"
)

// Class statuses. Valid transitions: DRAFT -> OPEN -> INPROGRESS -> COMPLETED,
// and DRAFT/OPEN -> CANCELLED (only with zero live enrollments).
const (
	ClassDraft      = "DRAFT"
	ClassOpen       = "OPEN"
	ClassInprogress = "INPROGRESS"
	ClassCompleted  = "COMPLETED"
	ClassCancelled  = "CANCELLED"
)

// Class is one scheduled run of a program course
type Class struct {
	gorm.Model
	ProgramCourseID uint      `json:"program_course_id" gorm:"index;not null"`
	ClassCode       string    `json:"class_code" gorm:"uniqueIndex;not null"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Capacity        int       `json:"capacity" gorm:"default:20"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status" gorm:"default:'DRAFT'"`
	IsDeleted       bool      `gorm:"default:false"`
}

// ClassInstructor assigns the instructor to a class. One live row per class.
type ClassInstructor struct {
	gorm.Model
	ClassID      uint `json:"class_id" gorm:"index;not null"`
	InstructorID uint `json:"instructor_id" gorm:"index;not null"`
	IsDeleted    bool `gorm:"default:false"`
}
