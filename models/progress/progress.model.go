package progress

import (
	"time"

	"gorm.io/gorm"
)

// LearningProgress statuses
const (
	ProgressNotStarted = "NOT_STARTED"
	ProgressInProgress = "IN_PROGRESS"
	ProgressCompleted  = "COMPLETED"
	ProgressFailed     = "FAILED"
)

// ActivityRecord statuses
const (
	ActivityRecordPending   = "PENDING"
	ActivityRecordCompleted = "COMPLETED"
)

// LearningProgress is the aggregate completion record for one enrollment.
// ProgressPercentage is derived from the section records and never set
// directly by handlers.
type LearningProgress struct {
	gorm.Model
	EnrollmentID       uint    `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	Status             string  `json:"status" gorm:"default:'NOT_STARTED'"`
	ProgressPercentage float64 `json:"progress_percentage" gorm:"default:0"`
	TotalScore         float64 `json:"total_score" gorm:"default:0"`
	IsDeleted          bool    `gorm:"default:false"`
}

// SectionRecord is the per-enrollment snapshot of one course section.
// Progress and IsCompleted are derived from the child activity records.
type SectionRecord struct {
	gorm.Model
	LearningProgressID uint    `json:"learning_progress_id" gorm:"index;not null"`
	SectionID          uint    `json:"section_id" gorm:"index;not null"`
	SectionOrder       int     `json:"section_order" gorm:"default:1"`
	Progress           float64 `json:"progress" gorm:"default:0"`
	IsCompleted        bool    `json:"is_completed" gorm:"default:false"`
}

// ActivityRecord is the per-enrollment snapshot of one placed activity.
// Rows are created when the class starts (or when an activity is attached
// to a running section) and hard-deleted when the activity is detached.
type ActivityRecord struct {
	gorm.Model
	SectionRecordID uint       `json:"section_record_id" gorm:"index;not null"`
	ActivityID      uint       `json:"activity_id" gorm:"index;not null"`
	Status          string     `json:"status" gorm:"default:'PENDING'"`
	IsCompleted     bool       `json:"is_completed" gorm:"default:false"`
	Score           float64    `json:"score" gorm:"default:0"`
	CompletedDate   *time.Time `json:"completed_date"`
}
