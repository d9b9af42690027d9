package practice

import "gorm.io/gorm"

// Practice is the step checklist behind a PRACTICE activity
type Practice struct {
	gorm.Model
	ActivityID  uint   `json:"activity_id" gorm:"index;not null"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxAttempts int    `json:"max_attempts" gorm:"default:0"` // 0 = unlimited
	IsDeleted   bool   `gorm:"default:false"`
}

// PracticeStep is one ordered step the trainee must perform
type PracticeStep struct {
	gorm.Model
	PracticeID     uint   `json:"practice_id" gorm:"index;not null"`
	StepOrder      int    `json:"step_order" gorm:"default:1"`
	Instruction    string `json:"instruction"`
	ExpectedResult string `json:"expected_result"`
	// no column default: gorm drops zero-valued fields that carry one
	IsRequired     bool   `json:"is_required"`
	IsDeleted      bool   `gorm:"default:false"`
}

// PracticeAttempt is one submitted run of a practice for an activity record.
// Deleted together with its activity record when the activity is detached.
type PracticeAttempt struct {
	gorm.Model
	ActivityRecordID uint    `json:"activity_record_id" gorm:"index;not null"`
	PracticeID       uint    `json:"practice_id" gorm:"index;not null"`
	AttemptNumber    int     `json:"attempt_number" gorm:"default:1"`
	Score            float64 `json:"score" gorm:"default:0"`
	IsPassed         bool    `json:"is_passed" gorm:"default:false"`
}

// PracticeStepResult records one step outcome within an attempt
type PracticeStepResult struct {
	gorm.Model
	PracticeAttemptID uint   `json:"practice_attempt_id" gorm:"index;not null"`
	PracticeStepID    uint   `json:"practice_step_id" gorm:"index;not null"`
	IsPassed          bool   `json:"is_passed" gorm:"default:false"`
	ActualResult      string `json:"actual_result"`
}
