package practice

import "gorm.io/gorm"

// Quiz is the question set behind a QUIZ activity
type Quiz struct {
	gorm.Model
	ActivityID    uint    `json:"activity_id" gorm:"index;not null"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PassThreshold float64 `json:"pass_threshold" gorm:"default:70"` // percent
	IsDeleted     bool    `gorm:"default:false"`
}

// QuizQuestion holds one question; multi-answer when several options are correct
type QuizQuestion struct {
	gorm.Model
	QuizID       uint   `json:"quiz_id" gorm:"index;not null"`
	QuestionText string `json:"question_text"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

// QuizOption is one selectable answer for a question
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt is one scored submission of a quiz for an activity record.
// Deleted together with its activity record when the activity is detached.
type QuizAttempt struct {
	gorm.Model
	ActivityRecordID uint    `json:"activity_record_id" gorm:"index;not null"`
	QuizID           uint    `json:"quiz_id" gorm:"index;not null"`
	AttemptNumber    int     `json:"attempt_number" gorm:"default:1"`
	Score            float64 `json:"score" gorm:"default:0"`
	IsPassed         bool    `json:"is_passed" gorm:"default:false"`
}

// QuizAnswer records the selected options for one question within an attempt
type QuizAnswer struct {
	gorm.Model
	QuizAttemptID   uint   `json:"quiz_attempt_id" gorm:"index;not null"`
	QuestionID      uint   `json:"question_id" gorm:"index;not null"`
	SelectedOptions string `json:"selected_options"` // JSON array of option IDs
	IsCorrect       bool   `json:"is_correct" gorm:"default:false"`
}
