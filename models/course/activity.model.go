package course

import "gorm.io/gorm"

// Activity types
const (
	ActivityMaterial = "MATERIAL"
	ActivityPractice = "PRACTICE"
	ActivityQuiz     = "QUIZ"
)

// Activity is a reusable learning activity template placed into sections
type Activity struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description"`
	ActivityType string `json:"activity_type" gorm:"default:'MATERIAL'"` // MATERIAL, PRACTICE, QUIZ
	ContentURL   string `json:"content_url"`
	IsDeleted    bool   `gorm:"default:false"`
}

// SectionActivity is the ordered placement of an activity within a section.
// ActivityOrder is unique per section; collisions are resolved by shifting.
type SectionActivity struct {
	gorm.Model
	SectionID     uint `json:"section_id" gorm:"index;not null"`
	ActivityID    uint `json:"activity_id" gorm:"index;not null"`
	ActivityOrder int  `json:"activity_order" gorm:"default:1"`
	IsDeleted     bool `gorm:"default:false"`
}
