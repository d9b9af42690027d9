package course

import "gorm.io/gorm"

// Section is a reusable block of activities shared across courses
type Section struct {
	gorm.Model
	Name            string `json:"name" gorm:"not null"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	IsDeleted       bool   `gorm:"default:false"`
}

// CourseSection places a section inside a course at a fixed position
type CourseSection struct {
	gorm.Model
	CourseID     uint `json:"course_id" gorm:"index;not null"`
	SectionID    uint `json:"section_id" gorm:"index;not null"`
	SectionOrder int  `json:"section_order" gorm:"default:1"`
	IsDeleted    bool `gorm:"default:false"`
}
