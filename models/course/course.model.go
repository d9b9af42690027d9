package course

import "gorm.io/gorm"

// Course is a reusable training course attached to programs via ProgramCourse
type Course struct {
	gorm.Model
	Name          string  `json:"name" gorm:"not null"`
	Description   string  `json:"description"`
	Category      string  `json:"category" gorm:"default:''"`
	Level         string  `json:"level" gorm:"default:'BASIC'"` // BASIC, INTERMEDIATE, ADVANCED
	Price         float64 `json:"price" gorm:"default:0"`
	DurationHours int     `json:"duration_hours" gorm:"default:0"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	IsActive      bool    `json:"is_active" gorm:"default:true"`
	IsDeleted     bool    `gorm:"default:false"`
}
