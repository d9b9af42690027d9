package program

import "gorm.io/gorm"

// TrainingProgram groups an ordered list of courses into one curriculum
type TrainingProgram struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// ProgramCourse links a course into a program at a fixed position.
// CourseOrder values stay contiguous 1..N per program; removing a course
// closes the gap and reordering shifts the displaced range.
type ProgramCourse struct {
	gorm.Model
	ProgramID   uint `json:"program_id" gorm:"index;not null"`
	CourseID    uint `json:"course_id" gorm:"index;not null"`
	CourseOrder int  `json:"course_order" gorm:"default:1"`
	IsDeleted   bool `gorm:"default:false"`
}
