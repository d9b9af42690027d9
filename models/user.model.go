package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin             = "ADMIN"
	RoleInstructor        = "INSTRUCTOR"
	RoleSimulationManager = "SIMULATION_MANAGER"
	RoleTrainee           = "TRAINEE"
)

type User struct {
	gorm.Model
	ProfileImage        string     `json:"profile_image" gorm:"default:''"`
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Mobile              string     `json:"mobile" gorm:"default:''"`
	Role                string     `json:"role" gorm:"default:'TRAINEE'"` // TRAINEE, INSTRUCTOR, SIMULATION_MANAGER, ADMIN
	Password            string     `json:"-" gorm:"not null"`
	IsEmailVerified     bool       `json:"is_email_verified" gorm:"default:false"`
	LastLogin           time.Time  `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `json:"is_blocked" gorm:"default:false"`
	IsActive            bool       `json:"is_active" gorm:"default:true"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}
