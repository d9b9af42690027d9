package progress

import (
	"time"

	"gorm.io/gorm"
)

// ActivitySession is the access window for one activity within one class.
// Access requires IsActive and, when a window is set, StartTime <= now < EndTime.
type ActivitySession struct {
	gorm.Model
	ClassID    uint       `json:"class_id" gorm:"index;not null"`
	ActivityID uint       `json:"activity_id" gorm:"index;not null"`
	IsActive   bool       `json:"is_active" gorm:"default:false"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	IsDeleted  bool       `gorm:"default:false"`
}
