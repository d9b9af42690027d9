package utils

import (
	"log"
	"time"

	"lssctc/database"
	classModels "lssctc/models/class"
	progressModels "lssctc/models/progress"
	"lssctc/services"

	"github.com/robfig/cron/v3"
)

// InitializeClassScheduler sets up the daily class maintenance jobs
func InitializeClassScheduler() {
	log.Println("[CLASS-SCHEDULER] Initializing class scheduler...")

	c := cron.New()

	// Run daily at 1 AM
	c.AddFunc("0 1 * * *", func() {
		log.Println("[CLASS-SCHEDULER] Running daily class maintenance...")
		CompleteOverdueClasses()
		DeactivateExpiredSessions()
	})

	c.Start()
	log.Println("[CLASS-SCHEDULER] Class scheduler started - runs daily at 1 AM")
}

// CompleteOverdueClasses moves INPROGRESS classes past their end date to
// COMPLETED through the regular guarded transition.
func CompleteOverdueClasses() {
	db := database.Database.Db
	now := time.Now()

	var overdue []classModels.Class
	if err := db.Where("status = ? AND is_deleted = ? AND end_date < ?",
		classModels.ClassInprogress, false, now).Find(&overdue).Error; err != nil {
		log.Printf("[CLASS-SCHEDULER] Error fetching overdue classes: %v", err)
		return
	}

	for _, cls := range overdue {
		if _, err := services.CompleteClass(db, cls.ID); err != nil {
			log.Printf("[CLASS-SCHEDULER] Error completing class %d: %v", cls.ID, err)
			continue
		}
		log.Printf("[CLASS-SCHEDULER] Completed overdue class %d (%s)", cls.ID, cls.ClassCode)
	}
}

// DeactivateExpiredSessions closes activity sessions whose window has passed
func DeactivateExpiredSessions() {
	db := database.Database.Db
	now := time.Now().UTC()

	result := db.Model(&progressModels.ActivitySession{}).
		Where("is_active = ? AND is_deleted = ? AND end_time IS NOT NULL AND end_time < ?", true, false, now).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("[CLASS-SCHEDULER] Error deactivating sessions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[CLASS-SCHEDULER] Deactivated %d expired activity sessions", result.RowsAffected)
	}
}
