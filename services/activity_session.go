package services

import (
	"time"

	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"
	progressModels "lssctc/models/progress"

	"gorm.io/gorm"
)

// CreateClassSessions creates the per-activity access sessions when a class
// starts. MATERIAL activities open immediately for the class's full
// duration; PRACTICE and QUIZ sessions start inactive until an instructor
// opens them. Existing rows are left alone.
func CreateClassSessions(db *gorm.DB, cls *classModels.Class) error {
	courseID, err := courseIDForClass(db, cls)
	if err != nil {
		return err
	}

	activities, err := activitiesForCourse(db, courseID)
	if err != nil {
		return err
	}

	for _, activity := range activities {
		var count int64
		db.Model(&progressModels.ActivitySession{}).
			Where("class_id = ? AND activity_id = ? AND is_deleted = ?", cls.ID, activity.ID, false).
			Count(&count)
		if count > 0 {
			continue
		}

		session := progressModels.ActivitySession{
			ClassID:    cls.ID,
			ActivityID: activity.ID,
		}
		if activity.ActivityType == courseModels.ActivityMaterial {
			start := cls.StartDate
			end := cls.EndDate
			session.IsActive = true
			session.StartTime = &start
			session.EndTime = &end
		}
		if err := db.Create(&session).Error; err != nil {
			return err
		}
	}
	return nil
}

// CheckActivityAccess verifies that a trainee may touch an activity right
// now. The window is inclusive of StartTime and exclusive of EndTime.
// A missing session is lazily backfilled when the class is INPROGRESS.
func CheckActivityAccess(db *gorm.DB, classID, activityID uint) error {
	var session progressModels.ActivitySession
	err := db.Where("class_id = ? AND activity_id = ? AND is_deleted = ?", classID, activityID, false).
		First(&session).Error
	if err == gorm.ErrRecordNotFound {
		backfilled, berr := backfillSession(db, classID, activityID)
		if berr != nil {
			return berr
		}
		session = *backfilled
	} else if err != nil {
		return err
	}

	if !session.IsActive {
		return accessDeniedf("activity %d is not open for class %d", activityID, classID)
	}

	now := time.Now().UTC()
	if session.StartTime != nil && now.Before(session.StartTime.UTC()) {
		return accessDeniedf("activity %d is not open yet", activityID)
	}
	if session.EndTime != nil && !now.Before(session.EndTime.UTC()) {
		return accessDeniedf("activity %d is closed", activityID)
	}
	return nil
}

// UpdateSessionInput carries the instructor's changes to a session window
type UpdateSessionInput struct {
	IsActive  bool
	StartTime *time.Time
	EndTime   *time.Time
}

// UpdateActivitySession lets the instructor open or close an activity and
// set its time window while the class runs.
func UpdateActivitySession(db *gorm.DB, classID, activityID uint, input UpdateSessionInput) (*progressModels.ActivitySession, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassInprogress {
		return nil, invalidOpf("class %d is %s, sessions can only be managed while INPROGRESS", classID, cls.Status)
	}

	if input.StartTime != nil && input.EndTime != nil && !input.StartTime.Before(*input.EndTime) {
		return nil, validationf("session start time must be before end time")
	}

	var session progressModels.ActivitySession
	err = db.Where("class_id = ? AND activity_id = ? AND is_deleted = ?", classID, activityID, false).
		First(&session).Error
	if err == gorm.ErrRecordNotFound {
		backfilled, berr := backfillSession(db, classID, activityID)
		if berr != nil {
			return nil, berr
		}
		session = *backfilled
	} else if err != nil {
		return nil, err
	}

	session.IsActive = input.IsActive
	session.StartTime = input.StartTime
	session.EndTime = input.EndTime
	if err := db.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetClassSessions lists the sessions for a class, backfilling any missing
// rows first so the instructor always sees the full activity set.
func GetClassSessions(db *gorm.DB, classID uint) ([]progressModels.ActivitySession, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status == classModels.ClassInprogress {
		if err := CreateClassSessions(db, cls); err != nil {
			return nil, err
		}
	}

	var sessions []progressModels.ActivitySession
	if err := db.Where("class_id = ? AND is_deleted = ?", classID, false).
		Order("activity_id asc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func backfillSession(db *gorm.DB, classID, activityID uint) (*progressModels.ActivitySession, error) {
	cls, err := getClass(db, classID)
	if err != nil {
		return nil, err
	}
	if cls.Status != classModels.ClassInprogress {
		return nil, accessDeniedf("no session for activity %d in class %d", activityID, classID)
	}

	courseID, err := courseIDForClass(db, cls)
	if err != nil {
		return nil, err
	}
	activities, err := activitiesForCourse(db, courseID)
	if err != nil {
		return nil, err
	}

	var target *courseModels.Activity
	for i := range activities {
		if activities[i].ID == activityID {
			target = &activities[i]
			break
		}
	}
	if target == nil {
		return nil, accessDeniedf("activity %d does not belong to class %d", activityID, classID)
	}

	session := progressModels.ActivitySession{
		ClassID:    classID,
		ActivityID: activityID,
	}
	if target.ActivityType == courseModels.ActivityMaterial {
		start := cls.StartDate
		end := cls.EndDate
		session.IsActive = true
		session.StartTime = &start
		session.EndTime = &end
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// activitiesForCourse resolves every activity placed in the course's
// sections, deduplicated.
func activitiesForCourse(db *gorm.DB, courseID uint) ([]courseModels.Activity, error) {
	var courseSections []courseModels.CourseSection
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Find(&courseSections).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var activities []courseModels.Activity
	for _, cs := range courseSections {
		var placements []courseModels.SectionActivity
		if err := db.Where("section_id = ? AND is_deleted = ?", cs.SectionID, false).
			Order("activity_order asc").Find(&placements).Error; err != nil {
			return nil, err
		}
		for _, placement := range placements {
			if seen[placement.ActivityID] {
				continue
			}
			seen[placement.ActivityID] = true

			var activity courseModels.Activity
			if err := db.Where("id = ? AND is_deleted = ?", placement.ActivityID, false).
				First(&activity).Error; err != nil {
				continue
			}
			activities = append(activities, activity)
		}
	}
	return activities, nil
}
