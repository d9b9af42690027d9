package services

import (
	"time"

	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"
	practiceModels "lssctc/models/practice"
	programModels "lssctc/models/program"
	progressModels "lssctc/models/progress"

	"gorm.io/gorm"
)

// ScaffoldClassProgress creates the derived progress rows for every
// INPROGRESS enrollment of a class: one LearningProgress per enrollment,
// one SectionRecord per course section and one ActivityRecord per placed
// activity, all initialized incomplete. Already-existing rows are kept, so
// the scaffold is safe to run again.
func ScaffoldClassProgress(db *gorm.DB, cls *classModels.Class) error {
	courseID, err := courseIDForClass(db, cls)
	if err != nil {
		return err
	}

	var courseSections []courseModels.CourseSection
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("section_order asc").Find(&courseSections).Error; err != nil {
		return err
	}

	var enrollments []classModels.Enrollment
	if err := db.Where("class_id = ? AND status = ? AND is_deleted = ?",
		cls.ID, classModels.EnrollmentInprogress, false).Find(&enrollments).Error; err != nil {
		return err
	}

	for _, enrollment := range enrollments {
		lp, err := ensureLearningProgress(db, enrollment.ID)
		if err != nil {
			return err
		}

		for _, cs := range courseSections {
			record, err := ensureSectionRecord(db, lp.ID, cs.SectionID, cs.SectionOrder)
			if err != nil {
				return err
			}

			var placements []courseModels.SectionActivity
			if err := db.Where("section_id = ? AND is_deleted = ?", cs.SectionID, false).
				Order("activity_order asc").Find(&placements).Error; err != nil {
				return err
			}
			for _, placement := range placements {
				if err := ensureActivityRecord(db, record.ID, placement.ActivityID); err != nil {
					return err
				}
			}

			if err := RecalculateSectionAndLearningProgress(db, record.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// AttachActivityRecords backfills an ActivityRecord for every live section
// record of the section, then recalculates each affected enrollment. Used
// when an activity is attached to a section whose classes already run.
func AttachActivityRecords(db *gorm.DB, sectionID, activityID uint) error {
	var records []progressModels.SectionRecord
	if err := db.Where("section_id = ?", sectionID).Find(&records).Error; err != nil {
		return err
	}

	for _, record := range records {
		if err := ensureActivityRecord(db, record.ID, activityID); err != nil {
			return err
		}
		if err := RecalculateSectionAndLearningProgress(db, record.ID); err != nil {
			return err
		}
	}
	return nil
}

// DetachActivityRecords hard-deletes the ActivityRecords for an activity
// that was removed from a section, cascading to their practice and quiz
// attempts, then recalculates each affected enrollment.
func DetachActivityRecords(db *gorm.DB, sectionID, activityID uint) error {
	var sectionRecords []progressModels.SectionRecord
	if err := db.Where("section_id = ?", sectionID).Find(&sectionRecords).Error; err != nil {
		return err
	}

	for _, record := range sectionRecords {
		var activityRecords []progressModels.ActivityRecord
		if err := db.Where("section_record_id = ? AND activity_id = ?", record.ID, activityID).
			Find(&activityRecords).Error; err != nil {
			return err
		}

		for _, ar := range activityRecords {
			if err := deleteActivityRecordCascade(db, ar.ID); err != nil {
				return err
			}
		}

		if err := RecalculateSectionAndLearningProgress(db, record.ID); err != nil {
			return err
		}
	}
	return nil
}

// RecalculateSectionAndLearningProgress recomputes one section record from
// its activity records, then the owning learning progress from all of its
// section records. Both steps are idempotent.
//
// Section progress is 100*completed/total, or 100 when the section has no
// activity records left. The learning progress percentage averages over the
// enrollment's section records (not the course's current section count):
// records are the authoritative view of what this enrollment can complete,
// so a course that grows sections later does not strand finished trainees
// below 100%. Hitting 100 moves the status to COMPLETED unless FAILED.
func RecalculateSectionAndLearningProgress(db *gorm.DB, sectionRecordID uint) error {
	var record progressModels.SectionRecord
	if err := db.First(&record, sectionRecordID).Error; err != nil {
		return notFoundf("section record %d", sectionRecordID)
	}

	var total, completed int64
	db.Model(&progressModels.ActivityRecord{}).
		Where("section_record_id = ?", record.ID).Count(&total)
	db.Model(&progressModels.ActivityRecord{}).
		Where("section_record_id = ? AND is_completed = ?", record.ID, true).Count(&completed)

	sectionProgress := float64(100)
	if total > 0 {
		sectionProgress = float64(completed) / float64(total) * 100
	}

	record.Progress = sectionProgress
	record.IsCompleted = sectionProgress >= 100
	if err := db.Save(&record).Error; err != nil {
		return err
	}

	return recalculateLearningProgress(db, record.LearningProgressID)
}

func recalculateLearningProgress(db *gorm.DB, learningProgressID uint) error {
	var lp progressModels.LearningProgress
	if err := db.First(&lp, learningProgressID).Error; err != nil {
		return notFoundf("learning progress %d", learningProgressID)
	}

	var records []progressModels.SectionRecord
	if err := db.Where("learning_progress_id = ?", lp.ID).Find(&records).Error; err != nil {
		return err
	}

	percentage := float64(0)
	if len(records) > 0 {
		sum := float64(0)
		for _, r := range records {
			sum += r.Progress
		}
		percentage = sum / float64(len(records))
	}
	if percentage > 100 {
		percentage = 100
	}

	lp.ProgressPercentage = percentage
	if lp.Status != progressModels.ProgressFailed {
		switch {
		case percentage >= 100:
			lp.Status = progressModels.ProgressCompleted
		case percentage > 0:
			lp.Status = progressModels.ProgressInProgress
		}
	}
	return db.Save(&lp).Error
}

// CompleteActivity marks one activity done for an enrollment and runs the
// recalculation pipeline. The activity session window is checked first.
func CompleteActivity(db *gorm.DB, enrollmentID, activityID uint) (*progressModels.ActivityRecord, error) {
	var enrollment classModels.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return nil, notFoundf("enrollment %d", enrollmentID)
	}
	if enrollment.Status != classModels.EnrollmentInprogress {
		return nil, invalidOpf("enrollment %d is %s, only INPROGRESS enrollments can complete activities", enrollmentID, enrollment.Status)
	}

	if err := CheckActivityAccess(db, enrollment.ClassID, activityID); err != nil {
		return nil, err
	}

	record, err := findActivityRecord(db, enrollmentID, activityID)
	if err != nil {
		return nil, err
	}
	if record.IsCompleted {
		return nil, invalidOpf("activity %d is already completed", activityID)
	}

	now := time.Now().UTC()
	record.IsCompleted = true
	record.Status = progressModels.ActivityRecordCompleted
	record.CompletedDate = &now
	if err := db.Save(record).Error; err != nil {
		return nil, err
	}

	if err := RecalculateSectionAndLearningProgress(db, record.SectionRecordID); err != nil {
		return nil, err
	}
	return record, nil
}

// findActivityRecord locates the enrollment's record for an activity across
// its section records.
func findActivityRecord(db *gorm.DB, enrollmentID, activityID uint) (*progressModels.ActivityRecord, error) {
	var lp progressModels.LearningProgress
	if err := db.Where("enrollment_id = ?", enrollmentID).First(&lp).Error; err != nil {
		return nil, notFoundf("learning progress for enrollment %d", enrollmentID)
	}

	var record progressModels.ActivityRecord
	err := db.Joins("JOIN section_records ON section_records.id = activity_records.section_record_id").
		Where("section_records.learning_progress_id = ? AND activity_records.activity_id = ?", lp.ID, activityID).
		First(&record).Error
	if err != nil {
		return nil, notFoundf("activity record for activity %d", activityID)
	}
	return &record, nil
}

func ensureLearningProgress(db *gorm.DB, enrollmentID uint) (*progressModels.LearningProgress, error) {
	var lp progressModels.LearningProgress
	err := db.Where("enrollment_id = ?", enrollmentID).First(&lp).Error
	if err == nil {
		return &lp, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	lp = progressModels.LearningProgress{
		EnrollmentID: enrollmentID,
		Status:       progressModels.ProgressNotStarted,
	}
	if err := db.Create(&lp).Error; err != nil {
		return nil, err
	}
	return &lp, nil
}

func ensureSectionRecord(db *gorm.DB, learningProgressID, sectionID uint, order int) (*progressModels.SectionRecord, error) {
	var record progressModels.SectionRecord
	err := db.Where("learning_progress_id = ? AND section_id = ?", learningProgressID, sectionID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record = progressModels.SectionRecord{
		LearningProgressID: learningProgressID,
		SectionID:          sectionID,
		SectionOrder:       order,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func ensureActivityRecord(db *gorm.DB, sectionRecordID, activityID uint) error {
	var count int64
	db.Model(&progressModels.ActivityRecord{}).
		Where("section_record_id = ? AND activity_id = ?", sectionRecordID, activityID).
		Count(&count)
	if count > 0 {
		return nil
	}

	record := progressModels.ActivityRecord{
		SectionRecordID: sectionRecordID,
		ActivityID:      activityID,
		Status:          progressModels.ActivityRecordPending,
	}
	return db.Create(&record).Error
}

func deleteActivityRecordCascade(db *gorm.DB, activityRecordID uint) error {
	var attempts []practiceModels.PracticeAttempt
	if err := db.Where("activity_record_id = ?", activityRecordID).Find(&attempts).Error; err != nil {
		return err
	}
	for _, attempt := range attempts {
		if err := db.Unscoped().Where("practice_attempt_id = ?", attempt.ID).
			Delete(&practiceModels.PracticeStepResult{}).Error; err != nil {
			return err
		}
	}
	if err := db.Unscoped().Where("activity_record_id = ?", activityRecordID).
		Delete(&practiceModels.PracticeAttempt{}).Error; err != nil {
		return err
	}

	var quizAttempts []practiceModels.QuizAttempt
	if err := db.Where("activity_record_id = ?", activityRecordID).Find(&quizAttempts).Error; err != nil {
		return err
	}
	for _, attempt := range quizAttempts {
		if err := db.Unscoped().Where("quiz_attempt_id = ?", attempt.ID).
			Delete(&practiceModels.QuizAnswer{}).Error; err != nil {
			return err
		}
	}
	if err := db.Unscoped().Where("activity_record_id = ?", activityRecordID).
		Delete(&practiceModels.QuizAttempt{}).Error; err != nil {
		return err
	}

	return db.Unscoped().Delete(&progressModels.ActivityRecord{}, activityRecordID).Error
}

func courseIDForClass(db *gorm.DB, cls *classModels.Class) (uint, error) {
	var programCourse programModels.ProgramCourse
	if err := db.Where("id = ?", cls.ProgramCourseID).First(&programCourse).Error; err != nil {
		return 0, notFoundf("program course %d", cls.ProgramCourseID)
	}
	return programCourse.CourseID, nil
}
