package services

import (
	classModels "lssctc/models/class"
	practiceModels "lssctc/models/practice"

	"gorm.io/gorm"
)

// PracticeStepInput is one reported step outcome in a submission
type PracticeStepInput struct {
	StepID       uint   `json:"step_id"`
	IsPassed     bool   `json:"is_passed"`
	ActualResult string `json:"actual_result"`
}

// PracticeResult is the scored outcome of one practice run
type PracticeResult struct {
	Attempt     practiceModels.PracticeAttempt `json:"attempt"`
	PassedSteps int                            `json:"passed_steps"`
	TotalSteps  int                            `json:"total_steps"`
	IsPassed    bool                           `json:"is_passed"`
}

// SubmitPracticeAttempt records a practice run for an enrollment. Score is
// 100*passed/total over the practice's current steps; the run passes when
// every required step passed. A pass auto-completes the activity and runs
// the progress recalculation.
func SubmitPracticeAttempt(db *gorm.DB, enrollmentID, practiceID uint, steps []PracticeStepInput) (*PracticeResult, error) {
	var prac practiceModels.Practice
	if err := db.Where("id = ? AND is_deleted = ?", practiceID, false).First(&prac).Error; err != nil {
		return nil, notFoundf("practice %d", practiceID)
	}

	var enrollment classModels.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return nil, notFoundf("enrollment %d", enrollmentID)
	}
	if enrollment.Status != classModels.EnrollmentInprogress {
		return nil, invalidOpf("enrollment %d is %s, practices require an INPROGRESS enrollment", enrollmentID, enrollment.Status)
	}

	if err := CheckActivityAccess(db, enrollment.ClassID, prac.ActivityID); err != nil {
		return nil, err
	}

	record, err := findActivityRecord(db, enrollmentID, prac.ActivityID)
	if err != nil {
		return nil, err
	}

	var defined []practiceModels.PracticeStep
	if err := db.Where("practice_id = ? AND is_deleted = ?", practiceID, false).
		Order("step_order asc").Find(&defined).Error; err != nil {
		return nil, err
	}
	if len(defined) == 0 {
		return nil, invalidOpf("practice %d has no steps", practiceID)
	}

	var attemptCount int64
	db.Model(&practiceModels.PracticeAttempt{}).
		Where("activity_record_id = ? AND practice_id = ?", record.ID, practiceID).
		Count(&attemptCount)
	if prac.MaxAttempts > 0 && attemptCount >= int64(prac.MaxAttempts) {
		return nil, invalidOpf("practice %d allows at most %d attempts", practiceID, prac.MaxAttempts)
	}

	reported := make(map[uint]PracticeStepInput, len(steps))
	for _, step := range steps {
		reported[step.StepID] = step
	}

	passedSteps := 0
	allRequiredPassed := true
	var results []practiceModels.PracticeStepResult
	for _, step := range defined {
		input, ok := reported[step.ID]
		passed := ok && input.IsPassed
		if passed {
			passedSteps++
		} else if step.IsRequired {
			allRequiredPassed = false
		}
		results = append(results, practiceModels.PracticeStepResult{
			PracticeStepID: step.ID,
			IsPassed:       passed,
			ActualResult:   input.ActualResult,
		})
	}

	score := float64(passedSteps) / float64(len(defined)) * 100
	attempt := practiceModels.PracticeAttempt{
		ActivityRecordID: record.ID,
		PracticeID:       practiceID,
		AttemptNumber:    int(attemptCount) + 1,
		Score:            score,
		IsPassed:         allRequiredPassed,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		for i := range results {
			results[i].PracticeAttemptID = attempt.ID
			if err := tx.Create(&results[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if allRequiredPassed && !record.IsCompleted {
		if _, err := CompleteActivity(db, enrollmentID, prac.ActivityID); err != nil {
			return nil, err
		}
	}

	return &PracticeResult{
		Attempt:     attempt,
		PassedSteps: passedSteps,
		TotalSteps:  len(defined),
		IsPassed:    allRequiredPassed,
	}, nil
}

// GetPracticeForActivity loads the practice behind an activity with its
// ordered steps.
func GetPracticeForActivity(db *gorm.DB, activityID uint) (map[string]interface{}, error) {
	var prac practiceModels.Practice
	if err := db.Where("activity_id = ? AND is_deleted = ?", activityID, false).First(&prac).Error; err != nil {
		return nil, notFoundf("practice for activity %d", activityID)
	}

	var steps []practiceModels.PracticeStep
	if err := db.Where("practice_id = ? AND is_deleted = ?", prac.ID, false).
		Order("step_order asc").Find(&steps).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"practice": prac,
		"steps":    steps,
	}, nil
}
