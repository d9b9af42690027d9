package services

import (
	"testing"

	practiceModels "lssctc/models/practice"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type practiceFixture struct {
	practice practiceModels.Practice
	required practiceModels.PracticeStep
	optional practiceModels.PracticeStep
}

func buildPractice(t *testing.T, db *gorm.DB, activityID uint, maxAttempts int) *practiceFixture {
	t.Helper()

	f := &practiceFixture{
		practice: practiceModels.Practice{
			ActivityID:  activityID,
			Name:        "Lift Simulation",
			MaxAttempts: maxAttempts,
		},
	}
	require.NoError(t, db.Create(&f.practice).Error)

	f.required = practiceModels.PracticeStep{
		PracticeID:  f.practice.ID,
		StepOrder:   1,
		Instruction: "Perform pre-lift checks",
		IsRequired:  true,
	}
	f.optional = practiceModels.PracticeStep{
		PracticeID:  f.practice.ID,
		StepOrder:   2,
		Instruction: "Log wind speed",
		IsRequired:  false,
	}
	require.NoError(t, db.Create(&f.required).Error)
	require.NoError(t, db.Create(&f.optional).Error)
	return f
}

func TestPracticeStepOptionalFlagSurvivesInsert(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	f := buildPractice(t, db, cat.practice.ID, 0)

	// a step written as optional must read back optional
	var reloaded practiceModels.PracticeStep
	require.NoError(t, db.First(&reloaded, f.optional.ID).Error)
	require.False(t, reloaded.IsRequired)

	require.NoError(t, db.First(&reloaded, f.required.ID).Error)
	require.True(t, reloaded.IsRequired)
}

func TestSubmitPracticePassWithRequiredSteps(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildPractice(t, db, cat.practice.ID, 0)
	openSessionForActivity(t, db, cls.ID, cat.practice.ID)

	result, err := SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, []PracticeStepInput{
		{StepID: f.required.ID, IsPassed: true, ActualResult: "checks done"},
	})
	require.NoError(t, err)

	// passing only the required step passes the run at half score
	require.True(t, result.IsPassed)
	require.Equal(t, 1, result.PassedSteps)
	require.Equal(t, 2, result.TotalSteps)
	require.EqualValues(t, 50, result.Attempt.Score)

	record, err := findActivityRecord(db, enrollment.ID, cat.practice.ID)
	require.NoError(t, err)
	require.True(t, record.IsCompleted)
}

func TestSubmitPracticeFailsWhenRequiredStepFails(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildPractice(t, db, cat.practice.ID, 0)
	openSessionForActivity(t, db, cls.ID, cat.practice.ID)

	result, err := SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, []PracticeStepInput{
		{StepID: f.optional.ID, IsPassed: true},
	})
	require.NoError(t, err)
	require.False(t, result.IsPassed)
	require.EqualValues(t, 50, result.Attempt.Score)

	record, err := findActivityRecord(db, enrollment.ID, cat.practice.ID)
	require.NoError(t, err)
	require.False(t, record.IsCompleted)
}

func TestSubmitPracticeUnreportedStepCountsAsFailed(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildPractice(t, db, cat.practice.ID, 0)
	openSessionForActivity(t, db, cls.ID, cat.practice.ID)

	result, err := SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, []PracticeStepInput{
		{StepID: f.optional.ID, IsPassed: true},
	})
	require.NoError(t, err)

	// a result row exists for every defined step, reported or not
	var stepResults []practiceModels.PracticeStepResult
	require.NoError(t, db.Where("practice_attempt_id = ?", result.Attempt.ID).Find(&stepResults).Error)
	require.Len(t, stepResults, 2)
}

func TestSubmitPracticeEnforcesMaxAttempts(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildPractice(t, db, cat.practice.ID, 1)
	openSessionForActivity(t, db, cls.ID, cat.practice.ID)

	fail := []PracticeStepInput{{StepID: f.optional.ID, IsPassed: true}}
	_, err := SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, fail)
	require.NoError(t, err)

	_, err = SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, fail)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestSubmitPracticeUnlimitedAttempts(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildPractice(t, db, cat.practice.ID, 0)
	openSessionForActivity(t, db, cls.ID, cat.practice.ID)

	fail := []PracticeStepInput{{StepID: f.optional.ID, IsPassed: true}}
	for i := 1; i <= 3; i++ {
		result, err := SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, fail)
		require.NoError(t, err)
		require.Equal(t, i, result.Attempt.AttemptNumber)
	}
}

func TestSubmitPracticeRequiresInprogressEnrollment(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildPractice(t, db, cat.practice.ID, 0)
	openSessionForActivity(t, db, cls.ID, cat.practice.ID)

	enrollment.Status = "COMPLETED"
	require.NoError(t, db.Save(enrollment).Error)

	_, err := SubmitPracticeAttempt(db, enrollment.ID, f.practice.ID, []PracticeStepInput{
		{StepID: f.required.ID, IsPassed: true},
	})
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestGetPracticeForActivity(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	buildPractice(t, db, cat.practice.ID, 3)

	payload, err := GetPracticeForActivity(db, cat.practice.ID)
	require.NoError(t, err)

	steps, ok := payload["steps"].([]practiceModels.PracticeStep)
	require.True(t, ok)
	require.Len(t, steps, 2)

	_, err = GetPracticeForActivity(db, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}
