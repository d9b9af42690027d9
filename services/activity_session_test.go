package services

import (
	"testing"
	"time"

	classModels "lssctc/models/class"
	progressModels "lssctc/models/progress"

	"github.com/stretchr/testify/require"
)

func TestMaterialAccessOpenByDefault(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, _ := startedClass(t, db)

	require.NoError(t, CheckActivityAccess(db, cls.ID, cat.material.ID))
}

func TestPracticeAccessDeniedUntilOpened(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, _ := startedClass(t, db)

	err := CheckActivityAccess(db, cls.ID, cat.practice.ID)
	require.ErrorIs(t, err, ErrAccessDenied)

	openSessionForActivity(t, db, cls.ID, cat.practice.ID)
	require.NoError(t, CheckActivityAccess(db, cls.ID, cat.practice.ID))
}

func TestAccessWindowBounds(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, _ := startedClass(t, db)

	future := time.Now().Add(time.Hour)
	farFuture := time.Now().Add(2 * time.Hour)
	_, err := UpdateActivitySession(db, cls.ID, cat.practice.ID, UpdateSessionInput{
		IsActive:  true,
		StartTime: &future,
		EndTime:   &farFuture,
	})
	require.NoError(t, err)
	require.ErrorIs(t, CheckActivityAccess(db, cls.ID, cat.practice.ID), ErrAccessDenied)

	past := time.Now().Add(-2 * time.Hour)
	recentPast := time.Now().Add(-time.Hour)
	_, err = UpdateActivitySession(db, cls.ID, cat.practice.ID, UpdateSessionInput{
		IsActive:  true,
		StartTime: &past,
		EndTime:   &recentPast,
	})
	require.NoError(t, err)
	require.ErrorIs(t, CheckActivityAccess(db, cls.ID, cat.practice.ID), ErrAccessDenied)

	soon := time.Now().Add(time.Hour)
	_, err = UpdateActivitySession(db, cls.ID, cat.practice.ID, UpdateSessionInput{
		IsActive:  true,
		StartTime: &past,
		EndTime:   &soon,
	})
	require.NoError(t, err)
	require.NoError(t, CheckActivityAccess(db, cls.ID, cat.practice.ID))
}

func TestUpdateSessionRejectsInvertedWindow(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, _ := startedClass(t, db)

	end := time.Now().Add(-time.Hour)
	start := time.Now().Add(time.Hour)
	_, err := UpdateActivitySession(db, cls.ID, cat.practice.ID, UpdateSessionInput{
		IsActive:  true,
		StartTime: &start,
		EndTime:   &end,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateSessionRequiresRunningClass(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, _ := startedClass(t, db)

	cls.Status = classModels.ClassCompleted
	require.NoError(t, db.Save(cls).Error)

	_, err := UpdateActivitySession(db, cls.ID, cat.practice.ID, UpdateSessionInput{IsActive: true})
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestLazyBackfillOnlyForRunningClasses(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	// a running class whose sessions were never created
	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassInprogress)
	require.NoError(t, CheckActivityAccess(db, cls.ID, cat.material.ID))

	var count int64
	db.Model(&progressModels.ActivitySession{}).Where("class_id = ?", cls.ID).Count(&count)
	require.EqualValues(t, 1, count)

	// no backfill for a class that has not started
	open := createClass(t, db, cat.programCourse.ID, classModels.ClassOpen)
	require.ErrorIs(t, CheckActivityAccess(db, open.ID, cat.material.ID), ErrAccessDenied)

	db.Model(&progressModels.ActivitySession{}).Where("class_id = ?", open.ID).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestAccessDeniedForForeignActivity(t *testing.T) {
	db := setupTestDB(t)
	_, cls, _ := startedClass(t, db)

	stray := createExtraActivity(t, db)
	require.ErrorIs(t, CheckActivityAccess(db, cls.ID, stray.ID), ErrAccessDenied)
}

func TestGetClassSessionsBackfills(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassInprogress)

	sessions, err := GetClassSessions(db, cls.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
}
