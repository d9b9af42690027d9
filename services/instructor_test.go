package services

import (
	"testing"
	"time"

	"lssctc/models"
	classModels "lssctc/models/class"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func classWithDates(t *testing.T, db *gorm.DB, programCourseID uint, start, end time.Time) *classModels.Class {
	t.Helper()

	cls := createClass(t, db, programCourseID, classModels.ClassDraft)
	cls.StartDate = start
	cls.EndDate = end
	require.NoError(t, db.Save(cls).Error)
	return cls
}

func TestAssignInstructorRequiresRole(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)

	trainee := createUser(t, db, models.RoleTrainee)
	_, err := AssignInstructor(db, cls.ID, trainee.ID)
	require.ErrorIs(t, err, ErrInvalidOperation)

	instructor := createUser(t, db, models.RoleInstructor)
	assignment, err := AssignInstructor(db, cls.ID, instructor.ID)
	require.NoError(t, err)
	require.Equal(t, instructor.ID, assignment.InstructorID)
}

func TestAssignInstructorSinglePerClass(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)

	first := createUser(t, db, models.RoleInstructor)
	second := createUser(t, db, models.RoleInstructor)

	_, err := AssignInstructor(db, cls.ID, first.ID)
	require.NoError(t, err)

	_, err = AssignInstructor(db, cls.ID, second.ID)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestAssignInstructorScheduleConflict(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	instructor := createUser(t, db, models.RoleInstructor)

	base := time.Now().Add(48 * time.Hour)
	first := classWithDates(t, db, cat.programCourse.ID, base, base.AddDate(0, 0, 7))
	_, err := AssignInstructor(db, first.ID, instructor.ID)
	require.NoError(t, err)

	// overlapping interval is rejected
	overlapping := classWithDates(t, db, cat.programCourse.ID,
		base.AddDate(0, 0, 3), base.AddDate(0, 0, 10))
	_, err = AssignInstructor(db, overlapping.ID, instructor.ID)
	require.ErrorIs(t, err, ErrInvalidOperation)

	// back-to-back is fine: the interval is half-open, end day excluded
	adjacent := classWithDates(t, db, cat.programCourse.ID,
		base.AddDate(0, 0, 7), base.AddDate(0, 0, 14))
	_, err = AssignInstructor(db, adjacent.ID, instructor.ID)
	require.NoError(t, err)
}

func TestConflictIgnoresCancelledClasses(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	instructor := createUser(t, db, models.RoleInstructor)

	base := time.Now().Add(48 * time.Hour)
	first := classWithDates(t, db, cat.programCourse.ID, base, base.AddDate(0, 0, 7))
	_, err := AssignInstructor(db, first.ID, instructor.ID)
	require.NoError(t, err)

	first.Status = classModels.ClassCancelled
	require.NoError(t, db.Save(first).Error)

	second := classWithDates(t, db, cat.programCourse.ID, base, base.AddDate(0, 0, 7))
	_, err = AssignInstructor(db, second.ID, instructor.ID)
	require.NoError(t, err)
}

func TestRemoveInstructorOnlyInDraft(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	instructor := createUser(t, db, models.RoleInstructor)

	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)
	_, err := AssignInstructor(db, cls.ID, instructor.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveInstructor(db, cls.ID))
	_, err = GetClassInstructor(db, cls.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// removal frees the instructor for reassignment
	_, err = AssignInstructor(db, cls.ID, instructor.ID)
	require.NoError(t, err)

	cls.Status = classModels.ClassOpen
	require.NoError(t, db.Save(cls).Error)
	require.ErrorIs(t, RemoveInstructor(db, cls.ID), ErrInvalidOperation)
}

func TestGetClassInstructor(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	instructor := createUser(t, db, models.RoleInstructor)

	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)
	_, err := AssignInstructor(db, cls.ID, instructor.ID)
	require.NoError(t, err)

	found, err := GetClassInstructor(db, cls.ID)
	require.NoError(t, err)
	require.Equal(t, instructor.ID, found.ID)
}
