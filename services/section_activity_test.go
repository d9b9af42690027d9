package services

import (
	"testing"

	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func orderOf(t *testing.T, db *gorm.DB, sectionID, activityID uint) int {
	t.Helper()

	var placement courseModels.SectionActivity
	require.NoError(t, db.Where("section_id = ? AND activity_id = ? AND is_deleted = ?",
		sectionID, activityID, false).First(&placement).Error)
	return placement.ActivityOrder
}

func TestAddActivityAppendsAtEnd(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	extra := createExtraActivity(t, db)
	placement, err := AddActivityToSection(db, cat.section.ID, extra.ID, 0)
	require.NoError(t, err)
	require.Equal(t, 4, placement.ActivityOrder)
}

func TestAddActivityShiftsConflictingOrders(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	extra := createExtraActivity(t, db)
	placement, err := AddActivityToSection(db, cat.section.ID, extra.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, placement.ActivityOrder)

	require.Equal(t, 1, orderOf(t, db, cat.section.ID, cat.material.ID))
	require.Equal(t, 3, orderOf(t, db, cat.section.ID, cat.practice.ID))
	require.Equal(t, 4, orderOf(t, db, cat.section.ID, cat.quiz.ID))
}

func TestAddActivityRejectsDuplicatePlacement(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	_, err := AddActivityToSection(db, cat.section.ID, cat.material.ID, 0)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestAttachSectionAppendsWhileCourseDraft(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)

	extra := courseModels.Section{Name: "Rigging Basics"}
	require.NoError(t, db.Create(&extra).Error)

	link, err := AttachSectionToCourse(db, cat.course.ID, extra.ID, 0)
	require.NoError(t, err)
	require.Equal(t, 2, link.SectionOrder)

	_, err = AttachSectionToCourse(db, cat.course.ID, extra.ID, 0)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestAttachSectionBlockedWhenCourseLocked(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	createClass(t, db, cat.programCourse.ID, classModels.ClassOpen)

	extra := courseModels.Section{Name: "Rigging Basics"}
	require.NoError(t, db.Create(&extra).Error)

	_, err := AttachSectionToCourse(db, cat.course.ID, extra.ID, 0)
	require.ErrorIs(t, err, ErrInvalidOperation)

	var count int64
	db.Model(&courseModels.CourseSection{}).
		Where("course_id = ?", cat.course.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestReorderSwapsWithOccupant(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	require.NoError(t, UpdateSectionActivityOrder(db, cat.section.ID, cat.material.ID, 3))
	require.Equal(t, 3, orderOf(t, db, cat.section.ID, cat.material.ID))
	require.Equal(t, 1, orderOf(t, db, cat.section.ID, cat.quiz.ID))
	require.Equal(t, 2, orderOf(t, db, cat.section.ID, cat.practice.ID))
}

func TestReorderNoopForSameOrder(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	require.NoError(t, UpdateSectionActivityOrder(db, cat.section.ID, cat.material.ID, 1))
	require.Equal(t, 1, orderOf(t, db, cat.section.ID, cat.material.ID))
}

func TestReorderBlockedWhenSectionLocked(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	createClass(t, db, cat.programCourse.ID, classModels.ClassOpen)

	err := UpdateSectionActivityOrder(db, cat.section.ID, cat.material.ID, 2)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestReorderAllowedWhileClassesDraft(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)
	require.NoError(t, UpdateSectionActivityOrder(db, cat.section.ID, cat.material.ID, 2))
}

func TestAttachAllowedOnLockedSection(t *testing.T) {
	db := setupTestDB(t)
	cat, _, _ := startedClass(t, db)

	extra := createExtraActivity(t, db)
	_, err := AddActivityToSection(db, cat.section.ID, extra.ID, 0)
	require.NoError(t, err)
}

func TestRemoveActivityDeletesPlacement(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	require.NoError(t, RemoveActivityFromSection(db, cat.section.ID, cat.quiz.ID))

	placements, err := GetSectionActivities(db, cat.section.ID)
	require.NoError(t, err)
	require.Len(t, placements, 2)

	require.ErrorIs(t, RemoveActivityFromSection(db, cat.section.ID, cat.quiz.ID), ErrNotFound)
}
