package services

import (
	"fmt"
	"testing"

	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createCourse(t *testing.T, db *gorm.DB, hours int) *courseModels.Course {
	t.Helper()

	crs := courseModels.Course{
		Name:          fmt.Sprintf("Course %d", nextSeq()),
		DurationHours: hours,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&crs).Error)
	return &crs
}

func programOrders(t *testing.T, db *gorm.DB, programID uint) map[uint]int {
	t.Helper()

	links, err := GetProgramCourses(db, programID)
	require.NoError(t, err)

	orders := make(map[uint]int, len(links))
	for _, link := range links {
		orders[link.CourseID] = link.CourseOrder
	}
	return orders
}

func TestAddCourseToProgramAppends(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	second := createCourse(t, db, 16)
	link, err := AddCourseToProgram(db, cat.program.ID, second.ID)
	require.NoError(t, err)
	require.Equal(t, 2, link.CourseOrder)

	_, err = AddCourseToProgram(db, cat.program.ID, second.ID)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestProgramSummaryDerivesTotals(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	second := createCourse(t, db, 16)
	_, err := AddCourseToProgram(db, cat.program.ID, second.ID)
	require.NoError(t, err)

	summary, err := GetProgramSummary(db, cat.program.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.TotalCourses)
	require.EqualValues(t, 56, summary.DurationHours) // 40 + 16
}

func TestRemoveCourseClosesOrderGap(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	second := createCourse(t, db, 8)
	third := createCourse(t, db, 8)
	_, err := AddCourseToProgram(db, cat.program.ID, second.ID)
	require.NoError(t, err)
	_, err = AddCourseToProgram(db, cat.program.ID, third.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveCourseFromProgram(db, cat.program.ID, second.ID))

	orders := programOrders(t, db, cat.program.ID)
	require.Equal(t, 1, orders[cat.course.ID])
	require.Equal(t, 2, orders[third.ID])
}

func TestRemoveCourseBlockedByClasses(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	createClass(t, db, cat.programCourse.ID, classModels.ClassDraft)

	err := RemoveCourseFromProgram(db, cat.program.ID, cat.course.ID)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestReorderProgramCourse(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	second := createCourse(t, db, 8)
	third := createCourse(t, db, 8)
	_, err := AddCourseToProgram(db, cat.program.ID, second.ID)
	require.NoError(t, err)
	_, err = AddCourseToProgram(db, cat.program.ID, third.ID)
	require.NoError(t, err)

	// move the last course to the front
	require.NoError(t, ReorderProgramCourse(db, cat.program.ID, third.ID, 1))

	orders := programOrders(t, db, cat.program.ID)
	require.Equal(t, 1, orders[third.ID])
	require.Equal(t, 2, orders[cat.course.ID])
	require.Equal(t, 3, orders[second.ID])

	// and back down
	require.NoError(t, ReorderProgramCourse(db, cat.program.ID, third.ID, 3))

	orders = programOrders(t, db, cat.program.ID)
	require.Equal(t, 1, orders[cat.course.ID])
	require.Equal(t, 2, orders[second.ID])
	require.Equal(t, 3, orders[third.ID])
}

func TestReorderRejectsOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	require.ErrorIs(t, ReorderProgramCourse(db, cat.program.ID, cat.course.ID, 0), ErrValidation)
	require.ErrorIs(t, ReorderProgramCourse(db, cat.program.ID, cat.course.ID, 2), ErrValidation)
}

func TestReorderUnknownCourse(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)

	require.ErrorIs(t, ReorderProgramCourse(db, cat.program.ID, 9999, 1), ErrNotFound)
}
