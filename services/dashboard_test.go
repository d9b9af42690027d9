package services

import (
	"testing"

	classModels "lssctc/models/class"

	"github.com/stretchr/testify/require"
)

func TestAdminDashboardSummary(t *testing.T) {
	db := setupTestDB(t)
	_, cls, _ := startedClass(t, db)

	summary, err := AdminDashboardSummary(db)
	require.NoError(t, err)
	require.EqualValues(t, 1, summary["total_programs"])
	require.EqualValues(t, 1, summary["total_courses"])
	require.EqualValues(t, 1, summary["total_trainees"])
	require.EqualValues(t, 1, summary["total_instructors"])

	classes := summary["classes_by_status"].(map[string]int64)
	require.EqualValues(t, 1, classes[cls.Status])

	enrollments := summary["enrollments_by_status"].(map[string]int64)
	require.EqualValues(t, 1, enrollments[classModels.EnrollmentInprogress])
}

func TestPopularCoursesRanking(t *testing.T) {
	db := setupTestDB(t)
	cat, _, _ := startedClass(t, db)

	courses, err := PopularCourses(db, 5)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, cat.course.ID, courses[0].CourseID)
	require.EqualValues(t, 1, courses[0].EnrollmentCount)
}

func TestActiveTraineesCountsCompletedActivities(t *testing.T) {
	db := setupTestDB(t)
	cat, _, enrollment := startedClass(t, db)

	trainees, err := ActiveTrainees(db, 5)
	require.NoError(t, err)
	require.Empty(t, trainees)

	_, err = CompleteActivity(db, enrollment.ID, cat.material.ID)
	require.NoError(t, err)

	trainees, err = ActiveTrainees(db, 5)
	require.NoError(t, err)
	require.Len(t, trainees, 1)
	require.Equal(t, enrollment.TraineeID, trainees[0].TraineeID)
	require.EqualValues(t, 1, trainees[0].CompletedActivities)
}

func TestInstructorDashboard(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)

	var assignment classModels.ClassInstructor
	require.NoError(t, db.Where("class_id = ?", cls.ID).First(&assignment).Error)

	rows, err := InstructorDashboard(db, assignment.InstructorID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, cls.ID, rows[0].ClassID)
	require.EqualValues(t, 1, rows[0].EnrollmentCount)
	require.EqualValues(t, 0, rows[0].AverageProgress)

	_, err = CompleteActivity(db, enrollment.ID, cat.material.ID)
	require.NoError(t, err)

	rows, err = InstructorDashboard(db, assignment.InstructorID)
	require.NoError(t, err)
	require.InDelta(t, 100.0/3.0, rows[0].AverageProgress, 0.01)
}
