package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"lssctc/database"
	"lssctc/models"
	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"
	programModels "lssctc/models/program"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDBSeq  int64
	testRowSeq int64
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func nextSeq() int64 {
	return atomic.AddInt64(&testRowSeq, 1)
}

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:     fmt.Sprintf("User %d", nextSeq()),
		Email:    fmt.Sprintf("user%d@example.com", nextSeq()),
		Role:     role,
		Password: "hashed-password",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// catalog is a minimal program/course/section/activity tree: one course in
// one program, one section holding a MATERIAL, a PRACTICE and a QUIZ
// activity at orders 1..3.
type catalog struct {
	program       programModels.TrainingProgram
	course        courseModels.Course
	programCourse programModels.ProgramCourse
	section       courseModels.Section
	material      courseModels.Activity
	practice      courseModels.Activity
	quiz          courseModels.Activity
}

func buildCatalog(t *testing.T, db *gorm.DB) *catalog {
	t.Helper()

	cat := &catalog{
		program: programModels.TrainingProgram{Name: "Crane Operator Program", IsActive: true},
		course:  courseModels.Course{Name: "Tower Crane Basics", Level: "BASIC", DurationHours: 40, IsActive: true},
		section: courseModels.Section{Name: "Safety Fundamentals"},
	}
	require.NoError(t, db.Create(&cat.program).Error)
	require.NoError(t, db.Create(&cat.course).Error)
	require.NoError(t, db.Create(&cat.section).Error)

	cat.programCourse = programModels.ProgramCourse{
		ProgramID:   cat.program.ID,
		CourseID:    cat.course.ID,
		CourseOrder: 1,
	}
	require.NoError(t, db.Create(&cat.programCourse).Error)
	require.NoError(t, db.Create(&courseModels.CourseSection{
		CourseID:     cat.course.ID,
		SectionID:    cat.section.ID,
		SectionOrder: 1,
	}).Error)

	cat.material = courseModels.Activity{Name: "Intro Video", ActivityType: courseModels.ActivityMaterial}
	cat.practice = courseModels.Activity{Name: "Lift Simulation", ActivityType: courseModels.ActivityPractice}
	cat.quiz = courseModels.Activity{Name: "Safety Quiz", ActivityType: courseModels.ActivityQuiz}
	require.NoError(t, db.Create(&cat.material).Error)
	require.NoError(t, db.Create(&cat.practice).Error)
	require.NoError(t, db.Create(&cat.quiz).Error)

	for i, activity := range []courseModels.Activity{cat.material, cat.practice, cat.quiz} {
		require.NoError(t, db.Create(&courseModels.SectionActivity{
			SectionID:     cat.section.ID,
			ActivityID:    activity.ID,
			ActivityOrder: i + 1,
		}).Error)
	}
	return cat
}

// createClass inserts a class directly with the given status. The dates
// bracket the current time so session windows derived from them are open.
func createClass(t *testing.T, db *gorm.DB, programCourseID uint, status string) *classModels.Class {
	t.Helper()

	cls := classModels.Class{
		ProgramCourseID: programCourseID,
		ClassCode:       fmt.Sprintf("CL-%d", nextSeq()),
		Capacity:        10,
		StartDate:       time.Now().Add(-24 * time.Hour),
		EndDate:         time.Now().Add(7 * 24 * time.Hour),
		Status:          status,
	}
	require.NoError(t, db.Create(&cls).Error)
	return &cls
}

func createEnrollment(t *testing.T, db *gorm.DB, traineeID, classID uint, status string) *classModels.Enrollment {
	t.Helper()

	enrollment := classModels.Enrollment{
		TraineeID: traineeID,
		ClassID:   classID,
		Status:    status,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &enrollment
}

func assignTestInstructor(t *testing.T, db *gorm.DB, classID uint) *models.User {
	t.Helper()

	instructor := createUser(t, db, models.RoleInstructor)
	require.NoError(t, db.Create(&classModels.ClassInstructor{
		ClassID:      classID,
		InstructorID: instructor.ID,
	}).Error)
	return instructor
}

func createExtraActivity(t *testing.T, db *gorm.DB) *courseModels.Activity {
	t.Helper()

	activity := courseModels.Activity{
		Name:         fmt.Sprintf("Extra Activity %d", nextSeq()),
		ActivityType: courseModels.ActivityMaterial,
	}
	require.NoError(t, db.Create(&activity).Error)
	return &activity
}

// openSessionForActivity activates an activity's session with no time bounds
func openSessionForActivity(t *testing.T, db *gorm.DB, classID, activityID uint) {
	t.Helper()

	_, err := UpdateActivitySession(db, classID, activityID, UpdateSessionInput{IsActive: true})
	require.NoError(t, err)
}

// startedClass runs the full start flow: catalog, OPEN class, instructor,
// one ENROLLED trainee, then StartClass. Returns the running class and the
// trainee's (now INPROGRESS) enrollment.
func startedClass(t *testing.T, db *gorm.DB) (*catalog, *classModels.Class, *classModels.Enrollment) {
	t.Helper()

	cat := buildCatalog(t, db)
	cls := createClass(t, db, cat.programCourse.ID, classModels.ClassOpen)
	assignTestInstructor(t, db, cls.ID)

	trainee := createUser(t, db, models.RoleTrainee)
	enrollment := createEnrollment(t, db, trainee.ID, cls.ID, classModels.EnrollmentEnrolled)

	_, err := StartClass(db, cls.ID)
	require.NoError(t, err)

	require.NoError(t, db.First(enrollment, enrollment.ID).Error)
	require.NoError(t, db.First(cls, cls.ID).Error)
	return cat, cls, enrollment
}
