package services

import (
	"lssctc/models"
	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"
	programModels "lssctc/models/program"
	progressModels "lssctc/models/progress"

	"gorm.io/gorm"
)

// AdminDashboardSummary aggregates the headline counts for the admin view
func AdminDashboardSummary(db *gorm.DB) (map[string]interface{}, error) {
	var totalPrograms, totalCourses, totalTrainees, totalInstructors int64
	db.Model(&programModels.TrainingProgram{}).Where("is_deleted = ?", false).Count(&totalPrograms)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleTrainee, false).Count(&totalTrainees)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleInstructor, false).Count(&totalInstructors)

	classByStatus := make(map[string]int64)
	for _, status := range []string{
		classModels.ClassDraft, classModels.ClassOpen, classModels.ClassInprogress,
		classModels.ClassCompleted, classModels.ClassCancelled,
	} {
		var count int64
		db.Model(&classModels.Class{}).Where("status = ? AND is_deleted = ?", status, false).Count(&count)
		classByStatus[status] = count
	}

	enrollmentByStatus := make(map[string]int64)
	for _, status := range []string{
		classModels.EnrollmentPending, classModels.EnrollmentEnrolled, classModels.EnrollmentInprogress,
		classModels.EnrollmentCompleted, classModels.EnrollmentRejected, classModels.EnrollmentCancelled,
	} {
		var count int64
		db.Model(&classModels.Enrollment{}).Where("status = ? AND is_deleted = ?", status, false).Count(&count)
		enrollmentByStatus[status] = count
	}

	return map[string]interface{}{
		"total_programs":        totalPrograms,
		"total_courses":         totalCourses,
		"total_trainees":        totalTrainees,
		"total_instructors":     totalInstructors,
		"classes_by_status":     classByStatus,
		"enrollments_by_status": enrollmentByStatus,
	}, nil
}

// PopularCourse is one row of the course popularity ranking
type PopularCourse struct {
	CourseID        uint   `json:"course_id"`
	CourseName      string `json:"course_name"`
	EnrollmentCount int64  `json:"enrollment_count"`
}

// PopularCourses ranks courses by live enrollment count across their classes
func PopularCourses(db *gorm.DB, limit int) ([]PopularCourse, error) {
	if limit < 1 {
		limit = 5
	}

	var results []PopularCourse
	err := db.Model(&classModels.Enrollment{}).
		Select("courses.id AS course_id, courses.name AS course_name, COUNT(enrollments.id) AS enrollment_count").
		Joins("JOIN classes ON classes.id = enrollments.class_id").
		Joins("JOIN program_courses ON program_courses.id = classes.program_course_id").
		Joins("JOIN courses ON courses.id = program_courses.course_id").
		Where("enrollments.is_deleted = ? AND enrollments.status NOT IN ?",
			false, []string{classModels.EnrollmentCancelled, classModels.EnrollmentRejected}).
		Group("courses.id, courses.name").
		Order("enrollment_count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ActiveTrainee is one row of the trainee activity ranking
type ActiveTrainee struct {
	TraineeID           uint   `json:"trainee_id"`
	TraineeName         string `json:"trainee_name"`
	CompletedActivities int64  `json:"completed_activities"`
}

// ActiveTrainees ranks trainees by completed activity records
func ActiveTrainees(db *gorm.DB, limit int) ([]ActiveTrainee, error) {
	if limit < 1 {
		limit = 5
	}

	var results []ActiveTrainee
	err := db.Model(&progressModels.ActivityRecord{}).
		Select("users.id AS trainee_id, users.name AS trainee_name, COUNT(activity_records.id) AS completed_activities").
		Joins("JOIN section_records ON section_records.id = activity_records.section_record_id").
		Joins("JOIN learning_progresses ON learning_progresses.id = section_records.learning_progress_id").
		Joins("JOIN enrollments ON enrollments.id = learning_progresses.enrollment_id").
		Joins("JOIN users ON users.id = enrollments.trainee_id").
		Where("activity_records.is_completed = ?", true).
		Group("users.id, users.name").
		Order("completed_activities DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ClassProgressRow pairs a class with its average trainee progress
type ClassProgressRow struct {
	ClassID         uint    `json:"class_id"`
	ClassCode       string  `json:"class_code"`
	Status          string  `json:"status"`
	EnrollmentCount int64   `json:"enrollment_count"`
	AverageProgress float64 `json:"average_progress"`
}

// InstructorDashboard lists the instructor's classes with enrollment and
// progress aggregates.
func InstructorDashboard(db *gorm.DB, instructorID uint) ([]ClassProgressRow, error) {
	var assignments []classModels.ClassInstructor
	if err := db.Where("instructor_id = ? AND is_deleted = ?", instructorID, false).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	rows := make([]ClassProgressRow, 0, len(assignments))
	for _, assignment := range assignments {
		var cls classModels.Class
		if err := db.Where("id = ? AND is_deleted = ?", assignment.ClassID, false).First(&cls).Error; err != nil {
			continue
		}

		row := ClassProgressRow{
			ClassID:   cls.ID,
			ClassCode: cls.ClassCode,
			Status:    cls.Status,
		}
		db.Model(&classModels.Enrollment{}).
			Where("class_id = ? AND is_deleted = ? AND status IN ?", cls.ID, false,
				[]string{classModels.EnrollmentInprogress, classModels.EnrollmentCompleted}).
			Count(&row.EnrollmentCount)
		db.Model(&progressModels.LearningProgress{}).
			Joins("JOIN enrollments ON enrollments.id = learning_progresses.enrollment_id").
			Where("enrollments.class_id = ? AND enrollments.is_deleted = ?", cls.ID, false).
			Select("COALESCE(AVG(learning_progresses.progress_percentage), 0)").
			Scan(&row.AverageProgress)

		rows = append(rows, row)
	}
	return rows, nil
}
