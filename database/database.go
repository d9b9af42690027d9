package database

import (
	"fmt"
	"log"
	"os"

	"lssctc/models"
	classModels "lssctc/models/class"
	courseModels "lssctc/models/course"
	practiceModels "lssctc/models/practice"
	programModels "lssctc/models/program"
	progressModels "lssctc/models/progress"
	supportModels "lssctc/models/support"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)

	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&programModels.TrainingProgram{},
		&programModels.ProgramCourse{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.CourseSection{},
		&courseModels.Activity{},
		&courseModels.SectionActivity{},
		&classModels.Class{},
		&classModels.ClassInstructor{},
		&classModels.Enrollment{},
		&progressModels.LearningProgress{},
		&progressModels.SectionRecord{},
		&progressModels.ActivityRecord{},
		&progressModels.ActivitySession{},
		&practiceModels.Practice{},
		&practiceModels.PracticeStep{},
		&practiceModels.PracticeAttempt{},
		&practiceModels.PracticeStepResult{},
		&practiceModels.Quiz{},
		&practiceModels.QuizQuestion{},
		&practiceModels.QuizOption{},
		&practiceModels.QuizAttempt{},
		&practiceModels.QuizAnswer{},
		&supportModels.Ticket{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
