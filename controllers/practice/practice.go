package practiceControllers

import (
	"lssctc/database"
	"lssctc/middleware"
	classModels "lssctc/models/class"
	practiceModels "lssctc/models/practice"
	"lssctc/services"
	"lssctc/utils"
	practiceValidator "lssctc/validators/practice"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetPractice(c *fiber.Ctx) error {
	activityID, err := c.ParamsInt("activityId")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	practice, err := services.GetPracticeForActivity(database.Database.Db, uint(activityID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Practice fetched successfully!", practice)
}

func GetQuiz(c *fiber.Ctx) error {
	activityID, err := c.ParamsInt("activityId")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	quiz, err := services.GetQuizForActivity(database.Database.Db, uint(activityID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

func SubmitPractice(c *fiber.Ctx) error {
	enrollment, errResp := ownedEnrollment(c)
	if enrollment == nil {
		return errResp
	}

	practiceID, err := c.ParamsInt("practiceId")
	if err != nil || practiceID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid practice ID!", nil)
	}

	reqData, ok := c.Locals("validatedPracticeSubmit").(*practiceValidator.PracticeSubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.SubmitPracticeAttempt(database.Database.Db, enrollment.ID, uint(practiceID), reqData.Steps)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	go utils.NotifySimulator(utils.PracticeResultPayload{
		EnrollmentID: enrollment.ID,
		PracticeID:   uint(practiceID),
		Attempt:      result.Attempt.AttemptNumber,
		Score:        result.Attempt.Score,
		IsPassed:     result.IsPassed,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Practice attempt recorded!", result)
}

func SubmitQuiz(c *fiber.Ctx) error {
	enrollment, errResp := ownedEnrollment(c)
	if enrollment == nil {
		return errResp
	}

	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmit").(*practiceValidator.QuizSubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.SubmitQuizAttempt(database.Database.Db, enrollment.ID, uint(quizID), reqData.Answers)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz attempt recorded!", result)
}

// CreatePractice sets up a practice definition with its ordered steps.
func CreatePractice(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPracticeDefinition").(*practiceValidator.PracticeDefinitionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	practice := practiceModels.Practice{
		ActivityID:  reqData.ActivityID,
		Name:        reqData.Name,
		Description: reqData.Description,
		MaxAttempts: reqData.MaxAttempts,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&practice).Error; err != nil {
			return err
		}
		for i, step := range reqData.Steps {
			required := true
			if step.IsRequired != nil {
				required = *step.IsRequired
			}
			if err := tx.Create(&practiceModels.PracticeStep{
				PracticeID:     practice.ID,
				StepOrder:      i + 1,
				Instruction:    step.Instruction,
				ExpectedResult: step.ExpectedResult,
				IsRequired:     required,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create practice!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Practice created successfully!", practice)
}

// CreateQuiz sets up a quiz definition with its questions and options.
func CreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuizDefinition").(*practiceValidator.QuizDefinitionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := practiceModels.Quiz{
		ActivityID:    reqData.ActivityID,
		Name:          reqData.Name,
		Description:   reqData.Description,
		PassThreshold: reqData.PassThreshold,
	}
	if quiz.PassThreshold == 0 {
		quiz.PassThreshold = 70
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for qi, question := range reqData.Questions {
			row := practiceModels.QuizQuestion{
				QuizID:       quiz.ID,
				QuestionText: question.QuestionText,
				OrderIndex:   qi + 1,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for oi, option := range question.Options {
				if err := tx.Create(&practiceModels.QuizOption{
					QuestionID: row.ID,
					OptionText: option.OptionText,
					IsCorrect:  option.IsCorrect,
					OrderIndex: oi + 1,
				}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// ownedEnrollment loads the :id enrollment and verifies it belongs to the
// caller. When it returns a nil enrollment, the response has already been
// written and the handler should return the accompanying error.
func ownedEnrollment(c *fiber.Ctx) (*classModels.Enrollment, error) {
	traineeID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return nil, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
	}

	var enrollment classModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).
		First(&enrollment).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}
	if enrollment.TraineeID != traineeID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	return &enrollment, nil
}
