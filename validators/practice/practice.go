package practiceValidator

import (
	"strings"

	"lssctc/middleware"
	"lssctc/services"

	"github.com/gofiber/fiber/v2"
)

// PracticeSubmitRequest carries the reported step outcomes of one run
type PracticeSubmitRequest struct {
	Steps []services.PracticeStepInput `json:"steps"`
}

func PracticeSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PracticeSubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Steps) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"steps": "At least one step result is required!"})
		}

		c.Locals("validatedPracticeSubmit", reqData)
		return c.Next()
	}
}

// QuizSubmitRequest carries the selected options of one quiz run
type QuizSubmitRequest struct {
	Answers []services.QuizAnswerInput `json:"answers"`
}

func QuizSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizSubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"answers": "At least one answer is required!"})
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}

// PracticeDefinitionRequest creates a practice with its steps
type PracticeDefinitionRequest struct {
	ActivityID  uint   `json:"activity_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxAttempts int    `json:"max_attempts"`
	Steps       []struct {
		Instruction    string `json:"instruction"`
		ExpectedResult string `json:"expected_result"`
		IsRequired     *bool  `json:"is_required"`
	} `json:"steps"`
}

func PracticeDefinition() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PracticeDefinitionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.ActivityID == 0 {
			errors["activity_id"] = "Activity ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if len(reqData.Steps) == 0 {
			errors["steps"] = "At least one step is required!"
		}
		for _, step := range reqData.Steps {
			if strings.TrimSpace(step.Instruction) == "" {
				errors["steps"] = "Every step needs an instruction!"
				break
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPracticeDefinition", reqData)
		return c.Next()
	}
}

// QuizDefinitionRequest creates a quiz with its questions and options
type QuizDefinitionRequest struct {
	ActivityID    uint    `json:"activity_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PassThreshold float64 `json:"pass_threshold"`
	Questions     []struct {
		QuestionText string `json:"question_text"`
		Options      []struct {
			OptionText string `json:"option_text"`
			IsCorrect  bool   `json:"is_correct"`
		} `json:"options"`
	} `json:"questions"`
}

func QuizDefinition() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizDefinitionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.ActivityID == 0 {
			errors["activity_id"] = "Activity ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.PassThreshold < 0 || reqData.PassThreshold > 100 {
			errors["pass_threshold"] = "Pass threshold must be between 0 and 100!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for _, question := range reqData.Questions {
			if len(question.Options) < 2 {
				errors["questions"] = "Every question needs at least two options!"
				break
			}
			hasCorrect := false
			for _, option := range question.Options {
				if option.IsCorrect {
					hasCorrect = true
				}
			}
			if !hasCorrect {
				errors["questions"] = "Every question needs a correct option!"
				break
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizDefinition", reqData)
		return c.Next()
	}
}
