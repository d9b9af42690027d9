package services

import (
	"encoding/json"

	classModels "lssctc/models/class"
	practiceModels "lssctc/models/practice"

	"gorm.io/gorm"
)

// QuizAnswerInput is one submitted answer: the selected option IDs for a
// question.
type QuizAnswerInput struct {
	QuestionID        uint   `json:"question_id"`
	SelectedOptionIDs []uint `json:"selected_option_ids"`
}

// QuizResult is the scored outcome returned to the trainee
type QuizResult struct {
	Attempt        practiceModels.QuizAttempt `json:"attempt"`
	CorrectAnswers int                        `json:"correct_answers"`
	TotalQuestions int                        `json:"total_questions"`
	IsPassed       bool                       `json:"is_passed"`
}

// SubmitQuizAttempt scores a quiz submission for an enrollment. A question
// counts as correct only when the selected option set equals the correct
// option set. Passing the threshold auto-completes the activity and runs
// the progress recalculation.
func SubmitQuizAttempt(db *gorm.DB, enrollmentID, quizID uint, answers []QuizAnswerInput) (*QuizResult, error) {
	var quiz practiceModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return nil, notFoundf("quiz %d", quizID)
	}

	var enrollment classModels.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return nil, notFoundf("enrollment %d", enrollmentID)
	}
	if enrollment.Status != classModels.EnrollmentInprogress {
		return nil, invalidOpf("enrollment %d is %s, quizzes require an INPROGRESS enrollment", enrollmentID, enrollment.Status)
	}

	if err := CheckActivityAccess(db, enrollment.ClassID, quiz.ActivityID); err != nil {
		return nil, err
	}

	record, err := findActivityRecord(db, enrollmentID, quiz.ActivityID)
	if err != nil {
		return nil, err
	}

	var questions []practiceModels.QuizQuestion
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, invalidOpf("quiz %d has no questions", quizID)
	}

	answersByQuestion := make(map[uint][]uint, len(answers))
	for _, answer := range answers {
		answersByQuestion[answer.QuestionID] = answer.SelectedOptionIDs
	}

	var attemptCount int64
	db.Model(&practiceModels.QuizAttempt{}).
		Where("activity_record_id = ? AND quiz_id = ?", record.ID, quizID).
		Count(&attemptCount)

	correct := 0
	var answerRows []practiceModels.QuizAnswer
	for _, question := range questions {
		var correctOptions []practiceModels.QuizOption
		db.Where("question_id = ? AND is_correct = ? AND is_deleted = ?", question.ID, true, false).
			Find(&correctOptions)

		correctIDs := make(map[uint]bool, len(correctOptions))
		for _, opt := range correctOptions {
			correctIDs[opt.ID] = true
		}

		selected := answersByQuestion[question.ID]
		selectedIDs := make(map[uint]bool, len(selected))
		for _, id := range selected {
			selectedIDs[id] = true
		}
		matched := 0
		for id := range selectedIDs {
			if correctIDs[id] {
				matched++
			}
		}
		isCorrect := matched == len(correctIDs) && len(selectedIDs) == len(correctIDs) && len(correctIDs) > 0
		if isCorrect {
			correct++
		}

		selectedJSON, _ := json.Marshal(selected)
		answerRows = append(answerRows, practiceModels.QuizAnswer{
			QuestionID:      question.ID,
			SelectedOptions: string(selectedJSON),
			IsCorrect:       isCorrect,
		})
	}

	score := float64(correct) / float64(len(questions)) * 100
	passed := score >= quiz.PassThreshold

	attempt := practiceModels.QuizAttempt{
		ActivityRecordID: record.ID,
		QuizID:           quizID,
		AttemptNumber:    int(attemptCount) + 1,
		Score:            score,
		IsPassed:         passed,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		for i := range answerRows {
			answerRows[i].QuizAttemptID = attempt.ID
			if err := tx.Create(&answerRows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if passed && !record.IsCompleted {
		if _, err := CompleteActivity(db, enrollmentID, quiz.ActivityID); err != nil {
			return nil, err
		}
	}

	return &QuizResult{
		Attempt:        attempt,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		IsPassed:       passed,
	}, nil
}

// QuizOptionView is an option as served to a trainee. It carries no correct
// flag at all.
type QuizOptionView struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	OrderIndex int    `json:"order_index"`
}

// QuizQuestionView is a question with its selectable options
type QuizQuestionView struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"question_text"`
	OrderIndex   int              `json:"order_index"`
	Options      []QuizOptionView `json:"options"`
}

// GetQuizForActivity loads the quiz behind an activity with its questions
// and options, projected into views that never expose the correct answers.
func GetQuizForActivity(db *gorm.DB, activityID uint) (map[string]interface{}, error) {
	var quiz practiceModels.Quiz
	if err := db.Where("activity_id = ? AND is_deleted = ?", activityID, false).First(&quiz).Error; err != nil {
		return nil, notFoundf("quiz for activity %d", activityID)
	}

	var questions []practiceModels.QuizQuestion
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	result := make([]QuizQuestionView, len(questions))
	for i, question := range questions {
		var options []practiceModels.QuizOption
		db.Where("question_id = ? AND is_deleted = ?", question.ID, false).
			Order("order_index asc").Find(&options)

		views := make([]QuizOptionView, len(options))
		for j, opt := range options {
			views[j] = QuizOptionView{
				ID:         opt.ID,
				OptionText: opt.OptionText,
				OrderIndex: opt.OrderIndex,
			}
		}
		result[i] = QuizQuestionView{
			ID:           question.ID,
			QuestionText: question.QuestionText,
			OrderIndex:   question.OrderIndex,
			Options:      views,
		}
	}

	return map[string]interface{}{
		"quiz":      quiz,
		"questions": result,
	}, nil
}
