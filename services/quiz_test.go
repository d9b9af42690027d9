package services

import (
	"encoding/json"
	"testing"

	practiceModels "lssctc/models/practice"
	progressModels "lssctc/models/progress"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type quizFixture struct {
	quiz practiceModels.Quiz

	single        practiceModels.QuizQuestion
	singleCorrect practiceModels.QuizOption
	singleWrong   practiceModels.QuizOption

	multi       practiceModels.QuizQuestion
	multiA      practiceModels.QuizOption
	multiB      practiceModels.QuizOption
	multiWrong  practiceModels.QuizOption
}

// buildQuiz attaches a two-question quiz to the activity: one single-answer
// question and one multi-answer question. PassThreshold is 70, so passing
// requires both questions correct.
func buildQuiz(t *testing.T, db *gorm.DB, activityID uint) *quizFixture {
	t.Helper()

	f := &quizFixture{
		quiz: practiceModels.Quiz{ActivityID: activityID, Name: "Safety Quiz", PassThreshold: 70},
	}
	require.NoError(t, db.Create(&f.quiz).Error)

	f.single = practiceModels.QuizQuestion{QuizID: f.quiz.ID, QuestionText: "Q1", OrderIndex: 1}
	f.multi = practiceModels.QuizQuestion{QuizID: f.quiz.ID, QuestionText: "Q2", OrderIndex: 2}
	require.NoError(t, db.Create(&f.single).Error)
	require.NoError(t, db.Create(&f.multi).Error)

	f.singleCorrect = practiceModels.QuizOption{QuestionID: f.single.ID, OptionText: "right", IsCorrect: true}
	f.singleWrong = practiceModels.QuizOption{QuestionID: f.single.ID, OptionText: "wrong"}
	f.multiA = practiceModels.QuizOption{QuestionID: f.multi.ID, OptionText: "a", IsCorrect: true}
	f.multiB = practiceModels.QuizOption{QuestionID: f.multi.ID, OptionText: "b", IsCorrect: true}
	f.multiWrong = practiceModels.QuizOption{QuestionID: f.multi.ID, OptionText: "c"}
	for _, opt := range []*practiceModels.QuizOption{&f.singleCorrect, &f.singleWrong, &f.multiA, &f.multiB, &f.multiWrong} {
		require.NoError(t, db.Create(opt).Error)
	}
	return f
}

func TestSubmitQuizAllCorrectPassesAndCompletes(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)
	openSessionForActivity(t, db, cls.ID, cat.quiz.ID)

	result, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleCorrect.ID}},
		{QuestionID: f.multi.ID, SelectedOptionIDs: []uint{f.multiA.ID, f.multiB.ID}},
	})
	require.NoError(t, err)
	require.True(t, result.IsPassed)
	require.Equal(t, 2, result.CorrectAnswers)
	require.EqualValues(t, 100, result.Attempt.Score)

	// the pass auto-completed the activity
	record, err := findActivityRecord(db, enrollment.ID, cat.quiz.ID)
	require.NoError(t, err)
	require.True(t, record.IsCompleted)
}

func TestSubmitQuizPartialSelectionIsWrong(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)
	openSessionForActivity(t, db, cls.ID, cat.quiz.ID)

	// selecting only one of the two correct options scores zero for Q2
	result, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleCorrect.ID}},
		{QuestionID: f.multi.ID, SelectedOptionIDs: []uint{f.multiA.ID}},
	})
	require.NoError(t, err)
	require.False(t, result.IsPassed)
	require.Equal(t, 1, result.CorrectAnswers)
	require.EqualValues(t, 50, result.Attempt.Score)

	record, err := findActivityRecord(db, enrollment.ID, cat.quiz.ID)
	require.NoError(t, err)
	require.False(t, record.IsCompleted)
}

func TestSubmitQuizSupersetSelectionIsWrong(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)
	openSessionForActivity(t, db, cls.ID, cat.quiz.ID)

	result, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleCorrect.ID, f.singleWrong.ID}},
		{QuestionID: f.multi.ID, SelectedOptionIDs: []uint{f.multiA.ID, f.multiB.ID, f.multiWrong.ID}},
	})
	require.NoError(t, err)
	require.Equal(t, 0, result.CorrectAnswers)
}

func TestSubmitQuizRepeatedSelectionIsWrong(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)
	openSessionForActivity(t, db, cls.ID, cat.quiz.ID)

	// repeating one correct option does not stand in for the other
	result, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.multi.ID, SelectedOptionIDs: []uint{f.multiA.ID, f.multiA.ID}},
	})
	require.NoError(t, err)
	require.Equal(t, 0, result.CorrectAnswers)
	require.False(t, result.IsPassed)

	// duplicates alongside the full correct set are harmless
	result, err = SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleCorrect.ID}},
		{QuestionID: f.multi.ID, SelectedOptionIDs: []uint{f.multiA.ID, f.multiA.ID, f.multiB.ID}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.CorrectAnswers)
	require.True(t, result.IsPassed)
}

func TestSubmitQuizNumbersAttempts(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)
	openSessionForActivity(t, db, cls.ID, cat.quiz.ID)

	wrong := []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleWrong.ID}},
	}
	first, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, wrong)
	require.NoError(t, err)
	require.Equal(t, 1, first.Attempt.AttemptNumber)

	second, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, wrong)
	require.NoError(t, err)
	require.Equal(t, 2, second.Attempt.AttemptNumber)

	// answers are persisted per attempt
	var answerCount int64
	db.Model(&practiceModels.QuizAnswer{}).Count(&answerCount)
	require.EqualValues(t, 4, answerCount)
}

func TestSubmitQuizRequiresOpenSession(t *testing.T) {
	db := setupTestDB(t)
	cat, _, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)

	_, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleCorrect.ID}},
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestQuizPassRecalculatesProgress(t *testing.T) {
	db := setupTestDB(t)
	cat, cls, enrollment := startedClass(t, db)
	f := buildQuiz(t, db, cat.quiz.ID)
	openSessionForActivity(t, db, cls.ID, cat.quiz.ID)

	_, err := SubmitQuizAttempt(db, enrollment.ID, f.quiz.ID, []QuizAnswerInput{
		{QuestionID: f.single.ID, SelectedOptionIDs: []uint{f.singleCorrect.ID}},
		{QuestionID: f.multi.ID, SelectedOptionIDs: []uint{f.multiA.ID, f.multiB.ID}},
	})
	require.NoError(t, err)

	var lp progressModels.LearningProgress
	require.NoError(t, db.Where("enrollment_id = ?", enrollment.ID).First(&lp).Error)
	require.InDelta(t, 100.0/3.0, lp.ProgressPercentage, 0.01)
}

func TestGetQuizStripsCorrectFlags(t *testing.T) {
	db := setupTestDB(t)
	cat := buildCatalog(t, db)
	buildQuiz(t, db, cat.quiz.ID)

	payload, err := GetQuizForActivity(db, cat.quiz.ID)
	require.NoError(t, err)

	questions, ok := payload["questions"].([]QuizQuestionView)
	require.True(t, ok)
	require.Len(t, questions, 2)
	require.Len(t, questions[0].Options, 2)

	serialized, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NotContains(t, string(serialized), "is_correct")

	// the strip is response-only, the rows keep their flags
	var option practiceModels.QuizOption
	require.NoError(t, db.Where("is_correct = ?", true).First(&option).Error)
	require.True(t, option.IsCorrect)
}
