package service

import (
	"testing"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuizValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignup(t, "Alice", "alice@example.com")

	tests := []struct {
		name      string
		title     string
		questions []model.Question
	}{
		{"short title", "abc", singleQuestionQuiz()},
		{"no questions", "Maths basics", nil},
		{
			"single option",
			"Maths basics",
			[]model.Question{{QuestionText: "2+2?", Options: []model.Option{{Text: "4", IsCorrect: true}}}},
		},
		{
			"no correct option",
			"Maths basics",
			[]model.Question{{QuestionText: "2+2?", Options: []model.Option{{Text: "3"}, {Text: "5"}}}},
		},
		{
			"empty option text",
			"Maths basics",
			[]model.Question{{QuestionText: "2+2?", Options: []model.Option{{Text: ""}, {Text: "4", IsCorrect: true}}}},
		},
		{
			"empty question text",
			"Maths basics",
			[]model.Question{{QuestionText: "  ", Options: []model.Option{{Text: "3"}, {Text: "4", IsCorrect: true}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.quiz.Create(user.ID, tt.title, tt.questions)
			require.Error(t, err)
			// Shape failures must be recognizable so the handlers can tell
			// them apart from storage errors.
			assert.True(t, util.IsQuizValidationError(err))
		})
	}
}

func TestCreateAndGetQuizRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignup(t, "Alice", "alice@example.com")

	questions := []model.Question{
		{
			QuestionText: "Capital of France?",
			Options: []model.Option{
				{Text: "Lyon"},
				{Text: "Paris", IsCorrect: true},
				{Text: "Nice"},
			},
		},
		{
			QuestionText: "2+2?",
			Options: []model.Option{
				{Text: "4", IsCorrect: true},
				{Text: "5"},
			},
		},
	}

	created := env.mustCreateQuiz(t, user.ID, "General knowledge", questions)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, user.ID, created.CreatedBy)

	fetched, err := env.quiz.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "General knowledge", fetched.Title)
	require.Len(t, fetched.Questions, 2)
	assert.Equal(t, questions[0].QuestionText, fetched.Questions[0].QuestionText)
	require.Len(t, fetched.Questions[0].Options, 3)
	assert.Equal(t, "Paris", fetched.Questions[0].Options[1].Text)
	assert.True(t, fetched.Questions[0].Options[1].IsCorrect)
}

func TestGetQuizNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.quiz.Get("missing-id")
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestUpdateQuizPartialFields(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignup(t, "Alice", "alice@example.com")
	quiz := env.mustCreateQuiz(t, user.ID, "Maths basics", singleQuestionQuiz())

	newTitle := "Maths advanced"
	updated, err := env.quiz.Update(quiz.ID, &newTitle, nil)
	require.NoError(t, err)
	assert.Equal(t, "Maths advanced", updated.Title)
	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "2+2?", updated.Questions[0].QuestionText)

	replacement := []model.Question{
		{
			QuestionText: "3*3?",
			Options: []model.Option{
				{Text: "6"},
				{Text: "9", IsCorrect: true},
			},
		},
	}
	updated, err = env.quiz.Update(quiz.ID, nil, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Maths advanced", updated.Title)
	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "3*3?", updated.Questions[0].QuestionText)
}

func TestUpdateQuizNotFound(t *testing.T) {
	env := newTestEnv(t)

	title := "Whatever works"
	_, err := env.quiz.Update("missing-id", &title, nil)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestUpdateQuizRejectsInvalidQuestions(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignup(t, "Alice", "alice@example.com")
	quiz := env.mustCreateQuiz(t, user.ID, "Maths basics", singleQuestionQuiz())

	bad := []model.Question{
		{QuestionText: "2+2?", Options: []model.Option{{Text: "4", IsCorrect: true}}},
	}
	_, err := env.quiz.Update(quiz.ID, nil, bad)
	require.Error(t, err)
	assert.True(t, util.IsQuizValidationError(err))
}

func TestDeleteQuiz(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignup(t, "Alice", "alice@example.com")
	quiz := env.mustCreateQuiz(t, user.ID, "Maths basics", singleQuestionQuiz())

	require.NoError(t, env.quiz.Delete(quiz.ID))

	_, err := env.quiz.Get(quiz.ID)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)

	assert.ErrorIs(t, env.quiz.Delete(quiz.ID), util.ErrQuizNotFound)
}

func TestListQuizzes(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignup(t, "Alice", "alice@example.com")
	env.mustCreateQuiz(t, user.ID, "Quiz one", singleQuestionQuiz())
	env.mustCreateQuiz(t, user.ID, "Quiz two", singleQuestionQuiz())

	quizzes, err := env.quiz.List()
	require.NoError(t, err)
	assert.Len(t, quizzes, 2)
}
