package util

import "errors"

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrEmailRegistered  = errors.New("User already exists")
	ErrIncorrectPass    = errors.New("Incorrect password")
	ErrQuizNotFound     = errors.New("Quiz not found")
	ErrQuizIDRequired   = errors.New("Quiz ID is required")
	ErrAnswersRequired  = errors.New("Answers must be an array and cannot be empty")
	ErrAlreadyAttempted = errors.New("You have already attempted this quiz. Please choose a different quiz.")
)

// Quiz shape validation failures. These are the only errors the authoring
// endpoints echo back verbatim with a 400; anything else is treated as an
// internal failure.
var (
	ErrTitleTooShort   = errors.New("Title must be at least 4 characters")
	ErrNoQuestions     = errors.New("Quiz must have at least one question")
	ErrEmptyQuestion   = errors.New("Question text cannot be empty")
	ErrTooFewOptions   = errors.New("Each question must have at least 2 options")
	ErrEmptyOptionText = errors.New("Option text cannot be empty")
	ErrNoCorrectOption = errors.New("Each question must have a correct option")
)

var quizValidationErrors = []error{
	ErrTitleTooShort,
	ErrNoQuestions,
	ErrEmptyQuestion,
	ErrTooFewOptions,
	ErrEmptyOptionText,
	ErrNoCorrectOption,
}

func IsQuizValidationError(err error) bool {
	for _, v := range quizValidationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
