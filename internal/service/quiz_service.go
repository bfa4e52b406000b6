package service

import (
	"context"
	"errors"
	"strings"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo  *repository.QuizRepository
	Directory *DirectoryService
}

func NewQuizService(quizRepo *repository.QuizRepository, directory *DirectoryService) *QuizService {
	return &QuizService{
		QuizRepo:  quizRepo,
		Directory: directory,
	}
}

// ValidateQuiz re-enforces on the server what the authoring client promises:
// a usable title, at least one question, and per question at least two
// options with at least one flagged correct.
func ValidateQuiz(title string, questions []model.Question) error {
	if len(strings.TrimSpace(title)) < 4 {
		return util.ErrTitleTooShort
	}
	if len(questions) == 0 {
		return util.ErrNoQuestions
	}
	for _, q := range questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return util.ErrEmptyQuestion
		}
		if len(q.Options) < 2 {
			return util.ErrTooFewOptions
		}
		hasCorrect := false
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.Text) == "" {
				return util.ErrEmptyOptionText
			}
			if opt.IsCorrect {
				hasCorrect = true
			}
		}
		if !hasCorrect {
			return util.ErrNoCorrectOption
		}
	}
	return nil
}

func (s *QuizService) Create(userID uint, title string, questions []model.Question) (*model.Quiz, error) {
	if err := ValidateQuiz(title, questions); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:     title,
		Questions: questions,
		CreatedBy: userID,
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}

	s.Directory.InvalidateLeaderboard(context.Background())
	return quiz, nil
}

func (s *QuizService) List() ([]model.Quiz, error) {
	return s.QuizRepo.FindAll()
}

func (s *QuizService) Get(id string) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

// Update overwrites only the provided fields, last write wins. There is
// deliberately no ownership check; any caller may edit any quiz.
func (s *QuizService) Update(id string, title *string, questions []model.Question) (*model.Quiz, error) {
	quiz, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if title != nil {
		fields["title"] = *title
	}
	if questions != nil {
		if err := ValidateQuiz(valueOr(title, quiz.Title), questions); err != nil {
			return nil, err
		}
		fields["questions"] = model.QuestionList(questions)
	}

	if len(fields) > 0 {
		if err := s.QuizRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

func (s *QuizService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.QuizRepo.Delete(id); err != nil {
		return err
	}
	s.Directory.InvalidateLeaderboard(context.Background())
	return nil
}

func valueOr(ptr *string, fallback string) string {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
