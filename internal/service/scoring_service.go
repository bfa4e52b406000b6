package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"

	"gorm.io/gorm"
)

type ScoringService struct {
	AttemptRepo *repository.AttemptRepository
	QuizRepo    *repository.QuizRepository
	Directory   *DirectoryService
	DB          *gorm.DB
}

func NewScoringService(attemptRepo *repository.AttemptRepository, quizRepo *repository.QuizRepository, directory *DirectoryService, db *gorm.DB) *ScoringService {
	return &ScoringService{
		AttemptRepo: attemptRepo,
		QuizRepo:    quizRepo,
		Directory:   directory,
		DB:          db,
	}
}

type ScoreResult struct {
	Score     int      `json:"score"`
	Questions int      `json:"questions"`
	Feedback  []string `json:"feedback"`
}

// Score grades a submission against the stored answer key and records the
// one-time attempt.
//
// The check order is part of the contract: the prior-attempt check runs
// before the answers payload is validated, so a malformed resubmission
// against an already-attempted quiz still reports "already attempted".
// hasAnswers is false when the answers field was absent or not an array. An
// empty array is a valid submission that scores zero and still burns the
// attempt.
//
// Submitted answers are 1-based option positions. Per question the correct
// index is the first option flagged correct; a question with no flagged
// option is never matchable. Missing trailing answers score as incorrect,
// extra entries beyond the question count are ignored.
func (s *ScoringService) Score(userID uint, quizID string, answers []int, hasAnswers bool) (*ScoreResult, error) {
	if quizID == "" {
		return nil, util.ErrQuizIDRequired
	}

	if _, err := s.AttemptRepo.FindByUserAndQuiz(userID, quizID); err == nil {
		return nil, util.ErrAlreadyAttempted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !hasAnswers {
		return nil, util.ErrAnswersRequired
	}

	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	score := 0
	feedback := make([]string, 0, len(quiz.Questions))

	for i, question := range quiz.Questions {
		correctIndex := -1
		for j, opt := range question.Options {
			if opt.IsCorrect {
				correctIndex = j
				break
			}
		}

		answered := i < len(answers)
		if correctIndex >= 0 && answered && answers[i]-1 == correctIndex {
			score++
			feedback = append(feedback, fmt.Sprintf("Question %d: Correct", i+1))
		} else {
			feedback = append(feedback, fmt.Sprintf("Question %d: Incorrect, correct answer is option %d", i+1, correctIndex+1))
		}
	}

	// The attempt insert and the score increment commit together. The
	// composite unique index turns a concurrent duplicate into
	// ErrDuplicatedKey and rolls the increment back, so a double submit can
	// never double-count.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewUserRepository(tx).IncrementTotalScore(userID, score); err != nil {
			return err
		}

		attempt := &model.Attempt{
			UserID: userID,
			QuizID: quizID,
			Date:   time.Now(),
		}
		return tx.Create(attempt).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyAttempted
		}
		return nil, err
	}

	s.Directory.InvalidateLeaderboard(context.Background())

	return &ScoreResult{
		Score:     score,
		Questions: len(quiz.Questions),
		Feedback:  feedback,
	}, nil
}
