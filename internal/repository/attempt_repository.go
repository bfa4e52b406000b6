package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) FindByUserAndQuiz(userID uint, quizID string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}
