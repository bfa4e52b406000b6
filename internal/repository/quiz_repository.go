package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("id = ?", id).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// UpdateFields overwrites only the addressed columns. Last write wins, there
// is no optimistic-concurrency token.
func (r *QuizRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Quiz{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *QuizRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Quiz{}).Error
}

func (r *QuizRepository) CountByCreator(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).
		Where("created_by = ?", userID).
		Count(&count).Error
	return count, err
}
