package repository

import (
	"quizhub_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetLoginState(userID uint, isLogin bool) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("is_login", isLogin).
		Error
}

// IncrementTotalScore is an atomic add, so concurrent scorings of different
// quizzes by the same user compose without a lost update.
func (r *UserRepository) IncrementTotalScore(userID uint, delta int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("total_score", gorm.Expr("total_score + ?", delta)).
		Error
}

// UserWithQuizCount is one row of the directory listing: the user plus how
// many quizzes they authored.
type UserWithQuizCount struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsLogin    bool   `json:"isLogin"`
	TotalScore int    `json:"totalScore"`
	QuizCount  int    `json:"quizCount"`
}

// ListWithQuizCounts aggregates authored-quiz counts for every user, ordered
// by total score descending with insertion order as the tiebreak.
func (r *UserRepository) ListWithQuizCounts() ([]UserWithQuizCount, error) {
	var rows []UserWithQuizCount
	err := r.DB.Model(&model.User{}).
		Select("users.id, users.name, users.email, users.is_login, users.total_score, COUNT(quizzes.id) AS quiz_count").
		Joins("LEFT JOIN quizzes ON quizzes.created_by = users.id AND quizzes.deleted_at IS NULL").
		Group("users.id").
		Order("users.total_score DESC, users.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
