package model

import "time"

// Attempt records that a user has submitted answers for a quiz. The composite
// unique index is what enforces the one-attempt-per-quiz rule: a second insert
// for the same pair fails with a duplicate-key error even when two submissions
// race past the pre-check.
type Attempt struct {
	BaseModel
	UserID uint      `gorm:"uniqueIndex:idx_user_quiz;not null" json:"userId"`
	QuizID string    `gorm:"uniqueIndex:idx_user_quiz;type:varchar(36);not null" json:"quizId"`
	Date   time.Time `json:"date"`
}

func (Attempt) TableName() string {
	return "attempts"
}
