package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Option is one choice of a question. IsCorrect marks the intended answer;
// scoring takes the first option with the flag set.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type Question struct {
	QuestionText string   `json:"questionText"`
	Options      []Option `json:"options"`
}

// QuestionList is stored as a single JSON column, keeping the question and
// option order exactly as authored.
type QuestionList []Question

func (q QuestionList) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for QuestionList", value)
	}

	return json.Unmarshal(data, q)
}

type Quiz struct {
	UUIDBase
	Title     string       `gorm:"size:255;not null" json:"title"`
	Questions QuestionList `gorm:"type:json" json:"questions"`
	CreatedBy uint         `gorm:"index;not null" json:"createdBy"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
