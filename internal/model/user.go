package model

// User is an account that can author quizzes and take quizzes created by
// others. TotalScore is the running sum of correct answers across every quiz
// the user has completed; it is only ever mutated through an atomic increment
// in the scoring flow.
type User struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:100;unique;not null" json:"email"`
	Password   string `gorm:"size:100;not null" json:"-"`
	IsLogin    bool   `gorm:"default:false" json:"isLogin"`
	TotalScore int    `gorm:"default:0" json:"totalScore"`
}

func (User) TableName() string {
	return "users"
}
