package service

import (
	"fmt"
	"testing"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

// newTestDB opens an isolated in-memory database per test. TranslateError is
// on, same as production, so duplicate-key behavior matches.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Quiz{}, &model.Attempt{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret",
			ExpireTime: time.Hour,
		},
	}
}

type testEnv struct {
	db        *gorm.DB
	users     *repository.UserRepository
	quizzes   *repository.QuizRepository
	attempts  *repository.AttemptRepository
	auth      *AuthService
	quiz      *QuizService
	scoring   *ScoringService
	directory *DirectoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	quizzes := repository.NewQuizRepository(db)
	attempts := repository.NewAttemptRepository(db)

	directory := NewDirectoryService(users, quizzes, nil)

	return &testEnv{
		db:        db,
		users:     users,
		quizzes:   quizzes,
		attempts:  attempts,
		auth:      NewAuthService(users, testConfig()),
		quiz:      NewQuizService(quizzes, directory),
		scoring:   NewScoringService(attempts, quizzes, directory, db),
		directory: directory,
	}
}

func (e *testEnv) mustSignup(t *testing.T, name, email string) *model.User {
	t.Helper()

	user, err := e.auth.Signup(name, email, "password123")
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return user
}

func (e *testEnv) mustCreateQuiz(t *testing.T, userID uint, title string, questions []model.Question) *model.Quiz {
	t.Helper()

	quiz, err := e.quiz.Create(userID, title, questions)
	if err != nil {
		t.Fatalf("create quiz %q: %v", title, err)
	}
	return quiz
}

func singleQuestionQuiz() []model.Question {
	return []model.Question{
		{
			QuestionText: "2+2?",
			Options: []model.Option{
				{Text: "3", IsCorrect: false},
				{Text: "4", IsCorrect: true},
			},
		},
	}
}
