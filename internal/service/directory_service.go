package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "quizhub:leaderboard:users"
	leaderboardCacheTTL = 30 * time.Second
)

// DirectoryService serves the read-only user views: the leaderboard listing,
// per-user detail and the authenticated profile. The listing is the only
// aggregation in the system, so it gets a short-TTL redis cache that the
// write paths invalidate.
type DirectoryService struct {
	UserRepo *repository.UserRepository
	QuizRepo *repository.QuizRepository
	Redis    *redis.Client
}

func NewDirectoryService(userRepo *repository.UserRepository, quizRepo *repository.QuizRepository, rdb *redis.Client) *DirectoryService {
	return &DirectoryService{
		UserRepo: userRepo,
		QuizRepo: quizRepo,
		Redis:    rdb,
	}
}

func (s *DirectoryService) ListUsersWithCounts(ctx context.Context) ([]repository.UserWithQuizCount, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var rows []repository.UserWithQuizCount
			if jsonErr := json.Unmarshal([]byte(cached), &rows); jsonErr == nil {
				return rows, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	rows, err := s.UserRepo.ListWithQuizCounts()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(rows); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return rows, nil
}

// InvalidateLeaderboard drops the cached listing after a write that changes
// scores or quiz counts. Cache misses just fall through to the database.
func (s *DirectoryService) InvalidateLeaderboard(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}

func (s *DirectoryService) GetUserDetail(id uint) (*model.User, int64, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrUserNotFound
		}
		return nil, 0, err
	}

	count, err := s.QuizRepo.CountByCreator(user.ID)
	if err != nil {
		return nil, 0, err
	}

	return user, count, nil
}

type Profile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	QuizzesCreated int64  `json:"quizzesCreated"`
	TotalScore     int    `json:"totalScore"`
}

func (s *DirectoryService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	count, err := s.QuizRepo.CountByCreator(user.ID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:           user.Name,
		Email:          user.Email,
		QuizzesCreated: count,
		TotalScore:     user.TotalScore,
	}, nil
}
