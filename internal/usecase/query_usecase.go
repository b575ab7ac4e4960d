package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vitacoin/internal/entity"
	"vitacoin/internal/repo/persistent"
	"vitacoin/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
	leaderboardCacheTTL    = 30 * time.Second
)

type QueryUseCase interface {
	Transactions(userID string, limit, offset int) ([]*entity.Transaction, error)
	Totals() (*entity.Totals, error)
	Leaderboard(limit int) ([]*entity.User, error)
}

type queryUseCase struct {
	queryRepo   persistent.QueryRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewQueryUseCase(queryRepo persistent.QueryRepository, redisClient *redis.Client, logger *logger.Logger) QueryUseCase {
	return &queryUseCase{
		queryRepo:   queryRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *queryUseCase) Transactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	transactions, err := uc.queryRepo.Transactions(userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list transactions: %v", err)
		return nil, err
	}
	return transactions, nil
}

func (uc *queryUseCase) Totals() (*entity.Totals, error) {
	totals, err := uc.queryRepo.Totals()
	if err != nil {
		uc.logger.Error("Failed to compute totals: %v", err)
		return nil, err
	}
	return totals, nil
}

func (uc *queryUseCase) Leaderboard(limit int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	cacheKey := fmt.Sprintf("leaderboard:%d", limit)
	ctx := context.Background()

	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var users []*entity.User
			if err := json.Unmarshal([]byte(cached), &users); err == nil {
				return users, nil
			}
		}
	}

	users, err := uc.queryRepo.Leaderboard(limit)
	if err != nil {
		uc.logger.Error("Failed to load leaderboard: %v", err)
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(users); err == nil {
			if err := uc.redisClient.Set(ctx, cacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				uc.logger.Warn("Failed to cache leaderboard: %v", err)
			}
		}
	}

	return users, nil
}
