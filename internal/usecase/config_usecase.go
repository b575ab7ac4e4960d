package usecase

import (
	"fmt"
	"strings"
	"time"

	"vitacoin/internal/entity"
	"vitacoin/internal/repo/persistent"
	"vitacoin/pkg/logger"
)

type ConfigUseCase interface {
	Resolve(activityType string) (*entity.ActivityConfig, error)
	Upsert(activityType string, rewardValue, penaltyValue int) (*entity.ActivityConfig, error)
	List() ([]*entity.ActivityConfig, error)
}

type configUseCase struct {
	configRepo persistent.ConfigRepository
	logger     *logger.Logger
}

func NewConfigUseCase(configRepo persistent.ConfigRepository, logger *logger.Logger) ConfigUseCase {
	return &configUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Resolve returns the reward/penalty pair for an activity type. Lookups are
// case-insensitive: names are lower-cased before hitting the store.
func (uc *configUseCase) Resolve(activityType string) (*entity.ActivityConfig, error) {
	name := normalizeActivityType(activityType)
	if name == "" {
		return nil, entity.ErrInvalidActivityType
	}

	cfg, err := uc.configRepo.GetByActivityType(name)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Upsert creates or replaces the configuration for an activity type. Repeated
// identical calls keep a single entry. New values apply only to subsequent
// ledger operations, never retroactively.
func (uc *configUseCase) Upsert(activityType string, rewardValue, penaltyValue int) (*entity.ActivityConfig, error) {
	name := normalizeActivityType(activityType)
	if name == "" {
		return nil, entity.ErrInvalidActivityType
	}
	if rewardValue < 0 || penaltyValue < 0 {
		return nil, fmt.Errorf("%w: reward and penalty values must be non-negative", entity.ErrInvalidAmount)
	}

	cfg, err := uc.configRepo.Upsert(&entity.ActivityConfig{
		ActivityType: name,
		RewardValue:  rewardValue,
		PenaltyValue: penaltyValue,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		uc.logger.Error("Failed to upsert config for %s: %v", name, err)
		return nil, err
	}

	uc.logger.Info("Reward config updated: %s reward=%d penalty=%d", name, rewardValue, penaltyValue)
	return cfg, nil
}

func (uc *configUseCase) List() ([]*entity.ActivityConfig, error) {
	configs, err := uc.configRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list configs: %v", err)
		return nil, err
	}
	return configs, nil
}

func normalizeActivityType(activityType string) string {
	return strings.ToLower(strings.TrimSpace(activityType))
}
