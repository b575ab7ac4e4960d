package persistent

import (
	"errors"

	"vitacoin/internal/entity"
	"vitacoin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	GetByActivityType(activityType string) (*entity.ActivityConfig, error)
	Upsert(cfg *entity.ActivityConfig) (*entity.ActivityConfig, error)
	List() ([]*entity.ActivityConfig, error)
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) GetByActivityType(activityType string) (*entity.ActivityConfig, error) {
	var configModel model.ActivityConfigModel
	if err := r.db.Where("activity_type = ?", activityType).First(&configModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrActivityNotConfigured
		}
		return nil, wrapStorageErr(err)
	}
	return ToActivityConfigEntity(&configModel), nil
}

func (r *configRepository) Upsert(cfg *entity.ActivityConfig) (*entity.ActivityConfig, error) {
	configModel := ToActivityConfigModel(cfg)

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "activity_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"reward_value", "penalty_value", "updated_at"}),
	}).Create(configModel).Error
	if err != nil {
		return nil, wrapStorageErr(err)
	}

	// Re-read so the caller sees the stored row (the conflict path keeps the
	// original id).
	return r.GetByActivityType(cfg.ActivityType)
}

func (r *configRepository) List() ([]*entity.ActivityConfig, error) {
	var configModels []model.ActivityConfigModel
	if err := r.db.Order("updated_at DESC").Find(&configModels).Error; err != nil {
		return nil, wrapStorageErr(err)
	}

	configs := make([]*entity.ActivityConfig, len(configModels))
	for i := range configModels {
		configs[i] = ToActivityConfigEntity(&configModels[i])
	}
	return configs, nil
}
