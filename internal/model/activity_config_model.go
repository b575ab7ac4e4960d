package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityConfigModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	ActivityType string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"activity_type"`
	RewardValue  int       `gorm:"not null" json:"reward_value"`
	PenaltyValue int       `gorm:"not null" json:"penalty_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ActivityConfigModel) TableName() string {
	return "activity_configs"
}

func (c *ActivityConfigModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
