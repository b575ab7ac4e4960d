package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionModel rows are append-only: never updated, never deleted.
type TransactionModel struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string     `gorm:"type:uuid;not null;index:idx_transactions_user_created,priority:1" json:"user_id"`
	Type        string     `gorm:"type:varchar(20);not null" json:"type"`
	Amount      int        `gorm:"not null" json:"amount"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time  `gorm:"index:idx_transactions_user_created,priority:2,sort:desc" json:"created_at"`
	User        *UserModel `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
