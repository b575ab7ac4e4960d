package persistent

import (
	"vitacoin/internal/entity"
	"vitacoin/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Coins:     m.Coins,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Coins:     e.Coins,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		User:        ToUserEntity(m.User),
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Type:        string(e.Type),
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func ToActivityConfigEntity(m *model.ActivityConfigModel) *entity.ActivityConfig {
	if m == nil {
		return nil
	}

	return &entity.ActivityConfig{
		ActivityType: m.ActivityType,
		RewardValue:  m.RewardValue,
		PenaltyValue: m.PenaltyValue,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToActivityConfigModel(e *entity.ActivityConfig) *model.ActivityConfigModel {
	if e == nil {
		return nil
	}

	return &model.ActivityConfigModel{
		ActivityType: e.ActivityType,
		RewardValue:  e.RewardValue,
		PenaltyValue: e.PenaltyValue,
		UpdatedAt:    e.UpdatedAt,
	}
}
