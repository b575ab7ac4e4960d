package persistent

import (
	"database/sql"

	"vitacoin/internal/entity"
	"vitacoin/internal/model"

	"gorm.io/gorm"
)

type QueryRepository interface {
	Transactions(userID string, limit, offset int) ([]*entity.Transaction, error)
	Totals() (*entity.Totals, error)
	Leaderboard(limit int) ([]*entity.User, error)
}

type queryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) QueryRepository {
	return &queryRepository{db: db}
}

func (r *queryRepository) Transactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	var txnModels []model.TransactionModel
	query := r.db.Preload("User").Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&txnModels).Error; err != nil {
		return nil, wrapStorageErr(err)
	}

	transactions := make([]*entity.Transaction, len(txnModels))
	for i := range txnModels {
		transactions[i] = ToTransactionEntity(&txnModels[i])
	}
	return transactions, nil
}

func (r *queryRepository) Totals() (*entity.Totals, error) {
	totals := &entity.Totals{}

	// One repeatable-read transaction so counts and sums come from a single
	// snapshot: a transaction is never counted without its balance effect.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserModel{}).Count(&totals.TotalUsers).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TransactionModel{}).Count(&totals.TotalTransactions).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TransactionModel{}).
			Where("type = ?", entity.TransactionTypeReward).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totals.TotalRewarded).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TransactionModel{}).
			Where("type = ?", entity.TransactionTypePenalty).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totals.TotalPenalized).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserModel{}).
			Select("COALESCE(SUM(coins), 0)").
			Scan(&totals.CoinsInCirculation).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, wrapStorageErr(err)
	}

	return totals, nil
}

func (r *queryRepository) Leaderboard(limit int) ([]*entity.User, error) {
	var userModels []model.UserModel
	err := r.db.Order("coins DESC, created_at ASC").Limit(limit).Find(&userModels).Error
	if err != nil {
		return nil, wrapStorageErr(err)
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}
