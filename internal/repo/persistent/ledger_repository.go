package persistent

import (
	"errors"
	"time"

	"vitacoin/internal/entity"
	"vitacoin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerRepository interface {
	GetUser(id string) (*entity.User, error)
	// Record appends the transaction and applies delta to the user's balance
	// as one unit of work. It returns the balance after the update. When
	// clamp is true the stored balance never drops below zero, though the
	// transaction keeps its full amount.
	Record(txn *entity.Transaction, delta int, clamp bool) (int, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetUser(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, wrapStorageErr(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *ledgerRepository) Record(txn *entity.Transaction, delta int, clamp bool) (int, error) {
	txnModel := ToTransactionModel(txn)
	if txnModel.ID == "" {
		txnModel.ID = uuid.New().String()
	}
	if txnModel.CreatedAt.IsZero() {
		txnModel.CreatedAt = time.Now().UTC()
	}

	// The balance update is a single conditional statement, not a
	// load-mutate-save cycle, so concurrent operations against the same user
	// serialize inside Postgres and no update can be lost.
	query := "UPDATE users SET coins = coins + ?, updated_at = ? WHERE id = ? RETURNING coins"
	if clamp {
		query = "UPDATE users SET coins = GREATEST(coins + ?, 0), updated_at = ? WHERE id = ? RETURNING coins"
	}

	var balance int
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = r.db.Transaction(func(tx *gorm.DB) error {
			result := tx.Raw(query, delta, time.Now().UTC(), txnModel.UserID).Scan(&balance)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return entity.ErrUserNotFound
			}
			return tx.Create(txnModel).Error
		})
		if err == nil || !isSerializationFailure(err) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return 0, err
		}
		return 0, wrapStorageErr(err)
	}

	txn.ID = txnModel.ID
	txn.CreatedAt = txnModel.CreatedAt
	return balance, nil
}
