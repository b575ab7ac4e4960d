package usecase

import (
	"fmt"
	"time"

	"vitacoin/internal/entity"
	"vitacoin/internal/repo/persistent"
	"vitacoin/pkg/logger"
	"vitacoin/pkg/queue"
)

// ApplyInput describes an activity outcome to post to the ledger. ClampFloor
// keeps the stored balance at zero or above; automatic flows (activity
// reports, simulation) always set it.
type ApplyInput struct {
	UserID       string
	ActivityType string
	Success      bool
	ClampFloor   bool
}

// ApplyExplicitInput describes a manually-specified ledger entry
// (administrative corrections, purchases) that bypasses the config table.
type ApplyExplicitInput struct {
	UserID      string
	Type        entity.TransactionType
	Amount      int
	Description string
	ClampFloor  bool
}

type LedgerUseCase interface {
	Apply(input ApplyInput) (*entity.LedgerResult, error)
	ApplyExplicit(input ApplyExplicitInput) (*entity.LedgerResult, error)
}

type ledgerUseCase struct {
	ledgerRepo  persistent.LedgerRepository
	configs     ConfigUseCase
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewLedgerUseCase(ledgerRepo persistent.LedgerRepository, configs ConfigUseCase, queueClient *queue.Client, logger *logger.Logger) LedgerUseCase {
	return &ledgerUseCase{
		ledgerRepo:  ledgerRepo,
		configs:     configs,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Apply resolves the amount for the activity outcome from configuration,
// appends a transaction and adjusts the user's balance atomically. Any
// failure leaves both the transaction log and the balance untouched.
func (uc *ledgerUseCase) Apply(input ApplyInput) (*entity.LedgerResult, error) {
	cfg, err := uc.configs.Resolve(input.ActivityType)
	if err != nil {
		return nil, err
	}

	if _, err := uc.ledgerRepo.GetUser(input.UserID); err != nil {
		return nil, err
	}

	var txnType entity.TransactionType
	var amount, delta int
	var description string
	if input.Success {
		txnType = entity.TransactionTypeReward
		amount = cfg.RewardValue
		delta = amount
		description = fmt.Sprintf("Completed activity: %s", cfg.ActivityType)
	} else {
		txnType = entity.TransactionTypePenalty
		amount = cfg.PenaltyValue
		delta = -amount
		description = fmt.Sprintf("Failed activity: %s", cfg.ActivityType)
	}

	txn := &entity.Transaction{
		UserID:      input.UserID,
		Type:        txnType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	balance, err := uc.ledgerRepo.Record(txn, delta, input.ClampFloor)
	if err != nil {
		uc.logger.Error("Failed to record %s for user %s: %v", txnType, input.UserID, err)
		return nil, err
	}

	uc.publishEvent(txn, balance)

	return &entity.LedgerResult{Transaction: txn, Balance: balance}, nil
}

// ApplyExplicit posts a transaction with a caller-chosen amount. The same
// atomicity and floor-clamping rules as Apply hold.
func (uc *ledgerUseCase) ApplyExplicit(input ApplyExplicitInput) (*entity.LedgerResult, error) {
	if !input.Type.Valid() {
		return nil, entity.ErrInvalidTransactionType
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer", entity.ErrInvalidAmount)
	}

	if _, err := uc.ledgerRepo.GetUser(input.UserID); err != nil {
		return nil, err
	}

	delta := input.Amount
	if input.Type == entity.TransactionTypePenalty {
		delta = -input.Amount
	}

	description := input.Description
	if description == "" {
		description = fmt.Sprintf("%s transaction", input.Type)
	}

	txn := &entity.Transaction{
		UserID:      input.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	balance, err := uc.ledgerRepo.Record(txn, delta, input.ClampFloor)
	if err != nil {
		uc.logger.Error("Failed to record %s for user %s: %v", input.Type, input.UserID, err)
		return nil, err
	}

	uc.publishEvent(txn, balance)

	return &entity.LedgerResult{Transaction: txn, Balance: balance}, nil
}

// publishEvent notifies downstream consumers after commit. Publishing is
// best-effort: the ledger result is already durable.
func (uc *ledgerUseCase) publishEvent(txn *entity.Transaction, balance int) {
	if uc.queueClient == nil {
		return
	}

	event := queue.LedgerEvent{
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Balance:       balance,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
	}
	if err := uc.queueClient.PublishLedgerEvent(event); err != nil {
		uc.logger.Warn("Failed to publish ledger event for transaction %s: %v", txn.ID, err)
	}
}
