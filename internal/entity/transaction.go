package entity

import "time"

type TransactionType string

const (
	TransactionTypeReward  TransactionType = "reward"
	TransactionTypePenalty TransactionType = "penalty"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeReward || t == TransactionTypePenalty
}

// Transaction is an immutable ledger entry. Amount is always non-negative;
// the sign of the balance effect is carried by Type.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	User        *User           `json:"user,omitempty"`
}

// LedgerResult is returned by ledger operations: the created transaction
// and the balance after it was applied.
type LedgerResult struct {
	Transaction *Transaction `json:"transaction"`
	Balance     int          `json:"balance"`
}
