package entity

import "time"

// ActivityConfig holds the reward/penalty pair for one activity type.
// Values are copied into transactions at the moment of use, so later
// updates never change past ledger entries.
type ActivityConfig struct {
	ActivityType string    `json:"activity_type"`
	RewardValue  int       `json:"reward_value"`
	PenaltyValue int       `json:"penalty_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}
