package entity

type Totals struct {
	TotalUsers         int64 `json:"total_users"`
	TotalTransactions  int64 `json:"total_transactions"`
	TotalRewarded      int64 `json:"total_rewarded"`
	TotalPenalized     int64 `json:"total_penalized"`
	CoinsInCirculation int64 `json:"coins_in_circulation"`
}
