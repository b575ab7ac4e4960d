package simulation

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"vitacoin/internal/entity"
	"vitacoin/internal/usecase"
	"vitacoin/pkg/logger"
)

var (
	ErrNoUsers      = errors.New("no users available for simulation")
	ErrNoActivities = errors.New("no activity configurations available for simulation")
	ErrNoBuyers     = errors.New("no users with sufficient coins for purchase")
)

// successRate matches observed real traffic: roughly 80% of activity
// outcomes succeed.
const successRate = 0.8

type purchaseItem struct {
	Name string
	Cost int
}

var purchaseCatalog = []purchaseItem{
	{Name: "Coffee Voucher", Cost: 15},
	{Name: "Movie Ticket", Cost: 50},
	{Name: "Book Discount", Cost: 30},
	{Name: "Premium Course", Cost: 200},
	{Name: "Gift Card", Cost: 100},
}

// Simulator generates synthetic activity and purchase events through the
// same public ledger entry points as real traffic. All randomness lives
// here; the ledger cannot tell simulated calls from real ones.
type Simulator struct {
	ledger   usecase.LedgerUseCase
	users    usecase.UserUseCase
	configs  usecase.ConfigUseCase
	logger   *logger.Logger
	interval time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func New(ledger usecase.LedgerUseCase, users usecase.UserUseCase, configs usecase.ConfigUseCase, log *logger.Logger, interval time.Duration, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{
		ledger:   ledger,
		users:    users,
		configs:  configs,
		logger:   log,
		interval: interval,
		rng:      rng,
	}
}

// Start runs the generator loop until ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Simulation generator started (interval %s)", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Simulation generator stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Simulator) tick() {
	// Mostly activities, occasionally a purchase.
	if s.chance(0.75) {
		if result, err := s.SimulateActivity(); err != nil {
			s.logger.Warn("Activity simulation skipped: %v", err)
		} else {
			s.logger.Info("Simulated %s of %d coins for user %s (balance %d)",
				result.Transaction.Type, result.Transaction.Amount, result.Transaction.UserID, result.Balance)
		}
		return
	}

	if result, err := s.SimulatePurchase(); err != nil {
		s.logger.Warn("Purchase simulation skipped: %v", err)
	} else {
		s.logger.Info("Simulated purchase: %s (balance %d)", result.Transaction.Description, result.Balance)
	}
}

// SimulateActivity picks a random user and activity type and posts a
// randomly-biased outcome through the ledger.
func (s *Simulator) SimulateActivity() (*entity.LedgerResult, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	configs, err := s.configs.List()
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, ErrNoActivities
	}

	user := users[s.intn(len(users))]
	cfg := configs[s.intn(len(configs))]
	success := s.chance(successRate)

	return s.ledger.Apply(usecase.ApplyInput{
		UserID:       user.ID,
		ActivityType: cfg.ActivityType,
		Success:      success,
		ClampFloor:   true,
	})
}

// SimulatePurchase picks a user who can afford a random catalog item and
// posts the purchase as an explicit penalty transaction.
func (s *Simulator) SimulatePurchase() (*entity.LedgerResult, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}

	cheapest := purchaseCatalog[0].Cost
	for _, item := range purchaseCatalog {
		if item.Cost < cheapest {
			cheapest = item.Cost
		}
	}

	var eligible []*entity.User
	for _, user := range users {
		if user.Coins >= cheapest {
			eligible = append(eligible, user)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoBuyers
	}

	buyer := eligible[s.intn(len(eligible))]

	var affordable []purchaseItem
	for _, item := range purchaseCatalog {
		if item.Cost <= buyer.Coins {
			affordable = append(affordable, item)
		}
	}

	item := affordable[s.intn(len(affordable))]

	return s.ledger.ApplyExplicit(usecase.ApplyExplicitInput{
		UserID:      buyer.ID,
		Type:        entity.TransactionTypePenalty,
		Amount:      item.Cost,
		Description: "Purchased: " + item.Name,
		ClampFloor:  true,
	})
}

func (s *Simulator) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Simulator) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}
