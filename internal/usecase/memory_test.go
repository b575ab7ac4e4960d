package usecase

import (
	"sync"
	"time"

	"vitacoin/internal/entity"

	"github.com/google/uuid"
)

// memoryLedgerRepo is an in-memory LedgerRepository. A single mutex gives it
// the same guarantee the SQL implementation gets from its atomic update:
// transaction append and balance adjustment are one unit, serialized per call.
type memoryLedgerRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	txns  []*entity.Transaction

	// failRecord makes the next Record call fail before any mutation,
	// simulating a persistence fault mid-operation.
	failRecord error
}

func newMemoryLedgerRepo(users ...*entity.User) *memoryLedgerRepo {
	repo := &memoryLedgerRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (m *memoryLedgerRepo) GetUser(id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memoryLedgerRepo) Record(txn *entity.Transaction, delta int, clamp bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failRecord != nil {
		err := m.failRecord
		m.failRecord = nil
		return 0, err
	}

	user, ok := m.users[txn.UserID]
	if !ok {
		return 0, entity.ErrUserNotFound
	}

	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().UTC()
	}

	balance := user.Coins + delta
	if clamp && balance < 0 {
		balance = 0
	}
	user.Coins = balance

	stored := *txn
	m.txns = append(m.txns, &stored)

	return balance, nil
}

func (m *memoryLedgerRepo) balance(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID].Coins
}

func (m *memoryLedgerRepo) transactions(userID string) []*entity.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.Transaction
	for _, txn := range m.txns {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out
}

// signedSum replays a user's transaction log: the running sum that the
// stored balance must match whenever clamping never kicked in.
func (m *memoryLedgerRepo) signedSum(userID string) int {
	sum := 0
	for _, txn := range m.transactions(userID) {
		if txn.Type == entity.TransactionTypeReward {
			sum += txn.Amount
		} else {
			sum -= txn.Amount
		}
	}
	return sum
}

// memoryConfigRepo is an in-memory ConfigRepository keyed by activity type.
type memoryConfigRepo struct {
	mu      sync.Mutex
	configs map[string]*entity.ActivityConfig
}

func newMemoryConfigRepo() *memoryConfigRepo {
	return &memoryConfigRepo{configs: make(map[string]*entity.ActivityConfig)}
}

func (m *memoryConfigRepo) GetByActivityType(activityType string) (*entity.ActivityConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, ok := m.configs[activityType]
	if !ok {
		return nil, entity.ErrActivityNotConfigured
	}
	copied := *cfg
	return &copied, nil
}

func (m *memoryConfigRepo) Upsert(cfg *entity.ActivityConfig) (*entity.ActivityConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *cfg
	m.configs[cfg.ActivityType] = &copied
	stored := copied
	return &stored, nil
}

func (m *memoryConfigRepo) List() ([]*entity.ActivityConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.ActivityConfig, 0, len(m.configs))
	for _, cfg := range m.configs {
		copied := *cfg
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memoryConfigRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.configs)
}

// memoryUserRepo is an in-memory UserRepository.
type memoryUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (m *memoryUserRepo) Create(user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now().UTC()
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *memoryUserRepo) GetByID(id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (m *memoryUserRepo) FindByUsernameOrEmail(username, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username || user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (m *memoryUserRepo) List() ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.User, len(m.users))
	for i, user := range m.users {
		copied := *user
		out[i] = &copied
	}
	return out, nil
}
