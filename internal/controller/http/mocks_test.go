package http

import (
	"vitacoin/internal/entity"
	"vitacoin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockLedgerUseCase is a mock implementation of LedgerUseCase
type MockLedgerUseCase struct {
	mock.Mock
}

func (m *MockLedgerUseCase) Apply(input usecase.ApplyInput) (*entity.LedgerResult, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LedgerResult), args.Error(1)
}

func (m *MockLedgerUseCase) ApplyExplicit(input usecase.ApplyExplicitInput) (*entity.LedgerResult, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LedgerResult), args.Error(1)
}

var _ usecase.LedgerUseCase = (*MockLedgerUseCase)(nil)

// MockConfigUseCase is a mock implementation of ConfigUseCase
type MockConfigUseCase struct {
	mock.Mock
}

func (m *MockConfigUseCase) Resolve(activityType string) (*entity.ActivityConfig, error) {
	args := m.Called(activityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ActivityConfig), args.Error(1)
}

func (m *MockConfigUseCase) Upsert(activityType string, rewardValue, penaltyValue int) (*entity.ActivityConfig, error) {
	args := m.Called(activityType, rewardValue, penaltyValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ActivityConfig), args.Error(1)
}

func (m *MockConfigUseCase) List() ([]*entity.ActivityConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ActivityConfig), args.Error(1)
}

var _ usecase.ConfigUseCase = (*MockConfigUseCase)(nil)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(username, email string) (*entity.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Get(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

// MockQueryUseCase is a mock implementation of QueryUseCase
type MockQueryUseCase struct {
	mock.Mock
}

func (m *MockQueryUseCase) Transactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockQueryUseCase) Totals() (*entity.Totals, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Totals), args.Error(1)
}

func (m *MockQueryUseCase) Leaderboard(limit int) ([]*entity.User, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ usecase.QueryUseCase = (*MockQueryUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
