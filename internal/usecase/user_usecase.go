package usecase

import (
	"errors"
	"strings"

	"vitacoin/internal/entity"
	"vitacoin/internal/repo/persistent"
	"vitacoin/pkg/logger"
)

type UserUseCase interface {
	Register(username, email string) (*entity.User, error)
	Get(id string) (*entity.User, error)
	List() ([]*entity.User, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *userUseCase) Register(username, email string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, entity.ErrInvalidUser
	}

	existing, err := uc.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Error("Failed to check existing user: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrUserExists
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Coins:    0,
	}
	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user %s: %v", username, err)
		return nil, err
	}

	uc.logger.Info("User registered: %s", username)
	return user, nil
}

func (uc *userUseCase) Get(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) List() ([]*entity.User, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}
