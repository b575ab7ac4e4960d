package persistent

import (
	"errors"

	"vitacoin/internal/entity"
	"vitacoin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsernameOrEmail(username, email string) (*entity.User, error)
	List() ([]*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return wrapStorageErr(err)
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, wrapStorageErr(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) FindByUsernameOrEmail(username, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ? OR email = ?", username, email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, wrapStorageErr(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List() ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, wrapStorageErr(err)
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}
