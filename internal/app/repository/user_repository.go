package repository

import (
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByUsernameOrEmail(username, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"username": user.Username,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		logger.Debug("Failed to find user by ID in database", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		logger.Debug("Failed to find user by username in database", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail backs the registration conflict check: either field
// colliding blocks the new account.
func (r *userRepository) FindByUsernameOrEmail(username, email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
