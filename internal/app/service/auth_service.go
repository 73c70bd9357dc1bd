package service

import (
	"context"
	"errors"

	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/session"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"github.com/greenbowl/greenbowl-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrAccountExists      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, *session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserByID(id uint) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions session.Store
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

func (s *authService) Register(username, email, password string) (*model.User, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"username": username,
		"email":    email,
	})

	// Check for an existing account on either unique field. The DB unique
	// indexes backstop a race between two concurrent registrations.
	existing, err := s.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Registration failed: username or email already exists", map[string]interface{}{
			"username": username,
			"email":    email,
		})
		return nil, ErrAccountExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"username": username,
		})
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id":  user.ID,
		"username": username,
	})
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, *session.Session, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"username": username,
	})

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password, so the response cannot be
			// used to probe which usernames exist.
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"username": username,
			})
			return nil, nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"username": username,
		})
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"username": username,
			"user_id":  user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		logger.Error("Failed to create session", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id":    user.ID,
		"username":   username,
		"session_id": sess.ID,
	})
	return user, sess, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	logger.Info("Logging out session", map[string]interface{}{
		"session_id": sessionID,
	})
	return s.sessions.Delete(ctx, sessionID)
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found", map[string]interface{}{
				"user_id": id,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return user, nil
}
