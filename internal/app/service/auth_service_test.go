package service

import (
	"context"
	"testing"
	"time"

	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/greenbowl/greenbowl-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) (AuthService, session.Store) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	sessions := session.NewMemoryStore(time.Hour)
	return NewAuthService(userRepo, sessions), sessions
}

func TestAuthService_Register(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid registration",
			username: "alice",
			email:    "alice@example.com",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "Duplicate username",
			username: "alice",
			email:    "other@example.com",
			password: "password456",
			wantErr:  ErrAccountExists,
		},
		{
			name:     "Duplicate email",
			username: "bob",
			email:    "alice@example.com",
			password: "password456",
			wantErr:  ErrAccountExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := authService.Register(tt.username, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	_, err := authService.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			username: "alice",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			username: "alice",
			password: "wrongpassword",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown username",
			username: "mallory",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, sess, err := authService.Login(ctx, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, sess)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, sess)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, user.ID, sess.UserID)
				assert.NotEmpty(t, sess.ID)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	authService, sessions := setupAuthServiceTest(t)
	ctx := context.Background()

	_, err := authService.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, sess, err := authService.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	err = authService.Logout(ctx, sess.ID)
	require.NoError(t, err)

	// The session record is gone, so the cookie token no longer resolves.
	_, err = sessions.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	registered, err := authService.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := authService.GetUserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = authService.GetUserByID(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
