package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind a login. The cookie token only
// references it by ID, so deleting the record ends the login immediately.
type Session struct {
	ID       string    `json:"id"`
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

type Store interface {
	Create(ctx context.Context, userID uint, username string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by Redis with per-session TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *redisStore) Create(ctx context.Context, userID uint, username string) (*Session, error) {
	sess := &Session{
		ID:       uuid.New().String(),
		UserID:   userID,
		Username: username,
		IssuedAt: time.Now(),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), payload, s.ttl).Err(); err != nil {
		logger.Error("Failed to store session", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Debug("Session created", map[string]interface{}{
		"session_id": sess.ID,
		"user_id":    userID,
	})
	return sess, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		logger.Error("Failed to load session", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		logger.Error("Failed to delete session", err, map[string]interface{}{
			"session_id": id,
		})
		return err
	}

	logger.Debug("Session deleted", map[string]interface{}{
		"session_id": id,
	})
	return nil
}
