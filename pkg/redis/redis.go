package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/greenbowl/greenbowl-backend/config"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection. The client is
// handed to callers (the session store) instead of living in a package
// global so tests can swap it out.
func NewClient(cfg *config.RedisConfig) (*redis.Client, error) {
	logger.Info("Connecting to Redis", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return client, nil
}
