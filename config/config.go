package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Storage  StorageConfig
	Cleanup  CleanupConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
}

// CheckoutConfig controls the mocked payment flow. StubDelay is how long
// ProcessPayment blocks before reporting success; there is no gateway
// behind it.
type CheckoutConfig struct {
	StubDelay time.Duration
}

type StorageConfig struct {
	Driver    string // "local" or "s3"
	UploadDir string
	S3        S3Config
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

// CleanupConfig controls the stale-cart sweep. The sweep stays off unless
// CART_CLEANUP_ENABLED is set; the site runs without any background tasks.
type CleanupConfig struct {
	Enabled       bool
	CartRetention time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "greenbowl"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "your-secret-key"),
			TTL:        parseDuration(getEnv("SESSION_TTL", "168h"), 168*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "greenbowl_session"),
		},
		Checkout: CheckoutConfig{
			StubDelay: parseDuration(getEnv("PAYMENT_STUB_DELAY", "2s"), 2*time.Second),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "local"),
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
			S3: S3Config{
				Region:          getEnv("AWS_REGION", "ap-south-1"),
				Bucket:          getEnv("AWS_S3_BUCKET", "greenbowl-uploads"),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
				BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
			},
		},
		Cleanup: CleanupConfig{
			Enabled:       getEnv("CART_CLEANUP_ENABLED", "") != "",
			CartRetention: parseDuration(getEnv("CART_RETENTION", "720h"), 720*time.Hour),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}
