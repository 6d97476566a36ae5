package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// Storage
	StorageBackend string // "redis" or "memory"

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Auth
	AuthProvider    string // "local" or "firebase"
	JWTSecret       string
	AdminCode       string
	PasswordSalt    string
	SessionDuration time.Duration
	FirebaseAPIKey  string

	// Checkout
	CheckoutDelay time.Duration

	// Rate limiting on credential endpoints
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// AWS S3
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3BucketName       string
	S3UseSSL           string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		StorageBackend: getEnv("STORAGE_BACKEND", "redis"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		AuthProvider:    getEnv("AUTH_PROVIDER", "local"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminCode:       getEnv("ADMIN_CODE", "PIANO2024"),
		PasswordSalt:    getEnv("PASSWORD_SALT", "gospel-keys"),
		SessionDuration: getDurationEnv("SESSION_DURATION", 24*time.Hour),
		FirebaseAPIKey:  getEnv("FIREBASE_API_KEY", ""),

		CheckoutDelay: getDurationEnv("CHECKOUT_DELAY", 1500*time.Millisecond),

		AuthRateLimit:  getIntEnv("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: getDurationEnv("AUTH_RATE_WINDOW", time.Minute),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "gospel-keys-content"),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Legacy configs store the session duration as milliseconds
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
