package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/layer-3/gatecheck/core"
)

// Config represents the process configuration
type Config struct {
	Server    ServerConfig
	Captcha   CaptchaConfig
	Redis     RedisConfig
	Clearance ClearanceConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	ListenAddr string
}

// CaptchaConfig holds verification-related configuration
type CaptchaConfig struct {
	Secret    string
	VerifyURL string
	ResultTTL time.Duration
}

// RedisConfig holds redis-related configuration. An empty URL selects the
// in-memory result store and the in-process event transport.
type RedisConfig struct {
	URL string
}

// ClearanceConfig holds clearance pass configuration. An empty key PEM
// disables clearance passes.
type ClearanceConfig struct {
	KeyPEM string
	TTL    time.Duration
}

// Load reads configuration from the environment, with an optional .env
// file. The captcha secret is required: a process without it must not come
// up, so its absence is a startup error rather than a per-request one.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments use the environment
	_ = godotenv.Load()

	secret := os.Getenv("CAPTCHA_SECRET")
	if secret == "" {
		return nil, core.ErrMissingSecret
	}

	resultTTL, err := getDuration("CAPTCHA_RESULT_TTL", core.DefaultResultTTL)
	if err != nil {
		return nil, err
	}

	clearanceTTL, err := getDuration("CLEARANCE_TTL", core.DefaultClearanceTTL)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			ListenAddr: getEnv("LISTEN_ADDR", ":9000"),
		},
		Captcha: CaptchaConfig{
			Secret:    secret,
			VerifyURL: os.Getenv("CAPTCHA_VERIFY_URL"),
			ResultTTL: resultTTL,
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Clearance: ClearanceConfig{
			KeyPEM: os.Getenv("CLEARANCE_KEY"),
			TTL:    clearanceTTL,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}
