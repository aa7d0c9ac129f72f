package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Config is the server configuration, loaded once from a JSON file.
type Config struct {
	ListenAddr     string   `json:"listen_addr"`
	Debug          bool     `json:"debug"`
	AllowedOrigins []string `json:"allowed_origins"`

	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	TxRetries     int    `json:"tx_retries"`

	MinCardCount int `json:"min_card_count"`
	MaxCardCount int `json:"max_card_count"`
}

var (
	cfg      *Config
	loadOnce sync.Once
	loadErr  error
)

func defaults() *Config {
	return &Config{
		ListenAddr:   ":8000",
		RedisAddr:    "localhost:6379",
		TxRetries:    10,
		MinCardCount: 10,
		MaxCardCount: 36,
	}
}

// Load reads the configuration from path. An empty path keeps the defaults.
// Subsequent calls are no-ops.
func Load(path string) error {
	loadOnce.Do(func() {
		c := defaults()
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				loadErr = fmt.Errorf("failed to read config: %w", err)
				return
			}
			if err := json.Unmarshal(data, c); err != nil {
				loadErr = fmt.Errorf("failed to unmarshal config: %w", err)
				return
			}
		}
		cfg = c
	})
	return loadErr
}

// Get returns the loaded configuration, or the defaults if Load was never
// called.
func Get() *Config {
	if cfg == nil {
		return defaults()
	}
	return cfg
}
