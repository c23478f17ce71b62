// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the full service configuration. A missing API key disables
// that provider's fallback leg rather than failing startup.
type Config struct {
	Port string

	GroqAPIKey  string
	GroqModel   string
	GroqTimeout time.Duration

	DeepSeekAPIKey  string
	DeepSeekModel   string
	DeepSeekTimeout time.Duration

	RedisURL        string // Empty disables the completion cache
	CacheTTLSeconds int
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GROQ_TIMEOUT_MS", 6500)
	v.SetDefault("DEEPSEEK_TIMEOUT_MS", 8500)
	v.SetDefault("CACHE_TTL", 3600)

	return &Config{
		Port: v.GetString("PORT"),

		GroqAPIKey:  v.GetString("GROQ_API_KEY"),
		GroqModel:   v.GetString("GROQ_MODEL"),
		GroqTimeout: time.Duration(v.GetInt("GROQ_TIMEOUT_MS")) * time.Millisecond,

		DeepSeekAPIKey:  v.GetString("DEEPSEEK_API_KEY"),
		DeepSeekModel:   v.GetString("DEEPSEEK_MODEL"),
		DeepSeekTimeout: time.Duration(v.GetInt("DEEPSEEK_TIMEOUT_MS")) * time.Millisecond,

		RedisURL:        v.GetString("REDIS_URL"),
		CacheTTLSeconds: v.GetInt("CACHE_TTL"),
	}
}
