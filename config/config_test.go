package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GroqTimeout != 6500*time.Millisecond {
		t.Errorf("GroqTimeout = %v, want 6.5s", cfg.GroqTimeout)
	}
	if cfg.DeepSeekTimeout != 8500*time.Millisecond {
		t.Errorf("DeepSeekTimeout = %v, want 8.5s", cfg.DeepSeekTimeout)
	}
	if cfg.CacheTTLSeconds != 3600 {
		t.Errorf("CacheTTLSeconds = %d, want 3600", cfg.CacheTTLSeconds)
	}
	if cfg.GroqAPIKey != "" || cfg.DeepSeekAPIKey != "" {
		t.Error("API keys should default to empty (provider disabled)")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GROQ_API_KEY", "gk")
	t.Setenv("GROQ_MODEL", "llama-custom")
	t.Setenv("GROQ_TIMEOUT_MS", "1000")
	t.Setenv("DEEPSEEK_API_KEY", "dk")
	t.Setenv("DEEPSEEK_TIMEOUT_MS", "2000")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CACHE_TTL", "60")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GroqAPIKey != "gk" || cfg.DeepSeekAPIKey != "dk" {
		t.Error("API keys not read from environment")
	}
	if cfg.GroqModel != "llama-custom" {
		t.Errorf("GroqModel = %q", cfg.GroqModel)
	}
	if cfg.GroqTimeout != time.Second {
		t.Errorf("GroqTimeout = %v, want 1s", cfg.GroqTimeout)
	}
	if cfg.DeepSeekTimeout != 2*time.Second {
		t.Errorf("DeepSeekTimeout = %v, want 2s", cfg.DeepSeekTimeout)
	}
	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.CacheTTLSeconds != 60 {
		t.Errorf("CacheTTLSeconds = %d", cfg.CacheTTLSeconds)
	}
}
