// Command tilmashd runs the tilmash HTTP service.
package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/qazaqlabs/tilmash"
	"github.com/qazaqlabs/tilmash/cache"
	"github.com/qazaqlabs/tilmash/config"
	"github.com/qazaqlabs/tilmash/provider"
	"github.com/qazaqlabs/tilmash/server"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	// .env is optional; deployments normally use the process environment.
	_ = godotenv.Load()

	cfg := config.Load()

	primary := provider.NewGroq(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqTimeout)
	secondary := provider.NewDeepSeek(cfg.DeepSeekAPIKey, cfg.DeepSeekModel, cfg.DeepSeekTimeout)

	var opts []tilmash.AssistantOption
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.CacheTTLSeconds,
		})
		if err != nil {
			log.WithField("error", err.Error()).Warn("Redis unavailable, continuing without cache")
		} else {
			opts = append(opts, tilmash.WithCache(redisCache))
		}
	}

	assistant := tilmash.NewAssistant(primary, secondary, opts...)
	router := server.NewRouter(server.NewHandler(assistant))

	log.WithFields(log.Fields{
		"port":                 cfg.Port,
		"primary":              primary.Name(),
		"primary_configured":   primary.Configured(),
		"secondary":            secondary.Name(),
		"secondary_configured": secondary.Configured(),
	}).Infof("%s %s starting", tilmash.Name, tilmash.FullVersion())

	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithField("error", err.Error()).Fatal("Server exited")
	}
}
