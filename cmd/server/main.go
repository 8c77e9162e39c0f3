package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tadeyemo32/persona-backend/api"
	"github.com/tadeyemo32/persona-backend/services"
)

// envDuration reads a duration env var, falling back on absence or a
// value time.ParseDuration rejects.
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func initLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	_ = godotenv.Load()
	initLogger()

	db, err := services.OpenDB()
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	store := services.NewGormHistoryStore(db)
	enricher := services.NewEnricher(envDuration("ENRICH_COMPUTE_LATENCY", time.Second))
	coordinator := services.NewCoordinator(store, enricher.Enrich, services.CoordinatorOptions{
		TTL:            envDuration("ENRICH_CACHE_TTL", 2*time.Hour),
		ComputeTimeout: envDuration("ENRICH_COMPUTE_TIMEOUT", 30*time.Second),
	})

	r := gin.Default()
	r.Use(api.CORSMiddleware())
	api.SetupRoutes(r, coordinator)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8787"
	}

	log.Info().Str("port", port).Msg("starting persona enrichment backend")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
