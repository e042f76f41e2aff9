package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"fintra-backend/config"
	"fintra-backend/database"
	"fintra-backend/extraction"
	"fintra-backend/handlers"
	"fintra-backend/market"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get database instance")
	}
	defer sqlDB.Close()

	rdb, err := database.OpenRedis(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis init failed")
	}
	defer rdb.Close()

	var extractor extraction.Extractor
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, image parsing disabled")
		extractor = extraction.Disabled{}
	} else {
		gemini, err := extraction.NewGemini(ctx, cfg.GeminiAPIKey, log)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini init failed")
		}
		extractor = gemini
	}

	quotes := market.New(cfg.AlphaVantageKey, rdb, log)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(cfg, db, rdb, quotes, extractor, log)
	h.Register(router)

	log.Info().Str("port", cfg.Port).Msg("starting fintra backend")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
