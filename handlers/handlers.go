// Package handlers wires the HTTP surface: auth, image parsing, portfolio,
// trades, watchlist, journal and market prices. Handlers are methods on a
// single Handler struct carrying every collaborator, built once in main.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fintra-backend/config"
	"fintra-backend/extraction"
	"fintra-backend/market"
	"fintra-backend/middleware"
)

type Handler struct {
	Cfg       *config.Config
	DB        *gorm.DB
	RDB       *redis.Client
	Market    *market.Client
	Extractor extraction.Extractor
	Log       zerolog.Logger
}

func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mkt *market.Client, ext extraction.Extractor, log zerolog.Logger) *Handler {
	return &Handler{
		Cfg:       cfg,
		DB:        db,
		RDB:       rdb,
		Market:    mkt,
		Extractor: ext,
		Log:       log.With().Str("component", "http").Logger(),
	}
}

// Register mounts all routes on the router.
func (h *Handler) Register(router *gin.Engine) {
	router.POST("/api/auth/register", h.RegisterUser)
	router.POST("/api/auth/login", h.Login)

	auth := router.Group("/api")
	auth.Use(middleware.JWTAuth(h.Cfg.JWTSecret))
	{
		auth.POST("/parse-image", h.ParsePortfolioImage)
		auth.POST("/parse-trades-image", h.ParseTradesImage)

		auth.GET("/price", h.GetPrice)
		auth.GET("/prices", h.GetPrices)
		auth.GET("/daily-change", h.GetDailyChange)

		auth.GET("/portfolio", h.GetPortfolio)
		auth.POST("/portfolio", h.SavePortfolio)

		auth.GET("/trades", h.ListTrades)
		auth.POST("/trades", h.CreateTrades)
		auth.PUT("/trades/:id", h.UpdateTrade)
		auth.DELETE("/trades/:id", h.DeleteTrade)

		auth.GET("/watchlist", h.ListWatchlist)
		auth.POST("/watchlist", h.AddWatchlistItem)
		auth.DELETE("/watchlist/:id", h.DeleteWatchlistItem)

		auth.GET("/journal", h.ListJournal)
		auth.POST("/journal", h.CreateJournalEntry)
		auth.PUT("/journal/:id", h.UpdateJournalEntry)
		auth.DELETE("/journal/:id", h.DeleteJournalEntry)
	}
}

func (h *Handler) userID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}
