package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintra-backend/models"
)

type watchlistInput struct {
	Ticker string `json:"ticker" binding:"required"`
}

func (h *Handler) ListWatchlist(c *gin.Context) {
	userID := h.userID(c)

	var items []models.WatchlistItem
	if err := h.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		h.storageError(c, err, "Failed to fetch watchlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"watchlist": items})
}

func (h *Handler) AddWatchlistItem(c *gin.Context) {
	userID := h.userID(c)

	var input watchlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	item := models.WatchlistItem{
		UserID: userID,
		Ticker: strings.ToUpper(strings.TrimSpace(input.Ticker)),
	}
	if item.Ticker == "" {
		badRequest(c, "Ticker is required")
		return
	}
	if err := h.DB.Create(&item).Error; err != nil {
		h.storageError(c, err, "Failed to add watchlist item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Ticker added to watchlist", "id": item.ID})
}

func (h *Handler) DeleteWatchlistItem(c *gin.Context) {
	userID := h.userID(c)
	itemID := c.Param("id")

	var item models.WatchlistItem
	if err := h.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		notFound(c, "Watchlist item not found")
		return
	}
	if err := h.DB.Delete(&item).Error; err != nil {
		h.storageError(c, err, "Failed to delete watchlist item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticker removed from watchlist"})
}
