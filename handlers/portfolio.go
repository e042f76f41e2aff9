package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintra-backend/database"
	"fintra-backend/models"
)

type savePortfolioInput struct {
	Assets []models.Asset `json:"assets" binding:"required"`
}

// GetPortfolio returns the user's current snapshot.
func (h *Handler) GetPortfolio(c *gin.Context) {
	userID := h.userID(c)

	var holdings []models.Holding
	if err := h.DB.Where("user_id = ?", userID).Order("id").Find(&holdings).Error; err != nil {
		h.storageError(c, err, "Failed to fetch portfolio")
		return
	}

	assets := make([]models.Asset, 0, len(holdings))
	for _, holding := range holdings {
		assets = append(assets, holding.AssetView())
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// SavePortfolio replaces the user's snapshot wholesale: all prior rows are
// deleted and the submitted assets re-inserted in one transaction.
func (h *Handler) SavePortfolio(c *gin.Context) {
	userID := h.userID(c)

	var input savePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	rows := make([]models.Holding, 0, len(input.Assets))
	for _, asset := range input.Assets {
		rows = append(rows, asset.HoldingRow(userID))
	}

	if err := database.ReplaceHoldings(h.DB, userID, rows); err != nil {
		h.storageError(c, err, "Failed to save portfolio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio saved successfully", "count": len(rows)})
}
