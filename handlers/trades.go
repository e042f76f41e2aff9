package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintra-backend/models"
)

type createTradesInput struct {
	Trades []models.TradeRecord `json:"trades" binding:"required"`
	Source string               `json:"source"`
}

type updateTradeInput struct {
	Date        *string  `json:"date"`
	Ticker      *string  `json:"ticker"`
	RealizedPNL *float64 `json:"realized_pnl"`
	PercentDiff *float64 `json:"percent_diff"`
}

func (h *Handler) ListTrades(c *gin.Context) {
	userID := h.userID(c)

	var trades []models.Trade
	if err := h.DB.Where("user_id = ?", userID).Order("date desc, id desc").Find(&trades).Error; err != nil {
		h.storageError(c, err, "Failed to fetch trades")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

// CreateTrades inserts a batch of trades. When the batch is flagged as
// image-sourced, rows that exactly match an existing (date, ticker,
// realized_pnl, percent_diff) tuple are skipped so re-uploading the same
// screenshot stays idempotent. Manual entries are never deduplicated.
func (h *Handler) CreateTrades(c *gin.Context) {
	userID := h.userID(c)

	var input createTradesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	if len(input.Trades) == 0 {
		badRequest(c, "No trades provided")
		return
	}

	records := input.Trades
	skipped := 0
	if input.Source == "image" {
		var existing []models.Trade
		if err := h.DB.Where("user_id = ?", userID).Find(&existing).Error; err != nil {
			h.storageError(c, err, "Failed to fetch trades")
			return
		}
		records = dropDuplicates(existing, records)
		skipped = len(input.Trades) - len(records)
	}

	rows := make([]models.Trade, 0, len(records))
	for _, record := range records {
		record.Ticker = strings.ToUpper(record.Ticker)
		rows = append(rows, record.TradeRow(userID, input.Source))
	}
	if len(rows) > 0 {
		if err := h.DB.Create(&rows).Error; err != nil {
			h.storageError(c, err, "Failed to record trades")
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Trades recorded successfully",
		"inserted": len(rows),
		"skipped":  skipped,
	})
}

func (h *Handler) UpdateTrade(c *gin.Context) {
	userID := h.userID(c)
	tradeID := c.Param("id")

	var input updateTradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	var existing models.Trade
	if err := h.DB.Where("id = ? AND user_id = ?", tradeID, userID).First(&existing).Error; err != nil {
		notFound(c, "Trade not found")
		return
	}

	updates := make(map[string]interface{})
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Ticker != nil {
		updates["ticker"] = strings.ToUpper(*input.Ticker)
	}
	if input.RealizedPNL != nil {
		updates["realized_pnl"] = *input.RealizedPNL
	}
	if input.PercentDiff != nil {
		updates["percent_diff"] = *input.PercentDiff
	}
	if len(updates) == 0 {
		badRequest(c, "No fields to update")
		return
	}

	if err := h.DB.Model(&existing).Updates(updates).Error; err != nil {
		h.storageError(c, err, "Failed to update trade")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trade updated successfully"})
}

func (h *Handler) DeleteTrade(c *gin.Context) {
	userID := h.userID(c)
	tradeID := c.Param("id")

	var trade models.Trade
	if err := h.DB.Where("id = ? AND user_id = ?", tradeID, userID).First(&trade).Error; err != nil {
		notFound(c, "Trade not found")
		return
	}
	if err := h.DB.Delete(&trade).Error; err != nil {
		h.storageError(c, err, "Failed to delete trade")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trade deleted successfully"})
}

// dropDuplicates filters out incoming records whose exact tuple already
// exists for the user. Order of survivors is preserved.
func dropDuplicates(existing []models.Trade, incoming []models.TradeRecord) []models.TradeRecord {
	type key struct {
		date   string
		ticker string
		pnl    float64
		diff   float64
	}
	seen := make(map[key]struct{}, len(existing))
	for _, t := range existing {
		seen[key{t.Date, strings.ToUpper(t.Ticker), t.RealizedPNL, t.PercentDiff}] = struct{}{}
	}

	out := make([]models.TradeRecord, 0, len(incoming))
	for _, r := range incoming {
		k := key{r.Date, strings.ToUpper(r.Ticker), r.RealizedPNL, r.PercentDiff}
		if _, dup := seen[k]; dup {
			continue
		}
		out = append(out, r)
	}
	return out
}
