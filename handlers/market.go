package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fintra-backend/market"
)

// GetPrice returns the last-traded price for a single ticker.
func (h *Handler) GetPrice(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		badRequest(c, "ticker query parameter is required")
		return
	}

	price, err := h.Market.Price(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, market.ErrNoData) {
			badRequest(c, fmt.Sprintf("Could not fetch price for %s", ticker))
			return
		}
		h.Log.Error().Err(err).Str("ticker", ticker).Msg("quote fetch failed")
		internal(c, "Error fetching price")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticker": ticker, "price": price})
}

// GetPrices fetches prices for a comma-separated ticker list. Each ticker is
// requested independently; ones with no data land in failed_tickers instead
// of failing the request.
func (h *Handler) GetPrices(c *gin.Context) {
	raw := c.Query("tickers")
	tickers := splitTickers(raw)
	if len(tickers) == 0 {
		badRequest(c, "No valid tickers provided")
		return
	}

	prices := make(map[string]float64)
	failed := make([]string, 0)
	for _, ticker := range tickers {
		price, err := h.Market.Price(c.Request.Context(), ticker)
		if err != nil {
			h.Log.Warn().Err(err).Str("ticker", ticker).Msg("price lookup failed")
			failed = append(failed, ticker)
			continue
		}
		prices[ticker] = price
	}

	c.JSON(http.StatusOK, gin.H{
		"prices":         prices,
		"failed_tickers": failed,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

// GetDailyChange returns the two most recent trading-day closes and the
// percent move between them.
func (h *Handler) GetDailyChange(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		badRequest(c, "ticker query parameter is required")
		return
	}

	change, err := h.Market.Change(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, market.ErrNoData) {
			notFound(c, fmt.Sprintf("No daily data for %s", ticker))
			return
		}
		h.Log.Error().Err(err).Str("ticker", ticker).Msg("daily change fetch failed")
		internal(c, "Error fetching daily change")
		return
	}

	c.JSON(http.StatusOK, change)
}

func splitTickers(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToUpper(strings.TrimSpace(p))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
