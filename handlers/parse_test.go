package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintra-backend/extraction"
	"fintra-backend/models"
)

// stubExtractor returns canned records keyed by the image payload, or an
// error for images listed in fail.
type stubExtractor struct {
	assets map[string][]models.Asset
	trades map[string][]models.TradeRecord
	fail   map[string]bool
}

func (s *stubExtractor) ExtractAssets(_ context.Context, imageB64, _ string) ([]models.Asset, error) {
	if s.fail[imageB64] {
		return nil, errors.New("model unavailable")
	}
	return s.assets[imageB64], nil
}

func (s *stubExtractor) ExtractTrades(_ context.Context, imageB64, _ string) ([]models.TradeRecord, error) {
	if s.fail[imageB64] {
		return nil, errors.New("model unavailable")
	}
	return s.trades[imageB64], nil
}

func newParseRouter(t *testing.T, ext *stubExtractor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := &Handler{Extractor: ext, Log: zerolog.Nop()}
	router := gin.New()
	router.POST("/api/parse-image", h.ParsePortfolioImage)
	router.POST("/api/parse-trades-image", h.ParseTradesImage)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestParsePortfolioImageSingle(t *testing.T) {
	ext := &stubExtractor{
		assets: map[string][]models.Asset{
			"img1": {{Name: "Apple", IsStock: true, Ticker: "AAPL", Shares: 10.5, CurrentPrice: 150.25}},
		},
	}
	router := newParseRouter(t, ext)

	w := postJSON(t, router, "/api/parse-image", gin.H{"image": "img1", "mimeType": "image/png"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Assets []models.Asset `json:"assets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Assets, 1)
	assert.Equal(t, "AAPL", resp.Assets[0].Ticker)
}

// A batch is processed in submission order; a failing image contributes
// nothing but does not abort the rest.
func TestParsePortfolioImageBatch(t *testing.T) {
	ext := &stubExtractor{
		assets: map[string][]models.Asset{
			"img1": {{Name: "Apple", IsStock: true, Ticker: "AAPL", Shares: 1, CurrentPrice: 1}},
			"img3": {
				{Name: "Savings", IsStock: false, Balance: 5000, APY: 0.045},
				{Name: "Microsoft", IsStock: true, Ticker: "MSFT", Shares: 2, CurrentPrice: 2},
			},
		},
		fail: map[string]bool{"img2": true},
	}
	router := newParseRouter(t, ext)

	w := postJSON(t, router, "/api/parse-image", gin.H{
		"images": []gin.H{
			{"image": "img1", "mimeType": "image/png"},
			{"image": "img2", "mimeType": "image/png"},
			{"image": "img3", "mimeType": "image/jpeg"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Assets []models.Asset `json:"assets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	names := make([]string, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Apple", "Savings", "Microsoft"}, names)
}

func TestParsePortfolioImageMissingData(t *testing.T) {
	router := newParseRouter(t, &stubExtractor{})

	w := postJSON(t, router, "/api/parse-image", gin.H{"mimeType": "image/png"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// All images failing still yields 200 with zero records, not an error.
func TestParsePortfolioImageAllFail(t *testing.T) {
	ext := &stubExtractor{fail: map[string]bool{"img1": true}}
	router := newParseRouter(t, ext)

	w := postJSON(t, router, "/api/parse-image", gin.H{"image": "img1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"assets":[]}`, w.Body.String())
}

// Without a Gemini API key the extractor is disabled; parsing reports a
// categorized error instead of pretending the image held no records.
func TestParseImageExtractorDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{Extractor: extraction.Disabled{}, Log: zerolog.Nop()}
	router := gin.New()
	router.POST("/api/parse-image", h.ParsePortfolioImage)
	router.POST("/api/parse-trades-image", h.ParseTradesImage)

	for _, path := range []string{"/api/parse-image", "/api/parse-trades-image"} {
		w := postJSON(t, router, path, gin.H{"image": "img1"})
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
	}
}

func TestParseTradesImageBatch(t *testing.T) {
	ext := &stubExtractor{
		trades: map[string][]models.TradeRecord{
			"img1": {{Date: "2024-01-15", Ticker: "AAPL", RealizedPNL: 125.5, PercentDiff: 5.13}},
			"img2": {{Date: "2024-01-16", Ticker: "MSFT", RealizedPNL: -10, PercentDiff: -1.2}},
		},
	}
	router := newParseRouter(t, ext)

	w := postJSON(t, router, "/api/parse-trades-image", gin.H{
		"images": []gin.H{
			{"image": "img1"},
			{"image": "img2"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Trades []models.TradeRecord `json:"trades"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Trades, 2)
	assert.Equal(t, "AAPL", resp.Trades[0].Ticker)
	assert.Equal(t, "MSFT", resp.Trades[1].Ticker)
}
